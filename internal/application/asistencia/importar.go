package asistencia

import (
	"context"

	"github.com/acuinorte/asistencia-api/internal/application/dto"
	"github.com/acuinorte/asistencia-api/internal/domain"
	"github.com/acuinorte/asistencia-api/internal/domain/entity"
	"github.com/acuinorte/asistencia-api/internal/domain/repository"
)

// ImportarUseCase acepta un lote de asistencia (cabecera + líneas) para la
// jornada abierta.
type ImportarUseCase struct {
	jornadas repository.JornadaRepository
	tx       TxRunner
}

// NewImportarUseCase construye el caso de uso de importación.
func NewImportarUseCase(jornadas repository.JornadaRepository, tx TxRunner) *ImportarUseCase {
	return &ImportarUseCase{jornadas: jornadas, tx: tx}
}

// Importar registra un lote de asistencia.
//
//   - requiere jornada abierta (ErrSinJornadaAbierta);
//   - rechaza al trabajador si ya tiene detalle en la jornada abierta,
//     comparando por la fecha de apertura (ErrTrabajadorYaImportado);
//   - estampa la fecha de la cabecera con la FechaAbierto de la jornada,
//     ignorando cualquier fecha del cliente;
//   - numera las líneas 1..n en el orden recibido;
//   - todo dentro de una transacción: una línea inválida no deja filas.
func (uc *ImportarUseCase) Importar(ctx context.Context, in dto.ImportarAsistenciaRequest) (*dto.AsistenciaResponse, error) {
	jornada, err := uc.jornadas.Abierta(ctx)
	if err != nil {
		return nil, err
	}
	if jornada == nil {
		return nil, domain.ErrSinJornadaAbierta
	}

	if in.IDCodigoGeneral == "" || len(in.Detalle) == 0 {
		return nil, domain.ErrEntradaInvalida
	}
	for _, d := range in.Detalle {
		if d.IDCodigoGeneral == "" || d.IDLabor == "" || d.Cantidad.IsNegative() {
			return nil, domain.ErrEntradaInvalida
		}
	}

	a := &entity.Asistencia{
		IDEmpresa:     in.IDEmpresa,
		TipoEnvio:     in.TipoEnvio,
		IDResponsable: in.IDResponsable,
		IDPlanilla:    in.IDPlanilla,
		IDEmisor:      in.IDEmisor,
		IDTurno:       in.IDTurno,
		Fecha:         jornada.FechaAbierto,
		IDSucursal:    in.IDSucursal,
		IDEspecie:     in.IDEspecie,
	}

	err = uc.tx.Run(ctx, func(repo repository.AsistenciaRepository) error {
		existe, err := repo.ExisteTrabajadorEnFecha(ctx, in.IDCodigoGeneral, jornada.FechaAbierto)
		if err != nil {
			return err
		}
		if existe {
			return domain.ErrTrabajadorYaImportado
		}

		if err := repo.Crear(ctx, a); err != nil {
			return err
		}
		for i, d := range in.Detalle {
			det := entity.AsistenciaDetalle{
				AsistenciaID:    a.ID,
				Item:            i + 1,
				IDCodigoGeneral: d.IDCodigoGeneral,
				IDActividad:     d.IDActividad,
				IDLabor:         d.IDLabor,
				IDConsumidor:    d.IDConsumidor,
				Cantidad:        d.Cantidad,
			}
			if err := repo.CrearDetalle(ctx, &det); err != nil {
				return err
			}
			a.Detalle = append(a.Detalle, det)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return aAsistenciaResponse(a), nil
}
