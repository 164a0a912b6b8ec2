package asistencia

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/acuinorte/asistencia-api/internal/application/dto"
	"github.com/acuinorte/asistencia-api/internal/domain"
	"github.com/acuinorte/asistencia-api/internal/domain/entity"
	"github.com/acuinorte/asistencia-api/internal/domain/repository"
)

// ConsultaUseCase consultas y actualizaciones de cantidad sobre las
// importaciones de asistencia.
type ConsultaUseCase struct {
	jornadas    repository.JornadaRepository
	asistencias repository.AsistenciaRepository
	ahora       func() time.Time
}

// NewConsultaUseCase construye el caso de uso.
func NewConsultaUseCase(jornadas repository.JornadaRepository, asistencias repository.AsistenciaRepository) *ConsultaUseCase {
	return &ConsultaUseCase{jornadas: jornadas, asistencias: asistencias, ahora: time.Now}
}

// ActualizarCantidadPorLabor cambia la cantidad de la línea del trabajador
// con esa labor dentro de la jornada abierta (cabecera con fecha igual a la
// FechaAbierto). Devuelve la cabecera completa con su detalle.
func (uc *ConsultaUseCase) ActualizarCantidadPorLabor(ctx context.Context, idCodigoGeneral, idLabor string, cantidad decimal.Decimal) (*dto.AsistenciaResponse, error) {
	jornada, err := uc.jornadas.Abierta(ctx)
	if err != nil {
		return nil, err
	}
	if jornada == nil {
		return nil, domain.ErrSinJornadaAbierta
	}

	det, err := uc.asistencias.DetallePorLaborYFecha(ctx, idCodigoGeneral, idLabor, jornada.FechaAbierto)
	if err != nil {
		return nil, err
	}
	if det == nil {
		return nil, domain.ErrDetalleNoEncontrado
	}
	return uc.actualizarDetalle(ctx, det, cantidad)
}

// ActualizarCantidadPorTrabajador cambia la cantidad de la primera línea del
// trabajador con cabecera de fecha >= FechaAbierto de la jornada abierta.
// Es deliberadamente más amplio que la variante por labor (sin cota superior
// de fecha y sin labor): son dos operaciones de clientes distintos y no se
// unifican.
func (uc *ConsultaUseCase) ActualizarCantidadPorTrabajador(ctx context.Context, idCodigoGeneral string, cantidad decimal.Decimal) (*dto.AsistenciaResponse, error) {
	jornada, err := uc.jornadas.Abierta(ctx)
	if err != nil {
		return nil, err
	}
	if jornada == nil {
		return nil, domain.ErrSinJornadaAbierta
	}

	det, err := uc.asistencias.DetallePorTrabajadorDesde(ctx, idCodigoGeneral, jornada.FechaAbierto)
	if err != nil {
		return nil, err
	}
	if det == nil {
		return nil, domain.ErrDetalleNoEncontrado
	}
	return uc.actualizarDetalle(ctx, det, cantidad)
}

func (uc *ConsultaUseCase) actualizarDetalle(ctx context.Context, det *entity.AsistenciaDetalle, cantidad decimal.Decimal) (*dto.AsistenciaResponse, error) {
	if cantidad.IsNegative() {
		return nil, domain.ErrEntradaInvalida
	}
	if err := uc.asistencias.ActualizarCantidad(ctx, det.AsistenciaID, det.Item, cantidad); err != nil {
		return nil, err
	}
	a, err := uc.asistencias.PorID(ctx, det.AsistenciaID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNoEncontrado
	}
	return aAsistenciaResponse(a), nil
}

// ListarPorRango devuelve las importaciones con fecha en [desde, hasta], cada
// cabecera una sola vez con todo su detalle. Con filtro de trabajador, cero
// resultados es ErrNoEncontrado.
func (uc *ConsultaUseCase) ListarPorRango(ctx context.Context, desde, hasta, idCodigoGeneral string) ([]*dto.AsistenciaResponse, error) {
	list, err := uc.asistencias.PorRango(ctx, desde, hasta, idCodigoGeneral)
	if err != nil {
		return nil, err
	}
	if idCodigoGeneral != "" && len(list) == 0 {
		return nil, domain.ErrNoEncontrado
	}
	return aAsistenciaResponses(list), nil
}

// ListarJornadaActual lista las importaciones de la jornada abierta: rango
// [FechaAbierto, FechaCerrado] usando hoy cuando aún no hay fecha de cierre.
func (uc *ConsultaUseCase) ListarJornadaActual(ctx context.Context, idCodigoGeneral string) ([]*dto.AsistenciaResponse, error) {
	jornada, err := uc.jornadas.Abierta(ctx)
	if err != nil {
		return nil, err
	}
	if jornada == nil {
		return nil, domain.ErrSinJornadaAbierta
	}
	hasta := jornada.FechaCerrado
	if hasta == "" {
		hasta = uc.ahora().Format(entity.FormatoFecha)
	}
	return uc.ListarPorRango(ctx, jornada.FechaAbierto, hasta, idCodigoGeneral)
}

// ListarPorFecha lista las importaciones de la jornada histórica cuya
// FechaAbierto es la fecha dada. Una jornada sin cerrar se acota a hoy.
func (uc *ConsultaUseCase) ListarPorFecha(ctx context.Context, fecha string) ([]*dto.AsistenciaResponse, error) {
	jornada, err := uc.jornadas.PorFecha(ctx, fecha)
	if err != nil {
		return nil, err
	}
	if jornada == nil {
		return nil, domain.ErrNoEncontrado
	}
	hasta := jornada.FechaCerrado
	if hasta == "" {
		hasta = uc.ahora().Format(entity.FormatoFecha)
	}
	return uc.ListarPorRango(ctx, jornada.FechaAbierto, hasta, "")
}

// ListarTodo devuelve todas las importaciones con su detalle.
func (uc *ConsultaUseCase) ListarTodo(ctx context.Context) ([]*dto.AsistenciaResponse, error) {
	list, err := uc.asistencias.Listar(ctx)
	if err != nil {
		return nil, err
	}
	return aAsistenciaResponses(list), nil
}

func aAsistenciaResponse(a *entity.Asistencia) *dto.AsistenciaResponse {
	if a == nil {
		return nil
	}
	out := &dto.AsistenciaResponse{
		ID:            a.ID,
		IDEmpresa:     a.IDEmpresa,
		TipoEnvio:     a.TipoEnvio,
		IDResponsable: a.IDResponsable,
		IDPlanilla:    a.IDPlanilla,
		IDEmisor:      a.IDEmisor,
		IDTurno:       a.IDTurno,
		Fecha:         a.Fecha,
		IDSucursal:    a.IDSucursal,
		IDEspecie:     a.IDEspecie,
		Detalle:       make([]dto.DetalleResponse, 0, len(a.Detalle)),
	}
	for _, d := range a.Detalle {
		out.Detalle = append(out.Detalle, dto.DetalleResponse{
			Item:            d.Item,
			IDCodigoGeneral: d.IDCodigoGeneral,
			IDActividad:     d.IDActividad,
			IDLabor:         d.IDLabor,
			IDConsumidor:    d.IDConsumidor,
			Cantidad:        d.Cantidad,
		})
	}
	return out
}

func aAsistenciaResponses(list []*entity.Asistencia) []*dto.AsistenciaResponse {
	out := make([]*dto.AsistenciaResponse, 0, len(list))
	for _, a := range list {
		out = append(out, aAsistenciaResponse(a))
	}
	return out
}
