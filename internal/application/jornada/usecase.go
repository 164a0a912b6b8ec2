package jornada

import (
	"context"
	"time"

	"github.com/acuinorte/asistencia-api/internal/application/dto"
	"github.com/acuinorte/asistencia-api/internal/domain"
	"github.com/acuinorte/asistencia-api/internal/domain/entity"
	"github.com/acuinorte/asistencia-api/internal/domain/repository"
)

// UseCase casos de uso de la jornada: abrir día, cerrar día y consultas.
type UseCase struct {
	repo  repository.JornadaRepository
	ahora func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.JornadaRepository) *UseCase {
	return &UseCase{repo: repo, ahora: time.Now}
}

// Abrir abre el día: falla con ErrJornadaAbierta si ya hay una jornada en
// estado Abierto. La verificación definitiva es el índice parcial único de la
// tabla, así dos aperturas concurrentes no pueden tener éxito ambas.
func (uc *UseCase) Abrir(ctx context.Context) (*dto.JornadaResponse, error) {
	abierta, err := uc.repo.Abierta(ctx)
	if err != nil {
		return nil, err
	}
	if abierta != nil {
		return nil, domain.ErrJornadaAbierta
	}

	now := uc.ahora()
	j := &entity.Jornada{
		FechaAbierto: now.Format(entity.FormatoFecha),
		HoraAbierto:  now.Format(entity.FormatoHora),
		Estado:       entity.EstadoAbierto,
	}
	if err := uc.repo.Crear(ctx, j); err != nil {
		if err == domain.ErrDuplicado {
			// Otra petición abrió el día entre la consulta y el insert.
			return nil, domain.ErrJornadaAbierta
		}
		return nil, err
	}
	return aJornadaResponse(j), nil
}

// Cerrar cierra la jornada abierta estampando fecha y hora de cierre.
// Falla con ErrSinJornadaAbierta si no hay jornada en estado Abierto.
func (uc *UseCase) Cerrar(ctx context.Context) (*dto.JornadaResponse, error) {
	now := uc.ahora()
	j, err := uc.repo.Cerrar(ctx, now.Format(entity.FormatoFecha), now.Format(entity.FormatoHora))
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, domain.ErrSinJornadaAbierta
	}
	return aJornadaResponse(j), nil
}

// Actual devuelve la jornada abierta, o nil si el día está cerrado.
func (uc *UseCase) Actual(ctx context.Context) (*dto.JornadaResponse, error) {
	j, err := uc.repo.Abierta(ctx)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, nil
	}
	return aJornadaResponse(j), nil
}

// MasReciente devuelve la última jornada por fecha de apertura sin importar
// su estado, o nil si nunca se abrió el día. No es lo mismo que Actual: una
// jornada cerrada sigue siendo la más reciente.
func (uc *UseCase) MasReciente(ctx context.Context) (*dto.JornadaResponse, error) {
	j, err := uc.repo.MasReciente(ctx)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, nil
	}
	return aJornadaResponse(j), nil
}

// Listar devuelve el histórico completo de jornadas.
func (uc *UseCase) Listar(ctx context.Context) ([]*dto.JornadaResponse, error) {
	list, err := uc.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.JornadaResponse, 0, len(list))
	for _, j := range list {
		out = append(out, aJornadaResponse(j))
	}
	return out, nil
}

func aJornadaResponse(j *entity.Jornada) *dto.JornadaResponse {
	if j == nil {
		return nil
	}
	return &dto.JornadaResponse{
		ID:           j.ID,
		FechaAbierto: j.FechaAbierto,
		HoraAbierto:  j.HoraAbierto,
		Estado:       j.Estado,
		FechaCerrado: j.FechaCerrado,
		HoraCerrado:  j.HoraCerrado,
	}
}
