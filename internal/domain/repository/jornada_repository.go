package repository

import (
	"context"

	"github.com/acuinorte/asistencia-api/internal/domain/entity"
)

// JornadaRepository define el puerto de persistencia para la jornada (día
// abierto/cerrado). La unicidad de la jornada abierta la garantiza el
// almacenamiento (índice parcial único), no el proceso.
type JornadaRepository interface {
	// Crear inserta una jornada nueva. Retorna domain.ErrDuplicado si ya
	// existe una jornada en estado Abierto.
	Crear(ctx context.Context, j *entity.Jornada) error
	// Abierta devuelve la jornada en estado Abierto, o nil si no hay.
	Abierta(ctx context.Context) (*entity.Jornada, error)
	// Cerrar estampa fecha/hora de cierre sobre la jornada abierta y la
	// devuelve. Retorna nil si no había jornada abierta.
	Cerrar(ctx context.Context, fechaCerrado, horaCerrado string) (*entity.Jornada, error)
	// MasReciente devuelve la jornada con mayor FechaAbierto sin importar
	// su estado, o nil si no hay jornadas.
	MasReciente(ctx context.Context) (*entity.Jornada, error)
	// PorFecha devuelve la jornada cuya FechaAbierto coincide, o nil.
	PorFecha(ctx context.Context, fecha string) (*entity.Jornada, error)
	// Listar devuelve todas las jornadas, la más reciente primero.
	Listar(ctx context.Context) ([]*entity.Jornada, error)
}
