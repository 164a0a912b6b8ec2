package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/acuinorte/asistencia-api/internal/domain/entity"
)

// AsistenciaRepository define el puerto de persistencia para las
// importaciones de asistencia (cabecera + detalle).
type AsistenciaRepository interface {
	// Crear inserta la cabecera y asigna su ID.
	Crear(ctx context.Context, a *entity.Asistencia) error
	// CrearDetalle inserta una línea de detalle ya numerada.
	CrearDetalle(ctx context.Context, d *entity.AsistenciaDetalle) error
	// ExisteTrabajadorEnFecha indica si ya hay un detalle para el
	// trabajador bajo una cabecera con la fecha dada.
	ExisteTrabajadorEnFecha(ctx context.Context, idCodigoGeneral, fecha string) (bool, error)
	// DetallePorLaborYFecha devuelve la primera línea del trabajador con
	// esa labor cuya cabecera tiene exactamente la fecha dada, o nil.
	DetallePorLaborYFecha(ctx context.Context, idCodigoGeneral, idLabor, fecha string) (*entity.AsistenciaDetalle, error)
	// DetallePorTrabajadorDesde devuelve la primera línea del trabajador
	// cuya cabecera tiene fecha >= desde (sin cota superior), o nil.
	DetallePorTrabajadorDesde(ctx context.Context, idCodigoGeneral, desde string) (*entity.AsistenciaDetalle, error)
	// ActualizarCantidad cambia la cantidad de la línea (asistencia, item).
	ActualizarCantidad(ctx context.Context, asistenciaID int64, item int, cantidad decimal.Decimal) error
	// PorID devuelve la cabecera con todo su detalle, o nil.
	PorID(ctx context.Context, id int64) (*entity.Asistencia, error)
	// PorRango devuelve las cabeceras con fecha en [desde, hasta], cada una
	// con su detalle, sin repetir cabeceras. Si idCodigoGeneral no es vacío
	// restringe a cabeceras con al menos una línea de ese trabajador.
	PorRango(ctx context.Context, desde, hasta, idCodigoGeneral string) ([]*entity.Asistencia, error)
	// Listar devuelve todas las cabeceras con su detalle.
	Listar(ctx context.Context) ([]*entity.Asistencia, error)
}
