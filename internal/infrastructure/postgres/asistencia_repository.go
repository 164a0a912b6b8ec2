package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/acuinorte/asistencia-api/internal/domain"
	"github.com/acuinorte/asistencia-api/internal/domain/entity"
	"github.com/acuinorte/asistencia-api/internal/domain/repository"
)

var _ repository.AsistenciaRepository = (*AsistenciaRepo)(nil)

// AsistenciaRepo implementación de AsistenciaRepository (usable con pool o tx).
type AsistenciaRepo struct {
	q Querier
}

// NewAsistenciaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAsistenciaRepository(q Querier) *AsistenciaRepo {
	return &AsistenciaRepo{q: q}
}

const columnasAsistencia = `id, idempresa, tipo_envio, idresponsable, idplanilla,
	idemisor, idturno, fecha, idsucursal, idespecie`

const columnasDetalle = `asistencia_id, item, idcodigogeneral, idactividad,
	idlabor, idconsumidor, cantidad`

// Crear inserta la cabecera y asigna su ID.
func (r *AsistenciaRepo) Crear(ctx context.Context, a *entity.Asistencia) error {
	query := `
		INSERT INTO asistencias (idempresa, tipo_envio, idresponsable, idplanilla,
			idemisor, idturno, fecha, idsucursal, idespecie)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	err := r.q.QueryRow(ctx, query,
		a.IDEmpresa, a.TipoEnvio, a.IDResponsable, a.IDPlanilla,
		a.IDEmisor, a.IDTurno, a.Fecha, a.IDSucursal, a.IDEspecie,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert asistencia: %w", err)
	}
	return nil
}

// CrearDetalle inserta una línea de detalle ya numerada. (asistencia_id, item)
// es la clave primaria, así que un item repetido es violación de unicidad.
func (r *AsistenciaRepo) CrearDetalle(ctx context.Context, d *entity.AsistenciaDetalle) error {
	query := `
		INSERT INTO asistencia_detalles (asistencia_id, item, idcodigogeneral,
			idactividad, idlabor, idconsumidor, cantidad)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		d.AsistenciaID, d.Item, d.IDCodigoGeneral, d.IDActividad, d.IDLabor, d.IDConsumidor, d.Cantidad,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert detalle: %w", err)
	}
	return nil
}

// ExisteTrabajadorEnFecha indica si el trabajador ya tiene detalle bajo una
// cabecera con la fecha dada.
func (r *AsistenciaRepo) ExisteTrabajadorEnFecha(ctx context.Context, idCodigoGeneral, fecha string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM asistencia_detalles d
			JOIN asistencias a ON a.id = d.asistencia_id
			WHERE d.idcodigogeneral = $1 AND a.fecha = $2)`
	var existe bool
	if err := r.q.QueryRow(ctx, query, idCodigoGeneral, fecha).Scan(&existe); err != nil {
		return false, fmt.Errorf("existe trabajador en fecha: %w", err)
	}
	return existe, nil
}

// DetallePorLaborYFecha primera línea del trabajador+labor con cabecera de
// fecha exacta, o nil.
func (r *AsistenciaRepo) DetallePorLaborYFecha(ctx context.Context, idCodigoGeneral, idLabor, fecha string) (*entity.AsistenciaDetalle, error) {
	query := `
		SELECT d.asistencia_id, d.item, d.idcodigogeneral, d.idactividad,
			d.idlabor, d.idconsumidor, d.cantidad
		FROM asistencia_detalles d
		JOIN asistencias a ON a.id = d.asistencia_id
		WHERE d.idcodigogeneral = $1 AND d.idlabor = $2 AND a.fecha = $3
		ORDER BY d.asistencia_id, d.item LIMIT 1`
	return r.unDetalle(ctx, query, idCodigoGeneral, idLabor, fecha)
}

// DetallePorTrabajadorDesde primera línea del trabajador con cabecera de
// fecha >= desde (sin cota superior), o nil.
func (r *AsistenciaRepo) DetallePorTrabajadorDesde(ctx context.Context, idCodigoGeneral, desde string) (*entity.AsistenciaDetalle, error) {
	query := `
		SELECT d.asistencia_id, d.item, d.idcodigogeneral, d.idactividad,
			d.idlabor, d.idconsumidor, d.cantidad
		FROM asistencia_detalles d
		JOIN asistencias a ON a.id = d.asistencia_id
		WHERE d.idcodigogeneral = $1 AND a.fecha >= $2
		ORDER BY d.asistencia_id, d.item LIMIT 1`
	return r.unDetalle(ctx, query, idCodigoGeneral, desde)
}

// ActualizarCantidad cambia la cantidad de la línea (asistencia, item).
func (r *AsistenciaRepo) ActualizarCantidad(ctx context.Context, asistenciaID int64, item int, cantidad decimal.Decimal) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE asistencia_detalles SET cantidad = $3 WHERE asistencia_id = $1 AND item = $2`,
		asistenciaID, item, cantidad,
	)
	if err != nil {
		return fmt.Errorf("update cantidad: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDetalleNoEncontrado
	}
	return nil
}

// PorID devuelve la cabecera con todo su detalle, o nil.
func (r *AsistenciaRepo) PorID(ctx context.Context, id int64) (*entity.Asistencia, error) {
	query := `SELECT ` + columnasAsistencia + ` FROM asistencias WHERE id = $1`
	var a entity.Asistencia
	err := r.q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.IDEmpresa, &a.TipoEnvio, &a.IDResponsable, &a.IDPlanilla,
		&a.IDEmisor, &a.IDTurno, &a.Fecha, &a.IDSucursal, &a.IDEspecie,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asistencia: %w", err)
	}
	detalles, err := r.cargarDetalles(ctx, []int64{a.ID})
	if err != nil {
		return nil, err
	}
	a.Detalle = detalles[a.ID]
	return &a, nil
}

// PorRango cabeceras con fecha en [desde, hasta] con su detalle, sin repetir
// cabeceras. Con idCodigoGeneral restringe a cabeceras con al menos una línea
// de ese trabajador (la cabecera entra una sola vez aunque tenga varias).
func (r *AsistenciaRepo) PorRango(ctx context.Context, desde, hasta, idCodigoGeneral string) ([]*entity.Asistencia, error) {
	query := `SELECT ` + columnasAsistencia + ` FROM asistencias WHERE fecha BETWEEN $1 AND $2`
	args := []any{desde, hasta}
	if idCodigoGeneral != "" {
		query += ` AND EXISTS (
			SELECT 1 FROM asistencia_detalles d
			WHERE d.asistencia_id = asistencias.id AND d.idcodigogeneral = $3)`
		args = append(args, idCodigoGeneral)
	}
	query += ` ORDER BY id`
	return r.listar(ctx, query, args...)
}

// Listar todas las cabeceras con su detalle.
func (r *AsistenciaRepo) Listar(ctx context.Context) ([]*entity.Asistencia, error) {
	query := `SELECT ` + columnasAsistencia + ` FROM asistencias ORDER BY id`
	return r.listar(ctx, query)
}

func (r *AsistenciaRepo) listar(ctx context.Context, query string, args ...any) ([]*entity.Asistencia, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list asistencias: %w", err)
	}
	defer rows.Close()

	var list []*entity.Asistencia
	var ids []int64
	for rows.Next() {
		var a entity.Asistencia
		if err := rows.Scan(
			&a.ID, &a.IDEmpresa, &a.TipoEnvio, &a.IDResponsable, &a.IDPlanilla,
			&a.IDEmisor, &a.IDTurno, &a.Fecha, &a.IDSucursal, &a.IDEspecie,
		); err != nil {
			return nil, fmt.Errorf("scan asistencia: %w", err)
		}
		list = append(list, &a)
		ids = append(ids, a.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}

	detalles, err := r.cargarDetalles(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, a := range list {
		a.Detalle = detalles[a.ID]
	}
	return list, nil
}

// cargarDetalles trae las líneas de varias cabeceras en una sola consulta.
func (r *AsistenciaRepo) cargarDetalles(ctx context.Context, ids []int64) (map[int64][]entity.AsistenciaDetalle, error) {
	query := `
		SELECT ` + columnasDetalle + ` FROM asistencia_detalles
		WHERE asistencia_id = ANY($1) ORDER BY asistencia_id, item`
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("list detalles: %w", err)
	}
	defer rows.Close()

	out := make(map[int64][]entity.AsistenciaDetalle, len(ids))
	for rows.Next() {
		var d entity.AsistenciaDetalle
		if err := rows.Scan(&d.AsistenciaID, &d.Item, &d.IDCodigoGeneral, &d.IDActividad, &d.IDLabor, &d.IDConsumidor, &d.Cantidad); err != nil {
			return nil, fmt.Errorf("scan detalle: %w", err)
		}
		out[d.AsistenciaID] = append(out[d.AsistenciaID], d)
	}
	return out, rows.Err()
}

func (r *AsistenciaRepo) unDetalle(ctx context.Context, query string, args ...any) (*entity.AsistenciaDetalle, error) {
	var d entity.AsistenciaDetalle
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&d.AsistenciaID, &d.Item, &d.IDCodigoGeneral, &d.IDActividad, &d.IDLabor, &d.IDConsumidor, &d.Cantidad,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get detalle: %w", err)
	}
	return &d, nil
}
