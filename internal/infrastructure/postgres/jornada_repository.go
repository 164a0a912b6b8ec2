package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/acuinorte/asistencia-api/internal/domain"
	"github.com/acuinorte/asistencia-api/internal/domain/entity"
	"github.com/acuinorte/asistencia-api/internal/domain/repository"
)

var _ repository.JornadaRepository = (*JornadaRepo)(nil)

// JornadaRepo implementación de JornadaRepository. La invariante "a lo sumo
// una jornada abierta" la sostiene el índice parcial único
// jornadas_una_abierta (WHERE estado = 'Abierto').
type JornadaRepo struct {
	q Querier
}

// NewJornadaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewJornadaRepository(q Querier) *JornadaRepo {
	return &JornadaRepo{q: q}
}

const columnasJornada = `id, fecha_abierto, hora_abierto, estado,
	COALESCE(fecha_cerrado, ''), COALESCE(hora_cerrado, '')`

// Crear inserta la jornada y asigna su ID. El índice parcial convierte una
// segunda apertura concurrente en ErrDuplicado.
func (r *JornadaRepo) Crear(ctx context.Context, j *entity.Jornada) error {
	query := `
		INSERT INTO jornadas (fecha_abierto, hora_abierto, estado)
		VALUES ($1, $2, $3) RETURNING id`
	err := r.q.QueryRow(ctx, query, j.FechaAbierto, j.HoraAbierto, j.Estado).Scan(&j.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert jornada: %w", err)
	}
	return nil
}

// Abierta devuelve la jornada en estado Abierto, o nil.
func (r *JornadaRepo) Abierta(ctx context.Context) (*entity.Jornada, error) {
	query := `SELECT ` + columnasJornada + ` FROM jornadas WHERE estado = $1 LIMIT 1`
	return r.una(ctx, query, entity.EstadoAbierto)
}

// Cerrar estampa el cierre sobre la jornada abierta en un solo UPDATE, así no
// hay carrera entre consultar y cerrar. Devuelve nil si no había abierta.
func (r *JornadaRepo) Cerrar(ctx context.Context, fechaCerrado, horaCerrado string) (*entity.Jornada, error) {
	query := `
		UPDATE jornadas SET fecha_cerrado = $1, hora_cerrado = $2, estado = $3
		WHERE estado = $4
		RETURNING ` + columnasJornada
	j, err := r.escanear(r.q.QueryRow(ctx, query, fechaCerrado, horaCerrado, entity.EstadoCerrado, entity.EstadoAbierto))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("cerrar jornada: %w", err)
	}
	return j, nil
}

// MasReciente devuelve la jornada con mayor fecha de apertura, en cualquier estado.
func (r *JornadaRepo) MasReciente(ctx context.Context) (*entity.Jornada, error) {
	query := `SELECT ` + columnasJornada + ` FROM jornadas ORDER BY fecha_abierto DESC, id DESC LIMIT 1`
	return r.una(ctx, query)
}

// PorFecha devuelve la jornada abierta en esa fecha, o nil.
func (r *JornadaRepo) PorFecha(ctx context.Context, fecha string) (*entity.Jornada, error) {
	query := `SELECT ` + columnasJornada + ` FROM jornadas WHERE fecha_abierto = $1 ORDER BY id DESC LIMIT 1`
	return r.una(ctx, query, fecha)
}

// Listar devuelve todas las jornadas, la más reciente primero.
func (r *JornadaRepo) Listar(ctx context.Context) ([]*entity.Jornada, error) {
	query := `SELECT ` + columnasJornada + ` FROM jornadas ORDER BY fecha_abierto DESC, id DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list jornadas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Jornada
	for rows.Next() {
		j, err := r.escanear(rows)
		if err != nil {
			return nil, fmt.Errorf("scan jornada: %w", err)
		}
		list = append(list, j)
	}
	return list, rows.Err()
}

func (r *JornadaRepo) una(ctx context.Context, query string, args ...any) (*entity.Jornada, error) {
	j, err := r.escanear(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get jornada: %w", err)
	}
	return j, nil
}

func (r *JornadaRepo) escanear(row pgx.Row) (*entity.Jornada, error) {
	var j entity.Jornada
	err := row.Scan(&j.ID, &j.FechaAbierto, &j.HoraAbierto, &j.Estado, &j.FechaCerrado, &j.HoraCerrado)
	if err != nil {
		return nil, err
	}
	return &j, nil
}
