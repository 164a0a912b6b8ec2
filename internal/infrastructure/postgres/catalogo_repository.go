package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acuinorte/asistencia-api/internal/domain"
	"github.com/acuinorte/asistencia-api/internal/domain/entity"
	"github.com/acuinorte/asistencia-api/internal/domain/repository"
	"github.com/acuinorte/asistencia-api/pkg/secuencia"
)

var _ repository.CatalogoRepository = (*CatalogoRepo)(nil)

// Reintentos de asignación de código ante colisión. Una colisión solo ocurre
// si otra transacción insertó el mismo correlativo entre el MAX y el INSERT.
const maxIntentosSecuencia = 5

// CatalogoRepo implementación genérica de CatalogoRepository: una tabla
// {id, nombre} con código correlativo de ancho fijo. La tabla y el ancho se
// fijan en el constructor; los nombres de tabla son constantes del paquete,
// nunca entrada del cliente.
type CatalogoRepo struct {
	pool  *pgxpool.Pool
	tabla string
	ancho int
}

func newCatalogoRepo(pool *pgxpool.Pool, tabla string, ancho int) *CatalogoRepo {
	return &CatalogoRepo{pool: pool, tabla: tabla, ancho: ancho}
}

// Constructores por entidad, cada uno con el ancho de código de su tabla.
func NewEmpresaRepository(pool *pgxpool.Pool) *CatalogoRepo     { return newCatalogoRepo(pool, "empresas", 3) }
func NewEmisorRepository(pool *pgxpool.Pool) *CatalogoRepo      { return newCatalogoRepo(pool, "emisores", 3) }
func NewEspecieRepository(pool *pgxpool.Pool) *CatalogoRepo     { return newCatalogoRepo(pool, "especies", 3) }
func NewTurnoRepository(pool *pgxpool.Pool) *CatalogoRepo       { return newCatalogoRepo(pool, "turnos", 2) }
func NewResponsableRepository(pool *pgxpool.Pool) *CatalogoRepo { return newCatalogoRepo(pool, "responsables", 6) }
func NewConsumidorRepository(pool *pgxpool.Pool) *CatalogoRepo  { return newCatalogoRepo(pool, "consumidores", 6) }
func NewPlanillaRepository(pool *pgxpool.Pool) *CatalogoRepo    { return newCatalogoRepo(pool, "planillas", 3) }

// Listar devuelve todas las filas ordenadas por código.
func (r *CatalogoRepo) Listar(ctx context.Context) ([]*entity.Catalogo, error) {
	query := fmt.Sprintf(`SELECT id, nombre FROM %s ORDER BY id`, r.tabla)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.tabla, err)
	}
	defer rows.Close()
	var list []*entity.Catalogo
	for rows.Next() {
		var c entity.Catalogo
		if err := rows.Scan(&c.ID, &c.Nombre); err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.tabla, err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Obtener devuelve la fila por código, o nil.
func (r *CatalogoRepo) Obtener(ctx context.Context, id string) (*entity.Catalogo, error) {
	query := fmt.Sprintf(`SELECT id, nombre FROM %s WHERE id = $1`, r.tabla)
	var c entity.Catalogo
	err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Nombre)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", r.tabla, err)
	}
	return &c, nil
}

// Crear inserta la fila. Con c.ID vacío asigna el siguiente correlativo:
// MAX(id) + 1 e INSERT en la misma transacción, reintentando si otra
// transacción ganó el mismo código (23505 sobre la primary key).
func (r *CatalogoRepo) Crear(ctx context.Context, c *entity.Catalogo) error {
	if c.ID != "" {
		return r.insertar(ctx, r.pool, c)
	}

	for intento := 0; intento < maxIntentosSecuencia; intento++ {
		err := r.crearConSiguiente(ctx, c)
		if err == nil {
			return nil
		}
		if errors.Is(err, domain.ErrDuplicado) {
			continue // otro insert ganó el código; recalcular
		}
		return err
	}
	return domain.ErrSecuenciaAgotada
}

func (r *CatalogoRepo) crearConSiguiente(ctx context.Context, c *entity.Catalogo) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Para códigos de ancho fijo con ceros a la izquierda el MAX
	// lexicográfico coincide con el numérico.
	var ultimo string
	query := fmt.Sprintf(`SELECT COALESCE(MAX(id), '') FROM %s`, r.tabla)
	if err := tx.QueryRow(ctx, query).Scan(&ultimo); err != nil {
		return fmt.Errorf("max id %s: %w", r.tabla, err)
	}
	id, err := secuencia.Siguiente(ultimo, r.ancho)
	if err != nil {
		return domain.ErrSecuenciaAgotada
	}
	c.ID = id
	if err := r.insertar(ctx, tx, c); err != nil {
		c.ID = ""
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		c.ID = ""
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (r *CatalogoRepo) insertar(ctx context.Context, q Querier, c *entity.Catalogo) error {
	query := fmt.Sprintf(`INSERT INTO %s (id, nombre) VALUES ($1, $2)`, r.tabla)
	_, err := q.Exec(ctx, query, c.ID, c.Nombre)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert %s: %w", r.tabla, err)
	}
	return nil
}

// Actualizar cambia el nombre de la fila.
func (r *CatalogoRepo) Actualizar(ctx context.Context, c *entity.Catalogo) error {
	query := fmt.Sprintf(`UPDATE %s SET nombre = $2 WHERE id = $1`, r.tabla)
	tag, err := r.pool.Exec(ctx, query, c.ID, c.Nombre)
	if err != nil {
		return fmt.Errorf("update %s: %w", r.tabla, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNoEncontrado
	}
	return nil
}

// Eliminar borra la fila por código.
func (r *CatalogoRepo) Eliminar(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tabla)
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.tabla, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNoEncontrado
	}
	return nil
}

// ── TipoEnvio ─────────────────────────────────────────────────────────────────

var _ repository.TipoEnvioRepository = (*TipoEnvioRepo)(nil)

// TipoEnvioRepo persistencia del catálogo de tipos de envío.
type TipoEnvioRepo struct {
	q Querier
}

// NewTipoEnvioRepository construye el adaptador.
func NewTipoEnvioRepository(q Querier) *TipoEnvioRepo {
	return &TipoEnvioRepo{q: q}
}

// Listar devuelve todos los tipos de envío.
func (r *TipoEnvioRepo) Listar(ctx context.Context) ([]*entity.TipoEnvio, error) {
	rows, err := r.q.Query(ctx, `SELECT tipo_envio, nombre FROM tipos_envio ORDER BY tipo_envio`)
	if err != nil {
		return nil, fmt.Errorf("list tipos_envio: %w", err)
	}
	defer rows.Close()
	var list []*entity.TipoEnvio
	for rows.Next() {
		var t entity.TipoEnvio
		if err := rows.Scan(&t.TipoEnvio, &t.Nombre); err != nil {
			return nil, fmt.Errorf("scan tipo_envio: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Crear inserta un tipo de envío. El código de una letra es la PK: dos
// nombres que derivan la misma letra chocan como duplicado.
func (r *TipoEnvioRepo) Crear(ctx context.Context, t *entity.TipoEnvio) error {
	_, err := r.q.Exec(ctx, `INSERT INTO tipos_envio (tipo_envio, nombre) VALUES ($1, $2)`, t.TipoEnvio, t.Nombre)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert tipo_envio: %w", err)
	}
	return nil
}
