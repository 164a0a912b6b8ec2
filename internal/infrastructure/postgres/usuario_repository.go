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
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	pool *pgxpool.Pool
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(pool *pgxpool.Pool) *UsuarioRepo {
	return &UsuarioRepo{pool: pool}
}

const columnasUsuario = `id, dni, apel_nomb, tipo_usuario, password_hash,
	is_active, is_staff, date_joined`

// Crear persiste un usuario nuevo. El constraint único de dni convierte un
// alta repetida en ErrDNIYaRegistrado.
func (r *UsuarioRepo) Crear(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, dni, apel_nomb, tipo_usuario, password_hash,
			is_active, is_staff, date_joined)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		u.ID, u.DNI, u.ApelNomb, u.TipoUsuario, u.PasswordHash,
		u.IsActive, u.IsStaff, u.DateJoined,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDNIYaRegistrado
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// PorID obtiene un usuario por su id, o nil.
func (r *UsuarioRepo) PorID(ctx context.Context, id string) (*entity.Usuario, error) {
	query := `SELECT ` + columnasUsuario + ` FROM usuarios WHERE id = $1`
	return r.uno(ctx, query, id)
}

// PorDNI obtiene un usuario por su DNI, o nil.
func (r *UsuarioRepo) PorDNI(ctx context.Context, dni string) (*entity.Usuario, error) {
	query := `SELECT ` + columnasUsuario + ` FROM usuarios WHERE dni = $1`
	return r.uno(ctx, query, dni)
}

// Listar devuelve todos los usuarios, el alta más reciente primero.
func (r *UsuarioRepo) Listar(ctx context.Context) ([]*entity.Usuario, error) {
	query := `SELECT ` + columnasUsuario + ` FROM usuarios ORDER BY date_joined DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.DNI, &u.ApelNomb, &u.TipoUsuario, &u.PasswordHash, &u.IsActive, &u.IsStaff, &u.DateJoined); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Actualizar persiste los cambios del usuario (por id).
func (r *UsuarioRepo) Actualizar(ctx context.Context, u *entity.Usuario) error {
	query := `
		UPDATE usuarios SET apel_nomb = $2, tipo_usuario = $3, password_hash = $4,
			is_active = $5, is_staff = $6
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		u.ID, u.ApelNomb, u.TipoUsuario, u.PasswordHash, u.IsActive, u.IsStaff,
	)
	if err != nil {
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// EliminarPorDNI borra el usuario con ese DNI.
func (r *UsuarioRepo) EliminarPorDNI(ctx context.Context, dni string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM usuarios WHERE dni = $1`, dni)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUsuarioNoEncontrado
	}
	return nil
}

func (r *UsuarioRepo) uno(ctx context.Context, query string, args ...any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.DNI, &u.ApelNomb, &u.TipoUsuario, &u.PasswordHash,
		&u.IsActive, &u.IsStaff, &u.DateJoined,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}
