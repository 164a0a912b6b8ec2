package repository

import (
	"context"

	"github.com/acuinorte/asistencia-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para cuentas de usuario.
type UsuarioRepository interface {
	// Crear persiste un usuario nuevo. Retorna domain.ErrDNIYaRegistrado
	// si el DNI ya existe.
	Crear(ctx context.Context, u *entity.Usuario) error
	// PorID devuelve el usuario por su id, o nil.
	PorID(ctx context.Context, id string) (*entity.Usuario, error)
	// PorDNI devuelve el usuario por su DNI, o nil.
	PorDNI(ctx context.Context, dni string) (*entity.Usuario, error)
	// Listar devuelve todos los usuarios ordenados por fecha de alta.
	Listar(ctx context.Context) ([]*entity.Usuario, error)
	// Actualizar persiste los cambios del usuario (por id).
	Actualizar(ctx context.Context, u *entity.Usuario) error
	// EliminarPorDNI borra el usuario con ese DNI. Retorna
	// domain.ErrUsuarioNoEncontrado si no existe.
	EliminarPorDNI(ctx context.Context, dni string) error
}
