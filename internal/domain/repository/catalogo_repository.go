package repository

import (
	"context"

	"github.com/acuinorte/asistencia-api/internal/domain/entity"
)

// CatalogoRepository define el puerto de persistencia para una tabla de
// catálogo {código, nombre}. Cada entidad (empresa, emisor, turno, especie,
// responsable, planilla, consumidor) tiene su propia instancia del puerto
// con su tabla y ancho de código.
type CatalogoRepository interface {
	// Listar devuelve todas las filas ordenadas por código.
	Listar(ctx context.Context) ([]*entity.Catalogo, error)
	// Obtener devuelve la fila por código, o nil.
	Obtener(ctx context.Context, id string) (*entity.Catalogo, error)
	// Crear inserta una fila. Si c.ID está vacío asigna el siguiente código
	// de la secuencia de forma atómica (reintenta ante colisión).
	Crear(ctx context.Context, c *entity.Catalogo) error
	// Actualizar cambia el nombre de la fila. Retorna domain.ErrNoEncontrado
	// si el código no existe.
	Actualizar(ctx context.Context, c *entity.Catalogo) error
	// Eliminar borra la fila. Retorna domain.ErrNoEncontrado si no existe.
	Eliminar(ctx context.Context, id string) error
}

// TipoEnvioRepository persiste el catálogo de tipos de envío, cuyo código de
// un carácter se deriva del nombre.
type TipoEnvioRepository interface {
	Listar(ctx context.Context) ([]*entity.TipoEnvio, error)
	Crear(ctx context.Context, t *entity.TipoEnvio) error
}
