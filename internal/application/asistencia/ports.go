package asistencia

import (
	"context"

	"github.com/acuinorte/asistencia-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con un repositorio de
// asistencia atado a la tx. La importación (control de duplicado + cabecera +
// todas las líneas) es todo-o-nada: si fn falla no queda ninguna fila.
type TxRunner interface {
	Run(ctx context.Context, fn func(repo repository.AsistenciaRepository) error) error
}
