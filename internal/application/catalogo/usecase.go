package catalogo

import (
	"context"

	"github.com/acuinorte/asistencia-api/internal/application/dto"
	"github.com/acuinorte/asistencia-api/internal/domain"
	"github.com/acuinorte/asistencia-api/internal/domain/entity"
	"github.com/acuinorte/asistencia-api/internal/domain/repository"
)

// UseCase CRUD genérico para una entidad de catálogo {código, nombre}.
// Una instancia por entidad (empresas, emisores, turnos, especies,
// responsables, planillas, consumidores).
type UseCase struct {
	repo repository.CatalogoRepository
	// idManual: la entidad acepta el código del cliente (planillas) en vez
	// de asignar el siguiente correlativo.
	idManual bool
}

// NewUseCase construye el caso de uso con asignación automática de código.
func NewUseCase(repo repository.CatalogoRepository) *UseCase {
	return &UseCase{repo: repo}
}

// NewUseCaseIDManual construye el caso de uso para entidades cuyo código lo
// envía el cliente.
func NewUseCaseIDManual(repo repository.CatalogoRepository) *UseCase {
	return &UseCase{repo: repo, idManual: true}
}

// Listar devuelve todas las filas.
func (uc *UseCase) Listar(ctx context.Context) ([]*dto.CatalogoResponse, error) {
	list, err := uc.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CatalogoResponse, 0, len(list))
	for _, c := range list {
		out = append(out, &dto.CatalogoResponse{ID: c.ID, Nombre: c.Nombre})
	}
	return out, nil
}

// Obtener devuelve una fila por código.
func (uc *UseCase) Obtener(ctx context.Context, id string) (*dto.CatalogoResponse, error) {
	c, err := uc.repo.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNoEncontrado
	}
	return &dto.CatalogoResponse{ID: c.ID, Nombre: c.Nombre}, nil
}

// Crear inserta una fila. Sin idManual el código viaja vacío y lo asigna el
// repositorio (siguiente correlativo, atómico).
func (uc *UseCase) Crear(ctx context.Context, in dto.CatalogoRequest) (*dto.CatalogoResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrEntradaInvalida
	}
	c := &entity.Catalogo{Nombre: in.Nombre}
	if uc.idManual {
		if in.ID == "" {
			return nil, domain.ErrEntradaInvalida
		}
		c.ID = in.ID
	}
	if err := uc.repo.Crear(ctx, c); err != nil {
		return nil, err
	}
	return &dto.CatalogoResponse{ID: c.ID, Nombre: c.Nombre}, nil
}

// Actualizar cambia el nombre de la fila.
func (uc *UseCase) Actualizar(ctx context.Context, id string, in dto.CatalogoRequest) (*dto.CatalogoResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrEntradaInvalida
	}
	c := &entity.Catalogo{ID: id, Nombre: in.Nombre}
	if err := uc.repo.Actualizar(ctx, c); err != nil {
		return nil, err
	}
	return &dto.CatalogoResponse{ID: c.ID, Nombre: c.Nombre}, nil
}

// Eliminar borra la fila por código.
func (uc *UseCase) Eliminar(ctx context.Context, id string) error {
	return uc.repo.Eliminar(ctx, id)
}
