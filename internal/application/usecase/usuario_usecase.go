package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/acuinorte/asistencia-api/internal/application/dto"
	"github.com/acuinorte/asistencia-api/internal/domain"
	"github.com/acuinorte/asistencia-api/internal/domain/entity"
	"github.com/acuinorte/asistencia-api/internal/domain/repository"
)

// UsuarioUseCase gestión de cuentas: alta, consulta, actualización y baja
// por DNI.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// Crear registra un usuario nuevo: valida el DNI (8 o 12 dígitos), hashea el
// password con bcrypt y persiste.
func (uc *UsuarioUseCase) Crear(ctx context.Context, in dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	if !DNIValido(in.DNI) || in.ApelNomb == "" || in.Password == "" {
		return nil, domain.ErrEntradaInvalida
	}
	tipo := in.TipoUsuario
	if tipo == "" {
		tipo = entity.TipoAdministrador
	}
	if !entity.TipoValido(tipo) {
		return nil, domain.ErrEntradaInvalida
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &entity.Usuario{
		ID:           uuid.New().String(),
		DNI:          in.DNI,
		ApelNomb:     in.ApelNomb,
		TipoUsuario:  tipo,
		PasswordHash: string(hash),
		IsActive:     true,
		IsStaff:      in.IsStaff,
		DateJoined:   time.Now(),
	}
	if err := uc.repo.Crear(ctx, u); err != nil {
		return nil, err
	}
	return aUsuarioResponse(u), nil
}

// Listar devuelve todos los usuarios.
func (uc *UsuarioUseCase) Listar(ctx context.Context) ([]*dto.UsuarioResponse, error) {
	list, err := uc.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		out = append(out, aUsuarioResponse(u))
	}
	return out, nil
}

// PorDNI devuelve el usuario con ese DNI.
func (uc *UsuarioUseCase) PorDNI(ctx context.Context, dni string) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.PorDNI(ctx, dni)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	return aUsuarioResponse(u), nil
}

// PorID devuelve el usuario por su id (para /usuarios/actual/ con el id del
// token).
func (uc *UsuarioUseCase) PorID(ctx context.Context, id string) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.PorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	return aUsuarioResponse(u), nil
}

// Actualizar aplica cambios parciales al usuario con ese DNI. El password
// nunca se actualiza por esta vía.
func (uc *UsuarioUseCase) Actualizar(ctx context.Context, dni string, in dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.PorDNI(ctx, dni)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	if in.ApelNomb != nil {
		if *in.ApelNomb == "" {
			return nil, domain.ErrEntradaInvalida
		}
		u.ApelNomb = *in.ApelNomb
	}
	if in.TipoUsuario != nil {
		if !entity.TipoValido(*in.TipoUsuario) {
			return nil, domain.ErrEntradaInvalida
		}
		u.TipoUsuario = *in.TipoUsuario
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	if in.IsStaff != nil {
		u.IsStaff = *in.IsStaff
	}
	if err := uc.repo.Actualizar(ctx, u); err != nil {
		return nil, err
	}
	return aUsuarioResponse(u), nil
}

// Eliminar borra el usuario con ese DNI.
func (uc *UsuarioUseCase) Eliminar(ctx context.Context, dni string) error {
	return uc.repo.EliminarPorDNI(ctx, dni)
}

// Tipos devuelve los tipos de usuario válidos.
func (uc *UsuarioUseCase) Tipos() []string {
	return entity.TiposUsuario
}

// DNIValido valida el identificador de login: 8 o 12 dígitos.
func DNIValido(dni string) bool {
	if len(dni) != 8 && len(dni) != 12 {
		return false
	}
	for _, r := range dni {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func aUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:          u.ID,
		DNI:         u.DNI,
		ApelNomb:    u.ApelNomb,
		TipoUsuario: u.TipoUsuario,
		IsActive:    u.IsActive,
		IsStaff:     u.IsStaff,
		DateJoined:  u.DateJoined,
	}
}
