package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/acuinorte/asistencia-api/internal/application/dto"
	"github.com/acuinorte/asistencia-api/internal/domain"
	"github.com/acuinorte/asistencia-api/internal/domain/repository"
	"github.com/acuinorte/asistencia-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación: login por DNI.
type AuthUseCase struct {
	usuarios repository.UsuarioRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarios repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarios: usuarios, jwtCfg: jwtCfg}
}

// Login verifica DNI/password, genera el JWT y retorna token + id de usuario.
// Credenciales malas y usuario inexistente responden igual (ErrNoAutorizado)
// para no revelar qué DNIs existen.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.DNI == "" || in.Password == "" {
		return nil, domain.ErrEntradaInvalida
	}
	u, err := uc.usuarios.PorDNI(ctx, in.DNI)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNoAutorizado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrNoAutorizado
	}
	if !u.IsActive {
		return nil, domain.ErrProhibido
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.DNI, u.TipoUsuario, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{ID: u.ID, Access: token}, nil
}
