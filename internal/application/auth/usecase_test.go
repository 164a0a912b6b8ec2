package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/acuinorte/asistencia-api/internal/application/auth"
	"github.com/acuinorte/asistencia-api/internal/application/dto"
	"github.com/acuinorte/asistencia-api/internal/domain"
	"github.com/acuinorte/asistencia-api/internal/domain/entity"
	pkgjwt "github.com/acuinorte/asistencia-api/pkg/jwt"
)

type fakeUsuarios struct {
	usuarios []*entity.Usuario
}

func (f *fakeUsuarios) Crear(_ context.Context, u *entity.Usuario) error { return nil }
func (f *fakeUsuarios) PorID(_ context.Context, _ string) (*entity.Usuario, error) {
	return nil, nil
}
func (f *fakeUsuarios) PorDNI(_ context.Context, dni string) (*entity.Usuario, error) {
	for _, u := range f.usuarios {
		if u.DNI == dni {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUsuarios) Listar(_ context.Context) ([]*entity.Usuario, error) { return nil, nil }
func (f *fakeUsuarios) Actualizar(_ context.Context, _ *entity.Usuario) error { return nil }
func (f *fakeUsuarios) EliminarPorDNI(_ context.Context, _ string) error { return nil }

var cfgTest = auth.JWTConfig{
	Secret:     "secret-de-tests",
	ExpMinutes: 60,
	Issuer:     "asistencia-api-test",
}

func usuarioConPassword(t *testing.T, dni, password string, activo bool) *entity.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.Usuario{
		ID:           "00000000-0000-0000-0000-000000000001",
		DNI:          dni,
		ApelNomb:     "QUISPE MAMANI JUAN",
		TipoUsuario:  entity.TipoProceso,
		PasswordHash: string(hash),
		IsActive:     activo,
	}
}

func TestLogin_CredencialesValidas_EmiteToken(t *testing.T) {
	repo := &fakeUsuarios{usuarios: []*entity.Usuario{
		usuarioConPassword(t, "45678901", "secreto123", true),
	}}
	uc := auth.NewAuthUseCase(repo, cfgTest)

	out, err := uc.Login(context.Background(), dto.LoginRequest{DNI: "45678901", Password: "secreto123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Access)

	// El token lleva los claims del usuario.
	userID, dni, tipo, err := pkgjwt.Parse(cfgTest.Secret, out.Access)
	require.NoError(t, err)
	assert.Equal(t, out.ID, userID)
	assert.Equal(t, "45678901", dni)
	assert.Equal(t, entity.TipoProceso, tipo)
}

// DNI inexistente y password incorrecto responden idéntico, para no revelar
// qué DNIs están registrados.
func TestLogin_CredencialesMalas_MismoError(t *testing.T) {
	repo := &fakeUsuarios{usuarios: []*entity.Usuario{
		usuarioConPassword(t, "45678901", "secreto123", true),
	}}
	uc := auth.NewAuthUseCase(repo, cfgTest)

	_, errPass := uc.Login(context.Background(), dto.LoginRequest{DNI: "45678901", Password: "otra"})
	_, errDNI := uc.Login(context.Background(), dto.LoginRequest{DNI: "99999999", Password: "secreto123"})

	assert.ErrorIs(t, errPass, domain.ErrNoAutorizado)
	assert.ErrorIs(t, errDNI, domain.ErrNoAutorizado)
}

func TestLogin_UsuarioInactivo_Prohibido(t *testing.T) {
	repo := &fakeUsuarios{usuarios: []*entity.Usuario{
		usuarioConPassword(t, "45678901", "secreto123", false),
	}}
	uc := auth.NewAuthUseCase(repo, cfgTest)

	_, err := uc.Login(context.Background(), dto.LoginRequest{DNI: "45678901", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrProhibido)
}

func TestLogin_CamposVacios_Rechaza(t *testing.T) {
	uc := auth.NewAuthUseCase(&fakeUsuarios{}, cfgTest)

	_, err := uc.Login(context.Background(), dto.LoginRequest{})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}
