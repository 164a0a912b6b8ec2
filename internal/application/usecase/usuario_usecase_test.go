package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/acuinorte/asistencia-api/internal/application/dto"
	"github.com/acuinorte/asistencia-api/internal/application/usecase"
	"github.com/acuinorte/asistencia-api/internal/domain"
	"github.com/acuinorte/asistencia-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del repositorio de usuarios
// ──────────────────────────────────────────────────────────────────────────────

type fakeUsuarioRepo struct {
	usuarios []*entity.Usuario
}

func (f *fakeUsuarioRepo) Crear(_ context.Context, u *entity.Usuario) error {
	for _, e := range f.usuarios {
		if e.DNI == u.DNI {
			return domain.ErrDNIYaRegistrado
		}
	}
	cp := *u
	f.usuarios = append(f.usuarios, &cp)
	return nil
}

func (f *fakeUsuarioRepo) PorID(_ context.Context, id string) (*entity.Usuario, error) {
	for _, e := range f.usuarios {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) PorDNI(_ context.Context, dni string) (*entity.Usuario, error) {
	for _, e := range f.usuarios {
		if e.DNI == dni {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) Listar(_ context.Context) ([]*entity.Usuario, error) {
	return f.usuarios, nil
}

func (f *fakeUsuarioRepo) Actualizar(_ context.Context, u *entity.Usuario) error {
	for i, e := range f.usuarios {
		if e.ID == u.ID {
			cp := *u
			f.usuarios[i] = &cp
			return nil
		}
	}
	return domain.ErrUsuarioNoEncontrado
}

func (f *fakeUsuarioRepo) EliminarPorDNI(_ context.Context, dni string) error {
	for i, e := range f.usuarios {
		if e.DNI == dni {
			f.usuarios = append(f.usuarios[:i], f.usuarios[i+1:]...)
			return nil
		}
	}
	return domain.ErrUsuarioNoEncontrado
}

func crearRequest() dto.CrearUsuarioRequest {
	return dto.CrearUsuarioRequest{
		DNI:      "45678901",
		ApelNomb: "QUISPE MAMANI JUAN",
		Password: "secreto123",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearUsuario_HasheaPasswordYActiva(t *testing.T) {
	repo := &fakeUsuarioRepo{}
	uc := usecase.NewUsuarioUseCase(repo)

	u, err := uc.Crear(context.Background(), crearRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID, "debe asignarse un id")
	assert.True(t, u.IsActive, "un usuario nuevo nace activo")
	assert.Equal(t, entity.TipoAdministrador, u.TipoUsuario,
		"sin tipo explícito aplica Administrador")

	// El hash guardado verifica contra el password original.
	guardado := repo.usuarios[0]
	assert.NotEqual(t, "secreto123", guardado.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(guardado.PasswordHash), []byte("secreto123")))
}

func TestCrearUsuario_DNIInvalido_Rechaza(t *testing.T) {
	uc := usecase.NewUsuarioUseCase(&fakeUsuarioRepo{})

	for _, dni := range []string{"", "1234567", "123456789", "abcdefgh", "12345678901"} {
		in := crearRequest()
		in.DNI = dni
		_, err := uc.Crear(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "dni %q", dni)
	}
}

func TestCrearUsuario_DNIDoceDigitos_Acepta(t *testing.T) {
	uc := usecase.NewUsuarioUseCase(&fakeUsuarioRepo{})

	in := crearRequest()
	in.DNI = "123456789012"
	_, err := uc.Crear(context.Background(), in)
	assert.NoError(t, err, "un carné de extranjería de 12 dígitos es válido")
}

func TestCrearUsuario_TipoDesconocido_Rechaza(t *testing.T) {
	uc := usecase.NewUsuarioUseCase(&fakeUsuarioRepo{})

	in := crearRequest()
	in.TipoUsuario = "Gerente"
	_, err := uc.Crear(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestCrearUsuario_DNIRepetido_Conflicto(t *testing.T) {
	uc := usecase.NewUsuarioUseCase(&fakeUsuarioRepo{})

	_, err := uc.Crear(context.Background(), crearRequest())
	require.NoError(t, err)

	_, err = uc.Crear(context.Background(), crearRequest())
	assert.ErrorIs(t, err, domain.ErrDNIYaRegistrado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Actualizar / Eliminar
// ──────────────────────────────────────────────────────────────────────────────

func TestActualizarUsuario_CambiosParciales(t *testing.T) {
	repo := &fakeUsuarioRepo{}
	uc := usecase.NewUsuarioUseCase(repo)

	_, err := uc.Crear(context.Background(), crearRequest())
	require.NoError(t, err)

	nombre := "QUISPE MAMANI JUAN CARLOS"
	tipo := entity.TipoSupervisor
	u, err := uc.Actualizar(context.Background(), "45678901", dto.ActualizarUsuarioRequest{
		ApelNomb:    &nombre,
		TipoUsuario: &tipo,
	})
	require.NoError(t, err)

	assert.Equal(t, nombre, u.ApelNomb)
	assert.Equal(t, entity.TipoSupervisor, u.TipoUsuario)
	assert.True(t, u.IsActive, "los campos no enviados no cambian")
}

func TestActualizarUsuario_NoTocaPassword(t *testing.T) {
	repo := &fakeUsuarioRepo{}
	uc := usecase.NewUsuarioUseCase(repo)

	_, err := uc.Crear(context.Background(), crearRequest())
	require.NoError(t, err)
	hashAntes := repo.usuarios[0].PasswordHash

	activo := false
	_, err = uc.Actualizar(context.Background(), "45678901", dto.ActualizarUsuarioRequest{IsActive: &activo})
	require.NoError(t, err)

	assert.Equal(t, hashAntes, repo.usuarios[0].PasswordHash,
		"el PUT por DNI nunca cambia el password")
	assert.False(t, repo.usuarios[0].IsActive)
}

func TestActualizarUsuario_Inexistente_NotFound(t *testing.T) {
	uc := usecase.NewUsuarioUseCase(&fakeUsuarioRepo{})

	nombre := "X"
	_, err := uc.Actualizar(context.Background(), "45678901", dto.ActualizarUsuarioRequest{ApelNomb: &nombre})
	assert.ErrorIs(t, err, domain.ErrUsuarioNoEncontrado)
}

func TestEliminarUsuario_PorDNI(t *testing.T) {
	repo := &fakeUsuarioRepo{}
	uc := usecase.NewUsuarioUseCase(repo)

	_, err := uc.Crear(context.Background(), crearRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Eliminar(context.Background(), "45678901"))
	assert.Empty(t, repo.usuarios)

	err = uc.Eliminar(context.Background(), "45678901")
	assert.ErrorIs(t, err, domain.ErrUsuarioNoEncontrado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tipos
// ──────────────────────────────────────────────────────────────────────────────

func TestTipos_DevuelveLosTresRoles(t *testing.T) {
	uc := usecase.NewUsuarioUseCase(&fakeUsuarioRepo{})

	tipos := uc.Tipos()
	assert.ElementsMatch(t, []string{
		entity.TipoAdministrador, entity.TipoProceso, entity.TipoSupervisor,
	}, tipos)
}
