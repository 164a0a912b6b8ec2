package catalogo

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/acuinorte/asistencia-api/internal/application/dto"
	"github.com/acuinorte/asistencia-api/internal/domain"
	"github.com/acuinorte/asistencia-api/internal/domain/entity"
	"github.com/acuinorte/asistencia-api/internal/domain/repository"
)

// TipoEnvioUseCase catálogo de tipos de envío. El código de un carácter se
// deriva del nombre: primera letra, en mayúscula y sin tilde ("Óptimo" -> "O").
type TipoEnvioUseCase struct {
	repo repository.TipoEnvioRepository
}

// NewTipoEnvioUseCase construye el caso de uso.
func NewTipoEnvioUseCase(repo repository.TipoEnvioRepository) *TipoEnvioUseCase {
	return &TipoEnvioUseCase{repo: repo}
}

// Listar devuelve todos los tipos de envío.
func (uc *TipoEnvioUseCase) Listar(ctx context.Context) ([]*dto.TipoEnvioResponse, error) {
	list, err := uc.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TipoEnvioResponse, 0, len(list))
	for _, t := range list {
		out = append(out, &dto.TipoEnvioResponse{TipoEnvio: t.TipoEnvio, Nombre: t.Nombre})
	}
	return out, nil
}

// Crear registra un tipo de envío capitalizando el nombre y derivando el
// código de su primera letra.
func (uc *TipoEnvioUseCase) Crear(ctx context.Context, in dto.TipoEnvioRequest) (*dto.TipoEnvioResponse, error) {
	nombre := capitalizar(strings.TrimSpace(in.Nombre))
	if nombre == "" {
		return nil, domain.ErrEntradaInvalida
	}
	t := &entity.TipoEnvio{
		TipoEnvio: codigoDeNombre(nombre),
		Nombre:    nombre,
	}
	if err := uc.repo.Crear(ctx, t); err != nil {
		return nil, err
	}
	return &dto.TipoEnvioResponse{TipoEnvio: t.TipoEnvio, Nombre: t.Nombre}, nil
}

// capitalizar pone la primera letra en mayúscula y el resto en minúscula.
func capitalizar(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// codigoDeNombre devuelve la primera letra del nombre sin marcas diacríticas
// ("Ágil" -> "A"), que es el código de un carácter del tipo de envío.
func codigoDeNombre(nombre string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plano, _, err := transform.String(t, nombre)
	if err != nil || plano == "" {
		plano = nombre
	}
	r := []rune(plano)
	return string(unicode.ToUpper(r[0]))
}
