package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acuinorte/asistencia-api/internal/application/catalogo"
	"github.com/acuinorte/asistencia-api/internal/application/dto"
	"github.com/acuinorte/asistencia-api/internal/domain"
)

// CatalogoHandler maneja una entidad de catálogo {código, nombre}. Se monta
// una instancia por entidad (empresas, emisores, turnos, consumidores,
// responsables, planillas).
type CatalogoHandler struct {
	uc *catalogo.UseCase
}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler(uc *catalogo.UseCase) *CatalogoHandler {
	return &CatalogoHandler{uc: uc}
}

// Listar devuelve todas las filas del catálogo.
func (h *CatalogoHandler) Listar(c *fiber.Ctx) error {
	list, err := h.uc.Listar(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(list)
}

// Obtener devuelve una fila por código.
func (h *CatalogoHandler) Obtener(c *fiber.Ctx) error {
	id := c.Params("id")
	item, err := h.uc.Obtener(c.Context(), id)
	if err != nil {
		if err == domain.ErrNoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
		}
		return internalError(c, err)
	}
	return c.JSON(item)
}

// Crear inserta una fila; el código lo asigna el correlativo salvo en
// entidades de código manual.
func (h *CatalogoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CatalogoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		switch err {
		case domain.ErrEntradaInvalida:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		case domain.ErrDuplicado:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICADO", Message: "el código ya existe"})
		case domain.ErrSecuenciaAgotada:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SECUENCIA_AGOTADA", Message: "no quedan códigos disponibles"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// Actualizar cambia el nombre de la fila.
func (h *CatalogoHandler) Actualizar(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.CatalogoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.Actualizar(c.Context(), id, in)
	if err != nil {
		switch err {
		case domain.ErrEntradaInvalida:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		case domain.ErrNoEncontrado:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
		}
		return internalError(c, err)
	}
	return c.JSON(item)
}

// Eliminar borra la fila por código.
func (h *CatalogoHandler) Eliminar(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Eliminar(c.Context(), id); err != nil {
		if err == domain.ErrNoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
		}
		return internalError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// TipoEnvioHandler maneja el catálogo de tipos de envío (código derivado del
// nombre).
type TipoEnvioHandler struct {
	uc *catalogo.TipoEnvioUseCase
}

// NewTipoEnvioHandler construye el handler.
func NewTipoEnvioHandler(uc *catalogo.TipoEnvioUseCase) *TipoEnvioHandler {
	return &TipoEnvioHandler{uc: uc}
}

// Listar devuelve todos los tipos de envío.
// GET /api/tiposenvio/
func (h *TipoEnvioHandler) Listar(c *fiber.Ctx) error {
	list, err := h.uc.Listar(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(list)
}

// Crear registra un tipo de envío.
// POST /api/tiposenvio/
func (h *TipoEnvioHandler) Crear(c *fiber.Ctx) error {
	var in dto.TipoEnvioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		switch err {
		case domain.ErrEntradaInvalida:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre requerido"})
		case domain.ErrDuplicado:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICADO", Message: "ya existe un tipo de envío con ese código"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}
