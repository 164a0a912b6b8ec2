package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acuinorte/asistencia-api/internal/application/dto"
	"github.com/acuinorte/asistencia-api/internal/application/usecase"
	"github.com/acuinorte/asistencia-api/internal/domain"
)

// UsuarioHandler maneja las cuentas de usuario.
type UsuarioHandler struct {
	uc *usecase.UsuarioUseCase
}

// NewUsuarioHandler construye el handler.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// Crear registra un usuario nuevo. La ruta es pública: el alta de cuenta
// no exige token.
// POST /api/usuarios/
func (h *UsuarioHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	u, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		switch err {
		case domain.ErrEntradaInvalida:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dni (8 o 12 dígitos), apel_nomb y password requeridos"})
		case domain.ErrDNIYaRegistrado:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DNI_REGISTRADO", Message: "el dni ya está registrado"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(u)
}

// Listar devuelve todos los usuarios (protegido).
// GET /api/usuarios/
func (h *UsuarioHandler) Listar(c *fiber.Ctx) error {
	list, err := h.uc.Listar(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(list)
}

// Actual devuelve el usuario del token.
// GET /api/usuarios/actual/
func (h *UsuarioHandler) Actual(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	u, err := h.uc.PorID(c.Context(), userID)
	if err != nil {
		if err == domain.ErrUsuarioNoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		return internalError(c, err)
	}
	return c.JSON(u)
}

// PorDNI devuelve el usuario con ese DNI.
// GET /api/usuarios/dni/:dni/
func (h *UsuarioHandler) PorDNI(c *fiber.Ctx) error {
	dni := c.Params("dni")
	u, err := h.uc.PorDNI(c.Context(), dni)
	if err != nil {
		if err == domain.ErrUsuarioNoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		return internalError(c, err)
	}
	return c.JSON(u)
}

// Actualizar aplica cambios parciales al usuario con ese DNI.
// PUT /api/usuarios/actualizar/:dni/
func (h *UsuarioHandler) Actualizar(c *fiber.Ctx) error {
	dni := c.Params("dni")
	var in dto.ActualizarUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	u, err := h.uc.Actualizar(c.Context(), dni, in)
	if err != nil {
		switch err {
		case domain.ErrEntradaInvalida:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		case domain.ErrUsuarioNoEncontrado:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		return internalError(c, err)
	}
	return c.JSON(u)
}

// Eliminar borra el usuario con ese DNI.
// DELETE /api/usuarios/eliminar/:dni/
func (h *UsuarioHandler) Eliminar(c *fiber.Ctx) error {
	dni := c.Params("dni")
	if err := h.uc.Eliminar(c.Context(), dni); err != nil {
		if err == domain.ErrUsuarioNoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		return internalError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Tipos devuelve los tipos de usuario válidos.
// GET /api/tipoUsuarios/
func (h *UsuarioHandler) Tipos(c *fiber.Ctx) error {
	return c.JSON(h.uc.Tipos())
}
