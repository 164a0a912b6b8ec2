package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acuinorte/asistencia-api/internal/application/dto"
	"github.com/acuinorte/asistencia-api/internal/application/jornada"
	"github.com/acuinorte/asistencia-api/internal/domain"
)

// JornadaHandler maneja la apertura y cierre del día y el histórico de
// jornadas (protegido).
type JornadaHandler struct {
	uc *jornada.UseCase
}

// NewJornadaHandler construye el handler.
func NewJornadaHandler(uc *jornada.UseCase) *JornadaHandler {
	return &JornadaHandler{uc: uc}
}

// Abrir abre el día.
// POST /api/estado/
func (h *JornadaHandler) Abrir(c *fiber.Ctx) error {
	j, err := h.uc.Abrir(c.Context())
	if err != nil {
		if err == domain.ErrJornadaAbierta {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "JORNADA_ABIERTA", Message: "ya existe una jornada abierta"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(j)
}

// Cerrar cierra la jornada abierta.
// PUT /api/estado/
func (h *JornadaHandler) Cerrar(c *fiber.Ctx) error {
	j, err := h.uc.Cerrar(c.Context())
	if err != nil {
		if err == domain.ErrSinJornadaAbierta {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SIN_JORNADA_ABIERTA", Message: "no hay jornada abierta"})
		}
		return internalError(c, err)
	}
	return c.JSON(j)
}

// MasReciente devuelve la última jornada registrada, abierta o cerrada.
// GET /api/estado/
func (h *JornadaHandler) MasReciente(c *fiber.Ctx) error {
	j, err := h.uc.MasReciente(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	if j == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sin jornadas registradas"})
	}
	return c.JSON(j)
}

// Listar devuelve el histórico completo de jornadas.
// GET /api/registros/
func (h *JornadaHandler) Listar(c *fiber.Ctx) error {
	list, err := h.uc.Listar(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(list)
}
