package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/acuinorte/asistencia-api/internal/application/dto"
	"github.com/acuinorte/asistencia-api/internal/application/reporte"
	"github.com/acuinorte/asistencia-api/internal/domain"
)

// ReporteHandler sirve el reporte PDF de asistencia de una jornada
// (protegido).
type ReporteHandler struct {
	uc *reporte.UseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *reporte.UseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// PDFJornada devuelve el PDF con las importaciones de la jornada de la fecha.
// GET /api/reportes/asistencia/:fecha/pdf
func (h *ReporteHandler) PDFJornada(c *fiber.Ctx) error {
	fecha := c.Params("fecha")
	if len(fecha) != 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha en formato YYYYMMDD"})
	}
	pdfBytes, err := h.uc.PDFJornada(c.Context(), fecha)
	if err != nil {
		if err == domain.ErrNoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sin jornada en esa fecha"})
		}
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="asistencia-%s.pdf"`, fecha))
	return c.Send(pdfBytes)
}
