package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acuinorte/asistencia-api/internal/application/asistencia"
	"github.com/acuinorte/asistencia-api/internal/application/dto"
	"github.com/acuinorte/asistencia-api/internal/domain"
)

// AsistenciaHandler maneja la importación y consulta de asistencia
// (protegido).
type AsistenciaHandler struct {
	importar *asistencia.ImportarUseCase
	consulta *asistencia.ConsultaUseCase
}

// NewAsistenciaHandler construye el handler.
func NewAsistenciaHandler(importar *asistencia.ImportarUseCase, consulta *asistencia.ConsultaUseCase) *AsistenciaHandler {
	return &AsistenciaHandler{importar: importar, consulta: consulta}
}

// Importar registra un lote de asistencia contra la jornada abierta.
// POST /api/importar-asistencia/
func (h *AsistenciaHandler) Importar(c *fiber.Ctx) error {
	var in dto.ImportarAsistenciaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	a, err := h.importar.Importar(c.Context(), in)
	if err != nil {
		switch err {
		case domain.ErrSinJornadaAbierta:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SIN_JORNADA_ABIERTA", Message: "no hay jornada abierta"})
		case domain.ErrTrabajadorYaImportado:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "TRABAJADOR_YA_IMPORTADO", Message: "el trabajador ya tiene asistencia en la jornada abierta"})
		case domain.ErrEntradaInvalida:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(a)
}

// ListarTodo devuelve todas las importaciones con su detalle.
// GET /api/importar-asistencia-detalle/
func (h *AsistenciaHandler) ListarTodo(c *fiber.Ctx) error {
	list, err := h.consulta.ListarTodo(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(list)
}

// ActualizarPorLabor cambia la cantidad de la línea trabajador+labor de la
// jornada abierta.
// PUT /api/asistencia/:idcodigogeneral/:idlabor/
func (h *AsistenciaHandler) ActualizarPorLabor(c *fiber.Ctx) error {
	idCodigoGeneral := c.Params("idcodigogeneral")
	idLabor := c.Params("idlabor")
	var in dto.ActualizarCantidadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Cantidad == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad requerida"})
	}
	a, err := h.consulta.ActualizarCantidadPorLabor(c.Context(), idCodigoGeneral, idLabor, *in.Cantidad)
	if err != nil {
		return h.errorActualizar(c, err)
	}
	return c.JSON(a)
}

// ActualizarPorTrabajador cambia la cantidad de la primera línea del
// trabajador desde la apertura de la jornada, sin filtrar por labor.
// PUT /api/pota/importarasistencia/:idcodigogeneral/
func (h *AsistenciaHandler) ActualizarPorTrabajador(c *fiber.Ctx) error {
	idCodigoGeneral := c.Params("idcodigogeneral")
	var in dto.ActualizarCantidadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Cantidad == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad requerida"})
	}
	a, err := h.consulta.ActualizarCantidadPorTrabajador(c.Context(), idCodigoGeneral, *in.Cantidad)
	if err != nil {
		return h.errorActualizar(c, err)
	}
	return c.JSON(a)
}

// ListarJornadaActual lista las importaciones de la jornada abierta.
// Sin jornada abierta responde 400.
// GET /api/pota/importarasistencia/
func (h *AsistenciaHandler) ListarJornadaActual(c *fiber.Ctx) error {
	return h.listarJornadaActual(c, fiber.StatusBadRequest)
}

// IngresosDiaActual lista las importaciones de la jornada abierta,
// opcionalmente filtradas por trabajador. Sin jornada abierta responde 404:
// el día de hoy no existe como recurso.
// GET /api/ingresos-dia-actual/[:idcodigogeneral/]
func (h *AsistenciaHandler) IngresosDiaActual(c *fiber.Ctx) error {
	return h.listarJornadaActual(c, fiber.StatusNotFound)
}

func (h *AsistenciaHandler) listarJornadaActual(c *fiber.Ctx, sinJornadaStatus int) error {
	idCodigoGeneral := c.Params("idcodigogeneral")
	list, err := h.consulta.ListarJornadaActual(c.Context(), idCodigoGeneral)
	if err != nil {
		switch err {
		case domain.ErrSinJornadaAbierta:
			return c.Status(sinJornadaStatus).JSON(dto.ErrorResponse{Code: "SIN_JORNADA_ABIERTA", Message: "no hay jornada abierta"})
		case domain.ErrNoEncontrado:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sin asistencia para el trabajador en la jornada"})
		}
		return internalError(c, err)
	}
	return c.JSON(list)
}

// ListarPorFecha lista las importaciones de la jornada abierta en esa fecha.
// GET /api/importaciones-fechas/:fecha/
func (h *AsistenciaHandler) ListarPorFecha(c *fiber.Ctx) error {
	fecha := c.Params("fecha")
	if len(fecha) != 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha en formato YYYYMMDD"})
	}
	list, err := h.consulta.ListarPorFecha(c.Context(), fecha)
	if err != nil {
		if err == domain.ErrNoEncontrado {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sin jornada en esa fecha"})
		}
		return internalError(c, err)
	}
	return c.JSON(list)
}

// errorActualizar mapea los errores comunes de los PUT de cantidad.
func (h *AsistenciaHandler) errorActualizar(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrSinJornadaAbierta:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SIN_JORNADA_ABIERTA", Message: "no hay jornada abierta"})
	case domain.ErrDetalleNoEncontrado:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "detalle no encontrado"})
	case domain.ErrEntradaInvalida:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad inválida"})
	}
	return internalError(c, err)
}
