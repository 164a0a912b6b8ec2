package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acuinorte/asistencia-api/internal/application/asistencia"
	"github.com/acuinorte/asistencia-api/internal/application/auth"
	"github.com/acuinorte/asistencia-api/internal/application/catalogo"
	"github.com/acuinorte/asistencia-api/internal/application/jornada"
	"github.com/acuinorte/asistencia-api/internal/application/reporte"
	"github.com/acuinorte/asistencia-api/internal/application/usecase"
	"github.com/acuinorte/asistencia-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	JornadaUC     *jornada.UseCase
	ImportarUC    *asistencia.ImportarUseCase
	ConsultaUC    *asistencia.ConsultaUseCase
	ReporteUC     *reporte.UseCase
	AuthUC        *auth.AuthUseCase
	UsuarioUC     *usecase.UsuarioUseCase
	EmpresaUC     *catalogo.UseCase
	EmisorUC      *catalogo.UseCase
	TurnoUC       *catalogo.UseCase
	EspecieUC     *catalogo.UseCase
	ConsumidorUC  *catalogo.UseCase
	ResponsableUC *catalogo.UseCase
	PlanillaUC    *catalogo.UseCase
	TipoEnvioUC   *catalogo.TipoEnvioUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth y registro (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	api.Post("/token/", authHandler.Login)
	api.Post("/usuarios/", usuarioHandler.Crear)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Jornada (protegido)
	jornadaHandler := NewJornadaHandler(deps.JornadaUC)
	protected.Post("/estado/", jornadaHandler.Abrir)
	protected.Put("/estado/", jornadaHandler.Cerrar)
	protected.Get("/estado/", jornadaHandler.MasReciente)
	protected.Get("/registros/", jornadaHandler.Listar)

	// Asistencia (protegido)
	asistenciaHandler := NewAsistenciaHandler(deps.ImportarUC, deps.ConsultaUC)
	protected.Post("/importar-asistencia/", asistenciaHandler.Importar)
	protected.Get("/importar-asistencia-detalle/", asistenciaHandler.ListarTodo)
	protected.Put("/asistencia/:idcodigogeneral/:idlabor/", asistenciaHandler.ActualizarPorLabor)
	protected.Get("/pota/importarasistencia/", asistenciaHandler.ListarJornadaActual)
	protected.Put("/pota/importarasistencia/:idcodigogeneral/", asistenciaHandler.ActualizarPorTrabajador)
	protected.Get("/ingresos-dia-actual/", asistenciaHandler.IngresosDiaActual)
	protected.Get("/ingresos-dia-actual/:idcodigogeneral/", asistenciaHandler.IngresosDiaActual)
	protected.Get("/importaciones-fechas/:fecha/", asistenciaHandler.ListarPorFecha)

	// Reportes (protegido)
	reporteHandler := NewReporteHandler(deps.ReporteUC)
	protected.Get("/reportes/asistencia/:fecha/pdf", reporteHandler.PDFJornada)

	// Usuarios (protegido; la gestión de cuentas exige Administrador)
	protected.Get("/usuarios/actual/", usuarioHandler.Actual)
	protected.Get("/tipoUsuarios/", usuarioHandler.Tipos)
	admin := protected.Group("/usuarios", RequireRole(entity.TipoAdministrador))
	admin.Get("/", usuarioHandler.Listar)
	admin.Get("/dni/:dni/", usuarioHandler.PorDNI)
	admin.Put("/actualizar/:dni/", usuarioHandler.Actualizar)
	admin.Delete("/eliminar/:dni/", usuarioHandler.Eliminar)

	// Catálogos (protegido): list/create; responsables y planillas exponen
	// además el detalle por código.
	registrarCatalogo(protected, "/empresas", NewCatalogoHandler(deps.EmpresaUC), false)
	registrarCatalogo(protected, "/emisor", NewCatalogoHandler(deps.EmisorUC), false)
	registrarCatalogo(protected, "/turno", NewCatalogoHandler(deps.TurnoUC), false)
	registrarCatalogo(protected, "/especies", NewCatalogoHandler(deps.EspecieUC), false)
	registrarCatalogo(protected, "/consumidor", NewCatalogoHandler(deps.ConsumidorUC), false)
	registrarCatalogo(protected, "/responsables", NewCatalogoHandler(deps.ResponsableUC), true)
	registrarCatalogo(protected, "/planillas", NewCatalogoHandler(deps.PlanillaUC), true)

	tipoEnvioHandler := NewTipoEnvioHandler(deps.TipoEnvioUC)
	protected.Get("/tiposenvio/", tipoEnvioHandler.Listar)
	protected.Post("/tiposenvio/", tipoEnvioHandler.Crear)
}

// registrarCatalogo monta las rutas de una entidad de catálogo.
func registrarCatalogo(r fiber.Router, prefix string, h *CatalogoHandler, conDetalle bool) {
	g := r.Group(prefix)
	g.Get("/", h.Listar)
	g.Post("/", h.Crear)
	if conDetalle {
		g.Get("/:id/", h.Obtener)
		g.Put("/:id/", h.Actualizar)
		g.Delete("/:id/", h.Eliminar)
	}
}
