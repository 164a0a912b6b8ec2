package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/acuinorte/asistencia-api/internal/application/asistencia"
	"github.com/acuinorte/asistencia-api/internal/application/auth"
	"github.com/acuinorte/asistencia-api/internal/application/catalogo"
	"github.com/acuinorte/asistencia-api/internal/application/jornada"
	"github.com/acuinorte/asistencia-api/internal/application/reporte"
	"github.com/acuinorte/asistencia-api/internal/application/usecase"
	infrapdf "github.com/acuinorte/asistencia-api/internal/infrastructure/pdf"
	"github.com/acuinorte/asistencia-api/internal/infrastructure/postgres"
	httpRouter "github.com/acuinorte/asistencia-api/internal/interfaces/http"
	"github.com/acuinorte/asistencia-api/pkg/config"
	"github.com/acuinorte/asistencia-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	jornadaRepo := postgres.NewJornadaRepository(pool)
	asistenciaRepo := postgres.NewAsistenciaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	jornadaUC := jornada.NewUseCase(jornadaRepo)
	importarUC := asistencia.NewImportarUseCase(jornadaRepo, txRunner)
	consultaUC := asistencia.NewConsultaUseCase(jornadaRepo, asistenciaRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// PDF: reporte de asistencia de una jornada
	pdfGenerator := infrapdf.NewMarotoReporteGenerator()
	reporteUC := reporte.NewUseCase(jornadaRepo, asistenciaRepo, pdfGenerator)

	// Catálogos: un caso de uso por tabla; planillas aceptan código manual
	empresaUC := catalogo.NewUseCase(postgres.NewEmpresaRepository(pool))
	emisorUC := catalogo.NewUseCase(postgres.NewEmisorRepository(pool))
	turnoUC := catalogo.NewUseCase(postgres.NewTurnoRepository(pool))
	especieUC := catalogo.NewUseCase(postgres.NewEspecieRepository(pool))
	consumidorUC := catalogo.NewUseCase(postgres.NewConsumidorRepository(pool))
	responsableUC := catalogo.NewUseCase(postgres.NewResponsableRepository(pool))
	planillaUC := catalogo.NewUseCaseIDManual(postgres.NewPlanillaRepository(pool))
	tipoEnvioUC := catalogo.NewTipoEnvioUseCase(postgres.NewTipoEnvioRepository(pool))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Asistencia API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		JornadaUC:     jornadaUC,
		ImportarUC:    importarUC,
		ConsultaUC:    consultaUC,
		ReporteUC:     reporteUC,
		AuthUC:        authUC,
		UsuarioUC:     usuarioUC,
		EmpresaUC:     empresaUC,
		EmisorUC:      emisorUC,
		TurnoUC:       turnoUC,
		EspecieUC:     especieUC,
		ConsumidorUC:  consumidorUC,
		ResponsableUC: responsableUC,
		PlanillaUC:    planillaUC,
		TipoEnvioUC:   tipoEnvioUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
