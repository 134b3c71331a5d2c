package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/majazi041999-spec/anbardarymajazi/internal/application/analytics"
	"github.com/majazi041999-spec/anbardarymajazi/internal/application/usecase"
	"github.com/majazi041999-spec/anbardarymajazi/internal/infrastructure/memstore"
	httpRouter "github.com/majazi041999-spec/anbardarymajazi/internal/interfaces/http"
	"github.com/majazi041999-spec/anbardarymajazi/pkg/config"
	"github.com/majazi041999-spec/anbardarymajazi/pkg/logger"
)

// swaggerSpecPath es relativo al directorio de trabajo del proceso,
// igual que los archivos .env que lee la configuración.
const swaggerSpecPath = "./docs/swagger.json"

// mountSwagger registra la UI de documentación en /docs. El middleware
// entra en pánico al construirse si el archivo no existe, así que solo
// se monta cuando la especificación está presente; si falta, el servidor
// arranca igual y se deja constancia en el log.
func mountSwagger(app *fiber.App, log *logger.Logger, specPath string) {
	if _, err := os.Stat(specPath); err != nil {
		log.Warn().
			Str("file", specPath).
			Msg("especificación swagger no encontrada, se omite la UI de documentación")
		return
	}

	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: specPath,
		Path:     "docs",
		Title:    "Anbardary API",
	}))
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Almacén en memoria: una sola instancia compartida por todos los
	// handlers, construida aquí y pasada por referencia (sin estado global).
	// El estado es volátil: se pierde al reiniciar el proceso.
	store := memstore.New(memstore.Options{
		DefaultSupplier:   cfg.Inventory.DefaultSupplier,
		DefaultDepartment: cfg.Inventory.DefaultDepartment,
	})
	log.Info().
		Str("default_supplier", cfg.Inventory.DefaultSupplier).
		Str("default_department", cfg.Inventory.DefaultDepartment).
		Msg("almacén en memoria inicializado")

	itemUC := usecase.NewItemUseCase(store, cfg.Inventory.DefaultUnit)
	receiptUC := usecase.NewReceiptUseCase(store)
	issueUC := usecase.NewIssueUseCase(store)
	masterUC := usecase.NewMasterDataUseCase(store)
	dashboardUC := analytics.NewDashboardUseCase(store)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New()) // la UI web consume la API desde otro origen

	mountSwagger(app, log, swaggerSpecPath)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:      itemUC,
		ReceiptUC:   receiptUC,
		IssueUC:     issueUC,
		MasterUC:    masterUC,
		DashboardUC: dashboardUC,
		RecentTake:  cfg.Inventory.RecentTake,
		TrendDays:   cfg.Inventory.TrendDays,
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
