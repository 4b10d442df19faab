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

	"github.com/jhoicas/bom-merge-api/internal/application/auth"
	"github.com/jhoicas/bom-merge-api/internal/application/usecase"
	"github.com/jhoicas/bom-merge-api/internal/infrastructure/excel"
	"github.com/jhoicas/bom-merge-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/bom-merge-api/internal/interfaces/http"
	"github.com/jhoicas/bom-merge-api/pkg/config"
	"github.com/jhoicas/bom-merge-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	sourceRepo := postgres.NewSourceRepository(pool)
	partRepo := postgres.NewPartRepository(pool)
	snapshotRepo := postgres.NewSnapshotRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	importer := excel.NewBOMImporter()
	exporter := excel.NewSnapshotExporter()

	sourceUC := usecase.NewSourceUseCase(sourceRepo, partRepo, importer)
	mergeUC := usecase.NewMergeUseCase(sourceRepo, partRepo)
	editUC := usecase.NewEditUseCase(mergeUC, partRepo)
	snapshotUC := usecase.NewSnapshotUseCase(snapshotRepo, exporter)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    32 * 1024 * 1024, // libros Excel grandes
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "BOM Merge API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SourceUC:   sourceUC,
		MergeUC:    mergeUC,
		EditUC:     editUC,
		SnapshotUC: snapshotUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
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
