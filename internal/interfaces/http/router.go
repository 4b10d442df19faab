package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/bom-merge-api/internal/application/auth"
	"github.com/jhoicas/bom-merge-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SourceUC   *usecase.SourceUseCase
	MergeUC    *usecase.MergeUseCase
	EditUC     *usecase.EditUseCase
	SnapshotUC *usecase.SnapshotUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Orígenes (protegido)
	sourceHandler := NewSourceHandler(deps.SourceUC)
	protected.Post("/uploads", sourceHandler.Upload)
	sources := protected.Group("/sources")
	sources.Get("/", sourceHandler.List)
	sources.Put("/:file_id/name", sourceHandler.Rename)
	sources.Delete("/:file_id", sourceHandler.Delete)

	// Fusión y ediciones (protegido)
	mergeHandler := NewMergeHandler(deps.MergeUC, deps.EditUC)
	protected.Post("/merge", mergeHandler.Merge)
	protected.Post("/parts/updates", mergeHandler.UpdateParts)

	// Snapshots (protegido)
	snapshots := protected.Group("/snapshots")
	snapshotHandler := NewSnapshotHandler(deps.SnapshotUC)
	snapshots.Post("/", snapshotHandler.Save)
	snapshots.Get("/", snapshotHandler.List)
	snapshots.Get("/:id/parts", snapshotHandler.GetParts)
	snapshots.Get("/:id/export", snapshotHandler.Export)
	snapshots.Delete("/:id", snapshotHandler.Delete)
	snapshots.Delete("/:id/parts/:part_id", snapshotHandler.DeletePart)
}
