package handlers

import (
	"ResumeBuilder/internal/config"
	"ResumeBuilder/internal/middleware"
	"ResumeBuilder/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	resumeService *service.ResumeService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	resumeHandler := NewResumeHandler(resumeService, logger)
	catalogHandler := NewCatalogHandler()

	// Resume routes
	r.Route("/api/resumes", func(r chi.Router) {
		r.Get("/", resumeHandler.List)
		r.Post("/", resumeHandler.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", resumeHandler.Get)
			r.Patch("/", resumeHandler.Update)
			r.Delete("/", resumeHandler.Delete)
			r.Post("/duplicate", resumeHandler.Duplicate)
			r.Get("/render", resumeHandler.Render)
			r.Get("/preview", resumeHandler.Preview)
			r.Post("/validate", resumeHandler.Validate)
		})
	})

	// Catalog routes
	r.Get("/api/sections", catalogHandler.Sections)
	r.Get("/api/templates", catalogHandler.Templates)

	return &Handler{Router: r}
}
