package v1

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/project_ingest/internal/config"
)

type Server struct {
	httpServer *http.Server
}

type Dependencies struct {
	Projects      ProjectsRepository
	Ingester      Ingester
	Reclaimer     StagingReclaimer
	Artifacts     Artifacts
	Authenticator Authenticator
	MaxUploadSize int64
}

func NewServer(log *slog.Logger, cfg config.HTTP, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      NewRouter(log, deps),
		},
	}
}

func NewRouter(log *slog.Logger, deps Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	ph := NewProjectsHandler(log, deps.Projects, deps.Ingester, deps.Reclaimer, deps.Artifacts, deps.MaxUploadSize)
	ah := NewAuthHandler(log, deps.Authenticator)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			writeText(w, http.StatusOK, "ok")
		})

		r.Post("/auth/register", ah.Register)
		r.Post("/auth/login", ah.Login)

		r.Route("/projects", func(r chi.Router) {
			r.Use(RequireBearer(log, deps.Authenticator))

			r.Get("/", ph.GetProjects)
			r.Post("/", ph.CreateProject)
			r.Post("/upload", ph.Upload)
			r.Post("/create-and-upload", ph.CreateAndUpload)
			r.Get("/user/{userId}", ph.GetUserProjects)
			r.Get("/{id}", ph.GetProject)
			r.Delete("/{id}", ph.DeleteProject)
			r.Get("/{id}/manifest", ph.GetManifest)
			r.Get("/{id}/report", ph.GetReport)
			r.Delete("/{id}/uploads", ph.DeleteUploads)
		})
	})

	return r
}

func (s *Server) Addr() string {
	return s.httpServer.Addr
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
