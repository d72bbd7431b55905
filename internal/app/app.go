package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/kurochkinivan/project_ingest/internal/auth"
	"github.com/kurochkinivan/project_ingest/internal/config"
	v1 "github.com/kurochkinivan/project_ingest/internal/controller/http/v1"
	"github.com/kurochkinivan/project_ingest/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/project_ingest/internal/pipeline"
	"github.com/kurochkinivan/project_ingest/internal/repository/postgresql"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("storage_root", a.cfg.StorageRoot),
		slog.String("reclaim_schedule", a.cfg.ReclaimSchedule),
		slog.Duration("retention", a.cfg.Retention),
		slog.Int64("max_upload_size", a.cfg.MaxUploadSize),
	)

	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer pool.Close()

	projectsRepo := postgresql.NewProjectsRepository(pool)
	usersRepo := postgresql.NewUsersRepository(pool)
	tokensRepo := postgresql.NewTokensRepository(pool)
	txManager := postgresql.NewTxManager(pool)

	staging := pipeline.NewStaging(a.cfg.StorageRoot)
	reporter := pipeline.NewReporter(a.log, staging, report_generator.New())
	ingester := pipeline.NewIngester(
		a.log,
		staging,
		projectsRepo,
		pipeline.NewExtractor(a.log),
		pipeline.WithReporter(reporter),
	)
	reclaimer := pipeline.NewReclaimer(a.log, staging, projectsRepo, a.cfg.ReclaimSchedule, a.cfg.Retention)
	authService := auth.NewService(a.log, usersRepo, tokensRepo, txManager, a.cfg.TokenTTL)

	server := v1.NewServer(a.log, a.cfg.HTTP, v1.Dependencies{
		Projects:      projectsRepo,
		Ingester:      ingester,
		Reclaimer:     reclaimer,
		Artifacts:     staging,
		Authenticator: authService,
		MaxUploadSize: a.cfg.MaxUploadSize,
	})

	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "reclaimer started")
		return reclaimer.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "token purge started")
		return authService.RunTokenPurge(ctx, a.cfg.PurgeSchedule)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server", slog.String("addr", server.Addr()))

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "app stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "app stopped gracefully")

	return nil
}
