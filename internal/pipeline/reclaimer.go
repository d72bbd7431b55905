package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/kurochkinivan/project_ingest/internal/domain"
	"github.com/robfig/cron/v3"
)

// Reclaimer removes staging directories that are no longer needed: those of
// deleted projects and, when a retention is set, those older than it.
type Reclaimer struct {
	log       *slog.Logger
	staging   *Staging
	projects  ProjectProvider
	schedule  string
	retention time.Duration
	now       func() time.Time
}

func NewReclaimer(
	log *slog.Logger,
	staging *Staging,
	projects ProjectProvider,
	schedule string,
	retention time.Duration,
) *Reclaimer {
	return &Reclaimer{
		log:       log,
		staging:   staging,
		projects:  projects,
		schedule:  schedule,
		retention: retention,
		now:       time.Now,
	}
}

// Run reclaims on the configured cron schedule until ctx is done. An empty
// schedule disables the periodic pass.
func (r *Reclaimer) Run(ctx context.Context) error {
	if r.schedule == "" {
		r.log.InfoContext(ctx, "periodic reclaim disabled")
		<-ctx.Done()
		return ctx.Err()
	}

	c := cron.New()

	_, err := c.AddFunc(r.schedule, func() {
		r.log.DebugContext(ctx, "reclaim cycle started")

		n, err := r.ReclaimAll(ctx)
		if err != nil {
			r.log.ErrorContext(ctx, "failed to reclaim staging", slog.String("err", err.Error()))
			return
		}

		r.log.InfoContext(ctx, "reclaim cycle finished", slog.Int("removed", n))
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reclaim %q: %w", r.schedule, err)
	}

	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()

	return ctx.Err()
}

// ReclaimAll scans the storage root once and returns how many project
// directories were removed. Entries that cannot be checked are logged and kept.
func (r *Reclaimer) ReclaimAll(ctx context.Context) (int, error) {
	entries, err := os.ReadDir(r.staging.Root())
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read directory %q: %w", r.staging.Root(), err)
	}

	removed := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return removed, err
		}

		ok, err := r.processEntry(ctx, entry)
		if err != nil {
			r.log.ErrorContext(ctx, "failed to process staging entry, skipping",
				slog.String("entry", entry.Name()),
				slog.String("err", err.Error()),
			)
			continue
		}

		if ok {
			removed++
		}
	}

	return removed, nil
}

func (r *Reclaimer) processEntry(ctx context.Context, entry os.DirEntry) (bool, error) {
	if !entry.IsDir() {
		return false, nil
	}

	projectID, err := strconv.ParseInt(entry.Name(), 10, 64)
	if err != nil || projectID <= 0 {
		return false, nil
	}

	expired, err := r.expired(entry)
	if err != nil {
		return false, err
	}

	if !expired {
		_, err = r.projects.ProjectByID(ctx, projectID)
		switch {
		case errors.Is(err, domain.ErrProjectNotFound):
		case err != nil:
			return false, fmt.Errorf("failed to get project: %w", err)
		default:
			return false, nil
		}
	}

	if err := r.Reclaim(ctx, projectID); err != nil {
		return false, err
	}

	return true, nil
}

func (r *Reclaimer) expired(entry os.DirEntry) (bool, error) {
	if r.retention <= 0 {
		return false, nil
	}

	info, err := entry.Info()
	if err != nil {
		return false, fmt.Errorf("failed to stat entry: %w", err)
	}

	return r.now().Sub(info.ModTime()) > r.retention, nil
}

// Reclaim removes everything staged for projectID. Removing a directory that
// does not exist is not an error.
func (r *Reclaimer) Reclaim(ctx context.Context, projectID int64) error {
	dir := r.staging.ProjectDir(projectID)

	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to remove %q: %w", dir, err)
	}

	r.log.DebugContext(ctx, "staging reclaimed", slog.Int64("project_id", projectID))

	return nil
}
