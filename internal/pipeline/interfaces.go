package pipeline

import (
	"context"

	"github.com/kurochkinivan/project_ingest/internal/domain"
)

type ProjectProvider interface {
	ProjectByID(ctx context.Context, id int64) (*domain.Project, error)
}

type ProjectSaver interface {
	SaveProject(ctx context.Context, project *domain.Project) error
}

type ProjectStore interface {
	ProjectProvider
	ProjectSaver
}

type ArchiveExtractor interface {
	Extract(ctx context.Context, archivePath, destDir string) ([]string, error)
}

type TypeDetector interface {
	DetectType(path string) (string, error)
}

type IngestionReporter interface {
	Report(ctx context.Context, project *domain.Project, report *domain.IngestionReport) error
}

type ReportGenerator interface {
	GenerateReport(outputPath string, project *domain.Project, entries []*domain.ManifestEntry) error
}
