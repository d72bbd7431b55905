package v1

import (
	"context"
	"io"

	"github.com/kurochkinivan/project_ingest/internal/domain"
)

type ProjectsRepository interface {
	Projects(ctx context.Context, limit, offset uint64) ([]*domain.Project, int, error)
	ProjectByID(ctx context.Context, id int64) (*domain.Project, error)
	ProjectsByUserID(ctx context.Context, userID int64) ([]*domain.Project, error)
	CreateProject(ctx context.Context, project *domain.Project) error
	DeleteProject(ctx context.Context, id int64) error
}

type Ingester interface {
	Ingest(ctx context.Context, projectID int64, archiveName string, archive io.Reader) (*domain.IngestionReport, error)
}

type StagingReclaimer interface {
	Reclaim(ctx context.Context, projectID int64) error
}

type Artifacts interface {
	ManifestPath(projectID int64) string
	ReportPath(projectID int64) string
	Manifest(projectID int64) ([]*domain.ManifestEntry, error)
}

type Authenticator interface {
	Register(ctx context.Context, email, password string) (*domain.User, *domain.Token, error)
	Login(ctx context.Context, email, password string) (*domain.Token, error)
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
