package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/project_ingest/internal/domain"
)

// Ingester stages an uploaded archive for a project, extracts it, walks the
// extracted tree and stores every readable file in the project's file slot.
//
// Ingestions are not serialized: two concurrent calls for the same project race
// on the staging directory and on the project record, and the last save wins.
type Ingester struct {
	log       *slog.Logger
	staging   *Staging
	projects  ProjectStore
	extractor ArchiveExtractor
	detector  TypeDetector
	reporter  IngestionReporter
	readFile  func(name string) ([]byte, error)
	now       func() time.Time
}

type IngesterOption func(i *Ingester)

func WithReporter(reporter IngestionReporter) IngesterOption {
	return func(i *Ingester) {
		i.reporter = reporter
	}
}

func WithTypeDetector(detector TypeDetector) IngesterOption {
	return func(i *Ingester) {
		i.detector = detector
	}
}

func WithFileReader(readFile func(name string) ([]byte, error)) IngesterOption {
	return func(i *Ingester) {
		i.readFile = readFile
	}
}

func WithClock(now func() time.Time) IngesterOption {
	return func(i *Ingester) {
		i.now = now
	}
}

func NewIngester(
	log *slog.Logger,
	staging *Staging,
	projects ProjectStore,
	extractor ArchiveExtractor,
	opts ...IngesterOption,
) *Ingester {
	i := &Ingester{
		log:       log,
		staging:   staging,
		projects:  projects,
		extractor: extractor,
		detector:  NewMIMEDetector(),
		readFile:  os.ReadFile,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(i)
	}

	return i
}

// Ingest runs the whole ingestion for one uploaded archive and returns the report.
//
// Looking up the project, staging the upload, extracting it, walking the extracted
// tree and saving the project are fatal. Files that cannot be read are recorded in
// the report and skipped.
func (i *Ingester) Ingest(
	ctx context.Context,
	projectID int64,
	archiveName string,
	archive io.Reader,
) (*domain.IngestionReport, error) {
	log := i.log.With(
		slog.Int64("project_id", projectID),
		slog.String("archive", archiveName),
	)

	project, err := i.projects.ProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("project with id %d: %w", projectID, err)
	}

	archivePath, err := i.stage(projectID, archiveName, archive)
	if err != nil {
		return nil, err
	}

	log.DebugContext(ctx, "archive staged", slog.String("path", archivePath))

	extractDir := i.staging.ExtractDir(projectID)

	extracted, err := i.extractor.Extract(ctx, archivePath, extractDir)
	if err != nil {
		return nil, err
	}

	log.DebugContext(ctx, "archive extracted", slog.Int("files", len(extracted)))

	files, err := Walk(extractDir)
	if err != nil {
		return nil, err
	}

	report := &domain.IngestionReport{ProjectID: projectID}
	for path, walkErr := range files {
		outcome := i.processFile(ctx, log, project, extractDir, path, walkErr)
		report.Add(outcome)

		if outcome.Failed() {
			continue
		}

		if err := i.projects.SaveProject(ctx, project); err != nil {
			return nil, &domain.StoreError{ProjectID: projectID, Err: err}
		}
	}

	if i.reporter != nil {
		if err := i.reporter.Report(ctx, project, report); err != nil {
			log.WarnContext(ctx, "failed to write ingestion report", slog.String("err", err.Error()))
		}
	}

	log.InfoContext(ctx, "archive ingested",
		slog.Int("files", len(report.Files)),
		slog.Int("failures", report.Failures()),
	)

	return report, nil
}

func (i *Ingester) stage(projectID int64, archiveName string, archive io.Reader) (string, error) {
	dir := i.staging.ProjectDir(projectID)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return "", &domain.StagingError{Path: dir, Err: err}
	}

	path := i.staging.ArchivePath(projectID, archiveName)
	if err := writeFile(path, archive, make([]byte, copyBufferSize)); err != nil {
		return "", &domain.StagingError{Path: path, Err: err}
	}

	// Retention is measured from the project dir's mtime, which rewriting
	// existing files does not bump.
	now := i.now()
	if err := os.Chtimes(dir, now, now); err != nil {
		return "", &domain.StagingError{Path: dir, Err: err}
	}

	return path, nil
}

func (i *Ingester) processFile(
	ctx context.Context,
	log *slog.Logger,
	project *domain.Project,
	root, path string,
	walkErr error,
) *domain.FileOutcome {
	outcome := &domain.FileOutcome{
		Name:         filepath.Base(path),
		Path:         path,
		RelativePath: relativePath(root, path),
	}

	if walkErr != nil {
		log.WarnContext(ctx, "failed to walk entry", slog.String("path", path), slog.String("err", walkErr.Error()))
		outcome.Err = walkErr
		return outcome
	}

	content, err := i.readFile(path)
	if err != nil {
		log.WarnContext(ctx, "failed to read file", slog.String("path", path), slog.String("err", err.Error()))
		outcome.Err = &domain.ReadError{Path: path, Err: err}
		return outcome
	}

	fileType, err := i.detector.DetectType(path)
	if err != nil {
		log.DebugContext(ctx, "failed to detect file type", slog.String("path", path), slog.String("err", err.Error()))
		fileType = ""
	}

	outcome.Size = int64(len(content))
	outcome.Type = fileType

	project.AttachFile(outcome.Name, path, fileType, content, i.now())

	return outcome
}

func relativePath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}

	return filepath.ToSlash(rel)
}
