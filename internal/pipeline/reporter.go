package pipeline

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/project_ingest/internal/domain"
)

// Reporter writes the artifacts of a finished ingestion next to the staged
// archive: a tab separated manifest of every walked file and a PDF summary.
type Reporter struct {
	log             *slog.Logger
	staging         *Staging
	reportGenerator ReportGenerator
}

func NewReporter(
	log *slog.Logger,
	staging *Staging,
	reportGenerator ReportGenerator,
) *Reporter {
	return &Reporter{
		log:             log,
		staging:         staging,
		reportGenerator: reportGenerator,
	}
}

func (r *Reporter) Report(ctx context.Context, project *domain.Project, report *domain.IngestionReport) error {
	entries := make([]*domain.ManifestEntry, 0, len(report.Files))
	for _, outcome := range report.Files {
		entries = append(entries, domain.NewManifestEntry(outcome))
	}

	manifestPath := r.staging.ManifestPath(report.ProjectID)
	if err := writeManifest(manifestPath, entries); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	r.log.DebugContext(ctx, "manifest written",
		slog.Int64("project_id", report.ProjectID),
		slog.String("path", manifestPath),
		slog.Int("entries", len(entries)),
	)

	reportPath := r.staging.ReportPath(report.ProjectID)
	if err := r.reportGenerator.GenerateReport(reportPath, project, entries); err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	r.log.DebugContext(ctx, "report generated",
		slog.Int64("project_id", report.ProjectID),
		slog.String("path", reportPath),
	)

	return nil
}

func writeManifest(path string, entries []*domain.ManifestEntry) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, fileMode)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	w := csv.NewWriter(f)
	w.Comma = '\t'

	enc := csvutil.NewEncoder(w)
	if err := enc.EncodeHeader(domain.ManifestEntry{}); err != nil {
		return fmt.Errorf("failed to encode header: %w", err)
	}

	if len(entries) > 0 {
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("failed to encode entries: %w", err)
		}
	}

	w.Flush()

	return w.Error()
}

// ReadManifest decodes a manifest previously written by Reporter.
func ReadManifest(path string) (_ []*domain.ManifestEntry, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	r := csv.NewReader(f)
	r.Comma = '\t'

	dec, err := csvutil.NewDecoder(r)
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest header: %w", err)
	}

	var rows []domain.ManifestEntry
	if err := dec.Decode(&rows); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}

	entries := make([]*domain.ManifestEntry, len(rows))
	for i := range rows {
		entries[i] = &rows[i]
	}

	return entries, nil
}

// Manifest reads the manifest of the last ingestion of projectID.
func (s *Staging) Manifest(projectID int64) ([]*domain.ManifestEntry, error) {
	return ReadManifest(s.ManifestPath(projectID))
}
