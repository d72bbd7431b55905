package report_generator

import (
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/project_ingest/internal/domain"
)

const (
	titleHeight  = 12
	headerHeight = 8
	rowHeight    = 6
)

type column struct {
	title string
	size  int
	value func(e *domain.ManifestEntry) string
}

var columns = []column{
	{title: "File", size: 3, value: func(e *domain.ManifestEntry) string { return e.Name }},
	{title: "Path", size: 4, value: func(e *domain.ManifestEntry) string { return e.RelativePath }},
	{title: "Size", size: 1, value: func(e *domain.ManifestEntry) string { return strconv.FormatInt(e.Size, 10) }},
	{title: "Type", size: 2, value: func(e *domain.ManifestEntry) string { return e.Type }},
	{title: "Status", size: 2, value: func(e *domain.ManifestEntry) string { return string(e.Status) }},
}

type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// GenerateReport renders an ingestion summary of project into a PDF at outputPath.
func (g *Generator) GenerateReport(outputPath string, project *domain.Project, entries []*domain.ManifestEntry) error {
	doc, err := g.build(project, entries).Generate()
	if err != nil {
		return fmt.Errorf("failed to generate pdf: %w", err)
	}

	if err := doc.Save(outputPath); err != nil {
		return fmt.Errorf("failed to save pdf to %q: %w", outputPath, err)
	}

	return nil
}

func (g *Generator) build(project *domain.Project, entries []*domain.ManifestEntry) core.Maroto {
	cfg := config.NewBuilder().
		WithLeftMargin(10).
		WithTopMargin(15).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	m.AddRows(
		text.NewRow(titleHeight, "Ingestion report", props.Text{
			Size:  14,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
		text.NewRow(rowHeight, fmt.Sprintf("Project #%d: %s", project.ID, project.Name), props.Text{Size: 10}),
		text.NewRow(rowHeight, fmt.Sprintf("Files: %d, failed: %d", len(entries), countFailed(entries)), props.Text{Size: 10}),
	)

	header := make([]core.Col, 0, len(columns))
	for _, c := range columns {
		header = append(header, text.NewCol(c.size, c.title, props.Text{
			Top:   2,
			Size:  9,
			Style: fontstyle.Bold,
		}))
	}
	m.AddRow(headerHeight, header...)

	for _, e := range entries {
		cols := make([]core.Col, 0, len(columns))
		for _, c := range columns {
			cols = append(cols, text.NewCol(c.size, c.value(e), props.Text{Top: 1, Size: 8}))
		}
		m.AddRow(rowHeight, cols...)
	}

	return m
}

func countFailed(entries []*domain.ManifestEntry) int {
	n := 0
	for _, e := range entries {
		if e.Status == domain.ManifestStatusError {
			n++
		}
	}

	return n
}
