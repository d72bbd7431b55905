package pipeline

import (
	"path"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	extractedDirName   = "extracted"
	manifestFileName   = "manifest.tsv"
	reportFileName     = "report.pdf"
	defaultArchiveName = "upload"
)

// Staging describes the on-disk layout of uploads under a configured storage root:
//
//	<root>/<projectID>/<archive>
//	<root>/<projectID>/extracted/...
//	<root>/<projectID>/manifest.tsv
//	<root>/<projectID>/report.pdf
type Staging struct {
	root string
}

func NewStaging(root string) *Staging {
	return &Staging{root: filepath.Clean(root)}
}

func (s *Staging) Root() string {
	return s.root
}

func (s *Staging) ProjectDir(projectID int64) string {
	return filepath.Join(s.root, strconv.FormatInt(projectID, 10))
}

func (s *Staging) ArchivePath(projectID int64, archiveName string) string {
	return filepath.Join(s.ProjectDir(projectID), SanitizeFilename(archiveName))
}

func (s *Staging) ExtractDir(projectID int64) string {
	return filepath.Join(s.ProjectDir(projectID), extractedDirName)
}

func (s *Staging) ManifestPath(projectID int64) string {
	return filepath.Join(s.ProjectDir(projectID), manifestFileName)
}

func (s *Staging) ReportPath(projectID int64) string {
	return filepath.Join(s.ProjectDir(projectID), reportFileName)
}

// SanitizeFilename reduces a client-supplied file name to a single path element
// that cannot leave the staging directory or collide with the staging layout.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\x00", "")
	name = strings.ReplaceAll(name, `\`, "/")
	name = path.Base(path.Clean("/" + name))

	switch name {
	case "/", ".", "..", "":
		return defaultArchiveName
	case extractedDirName, manifestFileName, reportFileName:
		return defaultArchiveName + "-" + name
	}

	return name
}
