package domain

type ManifestStatus string

const (
	ManifestStatusFound ManifestStatus = "found"
	ManifestStatusError ManifestStatus = "error"
)

type ManifestEntry struct {
	Name         string         `csv:"name"`
	RelativePath string         `csv:"relative_path"`
	Size         int64          `csv:"size"`
	Type         string         `csv:"type"`
	Status       ManifestStatus `csv:"status"`
	ErrorMessage string         `csv:"error_message,omitempty"`
}

func NewManifestEntry(o *FileOutcome) *ManifestEntry {
	entry := &ManifestEntry{
		Name:         o.Name,
		RelativePath: o.RelativePath,
		Size:         o.Size,
		Type:         o.Type,
		Status:       ManifestStatusFound,
	}

	if o.Failed() {
		entry.Status = ManifestStatusError
		entry.ErrorMessage = o.Err.Error()
	}

	return entry
}
