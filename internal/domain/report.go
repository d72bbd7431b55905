package domain

import "strings"

// FileOutcome is the result of processing one walked file.
type FileOutcome struct {
	Name         string
	Path         string
	RelativePath string
	Size         int64
	Type         string
	Err          error // filled when the file could not be read
}

func (o *FileOutcome) Failed() bool {
	return o.Err != nil
}

// IngestionReport accumulates per-file outcomes in walk order.
type IngestionReport struct {
	ProjectID int64
	Files     []*FileOutcome
}

func (r *IngestionReport) Add(outcome *FileOutcome) {
	r.Files = append(r.Files, outcome)
}

// Last returns the last successfully read file, or nil.
func (r *IngestionReport) Last() *FileOutcome {
	for i := len(r.Files) - 1; i >= 0; i-- {
		if !r.Files[i].Failed() {
			return r.Files[i]
		}
	}

	return nil
}

func (r *IngestionReport) Failures() int {
	n := 0
	for _, f := range r.Files {
		if f.Failed() {
			n++
		}
	}

	return n
}

// Text renders one line per walked file.
func (r *IngestionReport) Text() string {
	var b strings.Builder
	for _, f := range r.Files {
		if f.Failed() {
			b.WriteString("Error reading file: ")
		} else {
			b.WriteString("Found file: ")
		}
		b.WriteString(f.Name)
		b.WriteByte('\n')
	}

	return b.String()
}
