package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

const MaxProjectNameLength = 100

// Project holds project metadata and a single file slot. After an ingestion the slot
// contains the last successfully read file of the extracted archive.
type Project struct {
	ID          int64      `db:"id"           json:"id"`
	Name        string     `db:"name"         json:"name"`
	Description string     `db:"description"  json:"description"`
	UserID      *int64     `db:"user_id"      json:"user_id,omitempty"`
	FileName    string     `db:"file_name"    json:"file_name,omitempty"`
	FilePath    string     `db:"file_path"    json:"file_path,omitempty"`
	FileType    string     `db:"file_type"    json:"file_type,omitempty"`
	FileContent []byte     `db:"file_content" json:"file_content,omitempty"`
	UploadTime  *time.Time `db:"upload_time"  json:"upload_time,omitempty"`
}

func (p *Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}

	if utf8.RuneCountInString(p.Name) > MaxProjectNameLength {
		return &ValidationError{Field: "name", Reason: "must be at most 100 characters"}
	}

	if strings.TrimSpace(p.Description) == "" {
		return &ValidationError{Field: "description", Reason: "is required"}
	}

	return nil
}

// AttachFile overwrites the file slot with the given file.
func (p *Project) AttachFile(name, path, fileType string, content []byte, uploadedAt time.Time) {
	p.FileName = name
	p.FilePath = path
	p.FileType = fileType
	p.FileContent = content
	p.UploadTime = &uploadedAt
}
