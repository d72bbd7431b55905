package domain

import (
	"errors"
	"fmt"
)

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnsupportedArchive = errors.New("unsupported archive format")
	ErrUnsafeEntryPath    = errors.New("archive entry escapes destination")
)

// StagingError reports a failure to create the staging directory or to write the uploaded archive.
type StagingError struct {
	Path string
	Err  error
}

func (e *StagingError) Error() string {
	return fmt.Sprintf("failed to stage upload at %q: %v", e.Path, e.Err)
}

func (e *StagingError) Unwrap() error { return e.Err }

type ExtractionError struct {
	Archive string
	Err     error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("error during archive extraction: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

type WalkError struct {
	Path string
	Err  error
}

func (e *WalkError) Error() string {
	return fmt.Sprintf("failed to walk %q: %v", e.Path, e.Err)
}

func (e *WalkError) Unwrap() error { return e.Err }

// ReadError is recorded in the ingestion report and never aborts an ingestion.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %q: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

type StoreError struct {
	ProjectID int64
	Err       error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("failed to save project %d: %v", e.ProjectID, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}
