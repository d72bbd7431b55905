package v1

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kurochkinivan/project_ingest/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(text))
}

func badRequest(w http.ResponseWriter, msg string) {
	http.Error(w, "Error: "+msg, http.StatusBadRequest)
}

// writeError maps domain errors to status codes. Anything unrecognised is logged
// and answered with 500 without leaking the cause.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		validationErr *domain.ValidationError
		maxBytesErr   *http.MaxBytesError
	)

	if msg, ok := ingestionFailure(err); ok {
		log.WarnContext(r.Context(), "ingestion failed",
			slog.String("path", r.URL.Path),
			slog.String("err", err.Error()),
		)
		badRequest(w, msg)
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
	case errors.As(err, &maxBytesErr):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrProjectNotFound), errors.Is(err, domain.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrUserExists):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrInvalidToken):
		status = http.StatusUnauthorized
	}

	if status == http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("err", err.Error()),
		)
		http.Error(w, "Error: internal server error", status)
		return
	}

	http.Error(w, "Error: "+err.Error(), status)
}

// ingestionFailure returns the client message for staging, extraction and walk
// errors. Their own messages carry server paths and only go to the log.
func ingestionFailure(err error) (string, bool) {
	var (
		stagingErr    *domain.StagingError
		extractionErr *domain.ExtractionError
		walkErr       *domain.WalkError
	)

	switch {
	case errors.As(err, &stagingErr):
		return "failed to stage upload", true
	case errors.As(err, &extractionErr):
		switch {
		case errors.Is(err, domain.ErrUnsupportedArchive):
			return "error during archive extraction: " + domain.ErrUnsupportedArchive.Error(), true
		case errors.Is(err, domain.ErrUnsafeEntryPath):
			return "error during archive extraction: " + domain.ErrUnsafeEntryPath.Error(), true
		}
		return "error during archive extraction: invalid or corrupt archive", true
	case errors.As(err, &walkErr):
		return "failed to walk extracted archive", true
	}

	return "", false
}
