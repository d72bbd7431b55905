package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kurochkinivan/project_ingest/internal/domain"
)

const multipartMemory = 8 << 20

type ProjectsHandler struct {
	log           *slog.Logger
	projects      ProjectsRepository
	ingester      Ingester
	reclaimer     StagingReclaimer
	artifacts     Artifacts
	maxUploadSize int64
}

func NewProjectsHandler(
	log *slog.Logger,
	projects ProjectsRepository,
	ingester Ingester,
	reclaimer StagingReclaimer,
	artifacts Artifacts,
	maxUploadSize int64,
) *ProjectsHandler {
	return &ProjectsHandler{
		log:           log,
		projects:      projects,
		ingester:      ingester,
		reclaimer:     reclaimer,
		artifacts:     artifacts,
		maxUploadSize: maxUploadSize,
	}
}

type GetProjectsResponse struct {
	Projects   []*domain.Project `json:"projects"`
	Pagination Pagination        `json:"pagination"`
}

type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	UserID      *int64 `json:"user_id,omitempty"`
}

func (h *ProjectsHandler) GetProjects(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	offset := (page - 1) * limit

	projects, total, err := h.projects.Projects(r.Context(), limit, offset)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if len(projects) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, GetProjectsResponse{
		Projects:   projects,
		Pagination: NewPagination(page, limit, total),
	})
}

func (h *ProjectsHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	project, err := h.projects.ProjectByID(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectsHandler) GetUserProjects(w http.ResponseWriter, r *http.Request) {
	userID, ok := idParam(w, r, "userId")
	if !ok {
		return
	}

	projects, err := h.projects.ProjectsByUserID(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	if len(projects) == 0 {
		http.Error(w, fmt.Sprintf("Error: no projects found for user %d", userID), http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

func (h *ProjectsHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	project := &domain.Project{
		Name:        req.Name,
		Description: req.Description,
		UserID:      req.UserID,
	}

	if err := h.create(r, project); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, project)
}

func (h *ProjectsHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.projects.DeleteProject(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Upload ingests the multipart "file" into the project named by the "projectId" field.
func (h *ProjectsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if !h.parseMultipart(w, r) {
		return
	}

	projectID, err := strconv.ParseInt(r.FormValue("projectId"), 10, 64)
	if err != nil || projectID <= 0 {
		badRequest(w, "invalid projectId")
		return
	}

	h.ingest(w, r, projectID)
}

// CreateAndUpload creates a project from the multipart "name" and "description"
// fields and ingests the multipart "file" into it.
func (h *ProjectsHandler) CreateAndUpload(w http.ResponseWriter, r *http.Request) {
	if !h.parseMultipart(w, r) {
		return
	}

	project := &domain.Project{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
	}

	if len(r.MultipartForm.File["file"]) == 0 {
		badRequest(w, "missing file")
		return
	}

	if err := h.create(r, project); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	h.ingest(w, r, project.ID)
}

func (h *ProjectsHandler) GetManifest(w http.ResponseWriter, r *http.Request) {
	id, ok := h.existingProject(w, r)
	if !ok {
		return
	}

	if r.Header.Get("Accept") == "application/json" {
		entries, err := h.artifacts.Manifest(id)
		if errors.Is(err, os.ErrNotExist) {
			http.Error(w, "Error: manifest not found", http.StatusNotFound)
			return
		}
		if err != nil {
			writeError(w, r, h.log, err)
			return
		}

		writeJSON(w, http.StatusOK, entries)
		return
	}

	h.serveArtifact(w, r, h.artifacts.ManifestPath(id), "text/tab-separated-values; charset=utf-8")
}

func (h *ProjectsHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	id, ok := h.existingProject(w, r)
	if !ok {
		return
	}

	h.serveArtifact(w, r, h.artifacts.ReportPath(id), "application/pdf")
}

// DeleteUploads removes everything staged for the project.
func (h *ProjectsHandler) DeleteUploads(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.reclaimer.Reclaim(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ProjectsHandler) create(r *http.Request, project *domain.Project) error {
	if project.UserID == nil {
		if user, ok := UserFromContext(r.Context()); ok {
			project.UserID = &user.ID
		}
	}

	if err := project.Validate(); err != nil {
		return err
	}

	if err := h.projects.CreateProject(r.Context(), project); err != nil {
		return err
	}

	h.log.InfoContext(r.Context(), "project created", slog.Int64("project_id", project.ID))

	return nil
}

func (h *ProjectsHandler) parseMultipart(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			http.Error(w, fmt.Sprintf("Error: upload exceeds %d bytes", maxBytesErr.Limit), http.StatusRequestEntityTooLarge)
			return false
		}

		badRequest(w, "invalid multipart form")
		return false
	}

	return true
}

func (h *ProjectsHandler) ingest(w http.ResponseWriter, r *http.Request, projectID int64) {
	file, header, err := r.FormFile("file")
	if err != nil {
		badRequest(w, "missing file")
		return
	}
	defer closeFile(r, h.log, file)

	report, err := h.ingester.Ingest(r.Context(), projectID, header.Filename, file)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeText(w, http.StatusOK, report.Text())
}

func (h *ProjectsHandler) existingProject(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return 0, false
	}

	if _, err := h.projects.ProjectByID(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return 0, false
	}

	return id, true
}

func (h *ProjectsHandler) serveArtifact(w http.ResponseWriter, r *http.Request, path, contentType string) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		http.Error(w, "Error: no ingestion artifacts for this project", http.StatusNotFound)
		return
	}
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	defer closeFile(r, h.log, f)

	info, err := f.Stat()
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

func idParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		badRequest(w, "invalid "+name)
		return 0, false
	}

	return id, true
}

func closeFile(r *http.Request, log *slog.Logger, f io.Closer) {
	if err := f.Close(); err != nil {
		log.WarnContext(r.Context(), "failed to close file", slog.String("err", err.Error()))
	}
}
