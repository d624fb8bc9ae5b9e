package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/export"
	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/project"
	"github.com/bauapp-dev/bauapp-backend-go/internal/handler/http/response"
)

type ProjectHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Archive(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ExportPDF(w http.ResponseWriter, r *http.Request)
}

type ProjectHandlerImpl struct {
	projectService project.ProjectService
	exportService  export.ExportService
}

func NewProjectHandler(projectService project.ProjectService, exportService export.ExportService) ProjectHandler {
	return &ProjectHandlerImpl{
		projectService: projectService,
		exportService:  exportService,
	}
}

// List implements ProjectHandler.
func (h *ProjectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context())
	if err != nil {
		slog.Error("List projects service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, projects)
}

// Get implements ProjectHandler.
func (h *ProjectHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.projectService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Get project service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, detail)
}

// Create implements ProjectHandler.
func (h *ProjectHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq project.CreateProjectRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create project decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.projectService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create project service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Project created successfully", "project_id", created.ID)
	response.Created(w, "Projekt angelegt", created)
}

// Update implements ProjectHandler.
func (h *ProjectHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq project.UpdateProjectRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update project decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.projectService.Update(r.Context(), chi.URLParam(r, "id"), updateReq)
	if err != nil {
		slog.Error("Update project service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// Archive implements ProjectHandler.
func (h *ProjectHandlerImpl) Archive(w http.ResponseWriter, r *http.Request) {
	if err := h.projectService.Archive(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Archive project service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Projekt archiviert", nil)
}

// Delete implements ProjectHandler.
func (h *ProjectHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.projectService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete project service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Projekt gelöscht", nil)
}

// ExportPDF implements ProjectHandler.
func (h *ProjectHandlerImpl) ExportPDF(w http.ResponseWriter, r *http.Request) {
	file, err := h.exportService.ProjectPDF(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Export project pdf service error", "error", err)
		response.HandleError(w, err)
		return
	}

	sendFile(w, file)
}

func sendFile(w http.ResponseWriter, file export.File) {
	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Data)
}
