package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/export"
	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/report"
	"github.com/bauapp-dev/bauapp-backend-go/internal/handler/http/response"
)

const maxReportMemory = 64 << 20 // 64 MiB

type ReportHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	ExportPDF(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
	exportService export.ExportService
}

func NewReportHandler(reportService report.ReportService, exportService export.ExportService) ReportHandler {
	return &ReportHandlerImpl{
		reportService: reportService,
		exportService: exportService,
	}
}

// List implements ReportHandler.
func (h *ReportHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reportService.List(r.Context())
	if err != nil {
		slog.Error("List reports service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, reports)
}

// Get implements ReportHandler.
func (h *ReportHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	found, err := h.reportService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Get report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Create implements ReportHandler. Reports arrive either as plain JSON or
// as a multipart form with a JSON "data" field and up to ten "images"
// files.
func (h *ReportHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq report.CreateReportRequest
	var images []report.ImageUpload

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxReportMemory); err != nil {
			response.BadRequest(w, "Invalid multipart form", nil)
			return
		}

		data := r.FormValue("data")
		if err := json.Unmarshal([]byte(data), &createReq); err != nil {
			slog.Error("Create report decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}

		for _, header := range r.MultipartForm.File["images"] {
			f, err := header.Open()
			if err != nil {
				response.BadRequest(w, "Invalid image upload", nil)
				return
			}
			defer f.Close()
			images = append(images, report.ImageUpload{
				Filename: header.Filename,
				File:     f,
			})
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
			slog.Error("Create report decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	created, err := h.reportService.Create(r.Context(), createReq, images)
	if err != nil {
		slog.Error("Create report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Report created successfully", "report_id", created.ID, "project_id", created.ProjectID)
	response.Created(w, "Bericht angelegt", created)
}

// ExportPDF implements ReportHandler.
func (h *ReportHandlerImpl) ExportPDF(w http.ResponseWriter, r *http.Request) {
	file, err := h.exportService.ReportPDF(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Export report pdf service error", "error", err)
		response.HandleError(w, err)
		return
	}

	sendFile(w, file)
}
