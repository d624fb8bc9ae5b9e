package http

import (
	"log/slog"
	"net/http"

	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/dashboard"
	"github.com/bauapp-dev/bauapp-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Stats(w http.ResponseWriter, r *http.Request)
	OpenIssues(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// Stats implements DashboardHandler.
func (h *DashboardHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.Stats(r.Context())
	if err != nil {
		slog.Error("Dashboard stats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// OpenIssues implements DashboardHandler.
func (h *DashboardHandlerImpl) OpenIssues(w http.ResponseWriter, r *http.Request) {
	issues, err := h.dashboardService.OpenIssues(r.Context())
	if err != nil {
		slog.Error("Dashboard open issues service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, issues)
}
