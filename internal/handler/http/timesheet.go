package http

import (
	"log/slog"
	"net/http"

	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/timesheet"
	"github.com/bauapp-dev/bauapp-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	Week(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &TimesheetHandlerImpl{timesheetService: timesheetService}
}

// Week implements TimesheetHandler. The date parameter picks any day of
// the wanted week and defaults to today; worker_id narrows the aggregation
// for admins.
func (h *TimesheetHandlerImpl) Week(w http.ResponseWriter, r *http.Request) {
	week, err := h.timesheetService.Week(r.Context(), r.URL.Query().Get("date"), r.URL.Query().Get("worker_id"))
	if err != nil {
		slog.Error("Timesheet week service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, week)
}
