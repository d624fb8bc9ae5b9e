package dashboard

import (
	"context"

	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/report"
)

type DashboardService interface {
	// Stats returns the admin dashboard tiles.
	Stats(ctx context.Context) (StatsResponse, error)

	// OpenIssues returns the flagged reports, newest first.
	OpenIssues(ctx context.Context) ([]report.ReportResponse, error)

	// Refresh reloads the cached timesheet snapshot.
	Refresh(ctx context.Context) error
}
