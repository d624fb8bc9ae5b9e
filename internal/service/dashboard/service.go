package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/dashboard"
	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/issue"
	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/project"
	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/report"
	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/timesheet"
	"github.com/bauapp-dev/bauapp-backend-go/internal/service/file"
)

const (
	fallbackNoReport       = "Kein Bericht"
	fallbackUnknownProject = "Unbekanntes Projekt"
)

type DashboardServiceImpl struct {
	report.ReportRepository
	project.ProjectRepository
	classifier *issue.Classifier
	snapshots  *timesheet.Store
	files      *file.Service
	logger     *slog.Logger
}

func NewDashboardService(reportRepository report.ReportRepository, projectRepository project.ProjectRepository, classifier *issue.Classifier, snapshots *timesheet.Store, files *file.Service, logger *slog.Logger) dashboard.DashboardService {
	return &DashboardServiceImpl{
		ReportRepository:  reportRepository,
		ProjectRepository: projectRepository,
		classifier:        classifier,
		snapshots:         snapshots,
		files:             files,
		logger:            logger,
	}
}

// Stats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Stats(ctx context.Context) (dashboard.StatsResponse, error) {
	reports, err := s.ReportRepository.List(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}

	last24h, err := s.ReportRepository.CountSince(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		return dashboard.StatsResponse{}, err
	}

	totalReports, err := s.ReportRepository.Count(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}

	activeProjects, err := s.ProjectRepository.CountActive(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}

	stats := dashboard.StatsResponse{
		ReportsLast24h:      last24h,
		LatestReportProject: fallbackNoReport,
		ActiveProjects:      activeProjects,
		TotalReports:        totalReports,
		HoursThisWeek:       s.hoursThisWeek(ctx),
	}

	if len(reports) > 0 {
		latest := reports[0]
		t := latest.CreatedAt.Format("15:04")
		stats.LatestReportTime = &t
		if latest.ProjectName != "" {
			stats.LatestReportProject = latest.ProjectName
		} else {
			stats.LatestReportProject = fallbackUnknownProject
		}
	}

	flagged := s.classifier.Flag(reports)
	stats.OpenIssues = len(flagged)
	if len(flagged) > 0 {
		id := flagged[0].ID
		stats.LatestOpenIssueID = &id
	}

	return stats, nil
}

// OpenIssues implements dashboard.DashboardService.
func (s *DashboardServiceImpl) OpenIssues(ctx context.Context) ([]report.ReportResponse, error) {
	reports, err := s.ReportRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	flagged := s.classifier.Flag(reports)
	responses := make([]report.ReportResponse, 0, len(flagged))
	for _, r := range flagged {
		responses = append(responses, report.NewReportResponse(r, func(p string) string {
			return s.files.URL(ctx, p)
		}))
	}
	return responses, nil
}

// Refresh implements dashboard.DashboardService. It reloads the timesheet
// snapshot under a sequence token so an overtaken load cannot clobber a
// fresher one.
func (s *DashboardServiceImpl) Refresh(ctx context.Context) error {
	seq := s.snapshots.Begin()

	reports, err := s.ReportRepository.List(ctx)
	if err != nil {
		return err
	}

	entries := timesheet.FromReports(reports)
	if !s.snapshots.Apply(seq, entries) {
		s.logger.Debug("discarded stale timesheet snapshot", "seq", seq)
	}
	return nil
}

// hoursThisWeek sums the current week's hours from the cached snapshot,
// loading it on first use.
func (s *DashboardServiceImpl) hoursThisWeek(ctx context.Context) float64 {
	entries, loadedAt := s.snapshots.Snapshot()
	if loadedAt.IsZero() {
		if err := s.Refresh(ctx); err != nil {
			s.logger.Warn("failed to refresh timesheet snapshot", "error", err)
			return 0
		}
		entries, _ = s.snapshots.Snapshot()
	}

	week := timesheet.WeekOf(time.Now())
	var total float64
	for _, day := range week.DayKeys() {
		total += timesheet.HoursFor(entries, day, "")
	}
	return total
}
