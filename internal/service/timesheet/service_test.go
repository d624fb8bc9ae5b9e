package timesheet

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/report"
	"github.com/bauapp-dev/bauapp-backend-go/internal/pkg/validator"
)

type fakeReportRepo struct {
	reports []report.Report
}

func (f *fakeReportRepo) List(ctx context.Context) ([]report.Report, error) {
	return f.reports, nil
}

func (f *fakeReportRepo) ListForWorker(ctx context.Context, userID string) ([]report.Report, error) {
	var out []report.Report
	for _, r := range f.reports {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReportRepo) ListByProject(ctx context.Context, projectID string) ([]report.Report, error) {
	return nil, nil
}

func (f *fakeReportRepo) GetByID(ctx context.Context, id string) (report.Report, error) {
	return report.Report{}, report.ErrReportNotFound
}

func (f *fakeReportRepo) Create(ctx context.Context, newReport report.Report) (report.Report, error) {
	return newReport, nil
}

func (f *fakeReportRepo) AddImage(ctx context.Context, reportID, filePath string) error {
	return nil
}

func (f *fakeReportRepo) CountSince(ctx context.Context, since time.Time) (int, error) {
	return 0, nil
}

func (f *fakeReportRepo) Count(ctx context.Context) (int, error) { return 0, nil }

func (f *fakeReportRepo) ListAllImagePaths(ctx context.Context) ([]string, error) {
	return nil, nil
}

func authContext(t *testing.T, userID, role string) context.Context {
	tok := jwt.New()
	require.NoError(t, tok.Set("user_id", userID))
	require.NoError(t, tok.Set("role", role))
	require.NoError(t, tok.Set("type", "access"))
	return jwtauth.NewContext(context.Background(), tok, nil)
}

func shiftReport(id, userID, name string, createdAt time.Time, start, end string) report.Report {
	return report.Report{
		ID:          id,
		ProjectID:   "proj-1",
		ProjectName: "Neubau",
		UserID:      userID,
		UserName:    name,
		StartTime:   &start,
		EndTime:     &end,
		CreatedAt:   createdAt,
	}
}

func TestWeek_AdminSeesAllWorkers(t *testing.T) {
	monday := time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)
	repo := &fakeReportRepo{reports: []report.Report{
		shiftReport("r1", "w1", "Max", monday, "08:00", "16:00"),
		shiftReport("r2", "w2", "Anna", monday.AddDate(0, 0, 1), "07:00", "12:00"),
	}}
	svc := NewTimesheetService(repo)

	resp, err := svc.Week(authContext(t, "admin-1", "admin"), "2026-09-02", "")
	require.NoError(t, err)

	assert.Equal(t, "2026-08-31", resp.WeekStart)
	assert.Equal(t, "2026-09-06", resp.WeekEnd)
	assert.Len(t, resp.Days, 7)
	assert.Len(t, resp.Workers, 2)
	assert.InDelta(t, 13.0, resp.TotalHours, 1e-9)
	assert.InDelta(t, 8.0, resp.DayTotals["2026-08-31"], 1e-9)
	assert.InDelta(t, 5.0, resp.DayTotals["2026-09-01"], 1e-9)
}

func TestWeek_AdminFiltersByWorker(t *testing.T) {
	monday := time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)
	repo := &fakeReportRepo{reports: []report.Report{
		shiftReport("r1", "w1", "Max", monday, "08:00", "16:00"),
		shiftReport("r2", "w2", "Anna", monday, "07:00", "12:00"),
	}}
	svc := NewTimesheetService(repo)

	resp, err := svc.Week(authContext(t, "admin-1", "admin"), "2026-09-02", "w2")
	require.NoError(t, err)

	require.Len(t, resp.Workers, 1)
	assert.Equal(t, "w2", resp.Workers[0].ID)
	assert.InDelta(t, 5.0, resp.TotalHours, 1e-9)
	assert.InDelta(t, 5.0, resp.DayTotals["2026-08-31"], 1e-9)
}

func TestWeek_WorkerPinnedToSelf(t *testing.T) {
	monday := time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)
	repo := &fakeReportRepo{reports: []report.Report{
		shiftReport("r1", "w1", "Max", monday, "08:00", "16:00"),
		shiftReport("r2", "w2", "Anna", monday, "07:00", "12:00"),
	}}
	svc := NewTimesheetService(repo)

	// The worker_id filter is ignored for workers.
	resp, err := svc.Week(authContext(t, "w1", "worker"), "2026-09-02", "w2")
	require.NoError(t, err)

	require.Len(t, resp.Workers, 1)
	assert.Equal(t, "w1", resp.Workers[0].ID)
	assert.InDelta(t, 8.0, resp.Workers[0].TotalHours, 1e-9)
	assert.Equal(t, 1, resp.Workers[0].DaysWorked)
}

func TestWeek_InvalidDate(t *testing.T) {
	svc := NewTimesheetService(&fakeReportRepo{})

	_, err := svc.Week(authContext(t, "admin-1", "admin"), "not-a-date", "")
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestWeek_EmptyWeek(t *testing.T) {
	svc := NewTimesheetService(&fakeReportRepo{})

	resp, err := svc.Week(authContext(t, "admin-1", "admin"), "2026-09-02", "")
	require.NoError(t, err)

	assert.Empty(t, resp.Workers)
	assert.Zero(t, resp.TotalHours)
	assert.Len(t, resp.DayTotals, 7)
}
