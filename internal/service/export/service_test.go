package export

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/project"
	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/report"
	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/user"
)

type fakeProjectRepo struct {
	projects map[string]project.Project
}

func (f *fakeProjectRepo) List(ctx context.Context) ([]project.Project, error) { return nil, nil }

func (f *fakeProjectRepo) ListAssigned(ctx context.Context, userID string) ([]project.Project, error) {
	return nil, nil
}

func (f *fakeProjectRepo) GetByID(ctx context.Context, id string) (project.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return project.Project{}, project.ErrProjectNotFound
	}
	return p, nil
}

func (f *fakeProjectRepo) Create(ctx context.Context, newProject project.Project) (project.Project, error) {
	return newProject, nil
}

func (f *fakeProjectRepo) Update(ctx context.Context, p project.Project) error { return nil }

func (f *fakeProjectRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeProjectRepo) ReplaceAssignments(ctx context.Context, projectID string, workerIDs []string) error {
	return nil
}

func (f *fakeProjectRepo) IsAssigned(ctx context.Context, projectID, userID string) (bool, error) {
	return false, nil
}

func (f *fakeProjectRepo) CountActive(ctx context.Context) (int, error) { return 0, nil }

type fakeReportRepo struct {
	reports []report.Report
}

func (f *fakeReportRepo) List(ctx context.Context) ([]report.Report, error) { return f.reports, nil }

func (f *fakeReportRepo) ListForWorker(ctx context.Context, userID string) ([]report.Report, error) {
	return nil, nil
}

func (f *fakeReportRepo) ListByProject(ctx context.Context, projectID string) ([]report.Report, error) {
	var out []report.Report
	for _, r := range f.reports {
		if r.ProjectID == projectID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReportRepo) GetByID(ctx context.Context, id string) (report.Report, error) {
	for _, r := range f.reports {
		if r.ID == id {
			return r, nil
		}
	}
	return report.Report{}, report.ErrReportNotFound
}

func (f *fakeReportRepo) Create(ctx context.Context, newReport report.Report) (report.Report, error) {
	return newReport, nil
}

func (f *fakeReportRepo) AddImage(ctx context.Context, reportID, filePath string) error { return nil }

func (f *fakeReportRepo) CountSince(ctx context.Context, since time.Time) (int, error) {
	return 0, nil
}

func (f *fakeReportRepo) Count(ctx context.Context) (int, error) { return 0, nil }

func (f *fakeReportRepo) ListAllImagePaths(ctx context.Context) ([]string, error) { return nil, nil }

type fakeStorage struct{}

func (fakeStorage) Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error) {
	return path, nil
}

func (fakeStorage) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	return nil, os.ErrNotExist
}

func (fakeStorage) Delete(ctx context.Context, path string) error { return nil }

func (fakeStorage) GetURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "/uploads/" + path, nil
}

func (fakeStorage) Exists(ctx context.Context, path string) (bool, error) { return false, nil }

func (fakeStorage) List(ctx context.Context, prefix string) ([]string, error) { return nil, nil }

func authContext(t *testing.T, userID, role string) context.Context {
	tok := jwt.New()
	require.NoError(t, tok.Set("user_id", userID))
	require.NoError(t, tok.Set("role", role))
	require.NoError(t, tok.Set("type", "access"))
	return jwtauth.NewContext(context.Background(), tok, nil)
}

func newTestService(projects *fakeProjectRepo, reports *fakeReportRepo) *ExportServiceImpl {
	svc := NewExportService(projects, reports, fakeStorage{}, slog.Default())
	return svc.(*ExportServiceImpl)
}

func TestProjectPDF_AdminOnly(t *testing.T) {
	svc := newTestService(&fakeProjectRepo{}, &fakeReportRepo{})

	_, err := svc.ProjectPDF(authContext(t, "w1", "worker"), "proj-1")
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)
}

func TestProjectPDF_RendersDocument(t *testing.T) {
	projects := &fakeProjectRepo{projects: map[string]project.Project{
		"proj-1": {
			ID:           "proj-1",
			Name:         "Neubau Musterstraße 15",
			Address:      "Musterstraße 15, 12345 Berlin",
			CustomerName: "Firma Mustermann GmbH",
			Status:       project.StatusActive,
		},
	}}
	reports := &fakeReportRepo{reports: []report.Report{
		{
			ID:           "rep-1",
			ProjectID:    "proj-1",
			Text:         "Fundament fertig betoniert.",
			QuickActions: []string{"Arbeiten abgeschlossen"},
			UserName:     "Max",
			CreatedAt:    time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC),
			ImagePaths:   []string{"proj-1/missing.jpg"},
		},
	}}
	svc := newTestService(projects, reports)

	file, err := svc.ProjectPDF(authContext(t, "admin-1", "admin"), "proj-1")
	require.NoError(t, err)

	assert.Equal(t, "Projekt_Neubau_Musterstraße_15.pdf", file.Name)
	assert.Equal(t, "application/pdf", file.ContentType)
	require.NotEmpty(t, file.Data)
	assert.Equal(t, "%PDF", string(file.Data[:4]))
}

func TestProjectPDF_ProjectMissing(t *testing.T) {
	svc := newTestService(&fakeProjectRepo{}, &fakeReportRepo{})

	_, err := svc.ProjectPDF(authContext(t, "admin-1", "admin"), "gone")
	assert.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestReportPDF_RendersDocument(t *testing.T) {
	reports := &fakeReportRepo{reports: []report.Report{
		{
			ID:             "rep-3",
			ProjectID:      "proj-2",
			ProjectName:    "Dachsanierung Altstadt",
			ProjectAddress: "Altstadtgasse 3, 5020 Salzburg",
			Text:           "Alte Ziegel entfernt.",
			UserName:       "Max",
			CreatedAt:      time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC),
		},
	}}
	svc := newTestService(&fakeProjectRepo{}, reports)

	file, err := svc.ReportPDF(authContext(t, "admin-1", "admin"), "rep-3")
	require.NoError(t, err)

	assert.Equal(t, "Bericht_Dachsanierung_Altstadt_rep-3.pdf", file.Name)
	assert.Equal(t, "%PDF", string(file.Data[:4]))
}
