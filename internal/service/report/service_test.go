package report

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
	"github.com/bauapp-dev/bauapp-backend-go/internal/service/file"
)

type fakeReportRepo struct {
	all      []report.Report
	byWorker map[string][]report.Report
}

func (f *fakeReportRepo) List(ctx context.Context) ([]report.Report, error) { return f.all, nil }

func (f *fakeReportRepo) ListForWorker(ctx context.Context, userID string) ([]report.Report, error) {
	return f.byWorker[userID], nil
}

func (f *fakeReportRepo) ListByProject(ctx context.Context, projectID string) ([]report.Report, error) {
	return nil, nil
}

func (f *fakeReportRepo) GetByID(ctx context.Context, id string) (report.Report, error) {
	for _, r := range f.all {
		if r.ID == id {
			return r, nil
		}
	}
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

func (f *fakeReportRepo) ListAllImagePaths(ctx context.Context) ([]string, error) { return nil, nil }

type fakeProjectRepo struct {
	projects    map[string]project.Project
	assignments map[string][]string // project ID to worker IDs
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
	for _, id := range f.assignments[projectID] {
		if id == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProjectRepo) CountActive(ctx context.Context) (int, error) { return 0, nil }

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

func newTestService(reports *fakeReportRepo, projects *fakeProjectRepo) report.ReportService {
	files := file.NewService(fakeStorage{}, slog.Default())
	return NewReportService(nil, reports, projects, nil, files, nil)
}

func TestList_RoleScoped(t *testing.T) {
	adminVisible := []report.Report{
		{ID: "r1", UserID: "w1", CreatedAt: time.Now()},
		{ID: "r2", UserID: "w2", CreatedAt: time.Now()},
	}
	repo := &fakeReportRepo{
		all:      adminVisible,
		byWorker: map[string][]report.Report{"w1": adminVisible[:1]},
	}
	svc := newTestService(repo, &fakeProjectRepo{})

	all, err := svc.List(authContext(t, "admin-1", "admin"))
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := svc.List(authContext(t, "w1", "worker"))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "r1", mine[0].ID)
}

func TestGet_WorkerAccessDenied(t *testing.T) {
	repo := &fakeReportRepo{all: []report.Report{
		{ID: "r1", ProjectID: "proj-1", UserID: "w2", CreatedAt: time.Now()},
	}}
	projects := &fakeProjectRepo{
		projects:    map[string]project.Project{"proj-1": {ID: "proj-1"}},
		assignments: map[string][]string{"proj-1": {"w2"}},
	}
	svc := newTestService(repo, projects)

	_, err := svc.Get(authContext(t, "w1", "worker"), "r1")
	assert.ErrorIs(t, err, report.ErrReportAccessDenied)

	found, err := svc.Get(authContext(t, "w2", "worker"), "r1")
	require.NoError(t, err)
	assert.Equal(t, "r1", found.ID)
}

func TestGet_NotFound(t *testing.T) {
	svc := newTestService(&fakeReportRepo{}, &fakeProjectRepo{})

	_, err := svc.Get(authContext(t, "admin-1", "admin"), "missing")
	assert.ErrorIs(t, err, report.ErrReportNotFound)
}

func TestCreate_WorkerNotAssigned(t *testing.T) {
	projects := &fakeProjectRepo{
		projects:    map[string]project.Project{"proj-1": {ID: "proj-1"}},
		assignments: map[string][]string{"proj-1": {"w2"}},
	}
	svc := newTestService(&fakeReportRepo{}, projects)

	_, err := svc.Create(authContext(t, "w1", "worker"), report.CreateReportRequest{
		ProjectID: "proj-1",
		Text:      "Fundament betoniert",
	}, nil)
	assert.ErrorIs(t, err, project.ErrProjectAccessDenied)
}

func TestCreate_ProjectMissing(t *testing.T) {
	svc := newTestService(&fakeReportRepo{}, &fakeProjectRepo{projects: map[string]project.Project{}})

	_, err := svc.Create(authContext(t, "admin-1", "admin"), report.CreateReportRequest{
		ProjectID: "gone",
		Text:      "Fundament betoniert",
	}, nil)
	assert.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestCreate_RequiresContent(t *testing.T) {
	svc := newTestService(&fakeReportRepo{}, &fakeProjectRepo{})

	_, err := svc.Create(authContext(t, "w1", "worker"), report.CreateReportRequest{
		ProjectID: "proj-1",
	}, nil)
	assert.Error(t, err)
}

func TestClaims_Missing(t *testing.T) {
	svc := newTestService(&fakeReportRepo{}, &fakeProjectRepo{})

	_, err := svc.List(context.Background())
	assert.Error(t, err)

	_, err = svc.Get(context.Background(), "r1")
	assert.Error(t, err)
}
