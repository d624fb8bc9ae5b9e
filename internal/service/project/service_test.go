package project

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

type fakeProjectRepo struct {
	projects    map[string]project.Project
	assignments map[string][]string
	updated     []project.Project
}

func (f *fakeProjectRepo) List(ctx context.Context) ([]project.Project, error) {
	var out []project.Project
	for _, p := range f.projects {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProjectRepo) ListAssigned(ctx context.Context, userID string) ([]project.Project, error) {
	var out []project.Project
	for id, workers := range f.assignments {
		for _, w := range workers {
			if w == userID {
				out = append(out, f.projects[id])
			}
		}
	}
	return out, nil
}

func (f *fakeProjectRepo) GetByID(ctx context.Context, id string) (project.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return project.Project{}, project.ErrProjectNotFound
	}
	return p, nil
}

func (f *fakeProjectRepo) Create(ctx context.Context, newProject project.Project) (project.Project, error) {
	f.projects[newProject.ID] = newProject
	return newProject, nil
}

func (f *fakeProjectRepo) Update(ctx context.Context, p project.Project) error {
	if _, ok := f.projects[p.ID]; !ok {
		return project.ErrProjectNotFound
	}
	f.projects[p.ID] = p
	f.updated = append(f.updated, p)
	return nil
}

func (f *fakeProjectRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.projects[id]; !ok {
		return project.ErrProjectNotFound
	}
	delete(f.projects, id)
	return nil
}

func (f *fakeProjectRepo) ReplaceAssignments(ctx context.Context, projectID string, workerIDs []string) error {
	return nil
}

func (f *fakeProjectRepo) IsAssigned(ctx context.Context, projectID, userID string) (bool, error) {
	for _, w := range f.assignments[projectID] {
		if w == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProjectRepo) CountActive(ctx context.Context) (int, error) { return 0, nil }

type fakeReportRepo struct{}

func (fakeReportRepo) List(ctx context.Context) ([]report.Report, error) { return nil, nil }

func (fakeReportRepo) ListForWorker(ctx context.Context, userID string) ([]report.Report, error) {
	return nil, nil
}

func (fakeReportRepo) ListByProject(ctx context.Context, projectID string) ([]report.Report, error) {
	return []report.Report{{ID: "rep-1", ProjectID: projectID, CreatedAt: time.Now()}}, nil
}

func (fakeReportRepo) GetByID(ctx context.Context, id string) (report.Report, error) {
	return report.Report{}, report.ErrReportNotFound
}

func (fakeReportRepo) Create(ctx context.Context, newReport report.Report) (report.Report, error) {
	return newReport, nil
}

func (fakeReportRepo) AddImage(ctx context.Context, reportID, filePath string) error { return nil }

func (fakeReportRepo) CountSince(ctx context.Context, since time.Time) (int, error) { return 0, nil }

func (fakeReportRepo) Count(ctx context.Context) (int, error) { return 0, nil }

func (fakeReportRepo) ListAllImagePaths(ctx context.Context) ([]string, error) { return nil, nil }

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

func newTestService(repo *fakeProjectRepo) project.ProjectService {
	files := file.NewService(fakeStorage{}, slog.Default())
	return NewProjectService(nil, repo, fakeReportRepo{}, files)
}

func seededRepo() *fakeProjectRepo {
	return &fakeProjectRepo{
		projects: map[string]project.Project{
			"proj-1": {ID: "proj-1", Name: "Neubau", Status: project.StatusActive},
			"proj-2": {ID: "proj-2", Name: "Dachsanierung", Status: project.StatusPaused},
		},
		assignments: map[string][]string{"proj-1": {"w1"}},
	}
}

func TestList_RoleScoped(t *testing.T) {
	svc := newTestService(seededRepo())

	all, err := svc.List(authContext(t, "admin-1", "admin"))
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := svc.List(authContext(t, "w1", "worker"))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "proj-1", mine[0].ID)
}

func TestGet_WorkerAccess(t *testing.T) {
	svc := newTestService(seededRepo())

	detail, err := svc.Get(authContext(t, "w1", "worker"), "proj-1")
	require.NoError(t, err)
	assert.Equal(t, "proj-1", detail.ID)
	assert.Len(t, detail.Reports, 1)

	_, err = svc.Get(authContext(t, "w1", "worker"), "proj-2")
	assert.ErrorIs(t, err, project.ErrProjectAccessDenied)
}

func TestGet_NotFound(t *testing.T) {
	svc := newTestService(seededRepo())

	_, err := svc.Get(authContext(t, "admin-1", "admin"), "gone")
	assert.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestUpdate_EmptyRequest(t *testing.T) {
	svc := newTestService(seededRepo())

	_, err := svc.Update(authContext(t, "admin-1", "admin"), "proj-1", project.UpdateProjectRequest{})
	assert.ErrorIs(t, err, project.ErrNoChanges)
}

func TestArchive_SetsStatus(t *testing.T) {
	repo := seededRepo()
	svc := newTestService(repo)

	require.NoError(t, svc.Archive(authContext(t, "admin-1", "admin"), "proj-1"))
	assert.Equal(t, project.StatusArchived, repo.projects["proj-1"].Status)
}

func TestDelete_Missing(t *testing.T) {
	svc := newTestService(seededRepo())

	err := svc.Delete(authContext(t, "admin-1", "admin"), "gone")
	assert.ErrorIs(t, err, project.ErrProjectNotFound)
}
