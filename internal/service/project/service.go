package project

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/project"
	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/report"
	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/user"
	"github.com/bauapp-dev/bauapp-backend-go/internal/pkg/database"
	"github.com/bauapp-dev/bauapp-backend-go/internal/repository/postgresql"
	"github.com/bauapp-dev/bauapp-backend-go/internal/service/file"
)

type ProjectServiceImpl struct {
	db *database.DB
	project.ProjectRepository
	report.ReportRepository
	files *file.Service
}

func NewProjectService(db *database.DB, projectRepository project.ProjectRepository, reportRepository report.ReportRepository, files *file.Service) project.ProjectService {
	return &ProjectServiceImpl{
		db:                db,
		ProjectRepository: projectRepository,
		ReportRepository:  reportRepository,
		files:             files,
	}
}

// List implements project.ProjectService. Admins see every project,
// workers only their assigned ones.
func (s *ProjectServiceImpl) List(ctx context.Context) ([]project.ProjectResponse, error) {
	userID, role, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var projects []project.Project
	if role == user.RoleAdmin {
		projects, err = s.ProjectRepository.List(ctx)
	} else {
		projects, err = s.ProjectRepository.ListAssigned(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]project.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, project.NewProjectResponse(p))
	}
	return responses, nil
}

// Get implements project.ProjectService.
func (s *ProjectServiceImpl) Get(ctx context.Context, id string) (project.ProjectDetailResponse, error) {
	userID, role, err := claimsFromContext(ctx)
	if err != nil {
		return project.ProjectDetailResponse{}, err
	}

	found, err := s.ProjectRepository.GetByID(ctx, id)
	if err != nil {
		return project.ProjectDetailResponse{}, err
	}

	if role == user.RoleWorker {
		assigned, err := s.ProjectRepository.IsAssigned(ctx, id, userID)
		if err != nil {
			return project.ProjectDetailResponse{}, err
		}
		if !assigned {
			return project.ProjectDetailResponse{}, project.ErrProjectAccessDenied
		}
	}

	reports, err := s.ReportRepository.ListByProject(ctx, id)
	if err != nil {
		return project.ProjectDetailResponse{}, err
	}

	reportResponses := make([]report.ReportResponse, 0, len(reports))
	for _, r := range reports {
		reportResponses = append(reportResponses, report.NewReportResponse(r, func(p string) string {
			return s.files.URL(ctx, p)
		}))
	}

	return project.ProjectDetailResponse{
		ProjectResponse: project.NewProjectResponse(found),
		Reports:         reportResponses,
	}, nil
}

// Create implements project.ProjectService.
func (s *ProjectServiceImpl) Create(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	status := strings.TrimSpace(req.Status)
	if !project.ValidStatus(status) {
		status = string(project.StatusActive)
	}

	newProject := project.Project{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		Address:      strings.TrimSpace(req.Address),
		CustomerName: strings.TrimSpace(req.CustomerName),
		Status:       project.Status(status),
		Description:  trimmedOrNil(req.Description),
		ImageURL:     trimmedOrNil(req.ImageURL),
	}

	var created project.Project
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = s.ProjectRepository.Create(txCtx, newProject)
		if err != nil {
			return err
		}

		if len(req.AssignedWorkers) > 0 {
			if err := s.ProjectRepository.ReplaceAssignments(txCtx, created.ID, req.AssignedWorkers); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return project.ProjectResponse{}, err
	}

	created.AssignedWorkers = req.AssignedWorkers
	return project.NewProjectResponse(created), nil
}

// Update implements project.ProjectService.
func (s *ProjectServiceImpl) Update(ctx context.Context, id string, req project.UpdateProjectRequest) (project.ProjectResponse, error) {
	if req.Empty() {
		return project.ProjectResponse{}, project.ErrNoChanges
	}
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	existing, err := s.ProjectRepository.GetByID(ctx, id)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	if req.Name != nil {
		existing.Name = strings.TrimSpace(*req.Name)
	}
	if req.Address != nil {
		existing.Address = strings.TrimSpace(*req.Address)
	}
	if req.CustomerName != nil {
		existing.CustomerName = strings.TrimSpace(*req.CustomerName)
	}
	if req.Status != nil && project.ValidStatus(strings.TrimSpace(*req.Status)) {
		existing.Status = project.Status(strings.TrimSpace(*req.Status))
	}
	if req.Description != nil {
		existing.Description = trimmedOrNil(req.Description)
	}
	if req.ImageURL != nil {
		existing.ImageURL = trimmedOrNil(req.ImageURL)
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.ProjectRepository.Update(txCtx, existing); err != nil {
			return err
		}
		if req.AssignedWorkers != nil {
			if err := s.ProjectRepository.ReplaceAssignments(txCtx, id, *req.AssignedWorkers); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return project.ProjectResponse{}, err
	}

	updated, err := s.ProjectRepository.GetByID(ctx, id)
	if err != nil {
		return project.ProjectResponse{}, err
	}
	return project.NewProjectResponse(updated), nil
}

// Archive implements project.ProjectService.
func (s *ProjectServiceImpl) Archive(ctx context.Context, id string) error {
	existing, err := s.ProjectRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	existing.Status = project.StatusArchived
	return s.ProjectRepository.Update(ctx, existing)
}

// Delete implements project.ProjectService.
func (s *ProjectServiceImpl) Delete(ctx context.Context, id string) error {
	return s.ProjectRepository.Delete(ctx, id)
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func claimsFromContext(ctx context.Context) (string, user.Role, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id claim is missing or invalid")
	}

	roleStr, _ := claims["role"].(string)
	return userID, user.Role(roleStr), nil
}
