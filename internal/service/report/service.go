package report

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
	"github.com/bauapp-dev/bauapp-backend-go/internal/pkg/sse"
	"github.com/bauapp-dev/bauapp-backend-go/internal/repository/postgresql"
	"github.com/bauapp-dev/bauapp-backend-go/internal/service/file"
)

type ReportServiceImpl struct {
	db *database.DB
	report.ReportRepository
	project.ProjectRepository
	userRepository user.UserRepository
	files          *file.Service
	hub            *sse.Hub
}

func NewReportService(db *database.DB, reportRepository report.ReportRepository, projectRepository project.ProjectRepository, userRepository user.UserRepository, files *file.Service, hub *sse.Hub) report.ReportService {
	return &ReportServiceImpl{
		db:                db,
		ReportRepository:  reportRepository,
		ProjectRepository: projectRepository,
		userRepository:    userRepository,
		files:             files,
		hub:               hub,
	}
}

// List implements report.ReportService. Admins see everything, workers the
// reports of their assigned projects, newest first.
func (s *ReportServiceImpl) List(ctx context.Context) ([]report.ReportResponse, error) {
	userID, role, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var reports []report.Report
	if role == user.RoleAdmin {
		reports, err = s.ReportRepository.List(ctx)
	} else {
		reports, err = s.ReportRepository.ListForWorker(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]report.ReportResponse, 0, len(reports))
	for _, r := range reports {
		responses = append(responses, s.toResponse(ctx, r))
	}
	return responses, nil
}

// Get implements report.ReportService.
func (s *ReportServiceImpl) Get(ctx context.Context, id string) (report.ReportResponse, error) {
	userID, role, err := claimsFromContext(ctx)
	if err != nil {
		return report.ReportResponse{}, err
	}

	found, err := s.ReportRepository.GetByID(ctx, id)
	if err != nil {
		return report.ReportResponse{}, err
	}

	if role == user.RoleWorker {
		assigned, err := s.ProjectRepository.IsAssigned(ctx, found.ProjectID, userID)
		if err != nil {
			return report.ReportResponse{}, err
		}
		if !assigned {
			return report.ReportResponse{}, report.ErrReportAccessDenied
		}
	}

	return s.toResponse(ctx, found), nil
}

// Create implements report.ReportService.
func (s *ReportServiceImpl) Create(ctx context.Context, req report.CreateReportRequest, images []report.ImageUpload) (report.ReportResponse, error) {
	userID, role, err := claimsFromContext(ctx)
	if err != nil {
		return report.ReportResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return report.ReportResponse{}, err
	}
	if len(images) > report.MaxImages {
		images = images[:report.MaxImages]
	}

	if role == user.RoleWorker {
		assigned, err := s.ProjectRepository.IsAssigned(ctx, req.ProjectID, userID)
		if err != nil {
			return report.ReportResponse{}, err
		}
		if !assigned {
			return report.ReportResponse{}, project.ErrProjectAccessDenied
		}
	}

	// The project must exist before anything is stored.
	if _, err := s.ProjectRepository.GetByID(ctx, req.ProjectID); err != nil {
		return report.ReportResponse{}, err
	}

	author, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		return report.ReportResponse{}, err
	}

	quickActions := req.QuickActions
	if quickActions == nil {
		quickActions = []string{}
	}

	newReport := report.Report{
		ID:             uuid.NewString(),
		ProjectID:      req.ProjectID,
		UserID:         userID,
		Text:           strings.TrimSpace(req.Text),
		QuickActions:   quickActions,
		Weather:        req.Weather,
		WorkersPresent: req.WorkersPresent,
		StartTime:      emptyToNil(req.StartTime),
		EndTime:        emptyToNil(req.EndTime),
		BreakMinutes:   req.BreakMinutes,
	}

	imagePaths, err := s.files.SaveReportImages(ctx, req.ProjectID, images)
	if err != nil {
		return report.ReportResponse{}, err
	}

	var created report.Report
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = s.ReportRepository.Create(txCtx, newReport)
		if err != nil {
			return err
		}
		for _, path := range imagePaths {
			if err := s.ReportRepository.AddImage(txCtx, created.ID, path); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return report.ReportResponse{}, err
	}

	created.UserName = author.Name
	created.Username = author.Username
	created.ImagePaths = imagePaths

	resp := s.toResponse(ctx, created)
	s.notifyAdmins(ctx, resp)
	return resp, nil
}

// notifyAdmins pushes a report.created event to every connected admin.
func (s *ReportServiceImpl) notifyAdmins(ctx context.Context, resp report.ReportResponse) {
	adminIDs, err := s.userRepository.ListAdminIDs(ctx)
	if err != nil {
		return
	}
	s.hub.PublishToMany(adminIDs, sse.Event{
		Event: "report.created",
		Data:  resp,
	})
}

func (s *ReportServiceImpl) toResponse(ctx context.Context, r report.Report) report.ReportResponse {
	return report.NewReportResponse(r, func(p string) string {
		return s.files.URL(ctx, p)
	})
}

func emptyToNil(s *string) *string {
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
