package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-chi/jwtauth/v5"

	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/export"
	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/project"
	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/report"
	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/user"
	"github.com/bauapp-dev/bauapp-backend-go/internal/pkg/pdf"
	"github.com/bauapp-dev/bauapp-backend-go/internal/pkg/storage"
)

type ExportServiceImpl struct {
	project.ProjectRepository
	report.ReportRepository
	storage storage.FileStorage
	logger  *slog.Logger
}

func NewExportService(projectRepository project.ProjectRepository, reportRepository report.ReportRepository, fileStorage storage.FileStorage, logger *slog.Logger) export.ExportService {
	return &ExportServiceImpl{
		ProjectRepository: projectRepository,
		ReportRepository:  reportRepository,
		storage:           fileStorage,
		logger:            logger,
	}
}

// ProjectPDF implements export.ExportService.
func (s *ExportServiceImpl) ProjectPDF(ctx context.Context, projectID string) (export.File, error) {
	if err := requireAdmin(ctx); err != nil {
		return export.File{}, err
	}

	proj, err := s.ProjectRepository.GetByID(ctx, projectID)
	if err != nil {
		return export.File{}, err
	}

	reports, err := s.ReportRepository.ListByProject(ctx, projectID)
	if err != nil {
		return export.File{}, err
	}

	// Repositories list newest first; the document reads chronologically.
	blocks := make([]pdf.ReportBlock, 0, len(reports))
	for i := len(reports) - 1; i >= 0; i-- {
		blocks = append(blocks, s.reportBlock(ctx, reports[i]))
	}

	data, err := pdf.Project(pdf.ProjectInfo{
		Name:         proj.Name,
		Address:      proj.Address,
		CustomerName: proj.CustomerName,
		Status:       string(proj.Status),
	}, blocks)
	if err != nil {
		return export.File{}, err
	}

	return export.File{
		Name:        fmt.Sprintf("Projekt_%s.pdf", safeName(proj.Name)),
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

// ReportPDF implements export.ExportService.
func (s *ExportServiceImpl) ReportPDF(ctx context.Context, reportID string) (export.File, error) {
	if err := requireAdmin(ctx); err != nil {
		return export.File{}, err
	}

	rep, err := s.ReportRepository.GetByID(ctx, reportID)
	if err != nil {
		return export.File{}, err
	}

	data, err := pdf.Report(pdf.ProjectInfo{
		Name:    rep.ProjectName,
		Address: rep.ProjectAddress,
	}, s.reportBlock(ctx, rep))
	if err != nil {
		return export.File{}, err
	}

	return export.File{
		Name:        fmt.Sprintf("Bericht_%s_%s.pdf", safeName(rep.ProjectName), rep.ID),
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

func (s *ExportServiceImpl) reportBlock(ctx context.Context, r report.Report) pdf.ReportBlock {
	block := pdf.ReportBlock{
		Date:         r.CreatedAt.Format("2006-01-02"),
		Author:       r.AuthorName(),
		Text:         r.Text,
		QuickActions: r.QuickActions,
	}

	for _, path := range r.ImagePaths {
		f, err := s.storage.Download(ctx, path)
		if err != nil {
			s.logger.Warn("skipping unreadable report image", "path", path, "error", err)
			continue
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			s.logger.Warn("skipping unreadable report image", "path", path, "error", err)
			continue
		}
		block.Images = append(block.Images, pdf.Image{Name: path, Reader: bytes.NewReader(data)})
	}
	return block
}

func safeName(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}

func requireAdmin(ctx context.Context) error {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to extract claims from context: %w", err)
	}
	if role, _ := claims["role"].(string); user.Role(role) != user.RoleAdmin {
		return user.ErrAdminPrivilegeRequired
	}
	return nil
}
