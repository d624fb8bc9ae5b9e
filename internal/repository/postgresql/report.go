package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/report"
	"github.com/bauapp-dev/bauapp-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

const reportSelect = `
	SELECT r.id, r.project_id, r.user_id, r.text, r.quick_actions, r.weather,
		   r.workers_present, r.start_time, r.end_time, r.break_minutes, r.created_at,
		   u.username, u.name, p.name AS project_name, p.address AS project_address,
		   COALESCE(
			   (SELECT array_agg(ri.file_path ORDER BY ri.id) FROM report_images ri WHERE ri.report_id = r.id),
			   '{}'
		   ) AS image_paths
	FROM reports r
	JOIN users u ON u.id = r.user_id
	JOIN projects p ON p.id = r.project_id
`

func scanReport(row pgx.Row) (report.Report, error) {
	var found report.Report
	err := row.Scan(
		&found.ID,
		&found.ProjectID,
		&found.UserID,
		&found.Text,
		&found.QuickActions,
		&found.Weather,
		&found.WorkersPresent,
		&found.StartTime,
		&found.EndTime,
		&found.BreakMinutes,
		&found.CreatedAt,
		&found.Username,
		&found.UserName,
		&found.ProjectName,
		&found.ProjectAddress,
		&found.ImagePaths,
	)
	return found, err
}

func (r *reportRepositoryImpl) queryReports(ctx context.Context, query string, args ...interface{}) ([]report.Report, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []report.Report
	for rows.Next() {
		found, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, found)
	}
	return reports, rows.Err()
}

// List implements report.ReportRepository.
func (r *reportRepositoryImpl) List(ctx context.Context) ([]report.Report, error) {
	return r.queryReports(ctx, reportSelect+` ORDER BY r.created_at DESC`)
}

// ListForWorker implements report.ReportRepository. Workers see the reports
// of every project they are assigned to, not only their own.
func (r *reportRepositoryImpl) ListForWorker(ctx context.Context, userID string) ([]report.Report, error) {
	query := reportSelect + `
		JOIN project_assignments pa ON pa.project_id = p.id
		WHERE pa.user_id = $1
		ORDER BY r.created_at DESC
	`
	return r.queryReports(ctx, query, userID)
}

// ListByProject implements report.ReportRepository.
func (r *reportRepositoryImpl) ListByProject(ctx context.Context, projectID string) ([]report.Report, error) {
	return r.queryReports(ctx, reportSelect+` WHERE r.project_id = $1 ORDER BY r.created_at DESC`, projectID)
}

// GetByID implements report.ReportRepository.
func (r *reportRepositoryImpl) GetByID(ctx context.Context, id string) (report.Report, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanReport(q.QueryRow(ctx, reportSelect+` WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return report.Report{}, report.ErrReportNotFound
		}
		return report.Report{}, fmt.Errorf("failed to get report: %w", err)
	}
	return found, nil
}

// Create implements report.ReportRepository.
func (r *reportRepositoryImpl) Create(ctx context.Context, newReport report.Report) (report.Report, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO reports (
			id, project_id, user_id, text, quick_actions, weather,
			workers_present, start_time, end_time, break_minutes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`

	created := newReport
	err := q.QueryRow(ctx, query,
		newReport.ID,
		newReport.ProjectID,
		newReport.UserID,
		newReport.Text,
		newReport.QuickActions,
		newReport.Weather,
		newReport.WorkersPresent,
		newReport.StartTime,
		newReport.EndTime,
		newReport.BreakMinutes,
	).Scan(&created.CreatedAt)
	if err != nil {
		return report.Report{}, fmt.Errorf("failed to create report: %w", err)
	}
	return created, nil
}

// AddImage implements report.ReportRepository.
func (r *reportRepositoryImpl) AddImage(ctx context.Context, reportID, filePath string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `INSERT INTO report_images (report_id, file_path) VALUES ($1, $2)`, reportID, filePath)
	if err != nil {
		return fmt.Errorf("failed to add report image: %w", err)
	}
	return nil
}

// CountSince implements report.ReportRepository.
func (r *reportRepositoryImpl) CountSince(ctx context.Context, since time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM reports WHERE created_at >= $1`, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent reports: %w", err)
	}
	return count, nil
}

// Count implements report.ReportRepository.
func (r *reportRepositoryImpl) Count(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM reports`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count reports: %w", err)
	}
	return count, nil
}

// ListAllImagePaths implements report.ReportRepository.
func (r *reportRepositoryImpl) ListAllImagePaths(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT file_path FROM report_images`)
	if err != nil {
		return nil, fmt.Errorf("failed to list image paths: %w", err)
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, fmt.Errorf("failed to scan image path: %w", err)
		}
		paths = append(paths, path)
	}
	return paths, rows.Err()
}
