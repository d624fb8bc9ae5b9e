package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/project"
	"github.com/bauapp-dev/bauapp-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

const projectSelect = `
	SELECT p.id, p.name, p.address, p.customer_name, p.status, p.description,
		   p.image_url, p.created_at, p.updated_at,
		   (SELECT COUNT(*) FROM reports r WHERE r.project_id = p.id) AS reports_count,
		   COALESCE(
			   (SELECT array_agg(pa.user_id) FROM project_assignments pa WHERE pa.project_id = p.id),
			   '{}'
		   ) AS assigned_workers
	FROM projects p
`

func scanProject(row pgx.Row) (project.Project, error) {
	var found project.Project
	err := row.Scan(
		&found.ID,
		&found.Name,
		&found.Address,
		&found.CustomerName,
		&found.Status,
		&found.Description,
		&found.ImageURL,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.ReportsCount,
		&found.AssignedWorkers,
	)
	return found, err
}

func (r *projectRepositoryImpl) queryProjects(ctx context.Context, query string, args ...interface{}) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		found, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, found)
	}
	return projects, rows.Err()
}

// List implements project.ProjectRepository.
func (r *projectRepositoryImpl) List(ctx context.Context) ([]project.Project, error) {
	return r.queryProjects(ctx, projectSelect+` ORDER BY p.created_at DESC`)
}

// ListAssigned implements project.ProjectRepository.
func (r *projectRepositoryImpl) ListAssigned(ctx context.Context, userID string) ([]project.Project, error) {
	query := projectSelect + `
		JOIN project_assignments pa ON p.id = pa.project_id
		WHERE pa.user_id = $1
		ORDER BY p.created_at DESC
	`
	return r.queryProjects(ctx, query, userID)
}

// GetByID implements project.ProjectRepository.
func (r *projectRepositoryImpl) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanProject(q.QueryRow(ctx, projectSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get project: %w", err)
	}
	return found, nil
}

// Create implements project.ProjectRepository.
func (r *projectRepositoryImpl) Create(ctx context.Context, newProject project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO projects (id, name, address, customer_name, status, description, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, name, address, customer_name, status, description, image_url, created_at, updated_at
	`

	var created project.Project
	err := q.QueryRow(ctx, query,
		newProject.ID,
		newProject.Name,
		newProject.Address,
		newProject.CustomerName,
		newProject.Status,
		newProject.Description,
		newProject.ImageURL,
	).Scan(
		&created.ID,
		&created.Name,
		&created.Address,
		&created.CustomerName,
		&created.Status,
		&created.Description,
		&created.ImageURL,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}
	return created, nil
}

// Update implements project.ProjectRepository.
func (r *projectRepositoryImpl) Update(ctx context.Context, p project.Project) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE projects
		SET name = $1, address = $2, customer_name = $3, status = $4,
			description = $5, image_url = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		p.Name,
		p.Address,
		p.CustomerName,
		p.Status,
		p.Description,
		p.ImageURL,
		p.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.ErrProjectNotFound
		}
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

// Delete implements project.ProjectRepository.
func (r *projectRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}
	return nil
}

// ReplaceAssignments implements project.ProjectRepository.
func (r *projectRepositoryImpl) ReplaceAssignments(ctx context.Context, projectID string, workerIDs []string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM project_assignments WHERE project_id = $1`, projectID); err != nil {
		return fmt.Errorf("failed to clear assignments: %w", err)
	}

	for _, workerID := range workerIDs {
		_, err := q.Exec(ctx, `
			INSERT INTO project_assignments (project_id, user_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, projectID, workerID)
		if err != nil {
			return fmt.Errorf("failed to assign worker %s: %w", workerID, err)
		}
	}
	return nil
}

// IsAssigned implements project.ProjectRepository.
func (r *projectRepositoryImpl) IsAssigned(ctx context.Context, projectID, userID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM project_assignments WHERE project_id = $1 AND user_id = $2)
	`, projectID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check assignment: %w", err)
	}
	return exists, nil
}

// CountActive implements project.ProjectRepository.
func (r *projectRepositoryImpl) CountActive(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM projects WHERE status = $1`, project.StatusActive).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active projects: %w", err)
	}
	return count, nil
}
