package project

import (
	"context"
)

type ProjectRepository interface {
	List(ctx context.Context) ([]Project, error)
	ListAssigned(ctx context.Context, userID string) ([]Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	Create(ctx context.Context, newProject Project) (Project, error)
	Update(ctx context.Context, p Project) error
	Delete(ctx context.Context, id string) error
	ReplaceAssignments(ctx context.Context, projectID string, workerIDs []string) error
	IsAssigned(ctx context.Context, projectID, userID string) (bool, error)
	CountActive(ctx context.Context) (int, error)
}
