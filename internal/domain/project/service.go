package project

import "context"

type ProjectService interface {
	List(ctx context.Context) ([]ProjectResponse, error)
	Get(ctx context.Context, id string) (ProjectDetailResponse, error)
	Create(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)
	Update(ctx context.Context, id string, req UpdateProjectRequest) (ProjectResponse, error)
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
