package report

import (
	"context"
	"time"
)

type ReportRepository interface {
	List(ctx context.Context) ([]Report, error)
	ListForWorker(ctx context.Context, userID string) ([]Report, error)
	ListByProject(ctx context.Context, projectID string) ([]Report, error)
	GetByID(ctx context.Context, id string) (Report, error)
	Create(ctx context.Context, newReport Report) (Report, error)
	AddImage(ctx context.Context, reportID, filePath string) error
	CountSince(ctx context.Context, since time.Time) (int, error)
	Count(ctx context.Context) (int, error)
	ListAllImagePaths(ctx context.Context) ([]string, error)
}
