package report

import (
	"context"
	"io"
)

// ImageUpload is one photo attached to a new report.
type ImageUpload struct {
	Filename string
	File     io.Reader
}

type ReportService interface {
	List(ctx context.Context) ([]ReportResponse, error)
	Get(ctx context.Context, id string) (ReportResponse, error)
	Create(ctx context.Context, req CreateReportRequest, images []ImageUpload) (ReportResponse, error)
}
