package export

import "context"

// File is a rendered document ready to be sent as a download.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

type ExportService interface {
	// ProjectPDF renders the full documentation of a project.
	ProjectPDF(ctx context.Context, projectID string) (File, error)

	// ReportPDF renders a single report.
	ReportPDF(ctx context.Context, reportID string) (File, error)
}
