package report

import (
	"time"

	"github.com/bauapp-dev/bauapp-backend-go/internal/pkg/validator"
)

type ReportResponse struct {
	ID             string   `json:"id"`
	ProjectID      string   `json:"projectId"`
	ProjectName    string   `json:"projectName,omitempty"`
	ProjectAddress string   `json:"projectAddress,omitempty"`
	UserID         string   `json:"userId"`
	UserName       string   `json:"userName"`
	Text           string   `json:"text"`
	Images         []string `json:"images"`
	QuickActions   []string `json:"quickActions"`
	Weather        *string  `json:"weather"`
	WorkersPresent *int     `json:"workersPresent"`
	StartTime      *string  `json:"startTime"`
	EndTime        *string  `json:"endTime"`
	BreakMinutes   *int     `json:"breakMinutes"`
	CreatedAt      string   `json:"createdAt"`
}

// NewReportResponse maps a report entity to its API shape. imageURL
// resolves a stored file path to a public URL.
func NewReportResponse(r Report, imageURL func(string) string) ReportResponse {
	images := make([]string, 0, len(r.ImagePaths))
	for _, p := range r.ImagePaths {
		images = append(images, imageURL(p))
	}
	quickActions := r.QuickActions
	if quickActions == nil {
		quickActions = []string{}
	}
	return ReportResponse{
		ID:             r.ID,
		ProjectID:      r.ProjectID,
		ProjectName:    r.ProjectName,
		ProjectAddress: r.ProjectAddress,
		UserID:         r.UserID,
		UserName:       r.AuthorName(),
		Text:           r.Text,
		Images:         images,
		QuickActions:   quickActions,
		Weather:        r.Weather,
		WorkersPresent: r.WorkersPresent,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		BreakMinutes:   r.BreakMinutes,
		CreatedAt:      r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type CreateReportRequest struct {
	ProjectID      string   `json:"projectId"`
	Text           string   `json:"text"`
	QuickActions   []string `json:"quickActions"`
	Weather        *string  `json:"weather"`
	WorkersPresent *int     `json:"workersPresent"`
	StartTime      *string  `json:"startTime"`
	EndTime        *string  `json:"endTime"`
	BreakMinutes   *int     `json:"breakMinutes"`
}

func (r *CreateReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "projectId",
			Message: "projectId is required",
		})
	}

	if validator.IsEmpty(r.Text) && len(r.QuickActions) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "text",
			Message: "text or quickActions is required",
		})
	}

	if r.StartTime != nil && !validator.IsEmpty(*r.StartTime) && !validator.IsValidClockTime(*r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "startTime",
			Message: "startTime must be in HH:MM format",
		})
	}

	if r.EndTime != nil && !validator.IsEmpty(*r.EndTime) && !validator.IsValidClockTime(*r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "endTime",
			Message: "endTime must be in HH:MM format",
		})
	}

	if r.BreakMinutes != nil && *r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "breakMinutes",
			Message: "breakMinutes cannot be negative",
		})
	}

	if r.WorkersPresent != nil && *r.WorkersPresent < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "workersPresent",
			Message: "workersPresent cannot be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
