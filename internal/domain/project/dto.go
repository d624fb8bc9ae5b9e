package project

import (
	"time"

	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/report"
	"github.com/bauapp-dev/bauapp-backend-go/internal/pkg/validator"
)

type ProjectResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Address         string   `json:"address"`
	CustomerName    string   `json:"customerName"`
	Status          Status   `json:"status"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       *string  `json:"updatedAt"`
	Description     *string  `json:"description"`
	ImageURL        *string  `json:"imageUrl"`
	ReportsCount    int      `json:"reportsCount"`
	AssignedWorkers []string `json:"assignedWorkers"`
}

type ProjectDetailResponse struct {
	ProjectResponse
	Reports []report.ReportResponse `json:"reports"`
}

// NewProjectResponse maps a project entity to its API shape.
func NewProjectResponse(p Project) ProjectResponse {
	var updatedAt *string
	if p.UpdatedAt != nil {
		s := p.UpdatedAt.UTC().Format(time.RFC3339)
		updatedAt = &s
	}
	workers := p.AssignedWorkers
	if workers == nil {
		workers = []string{}
	}
	return ProjectResponse{
		ID:              p.ID,
		Name:            p.Name,
		Address:         p.Address,
		CustomerName:    p.CustomerName,
		Status:          p.Status,
		CreatedAt:       p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       updatedAt,
		Description:     p.Description,
		ImageURL:        p.ImageURL,
		ReportsCount:    p.ReportsCount,
		AssignedWorkers: workers,
	}
}

type CreateProjectRequest struct {
	Name            string   `json:"name"`
	Address         string   `json:"address"`
	CustomerName    string   `json:"customerName"`
	Status          string   `json:"status"`
	Description     *string  `json:"description"`
	ImageURL        *string  `json:"imageUrl"`
	AssignedWorkers []string `json:"assignedWorkers"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Address) {
		errs = append(errs, validator.ValidationError{
			Field:   "address",
			Message: "address is required",
		})
	}

	if validator.IsEmpty(r.CustomerName) {
		errs = append(errs, validator.ValidationError{
			Field:   "customerName",
			Message: "customerName is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProjectRequest struct {
	Name            *string   `json:"name"`
	Address         *string   `json:"address"`
	CustomerName    *string   `json:"customerName"`
	Status          *string   `json:"status"`
	Description     *string   `json:"description"`
	ImageURL        *string   `json:"imageUrl"`
	AssignedWorkers *[]string `json:"assignedWorkers"`
}

// Empty reports whether the patch carries no fields at all.
func (r *UpdateProjectRequest) Empty() bool {
	return r.Name == nil && r.Address == nil && r.CustomerName == nil &&
		r.Status == nil && r.Description == nil && r.ImageURL == nil &&
		r.AssignedWorkers == nil
}

func (r *UpdateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name cannot be empty",
		})
	}

	if r.Address != nil && validator.IsEmpty(*r.Address) {
		errs = append(errs, validator.ValidationError{
			Field:   "address",
			Message: "address cannot be empty",
		})
	}

	if r.CustomerName != nil && validator.IsEmpty(*r.CustomerName) {
		errs = append(errs, validator.ValidationError{
			Field:   "customerName",
			Message: "customerName cannot be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
