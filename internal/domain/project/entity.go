package project

import "time"

type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusArchived  Status = "archived"
)

func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusActive, StatusPaused, StatusCompleted, StatusArchived:
		return true
	}
	return false
}

type Project struct {
	ID           string
	Name         string
	Address      string
	CustomerName string
	Status       Status
	Description  *string
	ImageURL     *string
	CreatedAt    time.Time
	UpdatedAt    *time.Time

	// Join
	ReportsCount    int
	AssignedWorkers []string
}
