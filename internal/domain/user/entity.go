package user

import (
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin  Role = "admin"  // Site manager - full access
	RoleWorker Role = "worker" // Construction worker - assigned projects only
)

func ValidRole(r string) bool {
	return r == string(RoleAdmin) || r == string(RoleWorker)
}

type User struct {
	ID           string
	Username     string
	Name         string
	PasswordHash string
	Role         Role
	AvatarPath   *string
	CreatedAt    time.Time

	// Join
	AssignedProjects []string
}

// IsAdmin checks if user is a site manager
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// DisplayName returns the full name, falling back to the username.
func (u *User) DisplayName() string {
	if strings.TrimSpace(u.Name) != "" {
		return u.Name
	}
	return u.Username
}
