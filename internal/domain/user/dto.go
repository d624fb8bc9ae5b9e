package user

import (
	"github.com/bauapp-dev/bauapp-backend-go/internal/pkg/validator"
)

type UserResponse struct {
	ID               string   `json:"id"`
	Username         string   `json:"username"`
	Name             string   `json:"name"`
	Role             Role     `json:"role"`
	AvatarURL        *string  `json:"avatarUrl"`
	AssignedProjects []string `json:"assignedProjects,omitempty"`
}

// NewUserResponse maps a user entity to its API shape. avatarURL is the
// resolved public URL of the stored avatar, nil when none exists.
func NewUserResponse(u User, avatarURL *string) UserResponse {
	return UserResponse{
		ID:               u.ID,
		Username:         u.Username,
		Name:             u.DisplayName(),
		Role:             u.Role,
		AvatarURL:        avatarURL,
		AssignedProjects: u.AssignedProjects,
	}
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	} else if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters (letters, digits, . _ -)",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		})
	}

	if !validator.IsInSlice(r.Role, []string{string(RoleAdmin), string(RoleWorker)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be admin or worker",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name cannot be empty",
		})
	}

	if r.Password != nil && len(*r.Password) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		})
	}

	if r.Role != nil && !validator.IsInSlice(*r.Role, []string{string(RoleAdmin), string(RoleWorker)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be admin or worker",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAvatarResponse struct {
	AvatarURL string `json:"avatarUrl"`
}
