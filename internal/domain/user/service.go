package user

import (
	"context"
	"io"
)

type UserService interface {
	List(ctx context.Context) ([]UserResponse, error)
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, id string) error
	UpdateAvatar(ctx context.Context, filename string, file io.Reader) (UpdateAvatarResponse, error)
}
