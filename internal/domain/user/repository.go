package user

import (
	"context"
)

type UserRepository interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id string) error
	UpdateAvatarPath(ctx context.Context, id string, avatarPath string) error
	GetAssignedProjectIDs(ctx context.Context, id string) ([]string, error)
	ListAdminIDs(ctx context.Context) ([]string, error)
}
