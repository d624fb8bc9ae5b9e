package auth

import (
	"context"

	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/user"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Me(ctx context.Context) (user.UserResponse, error)
	SSEToken(ctx context.Context) (SSETokenResponse, error)
	Logout(ctx context.Context, token string) error
}
