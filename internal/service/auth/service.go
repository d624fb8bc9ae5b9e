package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/auth"
	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/user"
	"github.com/bauapp-dev/bauapp-backend-go/internal/pkg/jwt"
	"github.com/bauapp-dev/bauapp-backend-go/internal/pkg/storage"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
	storage storage.FileStorage
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service, fileStorage storage.FileStorage) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
		storage:        fileStorage,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	userData, err := a.UserRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(userData.ID, userData.Username, userData.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	userResp, err := a.userResponse(ctx, userData)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      userResp,
	}, nil
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context) (user.UserResponse, error) {
	userID, _, err := claimsFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.UserResponse{}, auth.ErrInvalidToken
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	return a.userResponse(ctx, userData)
}

// SSEToken implements auth.AuthService.
func (a *AuthServiceImpl) SSEToken(ctx context.Context) (auth.SSETokenResponse, error) {
	userID, _, err := claimsFromContext(ctx)
	if err != nil {
		return auth.SSETokenResponse{}, err
	}

	token, expiresIn, err := a.Service.GenerateSSEToken(userID)
	if err != nil {
		return auth.SSETokenResponse{}, fmt.Errorf("failed to create sse token: %w", err)
	}

	return auth.SSETokenResponse{Token: token, ExpiresIn: expiresIn}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return auth.ErrInvalidToken
	}
	a.Service.RevokeToken(token)
	return nil
}

// userResponse builds the login/me payload: assigned projects for workers
// and the resolved avatar URL.
func (a *AuthServiceImpl) userResponse(ctx context.Context, userData user.User) (user.UserResponse, error) {
	assigned := []string{}
	if userData.Role == user.RoleWorker {
		ids, err := a.UserRepository.GetAssignedProjectIDs(ctx, userData.ID)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to get assigned projects: %w", err)
		}
		if ids != nil {
			assigned = ids
		}
	}
	userData.AssignedProjects = assigned

	var avatarURL *string
	if userData.AvatarPath != nil {
		if u, err := a.storage.GetURL(ctx, *userData.AvatarPath, 0); err == nil {
			avatarURL = &u
		}
	}

	return user.NewUserResponse(userData, avatarURL), nil
}

func claimsFromContext(ctx context.Context) (string, user.Role, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id claim is missing or invalid")
	}

	roleStr, _ := claims["role"].(string)
	return userID, user.Role(roleStr), nil
}
