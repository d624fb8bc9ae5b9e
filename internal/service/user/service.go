package user

import (
	"context"
	"fmt"
	"io"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/user"
	"github.com/bauapp-dev/bauapp-backend-go/internal/pkg/storage"
	"github.com/bauapp-dev/bauapp-backend-go/internal/service/file"
)

type UserServiceImpl struct {
	user.UserRepository
	files   *file.Service
	storage storage.FileStorage
}

func NewUserService(userRepository user.UserRepository, files *file.Service, fileStorage storage.FileStorage) user.UserService {
	return &UserServiceImpl{
		UserRepository: userRepository,
		files:          files,
		storage:        fileStorage,
	}
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.NewUserResponse(u, s.avatarURL(ctx, u)))
	}
	return responses, nil
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: string(hash),
		Role:         user.Role(req.Role),
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.NewUserResponse(created, nil), nil
}

// Update implements user.UserService.
func (s *UserServiceImpl) Update(ctx context.Context, id string, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	existing, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Role != nil {
		existing.Role = user.Role(*req.Role)
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		existing.PasswordHash = string(hash)
	}

	if err := s.UserRepository.Update(ctx, existing); err != nil {
		return user.UserResponse{}, err
	}

	return user.NewUserResponse(existing, s.avatarURL(ctx, existing)), nil
}

// Delete implements user.UserService.
func (s *UserServiceImpl) Delete(ctx context.Context, id string) error {
	actorID, _, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}
	if actorID == id {
		return user.ErrCannotDeleteSelf
	}
	return s.UserRepository.Delete(ctx, id)
}

// UpdateAvatar implements user.UserService.
func (s *UserServiceImpl) UpdateAvatar(ctx context.Context, filename string, f io.Reader) (user.UpdateAvatarResponse, error) {
	userID, _, err := claimsFromContext(ctx)
	if err != nil {
		return user.UpdateAvatarResponse{}, err
	}

	path, err := s.files.SaveAvatar(ctx, userID, filename, f)
	if err != nil {
		return user.UpdateAvatarResponse{}, err
	}

	if err := s.UserRepository.UpdateAvatarPath(ctx, userID, path); err != nil {
		return user.UpdateAvatarResponse{}, err
	}

	return user.UpdateAvatarResponse{AvatarURL: s.files.URL(ctx, path)}, nil
}

func (s *UserServiceImpl) avatarURL(ctx context.Context, u user.User) *string {
	if u.AvatarPath == nil {
		return nil
	}
	url, err := s.storage.GetURL(ctx, *u.AvatarPath, 0)
	if err != nil {
		return nil
	}
	return &url
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
