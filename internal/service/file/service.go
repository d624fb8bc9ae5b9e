package file

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/report"
	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/user"
	"github.com/bauapp-dev/bauapp-backend-go/internal/pkg/imaging"
	"github.com/bauapp-dev/bauapp-backend-go/internal/pkg/storage"
)

const avatarSize = 512

var allowedAvatarExts = []string{".jpg", ".jpeg", ".png", ".webp"}

// Service handles stored files: report photos, avatars and the cleanup
// of orphaned uploads.
type Service struct {
	storage storage.FileStorage
	logger  *slog.Logger
}

func NewService(fileStorage storage.FileStorage, logger *slog.Logger) *Service {
	return &Service{storage: fileStorage, logger: logger}
}

// URL resolves a stored path to its public URL. On resolution failure the
// raw path is returned so responses stay usable.
func (s *Service) URL(ctx context.Context, path string) string {
	u, err := s.storage.GetURL(ctx, path, 0)
	if err != nil {
		return path
	}
	return u
}

// SaveReportImages processes and stores the photos of a new report under
// the project's upload directory. At most report.MaxImages files are
// taken; the rest are ignored. A photo that cannot be decoded is skipped
// rather than failing the whole report.
func (s *Service) SaveReportImages(ctx context.Context, projectID string, images []report.ImageUpload) ([]string, error) {
	if len(images) > report.MaxImages {
		images = images[:report.MaxImages]
	}

	ts := time.Now().UTC().Format("2006-01-02_150405")

	var paths []string
	for i, img := range images {
		if img.File == nil || img.Filename == "" {
			continue
		}

		processed, err := imaging.Process(img.File)
		if err != nil {
			s.logger.Warn("skipping unprocessable report image",
				slog.String("filename", img.Filename),
				slog.Any("error", err))
			continue
		}

		name := fmt.Sprintf("%s_img%d_%s.jpg", ts, i, uuid.NewString()[:6])
		path := filepath.Join(projectID, name)

		stored, err := s.storage.Upload(ctx, bytes.NewReader(processed), path, "image/jpeg")
		if err != nil {
			return nil, fmt.Errorf("failed to store report image: %w", err)
		}
		paths = append(paths, stored)
	}

	return paths, nil
}

// SaveAvatar processes and stores a user's profile picture, replacing any
// previous one.
func (s *Service) SaveAvatar(ctx context.Context, userID string, filename string, file io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	allowed := false
	for _, e := range allowedAvatarExts {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", user.ErrInvalidAvatarType
	}

	processed, err := imaging.ProcessAvatar(file, avatarSize)
	if err != nil {
		return "", fmt.Errorf("failed to process avatar: %w", err)
	}

	path := filepath.Join("avatars", userID+".jpg")
	stored, err := s.storage.Upload(ctx, bytes.NewReader(processed), path, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("failed to store avatar: %w", err)
	}
	return stored, nil
}

// CleanupOrphans deletes stored report photos that no report references
// anymore. Avatar files are never touched. Returns the number of files
// removed.
func (s *Service) CleanupOrphans(ctx context.Context, referenced []string) (int, error) {
	known := make(map[string]struct{}, len(referenced))
	for _, p := range referenced {
		known[filepath.Clean(p)] = struct{}{}
	}

	stored, err := s.storage.List(ctx, ".")
	if err != nil {
		return 0, fmt.Errorf("failed to list stored files: %w", err)
	}

	removed := 0
	for _, path := range stored {
		clean := filepath.Clean(path)
		if strings.HasPrefix(clean, "avatars"+string(filepath.Separator)) {
			continue
		}
		if _, ok := known[clean]; ok {
			continue
		}
		if err := s.storage.Delete(ctx, clean); err != nil {
			s.logger.Warn("failed to delete orphaned upload",
				slog.String("path", clean),
				slog.Any("error", err))
			continue
		}
		removed++
	}

	return removed, nil
}
