package file

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/report"
	"github.com/bauapp-dev/bauapp-backend-go/internal/domain/user"
	"github.com/bauapp-dev/bauapp-backend-go/internal/pkg/storage"
)

func testJPEG(t *testing.T, w, h int) *bytes.Reader {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return bytes.NewReader(buf.Bytes())
}

func newTestService(t *testing.T) (*Service, storage.FileStorage) {
	fileStorage, err := storage.NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)
	return NewService(fileStorage, slog.Default()), fileStorage
}

func TestSaveReportImages_StoresProcessedPhotos(t *testing.T) {
	svc, fileStorage := newTestService(t)
	ctx := context.Background()

	paths, err := svc.SaveReportImages(ctx, "proj-1", []report.ImageUpload{
		{Filename: "a.jpg", File: testJPEG(t, 40, 30)},
		{Filename: "b.jpg", File: testJPEG(t, 30, 40)},
	})
	require.NoError(t, err)
	require.Len(t, paths, 2)

	for _, p := range paths {
		assert.True(t, strings.HasPrefix(p, "proj-1/"), "path %q should live under the project dir", p)
		assert.True(t, strings.HasSuffix(p, ".jpg"))

		exists, err := fileStorage.Exists(ctx, p)
		require.NoError(t, err)
		assert.True(t, exists)
	}
}

func TestSaveReportImages_SkipsUndecodable(t *testing.T) {
	svc, _ := newTestService(t)

	paths, err := svc.SaveReportImages(context.Background(), "proj-1", []report.ImageUpload{
		{Filename: "broken.jpg", File: strings.NewReader("not an image")},
		{Filename: "ok.jpg", File: testJPEG(t, 20, 20)},
	})
	require.NoError(t, err)
	assert.Len(t, paths, 1)
}

func TestSaveReportImages_CapsAtMax(t *testing.T) {
	svc, _ := newTestService(t)

	var uploads []report.ImageUpload
	for i := 0; i < report.MaxImages+3; i++ {
		uploads = append(uploads, report.ImageUpload{Filename: "img.jpg", File: testJPEG(t, 10, 10)})
	}

	paths, err := svc.SaveReportImages(context.Background(), "proj-1", uploads)
	require.NoError(t, err)
	assert.Len(t, paths, report.MaxImages)
}

func TestSaveAvatar_RejectsUnknownExtension(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.SaveAvatar(context.Background(), "user-1", "avatar.gif", testJPEG(t, 10, 10))
	assert.ErrorIs(t, err, user.ErrInvalidAvatarType)
}

func TestSaveAvatar_StoresUnderAvatars(t *testing.T) {
	svc, fileStorage := newTestService(t)
	ctx := context.Background()

	path, err := svc.SaveAvatar(ctx, "user-1", "me.png", testJPEG(t, 100, 60))
	require.NoError(t, err)
	assert.Equal(t, "avatars/user-1.jpg", path)

	exists, err := fileStorage.Exists(ctx, path)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCleanupOrphans_RemovesUnreferenced(t *testing.T) {
	svc, fileStorage := newTestService(t)
	ctx := context.Background()

	_, err := fileStorage.Upload(ctx, testJPEG(t, 10, 10), "proj-1/kept.jpg", "image/jpeg")
	require.NoError(t, err)
	_, err = fileStorage.Upload(ctx, testJPEG(t, 10, 10), "proj-1/orphan.jpg", "image/jpeg")
	require.NoError(t, err)
	_, err = fileStorage.Upload(ctx, testJPEG(t, 10, 10), "avatars/user-1.jpg", "image/jpeg")
	require.NoError(t, err)

	removed, err := svc.CleanupOrphans(ctx, []string{"proj-1/kept.jpg"})
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	kept, err := fileStorage.Exists(ctx, "proj-1/kept.jpg")
	require.NoError(t, err)
	assert.True(t, kept)

	orphan, err := fileStorage.Exists(ctx, "proj-1/orphan.jpg")
	require.NoError(t, err)
	assert.False(t, orphan)

	avatar, err := fileStorage.Exists(ctx, "avatars/user-1.jpg")
	require.NoError(t, err)
	assert.True(t, avatar)
}
