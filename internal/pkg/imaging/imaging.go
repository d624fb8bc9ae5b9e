package imaging

import (
	"bytes"
	"fmt"
	"io"

	img "github.com/disintegration/imaging"
)

const (
	// MaxDimension bounds the longest side of processed photos.
	MaxDimension = 1920

	// JPEGQuality is the compression level for stored photos.
	JPEGQuality = 80
)

// Process re-encodes an uploaded image as a compressed JPEG. Oversized
// photos are scaled down so the longest side fits MaxDimension. The input
// may be any format the decoder understands (jpeg, png, webp via sniffing).
func Process(r io.Reader) ([]byte, error) {
	src, err := img.Decode(r, img.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := src.Bounds()
	if bounds.Dx() > MaxDimension || bounds.Dy() > MaxDimension {
		src = img.Fit(src, MaxDimension, MaxDimension, img.Lanczos)
	}

	var buf bytes.Buffer
	if err := img.Encode(&buf, src, img.JPEG, img.JPEGQuality(JPEGQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return buf.Bytes(), nil
}

// ProcessAvatar produces a square profile image, center-cropped and
// re-encoded as JPEG.
func ProcessAvatar(r io.Reader, size int) ([]byte, error) {
	src, err := img.Decode(r, img.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	src = img.Fill(src, size, size, img.Center, img.Lanczos)

	var buf bytes.Buffer
	if err := img.Encode(&buf, src, img.JPEG, img.JPEGQuality(JPEGQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return buf.Bytes(), nil
}
