// Package imaging validates uploaded equipment images before analysis.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"strings"

	// Register decoders for the formats we accept.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/mvasanth/equipscan/pkg/models"
)

// MaxImageBytes is the largest upload we accept.
const MaxImageBytes = 10 << 20

// Sentinel errors for image validation failures.
var (
	ErrEmptyImage        = errors.New("image is empty")
	ErrImageTooLarge     = errors.New("image exceeds size limit")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// Inspect validates the image bytes and returns decoded metadata. Only the
// header is decoded, never the full pixel data.
func Inspect(data []byte) (models.ImageMetadata, error) {
	if len(data) == 0 {
		return models.ImageMetadata{}, ErrEmptyImage
	}
	if len(data) > MaxImageBytes {
		return models.ImageMetadata{}, fmt.Errorf("%w: %d bytes (max %d)", ErrImageTooLarge, len(data), MaxImageBytes)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return models.ImageMetadata{}, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}

	return models.ImageMetadata{
		Format:    strings.ToUpper(format),
		Width:     cfg.Width,
		Height:    cfg.Height,
		SizeBytes: len(data),
	}, nil
}
