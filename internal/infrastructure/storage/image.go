package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"

	"github.com/litogalan/portfolio-cms/internal/core/domain"
)

const (
	maxImageBytes = 5 << 20
	maxDimension  = 1600
	jpegQuality   = 90
)

// ImageProcessor validates uploaded images and bounds their dimensions before
// they reach the object store.
type ImageProcessor struct{}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{}
}

// Normalize rejects anything that is not a jpeg or png under the size limit,
// shrinks oversized images and re-encodes as jpeg.
func (p *ImageProcessor) Normalize(data []byte) ([]byte, string, error) {
	if len(data) == 0 {
		return nil, "", fmt.Errorf("%w: empty image", domain.ErrValidation)
	}
	if len(data) > maxImageBytes {
		return nil, "", fmt.Errorf("%w: image exceeds %d bytes", domain.ErrValidation, maxImageBytes)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: unrecognized image format", domain.ErrValidation)
	}
	if format != "jpeg" && format != "png" {
		return nil, "", fmt.Errorf("%w: unsupported image format %q", domain.ErrValidation, format)
	}

	if cfg.Width <= maxDimension && cfg.Height <= maxDimension {
		contentType := "image/jpeg"
		if format == "png" {
			contentType = "image/png"
		}
		return data, contentType, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: decode image", domain.ErrValidation)
	}
	resized := imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, "", fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), "image/jpeg", nil
}
