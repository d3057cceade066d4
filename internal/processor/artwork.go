package processor

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // GIF format support
	"image/jpeg"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/genricoloni/artblob/internal/domain"
	"go.uber.org/zap"
)

const defaultIconSize = 64

// Ensure Artwork implements domain.ArtworkProcessor at compile time.
var _ domain.ArtworkProcessor = (*Artwork)(nil)

// Artwork scales fetched album art for the overlay and the window icon
type Artwork struct {
	logger   *zap.Logger
	iconSize int
}

// NewArtwork creates a new artwork processor
func NewArtwork(logger *zap.Logger) *Artwork {
	return &Artwork{
		logger:   logger,
		iconSize: defaultIconSize,
	}
}

// Fit scales the image down to fit within size x size, keeping its aspect ratio.
// Images already within bounds are returned untouched.
func (p *Artwork) Fit(imageData []byte, size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid target size: %d", size)
	}

	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	// Validate image dimensions to prevent division by zero
	bounds := img.Bounds()
	if bounds.Dy() == 0 || bounds.Dx() == 0 {
		return nil, fmt.Errorf("invalid image dimensions: %dx%d", bounds.Dx(), bounds.Dy())
	}

	if bounds.Dx() <= size && bounds.Dy() <= size {
		return imageData, nil
	}

	p.logger.Debug("Fitting artwork",
		zap.Int("w", bounds.Dx()),
		zap.Int("h", bounds.Dy()),
		zap.Int("size", size))
	fitted := imaging.Fit(img, size, size, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if format == "png" {
		err = png.Encode(buf, fitted)
	} else {
		err = jpeg.Encode(buf, fitted, &jpeg.Options{Quality: 90})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}

	return buf.Bytes(), nil
}

// Icon builds a square PNG thumbnail cropped from the center of the artwork
func (p *Artwork) Icon(imageData []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dy() == 0 || bounds.Dx() == 0 {
		return nil, fmt.Errorf("invalid image dimensions: %dx%d", bounds.Dx(), bounds.Dy())
	}

	icon := imaging.Fill(img, p.iconSize, p.iconSize, imaging.Center, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, icon); err != nil {
		return nil, fmt.Errorf("failed to encode icon: %w", err)
	}

	p.logger.Debug("Icon generated", zap.Int("bytes", buf.Len()))
	return buf.Bytes(), nil
}
