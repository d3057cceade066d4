package processor

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestArtwork_Fit(t *testing.T) {
	tests := []struct {
		name           string
		imageData      []byte
		size           int
		expectedError  string
		expectedWidth  int
		expectedHeight int
		expectedFormat string
		expectSame     bool
	}{
		{
			name:           "Success - Square JPEG Downscaled",
			imageData:      createTestJPEG(400, 400, color.RGBA{R: 255, A: 255}),
			size:           180,
			expectedWidth:  180,
			expectedHeight: 180,
			expectedFormat: "jpeg",
		},
		{
			name:           "Success - Wide PNG Keeps Aspect Ratio",
			imageData:      createTestPNG(600, 300, color.RGBA{G: 255, A: 255}),
			size:           180,
			expectedWidth:  180,
			expectedHeight: 90,
			expectedFormat: "png",
		},
		{
			name:       "Edge Case - Already Small",
			imageData:  createTestJPEG(100, 80, color.RGBA{B: 255, A: 255}),
			size:       180,
			expectSame: true,
		},
		{
			name:          "Error - Invalid Image Data",
			imageData:     []byte("not-an-image"),
			size:          180,
			expectedError: "failed to decode image",
		},
		{
			name:          "Error - Empty Data",
			imageData:     []byte{},
			size:          180,
			expectedError: "failed to decode image",
		},
		{
			name:          "Error - Corrupted JPEG",
			imageData:     []byte{0xFF, 0xD8, 0xFF, 0x00, 0x00}, // Partial JPEG header
			size:          180,
			expectedError: "failed to decode image",
		},
		{
			name:          "Error - Zero Size",
			imageData:     createTestJPEG(10, 10, color.White),
			size:          0,
			expectedError: "invalid target size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewArtwork(zap.NewNop())
			result, err := p.Fit(tt.imageData, tt.size)

			if tt.expectedError != "" {
				if err == nil {
					t.Fatalf("expected error containing '%s', got nil", tt.expectedError)
				}
				if !strings.Contains(err.Error(), tt.expectedError) {
					t.Errorf("expected error '%s' to contain '%s'", err.Error(), tt.expectedError)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.expectSame {
				if !bytes.Equal(result, tt.imageData) {
					t.Error("expected small image to be returned untouched")
				}
				return
			}

			img, format, err := image.Decode(bytes.NewReader(result))
			if err != nil {
				t.Fatalf("result is not a valid image: %v", err)
			}
			if format != tt.expectedFormat {
				t.Errorf("expected format %s, got %s", tt.expectedFormat, format)
			}
			bounds := img.Bounds()
			if bounds.Dx() != tt.expectedWidth || bounds.Dy() != tt.expectedHeight {
				t.Errorf("expected %dx%d, got %dx%d", tt.expectedWidth, tt.expectedHeight, bounds.Dx(), bounds.Dy())
			}
		})
	}
}

func TestArtwork_Icon(t *testing.T) {
	p := NewArtwork(zap.NewNop())

	result, err := p.Icon(createTestJPEG(300, 200, color.RGBA{R: 10, G: 20, B: 30, A: 255}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img, format, err := image.Decode(bytes.NewReader(result))
	if err != nil {
		t.Fatalf("icon is not a valid image: %v", err)
	}
	if format != "png" {
		t.Errorf("expected png icon, got %s", format)
	}
	if b := img.Bounds(); b.Dx() != defaultIconSize || b.Dy() != defaultIconSize {
		t.Errorf("expected %dx%d icon, got %dx%d", defaultIconSize, defaultIconSize, b.Dx(), b.Dy())
	}

	if _, err := p.Icon([]byte("garbage")); err == nil {
		t.Error("expected error for invalid icon source")
	}
}

// createTestJPEG generates a simple JPEG image for testing
func createTestJPEG(width, height int, col color.Color) []byte {
	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, filled(width, height, col), &jpeg.Options{Quality: 80}); err != nil {
		panic("failed to create test JPEG: " + err.Error())
	}
	return buf.Bytes()
}

func createTestPNG(width, height int, col color.Color) []byte {
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, filled(width, height, col)); err != nil {
		panic("failed to create test PNG: " + err.Error())
	}
	return buf.Bytes()
}

func filled(width, height int, col color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, col)
		}
	}
	return img
}
