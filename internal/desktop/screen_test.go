package desktop

import (
	"testing"

	"github.com/genricoloni/artblob/internal/domain"
)

func TestPlace(t *testing.T) {
	screen := domain.ScreenResolution{Width: 1920, Height: 1080}

	tests := []struct {
		align    domain.Alignment
		expected Rect
	}{
		{"top", Rect{X: 0, Y: 0, Width: 180, Height: 180}},
		{"bottom", Rect{X: 0, Y: 900, Width: 180, Height: 180}},
		{"center", Rect{X: 870, Y: 450, Width: 180, Height: 180}},
		{"center-top", Rect{X: 870, Y: 0, Width: 180, Height: 180}},
		{"center-bottom", Rect{X: 870, Y: 900, Width: 180, Height: 180}},
		{"top-right", Rect{X: 1740, Y: 0, Width: 180, Height: 180}},
		{"bottom-right", Rect{X: 1740, Y: 900, Width: 180, Height: 180}},
	}

	for _, tt := range tests {
		t.Run(string(tt.align), func(t *testing.T) {
			got := Place(screen, 180, tt.align)
			if got != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestPlace_OverlayLargerThanScreen(t *testing.T) {
	got := Place(domain.ScreenResolution{Width: 100, Height: 100}, 180, "bottom-right")
	if got.X != 0 || got.Y != 0 {
		t.Errorf("oversized overlay should pin to origin, got %+v", got)
	}
}
