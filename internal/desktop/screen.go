package desktop

import (
	"github.com/genricoloni/artblob/internal/domain"
	"github.com/kbinani/screenshot"
	"go.uber.org/zap"
)

// fallbackResolution is used when no display can be queried (headless sessions)
var fallbackResolution = domain.ScreenResolution{Width: 1920, Height: 1080}

// NewScreenResolution detects the primary screen resolution at startup
func NewScreenResolution(logger *zap.Logger) *domain.ScreenResolution {
	n := screenshot.NumActiveDisplays()
	if n <= 0 {
		logger.Warn("No active displays detected, falling back to 1920x1080")
		res := fallbackResolution
		return &res
	}

	// Use primary monitor (index 0)
	bounds := screenshot.GetDisplayBounds(0)
	res := &domain.ScreenResolution{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}

	logger.Info("Screen resolution detected",
		zap.Int("width", res.Width),
		zap.Int("height", res.Height))

	return res
}

// Rect is a window rectangle in screen coordinates
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Place computes where a size x size overlay sits on screen for an alignment
func Place(screen domain.ScreenResolution, size int, align domain.Alignment) Rect {
	p := align.Placement()
	return Rect{
		X:      offset(screen.Width, size, p.Horizontal),
		Y:      offset(screen.Height, size, p.Vertical),
		Width:  size,
		Height: size,
	}
}

func offset(total, size int, anchor domain.Anchor) int {
	if size >= total {
		return 0
	}
	switch anchor {
	case domain.AnchorCenter:
		return (total - size) / 2
	case domain.AnchorEnd:
		return total - size
	default:
		return 0
	}
}
