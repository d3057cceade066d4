package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/genricoloni/artblob/internal/desktop"
	"github.com/genricoloni/artblob/internal/domain"
	"go.uber.org/zap"
)

const (
	artworkBase   = "artwork"
	iconFilename  = "icon.png"
	labelFilename = "label.txt"
	stateFilename = "state.json"
)

var artworkExtensions = []string{".jpg", ".png", ".gif", ".bin"}

var (
	_ domain.Renderer = (*FileRenderer)(nil)
	_ domain.Renderer = (*NotifyRenderer)(nil)
	_ domain.Renderer = (*LogRenderer)(nil)
	_ domain.Renderer = (*Multi)(nil)
)

// TextPlacement describes where the label goes inside the overlay
type TextPlacement struct {
	Align   domain.Alignment     `json:"align"`
	HAlign  domain.Anchor        `json:"halign"`
	VAlign  domain.Anchor        `json:"valign"`
	Justify domain.Justification `json:"justify"`
}

// OverlayState is written to state.json after every batch so an overlay host
// can pick up the whole display in one read
type OverlayState struct {
	Text      string        `json:"text"`
	Label     TextPlacement `json:"label"`
	Title     string        `json:"title,omitempty"`
	Artwork   string        `json:"artwork,omitempty"`
	ArtAlign  TextPlacement `json:"art"`
	Icon      string        `json:"icon,omitempty"`
	Window    desktop.Rect  `json:"window"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// FileRenderer materializes intents as files in an output directory
type FileRenderer struct {
	logger    *zap.Logger
	outputDir string

	mu    sync.Mutex
	state OverlayState
}

// NewFileRenderer creates a renderer writing to outputDir.
// The overlay window is placed on screen according to artAlign.
func NewFileRenderer(logger *zap.Logger, outputDir string, size int, artAlign domain.Alignment, screen *domain.ScreenResolution) *FileRenderer {
	var window desktop.Rect
	if screen != nil {
		window = desktop.Place(*screen, size, artAlign)
	}
	return &FileRenderer{
		logger:    logger,
		outputDir: outputDir,
		state: OverlayState{
			ArtAlign: placement(artAlign),
			Window:   window,
		},
	}
}

// Apply writes the files touched by the batch, then state.json
func (r *FileRenderer) Apply(ctx context.Context, intents []domain.Intent) error {
	if len(intents) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(r.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, in := range intents {
		if err := r.apply(in); err != nil {
			return fmt.Errorf("%s: %w", in.Kind, err)
		}
	}

	r.state.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(r.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	if err := r.write(stateFilename, data); err != nil {
		return err
	}

	r.logger.Debug("Overlay files updated",
		zap.String("dir", r.outputDir),
		zap.Int("intents", len(intents)))
	return nil
}

// State returns a copy of the last written overlay state
func (r *FileRenderer) State() OverlayState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *FileRenderer) apply(in domain.Intent) error {
	switch in.Kind {
	case domain.IntentShowArtwork:
		name := artworkBase + extensionFor(in.Data)
		if err := r.removeArtwork(name); err != nil {
			return err
		}
		if err := r.write(name, in.Data); err != nil {
			return err
		}
		r.state.Artwork = name

	case domain.IntentClearArtwork:
		if err := r.removeArtwork(""); err != nil {
			return err
		}
		r.state.Artwork = ""

	case domain.IntentShowText:
		if err := r.write(labelFilename, []byte(in.Text)); err != nil {
			return err
		}
		r.state.Text = in.Text
		r.state.Label = placement(in.Align)

	case domain.IntentSetWindowTitle:
		r.state.Title = in.Text

	case domain.IntentSetWindowIcon:
		if err := r.write(iconFilename, in.Data); err != nil {
			return err
		}
		r.state.Icon = iconFilename

	default:
		r.logger.Warn("Ignoring unknown intent", zap.String("kind", string(in.Kind)))
	}
	return nil
}

// write replaces a file atomically so readers never see partial content
func (r *FileRenderer) write(name string, data []byte) error {
	tmp, err := os.CreateTemp(r.outputDir, "."+name+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to chmod %s: %w", name, err)
	}
	if err := os.Rename(tmpName, filepath.Join(r.outputDir, name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}

// removeArtwork deletes artwork files except keep
func (r *FileRenderer) removeArtwork(keep string) error {
	for _, ext := range artworkExtensions {
		name := artworkBase + ext
		if name == keep {
			continue
		}
		if err := os.Remove(filepath.Join(r.outputDir, name)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", name, err)
		}
	}
	return nil
}

func extensionFor(data []byte) string {
	switch http.DetectContentType(data) {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	default:
		return ".bin"
	}
}

func placement(a domain.Alignment) TextPlacement {
	p := a.Placement()
	return TextPlacement{
		Align:   a,
		HAlign:  p.Horizontal,
		VAlign:  p.Vertical,
		Justify: p.Justify,
	}
}
