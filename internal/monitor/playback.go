package monitor

import (
	"context"
	"fmt"
	"html"

	"github.com/genricoloni/artblob/internal/domain"
	"go.uber.org/zap"
)

const (
	// LoadingText is shown before the first poll completes
	LoadingText = "Loading..."
	// NothingPlayingText is shown while the server reports no track
	NothingPlayingText = "Nothing playing."
)

var _ domain.Monitor = (*PlaybackMonitor)(nil)

// Options tune what the monitor asks the renderer to display
type Options struct {
	// Size is the requested artwork edge in pixels
	Size int
	// SongAlign places the track info label
	SongAlign domain.Alignment
	// InfoAlign places status messages
	InfoAlign domain.Alignment
	// WindowDecorations requests SetWindowTitle and SetWindowIcon intents
	WindowDecorations bool
}

// OptionsFromConfig extracts monitor options from the application config
func OptionsFromConfig(cfg domain.Config) Options {
	return Options{
		Size:              cfg.GetSize(),
		SongAlign:         cfg.GetSongAlign(),
		InfoAlign:         cfg.GetInfoAlign(),
		WindowDecorations: cfg.WantsWindowDecorations(),
	}
}

// PlaybackMonitor turns status polls into display intents.
// It remembers only the last rendered song, so artwork is fetched once per
// distinct track no matter how often it polls.
//
// Tick must not be called concurrently; the scheduler guarantees a single
// caller, which is the only mutator of the monitor state.
type PlaybackMonitor struct {
	logger     *zap.Logger
	client     domain.StatusClient
	processor  domain.ArtworkProcessor // optional
	opts       Options
	state      domain.PlaybackState
	lastSongID domain.SongID // empty when nothing is rendered
}

// NewPlaybackMonitor creates a monitor in the Loading state.
// processor may be nil, in which case artwork is passed through unmodified
// and no window icon is produced.
func NewPlaybackMonitor(logger *zap.Logger, client domain.StatusClient, processor domain.ArtworkProcessor, opts Options) *PlaybackMonitor {
	return &PlaybackMonitor{
		logger:    logger,
		client:    client,
		processor: processor,
		opts:      opts,
		state:     domain.StateLoading,
	}
}

// Initial returns the intents describing the Loading state
func (m *PlaybackMonitor) Initial() []domain.Intent {
	return []domain.Intent{domain.ShowText(LoadingText, m.opts.InfoAlign)}
}

// Tick runs one poll cycle and returns the intents it produced, possibly none
func (m *PlaybackMonitor) Tick(ctx context.Context) []domain.Intent {
	result := m.client.Query(ctx)

	track := result.NowPlaying
	if track == nil || track.SongID == "" {
		if m.state != domain.StateNothingPlaying {
			m.logger.Info("Nothing playing")
		}
		m.lastSongID = ""
		m.state = domain.StateNothingPlaying
		return []domain.Intent{
			domain.ClearArtwork(),
			domain.ShowText(NothingPlayingText, m.opts.InfoAlign),
		}
	}

	if track.SongID == m.lastSongID {
		return nil
	}

	art, err := m.client.FetchArtwork(ctx, track.SongID, m.opts.Size)
	if err != nil {
		// Keep the previous display and lastSongID so the next tick retries
		m.logger.Warn("Failed to fetch artwork, keeping previous display",
			zap.String("songID", string(track.SongID)),
			zap.Error(err))
		return nil
	}

	m.lastSongID = track.SongID
	m.state = domain.StatePlaying

	m.logger.Info("Now playing",
		zap.String("songID", string(track.SongID)),
		zap.String("title", track.Title),
		zap.String("artist", track.Artist),
		zap.String("album", track.Album))

	intents := []domain.Intent{
		domain.ShowArtwork(m.fit(art)),
		domain.ShowTrack(TrackMarkup(*track), m.opts.SongAlign, *track),
	}

	if m.opts.WindowDecorations {
		intents = append(intents, domain.SetWindowTitle(WindowTitle(*track)))
		if icon := m.icon(art); icon != nil {
			intents = append(intents, domain.SetWindowIcon(icon))
		}
	}

	return intents
}

// State returns the current display state
func (m *PlaybackMonitor) State() domain.PlaybackState {
	return m.state
}

// LastSongID returns the id of the track currently rendered, if any
func (m *PlaybackMonitor) LastSongID() (domain.SongID, bool) {
	return m.lastSongID, m.lastSongID != ""
}

func (m *PlaybackMonitor) fit(art []byte) []byte {
	if m.processor == nil {
		return art
	}
	fitted, err := m.processor.Fit(art, m.opts.Size)
	if err != nil {
		m.logger.Debug("Showing artwork unprocessed", zap.Error(err))
		return art
	}
	return fitted
}

func (m *PlaybackMonitor) icon(art []byte) []byte {
	if m.processor == nil {
		return nil
	}
	icon, err := m.processor.Icon(art)
	if err != nil {
		m.logger.Debug("Skipping window icon", zap.Error(err))
		return nil
	}
	return icon
}

// TrackMarkup renders the label markup with every field escaped
func TrackMarkup(t domain.TrackInfo) string {
	return fmt.Sprintf("<span size=\"large\">%s</span>\n%s\n%s",
		html.EscapeString(t.Title),
		html.EscapeString(t.Artist),
		html.EscapeString(t.Album))
}

// WindowTitle renders the plain-text window title
func WindowTitle(t domain.TrackInfo) string {
	return fmt.Sprintf("%s - %s", t.Title, t.Artist)
}
