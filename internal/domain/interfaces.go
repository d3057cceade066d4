package domain

import (
	"context"
	"time"
)

// StatusClient defines the network contract with the remote status API.
// Implementations share one cookie jar across all calls.
//
//go:generate mockgen -destination=mocks/status_client_mock.go -package=mocks github.com/genricoloni/artblob/internal/domain StatusClient
type StatusClient interface {
	// Query polls the now-playing endpoint.
	// Any failure yields an empty QueryResult, never an error.
	Query(ctx context.Context) QueryResult

	// FetchArtwork downloads the album art for a song at the given pixel size.
	// Failures are returned to the caller.
	FetchArtwork(ctx context.Context, songID SongID, size int) ([]byte, error)

	// SendControl issues a fire-and-forget playback command
	SendControl(ctx context.Context, action ControlAction)

	// Authenticate performs a Basic-Auth handshake and reports whether a session
	// was established
	Authenticate(ctx context.Context, user, password string) bool

	// IsAuthenticated reports whether a previous Authenticate call succeeded
	IsAuthenticated() bool
}

// Monitor turns status polls into display intents
//
//go:generate mockgen -destination=mocks/monitor_mock.go -package=mocks github.com/genricoloni/artblob/internal/domain Monitor
type Monitor interface {
	// Initial returns the intents describing the state before the first poll
	Initial() []Intent

	// Tick runs one poll cycle. Callers must not invoke it concurrently.
	Tick(ctx context.Context) []Intent
}

// Renderer consumes display intents produced by the monitor
//
//go:generate mockgen -destination=mocks/renderer_mock.go -package=mocks github.com/genricoloni/artblob/internal/domain Renderer
type Renderer interface {
	// Apply executes one tick's intents. An empty batch is a no-op.
	Apply(ctx context.Context, intents []Intent) error
}

// ArtworkProcessor defines in-memory artwork transformations.
// This is OS-agnostic and works purely with byte streams
//
//go:generate mockgen -destination=mocks/artwork_processor_mock.go -package=mocks github.com/genricoloni/artblob/internal/domain ArtworkProcessor
type ArtworkProcessor interface {
	// Fit scales the artwork to fit within size x size pixels
	Fit(imageData []byte, size int) ([]byte, error)

	// Icon builds a small PNG suitable for a window icon
	Icon(imageData []byte) ([]byte, error)
}

// Config defines the read-only application configuration
type Config interface {
	// GetURL returns the API prefix, always ending in "/"
	GetURL() string
	// GetStatusPath returns the status endpoint path relative to the prefix
	GetStatusPath() string
	// GetAuthPath returns the auth endpoint path relative to the prefix
	GetAuthPath() string
	// GetCredentials returns the optional user and password
	GetCredentials() (user, password string)
	// GetSize returns the artwork pixel size
	GetSize() int
	// GetInterval returns the poll interval
	GetInterval() time.Duration
	// GetTimeout returns the per-request timeout, zero for none
	GetTimeout() time.Duration
	// GetSongAlign returns the label alignment used for track info
	GetSongAlign() Alignment
	// GetInfoAlign returns the label alignment used for status messages
	GetInfoAlign() Alignment
	// GetArtAlign returns the artwork alignment
	GetArtAlign() Alignment
	// WantsWindowDecorations reports whether title and icon intents are requested
	WantsWindowDecorations() bool
	// GetOutputDir returns the directory the file renderer writes to
	GetOutputDir() string
	// NotifyEnabled reports whether desktop notifications are sent
	NotifyEnabled() bool
	// ControlEnabled reports whether the D-Bus control service is exported
	ControlEnabled() bool
}
