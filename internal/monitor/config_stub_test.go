package monitor

import (
	"time"

	"github.com/genricoloni/artblob/internal/domain"
)

// stubConfig is a simple implementation of domain.Config for testing
type stubConfig struct {
	size      int
	songAlign domain.Alignment
	infoAlign domain.Alignment
	decorated bool
}

func (c *stubConfig) GetURL() string                   { return "http://localhost:6969/" }
func (c *stubConfig) GetStatusPath() string            { return "json.py" }
func (c *stubConfig) GetAuthPath() string              { return "www-data/auth" }
func (c *stubConfig) GetCredentials() (string, string) { return "", "" }
func (c *stubConfig) GetSize() int                     { return c.size }
func (c *stubConfig) GetInterval() time.Duration       { return time.Second }
func (c *stubConfig) GetTimeout() time.Duration        { return 0 }
func (c *stubConfig) GetSongAlign() domain.Alignment   { return c.songAlign }
func (c *stubConfig) GetInfoAlign() domain.Alignment   { return c.infoAlign }
func (c *stubConfig) GetArtAlign() domain.Alignment    { return "bottom" }
func (c *stubConfig) WantsWindowDecorations() bool     { return c.decorated }
func (c *stubConfig) GetOutputDir() string             { return "" }
func (c *stubConfig) NotifyEnabled() bool              { return false }
func (c *stubConfig) ControlEnabled() bool             { return false }
