package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/genricoloni/artblob/internal/domain"
	"github.com/genricoloni/artblob/internal/domain/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type stubConfig struct {
	user     string
	password string
	interval time.Duration
}

func (c *stubConfig) GetURL() string                   { return "http://localhost:6969/" }
func (c *stubConfig) GetStatusPath() string            { return "json.py" }
func (c *stubConfig) GetAuthPath() string              { return "www-data/auth" }
func (c *stubConfig) GetCredentials() (string, string) { return c.user, c.password }
func (c *stubConfig) GetSize() int                     { return 180 }
func (c *stubConfig) GetInterval() time.Duration       { return c.interval }
func (c *stubConfig) GetTimeout() time.Duration        { return 0 }
func (c *stubConfig) GetSongAlign() domain.Alignment   { return "bottom" }
func (c *stubConfig) GetInfoAlign() domain.Alignment   { return "top" }
func (c *stubConfig) GetArtAlign() domain.Alignment    { return "bottom" }
func (c *stubConfig) WantsWindowDecorations() bool     { return false }
func (c *stubConfig) GetOutputDir() string             { return "" }
func (c *stubConfig) NotifyEnabled() bool              { return false }
func (c *stubConfig) ControlEnabled() bool             { return false }

var (
	loading = []domain.Intent{domain.ShowText("Loading...", "top")}
	idle    = []domain.Intent{domain.ClearArtwork(), domain.ShowText("Nothing playing.", "top")}
)

func TestEngine_StartRendersInitialThenTicks(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockStatusClient(ctrl)
	mon := mocks.NewMockMonitor(ctrl)
	rend := mocks.NewMockRenderer(ctrl)

	ticked := make(chan struct{}, 1)

	gomock.InOrder(
		client.EXPECT().Authenticate(gomock.Any(), "alice", "secret").Return(true),
		mon.EXPECT().Initial().Return(loading),
		rend.EXPECT().Apply(gomock.Any(), loading).Return(nil),
		mon.EXPECT().Tick(gomock.Any()).Return(idle),
		rend.EXPECT().Apply(gomock.Any(), idle).DoAndReturn(func(context.Context, []domain.Intent) error {
			ticked <- struct{}{}
			return nil
		}),
	)
	// Later ticks report no change
	mon.EXPECT().Tick(gomock.Any()).Return(nil).AnyTimes()

	cfg := &stubConfig{user: "alice", password: "secret", interval: time.Hour}
	e := NewEngine(zap.NewNop(), cfg, client, mon, rend)

	if err := e.Start(context.Background()); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	select {
	case <-ticked:
	case <-time.After(2 * time.Second):
		t.Fatal("Timeout: first tick was not rendered")
	}

	if err := e.Stop(context.Background()); err != nil {
		t.Fatalf("Stop returned error: %v", err)
	}
}

func TestEngine_NoCredentialsSkipsAuthentication(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockStatusClient(ctrl) // Authenticate must not be called
	mon := mocks.NewMockMonitor(ctrl)
	rend := mocks.NewMockRenderer(ctrl)

	mon.EXPECT().Initial().Return(loading)
	rend.EXPECT().Apply(gomock.Any(), loading).Return(nil)
	mon.EXPECT().Tick(gomock.Any()).Return(nil).AnyTimes()

	e := NewEngine(zap.NewNop(), &stubConfig{interval: time.Hour}, client, mon, rend)
	if err := e.Start(context.Background()); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if err := e.Stop(context.Background()); err != nil {
		t.Fatalf("Stop returned error: %v", err)
	}
}

// TestEngine_FailuresAreNotFatal verifies that neither a failed login nor a
// failing renderer stops the engine
func TestEngine_FailuresAreNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockStatusClient(ctrl)
	mon := mocks.NewMockMonitor(ctrl)
	rend := mocks.NewMockRenderer(ctrl)

	ticks := make(chan struct{}, 8)

	client.EXPECT().Authenticate(gomock.Any(), "bob", "wrong").Return(false)
	mon.EXPECT().Initial().Return(loading)
	mon.EXPECT().Tick(gomock.Any()).Return(idle).MinTimes(2)
	rend.EXPECT().Apply(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, []domain.Intent) error {
		select {
		case ticks <- struct{}{}:
		default:
		}
		return errors.New("disk full")
	}).MinTimes(3)

	cfg := &stubConfig{user: "bob", password: "wrong", interval: 5 * time.Millisecond}
	e := NewEngine(zap.NewNop(), cfg, client, mon, rend)
	if err := e.Start(context.Background()); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	for i := 0; i < 3; i++ {
		select {
		case <-ticks:
		case <-time.After(2 * time.Second):
			t.Fatalf("Timeout: engine stopped rendering after %d batches", i)
		}
	}

	if err := e.Stop(context.Background()); err != nil {
		t.Fatalf("Stop returned error: %v", err)
	}
}

func TestEngine_StopWithoutStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	e := NewEngine(zap.NewNop(), &stubConfig{interval: time.Second},
		mocks.NewMockStatusClient(ctrl), mocks.NewMockMonitor(ctrl), mocks.NewMockRenderer(ctrl))

	if err := e.Stop(context.Background()); err != nil {
		t.Errorf("Stop returned error: %v", err)
	}
}
