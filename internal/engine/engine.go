package engine

import (
	"context"

	"github.com/genricoloni/artblob/internal/domain"
	"github.com/genricoloni/artblob/internal/scheduler"
	"go.uber.org/zap"
)

// Engine orchestrates the overlay pipeline.
// It authenticates once, shows the loading state, then polls the server on a
// fixed schedule and hands each tick's intents to the renderer.
type Engine struct {
	logger   *zap.Logger
	cfg      domain.Config
	client   domain.StatusClient
	monitor  domain.Monitor
	renderer domain.Renderer
	schedule *scheduler.Recurring
}

// NewEngine creates a new orchestration engine
func NewEngine(
	logger *zap.Logger,
	cfg domain.Config,
	client domain.StatusClient,
	mon domain.Monitor,
	rend domain.Renderer,
) *Engine {
	e := &Engine{
		logger:   logger,
		cfg:      cfg,
		client:   client,
		monitor:  mon,
		renderer: rend,
	}
	e.schedule = scheduler.Every(logger, cfg.GetInterval(), e.tick)
	return e
}

// Start launches the polling loop in a goroutine.
// It returns immediately (non-blocking).
func (e *Engine) Start(ctx context.Context) error {
	e.logger.Info("Engine starting...",
		zap.String("url", e.cfg.GetURL()),
		zap.Duration("interval", e.schedule.Interval()))

	// Authentication is best effort: control commands need it, polling doesn't
	if user, password := e.cfg.GetCredentials(); user != "" && !e.client.Authenticate(ctx, user, password) {
		e.logger.Warn("Continuing without a session")
	}

	e.render(ctx, e.monitor.Initial())

	// The loop must outlive the start context, which fx cancels once startup ends
	e.schedule.Start(context.WithoutCancel(ctx))
	return nil
}

// tick runs one poll and renders its intents
func (e *Engine) tick(ctx context.Context) {
	e.render(ctx, e.monitor.Tick(ctx))
}

func (e *Engine) render(ctx context.Context, intents []domain.Intent) {
	if len(intents) == 0 {
		return
	}
	if err := e.renderer.Apply(ctx, intents); err != nil {
		e.logger.Error("Failed to render intents",
			zap.Int("count", len(intents)),
			zap.Error(err))
	}
}

// Stop halts polling and waits for an in-flight tick to finish
func (e *Engine) Stop(ctx context.Context) error {
	e.logger.Info("Engine stopping...")
	if err := e.schedule.Stop(ctx); err != nil {
		e.logger.Error("Engine did not stop cleanly", zap.Error(err))
		return err
	}
	e.logger.Info("Engine stopped")
	return nil
}
