package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const defaultInterval = time.Second

// Task is one unit of recurring work
type Task func(ctx context.Context)

// Recurring runs a task at a fixed period, strictly serially.
// The next run is armed only after the previous one returns, so a slow run
// delays later runs instead of overlapping or skipping them.
type Recurring struct {
	logger   *zap.Logger
	interval time.Duration
	task     Task

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// Every creates a stopped schedule. A non-positive interval falls back to one second.
func Every(logger *zap.Logger, interval time.Duration, task Task) *Recurring {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Recurring{
		logger:   logger,
		interval: interval,
		task:     task,
	}
}

// Interval returns the effective period
func (r *Recurring) Interval() time.Duration {
	return r.interval
}

// Start launches the loop in a goroutine and returns immediately.
// The first run happens right away. Starting a running schedule is a no-op.
func (r *Recurring) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.done != nil {
		return
	}

	loopCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})

	r.logger.Debug("Schedule started", zap.Duration("interval", r.interval))
	go r.run(loopCtx, r.done)
}

// Stop cancels the timer and waits for an in-flight run to finish.
// The run itself is not interrupted. If ctx expires first, Stop returns its error.
func (r *Recurring) Stop(ctx context.Context) error {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	if done == nil {
		return nil
	}

	cancel()

	select {
	case <-done:
		r.logger.Debug("Schedule stopped")
		return nil
	case <-ctx.Done():
		r.logger.Warn("Timed out waiting for in-flight run", zap.Error(ctx.Err()))
		return ctx.Err()
	}
}

func (r *Recurring) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	// Runs see a context that survives Stop, so in-flight work finishes naturally
	runCtx := context.WithoutCancel(ctx)

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		r.task(runCtx)

		// Stop may have been requested while the task ran
		if ctx.Err() != nil {
			return
		}
		timer.Reset(r.interval)
	}
}
