package renderer

import (
	"context"

	"github.com/genricoloni/artblob/internal/domain"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Multi fans a batch out to several renderers.
// Every renderer sees every batch even when an earlier one fails.
type Multi struct {
	renderers []domain.Renderer
}

// NewMulti combines renderers, skipping nil entries
func NewMulti(renderers ...domain.Renderer) *Multi {
	m := &Multi{}
	for _, r := range renderers {
		if r != nil {
			m.renderers = append(m.renderers, r)
		}
	}
	return m
}

// Apply forwards the batch and combines the errors
func (m *Multi) Apply(ctx context.Context, intents []domain.Intent) error {
	if len(intents) == 0 {
		return nil
	}
	var err error
	for _, r := range m.renderers {
		err = multierr.Append(err, r.Apply(ctx, intents))
	}
	return err
}

// Len returns the number of combined renderers
func (m *Multi) Len() int {
	return len(m.renderers)
}

// LogRenderer records every intent in the log
type LogRenderer struct {
	logger *zap.Logger
}

// NewLogRenderer creates a renderer that only logs
func NewLogRenderer(logger *zap.Logger) *LogRenderer {
	return &LogRenderer{logger: logger}
}

func (r *LogRenderer) Apply(ctx context.Context, intents []domain.Intent) error {
	for _, in := range intents {
		fields := []zap.Field{zap.String("kind", string(in.Kind))}
		switch in.Kind {
		case domain.IntentShowText, domain.IntentSetWindowTitle:
			fields = append(fields, zap.String("text", in.Text))
		case domain.IntentShowArtwork, domain.IntentSetWindowIcon:
			fields = append(fields, zap.Int("bytes", len(in.Data)))
		}
		if in.Align != "" {
			fields = append(fields, zap.String("align", string(in.Align)))
		}
		r.logger.Debug("Render", fields...)
	}
	return nil
}
