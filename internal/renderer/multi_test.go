package renderer

import (
	"context"
	"errors"
	"testing"

	"github.com/genricoloni/artblob/internal/domain"
	"github.com/genricoloni/artblob/internal/domain/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMulti_Apply(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mocks.NewMockRenderer(ctrl)
	second := mocks.NewMockRenderer(ctrl)
	third := mocks.NewMockRenderer(ctrl)

	batch := []domain.Intent{domain.ShowText("Loading...", "top")}

	errA := errors.New("disk full")
	errB := errors.New("no bus")
	first.EXPECT().Apply(gomock.Any(), batch).Return(errA)
	second.EXPECT().Apply(gomock.Any(), batch).Return(nil)
	third.EXPECT().Apply(gomock.Any(), batch).Return(errB)

	m := NewMulti(first, nil, second, third)
	if m.Len() != 3 {
		t.Fatalf("expected nil renderer to be skipped, got %d renderers", m.Len())
	}

	err := m.Apply(context.Background(), batch)
	errs := multierr.Errors(err)
	if len(errs) != 2 {
		t.Fatalf("expected 2 combined errors, got %v", err)
	}
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("combined error lost a cause: %v", err)
	}
}

func TestMulti_EmptyBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockRenderer(ctrl) // no calls expected

	if err := NewMulti(r).Apply(context.Background(), nil); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLogRenderer(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := NewLogRenderer(zap.New(core))

	batch := []domain.Intent{
		domain.ShowArtwork(pngBytes),
		domain.ShowText("Loading...", "top"),
	}
	if err := r.Apply(context.Background(), batch); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["bytes"]; got != int64(len(pngBytes)) {
		t.Errorf("expected bytes field %d, got %v", len(pngBytes), got)
	}
	if got := entries[1].ContextMap()["text"]; got != "Loading..." {
		t.Errorf("expected text field, got %v", got)
	}
}
