package renderer

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/genricoloni/artblob/internal/desktop"
	"github.com/genricoloni/artblob/internal/domain"
	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"
)

const (
	notifyDest   = "org.freedesktop.Notifications"
	notifyPath   = "/org/freedesktop/Notifications"
	notifyMethod = "org.freedesktop.Notifications.Notify"

	appName       = "artblob"
	notifyTimeout = int32(5000) // ms
)

// NotifyRenderer posts a desktop notification whenever a new track is shown.
// Each notification replaces the previous one.
type NotifyRenderer struct {
	logger *zap.Logger
	bus    *desktop.Bus
	lastID uint32
}

// NewNotifyRenderer creates a notification renderer on the shared bus
func NewNotifyRenderer(logger *zap.Logger, bus *desktop.Bus) *NotifyRenderer {
	return &NotifyRenderer{logger: logger, bus: bus}
}

// Apply sends one notification per track intent in the batch
func (r *NotifyRenderer) Apply(ctx context.Context, intents []domain.Intent) error {
	for _, in := range intents {
		if in.Kind != domain.IntentShowText || in.Track == nil {
			continue
		}
		if err := r.notify(*in.Track); err != nil {
			return err
		}
	}
	return nil
}

func (r *NotifyRenderer) notify(track domain.TrackInfo) error {
	conn, err := r.bus.Conn()
	if err != nil {
		return fmt.Errorf("session bus connection failed: %w", err)
	}

	// Notification bodies accept a small markup subset, summaries are plain text
	var body []string
	for _, s := range []string{track.Artist, track.Album} {
		if s != "" {
			body = append(body, html.EscapeString(s))
		}
	}

	args := []any{
		appName,
		r.lastID,
		"",
		track.Title,
		strings.Join(body, "\n"),
		[]string{},
		map[string]dbus.Variant{},
		notifyTimeout,
	}

	reply, err := conn.Call(notifyDest, notifyPath, notifyMethod, args)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	if len(reply) > 0 {
		if id, ok := reply[0].(uint32); ok {
			r.lastID = id
		}
	}

	r.logger.Debug("Notification sent",
		zap.String("title", track.Title),
		zap.Uint32("id", r.lastID))
	return nil
}
