package desktop

import (
	"context"
	"fmt"

	"github.com/genricoloni/artblob/internal/domain"
	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"
)

const (
	ControlBusName   = "org.acoustics.ArtBlob"
	ControlPath      = "/org/acoustics/ArtBlob"
	ControlInterface = "org.acoustics.ArtBlob.Control"
)

// ControlService exposes play/stop/skip on the session bus.
// Calls go straight to the status client and never touch monitor state.
type ControlService struct {
	logger *zap.Logger
	client domain.StatusClient
	bus    *Bus
}

// NewControlService creates a control service sharing the given bus
func NewControlService(logger *zap.Logger, client domain.StatusClient, bus *Bus) *ControlService {
	return &ControlService{
		logger: logger,
		client: client,
		bus:    bus,
	}
}

// Start claims the bus name and exports the control object
func (s *ControlService) Start(ctx context.Context) error {
	conn, err := s.bus.Conn()
	if err != nil {
		return fmt.Errorf("session bus connection failed: %w", err)
	}

	owned, err := conn.RequestName(ControlBusName)
	if err != nil {
		return fmt.Errorf("failed to request bus name: %w", err)
	}
	if !owned {
		return fmt.Errorf("bus name %s is already taken", ControlBusName)
	}

	if err := conn.Export(&controlObject{service: s}, ControlPath, ControlInterface); err != nil {
		return fmt.Errorf("failed to export control object: %w", err)
	}

	s.logger.Info("Control service exported",
		zap.String("name", ControlBusName),
		zap.String("path", ControlPath),
		zap.Bool("authenticated", s.client.IsAuthenticated()))
	return nil
}

// Send forwards an action to the server; the outcome is not reported
func (s *ControlService) Send(action domain.ControlAction) {
	s.logger.Debug("Control action received", zap.String("action", string(action)))
	s.client.SendControl(context.Background(), action)
}

// controlObject is the value exported on the bus. It is kept apart from
// ControlService so only the control methods become D-Bus methods.
type controlObject struct {
	service *ControlService
}

func (o *controlObject) Play() *dbus.Error {
	o.service.Send(domain.ActionPlay)
	return nil
}

func (o *controlObject) Stop() *dbus.Error {
	o.service.Send(domain.ActionStop)
	return nil
}

func (o *controlObject) Skip() *dbus.Error {
	o.service.Send(domain.ActionSkip)
	return nil
}
