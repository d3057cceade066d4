package desktop

import (
	"errors"
	"sync"

	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"
)

// DBusClient defines the interface for D-Bus operations.
// This abstraction allows us to mock D-Bus interactions in tests.
//
//go:generate mockgen -destination=mocks/dbus_client_mock.go -package=mocks github.com/genricoloni/artblob/internal/desktop DBusClient
type DBusClient interface {
	// Close closes the D-Bus connection
	Close() error

	// Call invokes a method on a remote object and returns the reply body
	// dest: The bus name (e.g., "org.freedesktop.Notifications")
	// path: The object path (e.g., "/org/freedesktop/Notifications")
	// method: The fully qualified method (e.g., "org.freedesktop.Notifications.Notify")
	Call(dest, path, method string, args []any) ([]any, error)

	// Export publishes the exported methods of v at path under iface
	Export(v any, path, iface string) error

	// RequestName claims a well-known name and reports whether we own it
	RequestName(name string) (bool, error)
}

// StdDBusClient is the real implementation using godbus
type StdDBusClient struct {
	conn *dbus.Conn
}

// NewStdDBusClient opens a private connection to the session bus.
// A private connection can be closed without affecting other users of the bus.
func NewStdDBusClient() (*StdDBusClient, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, err
	}
	return &StdDBusClient{conn: conn}, nil
}

// Close closes the D-Bus connection
func (c *StdDBusClient) Close() error {
	return c.conn.Close()
}

// Call invokes a method on a remote object
func (c *StdDBusClient) Call(dest, path, method string, args []any) ([]any, error) {
	call := c.conn.Object(dest, dbus.ObjectPath(path)).Call(method, 0, args...)
	if call.Err != nil {
		return nil, call.Err
	}
	return call.Body, nil
}

// Export publishes v on the bus
func (c *StdDBusClient) Export(v any, path, iface string) error {
	return c.conn.Export(v, dbus.ObjectPath(path), iface)
}

// RequestName claims a well-known name without queueing
func (c *StdDBusClient) RequestName(name string) (bool, error) {
	reply, err := c.conn.RequestName(name, dbus.NameFlagDoNotQueue)
	if err != nil {
		return false, err
	}
	return reply == dbus.RequestNameReplyPrimaryOwner, nil
}

// Dialer opens a D-Bus connection
type Dialer func() (DBusClient, error)

// Bus shares one lazily dialed session bus connection between components.
// Nothing connects to D-Bus unless a component actually asks for it.
type Bus struct {
	logger *zap.Logger
	dial   Dialer

	mu   sync.Mutex
	conn DBusClient
	err  error
}

// NewBus creates a shared bus backed by the session bus
func NewBus(logger *zap.Logger) *Bus {
	return NewBusWithDialer(logger, func() (DBusClient, error) {
		return NewStdDBusClient()
	})
}

// NewBusWithDialer creates a shared bus using a custom dialer
func NewBusWithDialer(logger *zap.Logger, dial Dialer) *Bus {
	return &Bus{logger: logger, dial: dial}
}

// Conn dials on first use. A failed dial is remembered and returned to later callers.
func (b *Bus) Conn() (DBusClient, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.conn != nil || b.err != nil {
		return b.conn, b.err
	}

	conn, err := b.dial()
	if err != nil {
		b.logger.Error("Failed to connect to session bus", zap.Error(err))
		b.err = err
		return nil, err
	}
	b.conn = conn
	return conn, nil
}

// Close closes the connection if one was opened
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.conn == nil {
		return nil
	}
	err := b.conn.Close()
	b.conn = nil
	b.err = errors.New("bus closed")
	return err
}
