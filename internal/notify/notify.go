package notify

import (
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"
)

const (
	busName    = "org.freedesktop.Notifications"
	objectPath = "/org/freedesktop/Notifications"
	method     = busName + ".Notify"

	appName = "tabletswitch"
	// Icon is the freedesktop icon name for graphics tablets.
	Icon = "input-tablet"
)

// Caller invokes a D-Bus method. *dbus.Object satisfies it.
type Caller interface {
	Call(method string, flags dbus.Flags, args ...interface{}) *dbus.Call
}

// Notifier sends desktop notifications, replacing its previous bubble
// rather than stacking new ones.
type Notifier struct {
	obj     Caller
	timeout int32

	mu     sync.Mutex
	lastID uint32
}

// New connects to the session bus.
func New() (*Notifier, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("connect session bus: %w", err)
	}
	return NewWithCaller(conn.Object(busName, dbus.ObjectPath(objectPath))), nil
}

// NewWithCaller builds a notifier on top of an existing object.
func NewWithCaller(obj Caller) *Notifier {
	return &Notifier{obj: obj, timeout: 4000}
}

// Send shows a notification with the tablet icon.
func (n *Notifier) Send(summary, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	call := n.obj.Call(method, 0,
		appName, n.lastID, Icon, summary, body,
		[]string{}, map[string]dbus.Variant{}, n.timeout)
	if call.Err != nil {
		return fmt.Errorf("notify: %w", call.Err)
	}
	var id uint32
	if err := call.Store(&id); err != nil {
		return fmt.Errorf("notify reply: %w", err)
	}
	n.lastID = id
	return nil
}
