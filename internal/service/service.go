package service

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/kardianos/service"
)

// Name is the unit/service name.
const Name = "tabletswitch"

// RunFunc runs the watcher until ctx is cancelled.
type RunFunc func(ctx context.Context) error

type program struct {
	run RunFunc

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan error
}

func (p *program) Start(s service.Service) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return fmt.Errorf("%s already running", Name)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	p.cancel, p.done = cancel, done
	go func() {
		done <- p.run(ctx)
	}()
	return nil
}

func (p *program) Stop(s service.Service) error {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()
	if cancel == nil {
		return nil
	}
	cancel()
	if err := <-done; err != nil && err != context.Canceled {
		return err
	}
	return nil
}

// Manager installs and controls the background watcher as a per-user
// service (systemd --user, launchd agent).
type Manager struct {
	service service.Service
}

// NewManager creates a manager whose service runs `<exe> service run`,
// which calls Run.
func NewManager(run RunFunc) (*Manager, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("get executable path: %w", err)
	}
	svcConfig := &service.Config{
		Name:        Name,
		DisplayName: "Tablet output switcher",
		Description: "Watches graphics tablet connection state",
		Executable:  execPath,
		Arguments:   []string{"service", "run"},
		Option: service.KeyValue{
			"UserService": true,
			"Restart":     "on-failure",
			"RunAtLoad":   true,
		},
	}
	svc, err := service.New(&program{run: run}, svcConfig)
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return &Manager{service: svc}, nil
}

func (m *Manager) Install() error   { return m.service.Install() }
func (m *Manager) Uninstall() error { return m.service.Uninstall() }
func (m *Manager) Start() error     { return m.service.Start() }
func (m *Manager) Stop() error      { return m.service.Stop() }
func (m *Manager) Restart() error   { return m.service.Restart() }

// Run runs the watcher under the service manager, blocking until it is
// told to stop.
func (m *Manager) Run() error {
	return m.service.Run()
}

// Status returns a human-readable service status.
func (m *Manager) Status() (string, error) {
	status, err := m.service.Status()
	if err != nil {
		if err == service.ErrNotInstalled {
			return "Not installed", nil
		}
		return "Unknown", err
	}
	return statusString(status), nil
}

func statusString(status service.Status) string {
	switch status {
	case service.StatusRunning:
		return "Running"
	case service.StatusStopped:
		return "Stopped"
	case service.StatusUnknown:
		return "Unknown"
	default:
		return fmt.Sprintf("Status(%d)", int(status))
	}
}

// Platform returns the detected service system, e.g. "linux-systemd".
func Platform() string {
	return service.Platform()
}
