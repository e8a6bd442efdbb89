package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/FluidXR/tabletswitch/internal/remap"
	"github.com/FluidXR/tabletswitch/internal/xsetwacom"
)

// Switcher is the action side of the controller.
type Switcher interface {
	IsActionAllowed() bool
	Switch(ctx context.Context) (remap.Result, error)
}

// DeviceLister lists attached devices for display.
type DeviceLister interface {
	Devices(ctx context.Context) ([]xsetwacom.Device, error)
}

type connectionMsg struct{ connected bool }
type actionResultMsg struct{ err error }
type devicesLoadedMsg struct {
	devices []xsetwacom.Device
	err     error
}
type copiedMsg struct {
	count int
	err   error
}

type keyMap struct {
	Switch  key.Binding
	Refresh key.Binding
	Copy    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Switch:  key.NewBinding(key.WithKeys("s", "enter", " "), key.WithHelp("s/enter", "switch monitor")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy ids")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Switch, k.Copy, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Switch, k.Refresh}, {k.Copy, k.Help, k.Quit}}
}

// Model is the app state.
type Model struct {
	switcher Switcher
	lister   DeviceLister
	copyText func(string) error

	connected bool
	switching bool
	devices   []xsetwacom.Device
	status    string
	statusErr bool

	spinner spinner.Model
	help    help.Model
	keys    keyMap
	width   int
}

// NewModel builds the model with the initial connection state.
func NewModel(s Switcher, l DeviceLister, connected bool) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(accentColor)
	return Model{
		switcher:  s,
		lister:    l,
		copyText:  clipboard.WriteAll,
		connected: connected,
		status:    "Press s to switch the tablet to the next monitor",
		spinner:   sp,
		help:      help.New(),
		keys:      defaultKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadDevices(), tea.SetWindowTitle("tabletswitch"))
}

func (m Model) loadDevices() tea.Cmd {
	lister := m.lister
	return func() tea.Msg {
		devices, err := lister.Devices(context.Background())
		return devicesLoadedMsg{devices: devices, err: err}
	}
}

func (m Model) runSwitch() tea.Cmd {
	s := m.switcher
	return func() tea.Msg {
		// The result comes back through the presenter.
		s.Switch(context.Background())
		return nil
	}
}

func (m Model) copyIDs() tea.Cmd {
	ids := xsetwacom.IDs(m.devices)
	copyText := m.copyText
	return func() tea.Msg {
		return copiedMsg{count: len(ids), err: copyText(strings.Join(ids, "\n"))}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case connectionMsg:
		m.connected = msg.connected
		if !msg.connected {
			m.devices = nil
			return m, nil
		}
		return m, m.loadDevices()

	case devicesLoadedMsg:
		if msg.err != nil {
			m.devices = nil
			return m, nil
		}
		m.devices = msg.devices
		return m, nil

	case actionResultMsg:
		m.switching = false
		if msg.err != nil {
			m.setError(fmt.Sprintf("Error: %v", msg.err))
			return m, nil
		}
		m.setStatus("Switched tablet monitor mapping")
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("Copy failed: %v", msg.err))
		} else {
			m.setStatus(fmt.Sprintf("Copied %d device id(s) to clipboard", msg.count))
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Switch):
		if m.switching {
			return m, nil
		}
		if !m.switcher.IsActionAllowed() {
			m.setError("No tablet detected. Please connect your device.")
			return m, nil
		}
		m.switching = true
		m.setStatus("Switching...")
		return m, m.runSwitch()

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadDevices()

	case key.Matches(msg, m.keys.Copy):
		if len(m.devices) == 0 {
			m.setError("No devices to copy")
			return m, nil
		}
		return m, m.copyIDs()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	return m, nil
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Tablet Controller"))
	b.WriteString("\n")

	if m.connected {
		b.WriteString(connectedStyle.Render("✓ Tablet connected"))
	} else {
		b.WriteString(disconnectedStyle.Render("✗ No tablet detected"))
	}
	b.WriteString("\n\n")

	if len(m.devices) > 0 {
		b.WriteString(mutedStyle.Render("Devices"))
		b.WriteString("\n")
		for _, d := range m.devices {
			b.WriteString(deviceStyle.Render(d.String()))
			b.WriteString("\n")
		}
	}

	if m.connected {
		b.WriteString(buttonStyle.Render("Switch monitor"))
	} else {
		b.WriteString(buttonDisabledStyle.Render("Switch monitor"))
	}
	b.WriteString("\n\n")

	switch {
	case m.switching:
		b.WriteString(m.spinner.View() + " " + m.status)
	case m.statusErr:
		b.WriteString(errorStyle.Render(m.status))
	case strings.HasPrefix(m.status, "Switched"), strings.HasPrefix(m.status, "Copied"):
		b.WriteString(successStyle.Render(m.status))
	default:
		b.WriteString(mutedStyle.Render(m.status))
	}

	return boxStyle.Render(b.String()) + "\n" + m.help.View(m.keys) + "\n"
}
