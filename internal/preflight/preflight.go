package preflight

import (
	"os"
	"os/exec"
	"strings"

	"github.com/shirou/gopsutil/v3/process"
)

// Dependency is an external tool the app shells out to.
type Dependency struct {
	Name       string
	Binary     string
	InstallCmd map[string]string // GOOS/distro family -> install command
}

// Dependencies returns the tools needed for the given listing tool.
func Dependencies(tool string) []Dependency {
	return []Dependency{
		{
			Name:   "xsetwacom (xf86-input-wacom)",
			Binary: tool,
			InstallCmd: map[string]string{
				"debian": "sudo apt install xserver-xorg-input-wacom",
				"fedora": "sudo dnf install xorg-x11-drv-wacom",
				"arch":   "sudo pacman -S xf86-input-wacom",
			},
		},
	}
}

// Missing returns the dependencies lookPath cannot find.
func Missing(deps []Dependency, lookPath func(string) (string, error)) []Dependency {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	var missing []Dependency
	for _, dep := range deps {
		if _, err := lookPath(dep.Binary); err != nil {
			missing = append(missing, dep)
		}
	}
	return missing
}

// Session describes the graphical session xsetwacom has to talk to.
type Session struct {
	Display        string
	WaylandDisplay string
	XServer        string // name of the running X server process, if any
}

var xServerNames = map[string]bool{
	"Xorg":     true,
	"X":        true,
	"Xwayland": true,
	"Xvfb":     true,
}

// DetectSession inspects the environment and the process table.
func DetectSession() Session {
	return detectSession(os.Getenv, processNames)
}

func detectSession(getenv func(string) string, names func() ([]string, error)) Session {
	s := Session{
		Display:        getenv("DISPLAY"),
		WaylandDisplay: getenv("WAYLAND_DISPLAY"),
	}
	procs, err := names()
	if err != nil {
		return s
	}
	for _, n := range procs {
		if xServerNames[n] {
			s.XServer = n
			break
		}
	}
	return s
}

func processNames() ([]string, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}
	var names []string
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// Warnings explains why xsetwacom is likely to fail in this session.
func (s Session) Warnings() []string {
	var w []string
	if s.Display == "" {
		w = append(w, "DISPLAY is not set; xsetwacom needs an X11 display")
	}
	if s.XServer == "" {
		w = append(w, "no X server process found")
	}
	if s.XServer == "Xwayland" {
		w = append(w, "only Xwayland found; most Wayland compositors do not expose tablets to xsetwacom")
	}
	return w
}

// DistroFamily guesses the package manager family from /etc/os-release.
func DistroFamily() string {
	data, err := os.ReadFile("/etc/os-release")
	if err != nil {
		return ""
	}
	return distroFamily(string(data))
}

func distroFamily(osRelease string) string {
	var ids []string
	for _, line := range strings.Split(osRelease, "\n") {
		k, v, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok || (k != "ID" && k != "ID_LIKE") {
			continue
		}
		ids = append(ids, strings.Fields(strings.Trim(v, `"`))...)
	}
	for _, id := range ids {
		switch id {
		case "debian", "ubuntu":
			return "debian"
		case "fedora", "rhel", "centos":
			return "fedora"
		case "arch", "manjaro":
			return "arch"
		}
	}
	return ""
}
