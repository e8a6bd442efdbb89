package xsetwacom

import (
	"bufio"
	"strings"
)

// Device is one tablet component reported by `xsetwacom list`
// (stylus, eraser, pad, touch...).
type Device struct {
	ID   string
	Name string
	Type string // "STYLUS", "ERASER", "PAD", "TOUCH", or "" when not reported
}

// String returns a display string for the device.
func (d Device) String() string {
	s := d.ID
	if d.Name != "" {
		s += " " + d.Name
	}
	if d.Type != "" {
		s += " [" + d.Type + "]"
	}
	return s
}

// IDs returns the identifiers of devices in order.
func IDs(devices []Device) []string {
	ids := make([]string, 0, len(devices))
	for _, d := range devices {
		ids = append(ids, d.ID)
	}
	return ids
}

// ParseDevices parses `xsetwacom list` output.
//
// Each line looks like
//
//	Wacom Intuos Pro M Pen stylus   	id: 12	type: STYLUS
//
// The ID is the second space-separated token of the second tab-separated
// field. Lines that do not have that shape, or whose ID token is empty,
// are skipped.
func ParseDevices(output string) []Device {
	var devices []Device
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			continue
		}
		tokens := strings.Split(fields[1], " ")
		if len(tokens) < 2 || tokens[1] == "" {
			continue
		}
		d := Device{
			ID:   tokens[1],
			Name: strings.TrimSpace(fields[0]),
		}
		for _, f := range fields[2:] {
			k, v, ok := strings.Cut(strings.TrimSpace(f), ":")
			if ok && k == "type" {
				d.Type = strings.TrimSpace(v)
			}
		}
		devices = append(devices, d)
	}
	return devices
}
