package xsetwacom

import (
	"reflect"
	"testing"
)

func TestParseDevicesEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\n", " \t \n", "\t \n", "Pen\tid: \n", "Pen\tid \tid  \n"} {
		if got := ParseDevices(in); len(got) != 0 {
			t.Fatalf("ParseDevices(%q) = %v, want empty", in, got)
		}
	}
}

func TestParseDevicesSingleLine(t *testing.T) {
	got := ParseDevices("DeviceName\tid 123 STYLUS\n")
	if len(got) != 1 {
		t.Fatalf("expected 1 device, got %d", len(got))
	}
	if got[0].ID != "123" {
		t.Fatalf("unexpected id: %q", got[0].ID)
	}
	if got[0].Name != "DeviceName" {
		t.Fatalf("unexpected name: %q", got[0].Name)
	}
}

func TestParseDevicesRealOutput(t *testing.T) {
	out := "Wacom Intuos Pro M Pen stylus   \tid: 12\ttype: STYLUS    \n" +
		"Wacom Intuos Pro M Pen eraser   \tid: 13\ttype: ERASER    \r\n" +
		"Wacom Intuos Pro M Pad pad      \tid: 14\ttype: PAD       \n"
	want := []Device{
		{ID: "12", Name: "Wacom Intuos Pro M Pen stylus", Type: "STYLUS"},
		{ID: "13", Name: "Wacom Intuos Pro M Pen eraser", Type: "ERASER"},
		{ID: "14", Name: "Wacom Intuos Pro M Pad pad", Type: "PAD"},
	}
	if got := ParseDevices(out); !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseDevices mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestParseDevicesSkipsMalformedLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"no tab", "Wacom stylus id: 12\n", nil},
		{"one token after tab", "Wacom stylus\tid:12\n", nil},
		{"empty second field", "Wacom stylus\t\n", nil},
		{"mixed", "garbage\nA\tid: 5\nB\tx\nC\tid: 7\n", []string{"5", "7"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IDs(ParseDevices(tt.in))
			if len(got) != len(tt.want) {
				t.Fatalf("got ids %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got ids %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestParseDevicesKeepsDuplicates(t *testing.T) {
	got := IDs(ParseDevices("A\tid: 9\nA\tid: 9\n"))
	if len(got) != 2 || got[0] != "9" || got[1] != "9" {
		t.Fatalf("expected duplicate ids preserved, got %v", got)
	}
}

func TestDeviceString(t *testing.T) {
	d := Device{ID: "12", Name: "Pen stylus", Type: "STYLUS"}
	if got := d.String(); got != "12 Pen stylus [STYLUS]" {
		t.Fatalf("unexpected string: %q", got)
	}
	if got := (Device{ID: "3"}).String(); got != "3" {
		t.Fatalf("unexpected bare string: %q", got)
	}
}
