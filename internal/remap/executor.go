package remap

import (
	"context"
	"errors"
	"fmt"

	"github.com/FluidXR/tabletswitch/internal/xsetwacom"
)

// NextOutput asks the driver to move the tablet area to the next display.
const NextOutput = "next"

// ErrNoDevices is returned when there is nothing to remap.
var ErrNoDevices = errors.New("no tablet devices found")

// DeviceError reports the device whose mapping command failed.
type DeviceError struct {
	ID  string
	Err error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("set mapping for device %s: %v", e.ID, e.Err)
}

func (e *DeviceError) Unwrap() error {
	return e.Err
}

// Mapper issues the mapping command for a single device.
type Mapper interface {
	MapToOutput(ctx context.Context, id, output string) error
}

// Executor remaps every device of a tablet to a display output.
type Executor struct {
	Mapper Mapper
	Output string
}

// Result summarizes a remap operation.
type Result struct {
	Mapped []string
}

// RemapAll maps each device in order and stops at the first failure.
// Devices already remapped keep their new mapping.
func (e *Executor) RemapAll(ctx context.Context, devices []xsetwacom.Device) (Result, error) {
	var result Result
	if len(devices) == 0 {
		return result, ErrNoDevices
	}
	output := e.Output
	if output == "" {
		output = NextOutput
	}
	for _, d := range devices {
		if err := e.Mapper.MapToOutput(ctx, d.ID, output); err != nil {
			return result, &DeviceError{ID: d.ID, Err: err}
		}
		result.Mapped = append(result.Mapped, d.ID)
	}
	return result, nil
}
