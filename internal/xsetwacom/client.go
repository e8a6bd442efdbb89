package xsetwacom

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultTool is the tablet configuration CLI shipped with xf86-input-wacom.
const DefaultTool = "xsetwacom"

// ErrLaunchFailed means the tool could not be started at all
// (not installed, not executable).
var ErrLaunchFailed = errors.New("launch failed")

// ExitError is returned when the tool ran but exited with a failure status.
type ExitError struct {
	Args   []string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s: exit status %d", strings.Join(e.Args, " "), e.Code)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// Runner starts child processes. It exists so tests can replace exec.
type Runner interface {
	// Output runs the command and captures stdout and stderr.
	Output(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
	// Run runs the command with stdout and stderr discarded.
	Run(ctx context.Context, name string, args ...string) error
}

type execRunner struct{}

func (execRunner) Output(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

func (execRunner) Run(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// ExecRunner returns the Runner backed by os/exec.
func ExecRunner() Runner {
	return execRunner{}
}

// Client wraps xsetwacom command-line calls.
type Client struct {
	Tool   string
	Runner Runner
}

// NewClient creates a new client for the given tool; an empty tool means
// DefaultTool.
func NewClient(tool string) *Client {
	if tool == "" {
		tool = DefaultTool
	}
	return &Client{Tool: tool, Runner: ExecRunner()}
}

// List runs `<tool> list` and returns its raw stdout, which may be empty.
func (c *Client) List(ctx context.Context) (string, error) {
	stdout, stderr, err := c.Runner.Output(ctx, c.Tool, "list")
	if err != nil {
		return "", classify(append([]string{c.Tool}, "list"), err, stderr)
	}
	return string(stdout), nil
}

// Devices returns all tablet devices currently attached.
func (c *Client) Devices(ctx context.Context) ([]Device, error) {
	out, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	return ParseDevices(out), nil
}

// MapToOutput runs `<tool> set <id> maptooutput <output>`.
func (c *Client) MapToOutput(ctx context.Context, id, output string) error {
	args := []string{"set", id, "maptooutput", output}
	if err := c.Runner.Run(ctx, c.Tool, args...); err != nil {
		return classify(append([]string{c.Tool}, args...), err, nil)
	}
	return nil
}

// exitCoder is satisfied by *exec.ExitError.
type exitCoder interface {
	ExitCode() int
}

// classify turns an exec error into an *ExitError or an ErrLaunchFailed.
func classify(argv []string, err error, stderr []byte) error {
	var exitErr exitCoder
	if errors.As(err, &exitErr) {
		return &ExitError{
			Args:   argv,
			Code:   exitErr.ExitCode(),
			Stderr: strings.TrimSpace(string(stderr)),
		}
	}
	return fmt.Errorf("%s: %w: %w", strings.Join(argv, " "), ErrLaunchFailed, err)
}
