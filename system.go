package hwid

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"time"
)

// defaultTimeout bounds a single probe command. The core contract has no
// timeout; this is the deliberate per-probe extension that keeps a hung
// external tool from blocking a collection forever.
const defaultTimeout = 5 * time.Second

// System is the port through which all probes touch the operating system.
// Implementations must be synchronous; both primitives are fallible.
// Inject a fake via [Collector.WithSystem] for deterministic tests.
type System interface {
	// RunCommand executes a program with arguments and returns its
	// trimmed standard output.
	RunCommand(ctx context.Context, name string, args ...string) (string, error)

	// ReadFile reads an entire file and returns its contents.
	ReadFile(path string) (string, error)
}

// NewSystem returns the default [System] implementation, which runs real
// commands with the given per-command timeout and reads real files.
// A non-positive timeout falls back to a 5 second default.
func NewSystem(timeout time.Duration) System {
	return &defaultSystem{Timeout: timeout}
}

// defaultSystem implements System using real command execution and file reads.
type defaultSystem struct {
	Timeout time.Duration
}

// RunCommand runs a system command with a timeout and returns the output.
func (s *defaultSystem) RunCommand(ctx context.Context, name string, args ...string) (string, error) {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(timeoutCtx, name, args...)
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(output)), nil
}

// ReadFile reads the file at path.
func (s *defaultSystem) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// runCommand executes a command through the port and wraps failures in a
// *CommandError carrying the command name.
func runCommand(ctx context.Context, sys System, name string, args ...string) (string, error) {
	output, err := sys.RunCommand(ctx, name, args...)
	if err != nil {
		return "", &CommandError{Command: name, Err: err}
	}

	return output, nil
}

// readFile reads a file through the port and wraps failures in a
// *FileError carrying the path.
func readFile(sys System, path string) (string, error) {
	data, err := sys.ReadFile(path)
	if err != nil {
		return "", &FileError{Path: path, Err: err}
	}

	return data, nil
}
