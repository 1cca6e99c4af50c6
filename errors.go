package hwid

import (
	"errors"
	"fmt"
)

// ErrMissingCriticalData is returned by [Derive] when the snapshot lacks
// the motherboard serial and/or motherboard UUID. These two fields are the
// irreducible minimum of machine identity; deriving a fingerprint without
// them would not be reproducible across runs.
var ErrMissingCriticalData = errors.New("critical hardware information missing")

// CommandError records a failed system command execution.
// Use [errors.As] to extract the command name from wrapped errors.
type CommandError struct {
	Command string // command name, e.g. "wmic", "lsblk", "system_profiler"
	Err     error  // underlying error from exec
}

// Error returns a human-readable description of the command failure.
func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q failed: %v", e.Command, e.Err)
}

// Unwrap returns the underlying error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// FileError records a system file that could not be opened or read.
// Use [errors.As] to extract the path from wrapped errors.
type FileError struct {
	Path string // file path, e.g. "/sys/class/dmi/id/board_serial"
	Err  error  // underlying error from the filesystem
}

// Error returns a human-readable description of the read failure.
func (e *FileError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *FileError) Unwrap() error {
	return e.Err
}

// ParseError records an attribute extraction ambiguity. The default
// extraction rules map a miss to an empty string rather than an error, so
// the collector never returns it today; the type is part of the taxonomy
// for stricter parsers.
type ParseError struct {
	Source string // data source, e.g. "wmic output", "/proc/cpuinfo"
	Err    error  // underlying parse error
}

// Error returns a human-readable description of the parse failure.
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// UnsupportedSystemError reports that no probing strategy exists for the
// operating system the [Collector] was built for.
type UnsupportedSystemError struct {
	OS string // GOOS value, e.g. "plan9"
}

// Error returns a human-readable description of the unsupported system.
func (e *UnsupportedSystemError) Error() string {
	return fmt.Sprintf("unsupported operating system %q", e.OS)
}
