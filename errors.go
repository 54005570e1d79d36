package pad

import (
	"errors"
	"fmt"
)

// Process exit statuses reported by ExitCode.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 2
	ExitResource = 0x40
)

// ErrHelp is returned by Resolve when the help flag was given.
var ErrHelp = errors.New("help requested")

// UsageError reports malformed or conflicting command-line arguments.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

func usagef(format string, args ...interface{}) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// ResourceError reports that the content buffer could not grow to Size bytes.
type ResourceError struct {
	Size int
	Err  error
}

func (e *ResourceError) Error() string {
	if e.Size < 0 {
		return fmt.Sprintf("cannot grow input buffer: %v", e.Err)
	}
	return fmt.Sprintf("cannot grow input buffer to %d bytes: %v", e.Size, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by this package to a process exit status.
func ExitCode(err error) int {
	if err == nil || errors.Is(err, ErrHelp) {
		return ExitOK
	}
	var usage *UsageError
	if errors.As(err, &usage) {
		return ExitUsage
	}
	var resource *ResourceError
	if errors.As(err, &resource) {
		return ExitResource
	}
	return ExitFailure
}
