package supervisor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lambda-feedback/tool-launcher/internal/console"
)

var (
	ErrAlreadyStarted      = errors.New("supervisor already started")
	ErrShutdownRequested   = errors.New("shutdown requested")
	ErrInvalidToolRegistry = errors.New("invalid tool registry")
)

// SpawnError is returned by Start if a tool could not be launched.
type SpawnError struct {
	Tool string
	Argv []string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %s (%s): %v", e.Tool, strings.Join(e.Argv, " "), e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// ReadError describes a failure to read the output of a running tool.
type ReadError struct {
	Tool   string
	Stream console.Stream
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s of %s: %v", e.Stream, e.Tool, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
