package worker

import (
	"errors"
	"time"
)

var (
	ErrKillTimeout          = errors.New("kill timeout")
	ErrInvalidCommand       = errors.New("invalid command")
	ErrWorkerNotStarted     = errors.New("worker not started")
	ErrWorkerAlreadyStarted = errors.New("worker already started")
)

type StartConfig struct {
	// Cmd is the path or name of the binary to execute
	Cmd string `conf:"cmd"`

	// Cwd is the working directory in which
	// the binary should be executed
	Cwd string `conf:"cwd"`

	// Args is the list of arguments to pass to the command
	Args []string `conf:"args"`

	// Env is a map of environment variables to set when running
	// the command, on top of the inherited environment
	Env map[string]string `conf:"env"`
}

type StopConfig struct {
	// Timeout is the duration to wait for the worker to exit after
	// the termination signal, before it is killed
	Timeout time.Duration `conf:"timeout"`
}

// State describes where a worker is in its lifecycle. A worker only
// ever moves forward: Running, Terminating, Exited.
type State int32

const (
	Running State = iota
	Terminating
	Exited
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Terminating:
		return "terminating"
	case Exited:
		return "exited"
	default:
		return "unknown"
	}
}

type ExitEvent struct {
	// Code is the exit code of the process
	Code *int

	// Signal is the signal that caused the process to exit
	Signal *int
}
