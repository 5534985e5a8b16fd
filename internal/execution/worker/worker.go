package worker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"syscall"

	"go.uber.org/zap"
)

type Worker interface {
	Start(context.Context) error
	Stop(StopConfig) error
	Wait(context.Context) (ExitEvent, error)
	Done() <-chan struct{}
	State() State
	Pid() int
	Stdout() io.ReadCloser
	Stderr() io.ReadCloser
}

type ProcessWorker struct {
	config StartConfig

	processLock sync.Mutex
	process     *proc

	stateLock sync.Mutex
	state     State

	exitEvent ExitEvent
	done      chan struct{}

	log *zap.Logger
}

func NewProcessWorker(config StartConfig, log *zap.Logger) *ProcessWorker {
	return &ProcessWorker{
		config: config,
		done:   make(chan struct{}),
		log:    log.Named("worker"),
	}
}

var _ Worker = (*ProcessWorker)(nil)

// Start starts the worker process. The process's output streams are
// available through Stdout and Stderr once Start returned successfully.
func (w *ProcessWorker) Start(ctx context.Context) error {
	w.log.With(
		zap.String("command", w.config.Cmd),
		zap.Strings("args", w.config.Args),
		zap.String("cwd", w.config.Cwd),
	).Debug("starting worker process")

	// synchronize access to the process
	w.processLock.Lock()
	defer w.processLock.Unlock()

	// return if the worker is already started
	if w.process != nil {
		return ErrWorkerAlreadyStarted
	}

	// exit early if the context is already cancelled
	if ctx.Err() != nil {
		return fmt.Errorf("failed to start process: %w", ctx.Err())
	}

	process, err := startProc(w.config, w.log)
	if err != nil {
		return fmt.Errorf("failed to start process: %w", err)
	}

	w.process = process

	// reap the process and publish its exit status
	go func() {
		err := process.Wait()

		w.exitEvent = getExitEvent(err)
		w.advance(Exited)

		w.log.Debug("process exited",
			zap.Int("pid", process.Pid()),
			zap.Error(err),
		)

		close(w.done)
	}()

	return nil
}

// Stop asks the process to terminate, and kills it if it did not exit
// within the configured timeout. Stop blocks until the process has been
// reaped. Only the first call signals the process; concurrent and later
// calls wait for the same outcome.
func (w *ProcessWorker) Stop(config StopConfig) error {
	process := w.acquireProcess()
	if process == nil {
		return ErrWorkerNotStarted
	}

	if !w.transition(Running, Terminating) {
		<-w.done
		return nil
	}

	log := w.log.With(
		zap.Int("pid", process.Pid()),
		zap.Duration("timeout", config.Timeout),
	)

	if config.Timeout > 0 {
		err := process.Terminate(config.Timeout)
		if err == nil {
			<-w.done
			return nil
		}

		if !errors.Is(err, ErrKillTimeout) {
			return err
		}

		log.Warn("process did not exit after termination signal, killing")
	}

	// SIGKILL cannot be ignored, wait for the reap
	if err := process.Kill(0); err != nil {
		return err
	}

	<-w.done

	return nil
}

// Wait waits for the worker process to exit. The method blocks until the process
// exits. The method returns an ExitEvent object that contains the exit status of
// the process. If the process is already terminated, the method returns immediately.
func (w *ProcessWorker) Wait(ctx context.Context) (ExitEvent, error) {
	if w.acquireProcess() == nil {
		return ExitEvent{}, ErrWorkerNotStarted
	}

	select {
	case <-ctx.Done():
		return ExitEvent{}, ctx.Err()
	case <-w.done:
		return w.exitEvent, nil
	}
}

// Done returns a channel that is closed once the process has been reaped.
func (w *ProcessWorker) Done() <-chan struct{} {
	return w.done
}

func (w *ProcessWorker) State() State {
	w.stateLock.Lock()
	defer w.stateLock.Unlock()

	return w.state
}

func (w *ProcessWorker) Pid() int {
	if process := w.acquireProcess(); process != nil {
		return process.Pid()
	}

	return 0
}

func (w *ProcessWorker) Stdout() io.ReadCloser {
	if process := w.acquireProcess(); process != nil {
		return process.StdoutPipe()
	}

	return nil
}

func (w *ProcessWorker) Stderr() io.ReadCloser {
	if process := w.acquireProcess(); process != nil {
		return process.StderrPipe()
	}

	return nil
}

// acquireProcess returns the worker process. The method is thread-safe.
func (w *ProcessWorker) acquireProcess() *proc {
	w.processLock.Lock()
	defer w.processLock.Unlock()

	return w.process
}

// transition moves the worker from one state to another, reporting
// whether the worker was in the expected state.
func (w *ProcessWorker) transition(from, to State) bool {
	w.stateLock.Lock()
	defer w.stateLock.Unlock()

	if w.state != from {
		return false
	}

	w.state = to

	return true
}

// advance moves the worker to the given state, unless it is already past it.
func (w *ProcessWorker) advance(to State) {
	w.stateLock.Lock()
	defer w.stateLock.Unlock()

	if to > w.state {
		w.state = to
	}
}

// MARK: - Helpers

func getExitEvent(err error) ExitEvent {
	var cell int
	var exitStatus *int
	var signo *int

	if err == nil {
		// the process exited successfully, set the exit code to 0
		exitStatus = &cell
	} else if exitError, ok := err.(*exec.ExitError); ok {
		// the process exited with an error
		if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
			if code := status.ExitStatus(); code >= 0 {
				// the process exited with an exit code
				cell = code
				exitStatus = &cell
			} else {
				// the process was terminated by a signal
				cell = int(status.Signal())
				signo = &cell
			}
		}
	}

	if signo == nil && exitStatus == nil {
		// could not determine the exit status or signal,
		// set exit status to 1
		cell = 1
		exitStatus = &cell
	}

	return ExitEvent{
		Code:   exitStatus,
		Signal: signo,
	}
}
