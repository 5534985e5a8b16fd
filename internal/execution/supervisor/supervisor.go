package supervisor

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lambda-feedback/tool-launcher/internal/console"
	"github.com/lambda-feedback/tool-launcher/internal/execution/worker"
	"github.com/lambda-feedback/tool-launcher/internal/registry"
	"go.uber.org/zap"
)

type WorkerFactoryFn func(worker.StartConfig, *zap.Logger) worker.Worker

type Params struct {
	// Config is the config used to set up the supervisor.
	Config Config

	// Registry lists the tools to launch, in order.
	Registry registry.Registry

	// Console receives the output of all tools. Defaults
	// to a console writing to os.Stdout and os.Stderr.
	Console *console.Console

	// WorkerFactory is a factory function to create a new worker. This
	// is called once for every tool in the registry.
	WorkerFactory WorkerFactoryFn

	// Log is the logger to use for the supervisor
	Log *zap.Logger
}

// Supervisor launches the tools of a registry, relays their output to the
// console, and stops all of them once one exits or a shutdown is requested.
type Supervisor struct {
	config   Config
	registry registry.Registry
	console  *console.Console

	createWorker WorkerFactoryFn

	handles     []*Handle
	handlesLock sync.Mutex

	started atomic.Bool

	shutdownFlag      atomic.Bool
	shutdownRequested chan struct{}
	requestOnce       sync.Once
	shutdownOnce      sync.Once

	log *zap.Logger
}

func New(params Params) (*Supervisor, error) {
	config := params.Config.withDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if params.WorkerFactory == nil {
		params.WorkerFactory = defaultWorkerFactory
	}

	if params.Console == nil {
		params.Console = console.New(os.Stdout, os.Stderr)
	}

	if params.Log == nil {
		params.Log = zap.NewNop()
	}

	return &Supervisor{
		config:            config,
		registry:          params.Registry,
		console:           params.Console,
		createWorker:      params.WorkerFactory,
		shutdownRequested: make(chan struct{}),
		log:               params.Log.Named("supervisor"),
	}, nil
}

// Start launches the tools in registry order. If a tool fails to launch,
// the tools started before it are stopped and a *SpawnError is returned.
// If a shutdown is requested while starting, Start stops launching tools
// and returns ErrShutdownRequested.
func (s *Supervisor) Start(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}

	if err := s.registry.Validate(); err != nil {
		s.log.Error("invalid tool registry", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrInvalidToolRegistry, err)
	}

	s.console.Noticef("starting tools...")

	for i, tool := range s.registry {
		if s.ShuttingDown() {
			return ErrShutdownRequested
		}

		if err := ctx.Err(); err != nil {
			s.Shutdown()
			return fmt.Errorf("failed to start tools: %w", err)
		}

		handle, err := s.spawn(ctx, i, tool)
		if err != nil {
			s.log.Error("failed to start tool",
				zap.String("tool", tool.Name),
				zap.Strings("argv", tool.Argv),
				zap.Error(err),
			)

			s.Shutdown()

			return err
		}

		if !s.track(handle) {
			// the shutdown took its snapshot of the handles
			// while this tool was starting, stop it here.
			s.discard(handle)
			return ErrShutdownRequested
		}

		s.log.Debug("tool started",
			zap.String("tool", tool.Name),
			zap.Int("pid", handle.Pid()),
		)

		_ = s.console.Line(
			console.Stdout,
			handle.stdoutColor,
			tool.Name,
			fmt.Sprintf("started (pid %d)", handle.Pid()),
		)

		s.relay(handle)
	}

	s.console.Noticef("all tools started, press Ctrl-C to stop")

	return nil
}

// Wait blocks until the tools are done according to the exit policy,
// a shutdown is requested, or ctx is cancelled. Callers are expected to
// call Shutdown afterwards in any case.
func (s *Supervisor) Wait(ctx context.Context) error {
	ticker := time.NewTicker(s.config.PollInterval)
	defer ticker.Stop()

	for {
		if s.ShuttingDown() || s.done() {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.shutdownRequested:
			return nil
		case <-ticker.C:
		}
	}
}

// Shutdown stops all tools, one after the other in registry order. Every
// tool is sent a termination signal, and killed if it did not exit within
// the stop timeout. Shutdown returns once every tool has been reaped.
// It is safe to call Shutdown concurrently and repeatedly; later calls
// block until the first one completed.
func (s *Supervisor) Shutdown() {
	s.requestShutdown()
	s.shutdownOnce.Do(s.shutdown)
}

// ShuttingDown reports whether a shutdown has been requested.
func (s *Supervisor) ShuttingDown() bool {
	return s.shutdownFlag.Load()
}

// Handles returns the launched tools in registry order.
func (s *Supervisor) Handles() []*Handle {
	s.handlesLock.Lock()
	defer s.handlesLock.Unlock()

	handles := make([]*Handle, len(s.handles))
	copy(handles, s.handles)

	return handles
}

func (s *Supervisor) shutdown() {
	s.console.Noticef("shutting down all tools...")

	handles := s.Handles()

	stopConfig := s.config.stopConfig()

	for _, h := range handles {
		if h.State() == worker.Exited {
			continue
		}

		log := s.log.With(
			zap.String("tool", h.Name()),
			zap.Int("pid", h.Pid()),
		)

		log.Debug("stopping tool")

		if err := h.worker.Stop(stopConfig); err != nil {
			log.Error("failed to stop tool", zap.Error(err))
		}
	}

	for _, h := range handles {
		<-h.worker.Done()

		h.closeStreams()

		<-h.Done()
	}

	s.console.Noticef("all processes terminated")
}

func (s *Supervisor) requestShutdown() {
	s.requestOnce.Do(func() {
		s.shutdownFlag.Store(true)
		close(s.shutdownRequested)
	})
}

func (s *Supervisor) spawn(ctx context.Context, index int, tool registry.ToolSpec) (*Handle, error) {
	log := s.log.With(zap.String("tool", tool.Name))

	w := s.createWorker(worker.StartConfig{
		Cmd:  tool.Command(),
		Args: tool.Args(),
		Cwd:  tool.Cwd,
		Env:  tool.Env,
	}, log)

	if err := w.Start(ctx); err != nil {
		return nil, &SpawnError{Tool: tool.Name, Argv: tool.Argv, Err: err}
	}

	return newHandle(index, tool, w), nil
}

// track records the handle, unless a shutdown has been requested.
func (s *Supervisor) track(h *Handle) bool {
	s.handlesLock.Lock()
	defer s.handlesLock.Unlock()

	if s.ShuttingDown() {
		return false
	}

	s.handles = append(s.handles, h)

	return true
}

func (s *Supervisor) discard(h *Handle) {
	if err := h.worker.Stop(s.config.stopConfig()); err != nil {
		s.log.Error("failed to stop tool",
			zap.String("tool", h.Name()),
			zap.Int("pid", h.Pid()),
			zap.Error(err),
		)
	}

	h.closeStreams()
}

// done reports whether the tools are done according to the exit policy.
func (s *Supervisor) done() bool {
	handles := s.Handles()

	if len(handles) == 0 {
		return true
	}

	for _, h := range handles {
		exited := h.reaped()

		if exited && s.config.ExitPolicy == ExitOnAny {
			return true
		}

		if !exited && s.config.ExitPolicy == ExitOnAll {
			return false
		}
	}

	return s.config.ExitPolicy == ExitOnAll
}

func defaultWorkerFactory(config worker.StartConfig, log *zap.Logger) worker.Worker {
	return worker.NewProcessWorker(config, log)
}
