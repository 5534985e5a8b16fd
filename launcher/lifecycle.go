package launcher

import (
	"context"
	"errors"
	"os"

	"github.com/getsentry/sentry-go"
	"github.com/lambda-feedback/tool-launcher/internal/console"
	"github.com/lambda-feedback/tool-launcher/internal/execution/supervisor"
	"github.com/lambda-feedback/tool-launcher/internal/registry"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type SupervisorParams struct {
	fx.In

	// Context is the application context
	Context context.Context

	Config   supervisor.Config
	Registry registry.Registry
	Console  *console.Console

	// Signals defaults to SIGINT and SIGTERM of the process
	Signals SignalNotifier `optional:"true"`

	// WorkerFactory overrides how tool processes are created
	WorkerFactory supervisor.WorkerFactoryFn `optional:"true"`

	Shutdowner fx.Shutdowner
	Log        *zap.Logger
}

func NewLifecycleSupervisor(params SupervisorParams, lc fx.Lifecycle) (*supervisor.Supervisor, error) {
	sup, err := supervisor.New(supervisor.Params{
		Config:        params.Config,
		Registry:      params.Registry,
		Console:       params.Console,
		WorkerFactory: params.WorkerFactory,
		Log:           params.Log,
	})
	if err != nil {
		return nil, err
	}

	signals := params.Signals
	if signals == nil {
		signals = NewSignalNotifier()
	}

	watcher := newSignalWatcher(signals, sup, params.Log)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// a signal received while tools are starting
			// must stop the startup sequence
			watcher.start()

			if err := sup.Start(ctx); err != nil && !errors.Is(err, supervisor.ErrShutdownRequested) {
				watcher.stop()
				sentry.CaptureException(err)
				params.Console.Errorf("failed to start tools: %v", err)
				return err
			}

			go supervise(params.Context, sup, params.Shutdowner, params.Log)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			defer watcher.stop()

			sup.Shutdown()

			return nil
		},
	})

	return sup, nil
}

// supervise waits for the tools to be done, and shuts down the app.
func supervise(
	ctx context.Context,
	sup *supervisor.Supervisor,
	shutdowner fx.Shutdowner,
	log *zap.Logger,
) {
	if err := sup.Wait(ctx); err != nil {
		log.Debug("stopped waiting for tools", zap.Error(err))
	}

	if err := shutdowner.Shutdown(); err != nil {
		log.Error("failed to shut down", zap.Error(err))
	}
}

type signalWatcher struct {
	signals SignalNotifier
	sup     *supervisor.Supervisor
	ch      chan os.Signal
	stopped chan struct{}
	log     *zap.Logger
}

func newSignalWatcher(signals SignalNotifier, sup *supervisor.Supervisor, log *zap.Logger) *signalWatcher {
	return &signalWatcher{
		signals: signals,
		sup:     sup,
		ch:      make(chan os.Signal, 1),
		stopped: make(chan struct{}),
		log:     log,
	}
}

func (w *signalWatcher) start() {
	w.signals.Notify(w.ch)

	go func() {
		for {
			select {
			case sig := <-w.ch:
				w.log.Info("received signal, shutting down", zap.Stringer("signal", sig))
				// the stop hook waits for the shutdown to complete
				go w.sup.Shutdown()
			case <-w.stopped:
				return
			}
		}
	}()
}

func (w *signalWatcher) stop() {
	select {
	case <-w.stopped:
		return
	default:
	}

	w.signals.Stop(w.ch)
	close(w.stopped)
}
