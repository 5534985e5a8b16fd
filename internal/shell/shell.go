package shell

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Option func(*Shell)

// WithStopTimeout sets the time the app is given to stop.
func WithStopTimeout(timeout time.Duration) Option {
	return func(s *Shell) {
		s.stopTimeout = timeout
	}
}

type Shell struct {
	log         *zap.Logger
	fxApp       *fx.App
	options     []fx.Option
	stopTimeout time.Duration
}

func New(log *zap.Logger, opts []Option, options ...fx.Option) *Shell {
	s := &Shell{
		log:     log,
		options: options,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Shell) Run(ctx context.Context, options ...fx.Option) error {
	// 0. after run ends, flush the logger
	defer s.log.Sync()

	// 1. create shell context
	shellCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// 2. create execution context
	appCtx, cancelApp := context.WithCancel(ctx)
	defer cancelApp()

	// 3. create fx application with app context
	fxApp := s.createFxApp(appCtx, options...)
	s.fxApp = fxApp

	if err := fxApp.Err(); err != nil {
		s.log.Error("failed to create app", zap.Error(err))
		return NewExitError(1)
	}

	// 4. create start context w/ timeout
	startCtx, cancelStart := context.WithTimeout(shellCtx, fxApp.StartTimeout())
	defer cancelStart()

	// 5. start the application, exit on error
	if err := fxApp.Start(startCtx); err != nil {
		return NewExitError(1)
	}

	// 6. wait for done signal by OS or by the app
	sig := <-fxApp.Wait()
	exitCode := sig.ExitCode

	// 7. create shutdown context
	stopCtx, cancelStop := context.WithTimeout(shellCtx, fxApp.StopTimeout())
	defer cancelStop()

	// 8. gracefully shutdown the app, exit on error
	if err := fxApp.Stop(stopCtx); err != nil {
		return NewExitError(1)
	}

	if exitCode == 0 {
		return nil
	}

	// 9. return with the exit code of the app
	return NewExitError(exitCode)
}

func (s *Shell) createFxApp(ctx context.Context, options ...fx.Option) *fx.App {
	var timeouts []fx.Option
	if s.stopTimeout > 0 {
		timeouts = append(timeouts, fx.StopTimeout(s.stopTimeout))
	}

	// 1. create fx application
	return fx.New(
		// 2. inject global execution context
		fx.Supply(fx.Annotate(ctx, fx.As(new(context.Context)))),

		// 3. inject the logger
		fx.Supply(s.log),

		// 4. use the logger also for fx' logs, which are noise
		// for an interactive tool unless debugging
		fx.WithLogger(func() fxevent.Logger {
			logger := &fxevent.ZapLogger{Logger: s.log.Named("fx")}
			logger.UseLogLevel(zapcore.DebugLevel)
			return logger
		}),

		// 5. apply shell options
		fx.Options(timeouts...),

		// 6. provide user-provided options
		fx.Options(s.options...),

		// 7. provide user-provided run options
		fx.Options(options...),
	)
}
