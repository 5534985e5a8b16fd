package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/lambda-feedback/tool-launcher/config"
	"github.com/lambda-feedback/tool-launcher/internal/console"
	"github.com/lambda-feedback/tool-launcher/internal/registry"
	"github.com/lambda-feedback/tool-launcher/internal/shell"
	"github.com/lambda-feedback/tool-launcher/util/conf"
	"github.com/lambda-feedback/tool-launcher/util/logging"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envPrefix = "LAUNCHER_"

var (
	appName  = "tool-launcher"
	appUsage = `Launch a set of long running tools, relay their output to a
single terminal, and stop all of them together.`
	rootApp = &cli.App{
		Name:            appName,
		Usage:           appUsage,
		HideHelpCommand: true,
		DefaultCommand:  "run",
		Flags: []cli.Flag{
			// general flags
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "set the log level. Options: debug, info, warn, error.",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "set the log format. Options: development, production.",
				EnvVars: []string{"LOG_FORMAT"},
			},
			&cli.StringFlag{
				Name:    "color",
				Usage:   "colorize tool output. Options: always, auto, never.",
				Value:   string(console.ColorAlways),
				EnvVars: []string{envPrefix + "COLOR"},
			},
			// config flags
			&cli.PathFlag{
				Name:     "config",
				Usage:    "a JSON file listing the tools to launch.",
				Aliases:  []string{"f"},
				Category: "config",
				EnvVars:  []string{envPrefix + "CONFIG"},
			},
			&cli.PathFlag{
				Name:     "env-file",
				Usage:    "a dotenv file, whose variables are passed to every tool.",
				Category: "config",
			},
		},
		Before: func(ctx *cli.Context) error {
			// create the console all output is written to
			out, err := createConsole(ctx)
			if err != nil {
				return err
			}

			// inject console into cli context
			ctx.Context = console.ContextWithConsole(ctx.Context, out)

			// create the logger
			log, err := createLogger(ctx, out)
			if err != nil {
				return err
			}

			// inject logger into cli context
			ctx.Context = logging.ContextWithLogger(ctx.Context, log)

			return nil
		},
		After: func(ctx *cli.Context) error {
			log, err := logging.LoggerFromContext(ctx.Context)
			if err != nil {
				return err
			}

			_ = log.Sync()

			return nil
		},
	}
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version",
		Usage:              "print the version",
		DisableDefaultText: true,
	}
}

type ExecuteParams struct {
	Version  string
	Compiled time.Time
}

// Execute runs the app with the process arguments,
// and returns the exit code of the process.
func Execute(params ExecuteParams) int {
	rootApp.Version = params.Version
	rootApp.Compiled = params.Compiled

	return run(context.Background(), os.Args)
}

func run(ctx context.Context, args []string) int {
	err := rootApp.RunContext(ctx, args)

	// if app exited without error, return
	if err == nil {
		return 0
	}

	// if app exited with ExitError, exit with given exit code
	var exitErr *shell.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode
	}

	fmt.Fprintf(os.Stderr, "exit error: %s\n", err.Error())

	// otherwise, exit with exit code 1
	return 1
}

// loadConfig parses the config from defaults, the config file, env
// vars and flags, and injects it into the cli context.
func loadConfig(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	cfg, err := conf.Parse[config.Config](conf.ParseOptions{
		Cli:           ctx,
		CliMap:        config.CliMap,
		CliOnlyMapped: true,
		Defaults:      config.DefaultConfig(registry.ExecutableDir()),
		EnvPrefix:     envPrefix,
		FileName:      ctx.Path("config"),
		Validate:      registry.ValidateDocument,
		Log:           log,
	})
	if err != nil {
		return shell.NewExitError(1)
	}

	if err := cfg.Supervisor.Validate(); err != nil {
		log.Error("invalid supervisor config", zap.Error(err))
		return shell.NewExitError(1)
	}

	// inject the config into the cli context
	ctx.Context = conf.ContextWithConfig(ctx.Context, cfg)

	return nil
}

func createConsole(ctx *cli.Context) (*console.Console, error) {
	mode, err := console.ParseColorMode(ctx.String("color"))
	if err != nil {
		return nil, err
	}

	return console.New(os.Stdout, os.Stderr, console.WithColor(mode.Enabled(os.Stdout))), nil
}

func createLogger(ctx *cli.Context, out *console.Console) (*zap.Logger, error) {
	level := getLogLevelFromCLI(ctx)
	format := getLogFormatFromCLI(ctx)

	var (
		encoder zapcore.Encoder
		opts    []zap.Option
	)

	switch format {
	case "production":
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case "development":
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		opts = append(opts, zap.Development())
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}

	// log entries share the console lock with the tool output
	core := zapcore.NewCore(encoder, out.Sink(), level)

	opts = append(opts,
		zap.AddCaller(),
		zap.Fields(zap.String("app", appName)),
	)

	return zap.New(core, opts...), nil
}

func getLogFormatFromCLI(ctx *cli.Context) string {
	format := ctx.String("log-format")
	if format != "" {
		return format
	}

	return "development"
}

func getLogLevelFromCLI(ctx *cli.Context) zap.AtomicLevel {
	lvl := ctx.String("log-level")

	if atom, err := zap.ParseAtomicLevel(lvl); err == nil {
		return atom
	}

	return zap.NewAtomicLevelAt(zap.InfoLevel)
}
