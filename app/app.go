package app

import (
	"github.com/lambda-feedback/tool-launcher/config"
	"github.com/lambda-feedback/tool-launcher/internal/console"
	"github.com/lambda-feedback/tool-launcher/internal/registry"
	"github.com/lambda-feedback/tool-launcher/internal/shell"
	"github.com/lambda-feedback/tool-launcher/util/conf"
	"github.com/lambda-feedback/tool-launcher/util/logging"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func New(ctx *cli.Context) (*shell.Shell, error) {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return nil, err
	}

	cfg, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return nil, err
	}

	out, err := console.ConsoleFromContext(ctx.Context)
	if err != nil {
		return nil, err
	}

	tools, err := Registry(cfg, log)
	if err != nil {
		return nil, err
	}

	sharedModule := fx.Module(
		"shared",
		// provide global config
		fx.Supply(cfg),
		// provide tool registry
		fx.Supply(tools),
		// provide console
		fx.Supply(out),
	)

	opts := []shell.Option{
		shell.WithStopTimeout(cfg.ShutdownBudget()),
	}

	return shell.New(log, opts, sharedModule), nil
}

// Registry returns the configured tools, with the variables
// of the env file added to their environment.
func Registry(cfg config.Config, log *zap.Logger) (registry.Registry, error) {
	tools := cfg.Registry()

	if cfg.EnvFile == "" {
		return tools, nil
	}

	env, err := conf.LoadEnvFile(cfg.EnvFile)
	if err != nil {
		log.Error("failed to load env file", zap.String("file", cfg.EnvFile), zap.Error(err))
		return nil, err
	}

	log.Debug("loaded env file",
		zap.String("file", cfg.EnvFile),
		zap.Int("vars", len(env)),
	)

	return tools.WithEnv(env), nil
}
