package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lambda-feedback/tool-launcher/app"
	"github.com/lambda-feedback/tool-launcher/config"
	"github.com/lambda-feedback/tool-launcher/internal/console"
	"github.com/lambda-feedback/tool-launcher/util/conf"
	"github.com/lambda-feedback/tool-launcher/util/logging"
	"github.com/urfave/cli/v2"
)

var (
	toolsCmdDescription = `The tools command prints the tools the run command would
start, in start order, using the colors their output
is printed with.`
	toolsCmd = &cli.Command{
		Name:        "tools",
		Usage:       "List the configured tools.",
		Description: toolsCmdDescription,
		Before:      loadConfig,
		Action:      toolsAction,
	}
)

func toolsAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	cfg, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return err
	}

	out, err := console.ConsoleFromContext(ctx.Context)
	if err != nil {
		return err
	}

	tools, err := app.Registry(cfg, log)
	if err != nil {
		return err
	}

	if err := tools.Validate(); err != nil {
		return err
	}

	for i, tool := range tools {
		color := console.ColorFor(i, console.Stdout)

		if err := out.Line(console.Stdout, color, tool.Name, strings.Join(tool.Argv, " ")); err != nil {
			return err
		}

		if tool.Cwd != "" {
			_ = out.Line(console.Stdout, color, tool.Name, fmt.Sprintf("  cwd: %s", tool.Cwd))
		}

		if len(tool.Env) > 0 {
			keys := make([]string, 0, len(tool.Env))
			for key := range tool.Env {
				keys = append(keys, key)
			}
			slices.Sort(keys)

			_ = out.Line(console.Stdout, color, tool.Name, fmt.Sprintf("  env: %s", strings.Join(keys, ", ")))
		}
	}

	return nil
}

func init() {
	rootApp.Commands = append(rootApp.Commands, toolsCmd)
}
