package cmd

import (
	"github.com/lambda-feedback/tool-launcher/app"
	"github.com/lambda-feedback/tool-launcher/config"
	"github.com/lambda-feedback/tool-launcher/launcher"
	"github.com/lambda-feedback/tool-launcher/util/conf"
	"github.com/urfave/cli/v2"
)

var (
	runCmdDescription = `The run command starts every configured tool, in order, and
relays their output to the terminal. Every line is prefixed
with the name of the tool, and colored per tool and stream.

The command blocks until a tool exits or the launcher is
interrupted, and then stops all tools. Earlier launchers kept
running until every tool exited; use --exit-policy all for
that behaviour. Tools are sent SIGTERM
one after the other, and killed if they did not exit within
the stop timeout.

Without a config file, the bundled tts-server and gh-proxy
tools are launched.`
	runCmd = &cli.Command{
		Name:        "run",
		Usage:       "Start all tools and relay their output.",
		Description: runCmdDescription,
		Before:      loadConfig,
		Action:      runAction,
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:     "stop-timeout",
				Usage:    "the time a tool is given to exit after SIGTERM, before it is killed. 0 kills right away.",
				Aliases:  []string{"t"},
				Category: "supervisor",
			},
			&cli.DurationFlag{
				Name:     "poll-interval",
				Usage:    "the interval at which the tools are checked for exits.",
				Category: "supervisor",
			},
			&cli.StringFlag{
				Name:     "exit-policy",
				Usage:    "stop all tools once any tool exited, or once all tools exited. Options: any, all.",
				Category: "supervisor",
			},
		},
	}
)

func runAction(ctx *cli.Context) error {
	shell, err := app.New(ctx)
	if err != nil {
		return err
	}

	cfg, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return err
	}

	return shell.Run(ctx.Context, launcher.Module(cfg.SupervisorConfig()))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, runCmd)
}
