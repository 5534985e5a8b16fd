package config

import (
	"time"

	"github.com/lambda-feedback/tool-launcher/internal/execution/supervisor"
	"github.com/lambda-feedback/tool-launcher/internal/registry"
	"github.com/lambda-feedback/tool-launcher/util/conf"
)

type Config struct {
	// Tools lists the tools to launch, in start order
	Tools []registry.ToolSpec `conf:"tools"`

	// Supervisor is the supervisor configuration
	Supervisor supervisor.Config `conf:"supervisor"`

	// EnvFile is an optional dotenv file, whose variables
	// are passed to every tool
	EnvFile string `conf:"env_file"`
}

// Registry returns the configured tools.
func (c Config) Registry() registry.Registry {
	return registry.Registry(c.Tools)
}

// DefaultConfig returns the defaults of all config keys. The default
// tools are resolved relative to baseDir.
func DefaultConfig(baseDir string) conf.DefaultConfig {
	defaults := conf.MergeDefaults("supervisor", map[string]any{
		"stop_timeout":  supervisor.DefaultStopTimeout.String(),
		"poll_interval": supervisor.DefaultPollInterval.String(),
		"exit_policy":   string(supervisor.ExitOnAny),
	})

	defaults["tools"] = toolDefaults(registry.Default(baseDir))

	return conf.DefaultConfig(defaults)
}

// toolDefaults converts the registry into plain values, so the
// merged document can be validated like a loaded config file.
func toolDefaults(tools registry.Registry) []any {
	values := make([]any, 0, len(tools))

	for _, tool := range tools {
		argv := make([]any, len(tool.Argv))
		for i, arg := range tool.Argv {
			argv[i] = arg
		}

		value := map[string]any{
			"name": tool.Name,
			"argv": argv,
		}

		if tool.Cwd != "" {
			value["cwd"] = tool.Cwd
		}

		if len(tool.Env) > 0 {
			env := make(map[string]any, len(tool.Env))
			for k, v := range tool.Env {
				env[k] = v
			}
			value["env"] = env
		}

		values = append(values, value)
	}

	return values
}

// CliMap maps flag names to config keys.
var CliMap = map[string]string{
	"stop-timeout":  "supervisor.stop_timeout",
	"poll-interval": "supervisor.poll_interval",
	"exit-policy":   "supervisor.exit_policy",
	"env-file":      "env_file",
}

// SupervisorConfig returns the supervisor config. The defaults always
// set a stop timeout, so a zero value was configured explicitly and
// kills the tools right away.
func (c Config) SupervisorConfig() supervisor.Config {
	cfg := c.Supervisor
	if cfg.StopTimeout == 0 {
		cfg.StopTimeout = supervisor.NoGracePeriod
	}
	return cfg
}

// ShutdownBudget returns the longest time stopping all tools may take.
func (c Config) ShutdownBudget() time.Duration {
	return c.SupervisorConfig().ShutdownBudget(len(c.Tools))
}
