package supervisor

import (
	"fmt"
	"strings"
	"time"

	"github.com/lambda-feedback/tool-launcher/internal/execution/worker"
)

// ExitPolicy decides when Wait considers the supervised tools done.
type ExitPolicy string

const (
	// ExitOnAny returns from Wait as soon as one tool exits on its own.
	ExitOnAny ExitPolicy = "any"

	// ExitOnAll returns from Wait once every tool exited on its own.
	ExitOnAll ExitPolicy = "all"
)

func ParseExitPolicy(s string) (ExitPolicy, error) {
	switch policy := ExitPolicy(strings.ToLower(strings.TrimSpace(s))); policy {
	case ExitOnAny, ExitOnAll:
		return policy, nil
	case "":
		return ExitOnAny, nil
	default:
		return "", fmt.Errorf("invalid exit policy %q, expected one of: any, all", s)
	}
}

const (
	// NoGracePeriod as stop timeout kills tools without
	// sending a termination signal first.
	NoGracePeriod time.Duration = -1

	DefaultStopTimeout  = 5 * time.Second
	DefaultPollInterval = 100 * time.Millisecond

	// shutdownSlack covers signal delivery and reaping on top
	// of the per-tool stop timeouts.
	shutdownSlack = 5 * time.Second
)

type Config struct {
	// StopTimeout is the time a tool is given to exit after the
	// termination signal, before it is killed. Zero selects the
	// default, NoGracePeriod kills right away.
	StopTimeout time.Duration `conf:"stop_timeout"`

	// PollInterval is the interval at which Wait checks the tools.
	PollInterval time.Duration `conf:"poll_interval"`

	// ExitPolicy is either "any" or "all".
	ExitPolicy ExitPolicy `conf:"exit_policy"`
}

func DefaultConfig() Config {
	return Config{
		StopTimeout:  DefaultStopTimeout,
		PollInterval: DefaultPollInterval,
		ExitPolicy:   ExitOnAny,
	}
}

func (c Config) Validate() error {
	if c.StopTimeout < 0 && c.StopTimeout != NoGracePeriod {
		return fmt.Errorf("invalid stop timeout %s: must not be negative", c.StopTimeout)
	}

	if c.PollInterval <= 0 {
		return fmt.Errorf("invalid poll interval %s: must be positive", c.PollInterval)
	}

	if _, err := ParseExitPolicy(string(c.ExitPolicy)); err != nil {
		return err
	}

	return nil
}

// ShutdownBudget returns the longest time a shutdown of the given number
// of tools may take. Tools are stopped one after the other, so every
// tool may use up its full stop timeout.
func (c Config) ShutdownBudget(tools int) time.Duration {
	return time.Duration(tools)*c.stopConfig().Timeout + shutdownSlack
}

func (c Config) stopConfig() worker.StopConfig {
	if c.StopTimeout == NoGracePeriod {
		return worker.StopConfig{Timeout: 0}
	}

	return worker.StopConfig{Timeout: c.StopTimeout}
}

func (c Config) withDefaults() Config {
	defaults := DefaultConfig()

	if c.StopTimeout == 0 {
		c.StopTimeout = defaults.StopTimeout
	}

	if c.PollInterval == 0 {
		c.PollInterval = defaults.PollInterval
	}

	if c.ExitPolicy == "" {
		c.ExitPolicy = defaults.ExitPolicy
	}

	return c
}
