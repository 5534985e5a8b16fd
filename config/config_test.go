package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lambda-feedback/tool-launcher/config"
	"github.com/lambda-feedback/tool-launcher/internal/execution/supervisor"
	"github.com/lambda-feedback/tool-launcher/internal/registry"
	"github.com/lambda-feedback/tool-launcher/util/conf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg, err := parse(t, "")
	require.NoError(t, err)

	assert.Equal(t, supervisor.DefaultConfig(), cfg.Supervisor)
	assert.Equal(t, []string{"tts-server", "gh-proxy"}, cfg.Registry().Names())
	assert.Equal(t, []string{"python3", filepath.Join("/opt/launcher", "..", "tts-server", "tts-server.py")}, cfg.Tools[0].Argv)
	assert.NoError(t, cfg.Registry().Validate())
	assert.Empty(t, cfg.EnvFile)
}

func TestConfig_FileReplacesDefaultTools(t *testing.T) {
	file := filepath.Join(t.TempDir(), "tools.json")
	require.NoError(t, os.WriteFile(file, []byte(`{
		"tools": [
			{"name": "web", "argv": ["npm", "start"], "cwd": "/srv/web", "env": {"PORT": "3000"}}
		],
		"supervisor": {"stop_timeout": "2s", "exit_policy": "all"},
		"env_file": ".env"
	}`), 0o644))

	cfg, err := parse(t, file)
	require.NoError(t, err)

	assert.Equal(t, []registry.ToolSpec{{
		Name: "web",
		Argv: []string{"npm", "start"},
		Cwd:  "/srv/web",
		Env:  map[string]string{"PORT": "3000"},
	}}, cfg.Tools)

	assert.Equal(t, supervisor.Config{
		StopTimeout:  2 * time.Second,
		PollInterval: supervisor.DefaultPollInterval,
		ExitPolicy:   supervisor.ExitOnAll,
	}, cfg.Supervisor)

	assert.Equal(t, ".env", cfg.EnvFile)

	// one tool, stopped within its timeout, plus slack
	assert.Equal(t, 7*time.Second, cfg.ShutdownBudget())
}

func TestConfig_EnvOverridesSupervisor(t *testing.T) {
	t.Setenv("LAUNCHER_SUPERVISOR__STOP_TIMEOUT", "250ms")

	cfg, err := parse(t, "")
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Supervisor.StopTimeout)
}

func TestConfig_ExplicitZeroStopTimeoutKillsRightAway(t *testing.T) {
	t.Setenv("LAUNCHER_SUPERVISOR__STOP_TIMEOUT", "0s")

	cfg, err := parse(t, "")
	require.NoError(t, err)

	assert.Equal(t, time.Duration(0), cfg.Supervisor.StopTimeout)
	assert.Equal(t, supervisor.NoGracePeriod, cfg.SupervisorConfig().StopTimeout)
	assert.NoError(t, cfg.SupervisorConfig().Validate())
}

func TestConfig_FailsInvalidTools(t *testing.T) {
	file := filepath.Join(t.TempDir(), "tools.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"tools": [{"name": "web", "argv": []}]}`), 0o644))

	_, err := parse(t, file)

	var schemaErr *registry.SchemaError
	assert.ErrorAs(t, err, &schemaErr)
}

func TestConfig_FailsEmptyTools(t *testing.T) {
	file := filepath.Join(t.TempDir(), "tools.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"tools": []}`), 0o644))

	_, err := parse(t, file)

	var schemaErr *registry.SchemaError
	assert.ErrorAs(t, err, &schemaErr)
}

func parse(t *testing.T, file string) (config.Config, error) {
	t.Helper()

	return conf.Parse[config.Config](conf.ParseOptions{
		Defaults:  config.DefaultConfig("/opt/launcher"),
		EnvPrefix: "LAUNCHER_",
		FileName:  file,
		Validate:  registry.ValidateDocument,
	})
}
