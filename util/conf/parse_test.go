package conf_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lambda-feedback/tool-launcher/util/conf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

type testConfig struct {
	Name    string        `conf:"name"`
	Timeout time.Duration `conf:"timeout"`
	Nested  struct {
		Items []string `conf:"items"`
		Level int      `conf:"level"`
	} `conf:"nested"`
}

var testDefaults = conf.DefaultConfig{
	"name":         "default",
	"timeout":      "1s",
	"nested.level": 1,
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := conf.Parse[testConfig](conf.ParseOptions{
		Defaults:  testDefaults,
		EnvPrefix: "CONF_TEST_",
	})
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.Name)
	assert.Equal(t, time.Second, cfg.Timeout)
	assert.Equal(t, 1, cfg.Nested.Level)
}

func TestParse_FileOverridesDefaults(t *testing.T) {
	file := writeFile(t, "config.json", `{"name": "file", "nested": {"items": ["a", "b"]}}`)

	cfg, err := conf.Parse[testConfig](conf.ParseOptions{
		Defaults:  testDefaults,
		EnvPrefix: "CONF_TEST_",
		FileName:  file,
	})
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Name)
	assert.Equal(t, []string{"a", "b"}, cfg.Nested.Items)
	assert.Equal(t, 1, cfg.Nested.Level)
}

func TestParse_FailsMissingFile(t *testing.T) {
	_, err := conf.Parse[testConfig](conf.ParseOptions{
		EnvPrefix: "CONF_TEST_",
		FileName:  filepath.Join(t.TempDir(), "missing.json"),
	})
	assert.Error(t, err)
}

func TestParse_EnvOverridesFile(t *testing.T) {
	file := writeFile(t, "config.json", `{"name": "file", "timeout": "2s"}`)

	t.Setenv("CONF_TEST_NAME", "env")
	t.Setenv("CONF_TEST_NESTED__LEVEL", "3")

	cfg, err := conf.Parse[testConfig](conf.ParseOptions{
		Defaults:  testDefaults,
		EnvPrefix: "CONF_TEST_",
		FileName:  file,
	})
	require.NoError(t, err)

	assert.Equal(t, "env", cfg.Name)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, 3, cfg.Nested.Level)
}

func TestParse_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("CONF_TEST_NAME", "env")
	t.Setenv("CONF_TEST_TIMEOUT", "2s")

	var cfg testConfig

	app := &cli.App{
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name"},
			&cli.DurationFlag{Name: "wait"},
			&cli.StringFlag{Name: "unmapped"},
		},
		Action: func(ctx *cli.Context) error {
			var err error
			cfg, err = conf.Parse[testConfig](conf.ParseOptions{
				Cli:           ctx,
				CliMap:        map[string]string{"name": "name", "wait": "timeout"},
				CliOnlyMapped: true,
				Defaults:      testDefaults,
				EnvPrefix:     "CONF_TEST_",
			})
			return err
		},
	}

	err := app.Run([]string{"test", "--wait", "5s", "--unmapped", "x"})
	require.NoError(t, err)

	// name was not passed, so the env var wins
	assert.Equal(t, "env", cfg.Name)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestParse_ValidatesRawConfig(t *testing.T) {
	var raw map[string]any

	_, err := conf.Parse[testConfig](conf.ParseOptions{
		Defaults:  testDefaults,
		EnvPrefix: "CONF_TEST_",
		Validate: func(data map[string]any) error {
			raw = data
			return errors.New("invalid")
		},
	})
	assert.EqualError(t, err, "invalid")

	assert.Equal(t, "default", raw["name"])
	assert.Equal(t, map[string]any{"level": 1}, raw["nested"])
}

func TestLoadEnvFile(t *testing.T) {
	file := writeFile(t, ".env", "API_TOKEN=secret\nLOG_LEVEL=debug\n")

	vars, err := conf.LoadEnvFile(file)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"API_TOKEN": "secret",
		"LOG_LEVEL": "debug",
	}, vars)
}

func TestLoadEnvFile_FailsMissingFile(t *testing.T) {
	_, err := conf.LoadEnvFile(filepath.Join(t.TempDir(), ".env"))
	assert.Error(t, err)
}

func TestMergeDefaults(t *testing.T) {
	merged := conf.MergeDefaults("ns",
		map[string]any{"a": 1},
		map[string]any{"b": 2},
	)

	assert.Equal(t, map[string]any{"ns.a": 1, "ns.b": 2}, merged)
}

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
