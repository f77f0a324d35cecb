package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abingham/cheek/audacity"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, audacity.ToPipePath(), cfg.PipeTo)
	assert.Equal(t, audacity.FromPipePath(), cfg.PipeFrom)
	assert.Equal(t, audacity.DefaultTimeout, cfg.Timeout.Std())
	assert.Equal(t, audacity.DefaultCommandDelay, cfg.CommandDelay.Std())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "auto", cfg.Color)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
pipe_to = "/tmp/to"
pipe_from = "/tmp/from"
timeout = "5s"
command_delay = "20ms"
log_level = "debug"
color = "never"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/to", cfg.PipeTo)
	assert.Equal(t, "/tmp/from", cfg.PipeFrom)
	assert.Equal(t, 5*time.Second, cfg.Timeout.Std())
	assert.Equal(t, 20*time.Millisecond, cfg.CommandDelay.Std())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "never", cfg.Color)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `log_level = "warn"`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, audacity.ToPipePath(), cfg.PipeTo)
	assert.Equal(t, audacity.DefaultTimeout, cfg.Timeout.Std())
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoadUnknownKey(t *testing.T) {
	path := writeConfig(t, `pipe = "/tmp/to"`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown key")
}

func TestLoadBadDuration(t *testing.T) {
	path := writeConfig(t, `timeout = "soon"`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"negative timeout", func(c *Config) { c.Timeout = -1 }, true},
		{"negative delay", func(c *Config) { c.CommandDelay = -1 }, true},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"bad color", func(c *Config) { c.Color = "sometimes" }, true},
		{"empty level and color", func(c *Config) { c.LogLevel, c.Color = "", "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
