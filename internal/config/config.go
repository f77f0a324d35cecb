// Package config loads the cheek configuration file.
//
// The file lives at ~/.config/cheek/config.toml by default and every key is
// optional:
//
//	pipe_to = "/tmp/audacity_script_pipe.to.1000"
//	pipe_from = "/tmp/audacity_script_pipe.from.1000"
//	timeout = "30s"
//	command_delay = "1ms"
//	log_level = "info"
//	color = "auto"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/abingham/cheek/audacity"
)

// Duration is a time.Duration that unmarshals from TOML strings like "30s".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config holds all settings. Zero values for the pipe paths mean the
// OS defaults for the current user.
type Config struct {
	PipeTo       string   `toml:"pipe_to"`
	PipeFrom     string   `toml:"pipe_from"`
	Timeout      Duration `toml:"timeout"`
	CommandDelay Duration `toml:"command_delay"`
	LogLevel     string   `toml:"log_level"`
	Color        string   `toml:"color"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		PipeTo:       audacity.ToPipePath(),
		PipeFrom:     audacity.FromPipePath(),
		Timeout:      Duration(audacity.DefaultTimeout),
		CommandDelay: Duration(audacity.DefaultCommandDelay),
		LogLevel:     "info",
		Color:        "auto",
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "cheek", "config.toml")
}

// Load reads the config file at path, applying defaults for unset keys.
// An empty path means DefaultPath. A missing file is not an error; the
// defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("loading %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("loading %s: unknown key %q", path, undecoded[0].String())
	}

	return cfg, cfg.Validate()
}

// Validate checks value ranges. Called by Load; call it again after
// applying flag overrides.
func (c Config) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	if c.CommandDelay < 0 {
		return fmt.Errorf("command_delay must not be negative")
	}
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	switch c.Color {
	case "auto", "always", "never", "":
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}
	return nil
}
