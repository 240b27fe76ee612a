// Package config handles courier's persistent settings, read from a TOML file.
//
// Settings are loaded once by the CLI and passed explicitly to whatever needs them,
// nothing in courier reads configuration from global state.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"go.followtheprocess.codes/courier/internal/format"
)

// Defaults.
const (
	// DefaultTimeout is the default amount of time allowed for the entire request/response
	// cycle for a single request.
	DefaultTimeout = 30 * time.Second

	// DefaultConnectionTimeout is the default amount of time allowed for the HTTP connection/TLS handshake
	// for a single request.
	DefaultConnectionTimeout = 10 * time.Second

	// DefaultFormat is the export format used when none is configured.
	DefaultFormat = "curl"
)

// Duration is a [time.Duration] written in config files as a Go duration string e.g. "30s".
type Duration time.Duration

// UnmarshalText implements [encoding.TextUnmarshaler] for [Duration].
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}

	*d = Duration(parsed)

	return nil
}

// MarshalText implements [encoding.TextMarshaler] for [Duration].
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns d as a [time.Duration].
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config holds courier's persistent settings.
type Config struct {
	// Format is the default export format.
	Format string `toml:"format"`

	// Timeout is the per-request timeout.
	Timeout Duration `toml:"timeout"`

	// ConnectionTimeout is the per-request connection timeout.
	ConnectionTimeout Duration `toml:"connection-timeout"`

	// NoRedirect disables following HTTP redirects.
	NoRedirect bool `toml:"no-redirect"`

	// Insecure disables TLS certificate verification.
	Insecure bool `toml:"insecure"`
}

// Default returns the [Config] used when no config file exists.
func Default() Config {
	return Config{
		Format:            DefaultFormat,
		Timeout:           Duration(DefaultTimeout),
		ConnectionTimeout: Duration(DefaultConnectionTimeout),
	}
}

// Validate reports whether the config is valid, returning a non-nil error if it's not.
func (c Config) Validate() error {
	switch {
	case c.Timeout <= 0:
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout.Std())
	case c.ConnectionTimeout <= 0:
		return fmt.Errorf("connection-timeout must be positive, got %s", c.ConnectionTimeout.Std())
	case c.ConnectionTimeout >= c.Timeout:
		return fmt.Errorf(
			"connection-timeout (%s) cannot be larger than timeout (%s)",
			c.ConnectionTimeout.Std(),
			c.Timeout.Std(),
		)
	}

	if _, err := format.ParseKind(c.Format); err != nil {
		return err
	}

	return nil
}

// Path returns the default location of the config file, $XDG_CONFIG_HOME/courier/config.toml,
// falling back to the platform's user config directory if XDG_CONFIG_HOME is unset.
func Path() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error

		dir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not locate user config directory: %w", err)
		}
	}

	return filepath.Join(dir, "courier", "config.toml"), nil
}

// Load reads the config file at path, filling in anything it omits from [Default].
//
// If path is empty the default [Path] is used and a missing file there is not an error,
// an explicitly requested file must exist.
func Load(path string) (Config, error) {
	explicit := path != ""

	if !explicit {
		var err error

		path, err = Path()
		if err != nil {
			return Config{}, err
		}
	}

	cfg := Default()

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}

		return Config{}, fmt.Errorf("could not load config from %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}

		return Config{}, fmt.Errorf("unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config in %s: %w", path, err)
	}

	return cfg, nil
}
