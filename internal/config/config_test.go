package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.followtheprocess.codes/courier/internal/config"
	"go.followtheprocess.codes/test"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	test.Ok(t, cfg.Validate())

	test.Equal(t, cfg.Timeout.Std(), config.DefaultTimeout)
	test.Equal(t, cfg.ConnectionTimeout.Std(), config.DefaultConnectionTimeout)
	test.Equal(t, cfg.Format, "curl")
	test.False(t, cfg.NoRedirect)
	test.False(t, cfg.Insecure)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string               // Name of the test case
		modify  func(*config.Config) // Changes made to the default config
		wantErr bool                 // Whether we want an error
	}{
		{
			name:    "default",
			modify:  func(*config.Config) {},
			wantErr: false,
		},
		{
			name:    "zero timeout",
			modify:  func(c *config.Config) { c.Timeout = 0 },
			wantErr: true,
		},
		{
			name:    "negative connection timeout",
			modify:  func(c *config.Config) { c.ConnectionTimeout = config.Duration(-time.Second) },
			wantErr: true,
		},
		{
			name: "connection timeout larger",
			modify: func(c *config.Config) {
				c.Timeout = config.Duration(time.Second)
				c.ConnectionTimeout = config.Duration(2 * time.Second)
			},
			wantErr: true,
		},
		{
			name:    "none format",
			modify:  func(c *config.Config) { c.Format = "none" },
			wantErr: false,
		},
		{
			name:    "unknown format",
			modify:  func(c *config.Config) { c.Format = "postman" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.modify(&cfg)

			err := cfg.Validate()
			test.WantErr(t, err, tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		test.Ok(t, os.WriteFile(path, []byte("timeout = \"1m\"\nno-redirect = true\n"), 0o644))

		cfg, err := config.Load(path)
		test.Ok(t, err)

		test.Equal(t, cfg.Timeout.Std(), time.Minute)
		test.Equal(t, cfg.ConnectionTimeout.Std(), config.DefaultConnectionTimeout)
		test.True(t, cfg.NoRedirect)
		test.Equal(t, cfg.Format, config.DefaultFormat)
	})

	t.Run("missing default file", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		cfg, err := config.Load("")
		test.Ok(t, err)
		test.Equal(t, cfg, config.Default())
	})

	t.Run("default location", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", dir)

		path, err := config.Path()
		test.Ok(t, err)
		test.Equal(t, path, filepath.Join(dir, "courier", "config.toml"))

		test.Ok(t, os.MkdirAll(filepath.Dir(path), 0o755))
		test.Ok(t, os.WriteFile(path, []byte("insecure = true\n"), 0o644))

		cfg, err := config.Load("")
		test.Ok(t, err)
		test.True(t, cfg.Insecure)
	})

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
		test.Err(t, err)
	})

	t.Run("unknown key", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		test.Ok(t, os.WriteFile(path, []byte("timeuot = \"1m\"\n"), 0o644))

		_, err := config.Load(path)
		test.Err(t, err)
	})

	t.Run("bad duration", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		test.Ok(t, os.WriteFile(path, []byte("timeout = \"soon\"\n"), 0o644))

		_, err := config.Load(path)
		test.Err(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		test.Ok(t, os.WriteFile(path, []byte("format = \"har\"\n"), 0o644))

		_, err := config.Load(path)
		test.Err(t, err)
	})
}
