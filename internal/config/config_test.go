package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "autocli", cfg.Name)
	assert.Equal(t, "contract.json", cfg.Contract.Path)
	assert.Equal(t, "auto", cfg.Contract.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		t.Setenv("AUTOCLI_CONTRACT", "")

		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		t.Setenv("AUTOCLI_CONTRACT", "")
		path := filepath.Join(t.TempDir(), "autocli.yaml")
		content := "contract:\n  path: api.yaml\n  format: yaml\nlogging:\n  level: debug\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "api.yaml", cfg.Contract.Path)
		assert.Equal(t, "yaml", cfg.Contract.Format)
		assert.Equal(t, "debug", cfg.Logging.Level)
		// Untouched sections keep their defaults.
		assert.Equal(t, "http://localhost:8080", cfg.Request.BaseURL)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "autocli.yaml")
		require.NoError(t, os.WriteFile(path, []byte("contract: ["), 0644))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config")
	})
}

func TestEnvOverrides(t *testing.T) {
	t.Run("environment wins over the file", func(t *testing.T) {
		t.Setenv("AUTOCLI_CONTRACT", "/etc/autocli/contract.yaml")
		path := filepath.Join(t.TempDir(), "autocli.yaml")
		require.NoError(t, os.WriteFile(path, []byte("contract:\n  path: api.yaml\n"), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "/etc/autocli/contract.yaml", cfg.Contract.Path)
	})

	t.Run("environment applies without a file", func(t *testing.T) {
		t.Setenv("AUTOCLI_BASE_URL", "https://api.example.org")
		t.Setenv("AUTOCLI_LOG_LEVEL", "debug")

		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.org", cfg.Request.BaseURL)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("empty variables are ignored", func(t *testing.T) {
		t.Setenv("AUTOCLI_CONTRACT", "")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, "contract.json", cfg.Contract.Path)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("AUTOCLI_CONTRACT", "")
	t.Setenv("AUTOCLI_BASE_URL", "")
	t.Setenv("AUTOCLI_LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "nested", "autocli.yaml")

	saved := DefaultConfig()
	saved.Contract.Path = "api.json"
	saved.Logging.Level = "warn"
	require.NoError(t, saved.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty contract path",
			mutate:  func(c *Config) { c.Contract.Path = "" },
			wantErr: "contract path not configured",
		},
		{
			name:    "unknown contract format",
			mutate:  func(c *Config) { c.Contract.Format = "toml" },
			wantErr: "invalid contract format",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "invalid log level",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "invalid log format",
		},
		{
			name:   "console log format",
			mutate: func(c *Config) { c.Logging.Format = "console" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
