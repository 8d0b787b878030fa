package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HomeDir at a temp dir and runs the test from another temp
// dir so no real ~/.jobfocus or .env is read.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(EnvHome, home)
	for _, env := range []string{EnvAPIURL, EnvAPITimeout, EnvLogLevel, EnvLogFormat} {
		t.Setenv(env, "")
	}
	t.Chdir(t.TempDir())
	return home
}

func TestDefaults(t *testing.T) {
	home := isolate(t)

	cfg := Defaults()

	assert.Equal(t, "https://apis.ccbp.in", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, filepath.Join(home, "logs", "jobfocus.log"), cfg.Logging.File)
	assert.Equal(t, filepath.Join(home, "credentials.yaml"), cfg.Credentials.File)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Defaults().API, cfg.API)
	assert.Empty(t, cfg.Path())
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	home := isolate(t)
	content := "api:\n  base_url: http://localhost:8080\n  timeout: 5s\nlogging:\n  level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(content), 0o600))

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format, "unset keys keep defaults")
	assert.Equal(t, filepath.Join(home, "config.yaml"), cfg.Path())
}

func TestLoad_InvalidYAML(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api: [unclosed"), 0o600))

	_, err := Load(path)

	assert.ErrorContains(t, err, "parsing config file")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	home := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("api:\n  base_url: http://from-file\n"), 0o600))
	t.Setenv(EnvAPIURL, "http://from-env")
	t.Setenv(EnvAPITimeout, "2s")
	t.Setenv(EnvLogFormat, "console")
	t.Setenv(EnvLogFile, "")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "http://from-env", cfg.API.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.API.Timeout)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Empty(t, cfg.Logging.File, "an explicitly empty log file selects stderr")
}

func TestLoad_InvalidTimeoutEnv(t *testing.T) {
	isolate(t)
	t.Setenv(EnvAPITimeout, "soon")

	_, err := Load("")

	assert.ErrorContains(t, err, EnvAPITimeout)
}

func TestLoad_DotEnv(t *testing.T) {
	isolate(t)
	t.Setenv(EnvLogLevel, "")
	require.NoError(t, os.Unsetenv(EnvLogLevel))
	require.NoError(t, os.WriteFile(".env", []byte(EnvLogLevel+"=error\n"), 0o600))

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "zero timeout disables", mutate: func(c *Config) { c.API.Timeout = 0 }},
		{name: "relative url", mutate: func(c *Config) { c.API.BaseURL = "/jobs" }, wantErr: true},
		{name: "ftp url", mutate: func(c *Config) { c.API.BaseURL = "ftp://host" }, wantErr: true},
		{name: "negative timeout", mutate: func(c *Config) { c.API.Timeout = -time.Second }, wantErr: true},
		{name: "unknown format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := Defaults()
	cfg.API.Timeout = 7 * time.Second

	require.NoError(t, cfg.Save(path))
	loaded, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 7*time.Second, loaded.API.Timeout)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
