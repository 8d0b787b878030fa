package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalConfig(t *testing.T) {
	t.Setenv(EnvHome, t.TempDir())
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := GetGlobalConfig()
	require.NotNil(t, cfg)
	assert.Same(t, cfg, GetGlobalConfig())

	ResetGlobalConfigForTest()
	assert.NotSame(t, cfg, GetGlobalConfig())
}

func TestSetGlobalConfig(t *testing.T) {
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := Defaults()
	cfg.API.BaseURL = "http://127.0.0.1:9999"
	cfg.Logging.Level = "debug"
	cfg.Credentials.File = "/tmp/creds.yaml"
	SetGlobalConfig(cfg)

	assert.Equal(t, "http://127.0.0.1:9999", GetGlobalConfig().API.BaseURL)
	assert.Equal(t, "/tmp/creds.yaml", GetCredentialsFile())
	assert.Equal(t, "debug", GetLoggingConfig().Level)
}

func TestEnsureLogDir(t *testing.T) {
	t.Cleanup(ResetGlobalConfigForTest)

	dir := t.TempDir()
	cfg := Defaults()
	cfg.Logging.File = filepath.Join(dir, "nested", "logs", "jobfocus.log")
	SetGlobalConfig(cfg)

	require.NoError(t, EnsureLogDir())
	assert.DirExists(t, filepath.Join(dir, "nested", "logs"))
}

func TestEnsureLogDir_NoFile(t *testing.T) {
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := Defaults()
	cfg.Logging.File = ""
	SetGlobalConfig(cfg)

	assert.NoError(t, EnsureLogDir())
}

func TestToLoggingConfig(t *testing.T) {
	lc := LoggingConfig{Level: "warn", Format: "console", File: "/tmp/x.log"}
	got := lc.ToLoggingConfig()
	assert.Equal(t, "file", got.Output)
	assert.Equal(t, "/tmp/x.log", got.File)
	assert.Equal(t, "warn", got.Level)

	lc.File = ""
	assert.Equal(t, "stderr", lc.ToLoggingConfig().Output)
}
