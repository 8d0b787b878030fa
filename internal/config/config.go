// Package config loads jobfocus settings from defaults, a YAML file, an
// optional .env file and JOBFOCUS_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/rshade/jobfocus/internal/jobs"
)

// Environment variables read by Load.
const (
	EnvHome       = "JOBFOCUS_HOME"
	EnvAPIURL     = "JOBFOCUS_API_URL"
	EnvAPITimeout = "JOBFOCUS_API_TIMEOUT"
	EnvLogLevel   = "JOBFOCUS_LOG_LEVEL"
	EnvLogFormat  = "JOBFOCUS_LOG_FORMAT"
	EnvLogFile    = "JOBFOCUS_LOG_FILE"
)

const (
	homeDirName     = ".jobfocus"
	configFileName  = "config.yaml"
	credentialsName = "credentials.yaml"
	logFileName     = "jobfocus.log"
	dotEnvFile      = ".env"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrInvalidConfig is wrapped by every Validate failure.
const ErrInvalidConfig = constError("invalid configuration")

// Config is the full jobfocus configuration.
type Config struct {
	API         APIConfig         `yaml:"api"`
	Logging     LoggingConfig     `yaml:"logging"`
	Credentials CredentialsConfig `yaml:"credentials"`

	// path is the file the config was read from, if any.
	path string
}

// APIConfig configures the jobs API client.
type APIConfig struct {
	BaseURL   string        `yaml:"base_url"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent,omitempty"`
}

// LoggingConfig configures the logger. An empty File logs to stderr.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// CredentialsConfig locates the credentials file.
type CredentialsConfig struct {
	File string `yaml:"file"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	home := HomeDir()
	return &Config{
		API: APIConfig{
			BaseURL: jobs.DefaultBaseURL,
			Timeout: jobs.DefaultTimeout,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			File:   filepath.Join(home, "logs", logFileName),
		},
		Credentials: CredentialsConfig{
			File: filepath.Join(home, credentialsName),
		},
	}
}

// New returns the configuration from the default config file. Load errors
// are ignored and leave the defaults in place; use Load to see them.
func New() *Config {
	cfg, err := Load("")
	if err != nil {
		return Defaults()
	}
	return cfg
}

// Load builds the configuration. path names the YAML file; empty selects
// DefaultConfigPath and tolerates its absence. An explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}
	if err := cfg.loadFile(path, explicit); err != nil {
		return nil, err
	}

	if err := loadDotEnv(dotEnvFile); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	c.path = path
	return nil
}

// loadDotEnv loads path into the environment without overriding variables
// that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv(EnvAPITimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAPITimeout, err)
		}
		c.API.Timeout = d
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		c.Logging.File = v
	}
	return nil
}

// Path returns the file the configuration was read from, or "".
func (c *Config) Path() string {
	return c.path
}

// Validate checks the API and logging settings.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: api.base_url %q must be an absolute http(s) URL", ErrInvalidConfig, c.API.BaseURL)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("%w: api.timeout must be >= 0, got %s", ErrInvalidConfig, c.API.Timeout)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "json", "console":
	default:
		return fmt.Errorf("%w: logging.format must be json or console, got %q", ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}

// Save writes the configuration as YAML to path, creating parent
// directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	c.path = path
	return nil
}

// HomeDir returns the jobfocus state directory: $JOBFOCUS_HOME, or
// ~/.jobfocus. It falls back to the working directory when no home
// directory can be determined.
func HomeDir() string {
	if v := os.Getenv(EnvHome); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return homeDirName
	}
	return filepath.Join(home, homeDirName)
}

// DefaultConfigPath returns the config file location under HomeDir.
func DefaultConfigPath() string {
	return filepath.Join(HomeDir(), configFileName)
}

// EnsureLogDir creates the directory of the configured log file.
func EnsureLogDir() error {
	file := GetGlobalConfig().Logging.File
	if file == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o700); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	return nil
}
