// Package cli implements the jobfocus command tree.
package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/jobfocus/internal/config"
	"github.com/rshade/jobfocus/pkg/version"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the jobfocus CLI. It loads
// configuration, wires logging and tracing, and registers the view, show,
// auth and config subcommands. ver is normalized to semver; an invalid value
// is reported as version.FallbackVersion with a warning.
func NewRootCmd(ver string) *cobra.Command {
	displayVer, verErr := version.Normalize(ver)

	cmd := &cobra.Command{
		Use:           "jobfocus",
		Short:         "Browse job postings from the terminal",
		Long:          "jobfocus: fetch a job posting with its skills, company details and similar jobs",
		Version:       displayVer,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			setupLogging(cmd)
			if verErr != nil {
				logger.Warn().
					Ctx(cmd.Context()).
					Str("version", ver).
					Err(verErr).
					Msg("build version is not valid semver")
			}
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return closeLogging()
		},
	}

	tmpl := "jobfocus {{.Version}} " + version.BuildInfo() + "\n"
	if verErr != nil {
		tmpl += "warning: {{" + strconv.Quote(verErr.Error()) + "}}\n"
	}
	cmd.SetVersionTemplate(tmpl)

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging to stderr")
	cmd.PersistentFlags().String("config", "", "config file (default $JOBFOCUS_HOME/config.yaml)")
	cmd.PersistentFlags().String("api-url", "", "jobs API base URL (overrides config and env)")
	cmd.PersistentFlags().Duration("timeout", 0, "per-request timeout, e.g. 10s (overrides config and env)")
	cmd.AddCommand(NewViewCmd(), NewShowCmd(), NewAuthCmd(), NewConfigCmd())

	return cmd
}

// Execute runs root and closes the log file afterwards. Cobra skips
// PersistentPostRunE when RunE fails, so the close cannot live there alone.
func Execute(ctx context.Context, root *cobra.Command) error {
	err := root.ExecuteContext(ctx)
	if closeErr := closeLogging(); err == nil {
		err = closeErr
	}
	return err
}

// loadConfig reads the config file and environment, applies flag overrides
// and installs the result as the global config.
func loadConfig(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("api-url") {
		cfg.API.BaseURL, _ = cmd.Flags().GetString("api-url")
	}
	if cmd.Flags().Changed("timeout") {
		var timeout time.Duration
		timeout, _ = cmd.Flags().GetDuration("timeout")
		cfg.API.Timeout = timeout
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	config.SetGlobalConfig(cfg)
	return nil
}

const rootCmdExample = `  # Open a job interactively
  jobfocus view d6019453-f864-4a2f-8230-6a9642a59466

  # Print a job once, without the interactive screen
  jobfocus view d6019453-f864-4a2f-8230-6a9642a59466 --no-tui

  # Fetch several jobs as JSON
  jobfocus show 1 2 3 --output json

  # Store the API token
  jobfocus auth set-token eyJhbGciOi...

  # Use a local API for development
  jobfocus view 1 --api-url http://localhost:8080`
