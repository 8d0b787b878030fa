package cli

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"github.com/rshade/jobfocus/internal/config"
	"github.com/rshade/jobfocus/internal/logging"
)

// activeLog holds the sink opened by the running command until closeLogging.
//
//nolint:gochecknoglobals // one command runs per process
var (
	activeLogMu sync.Mutex
	activeLog   *logging.LogPathResult
)

// setupLogging configures logging from the loaded config and CLI flags, and
// attaches the logger and a trace ID to the command context.
func setupLogging(cmd *cobra.Command) {
	loggingCfg := config.GetLoggingConfig()

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
		loggingCfg.File = ""
	}

	// Ensure log directory exists after all overrides have been applied.
	if loggingCfg.File != "" {
		if err := config.EnsureLogDir(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	result := logging.NewLoggerWithPath(loggingCfg.ToLoggingConfig())
	logger = logging.ComponentLogger(result.Logger, "cli")
	setActiveLog(&result)

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")
}

// setActiveLog records r as the open sink, closing any previous one.
func setActiveLog(r *logging.LogPathResult) {
	activeLogMu.Lock()
	prev := activeLog
	activeLog = r
	activeLogMu.Unlock()
	_ = prev.Close()
}

// closeLogging closes the log file handle. It is safe to call more than once.
func closeLogging() error {
	activeLogMu.Lock()
	r := activeLog
	activeLog = nil
	activeLogMu.Unlock()
	return r.Close()
}
