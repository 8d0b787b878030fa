package cli

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/jobfocus/internal/tui"
	"github.com/rshade/jobfocus/internal/tui/detail"
)

// NewViewCmd creates the "view" command, which shows one job posting. On a
// terminal it runs the interactive screen; otherwise it prints the result
// of a single fetch cycle.
func NewViewCmd() *cobra.Command {
	var (
		plain bool
		noTUI bool
		width int
	)

	cmd := &cobra.Command{
		Use:   "view <job-id>",
		Short: "Show a job posting",
		Long: `Fetch a job posting with its skills, life at company section and
similar jobs. In a terminal the interactive screen supports retrying
failed loads and opening similar jobs.`,
		Example: `  # Interactive screen
  jobfocus view d6019453-f864-4a2f-8230-6a9642a59466

  # Plain text, e.g. for piping
  jobfocus view d6019453-f864-4a2f-8230-6a9642a59466 --plain`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := tui.DetectOutputMode(plain, noTUI)
			return runView(cmd.Context(), cmd.OutOrStdout(), detailFetcher(), args[0], mode, width)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print unstyled text and exit")
	cmd.Flags().BoolVar(&noTUI, "no-tui", false, "print styled text and exit instead of the interactive screen")
	cmd.Flags().IntVar(&width, "width", 0, "render width for non-interactive output (0 = default)")

	return cmd
}

// detailFetcher returns the fetcher used by view and show.
func detailFetcher() detail.Fetcher {
	return newJobsClient()
}

func runView(ctx context.Context, w io.Writer, f detail.Fetcher, id string, mode tui.OutputMode, width int) error {
	if mode == tui.OutputModeInteractive {
		return runInteractiveView(ctx, f, id)
	}

	snap := detail.Load(ctx, f, id)

	opts := tui.DefaultRenderOptions()
	opts.Plain = mode == tui.OutputModePlain
	if width > 0 {
		opts.Width = width
	}
	if _, err := fmt.Fprintln(w, tui.RenderJobDetails(snap, opts)); err != nil {
		return err
	}

	if snap.Status == detail.StatusFailure {
		logger.Debug().Ctx(ctx).Err(snap.Err).Str("job_id", id).Msg("view failed")
		return &ExitError{Code: 1, Err: fmt.Errorf("job %s: %w", id, snap.Err)}
	}
	return nil
}

func runInteractiveView(ctx context.Context, f detail.Fetcher, id string) error {
	model := tui.NewJobDetailsModel(ctx, f, id)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	return nil
}
