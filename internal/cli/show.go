package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/jobfocus/internal/jobs"
	"github.com/rshade/jobfocus/internal/tui"
	"github.com/rshade/jobfocus/internal/tui/detail"
)

// Output formats accepted by show.
const (
	outputText = "text"
	outputJSON = "json"
)

// maxConcurrentFetches bounds the requests show keeps in flight.
const maxConcurrentFetches = 4

// ShowResult is one entry of show's JSON output.
type ShowResult struct {
	ID      string        `json:"id"`
	Status  string        `json:"status"`
	Details *jobs.Details `json:"details,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// NewShowCmd creates the "show" command, which fetches one or more jobs
// concurrently and prints them in argument order.
func NewShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show <job-id>...",
		Short: "Print one or more job postings",
		Example: `  # Print two jobs as text
  jobfocus show 1 2

  # Machine-readable output
  jobfocus show 1 2 --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch output {
			case outputText, outputJSON:
			default:
				return fmt.Errorf("unsupported output format: %s", output)
			}
			return runShow(cmd.Context(), cmd.OutOrStdout(), detailFetcher(), args, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text or json")

	return cmd
}

func runShow(ctx context.Context, w io.Writer, f detail.Fetcher, ids []string, output string) error {
	snaps := fetchAll(ctx, f, ids)

	var failed []string
	for _, s := range snaps {
		if s.Status == detail.StatusFailure {
			failed = append(failed, s.JobID)
		}
	}

	var err error
	if output == outputJSON {
		err = writeShowJSON(w, snaps)
	} else {
		err = writeShowText(w, snaps)
	}
	if err != nil {
		return err
	}

	if len(failed) > 0 {
		return &ExitError{
			Code: 1,
			Err:  fmt.Errorf("%d of %d jobs failed: %s", len(failed), len(ids), strings.Join(failed, ", ")),
		}
	}
	return nil
}

// fetchAll runs one fetch cycle per id concurrently. Results keep the order
// of ids. A failed fetch does not cancel the others.
func fetchAll(ctx context.Context, f detail.Fetcher, ids []string) []detail.Snapshot {
	snaps := make([]detail.Snapshot, len(ids))

	var g errgroup.Group
	g.SetLimit(maxConcurrentFetches)
	for i, id := range ids {
		g.Go(func() error {
			snaps[i] = detail.Load(ctx, f, id)
			return nil
		})
	}
	_ = g.Wait()

	logger.Debug().Ctx(ctx).Int("count", len(ids)).Msg("show fetched jobs")
	return snaps
}

func writeShowText(w io.Writer, snaps []detail.Snapshot) error {
	opts := tui.DefaultRenderOptions()
	opts.Plain = true

	for i, s := range snaps {
		if i > 0 {
			if _, err := fmt.Fprintln(w, strings.Repeat("=", 40)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "Job %s [%s]\n", s.JobID, s.Status); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, tui.RenderJobDetails(s, opts)); err != nil {
			return err
		}
	}
	return nil
}

func writeShowJSON(w io.Writer, snaps []detail.Snapshot) error {
	out := make([]ShowResult, 0, len(snaps))
	for _, s := range snaps {
		r := ShowResult{ID: s.JobID, Status: s.Status.String(), Details: s.Details}
		if s.Err != nil {
			r.Error = s.Err.Error()
		}
		out = append(out, r)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
