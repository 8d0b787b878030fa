package detail

import (
	"context"

	"github.com/rshade/jobfocus/internal/jobs"
	"github.com/rshade/jobfocus/internal/logging"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrNoResult is recorded when a fetcher returns neither data nor an error.
const ErrNoResult = constError("fetcher returned no details")

// Fetcher loads the details of one job. The fetcher should honour ctx
// cancellation.
type Fetcher interface {
	FetchDetails(ctx context.Context, id string) (*jobs.Details, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, id string) (*jobs.Details, error)

// FetchDetails implements Fetcher.
func (f FetcherFunc) FetchDetails(ctx context.Context, id string) (*jobs.Details, error) {
	return f(ctx, id)
}

// Snapshot is the complete view state at one instant. It is a value and is
// never mutated in place; transitions return a new Snapshot.
//
// Details is non-nil only when Status is StatusSuccess, and Err only when
// Status is StatusFailure.
type Snapshot struct {
	Status  Status
	JobID   string
	Seq     uint64
	Details *jobs.Details
	Err     error
}

// Result is the outcome of one fetch, tagged with the cycle that issued it.
type Result struct {
	Seq     uint64
	JobID   string
	Details *jobs.Details
	Err     error
}

// Begin starts a new fetch cycle for id and returns the InProgress snapshot.
// Any earlier cycle becomes stale.
func (s Snapshot) Begin(id string) Snapshot {
	return Snapshot{
		Status: StatusInProgress,
		JobID:  id,
		Seq:    s.Seq + 1,
	}
}

// Retry begins a new cycle for the current job ID.
func (s Snapshot) Retry() Snapshot {
	return s.Begin(s.JobID)
}

// Apply folds a fetch result into the snapshot. Results from any cycle other
// than the latest are discarded and reported with ok=false.
func (s Snapshot) Apply(r Result) (next Snapshot, ok bool) {
	if s.Status != StatusInProgress || r.Seq != s.Seq || r.JobID != s.JobID {
		return s, false
	}

	if r.Err == nil && r.Details == nil {
		r.Err = ErrNoResult
	}
	if r.Err != nil {
		return Snapshot{Status: StatusFailure, JobID: s.JobID, Seq: s.Seq, Err: r.Err}, true
	}
	return Snapshot{Status: StatusSuccess, JobID: s.JobID, Seq: s.Seq, Details: r.Details}, true
}

// Fetch performs the single request of the cycle identified by seq.
func Fetch(ctx context.Context, f Fetcher, id string, seq uint64) Result {
	details, err := f.FetchDetails(ctx, id)
	if err != nil {
		details = nil
	}
	return Result{Seq: seq, JobID: id, Details: details, Err: err}
}

// Load runs a whole fetch cycle synchronously, for callers without an event
// loop.
func Load(ctx context.Context, f Fetcher, id string) Snapshot {
	return LoadFrom(ctx, Snapshot{}, f, id)
}

// LoadFrom runs a whole fetch cycle starting from prev.
func LoadFrom(ctx context.Context, prev Snapshot, f Fetcher, id string) Snapshot {
	snap := prev.Begin(id)
	next, _ := snap.Apply(Fetch(ctx, f, id, snap.Seq))

	log := logging.FromContext(ctx)
	ev := log.Debug()
	if next.Status == StatusFailure {
		ev = log.Warn().Err(next.Err)
	}
	ev.Ctx(ctx).
		Str("component", "detail").
		Str("operation", "load").
		Str("job_id", id).
		Uint64("seq", next.Seq).
		Str("status", next.Status.String()).
		Msg("fetch cycle finished")

	return next
}
