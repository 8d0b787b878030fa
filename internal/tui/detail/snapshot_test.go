package detail

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/jobfocus/internal/jobs"
	"github.com/rshade/jobfocus/internal/jobs/jobstest"
)

func sampleDetails(id string) *jobs.Details {
	return &jobs.Details{
		Job:         jobs.JobDetails{ID: id, Title: "Job " + id},
		SimilarJobs: []jobs.SimilarJob{{ID: id + "-a"}},
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "INITIAL", StatusInitial.String())
	assert.Equal(t, "IN_PROGRESS", StatusInProgress.String())
	assert.Equal(t, "SUCCESS", StatusSuccess.String())
	assert.Equal(t, "FAILURE", StatusFailure.String())
	assert.Equal(t, "UNKNOWN", Status(99).String())

	assert.False(t, StatusInitial.Terminal())
	assert.False(t, StatusInProgress.Terminal())
	assert.True(t, StatusSuccess.Terminal())
	assert.True(t, StatusFailure.Terminal())
}

func TestSnapshot_ZeroValueIsInitial(t *testing.T) {
	var s Snapshot
	assert.Equal(t, StatusInitial, s.Status)
	assert.Nil(t, s.Details)
}

func TestSnapshot_BeginIsInProgressWithoutData(t *testing.T) {
	prev := Snapshot{Status: StatusSuccess, JobID: "1", Seq: 3, Details: sampleDetails("1")}

	next := prev.Begin("2")

	assert.Equal(t, StatusInProgress, next.Status)
	assert.Equal(t, "2", next.JobID)
	assert.Equal(t, uint64(4), next.Seq)
	assert.Nil(t, next.Details)
	assert.NoError(t, next.Err)
	// prev is untouched.
	assert.Equal(t, StatusSuccess, prev.Status)
	assert.NotNil(t, prev.Details)
}

func TestSnapshot_ApplySuccess(t *testing.T) {
	s := Snapshot{}.Begin("1")
	details := sampleDetails("1")

	next, ok := s.Apply(Result{Seq: s.Seq, JobID: "1", Details: details})

	require.True(t, ok)
	assert.Equal(t, StatusSuccess, next.Status)
	assert.Same(t, details, next.Details)
	assert.NoError(t, next.Err)
}

func TestSnapshot_ApplyFailureDropsData(t *testing.T) {
	s := Snapshot{}.Begin("2")
	boom := errors.New("boom")

	next, ok := s.Apply(Result{Seq: s.Seq, JobID: "2", Details: sampleDetails("2"), Err: boom})

	require.True(t, ok)
	assert.Equal(t, StatusFailure, next.Status)
	assert.Nil(t, next.Details)
	assert.ErrorIs(t, next.Err, boom)
}

func TestSnapshot_ApplyNilResultIsFailure(t *testing.T) {
	s := Snapshot{}.Begin("1")

	next, ok := s.Apply(Result{Seq: s.Seq, JobID: "1"})

	require.True(t, ok)
	assert.Equal(t, StatusFailure, next.Status)
	assert.ErrorIs(t, next.Err, ErrNoResult)
}

func TestSnapshot_StaleResultDiscarded(t *testing.T) {
	first := Snapshot{}.Begin("1")
	second := first.Begin("2")

	// The "1" response arrives after the user moved on to "2".
	next, ok := second.Apply(Result{Seq: first.Seq, JobID: "1", Details: sampleDetails("1")})
	assert.False(t, ok)
	assert.Equal(t, second, next)

	next, ok = next.Apply(Result{Seq: second.Seq, JobID: "2", Details: sampleDetails("2")})
	require.True(t, ok)
	assert.Equal(t, "2", next.Details.Job.ID)
}

func TestSnapshot_RetrySameIDStaleDiscarded(t *testing.T) {
	failed, ok := Snapshot{}.Begin("2").Apply(Result{Seq: 1, JobID: "2", Err: errors.New("404")})
	require.True(t, ok)

	retry := failed.Retry()
	assert.Equal(t, StatusInProgress, retry.Status)
	assert.Equal(t, "2", retry.JobID)
	assert.Equal(t, uint64(2), retry.Seq)

	// A late duplicate of the failed cycle cannot overwrite the retry.
	_, ok = retry.Apply(Result{Seq: 1, JobID: "2", Err: errors.New("404")})
	assert.False(t, ok)
}

func TestSnapshot_ApplyAfterTerminalIgnored(t *testing.T) {
	s := Snapshot{}.Begin("1")
	done, ok := s.Apply(Result{Seq: s.Seq, JobID: "1", Details: sampleDetails("1")})
	require.True(t, ok)

	again, ok := done.Apply(Result{Seq: s.Seq, JobID: "1", Err: errors.New("late")})
	assert.False(t, ok)
	assert.Equal(t, done, again)
}

func TestFetch_CallsFetcherOnce(t *testing.T) {
	calls := 0
	f := FetcherFunc(func(_ context.Context, id string) (*jobs.Details, error) {
		calls++
		return sampleDetails(id), nil
	})

	r := Fetch(context.Background(), f, "7", 5)

	assert.Equal(t, 1, calls)
	assert.Equal(t, uint64(5), r.Seq)
	assert.Equal(t, "7", r.JobID)
	assert.Equal(t, "7", r.Details.Job.ID)
}

func TestLoad_AgainstFakeAPI(t *testing.T) {
	server := jobstest.NewServer("tok")
	defer server.Close()
	server.Set("1", http.StatusOK, jobstest.PayloadJSON("1", 1, 2))

	client := jobs.NewClient(server.URL, jobs.StaticToken("tok"))

	t.Run("success", func(t *testing.T) {
		snap := Load(context.Background(), client, "1")
		require.Equal(t, StatusSuccess, snap.Status)
		assert.Len(t, snap.Details.Job.Skills, 1)
		assert.Len(t, snap.Details.SimilarJobs, 2)
	})

	t.Run("not found", func(t *testing.T) {
		snap := Load(context.Background(), client, "2")
		require.Equal(t, StatusFailure, snap.Status)
		assert.Nil(t, snap.Details)
		assert.ErrorIs(t, snap.Err, jobs.ErrUnexpectedStatus)
	})

	t.Run("idempotent", func(t *testing.T) {
		a := Load(context.Background(), client, "1")
		b := LoadFrom(context.Background(), a, client, "1")
		assert.Equal(t, a.Details, b.Details)
		assert.Equal(t, a.Seq+1, b.Seq)
	})
}
