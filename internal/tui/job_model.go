package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/jobfocus/internal/logging"
	"github.com/rshade/jobfocus/internal/tui/detail"
)

// JobDetailsModel is the Bubble Tea model for the job detail screen. It owns
// the current detail.Snapshot and is its only writer; fetches run as
// commands that report back with a detail.Result.
type JobDetailsModel struct {
	ctx     context.Context
	fetcher detail.Fetcher

	// startID is loaded by Init.
	startID string
	snap    detail.Snapshot
	// cancel aborts the request of the current cycle.
	cancel  context.CancelFunc
	history []string

	selected int
	loading  *LoadingState
	viewport viewport.Model

	width    int
	height   int
	quitting bool
}

// NewJobDetailsModel creates a model that loads id when the program starts.
func NewJobDetailsModel(ctx context.Context, fetcher detail.Fetcher, id string) *JobDetailsModel {
	if ctx == nil {
		ctx = context.Background()
	}
	return &JobDetailsModel{
		ctx:      ctx,
		fetcher:  fetcher,
		startID:  id,
		selected: -1,
		loading:  NewLoadingState(),
		viewport: viewport.New(defaultWidth, defaultHeight-chromeHeight),
		width:    defaultWidth,
		height:   defaultHeight,
	}
}

// Snapshot returns the current view state.
func (m *JobDetailsModel) Snapshot() detail.Snapshot {
	return m.snap
}

// Selected returns the highlighted similar job index, or -1.
func (m *JobDetailsModel) Selected() int {
	return m.selected
}

// History returns the job IDs that backspace returns to, oldest first.
func (m *JobDetailsModel) History() []string {
	return append([]string(nil), m.history...)
}

// Init begins the first fetch cycle.
func (m *JobDetailsModel) Init() tea.Cmd {
	return m.load(m.startID)
}

// Navigate switches the screen to another job, remembering the current one.
func (m *JobDetailsModel) Navigate(id string) tea.Cmd {
	if m.snap.JobID != "" {
		m.history = append(m.history, m.snap.JobID)
	}
	return m.load(id)
}

// Retry re-runs the fetch cycle for the current job.
func (m *JobDetailsModel) Retry() tea.Cmd {
	return m.load(m.snap.JobID)
}

// load starts a fetch cycle for id. The snapshot is InProgress before the
// returned command runs.
func (m *JobDetailsModel) load(id string) tea.Cmd {
	wasLoading := m.snap.Status == detail.StatusInProgress
	if m.cancel != nil {
		m.cancel()
	}

	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel
	m.snap = m.snap.Begin(id)
	m.selected = -1
	m.viewport.GotoTop()

	log := logging.FromContext(m.ctx)
	log.Debug().
		Ctx(m.ctx).
		Str("component", "tui").
		Str("operation", "load").
		Str("job_id", id).
		Uint64("seq", m.snap.Seq).
		Msg("fetch cycle started")

	fetcher := m.fetcher
	seq := m.snap.Seq
	fetch := func() tea.Msg {
		return detail.Fetch(ctx, fetcher, id, seq)
	}

	m.refreshContent()
	if wasLoading {
		// The spinner is already ticking.
		return fetch
	}
	return tea.Batch(m.loading.Init(), fetch)
}

// Update handles messages (Bubble Tea interface).
func (m *JobDetailsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, minHeight)
		m.refreshContent()
		return m, nil

	case detail.Result:
		return m.handleResult(msg)

	case spinner.TickMsg:
		if m.snap.Status != detail.StatusInProgress {
			return m, nil
		}
		cmd := m.loading.Update(msg)
		m.refreshContent()
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *JobDetailsModel) handleResult(r detail.Result) (tea.Model, tea.Cmd) {
	next, ok := m.snap.Apply(r)
	log := logging.FromContext(m.ctx)
	if !ok {
		log.Debug().
			Ctx(m.ctx).
			Str("component", "tui").
			Str("job_id", r.JobID).
			Uint64("seq", r.Seq).
			Uint64("current_seq", m.snap.Seq).
			Msg("discarding stale result")
		return m, nil
	}

	m.snap = next
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	if next.Status == detail.StatusFailure {
		log.Warn().
			Ctx(m.ctx).
			Str("component", "tui").
			Str("job_id", next.JobID).
			Err(next.Err).
			Msg("job details unavailable")
	}
	m.refreshContent()
	return m, nil
}

func (m *JobDetailsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyQuit, keyCtrlC:
		if m.cancel != nil {
			m.cancel()
			m.cancel = nil
		}
		m.quitting = true
		return m, tea.Quit

	case keyRetry:
		if m.snap.Status == detail.StatusFailure {
			return m, m.Retry()
		}
		return m, nil

	case keyBackspace:
		if len(m.history) == 0 {
			return m, nil
		}
		prev := m.history[len(m.history)-1]
		m.history = m.history[:len(m.history)-1]
		return m, m.load(prev)

	case keyTab:
		m.moveSelection(1)
		return m, nil

	case keyShiftTab:
		m.moveSelection(-1)
		return m, nil

	case keyEsc:
		m.selected = -1
		m.refreshContent()
		return m, nil

	case keyEnter:
		if id, ok := m.selectedJobID(); ok {
			return m, m.Navigate(id)
		}
		return m, nil
	}

	if m.snap.Status != detail.StatusSuccess {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// moveSelection cycles the similar job highlight by delta, wrapping around.
func (m *JobDetailsModel) moveSelection(delta int) {
	if m.snap.Status != detail.StatusSuccess || m.snap.Details == nil {
		return
	}
	n := len(m.snap.Details.SimilarJobs)
	if n == 0 {
		return
	}
	if m.selected < 0 {
		if delta > 0 {
			m.selected = 0
		} else {
			m.selected = n - 1
		}
	} else {
		m.selected = ((m.selected+delta)%n + n) % n
	}
	m.refreshContent()
}

func (m *JobDetailsModel) selectedJobID() (string, bool) {
	if m.snap.Status != detail.StatusSuccess || m.snap.Details == nil {
		return "", false
	}
	if m.selected < 0 || m.selected >= len(m.snap.Details.SimilarJobs) {
		return "", false
	}
	return m.snap.Details.SimilarJobs[m.selected].ID, true
}

func (m *JobDetailsModel) renderOptions() RenderOptions {
	return RenderOptions{
		Width:       m.width,
		Spinner:     m.loading.Frame(),
		Selected:    m.selected,
		Interactive: true,
	}
}

// refreshContent re-renders the snapshot into the viewport.
func (m *JobDetailsModel) refreshContent() {
	m.viewport.SetContent(RenderJobDetails(m.snap, m.renderOptions()))
}

// View renders the screen (Bubble Tea interface).
func (m *JobDetailsModel) View() string {
	if m.quitting {
		return ""
	}

	var body, help string
	switch m.snap.Status {
	case detail.StatusInitial:
		body = ""
	case detail.StatusInProgress:
		body = RenderJobDetails(m.snap, m.renderOptions())
		help = helpLoading
	case detail.StatusFailure:
		body = RenderJobDetails(m.snap, m.renderOptions())
		help = helpFailure
	case detail.StatusSuccess:
		body = m.viewport.View()
		help = helpSuccess
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderAppHeader(m.width, false),
		body,
		SubtleStyle.Render(help),
	)
}
