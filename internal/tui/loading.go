package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// loadingMessage is shown next to the spinner while a request is in flight.
const loadingMessage = "Loading job details..."

// LoadingState wraps the spinner shown while a fetch cycle is in progress.
type LoadingState struct {
	spinner spinner.Model
	message string
}

// NewLoadingState creates a spinner with the default message.
func NewLoadingState() *LoadingState {
	return &LoadingState{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(colorLink)),
		),
		message: loadingMessage,
	}
}

// Init starts the spinner animation.
func (l *LoadingState) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner on its tick messages.
func (l *LoadingState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

// Frame returns the current spinner glyph.
func (l *LoadingState) Frame() string {
	return l.spinner.View()
}

// RenderLoadingIndicator renders the loading line with the given spinner
// frame, or a static glyph when frame is empty.
func RenderLoadingIndicator(frame string) string {
	if frame == "" {
		frame = "⣾"
	}
	return frame + " " + SubtleStyle.Render(loadingMessage)
}
