package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how job details are presented.
type OutputMode int

const (
	// OutputModePlain prints unstyled text once the fetch cycle ends.
	OutputModePlain OutputMode = iota
	// OutputModeStyled prints styled text once the fetch cycle ends.
	OutputModeStyled
	// OutputModeInteractive runs the Bubble Tea program.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// DetectOutputMode picks the presentation for stdout. noTUI keeps styling
// but skips the interactive program; plain disables both. Non-terminals and
// TERM=dumb always get plain output.
func DetectOutputMode(plain, noTUI bool) OutputMode {
	return detectOutputMode(plain, noTUI, term.IsTerminal(int(os.Stdout.Fd())), os.Getenv("TERM"))
}

func detectOutputMode(plain, noTUI, isTTY bool, termEnv string) OutputMode {
	if plain || !isTTY || termEnv == "dumb" {
		return OutputModePlain
	}
	if noTUI {
		return OutputModeStyled
	}
	return OutputModeInteractive
}
