package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how command output is rendered.
type OutputMode int

// Output modes, from richest to plainest.
const (
	// OutputModeInteractive runs the full-screen Bubble Tea UI.
	OutputModeInteractive OutputMode = iota

	// OutputModeStyled prints lipgloss-styled text without taking over the
	// terminal.
	OutputModeStyled

	// OutputModePlain prints unstyled text, for pipes and CI.
	OutputModePlain
)

// DetectOutputMode picks the rendering mode for the current process.
// Non-terminal stdout or an explicit plain request forces plain output;
// NO_COLOR downgrades interactive to styled-off per convention.
func DetectOutputMode(plain, noInteractive bool) OutputMode {
	if plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		return OutputModePlain
	}
	if noInteractive || os.Getenv("NO_COLOR") != "" {
		return OutputModeStyled
	}
	return OutputModeInteractive
}
