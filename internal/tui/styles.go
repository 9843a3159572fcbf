package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Colors shared by every view.
const (
	ColorHeader    = lipgloss.Color("36")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("252")
	ColorMuted     = lipgloss.Color("240")
	ColorBorder    = lipgloss.Color("238")
	ColorHighlight = lipgloss.Color("42")
	ColorOK        = lipgloss.Color("34")
	ColorWarning   = lipgloss.Color("214")
	ColorError     = lipgloss.Color("196")
)

// Icons.
const (
	IconTree  = "♣"
	IconStar  = "★"
	IconCross = "✗"
	IconCheck = "✓"
)

// OutputMode selects how results are rendered.
type OutputMode int

const (
	// OutputModePlain renders unstyled text.
	OutputModePlain OutputMode = iota
	// OutputModeStyled renders colored lipgloss cards without interaction.
	OutputModeStyled
	// OutputModeInteractive runs a bubbletea program.
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

// isTerminal reports whether stdout is a terminal.
//
//nolint:gochecknoglobals // Replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsTTY reports whether stdout is attached to a terminal.
func IsTTY() bool {
	return isTerminal()
}

// DetectOutputMode picks the output mode for stdout. plain always wins;
// noColor (or a set NO_COLOR) disables styling; forceColor styles even when
// stdout is not a terminal. Interactive mode needs a terminal.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	if plain {
		return OutputModePlain
	}
	if noColor || os.Getenv("NO_COLOR") != "" {
		return OutputModePlain
	}
	if !isTerminal() {
		if forceColor {
			return OutputModeStyled
		}
		return OutputModePlain
	}
	if os.Getenv("TERM") == "dumb" {
		return OutputModeStyled
	}
	return OutputModeInteractive
}
