package bpaf

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Style holds the lipgloss styles help/usage rendering uses for
// different pieces of text (§9 "no global color state"). It is always
// passed explicitly — through WithColor, e.g. with DetectStyle's result — rather than
// read from a package-level variable, so that two OptionParsers in the
// same process (as in a test suite) never fight over terminal detection.
type Style struct {
	Header  lipgloss.Style
	Flag    lipgloss.Style
	Literal lipgloss.Style
	Dim     lipgloss.Style
}

// PlainStyle renders everything unstyled, for non-terminal output or
// when the caller has disabled color.
func PlainStyle() Style {
	return Style{}
}

// ColorStyle renders with bold headers and colored flags/literals, the
// way a terminal-attached --help invocation looks.
func ColorStyle() Style {
	return Style{
		Header:  lipgloss.NewStyle().Bold(true),
		Flag:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		Literal: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Dim:     lipgloss.NewStyle().Faint(true),
	}
}

// DetectStyle picks ColorStyle or PlainStyle for w the way most CLIs do:
// respect NO_COLOR unconditionally, then fall back to whether w looks
// like an interactive terminal.
func DetectStyle(w io.Writer) Style {
	if os.Getenv("NO_COLOR") != "" {
		return PlainStyle()
	}
	if f, ok := w.(*os.File); ok {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			return ColorStyle()
		}
	}
	return PlainStyle()
}
