package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// styleSet holds the semantic styles used for console reports. Colors are
// adaptive and only applied when writing to a terminal.
type styleSet struct {
	Header lipgloss.Style
	Link   lipgloss.Style
	Remove lipgloss.Style
	Dim    lipgloss.Style
	DryRun lipgloss.Style
	Error  lipgloss.Style
}

func newStyleSet(colored bool) styleSet {
	if !colored {
		plain := lipgloss.NewStyle()
		return styleSet{
			Header: plain, Link: plain, Remove: plain,
			Dim: plain, DryRun: plain, Error: plain,
		}
	}
	return styleSet{
		Header: lipgloss.NewStyle().Bold(true),
		Link:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "35"}),
		Remove: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "130", Dark: "214"}),
		Dim:    lipgloss.NewStyle().Faint(true),
		DryRun: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "61", Dark: "105"}),
		Error:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "196"}),
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ErrorStyle returns the style used to render fatal errors on stderr.
func ErrorStyle() lipgloss.Style {
	return newStyleSet(IsTerminal(os.Stderr)).Error
}
