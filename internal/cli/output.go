package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// styles holds the lipgloss styles used for CLI output. All styles render
// as plain text when color is disabled.
type styles struct {
	ok   lipgloss.Style
	fail lipgloss.Style
	name lipgloss.Style
	dim  lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		s := lipgloss.NewStyle()
		return styles{ok: s, fail: s, name: s, dim: s}
	}
	return styles{
		ok:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		fail: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		name: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// colorEnabled resolves the config color mode against the terminal.
func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		return isatty.IsTerminal(os.Stdout.Fd())
	}
}
