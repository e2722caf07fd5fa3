// Package ui styles command output for a terminal.
package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tidwall/pretty"
	"golang.org/x/term"
)

type UI struct {
	enabled bool
	json    *pretty.Style
}

// New returns a UI for out. Styling is off when noColor is set, when out is
// not a terminal, or when the environment asks for plain output.
func New(out *os.File, noColor bool) UI {
	return newUI(lipgloss.NewRenderer(out), !noColor && shouldStyle(out))
}

func newUI(r *lipgloss.Renderer, enabled bool) UI {
	return UI{
		enabled: enabled,
		json: &pretty.Style{
			Key:    pair(r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)),
			String: pair(r.NewStyle().Foreground(lipgloss.Color("2"))),
			Number: pair(r.NewStyle().Foreground(lipgloss.Color("3"))),
			True:   pair(r.NewStyle().Foreground(lipgloss.Color("5"))),
			False:  pair(r.NewStyle().Foreground(lipgloss.Color("5"))),
			Null:   pair(r.NewStyle().Faint(true)),
		},
	}
}

// pair splits what style puts around a token into its opening and closing
// sequences. Both are empty when the renderer's profile has no colour.
func pair(style lipgloss.Style) [2]string {
	const mark = "x"
	rendered := style.Render(mark)
	i := strings.Index(rendered, mark)
	if i < 0 {
		return [2]string{}
	}
	return [2]string{rendered[:i], rendered[i+len(mark):]}
}

func shouldStyle(out *os.File) bool {
	if out == nil {
		return false
	}
	if !term.IsTerminal(int(out.Fd())) {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if strings.EqualFold(strings.TrimSpace(os.Getenv("TERM")), "dumb") {
		return false
	}
	return true
}

// Enabled reports whether output is styled.
func (u UI) Enabled() bool { return u.enabled }
