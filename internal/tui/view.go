package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/seedtheme/seedtheme/internal/hexcolor"
	"github.com/seedtheme/seedtheme/internal/scheme"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true).Width(12)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

// swatchPairs lists the base/on token pairs rendered per theme, in
// display order. The "on" token colors the label so readability of the
// derived pairing is visible at a glance.
var swatchPairs = [][2]string{
	{"primary", "onPrimary"},
	{"primaryContainer", "onPrimaryContainer"},
	{"secondary", "onSecondary"},
	{"tertiary", "onTertiary"},
	{"error", "onError"},
	{"surface", "onSurface"},
	{"surfaceContainerHighest", "onSurface"},
}

// View renders the swatch grid for both themes plus status and help
// lines.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("seedtheme preview"))
	b.WriteString("\n\n")

	for _, theme := range m.current {
		b.WriteString(renderTheme(theme))
		b.WriteString("\n")
	}

	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("←/→ hue · ↑/↓ contrast · q quit"))
	b.WriteString("\n")
	return b.String()
}

func renderTheme(theme scheme.Theme) string {
	colors := make(map[string]string, len(theme.Colors))
	for _, pair := range theme.Colors {
		colors[pair.Name] = pair.Hex
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(string(theme.Brightness)))

	for _, pair := range swatchPairs {
		base, ok := colors[pair[0]]
		if !ok {
			continue
		}
		on, ok := colors[pair[1]]
		if !ok {
			// Fall back to plain black or white by luminance.
			on = "#000000"
			if !hexcolor.IsLight(base) {
				on = "#ffffff"
			}
		}

		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(base)).
			Foreground(lipgloss.Color(on)).
			Padding(0, 1)
		b.WriteString(swatch.Render(base))
		b.WriteString(" ")
	}

	b.WriteString("\n")
	return b.String()
}
