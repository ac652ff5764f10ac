package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/bars"
)

// Theme is the TUI color scheme. Bar tags are drawn with Bar.
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// newTheme takes colors in field order, after the name.
func newTheme(name string, c ...string) Theme {
	return Theme{
		Name:       name,
		Primary:    lipgloss.Color(c[0]),
		Secondary:  lipgloss.Color(c[1]),
		Accent:     lipgloss.Color(c[2]),
		Background: lipgloss.Color(c[3]),
		Text:       lipgloss.Color(c[4]),
		Muted:      lipgloss.Color(c[5]),
		Success:    lipgloss.Color(c[6]),
		Warning:    lipgloss.Color(c[7]),
		Error:      lipgloss.Color(c[8]),
	}
}

var (
	ThemeCyberpunk = newTheme("cyberpunk",
		"#ff00ff", "#00ffff", "#ffff00", "#0a0a0a", "#ffffff", "#666666", "#00ff00", "#ff8800", "#ff0000")
	ThemeRetroGreen = newTheme("retro",
		"#00ff00", "#00cc00", "#88ff88", "#001100", "#007700", "#005500", "#ccffcc", "#ffff00", "#ff0000")
	ThemeMinimal = newTheme("minimal",
		"#ffffff", "#cccccc", "#0088ff", "#000000", "#888888", "#555555", "#00ff00", "#ffaa00", "#ff0000")
	ThemeOcean = newTheme("ocean",
		"#0077be", "#00a8cc", "#ffd700", "#001a33", "#e0f0ff", "#4488aa", "#00ff88", "#ffcc00", "#ff4444")

	CurrentTheme = ThemeCyberpunk

	Themes = []Theme{ThemeCyberpunk, ThemeRetroGreen, ThemeMinimal, ThemeOcean}
)

// GetTheme falls back to cyberpunk for unknown names.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

func SetTheme(name string) { CurrentTheme = GetTheme(name) }

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Bar maps a bar's color tag onto the theme.
func (t Theme) Bar(c bars.Color) lipgloss.Color {
	switch c {
	case bars.Compare, bars.Shift:
		return t.Secondary
	case bars.Continue:
		return t.Accent
	case bars.SwapOut:
		return t.Error
	case bars.SwapIn:
		return t.Warning
	case bars.Insert:
		return t.Primary
	case bars.Sorted:
		return t.Success
	default:
		return t.Text
	}
}
