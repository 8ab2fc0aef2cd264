package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/psyops/internal/assess"
)

// Theme defines color scheme for the TUI
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color
	Track     lipgloss.Color
	Success   lipgloss.Color
	Error     lipgloss.Color
	Bands     map[assess.Color]lipgloss.Color
}

var (
	ThemeDark = Theme{
		Name:      "dark",
		Primary:   lipgloss.Color("#00ffff"),
		Secondary: lipgloss.Color("#ff00ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666688"),
		Border:    lipgloss.Color("#444466"),
		Track:     lipgloss.Color("#404040"),
		Success:   lipgloss.Color("#00ff88"),
		Error:     lipgloss.Color("#ff4444"),
		Bands: map[assess.Color]lipgloss.Color{
			assess.Green:    lipgloss.Color("#00c800"),
			assess.Yellow:   lipgloss.Color("#ffff00"),
			assess.LightRed: lipgloss.Color("#ff8080"),
			assess.Red:      lipgloss.Color("#ff0000"),
		},
	}

	ThemeLight = Theme{
		Name:      "light",
		Primary:   lipgloss.Color("#0055aa"),
		Secondary: lipgloss.Color("#8800aa"),
		Text:      lipgloss.Color("#111111"),
		Muted:     lipgloss.Color("#777777"),
		Border:    lipgloss.Color("#aaaaaa"),
		Track:     lipgloss.Color("#cccccc"),
		Success:   lipgloss.Color("#007a3d"),
		Error:     lipgloss.Color("#cc0000"),
		Bands: map[assess.Color]lipgloss.Color{
			assess.Green:    lipgloss.Color("#008800"),
			assess.Yellow:   lipgloss.Color("#b8860b"),
			assess.LightRed: lipgloss.Color("#d05050"),
			assess.Red:      lipgloss.Color("#cc0000"),
		},
	}

	Themes = []Theme{ThemeDark, ThemeLight}
)

// GetTheme returns a theme by name, falling back to dark.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDark
}

// HasTheme reports whether name is a known theme.
func HasTheme(name string) bool {
	for _, t := range Themes {
		if t.Name == name {
			return true
		}
	}
	return false
}

// Next returns the theme after t, wrapping around.
func (t Theme) Next() Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// BandColor maps a symbolic band colour onto this theme.
func (t Theme) BandColor(c assess.Color) lipgloss.Color {
	if col, ok := t.Bands[c]; ok {
		return col
	}
	return t.Text
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
