package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles is the lipgloss style set for one theme.
type Styles struct {
	Theme    Theme
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Panel    lipgloss.Style
	Heading  lipgloss.Style
	Question lipgloss.Style
	Selected lipgloss.Style
	Value    lipgloss.Style
	Muted    lipgloss.Style
	Track    lipgloss.Style
	Help     lipgloss.Style
	OK       lipgloss.Style
	Failed   lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Theme: t,
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),
		Subtitle: lipgloss.NewStyle().
			Foreground(t.Muted),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Text).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Border),
		Question: lipgloss.NewStyle().Foreground(t.Text),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Secondary),
		Value: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),
		Muted: lipgloss.NewStyle().Foreground(t.Muted),
		Track: lipgloss.NewStyle().Foreground(t.Track),
		Help: lipgloss.NewStyle().
			Foreground(t.Muted).
			Italic(true),
		OK:     lipgloss.NewStyle().Bold(true).Foreground(t.Success),
		Failed: lipgloss.NewStyle().Bold(true).Foreground(t.Error),
	}
}

// Band returns a bold style in the theme's colour for a band.
func (s Styles) Band(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(c)
}

// Slider renders value on a lo..hi track, e.g. "■■■□□ 3".
func Slider(value, lo, hi int) string {
	if hi < lo {
		lo, hi = hi, lo
	}
	filled := value - lo + 1
	if filled < 0 {
		filled = 0
	}
	width := hi - lo + 1
	if filled > width {
		filled = width
	}
	return strings.Repeat("■", filled) + strings.Repeat("□", width-filled) + fmt.Sprintf(" %d", value)
}

// Selector renders the discrete choices with the current one bracketed,
// e.g. " 1  2 [3] 4  5 ".
func Selector(value, lo, hi int) string {
	var b strings.Builder
	for v := lo; v <= hi; v++ {
		if v == value {
			fmt.Fprintf(&b, "[%d]", v)
		} else {
			fmt.Fprintf(&b, " %d ", v)
		}
	}
	return b.String()
}

// Separator draws a muted rule of the given width.
func (s Styles) Separator(width int) string {
	if width < 7 {
		return s.Muted.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return s.Muted.Render(left + " ◆ " + right)
}
