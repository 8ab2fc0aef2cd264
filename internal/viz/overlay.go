package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Overlay merges two canvases of the same size into styled text. Cells with
// any foreground dot take the foreground style and also keep the background
// dots; the rest take the background style.
func Overlay(fg, bg *Canvas, fgStyle, bgStyle lipgloss.Style) string {
	rows := make([]string, fg.Height)
	for row := 0; row < fg.Height; row++ {
		var b strings.Builder
		for col := 0; col < fg.Width; col++ {
			f, k := fg.Cell(col, row), bg.Cell(col, row)
			if f != brailleBase {
				b.WriteString(fgStyle.Render(string(f | k)))
			} else {
				b.WriteString(bgStyle.Render(string(k)))
			}
		}
		rows[row] = b.String()
	}
	return strings.Join(rows, "\n")
}
