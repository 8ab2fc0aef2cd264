package viz

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/psyops/internal/assess"
)

func TestCanvasSetAndClear(t *testing.T) {
	c := NewCanvas(4, 2)
	w, h := c.Dots()
	if w != 8 || h != 8 {
		t.Fatalf("expected 8x8 dots, got %dx%d", w, h)
	}

	c.Set(0, 0)
	c.Set(7, 7)
	c.Set(-1, 3)
	c.Set(8, 0)
	if c.Lit() != 2 {
		t.Errorf("expected 2 lit dots, got %d", c.Lit())
	}
	if !c.IsSet(0, 0) || !c.IsSet(7, 7) {
		t.Error("expected corner dots set")
	}
	if rows := c.Rows(); rows[0][0:3] != "⠁" {
		t.Errorf("expected first cell ⠁, got %q", rows[0])
	}

	c.Clear()
	if c.Lit() != 0 {
		t.Errorf("expected empty canvas, got %d dots", c.Lit())
	}
}

func TestCanvasLine(t *testing.T) {
	c := NewCanvas(10, 3)
	c.Line(0, 0, 19, 0)
	if c.Lit() != 20 {
		t.Errorf("expected 20 dots on horizontal line, got %d", c.Lit())
	}
	c.Clear()
	c.DrawLine(0, 0, 5, 5)
	if c.Lit() != 6 {
		t.Errorf("expected 6 dots on diagonal, got %d", c.Lit())
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	lines := strings.Split(c.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	for _, l := range lines {
		if l != "⠀⠀⠀" {
			t.Errorf("expected blank braille row, got %q", l)
		}
	}
}

func TestWidgets(t *testing.T) {
	if got := Slider(3, 1, 5); got != "■■■□□ 3" {
		t.Errorf("unexpected slider %q", got)
	}
	if got := Slider(1, 1, 5); got != "■□□□□ 1" {
		t.Errorf("unexpected slider %q", got)
	}
	if got := Selector(3, 1, 5); got != " 1  2 [3] 4  5 " {
		t.Errorf("unexpected selector %q", got)
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("light").Name != "light" {
		t.Error("expected light theme")
	}
	if GetTheme("nope").Name != "dark" {
		t.Error("expected dark fallback")
	}
	if ThemeDark.Next().Name != "light" || ThemeLight.Next().Name != "dark" {
		t.Error("expected themes to cycle")
	}
	for _, th := range Themes {
		for _, b := range assess.Bands() {
			if _, ok := th.Bands[b.Color]; !ok {
				t.Errorf("theme %s has no colour for %s", th.Name, b.Color)
			}
		}
	}
}

func TestOverlayPlain(t *testing.T) {
	fg := NewCanvas(2, 1)
	bg := NewCanvas(2, 1)
	fg.Set(0, 0)
	bg.Set(1, 0)
	bg.Set(2, 0)

	plain := lipgloss.NewStyle()
	got := Overlay(fg, bg, plain, plain)
	if got != "⠉⠁" {
		t.Errorf("expected merged cells, got %q", got)
	}
}
