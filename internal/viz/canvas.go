package viz

import (
	"math"
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
const brailleBase = 0x2800

var dotBits = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a monochrome dot raster backed by braille cells.
// Its addressable size in dots is (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	cells         [][]rune
}

func NewCanvas(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := &Canvas{Width: w, Height: h, cells: make([][]rune, h)}
	for i := range c.cells {
		c.cells[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Dots returns the canvas size in dots.
func (c *Canvas) Dots() (w, h int) {
	return c.Width * 2, c.Height * 4
}

// Set turns on the dot at (x, y). Dots outside the canvas are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.cells[row][col] |= dotBits[y%4][x%2]
}

// IsSet reports whether the dot at (x, y) is on.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return false
	}
	return c.cells[row][col]&dotBits[y%4][x%2] != 0
}

// Lit counts the dots that are on.
func (c *Canvas) Lit() int {
	n := 0
	for _, row := range c.cells {
		for _, r := range row {
			for bits := r - brailleBase; bits != 0; bits &= bits - 1 {
				n++
			}
		}
	}
	return n
}

func (c *Canvas) Clear() {
	for i := range c.cells {
		for j := range c.cells[i] {
			c.cells[i][j] = brailleBase
		}
	}
}

// Plot sets the dot nearest to a point given in dot coordinates.
func (c *Canvas) Plot(x, y float64) {
	c.Set(int(math.Round(x)), int(math.Round(y)))
}

// Line draws between two points in dot coordinates.
func (c *Canvas) Line(x0, y0, x1, y1 float64) {
	c.DrawLine(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)))
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Cell returns the braille rune at a cell position, blank when out of range.
func (c *Canvas) Cell(col, row int) rune {
	if col < 0 || row < 0 || col >= c.Width || row >= c.Height {
		return brailleBase
	}
	return c.cells[row][col]
}

// Rows returns one string per cell row.
func (c *Canvas) Rows() []string {
	rows := make([]string, len(c.cells))
	for i, row := range c.cells {
		rows[i] = string(row)
	}
	return rows
}

func (c *Canvas) String() string {
	return strings.Join(c.Rows(), "\n")
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
