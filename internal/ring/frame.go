package ring

import (
	"github.com/san-kum/psyops/internal/assess"
	"github.com/san-kum/psyops/internal/viz"
)

// Geometry places the ring. Center and Radius are in the renderer's units
// (dots when drawn on a viz.Canvas).
type Geometry struct {
	Center   Point
	Radius   float64
	Segments int
	MaxScale float64
}

// Frame is every draw instruction needed for one redraw.
type Frame struct {
	Value    float64
	Progress float64
	Arc      []Segment
	Track    []Segment
	Color    assess.Color
	Label    string
}

// CanvasGeometry fits a ring inside a canvas, leaving a one dot margin.
func CanvasGeometry(c *viz.Canvas, segments int) Geometry {
	w, h := c.Dots()
	r := float64(min(w, h))/2 - 1
	if r < 1 {
		r = 1
	}
	return Geometry{
		Center:   Point{X: float64(w-1) / 2, Y: float64(h-1) / 2},
		Radius:   r,
		Segments: segments,
		MaxScale: DefaultMaxScale,
	}
}

// Frame builds the draw instructions for a displayed value.
func (g Geometry) Frame(animated float64) Frame {
	maxScale := g.MaxScale
	if maxScale <= 0 {
		maxScale = DefaultMaxScale
	}
	p := Progress(animated, maxScale)
	return Frame{
		Value:    animated,
		Progress: p,
		Arc:      Arc(p, g.Center, g.Radius, g.Segments),
		Track:    Arc(1, g.Center, g.Radius, g.Segments),
		Color:    ColorBucket(animated),
		Label:    Label(animated, maxScale),
	}
}

// DrawTrack rasters the background ring as sparse dots.
func (f Frame) DrawTrack(c *viz.Canvas) {
	for i, s := range f.Track {
		if i%3 == 0 {
			c.Plot(s.From.X, s.From.Y)
		}
	}
}

// DrawArc rasters the progress arc. A zero sweep draws nothing.
func (f Frame) DrawArc(c *viz.Canvas) {
	if f.Progress == 0 {
		return
	}
	for _, s := range f.Arc {
		c.Line(s.From.X, s.From.Y, s.To.X, s.To.Y)
	}
}
