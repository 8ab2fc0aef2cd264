package ring

import (
	"fmt"
	"math"

	"github.com/san-kum/psyops/internal/assess"
)

const (
	DefaultSegments = 100
	DefaultMaxScale = assess.MaxTotal

	// StartAngle is 12 o'clock with y growing downward.
	StartAngle = 3 * math.Pi / 2
)

type Point struct {
	X, Y float64
}

// Segment is one straight piece of the arc polyline.
type Segment struct {
	From, To Point
}

// Band interprets a displayed score by its truncated value. NaN counts as
// zero and out-of-range values saturate.
func Band(score float64) assess.Band {
	return assess.Interpret(truncate(score))
}

// ColorBucket returns the band colour for a displayed score.
func ColorBucket(score float64) assess.Color {
	return Band(score).Color
}

// Progress is animated/maxScale clamped into [0, 1].
func Progress(animated, maxScale float64) float64 {
	if maxScale <= 0 || math.IsNaN(animated) {
		return 0
	}
	p := animated / maxScale
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Arc splits the sweep progress*2π into exactly segments pieces starting at
// StartAngle. segments < 1 uses DefaultSegments.
func Arc(progress float64, center Point, radius float64, segments int) []Segment {
	if segments < 1 {
		segments = DefaultSegments
	}
	progress = Progress(progress, 1)
	sweep := progress * 2 * math.Pi

	out := make([]Segment, segments)
	for i := range out {
		a1 := StartAngle + sweep*float64(i)/float64(segments)
		a2 := StartAngle + sweep*float64(i+1)/float64(segments)
		out[i] = Segment{From: pointAt(center, radius, a1), To: pointAt(center, radius, a2)}
	}
	return out
}

// Label formats the displayed value as "n / max".
func Label(animated, maxScale float64) string {
	return fmt.Sprintf("%d / %s", truncate(math.Round(animated)), formatScale(maxScale))
}

func pointAt(c Point, r, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{X: c.X + r*cos, Y: c.Y + r*sin}
}

func truncate(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return int(v)
}

func formatScale(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", truncate(v))
	}
	return fmt.Sprintf("%g", v)
}
