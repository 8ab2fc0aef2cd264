package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/psyops/internal/ring"
)

// RingSVG renders a ring frame as a standalone SVG document. The frame's
// geometry is used as-is, so it should be built in SVG user units.
func RingSVG(f ring.Frame, size int, stroke, track string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, size, size, size, size))

	if len(f.Track) > 0 {
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="8" d="%s Z"/>
`, track, pathData(f.Track)))
	}
	if f.Progress > 0 && len(f.Arc) > 0 {
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="8" stroke-linecap="round" d="%s"/>
`, stroke, pathData(f.Arc)))
	}

	half := float64(size) / 2
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-family="sans-serif" font-size="20" text-anchor="middle" dominant-baseline="middle">%s</text>
`, half, half, stroke, f.Label))

	sb.WriteString("</svg>")
	return sb.String()
}

// SquareGeometry centers a ring in a size x size viewport with room for the stroke.
func SquareGeometry(size, segments int) ring.Geometry {
	half := float64(size) / 2
	return ring.Geometry{
		Center:   ring.Point{X: half, Y: half},
		Radius:   half - 10,
		Segments: segments,
		MaxScale: ring.DefaultMaxScale,
	}
}

func pathData(segs []ring.Segment) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("M%.1f,%.1f", segs[0].From.X, segs[0].From.Y))
	for _, s := range segs {
		sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", s.To.X, s.To.Y))
	}
	return sb.String()
}
