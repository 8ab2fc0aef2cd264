package assess

import "math"

// Level is the discrete likelihood bucket of a total.
type Level int

const (
	Low Level = iota
	Moderate
	Strong
	Overwhelming
)

func (l Level) String() string {
	switch l {
	case Low:
		return "low"
	case Moderate:
		return "moderate"
	case Strong:
		return "strong"
	case Overwhelming:
		return "overwhelming"
	}
	return "unknown"
}

// Color is a symbolic colour name; renderers map it to concrete values.
type Color string

const (
	Green    Color = "green"
	Yellow   Color = "yellow"
	LightRed Color = "light-red"
	Red      Color = "red"
)

// Band is one row of the interpretation table. Upper is inclusive.
type Band struct {
	Upper int
	Level Level
	Label string
	Color Color
}

// bands is checked in order; the first row whose Upper is >= the total wins.
// The last row is unbounded so any overflow lands in it.
var bands = []Band{
	{Upper: 25, Level: Low, Label: "Low likelihood of a PSYOP", Color: Green},
	{Upper: 50, Level: Moderate, Label: "Moderate likelihood—look deeper", Color: Yellow},
	{Upper: 75, Level: Strong, Label: "Strong likelihood—manipulation likely", Color: LightRed},
	{Upper: math.MaxInt, Level: Overwhelming, Label: "Overwhelming signs of a PSYOP", Color: Red},
}

// Interpret maps a total onto its band. It is defined for every int.
func Interpret(total int) Band {
	for _, b := range bands {
		if total <= b.Upper {
			return b
		}
	}
	return bands[len(bands)-1]
}

// Bands returns a copy of the band table in evaluation order.
func Bands() []Band {
	out := make([]Band, len(bands))
	copy(out, bands)
	return out
}
