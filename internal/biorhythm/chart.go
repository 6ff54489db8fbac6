package biorhythm

import (
	"math"
	"strings"
)

// Band thresholds.
const (
	HighThreshold = 50.0
	LowThreshold  = -50.0
)

// Band is the narrative range a cycle value falls into.
type Band int

const (
	BandNeutral Band = iota
	BandFavorable
	BandUnfavorable
)

// String returns the band name.
func (b Band) String() string {
	switch b {
	case BandFavorable:
		return "favorable"
	case BandUnfavorable:
		return "unfavorable"
	default:
		return "neutral"
	}
}

// BandOf classifies a cycle value. Both thresholds are exclusive.
func BandOf(value float64) Band {
	switch {
	case value > HighThreshold:
		return BandFavorable
	case value < LowThreshold:
		return BandUnfavorable
	default:
		return BandNeutral
	}
}

// BarHalfWidth is the number of cells on each side of the bar's centre.
const BarHalfWidth = 20

// Bar fill characters.
const (
	BarPositive = '+'
	BarNegative = '-'
	BarCenter   = '|'
)

// BarUnits returns the signed number of filled cells for a value,
// round(value/100·20), clamped to ±BarHalfWidth.
func BarUnits(value float64) int {
	n := int(math.Round(value / 100 * BarHalfWidth))
	if n > BarHalfWidth {
		n = BarHalfWidth
	} else if n < -BarHalfWidth {
		n = -BarHalfWidth
	}
	return n
}

// Bar renders a value as a bracketed bar with the centre marker in the
// middle: positive values fill to the right, negative values to the left.
//
//	[          ----------|                    ]  -50
//	[                    |++++++++++          ]  +50
func Bar(value float64) string {
	n := BarUnits(value)

	var b strings.Builder
	b.Grow(2*BarHalfWidth + 3)
	b.WriteByte('[')
	if n >= 0 {
		b.WriteString(strings.Repeat(" ", BarHalfWidth))
		b.WriteByte(BarCenter)
		b.WriteString(strings.Repeat(string(BarPositive), n))
		b.WriteString(strings.Repeat(" ", BarHalfWidth-n))
	} else {
		b.WriteString(strings.Repeat(" ", BarHalfWidth+n))
		b.WriteString(strings.Repeat(string(BarNegative), -n))
		b.WriteByte(BarCenter)
		b.WriteString(strings.Repeat(" ", BarHalfWidth))
	}
	b.WriteByte(']')
	return b.String()
}
