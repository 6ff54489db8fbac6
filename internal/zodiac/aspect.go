package zodiac

import (
	"math"

	"github.com/litescript/ls-horoscope/internal/astro"
)

// Orbs in degrees.
const (
	OrbMajor = 8.0 // conjunction, opposition
	OrbMinor = 6.0 // trine, square, sextile
)

// Aspect classifies the angle between a body and the natal Sun.
type Aspect int

const (
	AspectNone Aspect = iota
	Conjunction
	Opposition
	Trine
	Square
	Sextile
)

// String returns the aspect name.
func (a Aspect) String() string {
	switch a {
	case Conjunction:
		return "conjunction"
	case Opposition:
		return "opposition"
	case Trine:
		return "trine"
	case Square:
		return "square"
	case Sextile:
		return "sextile"
	default:
		return "none"
	}
}

// Polarity is the tone an aspect contributes to the daily summary.
type Polarity int

const (
	Neutral Polarity = iota
	Positive
	Negative
)

// Polarity returns Positive for trines and sextiles, Negative for
// oppositions and squares, and Neutral otherwise.
func (a Aspect) Polarity() Polarity {
	switch a {
	case Trine, Sextile:
		return Positive
	case Opposition, Square:
		return Negative
	default:
		return Neutral
	}
}

// Phrase returns the statement fragment that sits between a body's name and
// its theme, e.g. "Mars <phrase> energy and drive.".
func (a Aspect) Phrase() string {
	switch a {
	case Conjunction:
		return "is in conjunction with your Sun, amplifying"
	case Opposition:
		return "opposes your Sun, creating tension with"
	case Trine:
		return "forms a harmonious trine with your Sun, supporting"
	case Square:
		return "forms a challenging square with your Sun, creating friction with"
	case Sextile:
		return "forms a gentle sextile with your Sun, offering opportunities for"
	default:
		return ""
	}
}

// AspectRule is one row of the classification table.
type AspectRule struct {
	Aspect Aspect
	Angle  float64
	Orb    float64
}

// Matches reports whether a separation falls inside the rule's orb,
// boundaries included.
func (r AspectRule) Matches(separation float64) bool {
	return math.Abs(separation-r.Angle) <= r.Orb
}

// aspectRules is evaluated in order; the first match wins.
var aspectRules = [...]AspectRule{
	{Aspect: Conjunction, Angle: 0, Orb: OrbMajor},
	{Aspect: Opposition, Angle: 180, Orb: OrbMajor},
	{Aspect: Trine, Angle: 120, Orb: OrbMinor},
	{Aspect: Square, Angle: 90, Orb: OrbMinor},
	{Aspect: Sextile, Angle: 60, Orb: OrbMinor},
}

// AspectRules returns the classification table in evaluation order.
func AspectRules() []AspectRule {
	rules := aspectRules
	return rules[:]
}

// Classify returns the aspect formed between a body's longitude and a
// reference longitude, or AspectNone. Argument order does not matter.
func Classify(bodyLongitude, referenceLongitude float64) Aspect {
	sep := astro.Separation(bodyLongitude, referenceLongitude)
	for _, r := range aspectRules {
		if r.Matches(sep) {
			return r.Aspect
		}
	}
	return AspectNone
}
