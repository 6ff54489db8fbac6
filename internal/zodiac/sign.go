// Package zodiac maps ecliptic longitudes onto the twelve-sign wheel and
// derives whole-sign houses and major aspects relative to a natal Sun.
package zodiac

import (
	"math"

	"github.com/litescript/ls-horoscope/internal/astro"
)

// SignWidth is the angular width of each sign in degrees.
const SignWidth = 30.0

// SignCount is the number of signs on the wheel.
const SignCount = 12

// Sign is a zodiac sign index, 0 (Aries) through 11 (Pisces).
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [SignCount]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// SignOf returns the sign containing an ecliptic longitude.
// The longitude is normalized first, so 360° lands in Aries rather than a
// thirteenth sign.
func SignOf(longitude float64) Sign {
	idx := int(math.Floor(astro.NormalizeDegrees(longitude) / SignWidth))
	if idx >= SignCount {
		idx = SignCount - 1
	}
	return Sign(idx)
}

// Valid reports whether s is one of the twelve signs.
func (s Sign) Valid() bool {
	return s >= Aries && s <= Pisces
}

// Name returns the sign's name.
func (s Sign) Name() string {
	if !s.Valid() {
		return "Unknown"
	}
	return signNames[s]
}

// String implements fmt.Stringer.
func (s Sign) String() string {
	return s.Name()
}

// Start returns the longitude where the sign begins.
func (s Sign) Start() float64 {
	return float64(s) * SignWidth
}

// Midpoint returns the longitude halfway through the sign. A natal Sun is
// referenced at its sign's midpoint when aspects are measured.
func (s Sign) Midpoint() float64 {
	return s.Start() + SignWidth/2
}

// SignNames returns a copy of the sign name table in wheel order.
func SignNames() [SignCount]string {
	return signNames
}
