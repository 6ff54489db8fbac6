// Package biorhythm computes the physical, emotional and intellectual
// cycles anchored at a birth instant.
package biorhythm

import (
	"math"
	"time"

	"github.com/jonboulle/clockwork"
)

// Cycle identifies one of the three biorhythm cycles.
type Cycle int

const (
	Physical Cycle = iota
	Emotional
	Intellectual
)

// Cycles lists every cycle in display order.
var Cycles = [...]Cycle{Physical, Emotional, Intellectual}

// Period returns the cycle length in days.
func (c Cycle) Period() float64 {
	switch c {
	case Physical:
		return 23
	case Emotional:
		return 28
	case Intellectual:
		return 33
	default:
		return 0
	}
}

// String returns the cycle name.
func (c Cycle) String() string {
	switch c {
	case Physical:
		return "Physical"
	case Emotional:
		return "Emotional"
	case Intellectual:
		return "Intellectual"
	default:
		return "Unknown"
	}
}

// Reading holds one sample of all three cycles, each in [-100, 100].
type Reading struct {
	DaysAlive    float64 `json:"days_alive"`
	Physical     float64 `json:"physical"`
	Emotional    float64 `json:"emotional"`
	Intellectual float64 `json:"intellectual"`
}

// Value returns the reading for a single cycle.
func (r Reading) Value(c Cycle) float64 {
	switch c {
	case Physical:
		return r.Physical
	case Emotional:
		return r.Emotional
	case Intellectual:
		return r.Intellectual
	default:
		return 0
	}
}

// DaysAlive returns the fractional number of days between birth and now.
// The span is taken from Unix seconds so it stays exact past the roughly
// 292 year limit of time.Duration.
func DaysAlive(birth, now time.Time) float64 {
	secs := now.Unix() - birth.Unix()
	nanos := now.Nanosecond() - birth.Nanosecond()
	return float64(secs)/secondsPerDay + float64(nanos)/nanosPerDay
}

const (
	secondsPerDay = 86400
	nanosPerDay   = 864e11
)

// Sample returns 100·sin(2π·days/period).
func Sample(days, period float64) float64 {
	if period <= 0 {
		return 0
	}
	return 100 * math.Sin(2*math.Pi*days/period)
}

// Compute samples every cycle at now.
func Compute(birth, now time.Time) Reading {
	days := DaysAlive(birth, now)
	return Reading{
		DaysAlive:    days,
		Physical:     Sample(days, Physical.Period()),
		Emotional:    Sample(days, Emotional.Period()),
		Intellectual: Sample(days, Intellectual.Period()),
	}
}

// Calculator samples readings at the current instant of its clock.
type Calculator struct {
	clock clockwork.Clock
}

// NewCalculator creates a calculator. A nil clock uses real time.
func NewCalculator(clock clockwork.Clock) *Calculator {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Calculator{clock: clock}
}

// Now returns the reading for birth at the clock's current time.
func (c *Calculator) Now(birth time.Time) Reading {
	return Compute(birth, c.clock.Now())
}

// Series returns one reading per day starting at from, for days entries.
func (c *Calculator) Series(birth, from time.Time, days int) []Reading {
	if days <= 0 {
		return nil
	}
	out := make([]Reading, days)
	for i := range out {
		out[i] = Compute(birth, from.AddDate(0, 0, i))
	}
	return out
}
