// Package natal validates birth dates and holds the natal context every
// house and aspect computation is measured against.
package natal

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/litescript/ls-horoscope/internal/astro"
	"github.com/litescript/ls-horoscope/internal/zodiac"
)

// MinYear is the earliest supported birth year.
const MinYear = 1900

// MaxYear is the latest year a date may be charted at.
const MaxYear = 2500

// DateLayout is the accepted birth date format.
const DateLayout = "2006-01-02"

// ErrInvalidBirthDate is returned for dates that are malformed, not real
// calendar days, or outside the supported range.
var ErrInvalidBirthDate = errors.New("invalid birth date")

// ParseBirthDate parses a YYYY-MM-DD birth date and returns local midnight
// of that day in loc. now bounds the range from above.
func ParseBirthDate(s string, loc *time.Location, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD calendar date", ErrInvalidBirthDate, s)
	}
	return NewBirthDate(t.Year(), t.Month(), t.Day(), loc, now)
}

// NewBirthDate validates a year/month/day triple and returns local midnight
// of that day in loc.
func NewBirthDate(year int, month time.Month, day int, loc *time.Location, now time.Time) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, loc)
	// time.Date normalizes overflow (Feb 30 -> Mar 2); a real date survives unchanged
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d does not exist", ErrInvalidBirthDate, year, int(month), day)
	}
	if year < MinYear {
		return time.Time{}, fmt.Errorf("%w: year %d is before %d", ErrInvalidBirthDate, year, MinYear)
	}
	if t.After(now) {
		return time.Time{}, fmt.Errorf("%w: %s is in the future", ErrInvalidBirthDate, t.Format(DateLayout))
	}
	return t, nil
}

// Context is the natal reference for one report run. It is built once and
// not modified afterwards.
type Context struct {
	Birth        time.Time   `json:"birth"`
	SunLongitude float64     `json:"sun_longitude"`
	SunSign      zodiac.Sign `json:"sun_sign"`
}

// New builds a natal context from the Sun's ecliptic longitude at birth.
func New(sunLongitude float64, birth time.Time) (Context, error) {
	if math.IsNaN(sunLongitude) || math.IsInf(sunLongitude, 0) {
		return Context{}, fmt.Errorf("natal sun longitude: %w", astro.ErrInvalidPosition)
	}
	lon := astro.NormalizeDegrees(sunLongitude)
	return Context{
		Birth:        birth,
		SunLongitude: lon,
		SunSign:      zodiac.SignOf(lon),
	}, nil
}

// ReferenceLongitude is the point aspects are measured from: the midpoint of
// the natal Sun sign, not the Sun's exact longitude.
func (c Context) ReferenceLongitude() float64 {
	return c.SunSign.Midpoint()
}

// SunFromEarth converts the Earth's heliocentric longitude to the Sun's
// geocentric longitude.
func SunFromEarth(earthLongitude float64) float64 {
	return astro.NormalizeDegrees(earthLongitude + 180)
}
