// Package forecast composes zodiac positions, houses, aspects and biorhythm
// readings into a daily report.
package forecast

import (
	"errors"
	"fmt"
)

// SunName is the name of the body whose house is the day's focus.
const SunName = "Sun"

// ErrUnresolvedLongitude marks a body whose position could not be determined.
var ErrUnresolvedLongitude = errors.New("unresolved longitude")

// Body is one celestial body in a report cycle. Longitude is only
// meaningful when Resolved is true.
type Body struct {
	Name       string  `json:"name"`
	ExternalID string  `json:"external_id"` // Horizons COMMAND identifier
	Theme      string  `json:"theme"`
	Longitude  float64 `json:"longitude"`
	Resolved   bool    `json:"resolved"`
}

// Position returns the body's longitude, or ErrUnresolvedLongitude.
func (b Body) Position() (float64, error) {
	if !b.Resolved {
		return 0, fmt.Errorf("%s: %w", b.Name, ErrUnresolvedLongitude)
	}
	return b.Longitude, nil
}

// WithLongitude returns a resolved copy of the body.
func (b Body) WithLongitude(lon float64) Body {
	b.Longitude = lon
	b.Resolved = true
	return b
}

// Unresolved returns a copy of the body with its position cleared.
func (b Body) Unresolved() Body {
	b.Longitude = 0
	b.Resolved = false
	return b
}

// Roster returns the ten bodies a forecast covers, in report order, with no
// positions resolved.
func Roster() []Body {
	return []Body{
		{Name: SunName, ExternalID: "10", Theme: "your identity and ego"},
		{Name: "Moon", ExternalID: "301", Theme: "your emotions and security"},
		{Name: "Mercury", ExternalID: "199", Theme: "communication and thinking"},
		{Name: "Venus", ExternalID: "299", Theme: "love and money"},
		{Name: "Mars", ExternalID: "499", Theme: "energy and drive"},
		{Name: "Jupiter", ExternalID: "599", Theme: "luck and expansion"},
		{Name: "Saturn", ExternalID: "699", Theme: "discipline and responsibility"},
		{Name: "Uranus", ExternalID: "799", Theme: "change and surprise"},
		{Name: "Neptune", ExternalID: "899", Theme: "dreams and intuition"},
		{Name: "Pluto", ExternalID: "999", Theme: "power and transformation"},
	}
}
