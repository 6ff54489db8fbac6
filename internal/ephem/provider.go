// Package ephem provides ecliptic position vectors for solar-system bodies.
package ephem

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/litescript/ls-horoscope/internal/astro"
)

// ErrUnavailable is returned when a provider cannot supply a vector for the
// requested target, center and time.
var ErrUnavailable = errors.New("ephemeris unavailable")

// Provider defines the interface for ephemeris data sources.
type Provider interface {
	// Name returns the provider name for display/logging.
	Name() string

	// Available reports whether this provider can supply vectors for target
	// relative to center.
	Available(target, center TargetID) bool

	// Vector returns the ecliptic position of target relative to center at t.
	// Only the direction is meaningful to callers; units are provider-specific.
	Vector(ctx context.Context, target, center TargetID, t time.Time) (astro.Vec3, error)
}

// Mode represents which ephemeris source to use.
type Mode int

const (
	ModeAuto     Mode = iota // Try Horizons, fall back to approx
	ModeHorizons             // JPL Horizons only
	ModeApprox               // Offline Sun model only
	ModeFile                 // Fixture file only
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeHorizons:
		return "horizons"
	case ModeApprox:
		return "approx"
	case ModeFile:
		return "file"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode string. The empty string selects ModeAuto.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "horizons":
		return ModeHorizons, nil
	case "approx":
		return ModeApprox, nil
	case "file":
		return ModeFile, nil
	default:
		return ModeAuto, fmt.Errorf("unknown ephemeris mode %q (want horizons, approx, file or auto)", s)
	}
}
