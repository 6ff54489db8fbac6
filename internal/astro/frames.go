// Package astro provides the angular geometry used to turn ephemeris vectors
// into ecliptic longitudes.
package astro

import (
	"errors"
	"math"
)

// AU is the Astronomical Unit in kilometers.
const AU = 149597870.7

// ErrInvalidPosition is returned when a position vector has no direction
// in the ecliptic plane.
var ErrInvalidPosition = errors.New("invalid position: zero or non-finite vector")

// Vec3 represents a 3D vector in any reference frame.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Scale returns the vector scaled by a factor.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Neg returns the vector pointing the opposite way.
func (v Vec3) Neg() Vec3 {
	return v.Scale(-1)
}

// Longitude returns the ecliptic longitude of the vector's projection onto
// the ecliptic plane.
func (v Vec3) Longitude() (float64, error) {
	return LongitudeFromCartesian(v.X, v.Y)
}

// LongitudeFromCartesian converts an ecliptic-plane position to a longitude
// in degrees, range [0, 360). The origin has no direction and is reported as
// ErrInvalidPosition rather than 0°.
func LongitudeFromCartesian(x, y float64) (float64, error) {
	if !isFinite(x) || !isFinite(y) || (x == 0 && y == 0) {
		return 0, ErrInvalidPosition
	}
	lon := radToDeg(math.Atan2(y, x))
	if lon < 0 {
		lon += 360
	}
	// atan2 of a tiny negative y can round up to exactly 360.
	if lon >= 360 {
		lon -= 360
	}
	return lon, nil
}

// VecFromLongitude returns a vector of length r in the ecliptic plane at the
// given longitude.
func VecFromLongitude(lonDeg, r float64) Vec3 {
	rad := degToRad(lonDeg)
	return Vec3{X: r * math.Cos(rad), Y: r * math.Sin(rad)}
}

// NormalizeDegrees normalizes an angle to [0, 360).
func NormalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}

// Separation returns the shorter arc between two longitudes, in [0, 180].
func Separation(a, b float64) float64 {
	d := math.Abs(NormalizeDegrees(a) - NormalizeDegrees(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
