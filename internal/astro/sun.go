package astro

import (
	"math"
	"time"
)

// SunApparentLongitude returns the Sun's apparent geocentric ecliptic
// longitude in degrees, range [0, 360).
// Uses a simplified solar ephemeris based on the Astronomical Almanac.
// Accuracy: ~0.01 degrees, far inside a 30° sign.
func SunApparentLongitude(t time.Time) float64 {
	T := julianCenturies(t)

	// Mean longitude of the Sun (degrees)
	L0 := NormalizeDegrees(280.46646 + 36000.76983*T + 0.0003032*T*T)

	// Mean anomaly of the Sun (degrees)
	M := NormalizeDegrees(357.52911 + 35999.05029*T - 0.0001537*T*T)
	Mrad := degToRad(M)

	// Equation of center (degrees)
	C := (1.914602 - 0.004817*T - 0.000014*T*T) * math.Sin(Mrad)
	C += (0.019993 - 0.000101*T) * math.Sin(2*Mrad)
	C += 0.000289 * math.Sin(3*Mrad)

	// Aberration and nutation
	omega := 125.04 - 1934.136*T
	return NormalizeDegrees(L0 + C - 0.00569 - 0.00478*math.Sin(degToRad(omega)))
}

// EarthHeliocentricLongitude returns the Earth's heliocentric ecliptic
// longitude, which is the Sun's geocentric longitude turned half a circle.
func EarthHeliocentricLongitude(t time.Time) float64 {
	return NormalizeDegrees(SunApparentLongitude(t) + 180)
}
