package ephem

import (
	"context"
	"fmt"
	"time"

	"github.com/litescript/ls-horoscope/internal/astro"
)

// ApproxProvider computes unit Sun/Earth vectors from a low-precision solar
// model. It needs no network and covers only the Sun-Earth pair.
type ApproxProvider struct{}

// NewApproxProvider creates an offline provider.
func NewApproxProvider() *ApproxProvider {
	return &ApproxProvider{}
}

// Name implements Provider.
func (p *ApproxProvider) Name() string {
	return "approx"
}

// Available implements Provider.
func (p *ApproxProvider) Available(target, center TargetID) bool {
	return (target == NAIFSun && center == NAIFEarth) || (target == NAIFEarth && center == NAIFSun)
}

// Vector implements Provider.
func (p *ApproxProvider) Vector(ctx context.Context, target, center TargetID, t time.Time) (astro.Vec3, error) {
	if err := ctx.Err(); err != nil {
		return astro.Vec3{}, err
	}
	switch {
	case target == NAIFSun && center == NAIFEarth:
		return astro.VecFromLongitude(astro.SunApparentLongitude(t), 1), nil
	case target == NAIFEarth && center == NAIFSun:
		return astro.VecFromLongitude(astro.EarthHeliocentricLongitude(t), 1), nil
	default:
		return astro.Vec3{}, fmt.Errorf("%s relative to %s: %w", target, center, ErrUnavailable)
	}
}
