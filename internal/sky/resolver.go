// Package sky resolves geocentric ecliptic longitudes for forecast bodies.
package sky

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/litescript/ls-horoscope/internal/ephem"
	"github.com/litescript/ls-horoscope/internal/forecast"
	"github.com/litescript/ls-horoscope/internal/logging"
	"github.com/litescript/ls-horoscope/internal/natal"
)

// DefaultConcurrency bounds in-flight ephemeris lookups.
const DefaultConcurrency = 2

// Resolver fills in body positions from an ephemeris provider.
type Resolver struct {
	provider    ephem.Provider
	concurrency int
	log         *logging.Logger
}

// NewResolver creates a resolver. concurrency <= 0 selects DefaultConcurrency.
func NewResolver(p ephem.Provider, concurrency int, log *logging.Logger) *Resolver {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Resolver{provider: p, concurrency: concurrency, log: logging.OrDiscard(log)}
}

// Today returns a copy of bodies with each geocentric longitude at day
// resolved. Bodies that cannot be resolved are returned unresolved and
// logged; the only error is context cancellation.
func (r *Resolver) Today(ctx context.Context, bodies []forecast.Body, day time.Time) ([]forecast.Body, error) {
	out := make([]forecast.Body, len(bodies))
	sem := make(chan struct{}, r.concurrency)
	var wg sync.WaitGroup

	for i, b := range bodies {
		out[i] = b.Unresolved()

		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		}

		wg.Add(1)
		go func(i int, b forecast.Body) {
			defer wg.Done()
			defer func() { <-sem }()

			lon, err := r.geocentric(ctx, b, day)
			if err != nil {
				r.log.Warn("position unresolved", "body", b.Name, "err", err)
				return
			}
			r.log.Debug("position resolved", "body", b.Name, "longitude", lon)
			out[i] = b.WithLongitude(lon)
		}(i, b)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Resolver) geocentric(ctx context.Context, b forecast.Body, day time.Time) (float64, error) {
	target, err := ephem.ParseTargetID(b.ExternalID)
	if err != nil {
		return 0, err
	}
	vec, err := r.provider.Vector(ctx, target, ephem.NAIFEarth, day)
	if err != nil {
		return 0, err
	}
	return vec.Longitude()
}

// NatalSun returns the Sun's geocentric longitude at birth, taken from the
// Earth's heliocentric vector. Without it there is no natal sign, so any
// failure is returned.
func (r *Resolver) NatalSun(ctx context.Context, birth time.Time) (float64, error) {
	vec, err := r.provider.Vector(ctx, ephem.NAIFEarth, ephem.NAIFSun, birth)
	if err != nil {
		return 0, fmt.Errorf("natal sun: %w", err)
	}
	earthLon, err := vec.Longitude()
	if err != nil {
		return 0, fmt.Errorf("natal sun: %w", err)
	}
	return natal.SunFromEarth(earthLon), nil
}

// NatalContext resolves the natal Sun and builds the context for birth.
func (r *Resolver) NatalContext(ctx context.Context, birth time.Time) (natal.Context, error) {
	lon, err := r.NatalSun(ctx, birth)
	if err != nil {
		return natal.Context{}, err
	}
	return natal.New(lon, birth)
}
