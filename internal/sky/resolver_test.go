package sky

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litescript/ls-horoscope/internal/astro"
	"github.com/litescript/ls-horoscope/internal/ephem"
	"github.com/litescript/ls-horoscope/internal/forecast"
	"github.com/litescript/ls-horoscope/internal/zodiac"
)

// fakeProvider serves fixed longitudes per target and tracks concurrency.
type fakeProvider struct {
	mu       sync.Mutex
	lons     map[ephem.TargetID]float64
	fail     map[ephem.TargetID]error
	delay    time.Duration
	inFlight atomic.Int32
	peak     atomic.Int32
}

func (f *fakeProvider) Name() string                       { return "fake" }
func (f *fakeProvider) Available(_, _ ephem.TargetID) bool { return true }
func (f *fakeProvider) Vector(ctx context.Context, target, center ephem.TargetID, _ time.Time) (astro.Vec3, error) {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		p := f.peak.Load()
		if n <= p || f.peak.CompareAndSwap(p, n) {
			break
		}
	}
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return astro.Vec3{}, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.fail[target]; ok {
		return astro.Vec3{}, err
	}
	lon, ok := f.lons[target]
	if !ok {
		return astro.Vec3{}, ephem.ErrUnavailable
	}
	return astro.VecFromLongitude(lon, 1), nil
}

func TestResolver_Today(t *testing.T) {
	p := &fakeProvider{
		lons: map[ephem.TargetID]float64{
			ephem.NAIFSun:  195,
			ephem.NAIFMoon: 0.5,
			ephem.NAIFMars: 45,
		},
		fail: map[ephem.TargetID]error{
			ephem.NAIFVenus: errors.New("horizons returned status 503"),
		},
		delay: 5 * time.Millisecond,
	}
	r := NewResolver(p, 3, nil)

	got, err := r.Today(context.Background(), forecast.Roster(), time.Now())
	require.NoError(t, err)
	require.Len(t, got, 10)

	byName := map[string]forecast.Body{}
	for _, b := range got {
		byName[b.Name] = b
	}
	assert.True(t, byName["Sun"].Resolved)
	assert.InDelta(t, 195, byName["Sun"].Longitude, 1e-9)
	assert.InDelta(t, 0.5, byName["Moon"].Longitude, 1e-9)
	assert.True(t, byName["Mars"].Resolved)
	assert.False(t, byName["Venus"].Resolved, "failed lookup stays unresolved")
	assert.False(t, byName["Pluto"].Resolved)
	assert.Equal(t, "Sun", got[0].Name, "roster order is kept")

	assert.LessOrEqual(t, p.peak.Load(), int32(3))
}

func TestResolver_TodayCanceled(t *testing.T) {
	p := &fakeProvider{delay: time.Second}
	r := NewResolver(p, 1, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := r.Today(ctx, forecast.Roster(), time.Now())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestResolver_NatalSun(t *testing.T) {
	// Earth at 315° heliocentric puts the Sun at 135°, in Cancer
	p := &fakeProvider{lons: map[ephem.TargetID]float64{ephem.NAIFEarth: 315}}
	r := NewResolver(p, 0, nil)
	birth := time.Date(1990, 7, 4, 0, 0, 0, 0, time.UTC)

	lon, err := r.NatalSun(context.Background(), birth)
	require.NoError(t, err)
	assert.InDelta(t, 135, lon, 1e-9)

	nc, err := r.NatalContext(context.Background(), birth)
	require.NoError(t, err)
	assert.Equal(t, zodiac.Cancer, nc.SunSign)
	assert.Equal(t, birth, nc.Birth)
}

func TestResolver_NatalSunUnavailable(t *testing.T) {
	r := NewResolver(&fakeProvider{}, 0, nil)

	_, err := r.NatalSun(context.Background(), time.Now())
	assert.ErrorIs(t, err, ephem.ErrUnavailable)

	_, err = r.NatalContext(context.Background(), time.Now())
	assert.Error(t, err)
}

func TestResolver_WithApprox(t *testing.T) {
	r := NewResolver(ephem.NewApproxProvider(), 0, nil)
	day := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

	got, err := r.Today(context.Background(), forecast.Roster(), day)
	require.NoError(t, err)

	assert.True(t, got[0].Resolved, "approx covers the Sun")
	assert.InDelta(t, 0, astro.Separation(got[0].Longitude, 0), 1)
	for _, b := range got[1:] {
		assert.False(t, b.Resolved, b.Name)
	}

	nc, err := r.NatalContext(context.Background(), time.Date(1990, 7, 4, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, zodiac.Cancer, nc.SunSign)
}
