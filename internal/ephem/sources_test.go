package ephem

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litescript/ls-horoscope/internal/astro"
	"github.com/litescript/ls-horoscope/internal/logging"
)

func TestApproxProvider(t *testing.T) {
	p := NewApproxProvider()
	ctx := context.Background()
	at := time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)

	sun, err := p.Vector(ctx, NAIFSun, NAIFEarth, at)
	require.NoError(t, err)
	earth, err := p.Vector(ctx, NAIFEarth, NAIFSun, at)
	require.NoError(t, err)

	sunLon, err := sun.Longitude()
	require.NoError(t, err)
	earthLon, err := earth.Longitude()
	require.NoError(t, err)

	assert.InDelta(t, 90, sunLon, 1, "sun near 90° at the June solstice")
	assert.InDelta(t, 180, astro.Separation(sunLon, earthLon), 0.1)

	assert.False(t, p.Available(NAIFMars, NAIFEarth))
	_, err = p.Vector(ctx, NAIFMars, NAIFEarth, at)
	assert.ErrorIs(t, err, ErrUnavailable)
}

const fixture = `
date = "2024-03-21"

[[vector]]
target = 499
center = 399
longitude = 45.0

[[vector]]
target = 399
center = 10
x = -1.0
y = 0.0
z = 0.0
`

func TestParseFile(t *testing.T) {
	p, err := ParseFile(strings.NewReader(fixture))
	require.NoError(t, err)
	ctx := context.Background()
	day := time.Date(2024, 3, 21, 0, 0, 0, 0, time.UTC)

	assert.True(t, p.Available(NAIFMars, NAIFEarth))
	assert.False(t, p.Available(NAIFMars, NAIFSun))

	mars, err := p.Vector(ctx, NAIFMars, NAIFEarth, day)
	require.NoError(t, err)
	lon, err := mars.Longitude()
	require.NoError(t, err)
	assert.InDelta(t, 45, lon, 1e-9)

	earth, err := p.Vector(ctx, NAIFEarth, NAIFSun, day)
	require.NoError(t, err)
	lon, err = earth.Longitude()
	require.NoError(t, err)
	assert.InDelta(t, 180, lon, 1e-9)

	_, err = p.Vector(ctx, NAIFMars, NAIFEarth, day.AddDate(0, 0, 1))
	assert.ErrorIs(t, err, ErrUnavailable, "other days are outside the fixture")
	_, err = p.Vector(ctx, NAIFVenus, NAIFEarth, day)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestParseFile_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bad toml", "date = "},
		{"bad date", `date = "21/03/2024"`},
		{"no position", "[[vector]]\ntarget = 499\ncenter = 399\n"},
		{"self center", "[[vector]]\ntarget = 399\ncenter = 399\nlongitude = 1.0\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseFile(strings.NewReader(tc.input))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sky.toml")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o644))

	p, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "file", p.Name())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

// stubProvider returns a fixed vector or error.
type stubProvider struct {
	name  string
	vec   astro.Vec3
	err   error
	avail bool
	calls int
}

func (s *stubProvider) Name() string                 { return s.name }
func (s *stubProvider) Available(_, _ TargetID) bool { return s.avail }
func (s *stubProvider) Vector(context.Context, TargetID, TargetID, time.Time) (astro.Vec3, error) {
	s.calls++
	return s.vec, s.err
}

func TestChain(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("first success wins", func(t *testing.T) {
		a := &stubProvider{name: "a", err: errors.New("down"), avail: true}
		b := &stubProvider{name: "b", vec: astro.Vec3{X: 1}, avail: true}
		c := &stubProvider{name: "c", vec: astro.Vec3{Y: 1}, avail: true}

		v, err := NewChain(logging.Discard(), a, b, c).Vector(ctx, NAIFMars, NAIFEarth, now)
		require.NoError(t, err)
		assert.Equal(t, astro.Vec3{X: 1}, v)
		assert.Equal(t, 1, a.calls)
		assert.Zero(t, c.calls)
	})

	t.Run("unavailable providers are skipped", func(t *testing.T) {
		a := &stubProvider{name: "a", vec: astro.Vec3{X: 9}}
		b := &stubProvider{name: "b", vec: astro.Vec3{X: 1}, avail: true}

		v, err := NewChain(nil, a, b).Vector(ctx, NAIFMars, NAIFEarth, now)
		require.NoError(t, err)
		assert.Equal(t, astro.Vec3{X: 1}, v)
		assert.Zero(t, a.calls)
	})

	t.Run("all fail", func(t *testing.T) {
		a := &stubProvider{name: "a", err: errors.New("timeout"), avail: true}
		b := &stubProvider{name: "b", err: errors.New("no data"), avail: true}

		chain := NewChain(nil, a, b)
		_, err := chain.Vector(ctx, NAIFMars, NAIFEarth, now)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnavailable)
		assert.Contains(t, err.Error(), "timeout")
		assert.Contains(t, err.Error(), "no data")
		assert.Equal(t, "chain(a,b)", chain.Name())
	})

	t.Run("none available", func(t *testing.T) {
		chain := NewChain(nil, &stubProvider{name: "a"})
		assert.False(t, chain.Available(NAIFMars, NAIFEarth))
		_, err := chain.Vector(ctx, NAIFMars, NAIFEarth, now)
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(ModeApprox, Options{})
	require.NoError(t, err)
	assert.Equal(t, "approx", p.Name())

	p, err = NewProvider(ModeHorizons, Options{})
	require.NoError(t, err)
	assert.Equal(t, "horizons", p.Name())

	p, err = NewProvider(ModeAuto, Options{})
	require.NoError(t, err)
	assert.Equal(t, "chain(horizons,approx)", p.Name())

	_, err = NewProvider(ModeFile, Options{})
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "sky.toml")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o644))
	p, err = NewProvider(ModeAuto, Options{File: path})
	require.NoError(t, err)
	assert.Equal(t, "chain(file,horizons,approx)", p.Name())
}
