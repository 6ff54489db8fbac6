package ephem

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/litescript/ls-horoscope/internal/astro"
)

// FileDateLayout is the layout of the optional date key in a fixture file.
const FileDateLayout = "2006-01-02"

// fileData is the on-disk fixture format:
//
//	date = "2024-03-21"   # optional; other days are unavailable
//
//	[[vector]]
//	target = 499
//	center = 399
//	longitude = 45.0      # or x, y, z
type fileData struct {
	Date    string      `toml:"date"`
	Vectors []fileEntry `toml:"vector"`
}

type fileEntry struct {
	Target    int      `toml:"target"`
	Center    int      `toml:"center"`
	Longitude *float64 `toml:"longitude"`
	X         *float64 `toml:"x"`
	Y         *float64 `toml:"y"`
	Z         *float64 `toml:"z"`
}

type pairKey struct {
	target TargetID
	center TargetID
}

// FileProvider serves fixed vectors from a TOML fixture.
type FileProvider struct {
	date    string
	vectors map[pairKey]astro.Vec3
}

// LoadFile reads a fixture file from disk.
func LoadFile(path string) (*FileProvider, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ephemeris file: %w", err)
	}
	defer f.Close()

	p, err := ParseFile(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ParseFile decodes a fixture from r.
func ParseFile(r io.Reader) (*FileProvider, error) {
	var data fileData
	if err := toml.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode ephemeris file: %w", err)
	}

	if data.Date != "" {
		if _, err := time.Parse(FileDateLayout, data.Date); err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", data.Date, err)
		}
	}

	p := &FileProvider{date: data.Date, vectors: make(map[pairKey]astro.Vec3, len(data.Vectors))}
	for i, e := range data.Vectors {
		key := pairKey{target: TargetID(e.Target), center: TargetID(e.Center)}
		if key.target == key.center {
			return nil, fmt.Errorf("vector %d: target and center are both %d", i, e.Target)
		}

		var v astro.Vec3
		switch {
		case e.Longitude != nil:
			v = astro.VecFromLongitude(*e.Longitude, 1)
		case e.X != nil && e.Y != nil:
			v = astro.Vec3{X: *e.X, Y: *e.Y}
			if e.Z != nil {
				v.Z = *e.Z
			}
		default:
			return nil, fmt.Errorf("vector %d (%s): needs longitude or x and y", i, key.target)
		}
		p.vectors[key] = v
	}
	return p, nil
}

// Name implements Provider.
func (p *FileProvider) Name() string {
	return "file"
}

// Available implements Provider.
func (p *FileProvider) Available(target, center TargetID) bool {
	_, ok := p.vectors[pairKey{target, center}]
	return ok
}

// Vector implements Provider. When the file carries a date, only that
// calendar day (in t's location) is served.
func (p *FileProvider) Vector(ctx context.Context, target, center TargetID, t time.Time) (astro.Vec3, error) {
	if err := ctx.Err(); err != nil {
		return astro.Vec3{}, err
	}
	if p.date != "" && t.Format(FileDateLayout) != p.date {
		return astro.Vec3{}, fmt.Errorf("file covers %s, not %s: %w", p.date, t.Format(FileDateLayout), ErrUnavailable)
	}
	v, ok := p.vectors[pairKey{target, center}]
	if !ok {
		return astro.Vec3{}, fmt.Errorf("%s relative to %s: %w", target, center, ErrUnavailable)
	}
	return v, nil
}
