package ephem

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/litescript/ls-horoscope/internal/astro"
	"github.com/litescript/ls-horoscope/internal/logging"
)

// Chain tries each provider in order and returns the first vector obtained.
type Chain struct {
	providers []Provider
	log       *logging.Logger
}

// NewChain creates a chain over providers.
func NewChain(log *logging.Logger, providers ...Provider) *Chain {
	return &Chain{providers: providers, log: logging.OrDiscard(log)}
}

// Name implements Provider.
func (c *Chain) Name() string {
	names := make([]string, len(c.providers))
	for i, p := range c.providers {
		names[i] = p.Name()
	}
	return "chain(" + strings.Join(names, ",") + ")"
}

// Available implements Provider.
func (c *Chain) Available(target, center TargetID) bool {
	for _, p := range c.providers {
		if p.Available(target, center) {
			return true
		}
	}
	return false
}

// Vector implements Provider. Provider errors are logged and the next
// provider is tried; context cancellation stops the chain.
func (c *Chain) Vector(ctx context.Context, target, center TargetID, t time.Time) (astro.Vec3, error) {
	var errs []error
	for _, p := range c.providers {
		if !p.Available(target, center) {
			continue
		}
		v, err := p.Vector(ctx, target, center, t)
		if err == nil {
			return v, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return astro.Vec3{}, ctxErr
		}
		c.log.Warn("ephemeris provider failed", "provider", p.Name(), "target", target, "center", center, "err", err)
		errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
	}
	if len(errs) == 0 {
		return astro.Vec3{}, fmt.Errorf("%s relative to %s: no provider: %w", target, center, ErrUnavailable)
	}
	return astro.Vec3{}, fmt.Errorf("%s relative to %s: %w", target, center, errors.Join(append([]error{ErrUnavailable}, errs...)...))
}

// Options configures NewProvider.
type Options struct {
	File     string // fixture path; required for ModeFile, tried first in ModeAuto
	Horizons []HorizonsOption
	Log      *logging.Logger
}

// NewProvider builds the provider for mode.
func NewProvider(mode Mode, opts Options) (Provider, error) {
	log := logging.OrDiscard(opts.Log)
	horizons := func() Provider {
		return NewHorizonsProvider(append([]HorizonsOption{WithLogger(log)}, opts.Horizons...)...)
	}

	switch mode {
	case ModeHorizons:
		return horizons(), nil
	case ModeApprox:
		return NewApproxProvider(), nil
	case ModeFile:
		if opts.File == "" {
			return nil, fmt.Errorf("ephemeris mode file needs a file path")
		}
		return LoadFile(opts.File)
	case ModeAuto:
		var providers []Provider
		if opts.File != "" {
			fp, err := LoadFile(opts.File)
			if err != nil {
				return nil, err
			}
			providers = append(providers, fp)
		}
		providers = append(providers, horizons(), NewApproxProvider())
		return NewChain(log, providers...), nil
	default:
		return nil, fmt.Errorf("unsupported ephemeris mode %s", mode)
	}
}
