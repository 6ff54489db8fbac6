package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/litescript/ls-horoscope/internal/biorhythm"
	"github.com/litescript/ls-horoscope/internal/config"
	"github.com/litescript/ls-horoscope/internal/forecast"
	"github.com/litescript/ls-horoscope/internal/logging"
	"github.com/litescript/ls-horoscope/internal/natal"
	"github.com/litescript/ls-horoscope/internal/sky"
)

// app bundles the configured collaborators for one command run.
type app struct {
	cfg      config.Config
	log      *logging.Logger
	loc      *time.Location
	clock    clockwork.Clock
	out      io.Writer
	color    bool
	resolver *sky.Resolver
	composer *forecast.Composer
	bio      *biorhythm.Calculator
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	log := cfg.Logger(cmd.ErrOrStderr())
	provider, err := cfg.Provider(log)
	if err != nil {
		return nil, err
	}
	log.Debug("configured", "ephemeris", provider.Name(), "timezone", loc.String())

	out := cmd.OutOrStdout()
	return &app{
		cfg:      cfg,
		log:      log,
		loc:      loc,
		clock:    clock,
		out:      out,
		color:    useColor(cfg.Color, out),
		resolver: sky.NewResolver(provider, cfg.Horizons.Concurrency, log),
		composer: forecast.DefaultComposer(),
		bio:      biorhythm.NewCalculator(clock),
	}, nil
}

// useColor resolves the color mode against the output and NO_COLOR.
func useColor(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if termenv.EnvNoColor() {
		return false
	}
	f, ok := out.(*os.File)
	return ok && isTerminal(f.Fd())
}

// parseBirth validates a --birth value against the configured zone and clock.
func (a *app) parseBirth(s string) (time.Time, error) {
	return natal.ParseBirthDate(s, a.loc, a.clock.Now())
}

// today is local midnight of the current day.
func (a *app) today() time.Time {
	now := a.clock.Now().In(a.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, a.loc)
}

// buildReport resolves the natal Sun and today's sky, then composes the
// forecast with the biorhythm reading for now.
func (a *app) buildReport(ctx context.Context, birth time.Time) (forecast.Report, error) {
	nc, err := a.resolver.NatalContext(ctx, birth)
	if err != nil {
		return forecast.Report{}, err
	}

	bodies, err := a.resolver.Today(ctx, forecast.Roster(), a.today())
	if err != nil {
		return forecast.Report{}, fmt.Errorf("resolve today's positions: %w", err)
	}

	rep := a.composer.Compose(bodies, nc)
	rep.GeneratedAt = a.clock.Now()
	rep.Birth = birth
	bio := a.composer.DescribeBiorhythm(a.bio.Now(birth))
	rep.Biorhythm = &bio

	if len(rep.Unresolved) > 0 {
		a.log.Info("report has unresolved bodies", "bodies", rep.Unresolved)
	}
	return rep, nil
}

// renderReport builds and renders a report as text.
func (a *app) renderReport(ctx context.Context, birth time.Time) (string, error) {
	rep, err := a.buildReport(ctx, birth)
	if err != nil {
		return "", err
	}
	return forecast.NewRenderer(a.out, a.color).Render(rep), nil
}
