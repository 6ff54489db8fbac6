package forecast

import (
	"fmt"

	"github.com/litescript/ls-horoscope/internal/biorhythm"
	"github.com/litescript/ls-horoscope/internal/natal"
	"github.com/litescript/ls-horoscope/internal/zodiac"
)

// Composer turns resolved bodies and a natal context into a Report.
// It holds no mutable state and is safe for concurrent use.
type Composer struct {
	lex Lexicon
}

// NewComposer creates a composer using the given lexicon.
func NewComposer(lex Lexicon) *Composer {
	return &Composer{lex: lex.clone()}
}

// DefaultComposer creates a composer with the standard phrasing.
func DefaultComposer() *Composer {
	return NewComposer(DefaultLexicon())
}

// Compose builds the astrological part of a report. Unresolved bodies get a
// transit line saying so and are left out of aspects and the tally.
func (c *Composer) Compose(bodies []Body, nc natal.Context) Report {
	ref := nc.ReferenceLongitude()
	r := Report{
		SunSign:  nc.SunSign.Name(),
		Transits: make([]Transit, 0, len(bodies)),
	}

	for _, b := range bodies {
		lon, err := b.Position()
		if err != nil {
			r.Unresolved = append(r.Unresolved, b.Name)
			t := Transit{Body: b.Name, BodyTheme: b.Theme}
			t.Text = c.transitStatement(t)
			r.Transits = append(r.Transits, t)
			continue
		}

		sign := zodiac.SignOf(lon)
		house := zodiac.HouseOf(sign, nc.SunSign)
		t := Transit{
			Body:       b.Name,
			BodyTheme:  b.Theme,
			Longitude:  lon,
			Sign:       sign.Name(),
			House:      int(house),
			Ordinal:    house.Ordinal(),
			HouseTheme: house.Theme(),
			Resolved:   true,
		}
		t.Text = c.transitStatement(t)
		r.Transits = append(r.Transits, t)

		aspect := zodiac.Classify(lon, ref)
		if aspect != zodiac.AspectNone {
			a := AspectLine{
				Body:      b.Name,
				BodyTheme: b.Theme,
				Aspect:    aspect.String(),
				Phrase:    aspect.Phrase(),
			}
			a.Text = aspectStatement(a)
			r.Aspects = append(r.Aspects, a)
		}
		switch aspect.Polarity() {
		case zodiac.Positive:
			r.PositiveAspects++
		case zodiac.Negative:
			r.NegativeAspects++
		}

		if b.Name == SunName {
			r.FocusHouse = zodiac.HouseThemeAt(zodiac.FocusHouseIndex(sign, nc.SunSign))
		}
	}

	r.QuietDay = len(r.Aspects) == 0
	if r.QuietDay {
		r.QuietDayText = c.lex.QuietDay
	}
	r.Sentiment = sentimentOf(r.PositiveAspects, r.NegativeAspects)
	r.SentimentText = c.lex.Sentiments[r.Sentiment]
	if r.FocusHouse != "" {
		r.FocusText = fmt.Sprintf("%s %s.", c.lex.FocusPrefix, r.FocusHouse)
	}
	return r
}

// transitStatement returns the sentence for one transit line.
func (c *Composer) transitStatement(t Transit) string {
	if !t.Resolved {
		return fmt.Sprintf("- %s: %s, so its influence on %s is not shown.", t.Body, c.lex.Unresolved, t.BodyTheme)
	}
	return fmt.Sprintf("- %s is transiting your %s House of %s, affecting %s.",
		t.Body, t.Ordinal, t.HouseTheme, t.BodyTheme)
}

func aspectStatement(a AspectLine) string {
	return fmt.Sprintf("- %s %s %s.", a.Body, a.Phrase, a.BodyTheme)
}

func sentimentOf(positive, negative int) Sentiment {
	switch {
	case positive > negative:
		return SentimentPositive
	case negative > positive:
		return SentimentChallenging
	default:
		return SentimentBalanced
	}
}

// DescribeBiorhythm attaches band, phrasing and a chart bar to each cycle.
func (c *Composer) DescribeBiorhythm(reading biorhythm.Reading) BiorhythmSummary {
	s := BiorhythmSummary{Reading: reading}
	for _, cycle := range biorhythm.Cycles {
		v := reading.Value(cycle)
		band := biorhythm.BandOf(v)
		s.Cycles = append(s.Cycles, CycleNote{
			Cycle: cycle.String(),
			Value: v,
			Band:  band.String(),
			Text:  c.lex.cyclePhrase(cycle, band),
			Bar:   biorhythm.Bar(v),
		})
	}
	return s
}

// Lexicon returns a copy of the composer's phrasing.
func (c *Composer) Lexicon() Lexicon {
	return c.lex.clone()
}
