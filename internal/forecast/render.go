package forecast

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/litescript/ls-horoscope/internal/biorhythm"
)

// Renderer formats reports as terminal text.
type Renderer struct {
	favorable   lipgloss.Style
	unfavorable lipgloss.Style
	heading     lipgloss.Style
}

// NewRenderer creates a text renderer for w. With color disabled the output
// is plain ASCII regardless of the terminal.
func NewRenderer(w io.Writer, color bool) *Renderer {
	lr := lipgloss.NewRenderer(w)
	if color {
		lr.SetColorProfile(termenv.ANSI)
	} else {
		lr.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{
		favorable:   lr.NewStyle().Foreground(lipgloss.Color("2")),
		unfavorable: lr.NewStyle().Foreground(lipgloss.Color("1")),
		heading:     lr.NewStyle().Bold(true),
	}
}

// Write renders the full report to w.
func (r *Renderer) Write(w io.Writer, rep Report) error {
	_, err := io.WriteString(w, r.Render(rep))
	return err
}

// Render returns the full report text.
func (r *Renderer) Render(rep Report) string {
	var b strings.Builder
	r.writeHoroscope(&b, rep)
	r.writePersonal(&b, rep)
	return b.String()
}

func (r *Renderer) writeHoroscope(b *strings.Builder, rep Report) {
	fmt.Fprintf(b, "\n%s\n", r.heading.Render("--- Horoscope Forecast for "+rep.SunSign+" ---"))

	b.WriteString("\n--- Planetary Transits by House ---\n")
	for _, t := range rep.Transits {
		b.WriteString(t.Text)
		b.WriteByte('\n')
	}

	b.WriteString("\n--- Major Aspects to your Sun ---\n")
	if rep.QuietDay {
		b.WriteString(rep.QuietDayText)
		b.WriteByte('\n')
	}
	for _, a := range rep.Aspects {
		b.WriteString(a.Text)
		b.WriteByte('\n')
	}
	b.WriteString("-------------------------------------\n")
}

func (r *Renderer) writePersonal(b *strings.Builder, rep Report) {
	b.WriteString("\n--- Your Personal Forecast ---\n")

	if rep.Biorhythm != nil {
		b.WriteString("\nBiorhythms:\n")
		b.WriteString(r.Chart(*rep.Biorhythm))
		b.WriteByte('\n')
	}

	b.WriteString("Summary: ")
	b.WriteString(rep.SentimentText)
	b.WriteByte(' ')
	if rep.FocusText != "" {
		b.WriteString(rep.FocusText)
		b.WriteByte(' ')
	}

	if rep.Biorhythm != nil {
		b.WriteString("\nFrom a biorhythm perspective: ")
		for _, c := range rep.Biorhythm.Cycles {
			b.WriteString(r.styleBand(c.Band, c.Text))
			b.WriteByte(' ')
		}
	}
	b.WriteString("\n----------------------------\n")
}

// Chart renders one line per cycle: label, percentage and bar.
func (r *Renderer) Chart(s BiorhythmSummary) string {
	var b strings.Builder
	for _, c := range s.Cycles {
		fmt.Fprintf(&b, "%-14s%4.0f%% %s\n", c.Cycle+":", c.Value, c.Bar)
	}
	return b.String()
}

// Biorhythm renders a standalone biorhythm section.
func (r *Renderer) Biorhythm(s BiorhythmSummary) string {
	var b strings.Builder
	b.WriteString("Biorhythms:\n")
	b.WriteString(r.Chart(s))
	for _, c := range s.Cycles {
		b.WriteString(r.styleBand(c.Band, c.Text))
		b.WriteByte('\n')
	}
	return b.String()
}

func (r *Renderer) styleBand(band, text string) string {
	switch band {
	case biorhythm.BandFavorable.String():
		return r.favorable.Render(text)
	case biorhythm.BandUnfavorable.String():
		return r.unfavorable.Render(text)
	default:
		return text
	}
}
