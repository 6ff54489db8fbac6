// Package ui provides the interactive birth-date prompt using Bubble Tea.
package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"

	"github.com/litescript/ls-horoscope/internal/natal"
	"github.com/litescript/ls-horoscope/internal/version"
)

// ReportFunc builds the rendered report for a validated birth date.
type ReportFunc func(ctx context.Context, birth time.Time) (string, error)

// phase is the prompt's current step.
type phase int

const (
	phaseInput phase = iota
	phaseLoading
	phaseReport
	phaseError
)

// reportMsg carries a finished report back to Update.
type reportMsg struct {
	text string
	err  error
}

// Model is the root Bubble Tea model.
type Model struct {
	ctx    context.Context
	report ReportFunc
	loc    *time.Location
	clock  clockwork.Clock

	input   textinput.Model
	spinner spinner.Model

	phase      phase
	birth      time.Time
	validation string
	output     string
	err        error
	width      int
}

// New creates the prompt model. loc is the zone birth dates are read in.
func New(ctx context.Context, report ReportFunc, loc *time.Location, clock clockwork.Clock) Model {
	if loc == nil {
		loc = time.Local
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	ti := textinput.New()
	ti.Prompt = "▸ "
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = len(natal.DateLayout)
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = accentStyle

	return Model{
		ctx:     ctx,
		report:  report,
		loc:     loc,
		clock:   clock,
		input:   ti,
		spinner: s,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case reportMsg:
		if m.phase != phaseLoading {
			return m, nil
		}
		if msg.err != nil {
			m.phase = phaseError
			m.err = msg.err
			return m, nil
		}
		m.phase = phaseReport
		m.output = msg.text
		return m, nil

	case spinner.TickMsg:
		if m.phase != phaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.phase == phaseInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc", "q":
		return m, tea.Quit
	}

	switch m.phase {
	case phaseInput:
		if msg.Type == tea.KeyEnter {
			return m.submit()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.validation = ""
		return m, cmd

	case phaseReport, phaseError:
		if msg.String() == "n" {
			return m.reset(), textinput.Blink
		}
	}
	return m, nil
}

// submit validates the entered date and starts the report.
func (m Model) submit() (tea.Model, tea.Cmd) {
	birth, err := natal.ParseBirthDate(m.input.Value(), m.loc, m.clock.Now())
	if err != nil {
		m.validation = err.Error()
		return m, nil
	}

	m.phase = phaseLoading
	m.birth = birth
	m.validation = ""
	m.input.Blur()
	return m, tea.Batch(m.spinner.Tick, m.fetch(birth))
}

// fetch runs the report function off the update loop.
func (m Model) fetch(birth time.Time) tea.Cmd {
	ctx, report := m.ctx, m.report
	return func() tea.Msg {
		text, err := report(ctx, birth)
		return reportMsg{text: text, err: err}
	}
}

func (m Model) reset() Model {
	m.phase = phaseInput
	m.birth = time.Time{}
	m.output = ""
	m.err = nil
	m.validation = ""
	m.input.Reset()
	m.input.Focus()
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("ls-horoscope " + version.Version))
	b.WriteString("\n\n")

	switch m.phase {
	case phaseInput:
		b.WriteString(promptStyle.Render("Enter your birth date"))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.validation != "" {
			b.WriteString(errorStyle.Render(m.validation))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("enter: forecast | q/esc: quit"))

	case phaseLoading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Reading the sky for ")
		b.WriteString(m.birth.Format(natal.DateLayout))
		b.WriteString("...")

	case phaseReport:
		b.WriteString(m.output)
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("n: new date | q: quit"))

	case phaseError:
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("n: try again | q: quit"))
	}
	b.WriteString("\n")
	return b.String()
}

// Run starts the prompt and blocks until the user quits.
func Run(ctx context.Context, report ReportFunc, loc *time.Location, clock clockwork.Clock) error {
	p := tea.NewProgram(New(ctx, report, loc, clock), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
