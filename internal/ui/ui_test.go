package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// recorder is a ReportFunc that records the dates it is called with.
type recorder struct {
	calls []time.Time
	text  string
	err   error
}

func (r *recorder) report(_ context.Context, birth time.Time) (string, error) {
	r.calls = append(r.calls, birth)
	return r.text, r.err
}

func newTestModel(r *recorder) Model {
	return New(context.Background(), r.report, time.UTC, clockwork.NewFakeClockAt(testNow))
}

func typeText(m Model, s string) Model {
	for _, c := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{c}})
		m = next.(Model)
	}
	return m
}

func press(m Model, k tea.KeyType) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(Model), cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_ValidDateStartsReport(t *testing.T) {
	rec := &recorder{text: "--- Horoscope Forecast for Cancer ---"}
	m := typeText(newTestModel(rec), "1990-07-04")

	m, cmd := press(m, tea.KeyEnter)

	require.Equal(t, phaseLoading, m.phase)
	require.NotNil(t, cmd, "expected a command to start the report")
	assert.Contains(t, m.View(), "Reading the sky for 1990-07-04")

	msg := m.fetch(m.birth)()
	require.Len(t, rec.calls, 1)
	assert.True(t, rec.calls[0].Equal(time.Date(1990, 7, 4, 0, 0, 0, 0, time.UTC)), "birth = %v", rec.calls[0])

	next, _ := m.Update(msg)
	m = next.(Model)
	require.Equal(t, phaseReport, m.phase)
	assert.Contains(t, m.View(), "Horoscope Forecast for Cancer")
}

func TestModel_InvalidDateDoesNotFetch(t *testing.T) {
	tests := []string{"", "1990-02-30", "1850-01-01", "2030-01-01", "07/04/1990"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			rec := &recorder{}
			m := typeText(newTestModel(rec), input)

			m, cmd := press(m, tea.KeyEnter)

			assert.Equal(t, phaseInput, m.phase)
			assert.Nil(t, cmd, "invalid input must not issue a command")
			require.NotEmpty(t, m.validation)
			assert.Contains(t, m.View(), m.validation)
			assert.Empty(t, rec.calls)
		})
	}
}

func TestModel_TypingClearsValidation(t *testing.T) {
	m := typeText(newTestModel(&recorder{}), "19")
	m, _ = press(m, tea.KeyEnter)
	require.NotEmpty(t, m.validation)

	m = typeText(m, "9")
	assert.Empty(t, m.validation)
}

func TestModel_ReportError(t *testing.T) {
	rec := &recorder{err: errors.New("natal sun: ephemeris unavailable")}
	m := typeText(newTestModel(rec), "1990-07-04")
	m, _ = press(m, tea.KeyEnter)

	next, _ := m.Update(m.fetch(m.birth)())
	m = next.(Model)

	require.Equal(t, phaseError, m.phase)
	assert.Contains(t, m.View(), "ephemeris unavailable")
}

func TestModel_NewDateResets(t *testing.T) {
	m := newTestModel(&recorder{})
	m.phase = phaseReport
	m.output = "old report"

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	m = next.(Model)

	assert.Equal(t, phaseInput, m.phase)
	assert.Empty(t, m.output)
	assert.Empty(t, m.input.Value())
}

func TestModel_Quit(t *testing.T) {
	tests := []struct {
		name  string
		phase phase
		key   tea.KeyMsg
	}{
		{"ctrl+c while typing", phaseInput, tea.KeyMsg{Type: tea.KeyCtrlC}},
		{"q while typing", phaseInput, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}},
		{"q on report", phaseReport, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}},
		{"esc on error", phaseError, tea.KeyMsg{Type: tea.KeyEsc}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestModel(&recorder{})
			m.phase = tc.phase
			m.err = errors.New("x")

			_, cmd := m.Update(tc.key)
			assert.True(t, isQuit(cmd), "expected quit command")
		})
	}
}

func TestModel_StaleMessagesIgnored(t *testing.T) {
	m := newTestModel(&recorder{})

	next, _ := m.Update(reportMsg{text: "late"})
	m = next.(Model)
	assert.Equal(t, phaseInput, m.phase)

	_, cmd := m.Update(spinner.TickMsg{})
	assert.Nil(t, cmd, "spinner should not tick outside loading")
}
