package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litescript/ls-horoscope/internal/natal"
	"github.com/litescript/ls-horoscope/internal/version"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// resetFlags restores every flag to its default so runs do not leak state.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs the CLI offline against a frozen clock in UTC.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("timezone: UTC\nhorizons:\n  concurrency: 2\n"), 0o644))

	prevClock, prevTerminal := clock, isTerminal
	clock = clockwork.NewFakeClockAt(testNow)
	isTerminal = func(uintptr) bool { return false }
	t.Cleanup(func() {
		clock, isTerminal = prevClock, prevTerminal
		resetFlags(rootCmd)
	})

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--config", cfgPath, "--ephemeris", "approx", "--color", "never"}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestCommands_Registered(t *testing.T) {
	want := map[string]bool{"report": false, "sign": false, "biorhythm": false, "version": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		assert.True(t, found, "expected %q subcommand to be registered on rootCmd", name)
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, version.Version)
}

func TestSignCmd(t *testing.T) {
	out, err := execute(t, "sign", "--birth", "1990-07-04")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Cancer (Sun at "), out)
}

func TestReportCmd_Text(t *testing.T) {
	out, err := execute(t, "report", "--birth", "1990-07-04")
	require.NoError(t, err)

	assert.Contains(t, out, "--- Horoscope Forecast for Cancer ---")
	assert.Contains(t, out, "- Sun is transiting your 12th House of Spirituality and the Subconscious")
	assert.Contains(t, out, "- Moon: position is unavailable today")
	assert.Contains(t, out, "Biorhythms:")
	assert.NotContains(t, out, "\x1b[")
}

func TestReportCmd_JSON(t *testing.T) {
	out, err := execute(t, "report", "--birth", "1990-07-04", "--json")
	require.NoError(t, err)

	var rep struct {
		SunSign    string   `json:"sun_sign"`
		Unresolved []string `json:"unresolved"`
		FocusHouse string   `json:"focus_house"`
		Biorhythm  struct {
			Reading struct {
				DaysAlive float64 `json:"days_alive"`
			} `json:"reading"`
		} `json:"biorhythm"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rep))

	assert.Equal(t, "Cancer", rep.SunSign)
	assert.Len(t, rep.Unresolved, 9, "approx resolves only the Sun")
	assert.Equal(t, "Spirituality and the Subconscious", rep.FocusHouse)
}

func TestRootCmd_WithBirth(t *testing.T) {
	out, err := execute(t, "--birth", "1990-07-04")
	require.NoError(t, err)
	assert.Contains(t, out, "--- Horoscope Forecast for Cancer ---")
}

func TestRootCmd_NoBirthWithoutTerminal(t *testing.T) {
	_, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--birth is required")
}

func TestReportCmd_InvalidBirth(t *testing.T) {
	tests := []string{"1990-02-30", "1899-12-31", "2025-06-02", "04/07/1990"}
	for _, birth := range tests {
		t.Run(birth, func(t *testing.T) {
			out, err := execute(t, "report", "--birth", birth)
			assert.ErrorIs(t, err, natal.ErrInvalidBirthDate)
			assert.Empty(t, out, "nothing is printed for an invalid date")
		})
	}
}

func TestBiorhythmCmd(t *testing.T) {
	out, err := execute(t, "biorhythm", "--birth", "2000-01-01", "--at", "2000-01-01")
	require.NoError(t, err)

	assert.Contains(t, out, "Physical:        0% [                    |                    ]")
	assert.Contains(t, out, "Physically, it's a relatively normal day.")
}

func TestBiorhythmCmd_Series(t *testing.T) {
	out, err := execute(t, "biorhythm", "--birth", "2000-01-01", "--at", "2000-01-10", "--days", "3")
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(out, "Biorhythms:"))
	assert.Contains(t, out, "2000-01-12 (day 11)")
}

func TestBiorhythmCmd_Errors(t *testing.T) {
	_, err := execute(t, "biorhythm", "--birth", "2000-01-01", "--at", "1999-12-31")
	assert.ErrorContains(t, err, "before the birth date")

	_, err = execute(t, "biorhythm", "--birth", "2000-01-01", "--days", "0")
	assert.ErrorContains(t, err, "--days")

	_, err = execute(t, "biorhythm", "--birth", "2000-01-01", "--at", "soon")
	assert.ErrorContains(t, err, "not a YYYY-MM-DD date")

	_, err = execute(t, "biorhythm", "--birth", "1900-01-01", "--at", "2501-01-01")
	assert.ErrorContains(t, err, "after 2500")

	_, err = execute(t, "biorhythm", "--birth", "1900-01-01", "--at", "2500-12-31", "--days", "2")
	assert.ErrorContains(t, err, "runs past 2500")
}

func TestBiorhythmCmd_LongSpan(t *testing.T) {
	out, err := execute(t, "biorhythm", "--birth", "1900-01-01", "--at", "2200-01-01", "--days", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "2200-01-01 (day 109573)")
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, useColor("always", &buf))
	assert.False(t, useColor("never", &buf))
	assert.False(t, useColor("auto", &buf), "a buffer is not a terminal")
}
