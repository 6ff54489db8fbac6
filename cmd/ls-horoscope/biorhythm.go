package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-horoscope/internal/forecast"
	"github.com/litescript/ls-horoscope/internal/natal"
)

var biorhythmCmd = &cobra.Command{
	Use:   "biorhythm",
	Short: "Chart biorhythm cycles for a birth date",
	Long: `Chart the physical (23 day), emotional (28 day) and intellectual (33 day)
cycles. No ephemeris lookups are made.`,
	Args: cobra.NoArgs,
	RunE: runBiorhythm,
}

func init() {
	biorhythmCmd.Flags().String("birth", "", "birth date as YYYY-MM-DD")
	biorhythmCmd.Flags().String("at", "", "date to chart as YYYY-MM-DD (default: now)")
	biorhythmCmd.Flags().Int("days", 1, "number of consecutive days to chart")
	_ = biorhythmCmd.MarkFlagRequired("birth")
	rootCmd.AddCommand(biorhythmCmd)
}

func runBiorhythm(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	birthArg, _ := cmd.Flags().GetString("birth")
	birth, err := a.parseBirth(birthArg)
	if err != nil {
		return err
	}

	days, _ := cmd.Flags().GetInt("days")
	if days < 1 {
		return fmt.Errorf("--days must be at least 1, got %d", days)
	}

	at := a.clock.Now().In(a.loc)
	if atArg, _ := cmd.Flags().GetString("at"); atArg != "" {
		at, err = a.parseDay(atArg)
		if err != nil {
			return err
		}
	}
	if last := at.AddDate(0, 0, days-1); last.Year() > natal.MaxYear {
		return fmt.Errorf("--days %d runs past %d", days, natal.MaxYear)
	}
	if at.Before(birth) {
		return fmt.Errorf("--at %s is before the birth date", at.Format(natal.DateLayout))
	}

	r := forecast.NewRenderer(a.out, a.color)
	var b strings.Builder
	for i, reading := range a.bio.Series(birth, at, days) {
		if days > 1 {
			fmt.Fprintf(&b, "%s (day %.0f)\n", at.AddDate(0, 0, i).Format(natal.DateLayout), reading.DaysAlive)
		}
		b.WriteString(r.Biorhythm(a.composer.DescribeBiorhythm(reading)))
		if i < days-1 {
			b.WriteByte('\n')
		}
	}
	_, err = fmt.Fprint(a.out, b.String())
	return err
}

// parseDay reads a YYYY-MM-DD date as local midnight in the configured zone.
func (a *app) parseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(natal.DateLayout, strings.TrimSpace(s), a.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("--at %q is not a YYYY-MM-DD date", s)
	}
	if t.Year() > natal.MaxYear {
		return time.Time{}, fmt.Errorf("--at %q is after %d", s, natal.MaxYear)
	}
	return t, nil
}
