package main

import (
	"errors"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/litescript/ls-horoscope/internal/config"
	"github.com/litescript/ls-horoscope/internal/ui"
)

// clock is the source of "now" for every command.
var clock clockwork.Clock = clockwork.NewRealClock()

// isTerminal reports whether fd is a terminal.
var isTerminal = func(fd uintptr) bool { return term.IsTerminal(int(fd)) }

var rootCmd = &cobra.Command{
	Use:   "ls-horoscope",
	Short: "Daily horoscope and biorhythm forecast",
	Long: `ls-horoscope places today's Sun, Moon and planets in houses relative to
your natal Sun sign, lists their major aspects to it, and charts your
physical, emotional and intellectual biorhythms.

Without --birth on a terminal it prompts for your birth date.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default .ls-horoscope.yaml)")
	pf.String("log-level", "warn", "log level (debug, info, warn, error)")
	pf.String("ephemeris", "auto", "ephemeris source (horizons, approx, file, auto)")
	pf.String("ephemeris-file", "", "TOML fixture for the file ephemeris source")
	pf.String("color", config.ColorAuto, "colorize output (auto, always, never)")

	_ = viper.BindPFlag("log.level", pf.Lookup("log-level"))
	_ = viper.BindPFlag("ephemeris.mode", pf.Lookup("ephemeris"))
	_ = viper.BindPFlag("ephemeris.file", pf.Lookup("ephemeris-file"))
	_ = viper.BindPFlag("color", pf.Lookup("color"))

	rootCmd.Flags().String("birth", "", "birth date as YYYY-MM-DD")
}

func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(config.ConfigName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	config.InitEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// runRoot prints the report for --birth, or prompts for a date on a terminal.
func runRoot(cmd *cobra.Command, _ []string) error {
	if birth, _ := cmd.Flags().GetString("birth"); birth != "" {
		return runReport(cmd, birth, false)
	}

	if !isTerminal(os.Stdin.Fd()) || !isTerminal(os.Stdout.Fd()) {
		return errors.New("--birth is required when not running on a terminal")
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	return ui.Run(cmd.Context(), a.renderReport, a.loc, a.clock)
}
