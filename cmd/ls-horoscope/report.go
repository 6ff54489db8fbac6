package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-horoscope/internal/forecast"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the forecast for a birth date",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		birth, _ := cmd.Flags().GetString("birth")
		asJSON, _ := cmd.Flags().GetBool("json")
		return runReport(cmd, birth, asJSON)
	},
}

func init() {
	reportCmd.Flags().String("birth", "", "birth date as YYYY-MM-DD")
	reportCmd.Flags().Bool("json", false, "print the report as JSON")
	_ = reportCmd.MarkFlagRequired("birth")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, birthArg string, asJSON bool) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	birth, err := a.parseBirth(birthArg)
	if err != nil {
		return err
	}

	rep, err := a.buildReport(cmd.Context(), birth)
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}
	if asJSON {
		return rep.WriteJSON(a.out)
	}
	return forecast.NewRenderer(a.out, a.color).Write(a.out, rep)
}
