package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-horoscope/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "ls-horoscope", version.String())
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
