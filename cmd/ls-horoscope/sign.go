package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "Print the natal Sun sign for a birth date",
	Args:  cobra.NoArgs,
	RunE:  runSign,
}

func init() {
	signCmd.Flags().String("birth", "", "birth date as YYYY-MM-DD")
	_ = signCmd.MarkFlagRequired("birth")
	rootCmd.AddCommand(signCmd)
}

func runSign(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	birthArg, _ := cmd.Flags().GetString("birth")
	birth, err := a.parseBirth(birthArg)
	if err != nil {
		return err
	}

	nc, err := a.resolver.NatalContext(cmd.Context(), birth)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "%s (Sun at %.2f°)\n", nc.SunSign.Name(), nc.SunLongitude)
	return err
}
