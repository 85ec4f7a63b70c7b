package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-marstime/internal/mars"
	"github.com/litescript/ls-marstime/internal/report"
)

var yearJSON bool

var yearCmd = &cobra.Command{
	Use:   "year [MY]",
	Short: "Seasons, aphelion and perihelion of a Mars year",
	Long:  "List the equinoxes, solstices, aphelion and perihelion of a Mars year (default: the current one).",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		var year int
		if len(args) == 1 {
			year, err = strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%q is not a Mars year: %w", args[0], mars.ErrSyntax)
			}
		} else {
			now, err := mars.Current(a.clock)
			if err != nil {
				return err
			}
			year = now.Year()
		}
		return runYear(cmd.OutOrStdout(), year, yearJSON)
	},
}

func init() {
	yearCmd.Flags().BoolVar(&yearJSON, "json", false, "print JSON")
	rootCmd.AddCommand(yearCmd)
}

func runYear(w io.Writer, year int, asJSON bool) error {
	ev, err := mars.EventsOf(year)
	if err != nil {
		return err
	}
	if asJSON {
		return report.WriteJSON(w, report.ExportYear(ev))
	}
	report.WriteYear(w, ev)
	return nil
}
