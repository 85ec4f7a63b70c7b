package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-marstime/internal/mars"
)

var (
	lsYear  int
	solYear int
)

var lsCmd = &cobra.Command{
	Use:   "ls <sol>",
	Short: "Solar longitude at a sol",
	Long: "Print the solar longitude at a sol. Without --year the mean-year formula is used;\n" +
		"with --year the sol is placed in that Mars year and Ls is computed at that instant.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		sol, err := parseNumber(args[0])
		if err != nil {
			return err
		}
		var year *int
		if cmd.Flags().Changed("year") {
			year = &lsYear
		}
		return runLs(cmd.OutOrStdout(), sol, year, a.model)
	},
}

var solCmd = &cobra.Command{
	Use:   "sol <ls>",
	Short: "Sol at a solar longitude",
	Long: "Print the sol at which a solar longitude is reached. Without --year the closed-form\n" +
		"mean-orbit inverse is used; with --year the crossing is searched inside that Mars year.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := newApp(cmd); err != nil {
			return err
		}
		ls, err := parseNumber(args[0])
		if err != nil {
			return err
		}
		var year *int
		if cmd.Flags().Changed("year") {
			year = &solYear
		}
		return runSol(cmd.OutOrStdout(), ls, year)
	},
}

func init() {
	lsCmd.Flags().IntVar(&lsYear, "year", 0, "Mars year the sol belongs to")
	solCmd.Flags().IntVar(&solYear, "year", 0, "Mars year to search")
	rootCmd.AddCommand(lsCmd, solCmd)
}

func runLs(w io.Writer, sol float64, year *int, model mars.Model) error {
	if year == nil {
		ls, err := mars.SolToSolarLongitude(sol)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Sol %.4f: Ls %.4f° (%s)\n", sol, ls, mars.SeasonOf(ls))
		return nil
	}

	m, err := mars.New(*year, sol)
	if err != nil {
		return err
	}
	t := m.Time()
	ls := mars.SolarLongitudeWith(t, model)
	fmt.Fprintf(w, "%s: Ls %.4f° (%s), %s\n", m, ls, mars.SeasonOf(ls), t.Format(time.RFC3339))
	return nil
}

func runSol(w io.Writer, ls float64, year *int) error {
	if year == nil {
		fmt.Fprintf(w, "Ls %.4f°: sol %.4f\n", ls, mars.SolarLongitudeToSol(ls))
		return nil
	}

	m, err := mars.FromSolarLongitude(*year, ls)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Ls %.4f° in MY%d: %s, %s\n", ls, *year, m, m.Time().Format(time.RFC3339))
	return nil
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number: %w", s, mars.ErrInvalidNumber)
	}
	return v, nil
}
