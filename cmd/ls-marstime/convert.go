package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-marstime/internal/mars"
	"github.com/litescript/ls-marstime/internal/report"
)

var convertJSON bool

var convertCmd = &cobra.Command{
	Use:   "convert <utc|now|MYxxSolyy|MYxxLsyy>...",
	Short: "Convert between UTC and Mars year/sol/Ls",
	Long: "Convert each argument. UTC instants (RFC3339 or YYYY-MM-DD[ HH:MM:SS]) are placed on the\n" +
		"Mars calendar; Mars dates such as MY36Sol193.23 or MY36Ls90 are converted to UTC.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		return runConvert(cmd.OutOrStdout(), args, a.clock, a.model, convertJSON)
	},
}

func init() {
	convertCmd.Flags().BoolVar(&convertJSON, "json", false, "print JSON")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(w io.Writer, args []string, clock mars.Clock, model mars.Model, asJSON bool) error {
	conversions := make([]report.Conversion, 0, len(args))
	for _, arg := range args {
		m, err := parseInput(arg, clock)
		if err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
		conversions = append(conversions, report.NewConversion(arg, m, model))
	}

	if asJSON {
		if len(conversions) == 1 {
			return report.WriteJSON(w, conversions[0])
		}
		return report.WriteJSON(w, conversions)
	}
	for i, c := range conversions {
		if i > 0 {
			fmt.Fprintln(w)
		}
		report.WriteConversion(w, c)
	}
	return nil
}

// parseInput reads a Mars date (MY...) or an Earth UTC instant.
func parseInput(s string, clock mars.Clock) (mars.MarsTime, error) {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && strings.EqualFold(s[:2], "MY") {
		return mars.Parse(s)
	}

	var t time.Time
	if strings.EqualFold(s, "now") {
		t = clock.Now()
	} else {
		var err error
		if t, err = parseUTC(s); err != nil {
			return mars.MarsTime{}, err
		}
	}
	return mars.FromTime(t)
}

var utcLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.DateOnly,
}

// parseUTC parses s with the accepted layouts. Times without a zone are UTC.
func parseUTC(s string) (time.Time, error) {
	for _, layout := range utcLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised time %q (want RFC3339 or YYYY-MM-DD[ HH:MM:SS])", s)
}
