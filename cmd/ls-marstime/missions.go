package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-marstime/internal/catalog"
	"github.com/litescript/ls-marstime/internal/mars"
	"github.com/litescript/ls-marstime/internal/report"
)

var missionsJSON bool

var missionsCmd = &cobra.Command{
	Use:   "missions",
	Short: "Show the mission catalog on the Mars calendar",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		c, err := catalog.Load(a.cfg.Catalog)
		if err != nil {
			return err
		}
		return runMissions(cmd.OutOrStdout(), c, a.model, missionsJSON)
	},
}

var missionsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the built-in missions to the catalog file",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(a.cfg.Catalog); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", a.cfg.Catalog)
		}
		if err := catalog.Save(a.cfg.Catalog, catalog.Defaults()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", a.cfg.Catalog)
		return nil
	},
}

var missionsAddCmd = &cobra.Command{
	Use:   "add <name> <event> <utc>",
	Short: "Add or replace a mission event in the catalog file",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		notes, _ := cmd.Flags().GetString("notes")
		m, err := addMission(a.cfg.Catalog, args[0], args[1], args[2], notes)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", m.Name, m.Event, m.Mars)
		return nil
	},
}

func init() {
	missionsCmd.Flags().BoolVar(&missionsJSON, "json", false, "print JSON")
	missionsInitCmd.Flags().Bool("force", false, "overwrite an existing catalog")
	missionsAddCmd.Flags().String("notes", "", "free-text notes")
	missionsCmd.AddCommand(missionsInitCmd, missionsAddCmd)
	rootCmd.AddCommand(missionsCmd)
}

func runMissions(w io.Writer, c *catalog.Catalog, model mars.Model, asJSON bool) error {
	resolved, err := c.Resolve(model)
	if err != nil {
		return err
	}
	if asJSON {
		return report.WriteJSON(w, report.ExportMissions(resolved))
	}
	report.WriteMissions(w, resolved)
	for _, s := range c.Spans() {
		fmt.Fprintf(w, "%s: %s -> %s, %.1f sols (%s)\n", s.Name, s.From.Event, s.To.Event, s.Sols, s.Delta)
	}
	return nil
}

// addMission merges one mission into the catalog at path and saves it.
func addMission(path, name, event, when, notes string) (catalog.ResolvedMission, error) {
	t, err := parseUTC(when)
	if err != nil {
		return catalog.ResolvedMission{}, err
	}
	added := &catalog.Catalog{Missions: []catalog.Mission{
		{Name: name, Event: event, Time: t, Notes: notes},
	}}
	if err := added.Validate(); err != nil {
		return catalog.ResolvedMission{}, err
	}
	resolved, err := added.Resolve(mars.ModelHighAccuracy)
	if err != nil {
		return catalog.ResolvedMission{}, err
	}

	current, err := catalog.Load(path)
	if err != nil {
		return catalog.ResolvedMission{}, err
	}
	if err := catalog.Save(path, catalog.Merge(current, added)); err != nil {
		return catalog.ResolvedMission{}, err
	}
	return resolved[0], nil
}
