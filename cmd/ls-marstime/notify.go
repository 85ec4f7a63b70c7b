package main

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-marstime/internal/schedule"
)

var (
	notifyDryRun int
	notifyCount  int
)

var notifyCmd = &cobra.Command{
	Use:   "notify <schedule>",
	Short: "Print a line on every firing of a Mars calendar schedule",
	Long: `Run a schedule and print the Mars calendar each time it fires.

Schedules:
  @sol [every [offset]]   start of each sol (or every n sols, offset in sols)
  @ls <degrees>           each crossing of a solar longitude
  @season                 each equinox and solstice
  <cron spec>             any standard 5-field cron spec (UTC)`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		n := schedule.NewNotifier(a.clock, a.model, a.log)
		if notifyDryRun > 0 {
			return runNotifyDryRun(cmd.OutOrStdout(), n, args[0], a.clock.Now(), notifyDryRun)
		}

		ctx, cancel := signalContext()
		defer cancel()
		return runNotify(ctx, cmd.OutOrStdout(), n, args[0], notifyCount)
	},
}

func init() {
	notifyCmd.Flags().IntVar(&notifyDryRun, "dry-run", 0, "print the next n firings and exit")
	notifyCmd.Flags().IntVar(&notifyCount, "count", 0, "exit after n firings (0 runs until interrupted)")
	rootCmd.AddCommand(notifyCmd)
}

func runNotifyDryRun(w io.Writer, n *schedule.Notifier, spec string, from time.Time, count int) error {
	s, err := schedule.Parse(spec, nil)
	if err != nil {
		return err
	}
	upcoming := schedule.Upcoming(s, from, count)
	if len(upcoming) == 0 {
		fmt.Fprintf(w, "%s: no upcoming firings\n", spec)
		return nil
	}
	for _, t := range upcoming {
		f, err := n.Describe(spec, t)
		if err != nil {
			return err
		}
		writeFiring(w, f)
	}
	return nil
}

func runNotify(ctx context.Context, w io.Writer, n *schedule.Notifier, spec string, count int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var mu sync.Mutex
	fired := 0
	if _, err := n.Add(spec, func(f schedule.Firing) {
		mu.Lock()
		defer mu.Unlock()
		writeFiring(w, f)
		fired++
		if count > 0 && fired >= count {
			cancel()
		}
	}); err != nil {
		return err
	}

	n.Start()
	defer n.Stop()
	<-ctx.Done()
	return nil
}

func writeFiring(w io.Writer, f schedule.Firing) {
	fmt.Fprintf(w, "%s  %s  Ls %6.2f°  %s  [%s]\n",
		f.At.Format(time.RFC3339), f.Mars, f.SolarLongitude, f.Season, f.Spec)
}
