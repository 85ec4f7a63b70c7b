package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/litescript/ls-marstime/internal/catalog"
	"github.com/litescript/ls-marstime/internal/config"
	"github.com/litescript/ls-marstime/internal/logging"
	"github.com/litescript/ls-marstime/internal/mars"
	"github.com/litescript/ls-marstime/internal/report"
	"github.com/litescript/ls-marstime/internal/state"
	"github.com/litescript/ls-marstime/internal/ui"
)

// Flags for headless mode
var (
	summaryMode   bool
	jsonMode      bool
	nowMode       bool
	watchInterval time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "ls-marstime",
	Short: "Mars calendar clock and converter",
	Long: "ls-marstime shows the current Mars year, sol and solar longitude, and converts " +
		"between UTC and the Mars calendar (MY/Sol/Ls).",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// Execute runs the command tree and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default .ls-marstime.yaml)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("model", "high", "solar longitude model (high, low)")
	pf.String("catalog", config.DefaultCatalogPath, "mission catalog TOML file")
	pf.String("at", "", "evaluate at this UTC instant instead of now (RFC3339)")
	_ = viper.BindPFlag("log_level", pf.Lookup("log-level"))
	_ = viper.BindPFlag("model", pf.Lookup("model"))
	_ = viper.BindPFlag("catalog", pf.Lookup("catalog"))

	f := rootCmd.Flags()
	f.BoolVar(&summaryMode, "summary", false, "print a text summary instead of the TUI")
	f.BoolVar(&jsonMode, "json", false, "print a JSON snapshot instead of the TUI")
	f.BoolVar(&nowMode, "now", false, "print a single status line instead of the TUI")
	f.DurationVar(&watchInterval, "watch", 0, "repeat headless output at this interval (e.g. 30s)")
	f.Duration("refresh", 500*time.Millisecond, "TUI refresh interval")
	f.Bool("watch-catalog", false, "reload the mission catalog when the file changes")
	_ = viper.BindPFlag("refresh", f.Lookup("refresh"))
	_ = viper.BindPFlag("watch_catalog", f.Lookup("watch-catalog"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".ls-marstime")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("LSMARSTIME")
	viper.AutomaticEnv()
	config.SetDefaults()

	// A missing config file is fine; defaults apply.
	_ = viper.ReadInConfig()
}

// app holds what every command needs after configuration is loaded.
type app struct {
	cfg   config.Config
	log   *logging.Logger
	model mars.Model
	clock mars.Clock
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	clock := mars.Clock(mars.SystemClock{})
	if at, _ := cmd.Flags().GetString("at"); at != "" {
		t, err := parseUTC(at)
		if err != nil {
			return nil, fmt.Errorf("--at: %w", err)
		}
		clock = mars.FixedClock{T: t}
	}

	log := logging.New(logging.ParseLevel(cfg.LogLevel))
	log.SetOutput(cmd.ErrOrStderr())

	return &app{
		cfg:   cfg,
		log:   log,
		model: cfg.SolarModel(),
		clock: clock,
	}, nil
}

// newState builds the state manager and loads the mission catalog into it.
func (a *app) newState() (*state.Manager, error) {
	mgr := state.NewManager(state.Config{
		MaxEvents:       a.cfg.EventsMax,
		RefreshInterval: a.cfg.Refresh,
		Model:           a.model,
	})

	c, err := catalog.Load(a.cfg.Catalog)
	if err != nil {
		return nil, err
	}
	if err := mgr.SetCatalog(c); err != nil {
		return nil, err
	}
	a.log.Debug("Loaded %d missions from %s", len(c.Missions), a.cfg.Catalog)
	return mgr, nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	mgr, err := a.newState()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	out := cmd.OutOrStdout()
	isTTY := false
	if f, ok := out.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}

	headless := summaryMode || jsonMode || nowMode || watchInterval > 0 || !isTTY
	if headless {
		return runHeadless(ctx, out, a, mgr)
	}
	return runTUI(ctx, a, mgr)
}

func runTUI(ctx context.Context, a *app, mgr *state.Manager) error {
	// stderr shares the terminal with the TUI.
	a.log.SetOutput(io.Discard)

	p := tea.NewProgram(ui.New(mgr, a.clock), tea.WithAltScreen(), tea.WithContext(ctx))

	if a.cfg.WatchCatalog {
		stop, err := watchCatalog(ctx, a, mgr, func(err error) {
			if err != nil {
				p.Send(ui.ErrorMsg{Error: err})
				return
			}
			p.Send(ui.DataUpdateMsg{Snapshot: mgr.Snapshot()})
		})
		if err != nil {
			return err
		}
		defer stop()
	}

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

// runHeadless prints the selected output once, or repeatedly with --watch.
func runHeadless(ctx context.Context, w io.Writer, a *app, mgr *state.Manager) error {
	if watchInterval == 0 {
		return writeHeadless(w, mgr, a.clock.Now())
	}

	if a.cfg.WatchCatalog {
		stop, err := watchCatalog(ctx, a, mgr, nil)
		if err != nil {
			return err
		}
		defer stop()
	}

	if err := writeHeadless(w, mgr, a.clock.Now()); err != nil {
		a.log.Error("%v", err)
	}

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if !nowMode {
				fmt.Fprintln(w)
			}
			if err := writeHeadless(w, mgr, a.clock.Now()); err != nil {
				a.log.Error("%v", err)
			}
		}
	}
}

func writeHeadless(w io.Writer, mgr *state.Manager, now time.Time) error {
	if err := mgr.Update(now); err != nil {
		return err
	}
	snap := mgr.Snapshot()

	switch {
	case nowMode:
		report.WriteNow(w, snap.Reading)
	case jsonMode:
		if err := report.ExportSnapshot(snap, now).WriteJSON(w); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}
	default:
		report.WriteSummary(w, snap)
	}
	return nil
}

// watchCatalog reloads the mission catalog into mgr whenever the file
// changes. onReload, if set, is called after every reload attempt.
func watchCatalog(ctx context.Context, a *app, mgr *state.Manager, onReload func(error)) (func(), error) {
	path := a.cfg.Catalog
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		a.log.Warn("Not watching %s: %v", path, err)
		return func() {}, nil
	}

	w, err := catalog.NewWatcher(path, a.log)
	if err != nil {
		return nil, fmt.Errorf("catalog watcher: %w", err)
	}
	if err := w.Start(); err != nil {
		return nil, fmt.Errorf("catalog watcher: %w", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case r, ok := <-w.Reloads:
				if !ok {
					return
				}
				err := r.Err
				if err == nil {
					err = mgr.SetCatalog(r.Catalog)
				}
				if err != nil {
					a.log.Error("Catalog reload failed: %v", err)
				} else {
					a.log.Info("Catalog reloaded: %d missions", len(r.Catalog.Missions))
				}
				if onReload != nil {
					onReload(err)
				}
			}
		}
	}()

	return w.Stop, nil
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()
	return ctx, cancel
}
