package schedule

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/litescript/ls-marstime/internal/logging"
	"github.com/litescript/ls-marstime/internal/mars"
)

// Firing describes the Mars calendar at the moment a schedule fired.
type Firing struct {
	Spec           string
	At             time.Time
	Mars           mars.MarsTime
	SolarLongitude float64
	Season         mars.Season
}

// Notifier runs callbacks on Mars calendar schedules.
type Notifier struct {
	cron  *cron.Cron
	clock mars.Clock
	model mars.Model
	log   *logging.Logger
}

// NewNotifier creates a notifier. Scheduler chatter goes to log at debug level.
func NewNotifier(clock mars.Clock, model mars.Model, log *logging.Logger) *Notifier {
	if clock == nil {
		clock = mars.SystemClock{}
	}
	log = logOrDiscard(log).With("schedule")
	return &Notifier{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cron.PrintfLogger(log)),
		),
		clock: clock,
		model: model,
		log:   log,
	}
}

// Add parses spec and registers fn to run on every firing.
func (n *Notifier) Add(spec string, fn func(Firing)) (cron.EntryID, error) {
	s, err := Parse(spec, n.log)
	if err != nil {
		return 0, err
	}
	id := n.cron.Schedule(s, cron.FuncJob(func() {
		f, err := n.Describe(spec, n.clock.Now())
		if err != nil {
			n.log.Error("%s: %v", spec, err)
			return
		}
		fn(f)
	}))

	if next := s.Next(n.clock.Now()); !next.IsZero() {
		n.log.Info("%s: next firing %s", spec, next.Format(time.RFC3339))
	}
	return id, nil
}

// Describe builds the Firing for spec at t.
func (n *Notifier) Describe(spec string, t time.Time) (Firing, error) {
	m, err := mars.FromTime(t)
	if err != nil {
		return Firing{}, err
	}
	ls := mars.SolarLongitudeWith(t, n.model)
	return Firing{
		Spec:           spec,
		At:             t.UTC(),
		Mars:           m,
		SolarLongitude: ls,
		Season:         mars.SeasonOf(ls),
	}, nil
}

// Entries returns the registered cron entries.
func (n *Notifier) Entries() []cron.Entry {
	return n.cron.Entries()
}

// Start runs the scheduler in its own goroutine.
func (n *Notifier) Start() {
	n.cron.Start()
}

// Stop halts the scheduler and waits for running jobs to finish.
func (n *Notifier) Stop() {
	<-n.cron.Stop().Done()
}
