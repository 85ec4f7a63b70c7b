// Package catalog manages the mission catalog: named spacecraft events on
// Earth time that are shown on the Mars calendar.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/litescript/ls-marstime/internal/mars"
)

// Mission is one dated event of a spacecraft, e.g. a landing.
type Mission struct {
	Name  string    `toml:"name"`
	Event string    `toml:"event"`
	Time  time.Time `toml:"time"`
	Notes string    `toml:"notes,omitempty"`
}

// Key identifies a mission event for merging.
func (m Mission) Key() string {
	return m.Name + "/" + m.Event
}

// Catalog is the on-disk TOML document.
type Catalog struct {
	Missions []Mission `toml:"mission"`
}

// Defaults returns the built-in catalog.
func Defaults() *Catalog {
	return &Catalog{Missions: []Mission{
		{Name: "Opportunity", Event: "landing", Time: time.Date(2004, 1, 25, 5, 5, 0, 0, time.UTC)},
		{Name: "MAVEN", Event: "orbit insertion", Time: time.Date(2014, 9, 22, 2, 24, 0, 0, time.UTC)},
		{Name: "Opportunity", Event: "last contact", Time: time.Date(2018, 6, 10, 0, 0, 0, 0, time.UTC)},
		{Name: "Perseverance", Event: "landing", Time: time.Date(2021, 2, 18, 20, 55, 0, 0, time.UTC)},
	}}
}

// Load reads a mission catalog from the given path. If the file does not
// exist, it returns the built-in defaults and no error.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("reading mission catalog: %w", err)
	}

	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing mission catalog %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("mission catalog %s: %w", path, err)
	}
	c.sort()
	return &c, nil
}

// Save writes the catalog to the given path, creating parent directories as
// needed.
func Save(path string, c *Catalog) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling mission catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing mission catalog: %w", err)
	}
	return nil
}

// Validate reports the first mission with a missing name, event or time.
func (c *Catalog) Validate() error {
	for i, m := range c.Missions {
		switch {
		case m.Name == "":
			return fmt.Errorf("mission %d: name is required", i)
		case m.Event == "":
			return fmt.Errorf("mission %q: event is required", m.Name)
		case m.Time.IsZero():
			return fmt.Errorf("mission %q %s: time is required", m.Name, m.Event)
		}
	}
	return nil
}

// Merge combines two catalogs. Entries in overlay replace entries in base
// with the same name and event; everything else from both is kept. The
// result is ordered by time.
func Merge(base, overlay *Catalog) *Catalog {
	merged := &Catalog{Missions: make([]Mission, 0, len(base.Missions)+len(overlay.Missions))}

	replaced := make(map[string]Mission, len(overlay.Missions))
	for _, m := range overlay.Missions {
		replaced[m.Key()] = m
	}

	for _, m := range base.Missions {
		if o, ok := replaced[m.Key()]; ok {
			merged.Missions = append(merged.Missions, o)
			delete(replaced, m.Key())
			continue
		}
		merged.Missions = append(merged.Missions, m)
	}
	for _, m := range overlay.Missions {
		if _, ok := replaced[m.Key()]; ok {
			merged.Missions = append(merged.Missions, m)
			delete(replaced, m.Key())
		}
	}

	merged.sort()
	return merged
}

func (c *Catalog) sort() {
	sort.SliceStable(c.Missions, func(i, j int) bool {
		return c.Missions[i].Time.Before(c.Missions[j].Time)
	})
}

// ResolvedMission is a mission placed on the Mars calendar.
type ResolvedMission struct {
	Mission
	Mars           mars.MarsTime
	SolarLongitude float64
	Season         mars.Season
}

// ErrUnresolvable is returned when a mission date lies outside the epoch table.
var ErrUnresolvable = errors.New("mission outside tabulated mars years")

// Resolve converts every mission to Mars time using model for the solar
// longitude.
func (c *Catalog) Resolve(model mars.Model) ([]ResolvedMission, error) {
	out := make([]ResolvedMission, 0, len(c.Missions))
	for _, m := range c.Missions {
		mt, err := mars.FromTime(m.Time)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w: %w", m.Name, m.Event, ErrUnresolvable, err)
		}
		ls := mars.SolarLongitudeWith(m.Time, model)
		out = append(out, ResolvedMission{
			Mission:        m,
			Mars:           mt,
			SolarLongitude: ls,
			Season:         mars.SeasonOf(ls),
		})
	}
	return out, nil
}

// Span is the elapsed time between the first and last events of a mission.
type Span struct {
	Name  string
	From  Mission
	To    Mission
	Sols  float64
	Delta mars.Delta
}

// Spans returns one Span per mission name that has at least two events, in
// order of first event.
func (c *Catalog) Spans() []Span {
	byName := make(map[string][]Mission)
	var order []string
	for _, m := range c.Missions {
		if _, ok := byName[m.Name]; !ok {
			order = append(order, m.Name)
		}
		byName[m.Name] = append(byName[m.Name], m)
	}

	var spans []Span
	for _, name := range order {
		events := byName[name]
		if len(events) < 2 {
			continue
		}
		first, last := events[0], events[0]
		for _, e := range events[1:] {
			if e.Time.Before(first.Time) {
				first = e
			}
			if e.Time.After(last.Time) {
				last = e
			}
		}
		span := Span{
			Name: name,
			From: first,
			To:   last,
			Sols: mars.SolsBetween(first.Time, last.Time),
		}
		a, errA := mars.FromTime(first.Time)
		b, errB := mars.FromTime(last.Time)
		if errA == nil && errB == nil {
			span.Delta = b.Sub(a)
		}
		spans = append(spans, span)
	}
	return spans
}
