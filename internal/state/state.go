// Package state provides thread-safe state management for the application.
package state

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/litescript/ls-marstime/internal/catalog"
	"github.com/litescript/ls-marstime/internal/mars"
)

// EventType represents the type of state change event.
type EventType string

const (
	EventSolChanged      EventType = "SOL_CHANGED"
	EventSeasonChanged   EventType = "SEASON_CHANGED"
	EventYearChanged     EventType = "YEAR_CHANGED"
	EventCatalogReloaded EventType = "CATALOG_RELOADED"
)

// Event represents a change on the Mars calendar seen between two updates.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Mars      string    `json:"mars"`
	Detail    string    `json:"detail,omitempty"`
}

// Reading is the Mars calendar at one instant.
type Reading struct {
	At             time.Time
	Mars           mars.MarsTime
	SolarLongitude float64
	Season         mars.Season
	YearFraction   float64 // elapsed fraction of the current Mars year
	SolsInYear     float64
	NextBoundary   time.Time
	NextSeason     mars.Season
}

// Manager handles all shared application state with thread-safe access.
type Manager struct {
	mu sync.RWMutex

	// Current state
	current         *Reading
	lastUpdate      time.Time
	lastError       error
	computeDuration time.Duration

	// Orbit landmarks of the current year, recomputed when the year changes
	year *mars.YearEvents

	// Mission catalog placed on the Mars calendar
	missions []catalog.ResolvedMission
	spans    []catalog.Span
	catalogs int

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int

	// Configuration
	model           mars.Model
	refreshInterval time.Duration
}

// Config holds configuration for the state manager.
type Config struct {
	MaxEvents       int
	RefreshInterval time.Duration
	Model           mars.Model
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MaxEvents:       50, // Last 50 events
		RefreshInterval: 500 * time.Millisecond,
		Model:           mars.ModelHighAccuracy,
	}
}

// NewManager creates a new state manager.
func NewManager(cfg Config) *Manager {
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}
	return &Manager{
		maxEvents:       maxEvents,
		events:          make([]Event, 0, maxEvents),
		model:           cfg.Model,
		refreshInterval: cfg.RefreshInterval,
	}
}

// Compute builds the Reading for now without touching any manager state.
func Compute(now time.Time, model mars.Model) (*Reading, error) {
	m, err := mars.FromTime(now)
	if err != nil {
		return nil, err
	}
	n, err := mars.SolsInYear(m.Year())
	if err != nil {
		return nil, err
	}
	next, nextSeason, err := mars.NextSeasonBoundary(now)
	if err != nil {
		return nil, err
	}
	ls := mars.SolarLongitudeWith(now, model)
	return &Reading{
		At:             now.UTC(),
		Mars:           m,
		SolarLongitude: ls,
		Season:         mars.SeasonOf(ls),
		YearFraction:   m.Sol() / n,
		SolsInYear:     n,
		NextBoundary:   next,
		NextSeason:     nextSeason,
	}, nil
}

// Update recomputes the Mars calendar at now and records any sol, season or
// year change since the previous update.
func (m *Manager) Update(now time.Time) error {
	m.mu.RLock()
	model := m.model
	cachedYear := m.year
	m.mu.RUnlock()

	started := time.Now()
	reading, err := Compute(now, model)
	var year *mars.YearEvents
	if err == nil {
		if cachedYear != nil && cachedYear.Year == reading.Mars.Year() {
			year = cachedYear
		} else {
			ev, yerr := mars.EventsOf(reading.Mars.Year())
			if yerr != nil {
				err = fmt.Errorf("orbit events MY%d: %w", reading.Mars.Year(), yerr)
			} else {
				year = &ev
			}
		}
	}
	elapsed := time.Since(started)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastUpdate = now
	m.lastError = err
	m.computeDuration = elapsed

	if err != nil {
		return err
	}

	// Detect events before updating current state
	m.detectEvents(reading)

	m.current = reading
	m.year = year
	return nil
}

// detectEvents compares a new reading with the previous one and generates
// events.
func (m *Manager) detectEvents(next *Reading) {
	prev := m.current
	if prev == nil {
		return
	}

	switch {
	case next.Mars.Year() != prev.Mars.Year():
		m.addEvent(Event{
			Type:      EventYearChanged,
			Timestamp: next.At,
			Mars:      next.Mars.String(),
			Detail:    fmt.Sprintf("MY%d -> MY%d", prev.Mars.Year(), next.Mars.Year()),
		})
	case math.Floor(next.Mars.Sol()) != math.Floor(prev.Mars.Sol()):
		m.addEvent(Event{
			Type:      EventSolChanged,
			Timestamp: next.At,
			Mars:      next.Mars.String(),
			Detail:    fmt.Sprintf("sol %d", int(next.Mars.Sol())),
		})
	}

	if next.Season != prev.Season {
		m.addEvent(Event{
			Type:      EventSeasonChanged,
			Timestamp: next.At,
			Mars:      next.Mars.String(),
			Detail:    fmt.Sprintf("%s -> %s (Ls %.2f)", prev.Season, next.Season, next.SolarLongitude),
		})
	}
}

// addEvent adds an event to the ring buffer.
func (m *Manager) addEvent(e Event) {
	if len(m.events) < m.maxEvents {
		m.events = append(m.events, e)
	} else {
		m.events[m.eventWriteAt] = e
		m.eventWriteAt = (m.eventWriteAt + 1) % m.maxEvents
	}
}

// SetCatalog resolves the missions of c and replaces the current list. A
// replacement after the first catalog is logged as CATALOG_RELOADED.
func (m *Manager) SetCatalog(c *catalog.Catalog) error {
	m.mu.RLock()
	model := m.model
	m.mu.RUnlock()

	resolved, err := c.Resolve(model)
	if err != nil {
		return err
	}
	spans := c.Spans()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.missions = resolved
	m.spans = spans
	m.catalogs++
	if m.catalogs > 1 {
		e := Event{
			Type:      EventCatalogReloaded,
			Timestamp: m.lastUpdate,
			Detail:    fmt.Sprintf("%d missions", len(resolved)),
		}
		if m.current != nil {
			e.Mars = m.current.Mars.String()
		}
		m.addEvent(e)
	}
	return nil
}

// Snapshot represents an immutable snapshot of current state.
type Snapshot struct {
	Reading         *Reading
	LastUpdate      time.Time
	LastError       error
	ComputeDuration time.Duration
	Model           mars.Model
	Year            *mars.YearEvents
	Missions        []catalog.ResolvedMission
	Spans           []catalog.Span
	Events          []Event
}

// Snapshot returns a consistent snapshot of current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var reading *Reading
	if m.current != nil {
		r := *m.current
		reading = &r
	}
	var year *mars.YearEvents
	if m.year != nil {
		y := *m.year
		year = &y
	}

	missions := make([]catalog.ResolvedMission, len(m.missions))
	copy(missions, m.missions)
	spans := make([]catalog.Span, len(m.spans))
	copy(spans, m.spans)

	return Snapshot{
		Reading:         reading,
		LastUpdate:      m.lastUpdate,
		LastError:       m.lastError,
		ComputeDuration: m.computeDuration,
		Model:           m.model,
		Year:            year,
		Missions:        missions,
		Spans:           spans,
		Events:          m.getEventsOrdered(),
	}
}

// getEventsOrdered returns events in chronological order.
func (m *Manager) getEventsOrdered() []Event {
	if len(m.events) == 0 {
		return nil
	}

	// If buffer isn't full yet, just copy
	if len(m.events) < m.maxEvents {
		result := make([]Event, len(m.events))
		copy(result, m.events)
		return result
	}

	// Ring buffer is full, reorder from oldest to newest
	result := make([]Event, m.maxEvents)
	for i := 0; i < m.maxEvents; i++ {
		idx := (m.eventWriteAt + i) % m.maxEvents
		result[i] = m.events[idx]
	}
	return result
}

// RecentEvents returns the last n events.
func (m *Manager) RecentEvents(n int) []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := m.getEventsOrdered()
	if len(all) <= n {
		return all
	}
	return all[len(all)-n:]
}

// Model returns the solar longitude model in use.
func (m *Manager) Model() mars.Model {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.model
}

// RefreshInterval returns the configured refresh interval.
func (m *Manager) RefreshInterval() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.refreshInterval
}

// SetRefreshInterval updates the refresh interval.
func (m *Manager) SetRefreshInterval(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshInterval = d
}

// HasData returns true if at least one update succeeded.
func (m *Manager) HasData() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current != nil
}
