// Package report renders Mars calendar state as JSON and plain-text tables
// for the headless CLI modes.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/soniakeys/meeus/v3/julian"

	"github.com/litescript/ls-marstime/internal/catalog"
	"github.com/litescript/ls-marstime/internal/mars"
	"github.com/litescript/ls-marstime/internal/state"
)

// SnapshotExport is the JSON-serializable representation of application state.
type SnapshotExport struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Model       string          `json:"model"`
	Now         *NowExport      `json:"now,omitempty"`
	Year        *YearExport     `json:"year,omitempty"`
	Missions    []MissionExport `json:"missions"`
	Spans       []SpanExport    `json:"spans,omitempty"`
	Events      []state.Event   `json:"events,omitempty"`
	Error       string          `json:"error,omitempty"`
}

// NowExport is the current Mars calendar reading.
type NowExport struct {
	UTC            time.Time `json:"utc"`
	JulianDate     float64   `json:"julian_date"`
	MarsYear       int       `json:"mars_year"`
	Sol            float64   `json:"sol"`
	SolarLongitude float64   `json:"solar_longitude"`
	Season         string    `json:"season"`
	YearFraction   float64   `json:"year_fraction"`
	SolsInYear     float64   `json:"sols_in_year"`
	NextBoundary   time.Time `json:"next_boundary"`
	NextSeason     string    `json:"next_season"`
}

// YearExport lists the orbit landmarks of a Mars year.
type YearExport struct {
	MarsYear int           `json:"mars_year"`
	Start    time.Time     `json:"start"`
	Sols     float64       `json:"sols"`
	Events   []EventExport `json:"events"`
}

// EventExport is one orbit landmark.
type EventExport struct {
	Name           string    `json:"name"`
	UTC            time.Time `json:"utc"`
	Sol            float64   `json:"sol"`
	SolarLongitude float64   `json:"solar_longitude"`
}

// MissionExport is a catalog mission placed on the Mars calendar.
type MissionExport struct {
	Name           string    `json:"name"`
	Event          string    `json:"event"`
	UTC            time.Time `json:"utc"`
	JulianDate     float64   `json:"julian_date"`
	MarsYear       int       `json:"mars_year"`
	Sol            float64   `json:"sol"`
	SolarLongitude float64   `json:"solar_longitude"`
	Season         string    `json:"season"`
}

// SpanExport is the duration of a mission in sols.
type SpanExport struct {
	Name  string  `json:"name"`
	From  string  `json:"from"`
	To    string  `json:"to"`
	Sols  float64 `json:"sols"`
	Years float64 `json:"mars_years"`
}

// ExportSnapshot converts a state snapshot to an exportable format.
func ExportSnapshot(snap state.Snapshot, generatedAt time.Time) *SnapshotExport {
	export := &SnapshotExport{
		GeneratedAt: generatedAt.UTC(),
		Model:       snap.Model.String(),
		Missions:    ExportMissions(snap.Missions),
		Events:      snap.Events,
	}
	if snap.LastError != nil {
		export.Error = snap.LastError.Error()
	}
	if r := snap.Reading; r != nil {
		export.Now = &NowExport{
			UTC:            r.At,
			JulianDate:     julian.TimeToJD(r.At),
			MarsYear:       r.Mars.Year(),
			Sol:            r.Mars.Sol(),
			SolarLongitude: r.SolarLongitude,
			Season:         r.Season.String(),
			YearFraction:   r.YearFraction,
			SolsInYear:     r.SolsInYear,
			NextBoundary:   r.NextBoundary,
			NextSeason:     r.NextSeason.String(),
		}
	}
	if snap.Year != nil {
		export.Year = ExportYear(*snap.Year)
	}
	for _, s := range snap.Spans {
		export.Spans = append(export.Spans, SpanExport{
			Name:  s.Name,
			From:  s.From.Event,
			To:    s.To.Event,
			Sols:  s.Sols,
			Years: s.Sols / mars.SolsPerYear,
		})
	}
	return export
}

// ExportYear converts orbit landmarks to an exportable format, ordered by sol.
func ExportYear(ev mars.YearEvents) *YearExport {
	return &YearExport{
		MarsYear: ev.Year,
		Start:    ev.Start,
		Sols:     ev.Sols,
		Events:   YearEventRows(ev),
	}
}

// ExportMissions converts resolved missions to an exportable format.
func ExportMissions(missions []catalog.ResolvedMission) []MissionExport {
	out := make([]MissionExport, 0, len(missions))
	for _, m := range missions {
		out = append(out, MissionExport{
			Name:           m.Name,
			Event:          m.Event,
			UTC:            m.Time.UTC(),
			JulianDate:     julian.TimeToJD(m.Time),
			MarsYear:       m.Mars.Year(),
			Sol:            m.Mars.Sol(),
			SolarLongitude: m.SolarLongitude,
			Season:         m.Season.String(),
		})
	}
	return out
}

// WriteJSON writes the snapshot as JSON to the given writer.
func (s *SnapshotExport) WriteJSON(w io.Writer) error {
	return writeJSON(w, s)
}

// WriteJSON writes any export value as indented JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	return writeJSON(w, v)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// YearEventRows lists the orbit landmarks of ev in sol order.
func YearEventRows(ev mars.YearEvents) []EventExport {
	rows := []EventExport{
		landmark("northern spring equinox", ev.Seasons[mars.NorthernSpring]),
		landmark("aphelion", ev.Aphelion),
		landmark("northern summer solstice", ev.Seasons[mars.NorthernSummer]),
		landmark("northern autumn equinox", ev.Seasons[mars.NorthernAutumn]),
		landmark("perihelion", ev.Perihelion),
		landmark("northern winter solstice", ev.Seasons[mars.NorthernWinter]),
	}
	// Order by sol.
	for i := 1; i < len(rows); i++ {
		for j := i; j > 0 && rows[j].Sol < rows[j-1].Sol; j-- {
			rows[j], rows[j-1] = rows[j-1], rows[j]
		}
	}
	return rows
}

func landmark(name string, m mars.MarsTime) EventExport {
	return EventExport{
		Name:           name,
		UTC:            m.Time(),
		Sol:            m.Sol(),
		SolarLongitude: m.SolarLongitude(),
	}
}

// WriteNow writes a single-line reading, suitable for status bars.
func WriteNow(w io.Writer, r *state.Reading) {
	if r == nil {
		fmt.Fprintln(w, "no data")
		return
	}
	fmt.Fprintf(w, "%s  Ls %6.2f°  %s  (%s)\n",
		r.Mars, r.SolarLongitude, r.Season, r.At.Format(time.RFC3339))
}

// WriteSummary writes the current reading, the year's landmarks and the
// mission table.
func WriteSummary(w io.Writer, snap state.Snapshot) {
	fmt.Fprintf(w, "Mars Time @ %s (model: %s)\n", snap.LastUpdate.UTC().Format(time.RFC3339), snap.Model)
	fmt.Fprintln(w, strings.Repeat("─", 78))

	if snap.LastError != nil {
		fmt.Fprintf(w, "Error: %v\n", snap.LastError)
	}
	if r := snap.Reading; r != nil {
		fmt.Fprintf(w, "%-18s %s\n", "Mars time:", r.Mars)
		fmt.Fprintf(w, "%-18s %.3f°\n", "Solar longitude:", r.SolarLongitude)
		fmt.Fprintf(w, "%-18s %s (%.1f%% of year, %.2f sols)\n", "Season:", r.Season, r.YearFraction*100, r.SolsInYear)
		fmt.Fprintf(w, "%-18s %s at %s\n", "Next boundary:", r.NextSeason, r.NextBoundary.Format(time.RFC3339))
		fmt.Fprintf(w, "%-18s %.5f\n", "Julian date:", julian.TimeToJD(r.At))
	}

	if snap.Year != nil {
		fmt.Fprintln(w)
		WriteYear(w, *snap.Year)
	}

	fmt.Fprintln(w)
	WriteMissions(w, snap.Missions)

	if len(snap.Spans) > 0 {
		fmt.Fprintln(w)
		for _, s := range snap.Spans {
			fmt.Fprintf(w, "%s: %s -> %s, %.1f sols (%.2f Mars years)\n",
				s.Name, s.From.Event, s.To.Event, s.Sols, s.Sols/mars.SolsPerYear)
		}
	}
}

// WriteYear writes the orbit landmarks of a Mars year as a table.
func WriteYear(w io.Writer, ev mars.YearEvents) {
	fmt.Fprintf(w, "Mars Year %d: starts %s, %.3f sols\n", ev.Year, ev.Start.Format(time.RFC3339), ev.Sols)
	fmt.Fprintln(w, strings.Repeat("─", 78))
	fmt.Fprintf(w, "%-26s %-22s %9s %9s\n", "Event", "UTC", "Sol", "Ls")
	fmt.Fprintln(w, strings.Repeat("─", 78))
	for _, row := range YearEventRows(ev) {
		fmt.Fprintf(w, "%-26s %-22s %9.2f %8.2f°\n",
			row.Name, row.UTC.Format(time.RFC3339), row.Sol, row.SolarLongitude)
	}
}

// WriteMissions writes the mission table.
func WriteMissions(w io.Writer, missions []catalog.ResolvedMission) {
	fmt.Fprintln(w, "Missions")
	fmt.Fprintln(w, strings.Repeat("─", 100))

	if len(missions) == 0 {
		fmt.Fprintln(w, "No missions")
		return
	}

	fmt.Fprintf(w, "%-14s %-16s %-22s %-13s %-16s %8s  %-16s\n",
		"Mission", "Event", "UTC", "JD", "Mars", "Ls", "Season")
	fmt.Fprintln(w, strings.Repeat("─", 100))
	for _, m := range missions {
		fmt.Fprintf(w, "%-14s %-16s %-22s %-13.4f %-16s %7.2f°  %-16s\n",
			truncateStr(m.Name, 14),
			truncateStr(m.Event, 16),
			m.Time.UTC().Format(time.RFC3339),
			julian.TimeToJD(m.Time),
			m.Mars,
			m.SolarLongitude,
			m.Season,
		)
	}

	fmt.Fprintf(w, "\nTotal: %d missions\n", len(missions))
}

// Conversion is the result of converting one input with the convert command.
type Conversion struct {
	Input          string    `json:"input"`
	UTC            time.Time `json:"utc"`
	JulianDate     float64   `json:"julian_date"`
	MarsYear       int       `json:"mars_year"`
	Sol            float64   `json:"sol"`
	Canonical      string    `json:"canonical"`
	SolarLongitude float64   `json:"solar_longitude"`
	Season         string    `json:"season"`
}

// NewConversion describes m with its solar longitude computed by model.
func NewConversion(input string, m mars.MarsTime, model mars.Model) Conversion {
	t := m.Time()
	ls := mars.SolarLongitudeWith(t, model)
	return Conversion{
		Input:          input,
		UTC:            t,
		JulianDate:     julian.TimeToJD(t),
		MarsYear:       m.Year(),
		Sol:            m.Sol(),
		Canonical:      m.Format(),
		SolarLongitude: ls,
		Season:         mars.SeasonOf(ls).String(),
	}
}

// WriteConversion writes a conversion as aligned key/value lines.
func WriteConversion(w io.Writer, c Conversion) {
	fmt.Fprintf(w, "%-18s %s\n", "Input:", c.Input)
	fmt.Fprintf(w, "%-18s %s\n", "UTC:", c.UTC.Format(time.RFC3339Nano))
	fmt.Fprintf(w, "%-18s %.6f\n", "Julian date:", c.JulianDate)
	fmt.Fprintf(w, "%-18s MY%d Sol %.4f\n", "Mars time:", c.MarsYear, c.Sol)
	fmt.Fprintf(w, "%-18s %s\n", "Canonical:", c.Canonical)
	fmt.Fprintf(w, "%-18s %.4f°\n", "Solar longitude:", c.SolarLongitude)
	fmt.Fprintf(w, "%-18s %s\n", "Season:", c.Season)
}

func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-2] + ".."
}
