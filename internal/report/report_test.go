package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/litescript/ls-marstime/internal/catalog"
	"github.com/litescript/ls-marstime/internal/mars"
	"github.com/litescript/ls-marstime/internal/state"
)

var landing = time.Date(2021, 2, 18, 20, 55, 0, 0, time.UTC)

func testSnapshot(t *testing.T) state.Snapshot {
	t.Helper()
	m := state.NewManager(state.DefaultConfig())
	if err := m.Update(landing); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := m.SetCatalog(catalog.Defaults()); err != nil {
		t.Fatalf("SetCatalog: %v", err)
	}
	return m.Snapshot()
}

func TestExportSnapshot(t *testing.T) {
	export := ExportSnapshot(testSnapshot(t), landing)

	if export.Model != "high" {
		t.Errorf("Model = %q, want high", export.Model)
	}
	if export.Now == nil {
		t.Fatal("Now is nil")
	}
	if export.Now.MarsYear != 36 || math.Abs(export.Now.Sol-11.107) > 0.001 {
		t.Errorf("Now = MY%d sol %v", export.Now.MarsYear, export.Now.Sol)
	}
	// JD of 2021-02-18 20:55 UTC.
	if math.Abs(export.Now.JulianDate-2459264.371528) > 1e-5 {
		t.Errorf("JulianDate = %v", export.Now.JulianDate)
	}
	if export.Now.Season != "northern spring" || export.Now.NextSeason != "northern summer" {
		t.Errorf("seasons = %q -> %q", export.Now.Season, export.Now.NextSeason)
	}
	if export.Year == nil || len(export.Year.Events) != 6 {
		t.Fatalf("Year = %+v", export.Year)
	}
	if len(export.Missions) != 4 {
		t.Errorf("Missions count = %d, want 4", len(export.Missions))
	}
	if len(export.Spans) != 1 || export.Spans[0].Name != "Opportunity" {
		t.Errorf("Spans = %+v", export.Spans)
	}
	if export.Error != "" {
		t.Errorf("Error = %q, want empty", export.Error)
	}
}

func TestExportSnapshot_Empty(t *testing.T) {
	snap := state.Snapshot{LastError: errors.New("boom")}
	export := ExportSnapshot(snap, landing)

	if export.Now != nil || export.Year != nil {
		t.Error("empty snapshot should export no reading")
	}
	if export.Error != "boom" {
		t.Errorf("Error = %q, want boom", export.Error)
	}
	if export.Missions == nil {
		t.Error("Missions should be an empty list, not null")
	}
}

func TestSnapshotExport_WriteJSON(t *testing.T) {
	export := ExportSnapshot(testSnapshot(t), landing)

	var buf bytes.Buffer
	if err := export.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON error: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	for _, key := range []string{"generated_at", "model", "now", "year", "missions"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("JSON missing key %q", key)
		}
	}
	now := decoded["now"].(map[string]interface{})
	if now["mars_year"].(float64) != 36 {
		t.Errorf("now.mars_year = %v", now["mars_year"])
	}
}

func TestExportYearSorted(t *testing.T) {
	ev, err := mars.EventsOf(36)
	if err != nil {
		t.Fatal(err)
	}
	y := ExportYear(ev)
	for i := 1; i < len(y.Events); i++ {
		if y.Events[i].Sol < y.Events[i-1].Sol {
			t.Errorf("events not sorted by sol: %v before %v", y.Events[i-1].Name, y.Events[i].Name)
		}
	}
	if y.Events[0].Name != "northern spring equinox" {
		t.Errorf("first event = %q", y.Events[0].Name)
	}
}

func TestExportMissionsJulianDate(t *testing.T) {
	c := &catalog.Catalog{Missions: []catalog.Mission{
		{Name: "Epoch", Event: "J2000", Time: mars.J2000},
	}}
	resolved, err := c.Resolve(mars.ModelHighAccuracy)
	if err != nil {
		t.Fatal(err)
	}
	out := ExportMissions(resolved)
	if math.Abs(out[0].JulianDate-2451545.0) > 1e-9 {
		t.Errorf("JD(J2000) = %v, want 2451545.0", out[0].JulianDate)
	}
	if out[0].MarsYear != 24 {
		t.Errorf("MarsYear = %d, want 24", out[0].MarsYear)
	}
}

func TestWriteNow(t *testing.T) {
	snap := testSnapshot(t)

	var buf bytes.Buffer
	WriteNow(&buf, snap.Reading)
	out := buf.String()

	for _, want := range []string{"MY36 Sol 11.11", "Ls   5.65°", "northern spring", "2021-02-18T20:55:00Z"} {
		if !strings.Contains(out, want) {
			t.Errorf("WriteNow output missing %q: %q", want, out)
		}
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("WriteNow should write one line: %q", out)
	}

	buf.Reset()
	WriteNow(&buf, nil)
	if buf.String() != "no data\n" {
		t.Errorf("WriteNow(nil) = %q", buf.String())
	}
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	WriteSummary(&buf, testSnapshot(t))
	out := buf.String()

	for _, want := range []string{
		"Mars Time @ 2021-02-18T20:55:00Z",
		"Mars Year 36",
		"aphelion",
		"perihelion",
		"Perseverance",
		"MAVEN",
		"Total: 4 missions",
		"Opportunity: landing -> last contact",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}

func TestWriteMissions_Empty(t *testing.T) {
	var buf bytes.Buffer
	WriteMissions(&buf, nil)
	if !strings.Contains(buf.String(), "No missions") {
		t.Errorf("expected 'No missions' message, got: %s", buf.String())
	}
}

func TestConversion(t *testing.T) {
	m, err := mars.Parse("MY36Ls90")
	if err != nil {
		t.Fatal(err)
	}
	c := NewConversion("MY36Ls90", m, mars.ModelHighAccuracy)
	if c.MarsYear != 36 || math.Abs(c.SolarLongitude-90) > 1e-4 || c.Season != "northern summer" {
		t.Errorf("conversion = %+v", c)
	}
	if c.UTC.Year() != 2021 || c.UTC.Month() != time.August {
		t.Errorf("UTC = %v, want August 2021", c.UTC)
	}

	var buf bytes.Buffer
	WriteConversion(&buf, c)
	if !strings.Contains(buf.String(), "Canonical:         MY36Sol193.") {
		t.Errorf("WriteConversion output: %s", buf.String())
	}
}

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"Perseverance", 8, "Persev.."},
		{"abc", 2, "ab"},
	}
	for _, tt := range tests {
		if got := truncateStr(tt.input, tt.maxLen); got != tt.want {
			t.Errorf("truncateStr(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}
