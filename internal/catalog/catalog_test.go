package catalog

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/litescript/ls-marstime/internal/logging"
	"github.com/litescript/ls-marstime/internal/mars"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(c.Missions) != len(Defaults().Missions) {
		t.Errorf("Load() of missing file returned %d missions, want defaults", len(c.Missions))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "missions.toml")
	want := Defaults()
	want.Missions[0].Notes = "Eagle crater"

	if err := Save(path, want); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(got.Missions) != len(want.Missions) {
		t.Fatalf("got %d missions, want %d", len(got.Missions), len(want.Missions))
	}
	for i := range want.Missions {
		g, w := got.Missions[i], want.Missions[i]
		if g.Name != w.Name || g.Event != w.Event || g.Notes != w.Notes || !g.Time.Equal(w.Time) {
			t.Errorf("mission %d = %+v, want %+v", i, g, w)
		}
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not toml", "[[mission]\nname = "},
		{"missing name", "[[mission]]\nevent = \"landing\"\ntime = 2021-02-18T20:55:00Z\n"},
		{"missing event", "[[mission]]\nname = \"Zhurong\"\ntime = 2021-05-14T23:18:00Z\n"},
		{"missing time", "[[mission]]\nname = \"Zhurong\"\nevent = \"landing\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "missions.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load() succeeded, want error")
			}
		})
	}
}

func TestLoad_SortsByTime(t *testing.T) {
	content := `
[[mission]]
name = "Perseverance"
event = "landing"
time = 2021-02-18T20:55:00Z

[[mission]]
name = "Curiosity"
event = "landing"
time = 2012-08-06T05:17:00Z
`
	path := filepath.Join(t.TempDir(), "missions.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Missions[0].Name != "Curiosity" {
		t.Errorf("first mission = %s, want Curiosity", c.Missions[0].Name)
	}
}

func TestMerge(t *testing.T) {
	base := Defaults()
	corrected := time.Date(2021, 2, 18, 20, 44, 0, 0, time.UTC)
	overlay := &Catalog{Missions: []Mission{
		{Name: "Perseverance", Event: "landing", Time: corrected},
		{Name: "Curiosity", Event: "landing", Time: time.Date(2012, 8, 6, 5, 17, 0, 0, time.UTC)},
	}}

	merged := Merge(base, overlay)
	if len(merged.Missions) != len(base.Missions)+1 {
		t.Fatalf("merged has %d missions, want %d", len(merged.Missions), len(base.Missions)+1)
	}

	var found bool
	for _, m := range merged.Missions {
		if m.Key() == "Perseverance/landing" {
			found = true
			if !m.Time.Equal(corrected) {
				t.Errorf("Perseverance landing = %v, want overlay %v", m.Time, corrected)
			}
		}
	}
	if !found {
		t.Error("Perseverance landing missing after merge")
	}
	for i := 1; i < len(merged.Missions); i++ {
		if merged.Missions[i].Time.Before(merged.Missions[i-1].Time) {
			t.Error("merged catalog not sorted by time")
		}
	}
	// Inputs are untouched.
	if len(base.Missions) != 4 || len(overlay.Missions) != 2 {
		t.Error("Merge modified its inputs")
	}
}

func TestResolve(t *testing.T) {
	resolved, err := Defaults().Resolve(mars.ModelHighAccuracy)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	tests := []struct {
		key      string
		wantYear int
		wantSol  float64
		wantLs   float64
		season   mars.Season
	}{
		{"Opportunity/landing", 26, 629.186, 339.107, mars.NorthernWinter},
		{"MAVEN/orbit insertion", 32, 406.355, 200.553, mars.NorthernAutumn},
		{"Perseverance/landing", 36, 11.107, 5.649, mars.NorthernSpring},
	}

	byKey := make(map[string]ResolvedMission)
	for _, r := range resolved {
		byKey[r.Key()] = r
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			r, ok := byKey[tt.key]
			if !ok {
				t.Fatalf("%s not resolved", tt.key)
			}
			if r.Mars.Year() != tt.wantYear || math.Abs(r.Mars.Sol()-tt.wantSol) > 0.001 {
				t.Errorf("Mars = %v (sol %.4f), want MY%d sol %v", r.Mars, r.Mars.Sol(), tt.wantYear, tt.wantSol)
			}
			if math.Abs(r.SolarLongitude-tt.wantLs) > 1 {
				t.Errorf("Ls = %v, want ~%v", r.SolarLongitude, tt.wantLs)
			}
			if r.Season != tt.season {
				t.Errorf("Season = %v, want %v", r.Season, tt.season)
			}
		})
	}
}

func TestResolveOutOfRange(t *testing.T) {
	c := &Catalog{Missions: []Mission{
		{Name: "Galileo", Event: "telescope", Time: time.Date(1610, 1, 7, 0, 0, 0, 0, time.UTC)},
	}}
	_, err := c.Resolve(mars.ModelHighAccuracy)
	if !errors.Is(err, ErrUnresolvable) || !errors.Is(err, mars.ErrYearNotTabulated) {
		t.Errorf("Resolve() error = %v, want ErrUnresolvable wrapping ErrYearNotTabulated", err)
	}
}

func TestSpans(t *testing.T) {
	spans := Defaults().Spans()
	if len(spans) != 1 {
		t.Fatalf("Spans() returned %d spans, want 1 (Opportunity)", len(spans))
	}
	s := spans[0]
	if s.Name != "Opportunity" || s.From.Event != "landing" || s.To.Event != "last contact" {
		t.Errorf("span = %+v", s)
	}
	if s.Sols < 5100 || s.Sols > 5120 {
		t.Errorf("Opportunity span = %v sols, want ~5110", s.Sols)
	}
	if s.Delta.Year() != 8 {
		t.Errorf("Opportunity span delta = %v, want 8 years apart", s.Delta)
	}
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missions.toml")
	if err := Save(path, Defaults()); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path, logging.Discard())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	updated := Merge(Defaults(), &Catalog{Missions: []Mission{
		{Name: "Zhurong", Event: "landing", Time: time.Date(2021, 5, 14, 23, 18, 0, 0, time.UTC)},
	}})
	if err := Save(path, updated); err != nil {
		t.Fatal(err)
	}

	select {
	case r := <-w.Reloads:
		if r.Err != nil {
			t.Fatalf("reload error: %v", r.Err)
		}
		if len(r.Catalog.Missions) != 5 {
			t.Errorf("reloaded catalog has %d missions, want 5", len(r.Catalog.Missions))
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within 5s")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missions.toml")

	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case r := <-w.Reloads:
		t.Errorf("unexpected reload: %+v", r)
	case <-time.After(400 * time.Millisecond):
	}
}
