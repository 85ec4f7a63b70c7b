package mars

import (
	"errors"
	"math"
	"testing"
)

func TestFindAphelionPerihelion(t *testing.T) {
	tests := []struct {
		name    string
		find    func(int) (MarsTime, error)
		year    int
		wantSol float64
		wantLs  float64
	}{
		{"aphelion MY0", FindAphelion, 0, 150.428, 70.677},
		{"perihelion MY0", FindPerihelion, 0, 484.598, 250.613},
		{"aphelion MY33", FindAphelion, 33, 151.213, 71.070},
		{"perihelion MY33", FindPerihelion, 33, 485.699, 251.166},
		{"aphelion MY36", FindAphelion, 36, 151.403, 71.174},
		{"perihelion MY36", FindPerihelion, 36, 485.707, 251.178},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.find(tt.year)
			if err != nil {
				t.Fatalf("error: %v", err)
			}
			if got.Year() != tt.year || math.Abs(got.Sol()-tt.wantSol) > 0.05 {
				t.Errorf("got %v (sol %.4f), want MY%d sol %v", got, got.Sol(), tt.year, tt.wantSol)
			}
			if ls := got.SolarLongitude(); math.Abs(ls-tt.wantLs) > 0.05 {
				t.Errorf("Ls = %v, want %v", ls, tt.wantLs)
			}
		})
	}
}

func TestOrbitEventsNearMeans(t *testing.T) {
	for _, year := range []int{MinYear, -30, 10, 50, MaxYear} {
		aph, err := FindAphelion(year)
		if err != nil {
			t.Fatalf("FindAphelion(%d): %v", year, err)
		}
		per, err := FindPerihelion(year)
		if err != nil {
			t.Fatalf("FindPerihelion(%d): %v", year, err)
		}
		if math.Abs(aph.Sol()-AphelionSol) > 5 {
			t.Errorf("MY%d aphelion sol %v far from mean %v", year, aph.Sol(), AphelionSol)
		}
		if math.Abs(per.Sol()-PerihelionSol) > 5 {
			t.Errorf("MY%d perihelion sol %v far from mean %v", year, per.Sol(), PerihelionSol)
		}
		// Ls advances slowest at aphelion and fastest at perihelion.
		if longitudeRate(daysSinceJ2000(aph.Time())) >= longitudeRate(daysSinceJ2000(per.Time())) {
			t.Errorf("MY%d: aphelion rate not below perihelion rate", year)
		}
	}
}

func TestFindAphelionErrors(t *testing.T) {
	if _, err := FindAphelion(MaxYear + 1); !errors.Is(err, ErrYearNotTabulated) {
		t.Errorf("FindAphelion(MaxYear+1) error = %v, want ErrYearNotTabulated", err)
	}
	if _, err := FindPerihelion(MinYear - 1); !errors.Is(err, ErrYearNotTabulated) {
		t.Errorf("FindPerihelion(MinYear-1) error = %v, want ErrYearNotTabulated", err)
	}
}

func TestEventsOf(t *testing.T) {
	ev, err := EventsOf(36)
	if err != nil {
		t.Fatal(err)
	}
	start, _ := YearStart(36)
	if !ev.Start.Equal(start) || ev.Year != 36 {
		t.Errorf("EventsOf(36) start = %v, year %d", ev.Start, ev.Year)
	}
	if math.Abs(ev.Aphelion.Sol()-151.403) > 0.05 || math.Abs(ev.Perihelion.Sol()-485.707) > 0.05 {
		t.Errorf("EventsOf(36) aphelion %v perihelion %v", ev.Aphelion, ev.Perihelion)
	}
	wantSeasons := [4]float64{0, 193.2304, 371.8932, 514.6510}
	for s, want := range wantSeasons {
		if got := ev.Seasons[s].Sol(); math.Abs(got-want) > 0.001 {
			t.Errorf("EventsOf(36) %v sol = %v, want %v", Season(s), got, want)
		}
	}

	if _, err := EventsOf(MaxYear + 1); !errors.Is(err, ErrYearNotTabulated) {
		t.Errorf("EventsOf(MaxYear+1) error = %v, want ErrYearNotTabulated", err)
	}
}
