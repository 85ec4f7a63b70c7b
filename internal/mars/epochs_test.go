package mars

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestYearStart(t *testing.T) {
	tests := []struct {
		name string
		year int
		want time.Time
	}{
		{"MY0 (1953)", 0, time.Date(1953, 5, 24, 12, 0, 47, 0, time.UTC)},
		{"MY33 (2015)", 33, time.Date(2015, 6, 18, 12, 20, 31, 0, time.UTC)},
		{"MY36 (2021)", 36, time.Date(2021, 2, 7, 11, 1, 6, 0, time.UTC)},
		{"MY99 (2139)", 99, time.Date(2139, 8, 7, 15, 7, 47, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := YearStart(tt.year)
			if err != nil {
				t.Fatalf("YearStart(%d) error: %v", tt.year, err)
			}
			if d := got.Sub(tt.want); d > 2*time.Second || d < -2*time.Second {
				t.Errorf("YearStart(%d) = %v, want %v (±2s)", tt.year, got, tt.want)
			}
		})
	}
}

func TestYearStartNotTabulated(t *testing.T) {
	for _, year := range []int{MinYear - 1, MaxYear + 2, 1000} {
		if _, err := YearStart(year); !errors.Is(err, ErrYearNotTabulated) {
			t.Errorf("YearStart(%d) error = %v, want ErrYearNotTabulated", year, err)
		}
	}
}

func TestSolsInYear(t *testing.T) {
	for year := MinYear; year <= MaxYear; year++ {
		n, err := SolsInYear(year)
		if err != nil {
			t.Fatalf("SolsInYear(%d) error: %v", year, err)
		}
		if n < 668.55 || n > 668.64 {
			t.Errorf("SolsInYear(%d) = %v, want within [668.55, 668.64]", year, n)
		}
	}

	n, _ := SolsInYear(0)
	if math.Abs(n-668.5734) > 0.001 {
		t.Errorf("SolsInYear(0) = %v, want 668.5734", n)
	}

	// The final table entry only bounds MaxYear; it has no length of its own.
	if _, err := SolsInYear(MaxYear + 1); !errors.Is(err, ErrYearNotTabulated) {
		t.Errorf("SolsInYear(MaxYear+1) error = %v, want ErrYearNotTabulated", err)
	}
}

func TestEpochTable(t *testing.T) {
	table := EpochTable()
	if len(table) != MaxYear-MinYear+2 {
		t.Fatalf("len(EpochTable()) = %d, want %d", len(table), MaxYear-MinYear+2)
	}
	if table[0].Year != MinYear || table[len(table)-1].Year != MaxYear+1 {
		t.Errorf("table spans MY%d..MY%d", table[0].Year, table[len(table)-1].Year)
	}
	for i := 1; i < len(table); i++ {
		if !table[i].Start.After(table[i-1].Start) {
			t.Errorf("MY%d start %v not after MY%d start %v",
				table[i].Year, table[i].Start, table[i-1].Year, table[i-1].Start)
		}
		if table[i].DaysSinceJ2000 <= table[i-1].DaysSinceJ2000 {
			t.Errorf("MY%d days not increasing", table[i].Year)
		}
	}

	// Mutating the copy must not affect the package table.
	table[0].Year = 12345
	if EpochTable()[0].Year != MinYear {
		t.Error("EpochTable() returned shared storage")
	}
}

func TestYearStartsAtSpringEquinox(t *testing.T) {
	for _, year := range []int{MinYear, -50, 0, 24, 36, MaxYear} {
		start, _ := YearStart(year)
		ls := SolarLongitude(start)
		if d := math.Abs(wrapAngle180(ls)); d > 1e-4 {
			t.Errorf("Ls at start of MY%d = %v, want 0", year, ls)
		}
	}
}
