package mars

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestFromTime(t *testing.T) {
	tests := []struct {
		name     string
		time     time.Time
		wantYear int
		wantSol  float64
	}{
		{"J2000", J2000, 24, 521.3803},
		{"Opportunity landing", time.Date(2004, 1, 25, 5, 5, 0, 0, time.UTC), 26, 629.1859},
		{"MAVEN orbit insertion", time.Date(2014, 9, 22, 2, 24, 0, 0, time.UTC), 32, 406.3547},
		{"2020-01-01", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), 35, 275.9401},
		{"Perseverance landing", time.Date(2021, 2, 18, 20, 55, 0, 0, time.UTC), 36, 11.1071},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromTime(tt.time)
			if err != nil {
				t.Fatalf("FromTime(%v) error: %v", tt.time, err)
			}
			if got.Year() != tt.wantYear || math.Abs(got.Sol()-tt.wantSol) > 0.001 {
				t.Errorf("FromTime(%v) = %v (sol %.6f), want MY%d sol %v",
					tt.time, got, got.Sol(), tt.wantYear, tt.wantSol)
			}
		})
	}
}

func TestFromTimeNonUTC(t *testing.T) {
	utc := time.Date(2021, 2, 18, 20, 55, 0, 0, time.UTC)
	pasadena := utc.In(time.FixedZone("PST", -8*3600))

	a, _ := FromTime(utc)
	b, err := FromTime(pasadena)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Errorf("FromTime in another zone = %v, want %v", b, a)
	}
}

func TestFromTimeErrors(t *testing.T) {
	tests := []struct {
		name    string
		time    time.Time
		wantErr error
	}{
		{"zero time", time.Time{}, ErrInvalidTime},
		{"before table", time.Date(1700, 1, 1, 0, 0, 0, 0, time.UTC), ErrYearNotTabulated},
		{"after table", time.Date(2200, 1, 1, 0, 0, 0, 0, time.UTC), ErrYearNotTabulated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromTime(tt.time); !errors.Is(err, tt.wantErr) {
				t.Errorf("FromTime(%v) error = %v, want %v", tt.time, err, tt.wantErr)
			}
		})
	}
}

func TestFromTimeYearBoundary(t *testing.T) {
	start, _ := YearStart(34)

	at, err := FromTime(start)
	if err != nil {
		t.Fatal(err)
	}
	if at.Year() != 34 || at.Sol() != 0 {
		t.Errorf("FromTime(start of MY34) = %v, want MY34 Sol 0", at)
	}

	before, err := FromTime(start.Add(-time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	n33, _ := SolsInYear(33)
	if before.Year() != 33 || before.Sol() < n33-1e-6 || before.Sol() >= n33 {
		t.Errorf("FromTime(just before MY34) = %v (sol %.9f), want MY33 sol just under %.9f",
			before, before.Sol(), n33)
	}
}

func TestTimeRoundTrip(t *testing.T) {
	for year := MinYear; year <= MaxYear; year += 7 {
		for _, sol := range []float64{0, 0.25, 123.456, 400, 668.5} {
			m, err := New(year, sol)
			if err != nil {
				t.Fatalf("New(%d, %v): %v", year, sol, err)
			}
			back, err := FromTime(m.Time())
			if err != nil {
				t.Fatalf("FromTime(%v): %v", m.Time(), err)
			}
			if back.Year() != year || math.Abs(back.Sol()-sol) > 1e-6 {
				t.Errorf("round trip of %v = %v (sol %.9f)", m, back, back.Sol())
			}
		}
	}
}

func TestTimeRoundTripFromUTC(t *testing.T) {
	base := time.Date(1980, 3, 1, 6, 30, 0, 0, time.UTC)
	for i := 0; i < 50; i++ {
		utc := base.AddDate(0, 0, i*311)
		m, err := FromTime(utc)
		if err != nil {
			t.Fatal(err)
		}
		if d := m.Time().Sub(utc); d > time.Microsecond || d < -time.Microsecond {
			t.Errorf("FromTime(%v).Time() off by %v", utc, d)
		}
	}
}

func TestToTimeUntabulated(t *testing.T) {
	if _, err := ToTime(MarsTime{year: 150}); !errors.Is(err, ErrYearNotTabulated) {
		t.Errorf("ToTime(MY150) error = %v, want ErrYearNotTabulated", err)
	}
	m, _ := New(36, 11)
	got, err := ToTime(m)
	if err != nil || !got.Equal(m.Time()) {
		t.Errorf("ToTime(%v) = %v, %v", m, got, err)
	}
}

func TestCurrent(t *testing.T) {
	clock := FixedClock{T: time.Date(2021, 2, 18, 20, 55, 0, 0, time.UTC)}
	got, err := Current(clock)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := FromTime(clock.T)
	if !got.Equal(want) {
		t.Errorf("Current() = %v, want %v", got, want)
	}
}

func TestSolsBetween(t *testing.T) {
	a := time.Date(2004, 1, 25, 5, 5, 0, 0, time.UTC)
	b := a.Add(time.Duration(SecondsPerSol*1e9) * 10)

	if got := SolsBetween(a, b); math.Abs(got-10) > 1e-9 {
		t.Errorf("SolsBetween = %v, want 10", got)
	}
	if got := SolsBetween(b, a); math.Abs(got+10) > 1e-9 {
		t.Errorf("SolsBetween reversed = %v, want -10", got)
	}
	if got := SolsSince(a, FixedClock{T: b}); math.Abs(got-10) > 1e-9 {
		t.Errorf("SolsSince = %v, want 10", got)
	}

	// Opportunity: landing to last contact is a little over 5100 sols.
	lastContact := time.Date(2018, 6, 10, 0, 0, 0, 0, time.UTC)
	if got := SolsBetween(a, lastContact); got < 5100 || got > 5120 {
		t.Errorf("Opportunity mission length = %v sols", got)
	}
}

func TestFractionalYear(t *testing.T) {
	n, _ := SolsInYear(33)
	m, _ := New(33, n/2)
	if got := FractionalYear(m); math.Abs(got-33.5) > 1e-12 {
		t.Errorf("FractionalYear(%v) = %v, want 33.5", m, got)
	}
}
