package mars

import (
	"fmt"
	"math"
	"time"
)

// FromTime converts a UTC instant to a MarsTime. Times in other locations are
// converted to UTC first; the zero time is rejected.
func FromTime(t time.Time) (MarsTime, error) {
	if t.IsZero() {
		return MarsTime{}, fmt.Errorf("convert zero time: %w", ErrInvalidTime)
	}
	t = t.UTC()

	year, err := yearContaining(t)
	if err != nil {
		return MarsTime{}, err
	}
	if year > MaxYear {
		return MarsTime{}, fmt.Errorf("%s is after Mars year %d: %w", t.Format(time.RFC3339), MaxYear, ErrYearNotTabulated)
	}
	start := yearStarts[year-firstTabulatedYear]
	sols := secondsBetween(start, t) / SecondsPerSol

	// Routed through Add so elapsed time beyond one year rolls into the
	// following years.
	return MarsTime{year: year}.Add(Delta{sol: sols})
}

// Time returns the UTC instant corresponding to m.
func (m MarsTime) Time() time.Time {
	start := yearStarts[m.year-firstTabulatedYear]
	return start.Add(solsToDuration(m.sol))
}

// ToTime converts m to a UTC instant, re-validating the year against the
// epoch table.
func ToTime(m MarsTime) (time.Time, error) {
	if m.year < MinYear || m.year > MaxYear {
		return time.Time{}, fmt.Errorf("year %d: %w", m.year, ErrYearNotTabulated)
	}
	return m.Time(), nil
}

// Current returns the Mars time at clock.Now().
func Current(clock Clock) (MarsTime, error) {
	return FromTime(clock.Now())
}

// SolsBetween returns the number of sols elapsed from a to b. The result is
// negative when b precedes a.
func SolsBetween(a, b time.Time) float64 {
	return secondsBetween(a, b) / SecondsPerSol
}

// SolsSince returns the number of sols elapsed from t to clock.Now().
func SolsSince(t time.Time, clock Clock) float64 {
	return SolsBetween(t, clock.Now())
}

// FractionalYear returns the year plus the elapsed fraction of that year.
func FractionalYear(m MarsTime) float64 {
	n, err := SolsInYear(m.year)
	if err != nil {
		return float64(m.year)
	}
	return float64(m.year) + m.sol/n
}

// daysSinceJ2000 returns the signed, fractional number of days from J2000 to t.
func daysSinceJ2000(t time.Time) float64 {
	return secondsBetween(J2000, t) / SecondsPerDay
}

// secondsBetween returns b-a in seconds without the ~292 year limit of
// time.Duration.
func secondsBetween(a, b time.Time) float64 {
	return float64(b.Unix()-a.Unix()) + float64(b.Nanosecond()-a.Nanosecond())/1e9
}

func solsToDuration(sols float64) time.Duration {
	return time.Duration(math.Round(sols * SecondsPerSol * 1e9))
}

func daysToTime(days float64) time.Time {
	return J2000.Add(time.Duration(math.Round(days * SecondsPerDay * 1e9)))
}
