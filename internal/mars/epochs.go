package mars

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// EpochEntry is one row of the epoch table.
type EpochEntry struct {
	Year           int
	Start          time.Time
	DaysSinceJ2000 float64
}

// yearStarts mirrors yearStartDays as UTC instants. Built once in init and
// never written again.
var yearStarts []time.Time

func init() {
	yearStarts = make([]time.Time, len(yearStartDays))
	for i, days := range yearStartDays {
		yearStarts[i] = J2000.Add(time.Duration(math.Round(days * SecondsPerDay * 1e9)))
	}
}

// firstTabulatedYear is the year of yearStartDays[0].
const firstTabulatedYear = MinYear

// lastTabulatedYear is the year of the final table entry (MaxYear+1).
const lastTabulatedYear = MinYear + len(yearStartDays) - 1

func tableIndex(year int) (int, error) {
	if year < firstTabulatedYear || year > lastTabulatedYear {
		return 0, fmt.Errorf("year %d outside %d..%d: %w",
			year, firstTabulatedYear, lastTabulatedYear, ErrYearNotTabulated)
	}
	return year - firstTabulatedYear, nil
}

// YearStart returns the UTC instant at which the given Mars year begins.
func YearStart(year int) (time.Time, error) {
	idx, err := tableIndex(year)
	if err != nil {
		return time.Time{}, err
	}
	return yearStarts[idx], nil
}

// SolsInYear returns the number of sols in the given Mars year. Both year and
// year+1 must be tabulated.
func SolsInYear(year int) (float64, error) {
	idx, err := tableIndex(year)
	if err != nil {
		return 0, err
	}
	if _, err := tableIndex(year + 1); err != nil {
		return 0, err
	}
	return yearStarts[idx+1].Sub(yearStarts[idx]).Seconds() / SecondsPerSol, nil
}

// EpochTable returns a copy of the full epoch table in year order.
func EpochTable() []EpochEntry {
	entries := make([]EpochEntry, len(yearStartDays))
	for i, days := range yearStartDays {
		entries[i] = EpochEntry{
			Year:           firstTabulatedYear + i,
			Start:          yearStarts[i],
			DaysSinceJ2000: days,
		}
	}
	return entries
}

// yearContaining returns the greatest tabulated year whose start is not after t.
func yearContaining(t time.Time) (int, error) {
	// First index whose start is strictly after t.
	idx := sort.Search(len(yearStarts), func(i int) bool {
		return yearStarts[i].After(t)
	})
	if idx == 0 {
		return 0, fmt.Errorf("%s precedes Mars year %d: %w",
			t.Format(time.RFC3339), firstTabulatedYear, ErrYearNotTabulated)
	}
	return firstTabulatedYear + idx - 1, nil
}
