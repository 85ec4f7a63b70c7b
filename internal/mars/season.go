package mars

import (
	"fmt"
	"time"
)

// Season is a northern-hemisphere season, bounded by the equinoxes and
// solstices at Ls 0, 90, 180 and 270.
type Season int

const (
	NorthernSpring Season = iota
	NorthernSummer
	NorthernAutumn
	NorthernWinter
)

var seasonNames = [...]string{
	NorthernSpring: "northern spring",
	NorthernSummer: "northern summer",
	NorthernAutumn: "northern autumn",
	NorthernWinter: "northern winter",
}

func (s Season) String() string {
	if s < NorthernSpring || s > NorthernWinter {
		return fmt.Sprintf("Season(%d)", int(s))
	}
	return seasonNames[s]
}

// StartLongitude returns the solar longitude at which s begins.
func (s Season) StartLongitude() float64 {
	return float64(s) * 90
}

// Next returns the season that follows s.
func (s Season) Next() Season {
	return (s + 1) % 4
}

// SeasonOf returns the season containing the solar longitude ls.
func SeasonOf(ls float64) Season {
	return Season(int(normalizeAngle360(ls)/90) % 4)
}

// SeasonStart returns the start of season s in the given Mars year.
func SeasonStart(year int, s Season) (MarsTime, error) {
	if s < NorthernSpring || s > NorthernWinter {
		return MarsTime{}, fmt.Errorf("%s: %w", s, ErrOutOfRange)
	}
	return FromSolarLongitude(year, s.StartLongitude())
}

// NextCrossing returns the first instant strictly after t at which the solar
// longitude equals ls. Crossings are only found up to the end of MaxYear; an
// instant in MaxYear past the crossing yields an error wrapping ErrOutOfRange.
func NextCrossing(t time.Time, ls float64) (time.Time, error) {
	if !isFinite(ls) {
		return time.Time{}, fmt.Errorf("solar longitude %v: %w", ls, ErrInvalidNumber)
	}
	m, err := FromTime(t)
	if err != nil {
		return time.Time{}, err
	}
	t = t.UTC()
	for year := m.Year(); year <= m.Year()+1; year++ {
		if year > MaxYear {
			break
		}
		at, err := FromSolarLongitude(year, ls)
		if err != nil {
			return time.Time{}, err
		}
		if next := at.Time(); next.After(t) {
			return next, nil
		}
	}
	return time.Time{}, fmt.Errorf("no crossing of Ls %.2f after %s: %w", ls, t.Format(time.RFC3339), ErrOutOfRange)
}

// NextSeasonBoundary returns the next equinox or solstice after t and the
// season it opens.
// Every boundary is searched rather than only the one after SeasonOf(t), so an
// instant that sits on a boundary within rounding never skips a season.
func NextSeasonBoundary(t time.Time) (time.Time, Season, error) {
	var (
		best   time.Time
		season Season
	)
	for s := NorthernSpring; s <= NorthernWinter; s++ {
		at, err := NextCrossing(t, s.StartLongitude())
		if err != nil {
			return time.Time{}, 0, err
		}
		if best.IsZero() || at.Before(best) {
			best, season = at, s
		}
	}
	return best, season, nil
}
