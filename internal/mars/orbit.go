package mars

import (
	"fmt"
	"math"
	"time"
)

const (
	// orbitBracketSols is the half-width of the search window around the mean
	// aphelion or perihelion sol. The true extreme drifts only a few sols
	// from year to year.
	orbitBracketSols = 100

	// rateStepDays is the half-step of the central difference used for dLs/dt.
	rateStepDays = 0.001

	orbitToleranceDays = 1e-4
)

// FindAphelion returns the moment in year when Mars is farthest from the Sun,
// found as the minimum of the solar longitude rate.
func FindAphelion(year int) (MarsTime, error) {
	return findOrbitExtreme(year, AphelionSol, 1)
}

// FindPerihelion returns the moment in year when Mars is closest to the Sun,
// found as the maximum of the solar longitude rate.
func FindPerihelion(year int) (MarsTime, error) {
	return findOrbitExtreme(year, PerihelionSol, -1)
}

// findOrbitExtreme minimises sign*dLs/dt within orbitBracketSols of meanSol.
func findOrbitExtreme(year int, meanSol, sign float64) (MarsTime, error) {
	if year < MinYear || year > MaxYear {
		return MarsTime{}, fmt.Errorf("orbit search year %d: %w", year, ErrYearNotTabulated)
	}
	n, err := SolsInYear(year)
	if err != nil {
		return MarsTime{}, err
	}
	start := yearStartDays[year-firstTabulatedYear]
	solToDays := func(sol float64) float64 {
		return start + sol*SecondsPerSol/SecondsPerDay
	}

	lo := math.Max(0, meanSol-orbitBracketSols)
	hi := math.Min(n, meanSol+orbitBracketSols)

	rate := func(days float64) float64 {
		return sign * longitudeRate(days)
	}
	days := goldenSection(rate, solToDays(lo), solToDays(hi), orbitToleranceDays, maxSearchIterations)

	sol := (days - start) * SecondsPerDay / SecondsPerSol
	return New(year, sol)
}

// YearEvents lists the orbit landmarks of one Mars year.
type YearEvents struct {
	Year       int
	Start      time.Time
	Sols       float64
	Aphelion   MarsTime
	Perihelion MarsTime
	Seasons    [4]MarsTime // indexed by Season
}

// EventsOf computes the orbit landmarks of year.
func EventsOf(year int) (YearEvents, error) {
	start, err := YearStart(year)
	if err != nil {
		return YearEvents{}, err
	}
	n, err := SolsInYear(year)
	if err != nil {
		return YearEvents{}, err
	}
	ev := YearEvents{Year: year, Start: start, Sols: n}
	if ev.Aphelion, err = FindAphelion(year); err != nil {
		return YearEvents{}, err
	}
	if ev.Perihelion, err = FindPerihelion(year); err != nil {
		return YearEvents{}, err
	}
	for s := NorthernSpring; s <= NorthernWinter; s++ {
		if ev.Seasons[s], err = SeasonStart(year, s); err != nil {
			return YearEvents{}, err
		}
	}
	return ev, nil
}

// longitudeRate is the central-difference dLs/dt in degrees per
// 2*rateStepDays, safe across the 360 degree wrap.
func longitudeRate(days float64) float64 {
	return wrapAngle180(highAccuracyLongitude(days+rateStepDays) - highAccuracyLongitude(days-rateStepDays))
}
