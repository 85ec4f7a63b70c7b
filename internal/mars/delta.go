package mars

import (
	"fmt"
	"math"
)

// Delta is a relative Martian time offset. Neither component is normalised:
// sol may be negative or exceed a year, and year may be fractional.
// Normalisation happens only when a Delta is added to a MarsTime.
type Delta struct {
	year float64
	sol  float64
}

// NewDelta creates a Delta of the given years and sols.
func NewDelta(year, sol float64) (Delta, error) {
	if !isFinite(year) {
		return Delta{}, fmt.Errorf("delta year %v: %w", year, ErrInvalidNumber)
	}
	if !isFinite(sol) {
		return Delta{}, fmt.Errorf("delta sol %v: %w", sol, ErrInvalidNumber)
	}
	return Delta{year: year, sol: sol}, nil
}

// Year returns the year component.
func (d Delta) Year() float64 { return d.year }

// Sol returns the sol component.
func (d Delta) Sol() float64 { return d.sol }

// Years returns the whole offset in fractional years, using the average
// number of sols per year.
func (d Delta) Years() float64 {
	return d.year + d.sol/SolsPerYear
}

// Sols returns the whole offset in sols, using the average number of sols
// per year. This is approximate because real years vary in length.
func (d Delta) Sols() float64 {
	return d.year*SolsPerYear + d.sol
}

// Add returns the componentwise sum d+o.
func (d Delta) Add(o Delta) Delta {
	return Delta{year: d.year + o.year, sol: d.sol + o.sol}
}

// Sub returns the componentwise difference d-o.
func (d Delta) Sub(o Delta) Delta {
	return Delta{year: d.year - o.year, sol: d.sol - o.sol}
}

// Neg returns -d.
func (d Delta) Neg() Delta {
	return Delta{year: -d.year, sol: -d.sol}
}

// Equal reports whether both components are equal.
func (d Delta) Equal(o Delta) bool {
	return d.year == o.year && d.sol == o.sol
}

func (d Delta) String() string {
	return fmt.Sprintf("Delta(year=%g, sol=%.2f)", d.year, d.sol)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
