package mars

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// MarsTime is an absolute point in Martian time: a Mars year and the sol
// within it. The zero value is the start of Mars year 0.
//
// MarsTime values are immutable and comparable with ==.
type MarsTime struct {
	year int
	sol  float64
}

// maxYearStep bounds how far a single Delta may move a MarsTime before the
// year is rejected outright.
const maxYearStep = 1000

// New creates a MarsTime for the given year and sol. The sol must lie in
// [0, SolsInYear(year)).
func New(year int, sol float64) (MarsTime, error) {
	if !isFinite(sol) {
		return MarsTime{}, fmt.Errorf("sol %v: %w", sol, ErrInvalidNumber)
	}
	if year < MinYear || year > MaxYear {
		return MarsTime{}, fmt.Errorf("year %d outside %d..%d: %w", year, MinYear, MaxYear, ErrYearNotTabulated)
	}
	n, err := SolsInYear(year)
	if err != nil {
		return MarsTime{}, err
	}
	if sol < 0 || sol >= n {
		return MarsTime{}, fmt.Errorf("sol %v not in [0, %.4f) for year %d: %w", sol, n, year, ErrOutOfRange)
	}
	return MarsTime{year: year, sol: sol}, nil
}

// Year returns the Mars year.
func (m MarsTime) Year() int { return m.year }

// Sol returns the sol of the year.
func (m MarsTime) Sol() float64 { return m.sol }

// SolarLongitude returns the solar longitude in degrees [0, 360), computed
// with the high-accuracy model.
func (m MarsTime) SolarLongitude() float64 {
	return SolarLongitude(m.Time())
}

// Season returns the northern-hemisphere season of m.
func (m MarsTime) Season() Season {
	return SeasonOf(m.SolarLongitude())
}

// Add returns m+d. Whole delta years are added to the year and any fractional
// year is converted to sols with the average year length. The sol is then
// normalised one year at a time using the length of each year crossed.
func (m MarsTime) Add(d Delta) (MarsTime, error) {
	if !isFinite(d.year) || !isFinite(d.sol) {
		return MarsTime{}, fmt.Errorf("add %s: %w", d, ErrInvalidNumber)
	}
	whole, frac := math.Modf(d.year)
	if math.Abs(whole) > maxYearStep {
		return MarsTime{}, fmt.Errorf("add %s: %w", d, ErrYearNotTabulated)
	}
	year := m.year + int(whole)
	sol := m.sol + d.sol + frac*SolsPerYear

	for sol < 0 {
		year--
		n, err := SolsInYear(year)
		if err != nil {
			return MarsTime{}, fmt.Errorf("add %s to %s: %w", d, m, err)
		}
		sol += n
	}
	for {
		n, err := SolsInYear(year)
		if err != nil {
			return MarsTime{}, fmt.Errorf("add %s to %s: %w", d, m, err)
		}
		if sol < n {
			break
		}
		sol -= n
		year++
	}
	return New(year, sol)
}

// SubDelta returns m-d.
func (m MarsTime) SubDelta(d Delta) (MarsTime, error) {
	return m.Add(d.Neg())
}

// Sub returns the componentwise difference m-o. The result is not
// renormalised, so MY33 Sol 0 minus MY32 Sol 400 is 1 year and -400 sols.
func (m MarsTime) Sub(o MarsTime) Delta {
	return Delta{year: float64(m.year - o.year), sol: m.sol - o.sol}
}

// Equal reports whether m and o have the same year and exactly the same sol.
func (m MarsTime) Equal(o MarsTime) bool {
	return m.year == o.year && m.sol == o.sol
}

// Compare returns -1, 0 or +1 ordering by year and then by sol.
func (m MarsTime) Compare(o MarsTime) int {
	switch {
	case m.year < o.year:
		return -1
	case m.year > o.year:
		return 1
	case m.sol < o.sol:
		return -1
	case m.sol > o.sol:
		return 1
	default:
		return 0
	}
}

// Before reports whether m is earlier than o.
func (m MarsTime) Before(o MarsTime) bool { return m.Compare(o) < 0 }

// After reports whether m is later than o.
func (m MarsTime) After(o MarsTime) bool { return m.Compare(o) > 0 }

func (m MarsTime) String() string {
	return fmt.Sprintf("MY%d Sol %.2f", m.year, m.sol)
}

// Format returns m in the form accepted by Parse, e.g. "MY33Sol200.000000".
func (m MarsTime) Format() string {
	return fmt.Sprintf("MY%dSol%.6f", m.year, m.sol)
}

var marsTimePattern = regexp.MustCompile(`(?i)^MY([+-]?\d+)\s*(SOL|LS)\s*([+-]?(?:\d+\.?\d*|\.\d+)(?:e[+-]?\d+)?)$`)

// Parse reads a Mars time written as MY<year>Sol<sol> or MY<year>Ls<degrees>,
// for example "MY33Sol200" or "MY36Ls90.5". Matching is case-insensitive.
func Parse(s string) (MarsTime, error) {
	match := marsTimePattern.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return MarsTime{}, fmt.Errorf("%q: %w", s, ErrSyntax)
	}
	year, err := strconv.Atoi(match[1])
	if err != nil {
		return MarsTime{}, fmt.Errorf("%q year: %w", s, ErrSyntax)
	}
	value, err := strconv.ParseFloat(match[3], 64)
	if err != nil {
		return MarsTime{}, fmt.Errorf("%q value: %w", s, ErrSyntax)
	}
	if strings.EqualFold(match[2], "ls") {
		return FromSolarLongitude(year, value)
	}
	return New(year, value)
}
