package mars

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Model selects a solar longitude formula.
type Model int

const (
	// ModelHighAccuracy is the Piqueux et al. (2015) fit: equation of centre
	// with a drifting eccentricity plus planetary perturbations. Maximum error
	// about 0.005 degrees.
	ModelHighAccuracy Model = iota

	// ModelLowAccuracy is the Allison & McEwen style series used by LMD, with
	// no eccentricity drift and no perturbations. Error up to about 0.05-0.2
	// degrees.
	ModelLowAccuracy
)

func (m Model) String() string {
	switch m {
	case ModelHighAccuracy:
		return "high"
	case ModelLowAccuracy:
		return "low"
	default:
		return "unknown"
	}
}

// ParseModel parses "high" or "low".
func ParseModel(s string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "":
		return ModelHighAccuracy, nil
	case "low":
		return ModelLowAccuracy, nil
	default:
		return 0, fmt.Errorf("model %q: %w", s, ErrSyntax)
	}
}

// perturbation is one periodic planetary term: amplitude (millidegrees),
// period (days) and phase (degrees).
type perturbation struct {
	amplitude float64
	period    float64
	phase     float64
}

var perturbations = [...]perturbation{
	{7.0591, 816.3755210, 48.48944},
	{6.0890, 1005.8002614, 167.55418},
	{4.4462, 408.1877605, 188.35480},
	{3.8947, 5765.3098103, 19.97295},
	{2.4328, 779.9286472, 12.03224},
	{2.0400, 901.9431281, 95.98253},
	{1.7746, 11980.9332471, 49.00256},
	{1.34607, 2882.1147, 288.7737},
	{1.03438, 4332.2204, 37.9378},
	{0.88180, 373.07883, 65.3160},
	{0.72350, 1069.3231, 175.4911},
	{0.65555, 343.49194, 98.8644},
	{0.81460, 1309.9410, 186.2253},
	{0.74578, 450.69255, 202.9323},
	{0.58359, 256.06036, 212.1853},
	{0.42864, 228.99145, 32.1227},
}

// SolarLongitude returns the solar longitude at t in degrees [0, 360) using
// the high-accuracy model.
func SolarLongitude(t time.Time) float64 {
	return SolarLongitudeWith(t, ModelHighAccuracy)
}

// SolarLongitudeWith returns the solar longitude at t using the given model.
func SolarLongitudeWith(t time.Time, model Model) float64 {
	return SolarLongitudeAtDays(daysSinceJ2000(t), model)
}

// SolarLongitudeAtDays returns the solar longitude for a signed, fractional
// number of days since J2000.
func SolarLongitudeAtDays(days float64, model Model) float64 {
	if model == ModelLowAccuracy {
		return lowAccuracyLongitude(days)
	}
	return highAccuracyLongitude(days)
}

func highAccuracyLongitude(d float64) float64 {
	T := d / 36525

	// Angle of the fictitious mean sun
	alpha := 270.389001822 + 0.52403850205*d - 0.000565452*T*T

	// Mean anomaly, remapped into (-180, 180] before conversion to radians
	M := math.Mod(19.38028331517+0.52402076345*d, 360)
	if M < 0 {
		M += 360
	}
	if M > 180 {
		M -= 360
	}
	M = degToRad(M)

	e := 0.093402202 + 0.000091406*T
	e2, e3, e4, e5, e6 := e*e, e*e*e, e*e*e*e, e*e*e*e*e, e*e*e*e*e*e

	// Equation of centre (true minus mean anomaly), radians
	center := (2*e-e3/4+5*e5/96)*math.Sin(M) +
		(5*e2/4-11*e4/24+17*e6/192)*math.Sin(2*M) +
		(13*e3/12-43*e5/64)*math.Sin(3*M) +
		(103*e4/96-451*e6/480)*math.Sin(4*M) +
		(1097*e5/960)*math.Sin(5*M) +
		(1223*e6/960)*math.Sin(6*M)

	var pbs float64
	for _, p := range perturbations {
		pbs += p.amplitude * math.Cos(2*math.Pi*d/p.period+degToRad(p.phase))
	}
	pbs /= 1000

	return normalizeAngle360(alpha + radToDeg(center) + pbs)
}

func lowAccuracyLongitude(d float64) float64 {
	M := degToRad(19.41 + 0.5240212*d)
	alpha := 270.39 + 0.5240384*d
	ls := alpha +
		(10.691+3.7e-7*d)*math.Sin(M) +
		0.623*math.Sin(2*M) +
		0.05*math.Sin(3*M) +
		0.005*math.Sin(4*M)
	return normalizeAngle360(ls)
}

// SolarLongitudeToSol approximates the sol of year at which the given solar
// longitude occurs. It inverts Kepler's equation in closed form with constant
// eccentricity and ignores perturbations, so it is less accurate than the
// forward model; use FromSolarLongitude when accuracy matters.
func SolarLongitudeToSol(ls float64) float64 {
	ls = normalizeAngle360(ls)
	e := OrbitalEccentricity

	trueAnomaly := degToRad(ls) + 2*math.Pi*(1-PerihelionSolarLongitude/360)
	eccentricAnomaly := 2 * math.Atan(math.Tan(trueAnomaly/2)*math.Sqrt((1-e)/(1+e)))
	meanAnomaly := eccentricAnomaly - e*math.Sin(eccentricAnomaly)

	sol := math.Mod(meanAnomaly/(2*math.Pi)*SolsPerYear+PerihelionSol, SolsPerYear)
	if sol < 0 {
		sol += SolsPerYear
	}
	return sol
}

// SolToSolarLongitude returns the solar longitude of the given sol of Mars
// year 0, using the high-accuracy model.
func SolToSolarLongitude(sol float64) (float64, error) {
	mt, err := New(0, sol)
	if err != nil {
		return 0, err
	}
	return mt.SolarLongitude(), nil
}

// FromSolarLongitude returns the MarsTime in the given year at which the
// high-accuracy solar longitude equals ls. ls wraps modulo 360.
func FromSolarLongitude(year int, ls float64) (MarsTime, error) {
	if !isFinite(ls) {
		return MarsTime{}, fmt.Errorf("solar longitude %v: %w", ls, ErrInvalidNumber)
	}
	if year < MinYear || year > MaxYear {
		return MarsTime{}, fmt.Errorf("year %d outside %d..%d: %w", year, MinYear, MaxYear, ErrYearNotTabulated)
	}
	target := normalizeAngle360(ls)
	idx := year - firstTabulatedYear
	start, end := yearStartDays[idx], yearStartDays[idx+1]

	f := func(days float64) float64 {
		return yearRelativeLongitude(days, start, end) - target
	}
	days, ok := bisect(f, start, end, searchToleranceDays, maxSearchIterations)
	if !ok {
		return MarsTime{}, fmt.Errorf("solar longitude %.4f in year %d did not converge: %w", target, year, ErrOutOfRange)
	}

	n, err := SolsInYear(year)
	if err != nil {
		return MarsTime{}, err
	}
	sol := (days - start) * SecondsPerDay / SecondsPerSol
	if sol < 0 {
		sol = 0
	}
	if sol >= n {
		sol = math.Nextafter(n, 0)
	}
	return settleAfterCrossing(year, sol, n, func(m MarsTime) bool {
		return yearRelativeLongitude(daysSinceJ2000(m.Time()), start, end) >= target
	})
}

// settleAfterCrossing nudges sol forward until reached reports true for the
// MarsTime it yields. Time rounds to whole nanoseconds and days are evaluated
// in float64, so a sol computed from the bisection can still map to an instant
// a few nanoseconds before the crossing. The sol never leaves [0, n).
func settleAfterCrossing(year int, sol, n float64, reached func(MarsTime) bool) (MarsTime, error) {
	m, err := New(year, sol)
	if err != nil {
		return MarsTime{}, err
	}
	step := crossingStepSols
	for i := 0; i < maxSearchIterations && !reached(m); i++ {
		next := sol + step
		if next >= n {
			next = math.Nextafter(n, 0)
		}
		if next <= sol {
			break
		}
		sol = next
		if m, err = New(year, sol); err != nil {
			return MarsTime{}, err
		}
		step *= 2
	}
	return m, nil
}

// crossingStepSols is the first nudge settleAfterCrossing applies, about 90
// nanoseconds.
const crossingStepSols = 1e-12

// yearRelativeLongitude unwraps the solar longitude inside one Mars year so
// it rises monotonically from about 0 at start to about 360 at end.
func yearRelativeLongitude(days, start, end float64) float64 {
	ls := highAccuracyLongitude(days)
	switch {
	case days-start < unwrapGuardDays && ls > 180:
		ls -= 360
	case end-days < unwrapGuardDays && ls < 180:
		ls += 360
	}
	return ls
}

// unwrapGuardDays is how close to a year boundary a longitude is unwrapped.
// Ls moves about 0.5 degrees per day, so 30 days is far from the 180 degree
// ambiguity.
const unwrapGuardDays = 30

// normalizeAngle360 normalizes an angle to [0, 360).
func normalizeAngle360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a -= 360
	}
	return a
}

// wrapAngle180 maps an angle difference into [-180, 180).
func wrapAngle180(a float64) float64 {
	return normalizeAngle360(a+180) - 180
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
