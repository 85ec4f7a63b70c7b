package mars

import "math"

// Search limits. Bisection over a full Mars year (~687 days) reaches 1e-7 day
// in about 33 steps, so the iteration cap only guards pathological input.
const (
	searchToleranceDays = 1e-7
	maxSearchIterations = 200
)

// bisect finds a root of the non-decreasing function f on [lo, hi]. The
// returned x always satisfies f(x) >= 0 unless f(hi) itself is negative, so a
// caller never lands just before the crossing. When f(lo) is already
// non-negative it returns lo, and when f(hi) is negative it returns hi. ok is
// false if the interval did not shrink below tol within maxIter steps.
func bisect(f func(float64) float64, lo, hi, tol float64, maxIter int) (x float64, ok bool) {
	if f(lo) >= 0 {
		return lo, true
	}
	if f(hi) < 0 {
		return hi, true
	}
	for i := 0; i < maxIter; i++ {
		if hi-lo <= tol {
			return hi, true
		}
		mid := lo + (hi-lo)/2
		if mid <= lo || mid >= hi {
			return hi, true
		}
		fm := f(mid)
		if math.IsNaN(fm) {
			return hi, false
		}
		if fm < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi, hi-lo <= tol
}

// invPhi is 1/phi, the golden-section step ratio.
var invPhi = (math.Sqrt(5) - 1) / 2

// goldenSection returns the x in [a, b] minimising the unimodal function f.
func goldenSection(f func(float64) float64, a, b, tol float64, maxIter int) float64 {
	c := b - invPhi*(b-a)
	d := a + invPhi*(b-a)
	fc, fd := f(c), f(d)
	for i := 0; i < maxIter && b-a > tol; i++ {
		if fc < fd {
			b, d, fd = d, c, fc
			c = b - invPhi*(b-a)
			fc = f(c)
		} else {
			a, c, fc = c, d, fd
			d = a + invPhi*(b-a)
			fd = f(d)
		}
	}
	return a + (b-a)/2
}
