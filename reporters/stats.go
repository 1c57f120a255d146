package reporters

import (
	"math"

	"github.com/violenttestpen/ubench"
)

// Stats accumulates running statistics over measurements without keeping
// the samples. The zero value is empty and ready to use.
type Stats[U ubench.Unit] struct {
	n    int
	min  U
	max  U
	sum  wideSum
	mean float64
	m2   float64
}

// wideSum adds values of a Unit in the widest type of the same kind, so a
// narrow unit neither overflows the sum nor truncates the count it is
// divided by.
type wideSum struct {
	signed   int64
	unsigned uint64
	float    float64
}

func isFloat[U ubench.Unit]() bool {
	one, two := U(1), U(2)
	return one/two != 0
}

func isUnsigned[U ubench.Unit]() bool {
	var zero U
	return zero-1 > zero
}

func addWide[U ubench.Unit](w *wideSum, v U) {
	switch {
	case isFloat[U]():
		w.float += float64(v)
	case isUnsigned[U]():
		w.unsigned += uint64(v)
	default:
		w.signed += int64(v)
	}
}

// divWide returns w / n converted back to U. The mean of n values of U
// always lies within U's range.
func divWide[U ubench.Unit](w wideSum, n int) U {
	switch {
	case isFloat[U]():
		return U(w.float / float64(n))
	case isUnsigned[U]():
		return U(w.unsigned / uint64(n))
	default:
		return U(w.signed / int64(n))
	}
}

// Add records one measurement.
func (s *Stats[U]) Add(v U) {
	if s.n == 0 {
		s.min, s.max = v, v
	} else {
		s.min = min(s.min, v)
		s.max = max(s.max, v)
	}
	addWide(&s.sum, v)
	s.n++

	// Welford's online update.
	x := float64(v)
	delta := x - s.mean
	s.mean += delta / float64(s.n)
	s.m2 += delta * (x - s.mean)
}

// Reset empties s.
func (s *Stats[U]) Reset() {
	*s = Stats[U]{}
}

func (s *Stats[U]) Count() int { return s.n }
func (s *Stats[U]) Min() U     { return s.min }
func (s *Stats[U]) Max() U     { return s.max }

// Mean returns the sum of the measurements divided by Count, in the
// measurement unit, so integer units use integer division. The division
// happens in a 64-bit type, so 8 and 16 bit units are safe with any
// iteration count. It returns zero when s is empty.
func (s *Stats[U]) Mean() U {
	if s.n == 0 {
		var zero U
		return zero
	}
	return divWide[U](s.sum, s.n)
}

// FloatMean returns the exact mean as a float64.
func (s *Stats[U]) FloatMean() float64 {
	return s.mean
}

// Spread returns the larger distance from the mean to either extreme, used
// for a symmetric "mean ± spread" display. It is not a statistical
// estimator; see StdDev for that.
func (s *Stats[U]) Spread() U {
	avg := s.Mean()
	return max(s.max-avg, avg-s.min)
}

// StdDev returns the sample standard deviation, or 0 for fewer than two
// measurements.
func (s *Stats[U]) StdDev() float64 {
	if s.n < 2 {
		return 0
	}
	return math.Sqrt(s.m2 / float64(s.n-1))
}
