package ubench

import (
	"iter"
	"slices"
)

// SizeHint estimates how many inputs a sequence yields.
type SizeHint struct {
	Lower   int
	Upper   int
	Bounded bool
}

// Exactly returns a hint for a sequence of exactly n inputs.
func Exactly(n int) SizeHint {
	return SizeHint{Lower: n, Upper: n, Bounded: true}
}

// Estimate returns the upper bound when known and the lower bound otherwise.
func (h SizeHint) Estimate() int {
	if h.Bounded {
		return h.Upper
	}
	return h.Lower
}

// Inputs is a single-pass sequence of benchmark inputs together with a
// size hint used for display.
type Inputs[In any] struct {
	seq  iter.Seq[In]
	hint SizeHint
}

// Values returns inputs yielding xs in order.
func Values[In any](xs ...In) Inputs[In] {
	return Inputs[In]{seq: slices.Values(xs), hint: Exactly(len(xs))}
}

// Range returns the integers start, start+step, ... below stop.
// It panics if step is not positive.
func Range(start, stop, step int) Inputs[int] {
	if step <= 0 {
		panic("ubench: Range step must be positive")
	}

	n := 0
	if stop > start {
		n = (stop - start + step - 1) / step
	}

	return Inputs[int]{
		seq: func(yield func(int) bool) {
			for i := start; i < stop; i += step {
				if !yield(i) {
					return
				}
			}
		},
		hint: Exactly(n),
	}
}

// Seq wraps an arbitrary sequence whose length is not known up front.
func Seq[In any](seq iter.Seq[In]) Inputs[In] {
	return Inputs[In]{seq: seq}
}

// SeqN wraps a sequence that yields at most n inputs.
func SeqN[In any](seq iter.Seq[In], n int) Inputs[In] {
	return Inputs[In]{seq: seq, hint: SizeHint{Upper: n, Bounded: true}}
}

// Hint returns the size hint of the sequence.
func (in Inputs[In]) Hint() SizeHint {
	return in.hint
}

// All returns the underlying sequence. The zero Inputs yields nothing.
func (in Inputs[In]) All() iter.Seq[In] {
	if in.seq == nil {
		return func(func(In) bool) {}
	}
	return in.seq
}
