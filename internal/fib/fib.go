// Package fib holds Fibonacci implementations used as sample benchmark
// payloads. Every payload checks its result against Answers in Teardown.
package fib

import (
	"fmt"
	"math"
)

// Answers holds the first 36 Fibonacci numbers.
var Answers = [36]uint64{
	0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144, 233, 377, 610, 987, 1597, 2584, 4181, 6765,
	10946, 17711, 28657, 46368, 75025, 121393, 196418, 317811, 514229, 832040, 1346269, 2178309,
	3524578, 5702887, 9227465,
}

// Check panics unless res is the n-th Fibonacci number. It also panics
// when n is outside Answers.
func Check(n int, res uint64) {
	if n < 0 || n >= len(Answers) {
		panic(fmt.Sprintf("fib: no known answer for input %d", n))
	}
	if want := Answers[n]; res != want {
		panic(fmt.Sprintf("fib: input %d: got %d, want %d", n, res, want))
	}
}

func recursive(n int) uint64 {
	if n < 2 {
		return uint64(n)
	}
	return recursive(n-1) + recursive(n-2)
}

func iterative(n int) uint64 {
	if n < 2 {
		return uint64(n)
	}

	var a, b uint64 = 0, 1
	for i := 0; i < n-1; i++ {
		a, b = b, a+b
	}
	return b
}

// closedForm uses Binet's formula.
func closedForm(n int) uint64 {
	root5 := math.Sqrt(5)
	lhs := math.Pow((1+root5)/2, float64(n))
	rhs := math.Pow((1-root5)/2, float64(n))
	return uint64(math.Round((lhs - rhs) / root5))
}

func memoized(n int, table map[int]uint64) uint64 {
	if n < 2 {
		return uint64(n)
	}
	if v, ok := table[n]; ok {
		return v
	}
	v := memoized(n-1, table) + memoized(n-2, table)
	table[n] = v
	return v
}

type Recursive struct{}

func (Recursive) Run(n int) uint64           { return recursive(n) }
func (Recursive) Teardown(n int, res uint64) { Check(n, res) }

type Iterative struct{}

func (Iterative) Run(n int) uint64           { return iterative(n) }
func (Iterative) Teardown(n int, res uint64) { Check(n, res) }

type ClosedForm struct{}

func (ClosedForm) Run(n int) uint64           { return closedForm(n) }
func (ClosedForm) Teardown(n int, res uint64) { Check(n, res) }

// Memoized caches intermediate values. The cache is cleared before every
// iteration so each run starts cold.
type Memoized struct {
	table map[int]uint64
}

func NewMemoized() *Memoized {
	return &Memoized{table: make(map[int]uint64)}
}

func (m *Memoized) Setup(int) {
	clear(m.table)
}

func (m *Memoized) Run(n int) uint64 {
	return memoized(n, m.table)
}

func (m *Memoized) Teardown(n int, res uint64) {
	Check(n, res)
}
