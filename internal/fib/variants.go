package fib

import (
	"slices"

	"github.com/violenttestpen/ubench"
)

// Variant is a named Fibonacci payload.
type Variant struct {
	Name string
	New  func() ubench.Benchmark[int, uint64]
}

// Variants lists every payload in the order they are usually compared.
var Variants = []Variant{
	{Name: "recursive", New: func() ubench.Benchmark[int, uint64] { return Recursive{} }},
	{Name: "memoized", New: func() ubench.Benchmark[int, uint64] { return NewMemoized() }},
	{Name: "iterative", New: func() ubench.Benchmark[int, uint64] { return Iterative{} }},
	{Name: "closed form", New: func() ubench.Benchmark[int, uint64] { return ClosedForm{} }},
}

// Lookup returns the variant called name.
func Lookup(name string) (Variant, bool) {
	i := slices.IndexFunc(Variants, func(v Variant) bool { return v.Name == name })
	if i < 0 {
		return Variant{}, false
	}
	return Variants[i], true
}

// Suite builds a suite named name comparing the given variants over
// inputs. Unknown variant names are skipped; use Lookup to validate them
// first.
func Suite(name string, inputs ubench.Inputs[int], variants ...string) ubench.Suite[int] {
	s := ubench.NewSuite(name, inputs)
	for _, v := range variants {
		if variant, ok := Lookup(v); ok {
			s = s.Add(ubench.Member(variant.Name, variant.New()))
		}
	}
	return s
}
