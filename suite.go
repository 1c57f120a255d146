package ubench

import "iter"

// Suite is a named group of benchmarks that share one input sequence.
// For each input, every member runs all of its iterations before the next
// member starts.
//
// Members share the input type only; each keeps its own result type. A
// Suite is an Entry, not a Benchmark, so suites cannot be nested.
type Suite[In any] struct {
	name   string
	inputs Inputs[In]
	last   *memberNode[In]
	n      int
}

// SuiteMember is a named benchmark ready to be added to a Suite. Build one
// with Member or MemberFunc.
type SuiteMember[In any] struct {
	name  string
	trial boundTrial[In]
}

// boundTrial is a member with its result type erased.
type boundTrial[In any] interface {
	trial
	bind(in In)
}

type memberNode[In any] struct {
	name  string
	trial boundTrial[In]
	prev  *memberNode[In]
}

type member[In, Res any] struct {
	bench  Benchmark[In, Res]
	before Setupper[In]
	after  TearDowner[In, Res]

	cur In
	res Res
}

// Member names b for use in a suite. Both type parameters are usually
// inferred from b's Run method:
//
//	ubench.Member("recursive", fib.Recursive{})
func Member[In, Res any](name string, b Benchmark[In, Res]) SuiteMember[In] {
	m := &member[In, Res]{bench: b}
	m.before, _ = b.(Setupper[In])
	m.after, _ = b.(TearDowner[In, Res])
	return SuiteMember[In]{name: name, trial: m}
}

// MemberFunc is Member for a plain function.
func MemberFunc[In, Res any](name string, fn func(In) Res) SuiteMember[In] {
	return Member[In, Res](name, Func[In, Res](fn))
}

// NewSuite starts an empty suite; In is inferred from inputs:
//
//	ubench.NewSuite("fibonacci", ubench.Range(0, 36, 5)).
//		Add(ubench.Member("recursive", fib.Recursive{})).
//		Add(ubench.MemberFunc("lookup", lookup))
func NewSuite[In any](name string, inputs Inputs[In]) Suite[In] {
	return Suite[In]{name: name, inputs: inputs}
}

// Add returns a copy of s with m appended.
func (s Suite[In]) Add(m SuiteMember[In]) Suite[In] {
	s.last = &memberNode[In]{name: m.name, trial: m.trial, prev: s.last}
	s.n++
	return s
}

func (s Suite[In]) Name() string {
	return s.name
}

// Len returns the number of members.
func (s Suite[In]) Len() int {
	return s.n
}

// Names returns member names in run order without consuming the suite.
func (s Suite[In]) Names() iter.Seq[string] {
	last := s.last
	return func(yield func(string) bool) {
		last.walk(func(m *memberNode[In]) bool {
			return yield(m.name)
		})
	}
}

func (s Suite[In]) execute(x executor) {
	x.startSuite(s.name, s.inputs.Hint(), s.Names())

	idx := 0
	for in := range s.inputs.All() {
		boxed := any(in)
		x.suiteInput(idx, boxed)

		memberIdx := 0
		s.last.walk(func(m *memberNode[In]) bool {
			m.trial.bind(in)
			x.measureMember(idx, boxed, memberIdx, m.name, m.trial)
			var zero In
			m.trial.bind(zero)
			memberIdx++
			return true
		})
		idx++
	}

	x.endSuite(s.name)
}

func (m *memberNode[In]) walk(visit func(*memberNode[In]) bool) bool {
	if m == nil {
		return true
	}
	if !m.prev.walk(visit) {
		return false
	}
	return visit(m)
}

func (m *member[In, Res]) bind(in In) {
	m.cur = in
}

func (m *member[In, Res]) setup() {
	if m.before != nil {
		m.before.Setup(m.cur)
	}
}

func (m *member[In, Res]) run() {
	m.res = BlackBox(m.bench.Run(BlackBox(m.cur)))
}

func (m *member[In, Res]) teardown() {
	res := m.res
	var zero Res
	m.res = zero
	if m.after != nil {
		m.after.Teardown(m.cur, res)
	}
}
