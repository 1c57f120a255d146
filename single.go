package ubench

// single is a benchmark with its own input sequence.
type single[In, Res any] struct {
	name   string
	bench  Benchmark[In, Res]
	before Setupper[In]
	after  TearDowner[In, Res]
	inputs Inputs[In]

	cur In
	res Res
}

// Single wraps b and its inputs into an entry named name.
//
// Res is listed first so it can be given explicitly while In is inferred
// from inputs:
//
//	ubench.Single[uint64]("recursive", fib.Recursive{}, ubench.Range(0, 30, 5))
func Single[Res, In any](name string, b Benchmark[In, Res], inputs Inputs[In]) Entry {
	s := &single[In, Res]{name: name, bench: b, inputs: inputs}
	s.before, _ = b.(Setupper[In])
	s.after, _ = b.(TearDowner[In, Res])
	return s
}

// SingleFunc is Single for a plain function.
func SingleFunc[In, Res any](name string, fn func(In) Res, inputs Inputs[In]) Entry {
	return Single[Res](name, Func[In, Res](fn), inputs)
}

func (s *single[In, Res]) Name() string {
	return s.name
}

func (s *single[In, Res]) execute(x executor) {
	x.startSingle(s.name, s.inputs.Hint())

	idx := 0
	for in := range s.inputs.All() {
		s.cur = in
		x.measureSingle(idx, in, s)
		idx++
	}

	var zero In
	s.cur = zero
	x.endSingle(s.name)
}

func (s *single[In, Res]) setup() {
	if s.before != nil {
		s.before.Setup(s.cur)
	}
}

func (s *single[In, Res]) run() {
	s.res = BlackBox(s.bench.Run(BlackBox(s.cur)))
}

func (s *single[In, Res]) teardown() {
	res := s.res
	var zero Res
	s.res = zero
	if s.after != nil {
		s.after.Teardown(s.cur, res)
	}
}
