package metrics

import "github.com/violenttestpen/ubench"

// Counter is a placeholder metric that reports 1 for every run. Averages
// reported with it are always 1, which makes it handy for checking the
// shape of a run.
type Counter struct{}

func (Counter) Start() struct{} {
	return struct{}{}
}

func (Counter) End(struct{}) uint32 {
	return 1
}

func (Counter) UnitName() string {
	return "count"
}

// Stepper reports a strictly increasing value from every End call,
// regardless of the start token. The first value is start; each later value
// adds step. It wraps around after 2^64 values.
type Stepper struct {
	next uint64
	step uint64
}

// NewStepper returns a Stepper beginning at start. A zero step is treated
// as 1.
func NewStepper(start, step uint64) *Stepper {
	if step == 0 {
		step = 1
	}
	return &Stepper{next: start, step: step}
}

func (s *Stepper) Start() struct{} {
	return struct{}{}
}

func (s *Stepper) End(struct{}) uint64 {
	v := s.next
	s.next += s.step
	return v
}

func (s *Stepper) UnitName() string {
	return "steps"
}

// Replay reports a fixed list of measurements in order, starting over when
// the list is exhausted. It is meant for tests that need exact, varied
// values.
type Replay[U ubench.Unit] struct {
	unit   string
	values []U
	i      int
}

// NewReplay returns a Replay metric reporting values under the given unit
// name. It panics if values is empty.
func NewReplay[U ubench.Unit](unit string, values ...U) *Replay[U] {
	if len(values) == 0 {
		panic("metrics: NewReplay needs at least one value")
	}
	return &Replay[U]{unit: unit, values: values}
}

func (r *Replay[U]) Start() struct{} {
	return struct{}{}
}

func (r *Replay[U]) End(struct{}) U {
	v := r.values[r.i]
	r.i = (r.i + 1) % len(r.values)
	return v
}

func (r *Replay[U]) UnitName() string {
	return r.unit
}
