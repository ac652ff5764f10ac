package metrics

import "github.com/san-kum/sortviz/internal/sorter"

// ShiftRuns records how far each inserted key travelled. Value is the mean
// run length.
type ShiftRuns struct {
	name    string
	current int
	runs    []float64
}

func NewShiftRuns() *ShiftRuns {
	return &ShiftRuns{
		name: "shifts_per_insert",
		runs: make([]float64, 0),
	}
}

func (s *ShiftRuns) Name() string {
	return s.name
}

func (s *ShiftRuns) Observe(a sorter.Action) {
	switch a.Kind {
	case sorter.KindShiftRight:
		s.current++
	case sorter.KindInsert:
		s.runs = append(s.runs, float64(s.current))
		s.current = 0
	}
}

func (s *ShiftRuns) Value() float64 {
	if len(s.runs) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range s.runs {
		sum += r
	}
	return sum / float64(len(s.runs))
}

func (s *ShiftRuns) Series() []float64 {
	out := make([]float64, len(s.runs))
	copy(out, s.runs)
	return out
}

func (s *ShiftRuns) Reset() {
	s.current = 0
	s.runs = s.runs[:0]
}
