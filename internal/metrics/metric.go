package metrics

import "github.com/san-kum/sortviz/internal/sorter"

// Metric accumulates a value over the actions of a run.
type Metric interface {
	Name() string
	Observe(a sorter.Action)
	Value() float64
	Reset()
}

// Series is a metric that also keeps a per-step history.
type Series interface {
	Metric
	Series() []float64
}

// Defaults is the set collected for every run.
func Defaults() []Metric {
	ms := make([]Metric, 0, len(sorter.Kinds())+2)
	for _, k := range sorter.Kinds() {
		ms = append(ms, NewKindCount(k))
	}
	ms = append(ms, NewDisplacements(), NewShiftRuns())
	return ms
}

// Observe feeds a to every metric.
func Observe(ms []Metric, a sorter.Action) {
	for _, m := range ms {
		m.Observe(a)
	}
}

// Collect snapshots metric values by name.
func Collect(ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
