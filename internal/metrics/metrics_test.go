package metrics

import (
	"reflect"
	"testing"

	"github.com/san-kum/sortviz/internal/sorter"
)

func observeSort(ms []Metric, seq []int) {
	sorter.InsertionSort(seq, func(a sorter.Action) { Observe(ms, a) })
}

func TestDefaultsOnExample(t *testing.T) {
	ms := Defaults()
	observeSort(ms, []int{3, 1, 2})
	got := Collect(ms)

	want := map[string]float64{
		"count_sort":        4,
		"count_compare":     0,
		"count_continue":    0,
		"count_insert":      2,
		"count_swap":        0,
		"count_shift_right": 2,
		"displacements":     4,
		"shifts_per_insert": 1,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected metrics\n got: %v\nwant: %v", got, want)
	}
}

func TestShiftRunsSeries(t *testing.T) {
	m := NewShiftRuns()
	observeSort([]Metric{m}, []int{4, 3, 2, 1})

	if want := []float64{1, 2, 3}; !reflect.DeepEqual(m.Series(), want) {
		t.Errorf("expected %v, got %v", want, m.Series())
	}
	if m.Value() != 2 {
		t.Errorf("expected mean 2, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 || len(m.Series()) != 0 {
		t.Error("expected empty metric after reset")
	}
}

func TestKindCountReset(t *testing.T) {
	m := NewKindCount(sorter.KindSort)
	m.Observe(sorter.NewSort(0))
	m.Observe(sorter.NewInsert(0, 1))
	if m.Value() != 1 {
		t.Errorf("expected 1, got %f", m.Value())
	}
	m.Reset()
	if m.Value() != 0 {
		t.Errorf("expected 0 after reset, got %f", m.Value())
	}
}
