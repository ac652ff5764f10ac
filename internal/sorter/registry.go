package sorter

import (
	"fmt"
	"sort"
)

// Engine sorts seq in place, reporting every step to rec, and returns the
// verdict of its final verification scan.
type Engine func(seq []int, rec Recorder) bool

var engines = map[string]Engine{
	"insertion": InsertionSort,
	"bubble":    BubbleSort,
}

func Lookup(name string) (Engine, error) {
	fn, ok := engines[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownEngine, name, Names())
	}
	return fn, nil
}

func Names() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
