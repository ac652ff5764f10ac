package sorter

import (
	"math/rand"
	"reflect"
	"testing"
)

func record(seq []int, engine Engine) ([]Action, bool) {
	var trace []Action
	ok := engine(seq, func(a Action) { trace = append(trace, a) })
	return trace, ok
}

// permutations returns every ordering of 1..n.
func permutations(n int) [][]int {
	base := make([]int, n)
	for i := range base {
		base[i] = i + 1
	}
	var out [][]int
	var walk func(k int)
	walk = func(k int) {
		if k == n {
			p := make([]int, n)
			copy(p, base)
			out = append(out, p)
			return
		}
		for i := k; i < n; i++ {
			base[k], base[i] = base[i], base[k]
			walk(k + 1)
			base[k], base[i] = base[i], base[k]
		}
	}
	walk(0)
	return out
}

// displacements counts the writes a textbook insertion sort performs:
// one per shifted element plus one per placed key.
func displacements(seq []int) int {
	arr := append([]int(nil), seq...)
	moves := 0
	for i := 1; i < len(arr); i++ {
		cur := arr[i]
		pre := i - 1
		for pre >= 0 && cur < arr[pre] {
			arr[pre+1] = arr[pre]
			pre--
			moves++
		}
		arr[pre+1] = cur
		moves++
	}
	return moves
}

func isAscending(seq []int) bool {
	for i := 1; i < len(seq); i++ {
		if seq[i-1] > seq[i] {
			return false
		}
	}
	return true
}

func TestInsertionSortExample(t *testing.T) {
	seq := []int{3, 1, 2}
	trace, ok := record(seq, InsertionSort)

	want := []Action{
		NewShiftRight(0),
		NewInsert(0, 1),
		NewShiftRight(1),
		NewInsert(1, 2),
		NewSort(0),
		NewSort(2),
		NewSort(1),
		NewSort(2),
	}
	if !reflect.DeepEqual(trace, want) {
		t.Errorf("trace mismatch\n got: %v\nwant: %v", trace, want)
	}
	if !ok {
		t.Error("expected check to pass")
	}
	if !reflect.DeepEqual(seq, []int{1, 2, 3}) {
		t.Errorf("expected [1 2 3], got %v", seq)
	}
}

func TestInsertionSortAllPermutations(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for _, perm := range permutations(n) {
			initial := append([]int(nil), perm...)
			seq := append([]int(nil), perm...)

			trace, _ := record(seq, InsertionSort)

			if !isAscending(seq) {
				t.Fatalf("%v: engine left %v", initial, seq)
			}
			replayed := Replay(initial, trace)
			if !isAscending(replayed) {
				t.Fatalf("%v: replay produced %v", initial, replayed)
			}

			moves := 0
			for _, a := range trace {
				if a.Kind == KindShiftRight || a.Kind == KindInsert {
					moves++
				}
				if a.Kind == KindCompare || a.Kind == KindSwap || a.Kind == KindContinue {
					t.Fatalf("%v: insertion sort emitted %s", initial, a)
				}
			}
			if want := displacements(initial); moves != want {
				t.Errorf("%v: expected %d displacements, got %d", initial, want, moves)
			}
		}
	}
}

func TestInsertionSortDeterministic(t *testing.T) {
	src := rand.New(rand.NewSource(7))
	perm := Permutation(40, src)

	first, _ := record(append([]int(nil), perm...), InsertionSort)
	second, _ := record(append([]int(nil), perm...), InsertionSort)

	if !reflect.DeepEqual(first, second) {
		t.Error("same input produced different traces")
	}
}

func TestInsertionSortKeepsPermutation(t *testing.T) {
	src := rand.New(rand.NewSource(3))
	perm := Permutation(25, src)
	seq := append([]int(nil), perm...)

	InsertionSort(seq, func(Action) {
		if !IsPermutation(seq) && !hasSingleDuplicate(seq) {
			t.Fatalf("sequence corrupted mid-sort: %v", seq)
		}
	})
	if !IsPermutation(seq) {
		t.Errorf("result is not a permutation: %v", seq)
	}
}

// hasSingleDuplicate allows the transient state of a shift, where the key
// has been lifted out and its neighbour copied one slot right.
func hasSingleDuplicate(seq []int) bool {
	counts := make(map[int]int, len(seq))
	dups := 0
	for _, v := range seq {
		counts[v]++
		if counts[v] == 2 {
			dups++
		}
	}
	return dups == 1
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name  string
		seq   []int
		want  bool
		trace []Action
	}{
		{"empty", []int{}, true, nil},
		{"single", []int{1}, true, nil},
		{"ascending pair", []int{1, 2}, true, []Action{NewSort(0), NewSort(1)}},
		{"descending first", []int{2, 1, 3}, false, nil},
		{"stops at first descent", []int{1, 3, 2, 4}, false, []Action{NewSort(0), NewSort(3)}},
		{"equal neighbours", []int{1, 1, 2}, true, []Action{NewSort(1), NewSort(2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trace, ok := record(tt.seq, func(seq []int, rec Recorder) bool { return Check(seq, rec) })
			if ok != tt.want {
				t.Errorf("expected %v, got %v", tt.want, ok)
			}
			if !reflect.DeepEqual(trace, tt.trace) {
				t.Errorf("trace mismatch\n got: %v\nwant: %v", trace, tt.trace)
			}
		})
	}
}

func TestPermutation(t *testing.T) {
	src := rand.New(rand.NewSource(42))
	seq := Permutation(50, src)
	if len(seq) != 50 {
		t.Fatalf("expected 50 values, got %d", len(seq))
	}
	if !IsPermutation(seq) {
		t.Errorf("not a permutation of 1..50: %v", seq)
	}

	again := Permutation(50, rand.New(rand.NewSource(42)))
	if !reflect.DeepEqual(seq, again) {
		t.Error("same seed produced different permutations")
	}
}

type fixedSource struct{ picks []int }

func (f *fixedSource) Intn(n int) int {
	v := f.picks[0]
	f.picks = f.picks[1:]
	return v
}

func TestPermutationSwapOrder(t *testing.T) {
	// cur=3 picks 0: swap [2]<->[0] -> 3 2 1
	// cur=2 picks 1: swap [1]<->[1] -> 3 2 1
	// cur=1 picks 0: swap [0]<->[0] -> 3 2 1
	seq := Permutation(3, &fixedSource{picks: []int{0, 1, 0}})
	if !reflect.DeepEqual(seq, []int{3, 2, 1}) {
		t.Errorf("expected [3 2 1], got %v", seq)
	}
}
