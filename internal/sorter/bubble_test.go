package sorter

import (
	"errors"
	"reflect"
	"testing"
)

func TestBubbleSortAllPermutations(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for _, perm := range permutations(n) {
			initial := append([]int(nil), perm...)
			seq := append([]int(nil), perm...)

			trace, ok := record(seq, BubbleSort)
			if !ok {
				t.Fatalf("%v: check failed on %v", initial, seq)
			}
			if !isAscending(seq) {
				t.Fatalf("%v: engine left %v", initial, seq)
			}
			if got := Replay(initial, trace); !reflect.DeepEqual(got, seq) {
				t.Fatalf("%v: replay produced %v, engine produced %v", initial, got, seq)
			}
			for _, a := range trace {
				if a.Kind == KindShiftRight || a.Kind == KindInsert {
					t.Fatalf("%v: bubble sort emitted %s", initial, a)
				}
			}
		}
	}
}

func TestBubbleSortPass(t *testing.T) {
	trace, _ := record([]int{2, 1}, BubbleSort)
	want := []Action{
		NewCompare(0, 1),
		NewSwap(0, 1),
		NewSort(1),
		NewSort(0),
		NewSort(1),
	}
	if !reflect.DeepEqual(trace, want) {
		t.Errorf("trace mismatch\n got: %v\nwant: %v", trace, want)
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		if _, err := Lookup(name); err != nil {
			t.Errorf("lookup %s: %v", name, err)
		}
	}

	_, err := Lookup("quick")
	if !errors.Is(err, ErrUnknownEngine) {
		t.Errorf("expected ErrUnknownEngine, got %v", err)
	}
}

func TestActionValidate(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		err    error
	}{
		{"sort ok", NewSort(2), nil},
		{"sort negative", NewSort(-1), ErrIndexOutOfRange},
		{"compare second out", NewCompare(0, 3), ErrIndexOutOfRange},
		{"swap ok", NewSwap(0, 2), nil},
		{"shift last", NewShiftRight(2), ErrIndexOutOfRange},
		{"shift ok", NewShiftRight(1), nil},
		{"insert ok", NewInsert(0, 99), nil},
		{"bad kind", Action{Kind: Kind(42)}, ErrMalformedAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.action.Validate(3)
			if tt.err == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.err != nil && !errors.Is(err, tt.err) {
				t.Errorf("expected %v, got %v", tt.err, err)
			}
		})
	}
}

func TestApplyPanicsOnBadAction(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Apply([]int{1, 2}, NewShiftRight(1))
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("parse %s: got %v, %v", k, got, err)
		}
	}
	if k, err := ParseKind("shift_right"); err != nil || k != KindShiftRight {
		t.Errorf("expected case-insensitive parse, got %v, %v", k, err)
	}
	if _, err := ParseKind("MERGE"); !errors.Is(err, ErrMalformedAction) {
		t.Errorf("expected ErrMalformedAction, got %v", err)
	}
}
