package bars

import (
	"math"
	"reflect"
	"testing"

	"github.com/san-kum/sortviz/internal/audio"
	"github.com/san-kum/sortviz/internal/sorter"
)

func newTestBoard(values ...int) *Board {
	return NewBoard(values, Fit(100, 50, len(values)))
}

func TestClassicGeometry(t *testing.T) {
	g := Classic(1600, 900, 50)

	if g.X(0) != 400 {
		t.Errorf("expected first bar at 400, got %f", g.X(0))
	}
	if g.X(3) != 400+3*21 {
		t.Errorf("expected bar 3 at %d, got %f", 400+3*21, g.X(3))
	}
	if g.Baseline != 450+250 {
		t.Errorf("expected baseline 700, got %f", g.Baseline)
	}
	if g.HeightOf(50) != -450 {
		t.Errorf("expected height -450, got %f", g.HeightOf(50))
	}
}

func TestFitGeometry(t *testing.T) {
	tests := []struct {
		w, h float64
		n    int
	}{
		{200, 80, 50},
		{40, 20, 50},
		{1000, 400, 3},
	}
	for _, tt := range tests {
		g := Fit(tt.w, tt.h, tt.n)
		right := g.X(tt.n-1) + g.BarWidth
		if g.BarWidth < 1 {
			t.Errorf("%v: bar width %f below one unit", tt, g.BarWidth)
		}
		if tt.w >= float64(tt.n) && right > tt.w {
			t.Errorf("%v: bars overflow surface, right edge %f", tt, right)
		}
		if math.Abs(g.HeightOf(tt.n)+tt.h) > 1e-9 {
			t.Errorf("%v: tallest bar should fill the surface, got %f", tt, g.HeightOf(tt.n))
		}
	}
}

func TestRect(t *testing.T) {
	x, y, w, h := Rect(10, 50, 4, -20)
	if x != 10 || y != 30 || w != 4 || h != 20 {
		t.Errorf("unexpected rect %v %v %v %v", x, y, w, h)
	}
}

func TestApplyShiftAndInsert(t *testing.T) {
	b := newTestBoard(3, 1, 2)

	note, ok := b.Apply(sorter.NewShiftRight(0))
	if !ok || note.Wave != audio.Sine {
		t.Errorf("expected sine tone, got %v %v", note, ok)
	}
	if b.Bars[1].Color != Shift {
		t.Errorf("expected shift color, got %s", b.Bars[1].Color)
	}
	if got := b.Values(); !reflect.DeepEqual(got, []int{3, 3, 2}) {
		t.Errorf("expected [3 3 2], got %v", got)
	}

	note, ok = b.Apply(sorter.NewInsert(0, 1))
	if !ok || note.Wave != audio.Sawtooth {
		t.Errorf("expected sawtooth tone, got %v %v", note, ok)
	}
	if b.Bars[0].Color != Insert {
		t.Errorf("expected insert color, got %s", b.Bars[0].Color)
	}
	if got := b.Values(); !reflect.DeepEqual(got, []int{1, 3, 2}) {
		t.Errorf("expected [1 3 2], got %v", got)
	}
}

func TestApplyCompareContinueSwap(t *testing.T) {
	b := newTestBoard(2, 1, 3)

	if _, ok := b.Apply(sorter.NewCompare(0, 1)); !ok {
		t.Error("compare should sound")
	}
	if b.Bars[0].Color != Compare || b.Bars[1].Color != Compare {
		t.Error("both compared bars should be tagged")
	}

	if _, ok := b.Apply(sorter.NewSwap(0, 1)); ok {
		t.Error("swap should be silent")
	}
	if b.Bars[0].Color != SwapOut || b.Bars[1].Color != SwapIn {
		t.Errorf("unexpected swap colors %s %s", b.Bars[0].Color, b.Bars[1].Color)
	}
	if got := b.Values(); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("expected [1 2 3], got %v", got)
	}

	if _, ok := b.Apply(sorter.NewContinue(2)); ok {
		t.Error("continue should be silent")
	}
	if b.Bars[2].Color != Continue {
		t.Errorf("expected continue color, got %s", b.Bars[2].Color)
	}
}

func TestSortedBarIsTerminal(t *testing.T) {
	b := newTestBoard(2, 1, 3)
	b.Apply(sorter.NewSort(1))
	before := *b.Bars[1]

	actions := []sorter.Action{
		sorter.NewCompare(1, 2),
		sorter.NewContinue(1),
		sorter.NewInsert(1, 3),
		sorter.NewSwap(0, 1),
		sorter.NewShiftRight(0),
	}
	for _, a := range actions {
		b.Apply(a)
		if *b.Bars[1] != before {
			t.Fatalf("%s changed sorted bar: %+v -> %+v", a, before, *b.Bars[1])
		}
	}

	b.ResetColors()
	if !b.Bars[1].IsSorted() {
		t.Error("reset must not clear the sorted tag")
	}
}

func TestSortStillSounds(t *testing.T) {
	b := newTestBoard(2, 1)
	b.Apply(sorter.NewSort(0))

	note, ok := b.Apply(sorter.NewSort(0))
	if !ok || note.Pitch <= 0 {
		t.Errorf("expected a tone for an already sorted bar, got %v %v", note, ok)
	}
}

func TestSwapIntoSortedBar(t *testing.T) {
	b := newTestBoard(2, 1)
	b.Apply(sorter.NewSort(1))
	b.Apply(sorter.NewSwap(0, 1))

	if got := b.Values(); !reflect.DeepEqual(got, []int{1, 1}) {
		t.Errorf("expected [1 1], got %v", got)
	}
	if !b.Bars[1].IsSorted() {
		t.Error("target bar should stay sorted")
	}
}

func TestPitchIndependentOfSurface(t *testing.T) {
	small := NewBoard([]int{10}, Fit(20, 40, 1))
	large := NewBoard([]int{10}, Classic(1600, 900, 1))

	if math.Abs(small.Pitch(0)-large.Pitch(0)) > 1e-9 {
		t.Errorf("expected equal pitch, got %f and %f", small.Pitch(0), large.Pitch(0))
	}
	if math.Abs(large.Pitch(0)-10*9*PitchFactor) > 1e-9 {
		t.Errorf("unexpected classic pitch %f", large.Pitch(0))
	}
}

func TestApplyPanicsOutOfRange(t *testing.T) {
	b := newTestBoard(1, 2)
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	b.Apply(sorter.NewShiftRight(1))
}

type rect struct {
	x, y, w, h float64
	c          Color
}

type recordingSurface struct {
	rects  []rect
	clears int
}

func (s *recordingSurface) Width() float64  { return 100 }
func (s *recordingSurface) Height() float64 { return 50 }
func (s *recordingSurface) Clear()          { s.clears++; s.rects = nil }
func (s *recordingSurface) FillRect(x, y, w, h float64, c Color) {
	s.rects = append(s.rects, rect{x, y, w, h, c})
}

func TestDraw(t *testing.T) {
	b := newTestBoard(1, 2, 3)
	b.Bars[2].MarkSorted()

	s := &recordingSurface{}
	b.Draw(s)

	if len(s.rects) != 3 {
		t.Fatalf("expected 3 rects, got %d", len(s.rects))
	}
	if s.rects[2].c != Sorted {
		t.Errorf("expected sorted color, got %s", s.rects[2].c)
	}
	if s.rects[1].h >= 0 {
		t.Errorf("expected upward (negative) height, got %f", s.rects[1].h)
	}
}
