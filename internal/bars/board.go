package bars

import (
	"fmt"
	"math"

	"github.com/san-kum/sortviz/internal/audio"
	"github.com/san-kum/sortviz/internal/sorter"
)

const (
	// PitchFactor converts one unit of bar height into Hz.
	PitchFactor = 8.5

	// referenceUnit is the surface units per value on a 900 unit tall
	// classic surface. Pitches are normalized to it so that a bar sounds
	// the same on every surface.
	referenceUnit = 9.0
)

// Surface is a 2D drawing target.
type Surface interface {
	Width() float64
	Height() float64
	Clear()
	FillRect(x, y, w, h float64, c Color)
}

// Discard is a surface that draws nothing.
type Discard struct{ W, H float64 }

func (d Discard) Width() float64                     { return d.W }
func (d Discard) Height() float64                    { return d.H }
func (Discard) Clear()                               {}
func (Discard) FillRect(x, y, w, h float64, c Color) {}

// Board is the row of bars mirroring a value sequence.
type Board struct {
	Bars []*Bar
	Geo  Geometry
}

func NewBoard(values []int, geo Geometry) *Board {
	b := &Board{
		Bars: make([]*Bar, len(values)),
		Geo:  geo,
	}
	for i, v := range values {
		b.Bars[i] = &Bar{
			X:      geo.X(i),
			Y:      geo.Baseline,
			Width:  geo.BarWidth,
			Height: geo.HeightOf(v),
			Color:  Default,
		}
	}
	return b
}

func (b *Board) Len() int { return len(b.Bars) }

// Pitch maps a bar's height to a tone frequency.
func (b *Board) Pitch(i int) float64 {
	if b.Geo.Unit == 0 {
		return 0
	}
	return math.Abs(b.Bars[i].Height) / b.Geo.Unit * referenceUnit * PitchFactor
}

func (b *Board) note(w audio.Wave, i int) audio.Note {
	return audio.Note{Wave: w, Pitch: b.Pitch(i)}
}

// Apply mutates the bars addressed by a and returns the tone it calls for.
// Sorted bars ignore height and color changes, but their tone still plays.
// An invalid action panics.
func (b *Board) Apply(a sorter.Action) (audio.Note, bool) {
	a.MustValidate(len(b.Bars))

	switch a.Kind {
	case sorter.KindSort:
		b.Bars[a.I].MarkSorted()
		return b.note(audio.Sawtooth, a.I), true

	case sorter.KindCompare:
		b.Bars[a.I].SetColor(Compare)
		b.Bars[a.J].SetColor(Compare)
		return b.note(audio.Sine, a.I), true

	case sorter.KindContinue:
		b.Bars[a.I].SetColor(Continue)
		return audio.Note{}, false

	case sorter.KindInsert:
		b.Bars[a.I].SetHeight(b.Geo.HeightOf(a.Value), Insert)
		return b.note(audio.Sawtooth, a.I), true

	case sorter.KindSwap:
		src, dst := b.Bars[a.I], b.Bars[a.J]
		hi, hj := src.Height, dst.Height
		src.SetHeight(hj, SwapOut)
		dst.SetHeight(hi, SwapIn)
		return audio.Note{}, false

	case sorter.KindShiftRight:
		dst := b.Bars[a.I+1]
		dst.SetHeight(b.Bars[a.I].Height, Shift)
		return b.note(audio.Sine, a.I+1), true
	}
	panic(fmt.Sprintf("bars: unhandled action kind %s", a.Kind))
}

// ResetColors returns every non-sorted bar to Default.
func (b *Board) ResetColors() {
	for _, bar := range b.Bars {
		bar.ResetColor()
	}
}

func (b *Board) Draw(s Surface) {
	for _, bar := range b.Bars {
		s.FillRect(bar.X, bar.Y, bar.Width, bar.Height, bar.Color)
	}
}

// Values reads the sequence back from bar heights.
func (b *Board) Values() []int {
	out := make([]int, len(b.Bars))
	for i, bar := range b.Bars {
		out[i] = b.Geo.ValueOf(bar.Height)
	}
	return out
}

// SortedCount is the number of terminal bars.
func (b *Board) SortedCount() int {
	n := 0
	for _, bar := range b.Bars {
		if bar.IsSorted() {
			n++
		}
	}
	return n
}
