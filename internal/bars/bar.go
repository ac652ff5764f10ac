package bars

import "fmt"

// Color is a bar's visual tag. Surfaces map tags to concrete colors.
type Color int

const (
	Default Color = iota
	Compare
	Continue
	SwapOut
	SwapIn
	Insert
	Shift
	Sorted
)

var colorNames = [...]string{"default", "compare", "continue", "swap-out", "swap-in", "insert", "shift", "sorted"}

// classic holds the CSS colors of the canvas version.
var classic = [...]string{"#808080", "#0000ff", "#ffc0cb", "#ff0000", "#ffff00", "#000000", "#0000ff", "#008000"}

// Colors lists every tag in declaration order.
func Colors() []Color {
	return []Color{Default, Compare, Continue, SwapOut, SwapIn, Insert, Shift, Sorted}
}

func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// Hex is the tag's color on a light background.
func (c Color) Hex() string {
	if c < 0 || int(c) >= len(classic) {
		return classic[Default]
	}
	return classic[c]
}

// Bar is one sequence position on the surface. Height is in surface units
// and negative, so the bar grows upward from Y.
//
// Once Color is Sorted the bar is terminal: no further height or color
// change is accepted.
type Bar struct {
	X, Y          float64
	Width, Height float64
	Color         Color
}

func (b *Bar) IsSorted() bool { return b.Color == Sorted }

func (b *Bar) MarkSorted() { b.Color = Sorted }

func (b *Bar) SetColor(c Color) {
	if !b.IsSorted() {
		b.Color = c
	}
}

func (b *Bar) SetHeight(h float64, c Color) {
	if b.IsSorted() {
		return
	}
	b.Height = h
	b.SetColor(c)
}

func (b *Bar) ResetColor() { b.SetColor(Default) }
