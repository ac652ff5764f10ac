package gui

import (
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/sortviz/internal/bars"
)

// Palette colors the background, text and every bar tag.
type Palette struct {
	Name    string
	Bg      rl.Color
	Text    rl.Color
	TextDim rl.Color
	Bars    [8]rl.Color
}

// Theme Colors
var (
	// the canvas version: css colors on white
	PaletteClassic = classicPalette()

	// Monochrome Hyper-Minimalist
	PaletteDark = Palette{
		Name:    "dark",
		Bg:      rl.NewColor(10, 10, 10, 255),
		Text:    rl.NewColor(140, 140, 140, 255),
		TextDim: rl.NewColor(60, 60, 60, 255),
		Bars: [8]rl.Color{
			rl.NewColor(180, 180, 180, 255), // default
			rl.NewColor(80, 140, 255, 255),  // compare
			rl.NewColor(255, 170, 200, 255), // continue
			rl.NewColor(255, 70, 70, 255),   // swap-out
			rl.NewColor(255, 230, 60, 255),  // swap-in
			rl.NewColor(255, 255, 255, 255), // insert
			rl.NewColor(80, 140, 255, 255),  // shift
			rl.NewColor(60, 200, 100, 255),  // sorted
		},
	}

	Palettes = []Palette{PaletteClassic, PaletteDark}
)

func classicPalette() Palette {
	p := Palette{
		Name:    "classic",
		Bg:      rl.RayWhite,
		Text:    rl.DarkGray,
		TextDim: rl.Gray,
	}
	for _, c := range bars.Colors() {
		p.Bars[c] = hexColor(c.Hex())
	}
	return p
}

func (p Palette) Bar(c bars.Color) rl.Color {
	if c < 0 || int(c) >= len(p.Bars) {
		return p.Bars[bars.Default]
	}
	return p.Bars[c]
}

func hexColor(hex string) rl.Color {
	if len(hex) != 7 || hex[0] != '#' {
		return rl.White
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return rl.White
	}
	return rl.NewColor(uint8(v>>16), uint8(v>>8), uint8(v), 255)
}
