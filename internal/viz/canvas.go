package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/bars"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a braille pixel grid. Every cell also carries the color tag of
// the last rectangle drawn into it. As a bars.Surface it measures in
// sub-pixels: (Cols*2) x (Rows*4).
type Canvas struct {
	Cols, Rows int
	Grid                [][]rune
	Tags       [][]bars.Color
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Cols: w,
		Rows: h,
		Grid: make([][]rune, h),
		Tags: make([][]bars.Color, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Tags[i] = make([]bars.Color, w)
	}
	c.Clear()
	return c
}

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
func (c *Canvas) Set(x, y int, tag bars.Color) {
	// Early bounds check for negative coordinates
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Cols || row >= c.Rows {
		return
	}

	subX := x % 2
	subY := y % 4

	c.Grid[row][col] |= rune(pixelMap[subY][subX])
	c.Tags[row][col] = tag
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Tags[i][j] = bars.Default
		}
	}
}

func (c *Canvas) Width() float64  { return float64(c.Cols * 2) }
func (c *Canvas) Height() float64 { return float64(c.Rows * 4) }

// FillRect sets the sub-pixels of the rectangle, rounded to whole pixels.
func (c *Canvas) FillRect(x, y, w, h float64, tag bars.Color) {
	x, y, w, h = bars.Rect(x, y, w, h)
	x0, y0 := int(math.Round(x)), int(math.Round(y))
	x1, y1 := int(math.Round(x+w)), int(math.Round(y+h))
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.Set(px, py, tag)
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render colors the grid with theme, one style run per stretch of equally
// tagged cells.
func (c *Canvas) Render(theme Theme) string {
	var b strings.Builder
	for row := range c.Grid {
		start := 0
		for col := 1; col <= c.Cols; col++ {
			if col < c.Cols && c.Tags[row][col] == c.Tags[row][start] {
				continue
			}
			style := lipgloss.NewStyle().Foreground(theme.Bar(c.Tags[row][start]))
			b.WriteString(style.Render(string(c.Grid[row][start:col])))
			start = col
		}
		b.WriteString("\n")
	}
	return b.String()
}
