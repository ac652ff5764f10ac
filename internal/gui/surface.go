package gui

import (
	"github.com/san-kum/sortviz/internal/bars"
)

type rect struct {
	X, Y, W, H float32
	Color      bars.Color
}

// Surface is a bars.Surface that keeps a display list. The window replays
// the list every frame, so drawing from the player needs no GL context.
type Surface struct {
	W, H  float64
	rects []rect
}

func NewSurface(w, h int) *Surface {
	return &Surface{W: float64(w), H: float64(h)}
}

func (s *Surface) Width() float64  { return s.W }
func (s *Surface) Height() float64 { return s.H }
func (s *Surface) Clear()          { s.rects = s.rects[:0] }

func (s *Surface) FillRect(x, y, w, h float64, c bars.Color) {
	x, y, w, h = bars.Rect(x, y, w, h)
	s.rects = append(s.rects, rect{float32(x), float32(y), float32(w), float32(h), c})
}

// Len reports the number of queued rectangles.
func (s *Surface) Len() int { return len(s.rects) }
