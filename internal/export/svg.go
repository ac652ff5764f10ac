package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/sortviz/internal/bars"
)

type svgRect struct {
	x, y, w, h float64
	color      bars.Color
}

// SVGSurface records filled rectangles and renders them as an SVG document.
// Clear drops everything drawn so far, so SVG always shows the last frame.
type SVGSurface struct {
	W, H       float64
	Background string
	rects      []svgRect
}

func NewSVGSurface(w, h float64) *SVGSurface {
	return &SVGSurface{W: w, H: h, Background: "#ffffff"}
}

func (s *SVGSurface) Width() float64  { return s.W }
func (s *SVGSurface) Height() float64 { return s.H }
func (s *SVGSurface) Clear()          { s.rects = s.rects[:0] }

func (s *SVGSurface) FillRect(x, y, w, h float64, c bars.Color) {
	x, y, w, h = bars.Rect(x, y, w, h)
	s.rects = append(s.rects, svgRect{x, y, w, h, c})
}

// SVG renders the current frame.
func (s *SVGSurface) SVG() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, s.W, s.H, s.W, s.H, s.Background))

	for _, r := range s.rects {
		sb.WriteString(fmt.Sprintf(`<rect class="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, r.color, r.x, r.y, r.w, r.h, r.color.Hex()))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// SeriesToSVG plots values against their index as a polyline.
func SeriesToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	minY, maxY := values[0], values[0]
	for _, v := range values {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}

	// Add padding
	rangeX := float64(len(values) - 1)
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, v := range values {
		x := float64(i) / rangeX * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
