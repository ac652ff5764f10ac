package bars

import "math"

// Geometry places n bars on a surface. Bar i sits at Left + i*(BarWidth+Gap)
// with its foot on Baseline; a value v is drawn -v*Unit tall.
type Geometry struct {
	BarWidth float64
	Gap      float64
	Left     float64
	Baseline float64
	Unit     float64
}

// Classic is the layout of the canvas version: 20 wide bars with a 1 unit
// gap starting a quarter of the way in, feet at h/2 + 5n, and a value of 100
// reaching the full surface height.
func Classic(w, h float64, n int) Geometry {
	return Geometry{
		BarWidth: 20,
		Gap:      1,
		Left:     w / 4,
		Baseline: h/2 + float64(n)*5,
		Unit:     h / 100,
	}
}

// Fit centers n bars across the surface and scales them so that the value
// n reaches the top edge.
func Fit(w, h float64, n int) Geometry {
	if n <= 0 {
		return Geometry{BarWidth: 1, Baseline: h, Unit: h}
	}
	gap := 1.0
	bw := math.Floor((w - gap*float64(n-1)) / float64(n))
	if bw < 1 {
		gap = 0
		bw = math.Max(1, math.Floor(w/float64(n)))
	}
	total := bw*float64(n) + gap*float64(n-1)
	return Geometry{
		BarWidth: bw,
		Gap:      gap,
		Left:     math.Max(0, math.Floor((w-total)/2)),
		Baseline: h,
		Unit:     h / float64(n),
	}
}

func (g Geometry) X(i int) float64 {
	return g.Left + float64(i)*(g.BarWidth+g.Gap)
}

func (g Geometry) HeightOf(v int) float64 {
	return -float64(v) * g.Unit
}

// ValueOf inverts HeightOf.
func (g Geometry) ValueOf(h float64) int {
	if g.Unit == 0 {
		return 0
	}
	return int(math.Round(-h / g.Unit))
}

// Rect normalizes a rectangle with a negative extent into one that grows
// right and down from its origin.
func Rect(x, y, w, h float64) (float64, float64, float64, float64) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	return x, y, w, h
}
