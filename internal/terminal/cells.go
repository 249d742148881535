package terminal

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"toy-atom/internal/core"
)

// blockColor averages the pixels of f inside [x0,x1)×[y0,y1) in linear RGB,
// so a bright photon spread over a cell dims rather than disappears.
func blockColor(f *core.Frame, x0, x1, y0, y1 int) colorful.Color {
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	var r, g, b float64
	n := 0
	for y := y0; y < y1 && y < f.H; y++ {
		for x := x0; x < x1 && x < f.W; x++ {
			i := f.Index(x, y)
			c := colorful.Color{
				R: float64(f.Pix[i+0]) / 255,
				G: float64(f.Pix[i+1]) / 255,
				B: float64(f.Pix[i+2]) / 255,
			}
			lr, lg, lb := c.LinearRgb()
			r += lr
			g += lg
			b += lb
			n++
		}
	}
	if n == 0 {
		return colorful.Color{}
	}
	return colorful.LinearRgb(r/float64(n), g/float64(n), b/float64(n)).Clamped()
}

// cellSpan maps cell index i of n cells onto [lo, hi) of a size-pixel axis.
func cellSpan(i, n, size int) (int, int) {
	lo := i * size / n
	hi := (i + 1) * size / n
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}
