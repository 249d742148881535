package render

import (
	"math"

	"toy-atom/internal/core"
)

// DefaultIntensity scales the radial falloff of a disc so its centre saturates.
const DefaultIntensity = 300

// DrawDisc paints a soft disc centred on (x, y). Every pixel closer than r has
// each channel multiplied by the falloff factor with uint8 wrap-around, then
// written. Pixels outside the radius are left untouched so later draws layer
// on top of earlier ones.
func DrawDisc(f *core.Frame, x, y, r float32, rgba [4]uint8, intensity float32) {
	if r <= 0 || f == nil {
		return
	}
	x0, x1 := clampSpan(x-r, x+r, f.W)
	y0, y1 := clampSpan(y-r, y+r, f.H)
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			d := float32(math.Hypot(float64(float32(px)-x), float64(float32(py)-y)))
			if d >= r {
				continue
			}
			scale := falloff(d, r, intensity)
			i := f.Index(px, py)
			f.Pix[i+0] = rgba[0] * scale
			f.Pix[i+1] = rgba[1] * scale
			f.Pix[i+2] = rgba[2] * scale
			f.Pix[i+3] = rgba[3] * scale
		}
	}
}

// falloff converts the radial distance into a byte multiplier, saturating at
// 255 like a float-to-byte cast.
func falloff(d, r, intensity float32) uint8 {
	v := (r - d) / r * intensity
	if v >= 255 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return uint8(v)
}

func clampSpan(lo, hi float32, n int) (int, int) {
	a := int(math.Floor(float64(lo)))
	b := int(math.Ceil(float64(hi)))
	if a < 0 {
		a = 0
	}
	if b > n-1 {
		b = n - 1
	}
	return a, b
}

// Decay subtracts step from every byte of the frame, flooring at zero.
func Decay(f *core.Frame, step uint8) {
	if step == 0 {
		return
	}
	for i, b := range f.Pix {
		if b > step {
			f.Pix[i] = b - step
			continue
		}
		f.Pix[i] = 0
	}
}

// Rings marks concentric circles around the frame centre. A pixel is marked
// when its rounded distance to the centre is a multiple of spacing and below
// maxRadius; all four bytes are set to value.
func Rings(f *core.Frame, spacing, maxRadius int, value uint8) {
	if spacing <= 0 || maxRadius <= 0 {
		return
	}
	cx := f.W / 2
	cy := f.H / 2
	for py := 0; py < f.H; py++ {
		for px := 0; px < f.W; px++ {
			d := int(math.Round(math.Hypot(float64(cx-px), float64(cy-py))))
			if d >= maxRadius || d%spacing != 0 {
				continue
			}
			i := f.Index(px, py)
			f.Pix[i+0] = value
			f.Pix[i+1] = value
			f.Pix[i+2] = value
			f.Pix[i+3] = value
		}
	}
}
