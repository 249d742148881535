package atom

import "math"

// ShellSpacing is the radial distance in pixels between neighbouring shells.
const ShellSpacing = 20

// orbitSteps is the number of precomputed angles; frame counters wrap onto it.
const orbitSteps = 255

// OrbitTable holds unit-circle offsets scaled by ShellSpacing, one entry per
// frame of the orbit cycle.
type OrbitTable struct {
	cos [orbitSteps]float32
	sin [orbitSteps]float32
}

var orbit = newOrbitTable()

func newOrbitTable() *OrbitTable {
	t := &OrbitTable{}
	for n := 0; n < orbitSteps; n++ {
		angle := float64(n) / orbitSteps * 2 * math.Pi
		t.cos[n] = float32(math.Cos(angle)) * ShellSpacing
		t.sin[n] = float32(math.Sin(angle)) * ShellSpacing
	}
	return t
}

// Orbit returns the shared, immutable orbit table.
func Orbit() *OrbitTable { return orbit }

// Offset returns the table entry for frame. Frame 255 wraps to entry 0 so the
// pattern repeats every 255 frames.
func (t *OrbitTable) Offset(frame uint8) (float32, float32) {
	i := int(frame) % orbitSteps
	return t.cos[i], t.sin[i]
}

// Position returns the point at frame on the orbit of the given radius
// multiplier around (cx, cy).
func (t *OrbitTable) Position(frame uint8, shellRadius, cx, cy float32) (float32, float32) {
	ox, oy := t.Offset(frame)
	return cx + ox*shellRadius, cy + oy*shellRadius
}
