package atom

import "math"

// shellEnergy lists binding energies in eV; shell 0 has none.
var shellEnergy = [MaxShell + 1]float32{
	float32(math.NaN()), -13.6, -3.4, -1.5, -0.85, -0.54, -0.38,
}

// Energy returns the energy of shell in eV, or NaN when the shell has no
// table entry.
func Energy(shell uint8) float32 {
	if int(shell) >= len(shellEnergy) {
		return float32(math.NaN())
	}
	return shellEnergy[shell]
}
