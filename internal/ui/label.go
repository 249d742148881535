package ui

import (
	"fmt"
	"math"

	"toy-atom/internal/core"
)

// EnergyLabel formats the highlighted electron's energy for display.
func EnergyLabel(ev float32) string {
	if math.IsNaN(float64(ev)) {
		return "Highlighted electron's energy: NaN eV"
	}
	return fmt.Sprintf("Highlighted electron's energy: %g eV", ev)
}

// StatusLine summarises the live state group of a parameter snapshot.
func StatusLine(s core.ParameterSnapshot) string {
	get := func(key string) string {
		if p, ok := s.Lookup(key); ok {
			return p.Value
		}
		return "--"
	}
	return fmt.Sprintf("electron %s/%s  shell %s  photons %s  frame %s",
		get("selected"), get("electrons"), get("shell"), get("photons"), get("frame"))
}
