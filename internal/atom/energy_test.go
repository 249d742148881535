package atom

import (
	"math"
	"testing"
)

func TestEnergyTable(t *testing.T) {
	if !math.IsNaN(float64(Energy(0))) {
		t.Fatal("shell 0 has no energy")
	}
	cases := map[uint8]float32{1: -13.6, 2: -3.4, 3: -1.5, 4: -0.85, 5: -0.54, 6: -0.38}
	for shell, want := range cases {
		if got := Energy(shell); got != want {
			t.Fatalf("Energy(%d) = %v, want %v", shell, got, want)
		}
	}
	for _, shell := range []uint8{7, 100, 255} {
		if !math.IsNaN(float64(Energy(shell))) {
			t.Fatalf("Energy(%d) should be NaN", shell)
		}
	}
}
