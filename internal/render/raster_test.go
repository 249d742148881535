package render

import (
	"bytes"
	"testing"

	"toy-atom/internal/core"
)

func TestDrawDiscLeavesOutsideUntouched(t *testing.T) {
	f := core.NewFrame(32, 32)
	for i := range f.Pix {
		f.Pix[i] = 7
	}
	DrawDisc(f, 16, 16, 4, [4]uint8{0, 1, 1, 255}, DefaultIntensity)

	if got := f.At(0, 0); got != [4]uint8{7, 7, 7, 7} {
		t.Fatalf("far pixel modified: %v", got)
	}
	if got := f.At(16, 20); got != [4]uint8{7, 7, 7, 7} {
		t.Fatalf("pixel at distance r modified: %v", got)
	}
	centre := f.At(16, 16)
	if centre[0] != 0 || centre[1] != 255 || centre[2] != 255 {
		t.Fatalf("centre should saturate the unit channels, got %v", centre)
	}
}

func TestDrawDiscFalloff(t *testing.T) {
	f := core.NewFrame(32, 32)
	DrawDisc(f, 16, 16, 10, [4]uint8{0, 1, 0, 0}, 100)
	// (10-0)/10*100 = 100 at the centre, (10-5)/10*100 = 50 five pixels out.
	if got := f.At(16, 16)[1]; got != 100 {
		t.Fatalf("centre channel = %d, want 100", got)
	}
	if got := f.At(21, 16)[1]; got != 50 {
		t.Fatalf("mid channel = %d, want 50", got)
	}
}

func TestDrawDiscWrapsChannels(t *testing.T) {
	f := core.NewFrame(8, 8)
	DrawDisc(f, 4, 4, 4, [4]uint8{2, 0, 0, 0}, DefaultIntensity)
	// 2 * 255 wraps to 254.
	if got := f.At(4, 4)[0]; got != 254 {
		t.Fatalf("expected wrapped channel 254, got %d", got)
	}
}

func TestDrawDiscIdempotentWhenStationary(t *testing.T) {
	a := core.NewFrame(40, 30)
	b := core.NewFrame(40, 30)
	DrawDisc(a, 20, 15, 4, [4]uint8{0xdd, 0xaa, 0x11, 0xff}, DefaultIntensity)
	DrawDisc(b, 20, 15, 4, [4]uint8{0xdd, 0xaa, 0x11, 0xff}, DefaultIntensity)
	DrawDisc(b, 20, 15, 4, [4]uint8{0xdd, 0xaa, 0x11, 0xff}, DefaultIntensity)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatal("drawing a stationary particle twice changed the buffer")
	}
}

func TestDrawDiscClipsAtEdges(t *testing.T) {
	f := core.NewFrame(10, 10)
	DrawDisc(f, 0, 0, 4, [4]uint8{1, 1, 1, 1}, DefaultIntensity)
	DrawDisc(f, 10, 10, 4, [4]uint8{1, 1, 1, 1}, DefaultIntensity)
	DrawDisc(f, -50, 5, 4, [4]uint8{1, 1, 1, 1}, DefaultIntensity)
	if f.At(0, 0)[0] == 0 {
		t.Fatal("corner disc should paint the origin")
	}
}

func TestDecayFloorsAtZero(t *testing.T) {
	f := core.NewFrame(2, 1)
	copy(f.Pix, []byte{0, 3, 4, 5, 200, 255, 1, 70})
	Decay(f, 4)
	want := []byte{0, 0, 0, 1, 196, 251, 0, 66}
	if !bytes.Equal(f.Pix, want) {
		t.Fatalf("Decay = %v, want %v", f.Pix, want)
	}
}

func TestDecayZeroStepIsNoop(t *testing.T) {
	f := core.NewFrame(2, 2)
	f.Pix[3] = 9
	Decay(f, 0)
	if f.Pix[3] != 9 {
		t.Fatal("zero decay must not modify the frame")
	}
}

func TestRingsMarkShellRadii(t *testing.T) {
	f := core.NewFrame(320, 240)
	Rings(f, 20, 100, 70)
	cases := []struct {
		x, y int
		want uint8
	}{
		{160, 120, 70},
		{180, 120, 70},
		{160, 160, 70},
		{170, 120, 0},
		{260, 120, 0}, // radius 100 is excluded
		{240, 120, 70},
	}
	for _, c := range cases {
		got := f.At(c.x, c.y)
		if got != [4]uint8{c.want, c.want, c.want, c.want} {
			t.Fatalf("pixel (%d,%d) = %v, want all %d", c.x, c.y, got, c.want)
		}
	}
}
