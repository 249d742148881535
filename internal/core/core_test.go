package core

import "testing"

func TestFrameIndexAndAt(t *testing.T) {
	f := NewFrame(4, 3)
	if len(f.Pix) != 4*4*3 {
		t.Fatalf("expected %d bytes, got %d", 4*4*3, len(f.Pix))
	}
	i := f.Index(2, 1)
	if i != (1*4+2)*4 {
		t.Fatalf("Index(2,1) = %d", i)
	}
	copy(f.Pix[i:], []byte{1, 2, 3, 4})
	if got := f.At(2, 1); got != [4]uint8{1, 2, 3, 4} {
		t.Fatalf("At(2,1) = %v", got)
	}
}

func TestFrameResize(t *testing.T) {
	f := NewFrame(0, -1)
	if f.W != 1 || f.H != 1 {
		t.Fatalf("degenerate dimensions should clamp to 1x1, got %dx%d", f.W, f.H)
	}
	f.Pix[0] = 9
	f.Resize(1, 1)
	if f.Pix[0] != 0 {
		t.Fatal("Resize with same size must clear")
	}
	f.Resize(8, 2)
	if len(f.Pix) != 8*2*4 {
		t.Fatalf("unexpected buffer length %d", len(f.Pix))
	}
}

func TestParameterLookup(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "a", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "b", Params: []Parameter{{Key: "y", Value: "2"}}},
	}}
	p, ok := s.Lookup("y")
	if !ok || p.Value != "2" {
		t.Fatalf("Lookup(y) = %+v, %v", p, ok)
	}
	if _, ok := s.Lookup("z"); ok {
		t.Fatal("Lookup(z) should miss")
	}
}

func TestRegisterIgnoresInvalid(t *testing.T) {
	before := len(Sims())
	Register("", func(map[string]string) Sim { return nil })
	Register("nil-factory", nil)
	if len(Sims()) != before {
		t.Fatal("invalid registrations must be ignored")
	}
}

func TestCommandString(t *testing.T) {
	if CommandEmit.String() != "emit" || Command(99).String() != "unknown" {
		t.Fatal("unexpected command names")
	}
}
