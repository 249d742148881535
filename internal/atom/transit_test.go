package atom

import "testing"

func TestMeasureTransit(t *testing.T) {
	cfg := DefaultConfig()
	absorb := MeasureTransit(cfg, false, 1000)
	if !absorb.Collided || absorb.Expired || absorb.Shell != 1 {
		t.Fatalf("unexpected absorb transit %+v", absorb)
	}
	emit := MeasureTransit(cfg, true, 1000)
	if !emit.Collided || emit.Shell != 3 {
		t.Fatalf("unexpected emit transit %+v", emit)
	}
	if emit.Ticks <= 0 || absorb.Ticks <= 0 {
		t.Fatal("transits should take at least one tick")
	}
}

func TestMeasureTransitExpires(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.MaxPhotonAge = 2
	res := MeasureTransit(cfg, false, 1000)
	if !res.Expired || res.Collided || res.Ticks != 2 {
		t.Fatalf("unexpected transit %+v", res)
	}
}

func TestMeasureTransitRespectsTickLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.MaxPhotonAge = 0
	res := MeasureTransit(cfg, false, 3)
	if res.Ticks != 3 || res.Collided || res.Expired {
		t.Fatalf("unexpected transit %+v", res)
	}
}
