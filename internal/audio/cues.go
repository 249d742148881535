package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"toy-atom/internal/core"
)

// sweep is a sine oscillator whose pitch glides linearly between two
// frequencies over its lifetime.
type sweep struct {
	from, to float64
	phase    float64
	position int
	total    int
	rate     beep.SampleRate
}

// NewSweep creates a sine streamer gliding from one frequency to another.
func NewSweep(from, to float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{from: from, to: to, total: rate.N(d), rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}
		t := float64(s.position) / float64(s.total)
		freq := s.from + (s.to-s.from)*t
		val := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// fade applies a linear attack and release to a finite stream.
type fade struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewFade shapes s with a linear attack and release over duration d.
func NewFade(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{streamer: s, attack: rate.N(attack), release: rate.N(release), total: rate.N(d)}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if f.attack > 0 && f.position < f.attack {
			vol = float64(f.position) / float64(f.attack)
		}
		if remaining := f.total - f.position; f.release > 0 && remaining < f.release {
			vol = math.Max(0, float64(remaining)/float64(f.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// withVolume scales s linearly; zero or negative volume silences it.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

const (
	emitDuration    = 140 * time.Millisecond
	absorbDuration  = 140 * time.Millisecond
	collideDuration = 220 * time.Millisecond
	expireDuration  = 90 * time.Millisecond
	cueAttack       = 5 * time.Millisecond
)

// Cue builds the sound for a photon event. Emission chirps upwards,
// absorption glides down, a collision rings like a small bell and expiry is
// a short low blip.
func Cue(kind core.EventKind, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch kind {
	case core.EventEmitted:
		s = NewFade(NewSweep(660, 1320, emitDuration, rate), emitDuration, cueAttack, emitDuration/2, rate)
	case core.EventAbsorbing:
		s = NewFade(NewSweep(990, 495, absorbDuration, rate), absorbDuration, cueAttack, absorbDuration/2, rate)
	case core.EventCollided:
		fund := NewFade(NewSweep(880, 880, collideDuration, rate), collideDuration, cueAttack, collideDuration*3/4, rate)
		over := NewFade(NewSweep(1760, 1760, collideDuration, rate), collideDuration, cueAttack, collideDuration/3, rate)
		s = beep.Mix(withVolume(fund, 0.7), withVolume(over, 0.3))
	default:
		s = NewFade(NewSweep(220, 180, expireDuration, rate), expireDuration, cueAttack, expireDuration/2, rate)
	}
	return withVolume(s, volume)
}
