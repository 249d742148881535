package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"toy-atom/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player turns sim events into sound through the system speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a player; nothing is audible until Initialize succeeds.
func NewPlayer(volume float64) *Player {
	return &Player{mixer: &beep.Mixer{}, volume: volume}
}

// Initialize opens the speaker and starts the mixer.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues a cue for each event. It is a no-op before Initialize.
func (p *Player) Play(events []core.Event) {
	if len(events) == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}

	speaker.Lock()
	for _, ev := range events {
		p.mixer.Add(Cue(ev.Kind, sampleRate, p.volume))
	}
	speaker.Unlock()
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
