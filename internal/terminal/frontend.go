package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"toy-atom/internal/audio"
	"toy-atom/internal/core"
	"toy-atom/internal/ui"
)

// pollInterval is how often the run loop checks the fixed-step timer.
const pollInterval = 4 * time.Millisecond

var commandRunes = map[rune]core.Command{
	' ': core.CommandSelectNext,
	'j': core.CommandAbsorb,
	'k': core.CommandEmit,
	'a': core.CommandAddElectron,
}

// Frontend drives a sim inside a terminal, drawing the framebuffer with
// half-block characters: each cell shows two vertically stacked pixels.
type Frontend struct {
	screen tcell.Screen
	sim    core.Sim
	frame  *core.Frame
	step   *core.FixedStep
	sound  *audio.Player

	seed   int64
	paused bool
}

// New wraps an initialised screen. sound may be nil.
func New(screen tcell.Screen, sim core.Sim, tps int, seed int64, sound *audio.Player) *Frontend {
	size := sim.Size()
	return &Frontend{
		screen: screen,
		sim:    sim,
		frame:  core.NewFrame(size.W, size.H),
		step:   core.NewFixedStep(tps),
		sound:  sound,
		seed:   seed,
	}
}

// HandleEvent applies one input event and reports whether to keep running.
func (t *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *Frontend) handleKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return false
	}
	if key != tcell.KeyRune {
		return true
	}
	switch r {
	case 'q':
		return false
	case 'p':
		t.paused = !t.paused
		return true
	case 'r':
		t.sim.Reset(t.seed)
		t.frame.Clear()
		return true
	case 'n':
		if t.paused {
			t.advance()
		}
		return true
	}
	if cmd, ok := commandRunes[r]; ok {
		if ctl, ok := t.sim.(core.Controller); ok {
			ctl.Command(cmd)
		}
	}
	return true
}

// Tick advances the sim when the fixed-step timer allows and redraws.
func (t *Frontend) Tick() {
	if !t.paused && t.step.ShouldStep() {
		t.advance()
	}
	t.Draw()
}

func (t *Frontend) advance() {
	t.sim.Step()
	t.sim.Draw(t.frame)
	if src, ok := t.sim.(core.EventSource); ok {
		events := src.DrainEvents()
		if t.sound != nil {
			t.sound.Play(events)
		}
	}
}

// Draw paints the framebuffer and the status lines onto the screen.
func (t *Frontend) Draw() {
	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	textRows := 0
	if rows > 2 {
		textRows = 2
	}
	viewRows := rows - textRows
	pixelRows := viewRows * 2

	for cy := 0; cy < viewRows; cy++ {
		y0, y1 := cellSpan(2*cy, pixelRows, t.frame.H)
		y2, y3 := cellSpan(2*cy+1, pixelRows, t.frame.H)
		for cx := 0; cx < cols; cx++ {
			x0, x1 := cellSpan(cx, cols, t.frame.W)
			top := blockColor(t.frame, x0, x1, y0, y1)
			bottom := blockColor(t.frame, x0, x1, y2, y3)
			t.screen.SetContent(cx, cy, '▀', nil, halfBlockStyle(top, bottom))
		}
	}

	if textRows > 0 {
		if r, ok := t.sim.(interface{ SelectedEnergy() float32 }); ok {
			t.drawText(viewRows, ui.EnergyLabel(r.SelectedEnergy()))
		}
		if p, ok := t.sim.(core.ParameterProvider); ok {
			status := ui.StatusLine(p.Parameters())
			if t.paused {
				status += "  [paused]"
			}
			t.drawText(viewRows+1, status)
		}
	}
	t.screen.Show()
}

func (t *Frontend) drawText(row int, s string) {
	cols, _ := t.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	x := 0
	for _, r := range s {
		if x >= cols {
			return
		}
		t.screen.SetContent(x, row, r, nil, style)
		x++
	}
	for ; x < cols; x++ {
		t.screen.SetContent(x, row, ' ', nil, style)
	}
}

// Run polls input on a separate goroutine and ticks the sim until the user
// quits or ctx is cancelled.
func (t *Frontend) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !t.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			t.Tick()
		}
	}
}
