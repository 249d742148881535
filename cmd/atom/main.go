//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"toy-atom/internal/app"
	_ "toy-atom/internal/atom"
	"toy-atom/internal/audio"
	"toy-atom/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(cfg.Params)
	sim.Reset(cfg.Seed)

	var sound *audio.Player
	if cfg.Audio {
		sound = audio.NewPlayer(cfg.Volume)
		if err := sound.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
			sound = nil
		} else {
			defer sound.Close()
		}
	}

	game := app.New(sim, cfg.Scale, cfg.Seed, sound)
	size := sim.Size()

	ebiten.SetWindowTitle("toy-atom: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
