package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"toy-atom/internal/app"
	_ "toy-atom/internal/atom"
	"toy-atom/internal/audio"
	"toy-atom/internal/core"
	"toy-atom/internal/terminal"
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("terminal init: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = terminal.New(screen, sim, cfg.TPS, cfg.Seed, sound).Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
