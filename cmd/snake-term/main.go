package main

import (
	"flag"
	"log"

	"wrapsnake/internal/app"
	"wrapsnake/internal/audio"
	"wrapsnake/internal/core"
	_ "wrapsnake/internal/game/autopilot"
	_ "wrapsnake/internal/game/snake"
	"wrapsnake/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Games()[cfg.Game]
	if !ok {
		log.Fatalf("unknown game %q", cfg.Game)
	}

	game := factory(cfg.Options())
	game.Reset(cfg.Seed)

	var sounds *audio.Player
	if !cfg.Mute {
		sounds = audio.NewPlayer()
	}

	ui, err := term.New(game, cfg.TPS, sounds)
	if err != nil {
		log.Fatalf("terminal init: %v", err)
	}
	if err := ui.Run(); err != nil {
		log.Fatal(err)
	}
}
