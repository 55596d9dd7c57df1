//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"wrapsnake/internal/app"
	"wrapsnake/internal/audio"
	"wrapsnake/internal/core"
	_ "wrapsnake/internal/game/autopilot"
	_ "wrapsnake/internal/game/snake"

	"github.com/hajimehoshi/ebiten/v2"
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

	adapter := app.New(game, cfg.Scale, cfg.Seed, sounds)
	size := game.Size()

	ebiten.SetWindowTitle("wrapsnake - " + game.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(adapter); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
