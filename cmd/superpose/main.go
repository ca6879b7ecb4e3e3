//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"superpose/internal/app"
	_ "superpose/internal/scenes/field"
	_ "superpose/internal/scenes/gallery"
	_ "superpose/internal/scenes/logo"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	file, err := cfg.Resolve(flag.CommandLine)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	game, err := app.New(cfg, file)
	if err != nil {
		log.Fatal(err)
	}

	title := "superpose"
	if file != nil {
		title = file.Window.Title
	}
	ebiten.SetWindowTitle(title + " - " + game.Scene().Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
