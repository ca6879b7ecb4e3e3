// Command gallery paints a set of captioned thumbnail cards to PNG files.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"superpose/internal/app"
	"superpose/internal/core"
	"superpose/internal/scene"
	"superpose/internal/scenes/gallery"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	count := flag.Int("count", 6, "number of cards to paint")
	dir := flag.String("out", "gallery", "output directory")
	flag.Parse()

	file, err := cfg.Resolve(flag.CommandLine)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	env := scene.Env{}
	if cfg.Seed != 0 {
		env.Rand = core.NewRNG(cfg.Seed)
	}
	g, err := gallery.New(gallery.FromMap(cfg.SceneOptions(file, "gallery")), env)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(*dir, 0o755); err != nil {
		log.Fatal(err)
	}

	for _, card := range g.LoadCount(*count) {
		path := filepath.Join(*dir, fmt.Sprintf("card-%02d.png", card.Index))
		if err := writePNG(path, gallery.Compose(card)); err != nil {
			log.Fatalf("card %d: %v", card.Index, err)
		}
		fmt.Printf("%s  %s\n", path, card.Caption)
	}
}

func writePNG(path string, img image.Image) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(fh, img); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}
