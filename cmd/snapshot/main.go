// Command snapshot renders a looping scene headlessly and writes the final
// frame as a PNG.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"time"

	"superpose/internal/app"
	"superpose/internal/core"
	"superpose/internal/loop"
	"superpose/internal/render"
	"superpose/internal/scenes/field"
	_ "superpose/internal/scenes/logo"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	frames := flag.Int("frames", 120, "ticks to render with a simulated clock")
	duration := flag.Duration("duration", 0, "render in real time for this long instead of -frames")
	observe := flag.Bool("observe", false, "switch the field to observing mode before rendering")
	out := flag.String("out", "snapshot.png", "output PNG path")
	flag.Parse()

	file, err := cfg.Resolve(flag.CommandLine)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var clock core.Clock = core.SystemClock{}
	manual := core.NewManualClock(time.Now())
	if *duration <= 0 {
		clock = manual
	}
	sched := loop.NewScheduler(clock)
	canvas := render.NewCanvas(cfg.Width, cfg.Height)

	sc, err := app.NewScene(cfg, file, canvas, sched)
	if err != nil {
		log.Fatal(err)
	}
	if f, ok := sc.(*field.Field); ok && *observe {
		f.Observe()
	}

	if *duration > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), *duration)
		defer cancel()
		err := loop.Pump(ctx, sched, core.NewFixedStep(cfg.TPS, clock))
		if err != nil && !errors.Is(err, context.DeadlineExceeded) {
			log.Fatalf("render: %v", err)
		}
	} else {
		step := time.Second / time.Duration(max(cfg.TPS, 1))
		for i := 0; i < *frames; i++ {
			manual.Advance(step)
			if err := sched.Tick(); err != nil {
				log.Fatalf("render: frame %d: %v", i, err)
			}
		}
	}

	fh, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	if err := png.Encode(fh, canvas.Snapshot()); err != nil {
		log.Fatalf("encode: %v", err)
	}
	if err := fh.Close(); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d frames of %q written to %s\n", sched.Frames(), sc.Name(), *out)
}
