package ui

import (
	"strings"
	"testing"

	"superpose/internal/core"
	"superpose/internal/render"
	"superpose/internal/scene"
	"superpose/internal/scenes/field"
)

type bareScene struct{}

func (bareScene) Name() string    { return "bare" }
func (bareScene) Size() core.Size { return core.Size{W: 3, H: 2} }

func TestLinesForBareScene(t *testing.T) {
	lines := Lines(bareScene{})
	if len(lines) != 1 || lines[0] != "bare  3x2" {
		t.Fatalf("lines = %q", lines)
	}
	if Lines(nil) != nil {
		t.Fatal("nil scene should produce no lines")
	}
}

func TestLinesIncludeModeAndLoopState(t *testing.T) {
	f, err := field.New(field.DefaultConfig(), scene.Env{Surface: render.NewRecorder(80, 60), Rand: core.NewRNG(1)})
	if err != nil {
		t.Fatalf("field.New: %v", err)
	}
	f.Observe()
	f.Stop()
	joined := strings.Join(Lines(f), "\n")
	for _, want := range []string{"field  80x60", "[State]", "Mode: Observing", "Loop: stopped", "Particles: 150"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("overlay lines missing %q:\n%s", want, joined)
		}
	}
}
