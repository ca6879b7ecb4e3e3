package core

import (
	"math"
	"testing"
	"time"
)

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 32; i++ {
		if av, bv := a.Float64(), b.Float64(); av != bv {
			t.Fatalf("sample %d differs: %f vs %f", i, av, bv)
		}
	}
}

func TestBetweenStaysInRange(t *testing.T) {
	rng := NewRNG(3)
	for i := 0; i < 1000; i++ {
		v := Between(rng, -0.25, 0.25)
		if v < -0.25 || v >= 0.25 {
			t.Fatalf("sample %f outside [-0.25, 0.25)", v)
		}
	}
	if got := Between(NewSequenceSource(0.5), 4, 1); got != 2.5 {
		t.Fatalf("inverted bounds should be swapped, got %f", got)
	}
}

func TestPickClampsToLastIndex(t *testing.T) {
	src := NewSequenceSource(0, 0.249, 0.25, 0.999999999)
	want := []int{0, 0, 1, 3}
	for i, w := range want {
		if got := Pick(src, 4); got != w {
			t.Fatalf("pick %d = %d, want %d", i, got, w)
		}
	}
	if got := Pick(src, 0); got != 0 {
		t.Fatalf("empty pick = %d, want 0", got)
	}
}

func TestSequenceSourceCycles(t *testing.T) {
	src := NewSequenceSource(0.1, 0.2)
	got := []float64{src.Float64(), src.Float64(), src.Float64()}
	if got[0] != 0.1 || got[1] != 0.2 || got[2] != 0.1 {
		t.Fatalf("unexpected sequence %v", got)
	}
	if src.Drawn() != 3 {
		t.Fatalf("drawn = %d, want 3", src.Drawn())
	}
}

func TestWrapEdges(t *testing.T) {
	b := Bounds{W: 100, H: 50}
	cases := []struct {
		x, y   float64
		wx, wy float64
	}{
		{100, 50, 0, 0},
		{-0.5, 10, 99.5, 10},
		{100.25, -0.25, 0.25, 49.75},
		{40, 20, 40, 20},
		{-250, 175, 50, 25},
	}
	for _, c := range cases {
		x, y := b.Wrap(c.x, c.y)
		if math.Abs(x-c.wx) > 1e-9 || math.Abs(y-c.wy) > 1e-9 {
			t.Fatalf("Wrap(%v,%v) = (%v,%v), want (%v,%v)", c.x, c.y, x, y, c.wx, c.wy)
		}
		if !b.Contains(x, y) {
			t.Fatalf("Wrap(%v,%v) escaped bounds: (%v,%v)", c.x, c.y, x, y)
		}
	}
}

func TestWrapTinyNegativeStaysInside(t *testing.T) {
	b := Bounds{W: 800, H: 600}
	x, _ := b.Wrap(-1e-14, 0)
	if !b.Contains(x, 0) {
		t.Fatalf("tiny negative wrapped outside bounds: %v", x)
	}
}

func TestFixedStepWithManualClock(t *testing.T) {
	clock := NewManualClock(time.Unix(0, 0))
	fs := NewFixedStep(10, clock)

	if !fs.ShouldStep() {
		t.Fatal("first call should step with a primed accumulator")
	}
	if fs.ShouldStep() {
		t.Fatal("no time elapsed, should not step")
	}
	clock.Advance(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half a tick elapsed, should not step")
	}
	clock.Advance(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full tick elapsed, should step")
	}
	if fs.Step() != 100*time.Millisecond {
		t.Fatalf("step = %v, want 100ms", fs.Step())
	}
}

func TestParameterLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{{
		Name:   "Field",
		Params: []Parameter{IntParam("particles", "Particles", 150), FloatParam("speed", "Speed", 0.25)},
	}}}
	p, ok := snap.Lookup("speed")
	if !ok || p.Value != "0.25" {
		t.Fatalf("lookup speed = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("missing key should not be found")
	}
}
