package logo

import (
	"errors"
	"math"
	"testing"
	"time"

	"superpose/internal/core"
	"superpose/internal/loop"
	"superpose/internal/render"
	"superpose/internal/scene"
)

func TestOrbitersAdvanceAtConstantSpeed(t *testing.T) {
	sched := loop.NewScheduler(core.NewManualClock(time.Unix(0, 0)))
	rec := render.NewRecorder(100, 100)
	l, err := New(DefaultConfig(), scene.Env{Surface: rec, Scheduler: sched, Rand: core.NewRNG(4)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	orbiters := l.Orbiters()
	if len(orbiters) != 20 {
		t.Fatalf("orbiters = %d, want 20", len(orbiters))
	}
	if math.Abs(orbiters[5].Angle-math.Pi/2) > 1e-12 {
		t.Fatalf("orbiter 5 starts at %v, want pi/2", orbiters[5].Angle)
	}
	start := make([]float64, len(orbiters))
	for i, o := range orbiters {
		start[i] = o.Angle
	}

	for i := 0; i < 50; i++ {
		if err := sched.Tick(); err != nil {
			t.Fatalf("tick: %v", err)
		}
	}
	for i, o := range l.Orbiters() {
		if got := o.Angle - start[i]; math.Abs(got-50*o.Speed) > 1e-9 {
			t.Fatalf("orbiter %d advanced %v rad in 50 ticks, want %v", i, got, 50*o.Speed)
		}
		p := o.Position(50, 50)
		if d := math.Hypot(p.X-50, p.Y-50); math.Abs(d-o.Radius) > 1e-9 {
			t.Fatalf("orbiter %d drifted off its circle: distance %v", i, d)
		}
	}
}

func TestOrbitersSampleTheirOwnRanges(t *testing.T) {
	l, err := New(DefaultConfig(), scene.Env{Surface: render.NewRecorder(80, 80), Rand: core.NewRNG(21)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Stop()
	palette := render.MustParsePalette(render.DefaultPalette)
	for i, o := range l.Orbiters() {
		if o.Radius < 10 || o.Radius >= 30 || o.Speed < 0.01 || o.Speed >= 0.03 || o.Size < 1 || o.Size >= 3 {
			t.Fatalf("orbiter %d out of range: %+v", i, o)
		}
		if palette.Index(o.Color) < 0 {
			t.Fatalf("orbiter %d colour %v not in palette", i, o.Color)
		}
	}
}

func TestExactOrbiterFromSource(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Count = 1
	l, err := New(cfg, scene.Env{Surface: render.NewRecorder(40, 40), Rand: core.NewSequenceSource(0.5)})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Stop()
	o := l.Orbiters()[0]
	palette := render.MustParsePalette(render.DefaultPalette)
	if o.Radius != 20 || math.Abs(o.Speed-0.02) > 1e-12 || o.Size != 2 || o.Color != palette[2] {
		t.Fatalf("orbiter = %+v", o)
	}
}

func TestDrawPaintsCentreDiscAndOrbiters(t *testing.T) {
	rec := render.NewRecorder(120, 80)
	l, err := New(DefaultConfig(), scene.Env{Surface: rec})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Stop()
	if err := l.Draw(); err != nil {
		t.Fatalf("draw: %v", err)
	}
	if rec.Count(render.OpClear) != 1 || rec.Count(render.OpRadial) != 0 || rec.Count(render.OpStroke) != 0 {
		t.Fatalf("unexpected ops %+v", rec.Ops)
	}
	circles := rec.Filter(render.OpCircle)
	if len(circles) != 21 {
		t.Fatalf("circles = %d, want 21", len(circles))
	}
	centre := circles[0]
	purple := render.MustParsePalette(render.DefaultPalette)[0]
	if centre.X != 60 || centre.Y != 40 || centre.R != 15 || centre.Color != purple {
		t.Fatalf("centre disc = %+v", centre)
	}
}

func TestStopFreezesOrbit(t *testing.T) {
	sched := loop.NewScheduler(nil)
	rec := render.NewRecorder(64, 64)
	l, err := New(DefaultConfig(), scene.Env{Surface: rec, Scheduler: sched})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_ = sched.Tick()
	l.Stop()
	angle := l.Orbiters()[0].Angle
	painted := rec.Count(render.OpClear)
	for i := 0; i < 5; i++ {
		_ = sched.Tick()
	}
	if l.Orbiters()[0].Angle != angle || rec.Count(render.OpClear) != painted {
		t.Fatal("stopped logo kept animating")
	}
	l.Start()
	_ = sched.Tick()
	if !l.Running() || rec.Count(render.OpClear) != painted+1 {
		t.Fatal("restarted logo did not paint")
	}
}

func TestNewRequiresSurface(t *testing.T) {
	if _, err := New(DefaultConfig(), scene.Env{}); !errors.Is(err, scene.ErrNoSurface) {
		t.Fatalf("err = %v", err)
	}
}

func TestFromMapAndFactory(t *testing.T) {
	c := FromMap(map[string]string{"count": "3", "radius_max": "50", "speed_min": "-0.1", "core": "8"})
	if c.Count != 3 || c.RadiusMax != 50 || c.SpeedMin != 0.01 || c.CoreRadius != 8 {
		t.Fatalf("config = %+v", c)
	}
	factory, ok := scene.Lookup("logo")
	if !ok {
		t.Fatal("logo scene not registered")
	}
	sc, err := factory(scene.Env{Surface: render.NewRecorder(40, 40), Options: map[string]string{"count": "4"}})
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	if n := len(sc.(*Logo).Orbiters()); n != 4 {
		t.Fatalf("orbiters = %d, want 4", n)
	}
}
