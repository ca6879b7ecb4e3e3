package scene

import (
	"testing"
	"time"

	"superpose/internal/core"
	"superpose/internal/render"
)

type stub struct{ size core.Size }

func (s stub) Name() string    { return "stub" }
func (s stub) Size() core.Size { return s.size }

func TestRegistry(t *testing.T) {
	Register("zz-stub", func(env Env) (Scene, error) { return stub{size: env.SurfaceSize()}, nil })
	Register("", func(Env) (Scene, error) { return nil, nil })
	Register("zz-nil", nil)

	f, ok := Lookup("zz-stub")
	if !ok {
		t.Fatal("registered scene not found")
	}
	sc, err := f(Env{Surface: render.NewRecorder(30, 20)})
	if err != nil || sc.Size() != (core.Size{W: 30, H: 20}) {
		t.Fatalf("factory = %v, %v", sc, err)
	}
	if _, ok := Lookup("zz-nil"); ok {
		t.Fatal("nil factory should not register")
	}
	names := Names()
	if names[len(names)-1] != "zz-stub" {
		t.Fatalf("names not sorted: %v", names)
	}
}

func TestWithDefaultsSharesClock(t *testing.T) {
	clock := core.NewManualClock(time.Unix(50, 0))
	env := Env{Clock: clock}.WithDefaults()
	if env.Scheduler == nil || env.Rand == nil {
		t.Fatal("defaults not filled")
	}
	if env.Scheduler.Clock() != clock {
		t.Fatal("scheduler does not share the environment clock")
	}
	if (Env{}).SurfaceSize() != (core.Size{}) {
		t.Fatal("size without surface should be zero")
	}
}
