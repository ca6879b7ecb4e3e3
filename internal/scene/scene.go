// Package scene defines the construction environment shared by every
// animated scene and a registry the hosts select scenes from by name.
package scene

import (
	"errors"
	"sort"
	"time"

	"superpose/internal/core"
	"superpose/internal/loop"
	"superpose/internal/render"
)

// ErrNoSurface is returned when a scene is built or drawn without a surface.
var ErrNoSurface = errors.New("scene: drawing surface is required")

// Scene is the minimal contract every registered scene implements.
type Scene interface {
	Name() string
	Size() core.Size
}

// Looper is implemented by scenes driven by a loop.Driver.
type Looper interface {
	Start()
	Stop()
	Running() bool
}

// Env carries the collaborators a scene is constructed with.
type Env struct {
	Surface   render.Surface
	Scheduler *loop.Scheduler
	Clock     core.Clock
	Rand      core.Source
	Options   map[string]string
}

// WithDefaults fills any nil collaborator except Surface. The scheduler
// shares the environment clock.
func (e Env) WithDefaults() Env {
	if e.Clock == nil {
		if e.Scheduler != nil {
			e.Clock = e.Scheduler.Clock()
		} else {
			e.Clock = core.SystemClock{}
		}
	}
	if e.Scheduler == nil {
		e.Scheduler = loop.NewScheduler(e.Clock)
	}
	if e.Rand == nil {
		e.Rand = core.NewRNG(time.Now().UnixNano())
	}
	return e
}

// SurfaceSize reports the surface dimensions rounded to whole pixels.
func (e Env) SurfaceSize() core.Size {
	if e.Surface == nil {
		return core.Size{}
	}
	return core.Size{W: int(e.Surface.Width()), H: int(e.Surface.Height())}
}

// Factory constructs a Scene from an environment.
type Factory func(env Env) (Scene, error)

var scenes = map[string]Factory{}

// Register adds a scene factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	scenes[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := scenes[name]
	return f, ok
}

// Names lists the registered scenes in sorted order.
func Names() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
