//go:build !ebiten

package app

import (
	"errors"

	"superpose/internal/scene"
)

// ErrNoGUI is returned by the headless build of the windowed host.
var ErrNoGUI = errors.New("app: the windowed host requires the 'ebiten' build tag")

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New reports that the ebiten build tag is required for GUI support.
func New(*Config, *File) (*Game, error) { return nil, ErrNoGUI }

// Scene returns nil in the headless build.
func (g *Game) Scene() scene.Scene { return nil }

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error { return ErrNoGUI }

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
