package ui

import (
	"fmt"

	"superpose/internal/core"
	"superpose/internal/scene"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// KeyHelp lists the host key bindings.
const KeyHelp = "R regen  O observe  P pause  H hide  Q quit"

// Lines formats the overlay text for a scene: a title, then one line per
// parameter grouped under its heading.
func Lines(sc scene.Scene) []string {
	if sc == nil {
		return nil
	}
	size := sc.Size()
	lines := []string{fmt.Sprintf("%s  %dx%d", sc.Name(), size.W, size.H)}
	provider, ok := sc.(parameterProvider)
	if !ok {
		return lines
	}
	for _, group := range provider.Parameters().Groups {
		lines = append(lines, "["+group.Name+"]")
		for _, p := range group.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return lines
}
