package app

import (
	"flag"
	"fmt"
	"sort"
	"strings"
)

// Config represents the command-line parameters shared by the binaries.
type Config struct {
	Scene  string
	Width  int
	Height int
	TPS    int
	Seed   int64
	File   string
	Set    Options
}

// NewConfig returns a Config populated with sensible defaults. A zero Seed
// means "seed from the wall clock".
func NewConfig() *Config {
	return &Config{Scene: "field", Width: 800, Height: 600, TPS: 60, Set: Options{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	if c.Set == nil {
		c.Set = Options{}
	}
	fs.StringVar(&c.Scene, "scene", c.Scene, "scene to run")
	fs.IntVar(&c.Width, "width", c.Width, "surface width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "surface height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one from the clock)")
	fs.StringVar(&c.File, "config", c.File, "optional YAML config file")
	fs.Var(c.Set, "set", "scene option key=value (repeatable)")
}

// Options is a repeatable key=value flag.
type Options map[string]string

// String renders the options sorted by key.
func (o Options) String() string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + o[k]
	}
	return strings.Join(parts, ",")
}

// Set parses a single key=value pair.
func (o Options) Set(v string) error {
	key, value, ok := strings.Cut(v, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("option %q: want key=value", v)
	}
	o[key] = strings.TrimSpace(value)
	return nil
}
