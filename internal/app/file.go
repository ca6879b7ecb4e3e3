package app

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// File is the optional YAML configuration.
type File struct {
	Window WindowConfig                 `yaml:"window"`
	Seed   int64                        `yaml:"seed"`
	Scenes map[string]map[string]string `yaml:"scenes"`
}

// WindowConfig describes the host window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

// LoadFile reads and parses a YAML config, back-filling defaults.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	def := NewConfig()
	if f.Window.Width <= 0 {
		f.Window.Width = def.Width
	}
	if f.Window.Height <= 0 {
		f.Window.Height = def.Height
	}
	if f.Window.TPS <= 0 {
		f.Window.TPS = def.TPS
	}
	if f.Window.Title == "" {
		f.Window.Title = "superpose"
	}
	if f.Scenes == nil {
		f.Scenes = map[string]map[string]string{}
	}
	return &f, nil
}

// Resolve loads the config file named by -config, if any, and applies its
// values to every setting not given explicitly on the command line. It
// returns the loaded file, or nil when none was named.
func (c *Config) Resolve(fs *flag.FlagSet) (*File, error) {
	if c.File == "" {
		return nil, nil
	}
	f, err := LoadFile(c.File)
	if err != nil {
		return nil, err
	}
	explicit := map[string]bool{}
	if fs != nil {
		fs.Visit(func(fl *flag.Flag) { explicit[fl.Name] = true })
	}
	if !explicit["width"] {
		c.Width = f.Window.Width
	}
	if !explicit["height"] {
		c.Height = f.Window.Height
	}
	if !explicit["tps"] {
		c.TPS = f.Window.TPS
	}
	if !explicit["seed"] && f.Seed != 0 {
		c.Seed = f.Seed
	}
	return f, nil
}

// SceneOptions merges the option map for the named scene: file values
// first, then -set overrides. A non-zero seed is passed as the "seed"
// option unless one was set explicitly.
func (c *Config) SceneOptions(f *File, name string) map[string]string {
	out := map[string]string{}
	if f != nil {
		for k, v := range f.Scenes[name] {
			out[k] = v
		}
	}
	for k, v := range c.Set {
		out[k] = v
	}
	if _, ok := out["seed"]; !ok && c.Seed != 0 {
		out["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	return out
}
