// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hexwarp/lattice"
	"github.com/katalvlaran/hexwarp/shake"
)

var (
	// ErrNoScenes is returned by Validate for an empty scene list.
	ErrNoScenes = errors.New("config: no scenes")

	// ErrBadScene wraps every per-scene validation failure.
	ErrBadScene = errors.New("config: invalid scene")
)

// Config is the top-level YAML document.
type Config struct {
	Scenes []Scene `yaml:"scenes"`
}

// Scene describes one lattice: how to build it, perturb it and where to
// write the picture.
type Scene struct {
	Name    string `yaml:"name"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Density int    `yaml:"density"`

	Layout       string `yaml:"layout"` // graph | cells
	LockBoundary bool   `yaml:"lock_boundary"`

	Shake ShakeConfig `yaml:"shake"`
	Drags []DragEntry `yaml:"drags"`

	Output  string `yaml:"output"`
	Caption string `yaml:"caption"`
}

// ShakeConfig selects a whole-lattice perturbation applied before drags.
type ShakeConfig struct {
	Kind        string `yaml:"kind"` // none | random_noise | random_drag | seed_noise | seed_drag
	MaxStrength int    `yaml:"max_strength"`
	Seed        string `yaml:"seed"`
	RandSeed    uint64 `yaml:"rand_seed"`
}

// DragEntry drags the point nearest to (X, Y) by (DX, DY, DZ).
type DragEntry struct {
	X  int `yaml:"x"`
	Y  int `yaml:"y"`
	DX int `yaml:"dx"`
	DY int `yaml:"dy"`
	DZ int `yaml:"dz"`
}

// Default returns a single ripple scene.
func Default() Config {
	return Config{
		Scenes: []Scene{
			{
				Name:    "ripple",
				Width:   400,
				Height:  300,
				Density: 20,
				Layout:  lattice.LayoutGraph.String(),
				Shake: ShakeConfig{
					Kind:        string(shake.KindNone),
					MaxStrength: 5,
					Seed:        "1357943016922984648920275620",
					RandSeed:    1,
				},
				Drags: []DragEntry{
					{X: 200, Y: 150, DZ: 50},
				},
				Output:  "ripple.png",
				Caption: "ripple",
			},
		},
	}
}

// Load reads a YAML config from path.
// If the file doesn't exist, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.fill()

	return cfg, nil
}

// fill gives unnamed scenes a name and an output file.
func (c *Config) fill() {
	for i := range c.Scenes {
		s := &c.Scenes[i]
		if s.Name == "" {
			s.Name = fmt.Sprintf("scene-%d", i+1)
		}
		if s.Output == "" {
			s.Output = s.Name + ".png"
		}
	}
}

// Validate checks every scene and reports the first failure.
func (c Config) Validate() error {
	if len(c.Scenes) == 0 {
		return ErrNoScenes
	}
	seen := make(map[string]bool, len(c.Scenes))
	for _, s := range c.Scenes {
		if err := s.Validate(); err != nil {
			return err
		}
		if seen[s.Output] {
			return fmt.Errorf("scene %q: output %q used twice: %w", s.Name, s.Output, ErrBadScene)
		}
		seen[s.Output] = true
	}
	return nil
}

// Validate checks sizes, layout, shake kind and output of a single scene.
func (s Scene) Validate() error {
	bad := func(format string, args ...any) error {
		return fmt.Errorf("scene %q: %s: %w", s.Name, fmt.Sprintf(format, args...), ErrBadScene)
	}

	switch {
	case s.Width <= 0 || s.Height <= 0:
		return bad("size %dx%d", s.Width, s.Height)
	case s.Density <= 0:
		return bad("density %d", s.Density)
	case s.Output == "":
		return bad("empty output")
	case s.Shake.MaxStrength < 0:
		return bad("max_strength %d", s.Shake.MaxStrength)
	}
	if _, err := lattice.ParseLayout(s.Layout); err != nil {
		return bad("%v", err)
	}
	kind, err := shake.ParseKind(s.Shake.Kind)
	if err != nil {
		return bad("%v", err)
	}
	if (kind == shake.KindSeedNoise || kind == shake.KindSeedDrag) && s.Shake.Seed == "" {
		return bad("shake %s needs a seed", kind)
	}
	return nil
}

// BuildOptions translates the scene into lattice options.
func (s Scene) BuildOptions() ([]lattice.Option, error) {
	layout, err := lattice.ParseLayout(s.Layout)
	if err != nil {
		return nil, err
	}
	opts := []lattice.Option{lattice.WithLayout(layout)}
	if s.LockBoundary {
		opts = append(opts, lattice.WithBoundaryLock())
	}
	return opts, nil
}

// NewShake builds the configured perturbation.
func (s Scene) NewShake() (shake.Shake, error) {
	kind, err := shake.ParseKind(s.Shake.Kind)
	if err != nil {
		return nil, err
	}
	return shake.New(kind, shake.Params{
		MaxStrength: s.Shake.MaxStrength,
		Seed:        s.Shake.Seed,
		RandSeed:    s.Shake.RandSeed,
	})
}
