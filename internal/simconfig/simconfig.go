package simconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"gopkg.in/yaml.v3"

	"rigids/internal/physics"
	"rigids/internal/sim"
)

// ConfigPath is the default config file, relative to the working directory.
const ConfigPath = "config/rigids.yaml"

type PhysicsFile struct {
	Gravity         [2]float64 `yaml:"gravity"`
	Dt              float64    `yaml:"dt"`
	Stiffness       float64    `yaml:"stiffness"`
	Damping         float64    `yaml:"damping"`
	Attraction      float64    `yaml:"attraction"` // force per unit distance; light bodies feel it more
	Bounds          [4]float64 `yaml:"bounds"` // min x, min y, max x, max y
	CollideBoundary bool       `yaml:"collide_boundary"`
}

type WindowFile struct {
	Width  int32  `yaml:"width"`
	Height int32  `yaml:"height"`
	FPS    int32  `yaml:"fps"`
	Title  string `yaml:"title"`
}

type BodyFile struct {
	Shape   string    `yaml:"shape"`
	Dims    []float64 `yaml:"dims"`
	Density float64   `yaml:"density,omitempty"`
}

type ScenarioFile struct {
	Name   string     `yaml:"name"`
	Bodies []BodyFile `yaml:"bodies"`
}

// File is the on-disk configuration. Fields missing from the file keep their defaults;
// fields written out, even as zero, replace them.
type File struct {
	Physics       PhysicsFile    `yaml:"physics"`
	TicksPerFrame int            `yaml:"ticks_per_frame"`
	Scenario      int            `yaml:"scenario"`
	Seed          int64          `yaml:"seed"`
	Window        WindowFile     `yaml:"window"`
	Scenarios     []ScenarioFile `yaml:"scenarios,omitempty"` // appended after the built-in ones
}

// Default returns the stock configuration.
func Default() File {
	p := physics.DefaultConfig()
	return File{
		Physics: PhysicsFile{
			Gravity:         [2]float64{p.Gravity.X, p.Gravity.Y},
			Dt:              p.Dt,
			Stiffness:       p.Stiffness,
			Damping:         p.Damping,
			Attraction:      p.AttractionCoef,
			Bounds:          [4]float64{p.Bounds.X.Lo, p.Bounds.Y.Lo, p.Bounds.X.Hi, p.Bounds.Y.Hi},
			CollideBoundary: p.CollideBoundary,
		},
		TicksPerFrame: sim.DefaultTicksPerFrame,
		Scenario:      1,
		Seed:          1,
		Window: WindowFile{
			Width:  1080,
			Height: 640,
			FPS:    60,
			Title:  "rigids",
		},
	}
}

// Load reads the config at path on top of the defaults. A missing file yields Default().
func Load(path string) (File, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("Config: %s not found, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg File) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadScenarios reads a YAML list of scenarios.
func LoadScenarios(path string) ([]sim.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var files []ScenarioFile
	if err := yaml.Unmarshal(data, &files); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return convertScenarios(files)
}

// PhysicsConfig converts the physics section.
func (f File) PhysicsConfig() physics.Config {
	p := f.Physics
	return physics.Config{
		Gravity:        physics.Vec2{X: p.Gravity[0], Y: p.Gravity[1]},
		Dt:             p.Dt,
		Stiffness:      p.Stiffness,
		Damping:        p.Damping,
		AttractionCoef: p.Attraction,
		Bounds: r2.Rect{
			X: r1.Interval{Lo: p.Bounds[0], Hi: p.Bounds[2]},
			Y: r1.Interval{Lo: p.Bounds[1], Hi: p.Bounds[3]},
		},
		CollideBoundary: p.CollideBoundary,
	}
}

// SimConfig converts the file into a loop config: built-in scenarios first, then the file's own.
func (f File) SimConfig() (sim.Config, error) {
	extra, err := convertScenarios(f.Scenarios)
	if err != nil {
		return sim.Config{}, err
	}
	return sim.Config{
		Physics:       f.PhysicsConfig(),
		TicksPerFrame: f.TicksPerFrame,
		Scenarios:     append(sim.BuiltinScenarios(), extra...),
		Scenario:      f.Scenario,
		Seed:          f.Seed,
	}, nil
}

func convertScenarios(files []ScenarioFile) ([]sim.Scenario, error) {
	out := make([]sim.Scenario, 0, len(files))
	for _, sf := range files {
		sc := sim.Scenario{Name: sf.Name}
		for i, bf := range sf.Bodies {
			spec, err := bf.spec()
			if err != nil {
				return nil, fmt.Errorf("scenario %q body %d: %w", sf.Name, i, err)
			}
			sc.Bodies = append(sc.Bodies, spec)
		}
		out = append(out, sc)
	}
	return out, nil
}

func (bf BodyFile) spec() (sim.BodySpec, error) {
	kind, err := physics.ParseShapeKind(bf.Shape)
	if err != nil {
		return sim.BodySpec{}, fmt.Errorf("%w: %w", physics.ErrConfiguration, err)
	}
	want := 2
	if kind == physics.Circle {
		want = 1
	}
	if len(bf.Dims) != want {
		return sim.BodySpec{}, fmt.Errorf("%w: %s needs %d dims, got %d", physics.ErrConfiguration, kind, want, len(bf.Dims))
	}
	shape := physics.Shape{Kind: kind}
	copy(shape.Dims[:], bf.Dims)
	density := bf.Density
	if density == 0 {
		density = 1
	}
	return sim.BodySpec{Shape: shape, Density: density}, nil
}
