package sim

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"rigids/internal/physics"
)

var ErrUnknownScenario = errors.New("unknown scenario")

// BodySpec describes one body of a scenario.
type BodySpec struct {
	Shape   physics.Shape
	Density float64
}

// Scenario is a fixed, ordered set of bodies. Resetting a scenario always yields
// the same count and shape sequence; only placement is random.
type Scenario struct {
	Name   string
	Bodies []BodySpec
}

func rect(w, h float64) BodySpec     { return BodySpec{Shape: physics.NewRectangle(w, h), Density: 1} }
func circle(r float64) BodySpec      { return BodySpec{Shape: physics.NewCircle(r), Density: 1} }
func triangle(l, h float64) BodySpec { return BodySpec{Shape: physics.NewTriangle(l, h), Density: 1} }

// BuiltinScenarios returns the two stock scenes: a ten-body pile and a trio of one body per shape.
func BuiltinScenarios() []Scenario {
	return []Scenario{
		{
			Name: "pile",
			Bodies: []BodySpec{
				rect(0.1, 0.3), circle(0.05),
				rect(0.05, 0.2), triangle(0.05, 0.15),
				rect(0.05, 0.2), triangle(0.05, 0.15),
				rect(0.05, 0.2), triangle(0.05, 0.15),
				rect(0.05, 0.2), triangle(0.05, 0.15),
			},
		},
		{
			Name:   "trio",
			Bodies: []BodySpec{rect(0.1, 0.3), circle(0.1), triangle(0.1, 0.2)},
		},
	}
}

// Validate checks every body description.
func (s Scenario) Validate() error {
	if len(s.Bodies) == 0 {
		return fmt.Errorf("%w: scenario %q has no bodies", physics.ErrConfiguration, s.Name)
	}
	for i, spec := range s.Bodies {
		if _, err := physics.NewRigidBody(spec.Shape, spec.Density); err != nil {
			return fmt.Errorf("scenario %q body %d: %w", s.Name, i, err)
		}
	}
	return nil
}

// Build creates the bodies at random positions in [-0.4,0.4]² with random orientation in [0,π).
func (s Scenario) Build(rng *rand.Rand) ([]*physics.RigidBody, error) {
	bodies := make([]*physics.RigidBody, 0, len(s.Bodies))
	for i, spec := range s.Bodies {
		b, err := physics.NewRigidBody(spec.Shape, spec.Density)
		if err != nil {
			return nil, fmt.Errorf("scenario %q body %d: %w", s.Name, i, err)
		}
		b.Position = physics.Vec2{
			X: 0.8 * (rng.Float64() - 0.5),
			Y: 0.8 * (rng.Float64() - 0.5),
		}
		b.Orientation = math.Pi * rng.Float64()
		bodies = append(bodies, b)
	}
	return bodies, nil
}
