package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

var ErrInvalidConfig = errors.New("invalid physics config")

// Config holds the simulation constants. The stiffness/timestep pair must stay
// stable together: the defaults (1e4, 1e-4) are tuned for each other.
type Config struct {
	Gravity         Vec2
	Dt              float64
	Stiffness       float64
	Damping         float64
	AttractionCoef  float64 // newtons per metre of pointer distance, same for every body
	Bounds          r2.Rect
	CollideBoundary bool
}

// DefaultAttraction pulls a 0.03 kg body (the trio's rectangle or circle) at
// about 100 m/s² per metre of distance.
const DefaultAttraction = 3

// DefaultConfig returns the stock constants: dt 1e-4, gravity (0,-20), unit box.
func DefaultConfig() Config {
	return Config{
		Gravity:         Vec2{X: 0, Y: -20},
		Dt:              1e-4,
		Stiffness:       DefaultStiffness,
		Damping:         DefaultDamping,
		AttractionCoef:  DefaultAttraction,
		Bounds:          DefaultBounds(),
		CollideBoundary: true,
	}
}

// Validate checks the constants that would make a tick meaningless.
func (c Config) Validate() error {
	switch {
	case !(c.Dt > 0) || math.IsInf(c.Dt, 0):
		return fmt.Errorf("%w: dt %v", ErrInvalidConfig, c.Dt)
	case c.Stiffness < 0:
		return fmt.Errorf("%w: stiffness %v", ErrInvalidConfig, c.Stiffness)
	case c.Damping < 0:
		return fmt.Errorf("%w: damping %v", ErrInvalidConfig, c.Damping)
	case c.CollideBoundary && (c.Bounds.IsEmpty() || c.Bounds.X.Length() == 0 || c.Bounds.Y.Length() == 0):
		return fmt.Errorf("%w: empty bounds %v", ErrInvalidConfig, c.Bounds)
	}
	return nil
}

// World owns the bodies and the per-tick phases. A body's ID is its index in Bodies.
type World struct {
	Bodies          []*RigidBody
	Resolver        *BoundaryResolver
	Field           *ForceField
	Integrator      *Integrator
	Attraction      Attraction
	CollideBoundary bool
}

func NewWorld(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &World{
		Bodies:          make([]*RigidBody, 0),
		Resolver:        NewBoundaryResolver(cfg.Bounds, cfg.Stiffness, cfg.Damping),
		Field:           &ForceField{Gravity: cfg.Gravity, AttractionCoef: cfg.AttractionCoef},
		Integrator:      &Integrator{Dt: cfg.Dt},
		CollideBoundary: cfg.CollideBoundary,
	}, nil
}

// AddBody appends a body and returns its ID.
func (w *World) AddBody(b *RigidBody) int {
	w.Bodies = append(w.Bodies, b)
	return len(w.Bodies) - 1
}

// SetBodies replaces the whole body set.
func (w *World) SetBodies(bodies []*RigidBody) {
	w.Bodies = bodies
}

func (w *World) Bounds() r2.Rect {
	return w.Resolver.Bounds
}

func (w *World) Dt() float64 {
	return w.Integrator.Dt
}

// Step runs one tick: clear, collide, apply forces, integrate.
func (w *World) Step() {
	w.ClearForces()
	if w.CollideBoundary {
		w.ResolveBoundary()
	}
	w.ApplyExternalForces()
	w.Integrate()
}

func (w *World) ClearForces() {
	for _, b := range w.Bodies {
		b.ClearForces()
	}
}

func (w *World) ResolveBoundary() {
	w.Resolver.Resolve(w.Bodies)
}

func (w *World) ApplyExternalForces() {
	w.Field.Apply(w.Bodies, w.Attraction)
}

func (w *World) Integrate() {
	w.Integrator.Integrate(w.Bodies)
}

// TotalKineticEnergy sums the kinetic energy of all bodies.
func (w *World) TotalKineticEnergy() float64 {
	var e float64
	for _, b := range w.Bodies {
		e += b.KineticEnergy()
	}
	return e
}

// Extent returns the smallest rectangle containing every body centroid.
func (w *World) Extent() r2.Rect {
	rect := r2.EmptyRect()
	for _, b := range w.Bodies {
		rect = rect.AddPoint(r2.Point{X: b.Position.X, Y: b.Position.Y})
	}
	return rect
}
