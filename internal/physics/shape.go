package physics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jakecoffman/cp/v2"
)

// Vec2 is the world-space vector type used throughout the simulator.
type Vec2 = cp.Vector

var (
	// ErrConfiguration wraps every error caused by an invalid body or world description.
	ErrConfiguration    = errors.New("configuration error")
	ErrUnknownShape     = errors.New("unknown shape kind")
	ErrInvalidDimension = errors.New("shape dimension must be positive")
	ErrInvalidDensity   = errors.New("density must be positive")
)

// ShapeKind is the closed set of body shapes.
type ShapeKind int

const (
	Rectangle ShapeKind = iota
	Circle
	Triangle
)

var shapeKindNames = map[ShapeKind]string{
	Rectangle: "rectangle",
	Circle:    "circle",
	Triangle:  "triangle",
}

func (k ShapeKind) String() string {
	if name, ok := shapeKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ShapeKind(%d)", int(k))
}

// ParseShapeKind maps a config name ("rect", "rectangle", "circle", "triangle") to a kind.
func ParseShapeKind(name string) (ShapeKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rect", "rectangle", "box":
		return Rectangle, nil
	case "circle", "ball":
		return Circle, nil
	case "tri", "triangle":
		return Triangle, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// Shape describes a body's geometry. It is set once at creation.
//
//	Rectangle: Dims = {width, height}
//	Circle:    Dims = {radius, 0}
//	Triangle:  Dims = {base, height}, isosceles, apex along local +Y, centroid at the origin
type Shape struct {
	Kind ShapeKind
	Dims [2]float64
}

func NewRectangle(width, height float64) Shape {
	return Shape{Kind: Rectangle, Dims: [2]float64{width, height}}
}

func NewCircle(radius float64) Shape {
	return Shape{Kind: Circle, Dims: [2]float64{radius, 0}}
}

func NewTriangle(base, height float64) Shape {
	return Shape{Kind: Triangle, Dims: [2]float64{base, height}}
}

// Radius returns the circle radius. Zero for polygons.
func (s Shape) Radius() float64 {
	if s.Kind != Circle {
		return 0
	}
	return s.Dims[0]
}

// Validate reports whether the shape can be simulated.
func (s Shape) Validate() error {
	switch s.Kind {
	case Rectangle, Triangle:
		if !(s.Dims[0] > 0) || !(s.Dims[1] > 0) {
			return fmt.Errorf("%w: %s %v", ErrInvalidDimension, s.Kind, s.Dims)
		}
	case Circle:
		if !(s.Dims[0] > 0) {
			return fmt.Errorf("%w: circle radius %v", ErrInvalidDimension, s.Dims[0])
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownShape, int(s.Kind))
	}
	return nil
}

// LocalVertices returns the polygon corners in body space, nil for circles.
// Rectangle corners are ordered (-,-), (+,-), (-,+), (+,+); triangles are apex, left, right.
func (s Shape) LocalVertices() []Vec2 {
	switch s.Kind {
	case Rectangle:
		hw, hh := s.Dims[0]/2, s.Dims[1]/2
		return []Vec2{
			{X: -hw, Y: -hh},
			{X: hw, Y: -hh},
			{X: -hw, Y: hh},
			{X: hw, Y: hh},
		}
	case Triangle:
		hl, h := s.Dims[0]/2, s.Dims[1]
		return []Vec2{
			{X: 0, Y: 2 * h / 3},
			{X: -hl, Y: -h / 3},
			{X: hl, Y: -h / 3},
		}
	}
	return nil
}

// MassProperties returns mass and rotational inertia about the centroid.
// The shape must already be valid; an unknown kind is a programming error and panics.
func MassProperties(s Shape, density float64) (mass, inertia float64) {
	switch s.Kind {
	case Rectangle:
		a, b := s.Dims[0], s.Dims[1]
		mass = density * a * b
		inertia = cp.MomentForBox(mass, a, b)
	case Circle:
		r := s.Dims[0]
		mass = density * cp.AreaForCircle(0, r)
		inertia = cp.MomentForCircle(mass, 0, r, cp.Vector{})
	case Triangle:
		l, h := s.Dims[0], s.Dims[1]
		mass = density * l * h / 2
		inertia = mass*l*l/24 + mass*h*h/18
	default:
		panic(fmt.Sprintf("physics: mass properties for %s", s.Kind))
	}
	return mass, inertia
}
