package physics

import (
	"fmt"

	"github.com/jakecoffman/cp/v2"
)

// Half-plane flags for a contact point.
const (
	AxisMinX = 1 << iota
	AxisMaxX
	AxisMinY
	AxisMaxY

	AllAxes = AxisMinX | AxisMaxX | AxisMinY | AxisMaxY
)

// Contact is a point on a body tested against the boundary.
type Contact struct {
	Point    Vec2
	Velocity Vec2
	Axes     int // half-planes this point is allowed to collide with
}

// RigidBody is the mutable state of one simulated body.
// Position, orientation and velocities are only written by the Integrator;
// Force and Torque are only written through ApplyForceAtPoint during a tick.
type RigidBody struct {
	Shape   Shape
	Density float64
	Mass    float64
	Inertia float64

	Position        Vec2
	Orientation     float64 // radians, unbounded
	Velocity        Vec2
	AngularVelocity float64

	Force  Vec2
	Torque float64
}

// NewRigidBody validates the description and derives mass and inertia.
func NewRigidBody(shape Shape, density float64) (*RigidBody, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if !(density > 0) {
		return nil, fmt.Errorf("%w: %w: %v", ErrConfiguration, ErrInvalidDensity, density)
	}
	mass, inertia := MassProperties(shape, density)
	return &RigidBody{
		Shape:   shape,
		Density: density,
		Mass:    mass,
		Inertia: inertia,
	}, nil
}

// ApplyForceAtPoint accumulates a force acting at a world-space point.
func (b *RigidBody) ApplyForceAtPoint(force, point Vec2) {
	b.Force = b.Force.Add(force)
	b.Torque += point.Sub(b.Position).Cross(force)
}

// ClearForces zeroes the accumulators.
func (b *RigidBody) ClearForces() {
	b.Force = Vec2{}
	b.Torque = 0
}

// Transform returns the body-to-world rigid transform.
func (b *RigidBody) Transform() cp.Transform {
	return cp.NewTransformRigid(b.Position, b.Orientation)
}

// worldOffsets returns the polygon vertices rotated into the world frame, relative to Position.
func (b *RigidBody) worldOffsets() []Vec2 {
	local := b.Shape.LocalVertices()
	if local == nil {
		return nil
	}
	rot := cp.ForAngle(b.Orientation)
	for i, v := range local {
		local[i] = v.Rotate(rot)
	}
	return local
}

// CornerWorldPositions returns the polygon corners in world space. Circles have none.
func (b *RigidBody) CornerWorldPositions() []Vec2 {
	corners := b.Shape.LocalVertices()
	t := b.Transform()
	for i, v := range corners {
		corners[i] = t.Point(v)
	}
	return corners
}

// CornerVelocities returns the world velocity of each polygon corner.
func (b *RigidBody) CornerVelocities() []Vec2 {
	offsets := b.worldOffsets()
	for i, dr := range offsets {
		offsets[i] = b.pointVelocity(dr)
	}
	return offsets
}

func (b *RigidBody) pointVelocity(dr Vec2) Vec2 {
	return b.Velocity.Add(dr.Perp().Mult(b.AngularVelocity))
}

// ContactPoints lists the points checked against the boundary box.
// Polygon corners may hit any wall; each circle extreme point only faces its own wall.
func (b *RigidBody) ContactPoints() []Contact {
	if b.Shape.Kind == Circle {
		r := b.Shape.Radius()
		sides := [4]struct {
			dr   Vec2
			axis int
		}{
			{Vec2{X: -r}, AxisMinX},
			{Vec2{X: r}, AxisMaxX},
			{Vec2{Y: -r}, AxisMinY},
			{Vec2{Y: r}, AxisMaxY},
		}
		contacts := make([]Contact, 0, len(sides))
		for _, s := range sides {
			contacts = append(contacts, Contact{
				Point:    b.Position.Add(s.dr),
				Velocity: b.pointVelocity(s.dr),
				Axes:     s.axis,
			})
		}
		return contacts
	}

	offsets := b.worldOffsets()
	contacts := make([]Contact, 0, len(offsets))
	for _, dr := range offsets {
		contacts = append(contacts, Contact{
			Point:    b.Position.Add(dr),
			Velocity: b.pointVelocity(dr),
			Axes:     AllAxes,
		})
	}
	return contacts
}

// KineticEnergy returns the translational plus rotational kinetic energy.
func (b *RigidBody) KineticEnergy() float64 {
	return 0.5*b.Mass*b.Velocity.LengthSq() + 0.5*b.Inertia*b.AngularVelocity*b.AngularVelocity
}
