package physics

import (
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

const (
	DefaultStiffness = 1e4
	DefaultDamping   = 1e1
)

// DefaultBounds is the unit box centred on the origin.
func DefaultBounds() r2.Rect {
	return r2.Rect{X: r1.Interval{Lo: -0.5, Hi: 0.5}, Y: r1.Interval{Lo: -0.5, Hi: 0.5}}
}

// BoundaryResolver pushes bodies back into an axis-aligned box with penalty springs.
//
// Every penetrating (point, wall) pair contributes its own force, so a corner
// outside two walls at once is pushed by both.
type BoundaryResolver struct {
	Bounds    r2.Rect
	Stiffness float64
	Damping   float64
}

func NewBoundaryResolver(bounds r2.Rect, stiffness, damping float64) *BoundaryResolver {
	return &BoundaryResolver{Bounds: bounds, Stiffness: stiffness, Damping: damping}
}

// Resolve accumulates boundary forces on every body.
func (r *BoundaryResolver) Resolve(bodies []*RigidBody) {
	for _, b := range bodies {
		r.ResolveBody(b)
	}
}

// ResolveBody accumulates boundary forces on a single body.
func (r *BoundaryResolver) ResolveBody(b *RigidBody) {
	for _, c := range b.ContactPoints() {
		r.resolveContact(b, c)
	}
}

func (r *BoundaryResolver) resolveContact(b *RigidBody, c Contact) {
	p, v := c.Point, c.Velocity
	if c.Axes&AxisMinX != 0 && p.X < r.Bounds.X.Lo {
		b.ApplyForceAtPoint(Vec2{X: r.Stiffness*(r.Bounds.X.Lo-p.X) - r.Damping*v.X}, p)
	}
	if c.Axes&AxisMaxX != 0 && p.X > r.Bounds.X.Hi {
		b.ApplyForceAtPoint(Vec2{X: r.Stiffness*(r.Bounds.X.Hi-p.X) - r.Damping*v.X}, p)
	}
	if c.Axes&AxisMinY != 0 && p.Y < r.Bounds.Y.Lo {
		b.ApplyForceAtPoint(Vec2{Y: r.Stiffness*(r.Bounds.Y.Lo-p.Y) - r.Damping*v.Y}, p)
	}
	if c.Axes&AxisMaxY != 0 && p.Y > r.Bounds.Y.Hi {
		b.ApplyForceAtPoint(Vec2{Y: r.Stiffness*(r.Bounds.Y.Hi-p.Y) - r.Damping*v.Y}, p)
	}
}

// Penetrating reports whether any contact point of b lies outside the box.
func (r *BoundaryResolver) Penetrating(b *RigidBody) bool {
	for _, c := range b.ContactPoints() {
		if !r.Bounds.ContainsPoint(r2.Point{X: c.Point.X, Y: c.Point.Y}) {
			return true
		}
	}
	return false
}
