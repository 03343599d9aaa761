package physics

// Attraction is the externally driven pull toward a target point (the pointer).
type Attraction struct {
	Enabled bool
	Target  Vec2
}

// ForceField applies uniform gravity and the optional attraction force.
type ForceField struct {
	Gravity        Vec2
	AttractionCoef float64
}

// Apply accumulates gravity and, when enabled, the attraction force at each centroid.
func (f *ForceField) Apply(bodies []*RigidBody, attraction Attraction) {
	for _, b := range bodies {
		b.ApplyForceAtPoint(f.Gravity.Mult(b.Mass), b.Position)
		if attraction.Enabled {
			pull := attraction.Target.Sub(b.Position).Mult(f.AttractionCoef)
			b.ApplyForceAtPoint(pull, b.Position)
		}
	}
}
