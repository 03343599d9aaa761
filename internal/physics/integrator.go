package physics

// Integrator advances bodies with semi-implicit Euler at a fixed timestep.
type Integrator struct {
	Dt float64
}

// Integrate updates velocities from the accumulators first, then positions from the new velocities.
func (in *Integrator) Integrate(bodies []*RigidBody) {
	for _, b := range bodies {
		in.IntegrateBody(b)
	}
}

func (in *Integrator) IntegrateBody(b *RigidBody) {
	dt := in.Dt
	b.Velocity = b.Velocity.Add(b.Force.Mult(dt / b.Mass))
	b.AngularVelocity += b.Torque / b.Inertia * dt
	b.Position = b.Position.Add(b.Velocity.Mult(dt))
	b.Orientation += b.AngularVelocity * dt
}
