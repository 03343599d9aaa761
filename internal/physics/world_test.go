package physics

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func newTestWorld(t *testing.T, cfg Config) *World {
	t.Helper()
	w, err := NewWorld(cfg)
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}
	return w
}

func TestProjectileMotion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CollideBoundary = false
	w := newTestWorld(t, cfg)

	b := mustBody(t, NewRectangle(0.1, 0.3))
	b.Velocity = Vec2{X: 0.5, Y: 3}
	b.AngularVelocity = 1.5
	w.AddBody(b)

	const n = 5000
	for i := 0; i < n; i++ {
		w.Step()
	}

	wantVY := 3 + cfg.Gravity.Y*n*cfg.Dt
	if math.Abs(b.Velocity.Y-wantVY) > 1e-9 {
		t.Errorf("Expected vy %v, got %v", wantVY, b.Velocity.Y)
	}
	if b.Velocity.X != 0.5 {
		t.Errorf("Expected vx unchanged at 0.5, got %v", b.Velocity.X)
	}
	if b.AngularVelocity != 1.5 {
		t.Errorf("Expected angular velocity unchanged, got %v", b.AngularVelocity)
	}
	// Semi-implicit Euler: y = v0*t + g*dt^2*n(n+1)/2.
	wantY := 3*n*cfg.Dt + cfg.Gravity.Y*cfg.Dt*cfg.Dt*n*(n+1)/2
	if math.Abs(b.Position.Y-wantY) > 1e-9 {
		t.Errorf("Expected y %v, got %v", wantY, b.Position.Y)
	}
}

func TestGravityAddsNoTorque(t *testing.T) {
	w := newTestWorld(t, DefaultConfig())
	b := mustBody(t, NewTriangle(0.1, 0.2))
	b.Orientation = 0.9
	w.AddBody(b)

	w.ClearForces()
	w.ResolveBoundary()
	w.ApplyExternalForces()

	if b.Torque != 0 {
		t.Errorf("Expected zero torque from gravity, got %v", b.Torque)
	}
	if want := b.Mass * -20; !near(b.Force.Y, want, 1e-12) {
		t.Errorf("Expected weight %v, got %v", want, b.Force.Y)
	}
}

func TestAttractionForce(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gravity = Vec2{}
	cfg.AttractionCoef = 4
	w := newTestWorld(t, cfg)
	b := mustBody(t, NewCircle(0.05))
	b.Position = Vec2{X: 0.1, Y: 0.1}
	w.AddBody(b)

	w.Attraction = Attraction{Enabled: true, Target: Vec2{X: 0.3, Y: -0.1}}
	w.ClearForces()
	w.ApplyExternalForces()
	want := Vec2{X: 0.8, Y: -0.8}
	if !b.Force.Near(want, 1e-12) {
		t.Errorf("Expected attraction force %v, got %v", want, b.Force)
	}

	w.Attraction.Enabled = false
	w.ClearForces()
	w.ApplyExternalForces()
	if b.Force != (Vec2{}) {
		t.Errorf("Expected no force with attraction disabled, got %v", b.Force)
	}
}

func TestDefaultAttractionLiftsTrioRectangle(t *testing.T) {
	w := newTestWorld(t, DefaultConfig())
	b := mustBody(t, NewRectangle(0.1, 0.3))
	w.AddBody(b)

	// Pointer 0.3 above: 0.9 N up against a 0.6 N weight.
	w.Attraction = Attraction{Enabled: true, Target: Vec2{Y: 0.3}}
	w.ClearForces()
	w.ApplyExternalForces()
	if want := DefaultAttraction*0.3 - b.Mass*20; !near(b.Force.Y, want, 1e-12) || b.Force.Y <= 0 {
		t.Errorf("Expected net upward force %v, got %v", want, b.Force.Y)
	}
}

func TestAccumulatorsClearedEachTick(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gravity = Vec2{}
	w := newTestWorld(t, cfg)
	b := mustBody(t, NewRectangle(0.1, 0.1))
	w.AddBody(b)

	b.Force = Vec2{X: 100, Y: 100}
	b.Torque = 50
	w.Step()

	if b.Velocity != (Vec2{}) || b.AngularVelocity != 0 {
		t.Errorf("Expected stale accumulators to be discarded, got v=%v w=%v", b.Velocity, b.AngularVelocity)
	}
}

func TestVelocityUpdatedBeforePosition(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CollideBoundary = false
	cfg.Gravity = Vec2{Y: -10}
	cfg.Dt = 0.1
	w := newTestWorld(t, cfg)
	b := mustBody(t, NewCircle(0.1))
	w.AddBody(b)

	w.Step()
	// Explicit Euler would leave the position at 0 after the first step.
	if !near(b.Position.Y, -0.1, 1e-12) {
		t.Errorf("Expected y -0.1 from the updated velocity, got %v", b.Position.Y)
	}
}

func TestBodiesStayBounded(t *testing.T) {
	w := newTestWorld(t, DefaultConfig())
	rng := rand.New(rand.NewSource(7))
	shapes := []Shape{
		NewRectangle(0.1, 0.3), NewCircle(0.05),
		NewRectangle(0.05, 0.2), NewTriangle(0.05, 0.15),
		NewRectangle(0.05, 0.2), NewTriangle(0.05, 0.15),
		NewRectangle(0.05, 0.2), NewTriangle(0.05, 0.15),
		NewRectangle(0.05, 0.2), NewTriangle(0.05, 0.15),
	}
	for _, s := range shapes {
		b := mustBody(t, s)
		b.Position = Vec2{X: 0.8 * (rng.Float64() - 0.5), Y: 0.8 * (rng.Float64() - 0.5)}
		b.Orientation = math.Pi * rng.Float64()
		b.Velocity = Vec2{X: rng.Float64() - 0.5, Y: rng.Float64() - 0.5}
		w.AddBody(b)
	}

	for i := 0; i < 100000; i++ {
		w.Step()
	}

	for id, b := range w.Bodies {
		p := b.Position
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || p.X < -1 || p.X > 1 || p.Y < -1 || p.Y > 1 {
			t.Errorf("Body %d (%s) escaped to %v", id, b.Shape.Kind, p)
		}
	}
	if e := w.TotalKineticEnergy(); math.IsNaN(e) || math.IsInf(e, 0) {
		t.Errorf("Expected finite kinetic energy, got %v", e)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero dt", func(c *Config) { c.Dt = 0 }},
		{"negative stiffness", func(c *Config) { c.Stiffness = -1 }},
		{"negative damping", func(c *Config) { c.Damping = -1 }},
		{"empty bounds", func(c *Config) { c.Bounds.X.Lo, c.Bounds.X.Hi = 0.5, -0.5 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if _, err := NewWorld(cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Expected default config to be valid, got %v", err)
	}
}

func TestExtent(t *testing.T) {
	w := newTestWorld(t, DefaultConfig())
	for _, p := range []Vec2{{X: -0.2, Y: 0.1}, {X: 0.3, Y: -0.4}} {
		b := mustBody(t, NewCircle(0.01))
		b.Position = p
		w.AddBody(b)
	}
	ext := w.Extent()
	if ext.X.Lo != -0.2 || ext.X.Hi != 0.3 || ext.Y.Lo != -0.4 || ext.Y.Hi != 0.1 {
		t.Errorf("Unexpected extent %v", ext)
	}
}
