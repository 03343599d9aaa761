package sim

import (
	"log"

	"github.com/golang/geo/r2"
	"github.com/jinzhu/copier"

	"rigids/internal/physics"
)

// BodyView is the read-only state of one body handed to renderers.
type BodyView struct {
	ID              int
	Shape           physics.Shape
	Position        physics.Vec2
	Orientation     float64
	Velocity        physics.Vec2
	AngularVelocity float64
	Corners         []physics.Vec2 // world space, nil for circles
}

// Snapshot is a copy of the world after a tick batch. It shares nothing with the live bodies.
type Snapshot struct {
	Tick       uint64
	State      State
	Scenario   int
	Bounds     r2.Rect
	Attraction physics.Attraction
	Energy     float64
	Bodies     []BodyView
}

// Snapshot copies the current world state, in body ID order.
func (l *Loop) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       l.ticks,
		State:      l.state,
		Scenario:   l.scenario,
		Bounds:     l.world.Bounds(),
		Attraction: l.world.Attraction,
		Energy:     l.world.TotalKineticEnergy(),
		Bodies:     make([]BodyView, len(l.world.Bodies)),
	}
	for id, b := range l.world.Bodies {
		view := &s.Bodies[id]
		if err := copier.Copy(view, b); err != nil {
			log.Printf("Sim: snapshot of body %d failed: %v", id, err)
		}
		view.ID = id
		view.Corners = b.CornerWorldPositions()
	}
	return s
}
