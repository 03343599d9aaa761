package sim

import (
	"fmt"

	"rigids/internal/physics"
)

// EventKind enumerates the control inputs the loop understands.
type EventKind int

const (
	Quit EventKind = iota
	TogglePause
	Reset
	PointerMoved
	ToggleAttraction
	SelectScenario
)

func (k EventKind) String() string {
	switch k {
	case Quit:
		return "quit"
	case TogglePause:
		return "toggle-pause"
	case Reset:
		return "reset"
	case PointerMoved:
		return "pointer-moved"
	case ToggleAttraction:
		return "toggle-attraction"
	case SelectScenario:
		return "select-scenario"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// ControlEvent is one input sampled between tick batches.
// Pointer is in world coordinates and only meaningful for PointerMoved;
// Scenario is only meaningful for SelectScenario.
type ControlEvent struct {
	Kind     EventKind
	Pointer  physics.Vec2
	Scenario int
}

// InputSource yields the control events gathered since the last poll.
type InputSource interface {
	PollEvents() []ControlEvent
}

// Renderer consumes a read-only snapshot after every tick batch.
type Renderer interface {
	Render(s Snapshot)
}
