package sim

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"rigids/internal/engine"
	"rigids/internal/physics"
)

// State of the simulation loop.
type State int

const (
	Idle State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// DefaultTicksPerFrame is how many physics ticks run between two renders.
const DefaultTicksPerFrame = 30

// Config configures a Loop.
type Config struct {
	Physics       physics.Config
	TicksPerFrame int
	Scenarios     []Scenario
	Scenario      int   // scenario used by the first Reset
	Seed          int64 // placement randomness
}

func DefaultConfig() Config {
	return Config{
		Physics:       physics.DefaultConfig(),
		TicksPerFrame: DefaultTicksPerFrame,
		Scenarios:     BuiltinScenarios(),
		Scenario:      1,
		Seed:          1,
	}
}

// Loop drives the world through fixed ticks and reacts to control events.
// It is single-threaded: every mutation happens on the goroutine calling its methods.
type Loop struct {
	cfg      Config
	world    *physics.World
	rng      *rand.Rand
	state    State
	scenario int
	ticks    uint64

	// OnReset fires after the bodies were rebuilt, with the scenario index.
	OnReset engine.EventWithArg[int]
	// OnStateChanged fires whenever the loop moves between Idle, Running and Paused.
	OnStateChanged engine.EventWithArg[State]
	// OnQuit fires once when a Quit event is handled.
	OnQuit engine.Event
}

// New validates the config and returns an Idle loop with an empty world.
func New(cfg Config) (*Loop, error) {
	if cfg.TicksPerFrame <= 0 {
		return nil, fmt.Errorf("%w: ticks per frame %d", physics.ErrInvalidConfig, cfg.TicksPerFrame)
	}
	if len(cfg.Scenarios) == 0 {
		return nil, fmt.Errorf("%w: no scenarios", physics.ErrInvalidConfig)
	}
	for _, s := range cfg.Scenarios {
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}
	if cfg.Scenario < 0 || cfg.Scenario >= len(cfg.Scenarios) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownScenario, cfg.Scenario)
	}
	world, err := physics.NewWorld(cfg.Physics)
	if err != nil {
		return nil, err
	}
	return &Loop{
		cfg:      cfg,
		world:    world,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		state:    Idle,
		scenario: cfg.Scenario,
	}, nil
}

func (l *Loop) State() State {
	return l.state
}

func (l *Loop) Ticks() uint64 {
	return l.ticks
}

func (l *Loop) Scenario() int {
	return l.scenario
}

func (l *Loop) Scenarios() []Scenario {
	return l.cfg.Scenarios
}

func (l *Loop) TicksPerFrame() int {
	return l.cfg.TicksPerFrame
}

// World exposes the live world. Callers must not mutate it while a batch runs.
func (l *Loop) World() *physics.World {
	return l.world
}

func (l *Loop) setState(s State) {
	if l.state == s {
		return
	}
	l.state = s
	l.OnStateChanged.Invoke(s)
}

// Reset rebuilds every body of the current scenario and enters Running.
func (l *Loop) Reset() error {
	return l.ResetScenario(l.scenario)
}

// ResetScenario switches to scenario id, rebuilds its bodies and enters Running.
func (l *Loop) ResetScenario(id int) error {
	if id < 0 || id >= len(l.cfg.Scenarios) {
		return fmt.Errorf("%w: %d", ErrUnknownScenario, id)
	}
	sc := l.cfg.Scenarios[id]
	bodies, err := sc.Build(l.rng)
	if err != nil {
		return err
	}
	l.world.SetBodies(bodies)
	l.scenario = id
	l.ticks = 0
	log.Printf("Sim: reset scenario %d %q (%d bodies)", id, sc.Name, len(bodies))
	l.OnReset.Invoke(id)
	l.setState(Running)
	return nil
}

// TogglePause flips between Running and Paused. It does nothing while Idle.
func (l *Loop) TogglePause() {
	switch l.state {
	case Running:
		l.setState(Paused)
	case Paused:
		l.setState(Running)
	}
}

// SetAttractionTarget moves the point bodies are pulled toward.
func (l *Loop) SetAttractionTarget(p physics.Vec2) {
	l.world.Attraction.Target = p
}

// SetAttraction enables or disables the pull toward the target.
func (l *Loop) SetAttraction(enabled bool) {
	l.world.Attraction.Enabled = enabled
}

// HandleEvents applies the events sampled for the next batch.
// It returns false once a Quit event was seen; remaining events are ignored.
func (l *Loop) HandleEvents(events []ControlEvent) bool {
	for _, ev := range events {
		switch ev.Kind {
		case Quit:
			l.OnQuit.Invoke()
			return false
		case TogglePause:
			l.TogglePause()
		case Reset:
			if err := l.Reset(); err != nil {
				log.Printf("Sim: reset failed: %v", err)
			}
		case SelectScenario:
			if err := l.ResetScenario(ev.Scenario); err != nil {
				log.Printf("Sim: ignoring scenario %d: %v", ev.Scenario, err)
			}
		case PointerMoved:
			l.SetAttractionTarget(ev.Pointer)
		case ToggleAttraction:
			l.SetAttraction(!l.world.Attraction.Enabled)
		}
	}
	return true
}

// Tick advances the world by one timestep. It only fires while Running.
func (l *Loop) Tick() bool {
	if l.state != Running {
		return false
	}
	l.world.Step()
	l.ticks++
	return true
}

// RunBatch runs up to TicksPerFrame ticks and returns how many ran.
func (l *Loop) RunBatch() int {
	n := 0
	for n < l.cfg.TicksPerFrame && l.Tick() {
		n++
	}
	return n
}

// Run alternates input, a tick batch and rendering until Quit or ctx is done.
// An Idle loop is reset first.
func (l *Loop) Run(ctx context.Context, input InputSource, renderer Renderer) error {
	if l.state == Idle {
		if err := l.Reset(); err != nil {
			return err
		}
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !l.HandleEvents(input.PollEvents()) {
			log.Printf("Sim: quit after %d ticks", l.ticks)
			return nil
		}
		l.RunBatch()
		renderer.Render(l.Snapshot())
	}
}
