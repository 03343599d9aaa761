package game

import (
	"context"
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"rigids/internal/render"
	"rigids/internal/sim"
	"rigids/internal/simconfig"
)

// Game is the interactive window around a simulation loop. It is both the
// loop's input source and its renderer.
type Game struct {
	Loop   *sim.Loop
	Window simconfig.WindowFile
	HUD    *HUD

	mapper  render.Mapper
	surface raySurface
	pending []sim.ControlEvent
	lastPtr rl.Vector2

	frames int

	// Debug timing (ms)
	drawMs float64
}

func New(loop *sim.Loop, window simconfig.WindowFile) *Game {
	g := &Game{
		Loop:   loop,
		Window: window,
		HUD:    NewHUD(),
		mapper: render.Mapper{Width: window.Width, Height: window.Height},
	}

	loop.OnStateChanged.AddListener(func(s sim.State) {
		log.Printf("Game: %s at tick %d", s, loop.Ticks())
	})
	// Forget the last pointer so the next poll re-sends the target to the new bodies.
	loop.OnReset.AddListener(func(int) {
		g.lastPtr = rl.Vector2{X: -1, Y: -1}
	})
	loop.OnQuit.AddListener(func() {
		log.Printf("Game: closing after %d frames", g.frames)
	})
	return g
}

// Run opens the window and drives the loop until it is closed or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(g.Window.Width, g.Window.Height, g.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(g.Window.FPS)
	initRayguiStyle()

	log.Printf("Game: window %dx%d, %d ticks per frame", g.Window.Width, g.Window.Height, g.Loop.TicksPerFrame())
	return g.Loop.Run(ctx, g, g)
}

// PollEvents implements sim.InputSource.
func (g *Game) PollEvents() []sim.ControlEvent {
	events := g.pending
	g.pending = nil

	if rl.WindowShouldClose() {
		return append(events, sim.ControlEvent{Kind: sim.Quit})
	}

	for _, b := range keyBindings {
		if rl.IsKeyPressed(b.key) {
			events = append(events, b.event)
		}
	}

	ptr := rl.GetMousePosition()
	if ptr != g.lastPtr && !g.HUD.Contains(ptr) {
		g.lastPtr = ptr
		world := g.mapper.ScreenToWorld(render.PixelCoord{X: int32(ptr.X), Y: int32(ptr.Y)})
		events = append(events, sim.ControlEvent{Kind: sim.PointerMoved, Pointer: world})
	}
	return events
}

// Render implements sim.Renderer.
func (g *Game) Render(s sim.Snapshot) {
	start := rl.GetTime()

	rl.BeginDrawing()
	rl.ClearBackground(toRL(render.ColorBackground))

	render.Draw(g.surface, g.mapper, s)

	g.pending = append(g.pending, g.HUD.Draw(g.Loop, s)...)

	g.drawMs = (rl.GetTime() - start) * 1000
	status := fmt.Sprintf("tick %d  %s  energy %.4f  draw %.2fms  FPS %d",
		s.Tick, s.State, s.Energy, g.drawMs, rl.GetFPS())
	rl.DrawText(status, 10, g.Window.Height-24, 16, toRL(render.ColorTarget))

	rl.EndDrawing()
	g.frames++
}

type keyBinding struct {
	key   int32
	event sim.ControlEvent
}

var keyBindings = []keyBinding{
	{rl.KeyEnter, sim.ControlEvent{Kind: sim.ToggleAttraction}},
	{rl.KeySpace, sim.ControlEvent{Kind: sim.TogglePause}},
	{rl.KeyP, sim.ControlEvent{Kind: sim.TogglePause}},
	{rl.KeyR, sim.ControlEvent{Kind: sim.Reset}},
	{rl.KeyZero, sim.ControlEvent{Kind: sim.SelectScenario, Scenario: 0}},
	{rl.KeyOne, sim.ControlEvent{Kind: sim.SelectScenario, Scenario: 1}},
	{rl.KeyTwo, sim.ControlEvent{Kind: sim.SelectScenario, Scenario: 2}},
	{rl.KeyThree, sim.ControlEvent{Kind: sim.SelectScenario, Scenario: 3}},
}
