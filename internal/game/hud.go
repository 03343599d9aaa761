package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"rigids/internal/render"
	"rigids/internal/sim"
)

const (
	hudX      = 10
	hudY      = 10
	hudWidth  = 200
	hudRow    = 28
	hudHeight = hudRow*6 + 10
)

// HUD is the control panel in the top-left corner.
type HUD struct {
	Visible bool
	bounds  rl.Rectangle
}

func NewHUD() *HUD {
	return &HUD{
		Visible: true,
		bounds:  rl.Rectangle{X: hudX, Y: hudY, Width: hudWidth, Height: hudHeight},
	}
}

// Contains reports whether a screen point is over the panel.
func (h *HUD) Contains(p rl.Vector2) bool {
	return h.Visible && rl.CheckCollisionPointRec(p, h.bounds)
}

func initRayguiStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(toRL(render.ColorBackground)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(toRL(render.ColorBoundary)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(toRL(render.ColorRectangle)))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(toRL(render.ColorCircle)))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 14)
}

// Draw lays out the panel and returns the control events its widgets produced.
// Stiffness and damping sliders edit the live resolver directly.
func (h *HUD) Draw(l *sim.Loop, s sim.Snapshot) []sim.ControlEvent {
	if rl.IsKeyPressed(rl.KeyH) {
		h.Visible = !h.Visible
	}
	if !h.Visible {
		return nil
	}

	var events []sim.ControlEvent
	rl.DrawRectangleRec(h.bounds, rl.Fade(toRL(render.ColorBackground), 0.85))

	row := func(i int) rl.Rectangle {
		return rl.Rectangle{X: hudX + 5, Y: float32(hudY + 5 + i*hudRow), Width: hudWidth - 10, Height: hudRow - 6}
	}
	half := func(r rl.Rectangle, right bool) rl.Rectangle {
		r.Width = r.Width/2 - 3
		if right {
			r.X += r.Width + 6
		}
		return r
	}

	pauseLabel := "Pause"
	if s.State == sim.Paused {
		pauseLabel = "Resume"
	}
	if gui.Button(half(row(0), false), pauseLabel) {
		events = append(events, sim.ControlEvent{Kind: sim.TogglePause})
	}
	if gui.Button(half(row(0), true), "Reset") {
		events = append(events, sim.ControlEvent{Kind: sim.Reset})
	}

	checkBox := row(1)
	checkBox.Width = checkBox.Height
	if attract := gui.CheckBox(checkBox, "Attract", s.Attraction.Enabled); attract != s.Attraction.Enabled {
		events = append(events, sim.ControlEvent{Kind: sim.ToggleAttraction})
	}

	res := l.World().Resolver
	label := row(2)
	rl.DrawText(fmt.Sprintf("stiffness %.0f", res.Stiffness), int32(label.X), int32(label.Y)+4, 14, toRL(render.ColorCircle))
	res.Stiffness = float64(gui.Slider(row(3), "", "", float32(res.Stiffness), 1e3, 3e4))
	label = row(4)
	rl.DrawText(fmt.Sprintf("damping %.1f", res.Damping), int32(label.X), int32(label.Y)+4, 14, toRL(render.ColorCircle))
	res.Damping = float64(gui.Slider(row(5), "", "", float32(res.Damping), 0, 50))

	scenarios := l.Scenarios()
	name := ""
	if s.Scenario < len(scenarios) {
		name = scenarios[s.Scenario].Name
	}
	rl.DrawText(fmt.Sprintf("scenario %d %s", s.Scenario, name), hudX, hudY+hudHeight+6, 16, toRL(render.ColorTarget))
	return events
}
