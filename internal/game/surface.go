package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"rigids/internal/render"
)

// raySurface draws render primitives with raylib. Calls must happen between
// BeginDrawing and EndDrawing.
type raySurface struct{}

func toRL(c render.Color) rl.Color {
	r, g, b := c.RGB()
	return rl.NewColor(r, g, b, 255)
}

func (raySurface) DrawPolygon(points []render.PixelCoord, c render.Color) {
	if len(points) < 3 {
		return
	}
	fan := make([]rl.Vector2, 0, len(points))
	for _, p := range render.FillOrder(points) {
		fan = append(fan, rl.Vector2{X: float32(p.X), Y: float32(p.Y)})
	}
	rl.DrawTriangleFan(fan, toRL(c))
}

func (raySurface) DrawCircle(center render.PixelCoord, radius float32, c render.Color) {
	rl.DrawCircle(center.X, center.Y, radius, toRL(c))
}

func (raySurface) DrawRect(topLeft render.PixelCoord, width, height float32, c render.Color) {
	rec := rl.Rectangle{X: float32(topLeft.X), Y: float32(topLeft.Y), Width: width, Height: height}
	rl.DrawRectangleLinesEx(rec, 2, toRL(c))
}
