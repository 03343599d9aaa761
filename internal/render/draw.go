package render

import (
	"slices"

	"rigids/internal/physics"
	"rigids/internal/sim"
)

// Color is a packed 0xRRGGBB value.
type Color uint32

func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

const (
	ColorBackground Color = 0x063647
	ColorBoundary   Color = 0x458985
	ColorRectangle  Color = 0xDBA67B
	ColorCircle     Color = 0xDFDFC9
	ColorTriangle   Color = 0xA55C55
	ColorTarget     Color = 0xF2E394
)

// Surface is a pixel-space drawing target.
type Surface interface {
	DrawPolygon(points []PixelCoord, c Color)
	DrawCircle(center PixelCoord, radius float32, c Color)
	DrawRect(topLeft PixelCoord, width, height float32, c Color)
}

// Draw paints the boundary frame and every body of the snapshot.
func Draw(s Surface, m Mapper, snap sim.Snapshot) {
	b := snap.Bounds
	topLeft := m.WorldToScreen(physics.Vec2{X: b.X.Lo, Y: b.Y.Hi})
	s.DrawRect(topLeft, m.ToPixels(b.X.Length()), m.ToPixels(b.Y.Length()), ColorBoundary)

	for _, body := range snap.Bodies {
		switch body.Shape.Kind {
		case physics.Rectangle:
			s.DrawPolygon(outline(m, body.Corners, rectangleOutline), ColorRectangle)
		case physics.Triangle:
			s.DrawPolygon(outline(m, body.Corners, nil), ColorTriangle)
		case physics.Circle:
			s.DrawCircle(m.WorldToScreen(body.Position), m.ToPixels(body.Shape.Radius()), ColorCircle)
		}
	}

	if snap.Attraction.Enabled {
		s.DrawCircle(m.WorldToScreen(snap.Attraction.Target), 4, ColorTarget)
	}
}

// Rectangle corners come as (-,-), (+,-), (-,+), (+,+); walk them around the perimeter.
var rectangleOutline = []int{0, 1, 3, 2}

func outline(m Mapper, corners []physics.Vec2, order []int) []PixelCoord {
	pts := make([]PixelCoord, 0, len(corners))
	if order == nil {
		for _, c := range corners {
			pts = append(pts, m.WorldToScreen(c))
		}
		return pts
	}
	for _, i := range order {
		pts = append(pts, m.WorldToScreen(corners[i]))
	}
	return pts
}

// FillOrder returns points wound counter-clockwise as seen on screen, the
// order triangle fans need to be visible. The input is not modified.
func FillOrder(points []PixelCoord) []PixelCoord {
	out := make([]PixelCoord, len(points))
	copy(out, points)
	var area int64
	for i := range out {
		a, b := out[i], out[(i+1)%len(out)]
		area += int64(a.X)*int64(b.Y) - int64(b.X)*int64(a.Y)
	}
	if area > 0 {
		slices.Reverse(out)
	}
	return out
}
