package render

import "rigids/internal/physics"

// PixelCoord is a screen position, origin top-left, +Y down.
type PixelCoord struct {
	X, Y int32
}

// Mapper converts between world units and pixels. One world unit spans the
// shorter screen side; the world origin sits at the screen centre with +Y up.
type Mapper struct {
	Width, Height int32
}

func (m Mapper) ratio() float64 {
	return float64(min(m.Width, m.Height))
}

// WorldToScreen maps a world point to a pixel, truncating toward zero.
func (m Mapper) WorldToScreen(p physics.Vec2) PixelCoord {
	r := m.ratio()
	return PixelCoord{
		X: m.Width/2 + int32(p.X*r),
		Y: m.Height/2 - int32(p.Y*r),
	}
}

// ScreenToWorld is the inverse of WorldToScreen, up to pixel truncation.
func (m Mapper) ScreenToWorld(p PixelCoord) physics.Vec2 {
	r := m.ratio()
	return physics.Vec2{
		X: float64(p.X-m.Width/2) / r,
		Y: float64(m.Height/2-p.Y) / r,
	}
}

// ToPixels scales a world length.
func (m Mapper) ToPixels(length float64) float32 {
	return float32(length * m.ratio())
}
