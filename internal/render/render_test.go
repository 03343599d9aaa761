package render

import (
	"math"
	"testing"

	"rigids/internal/physics"
	"rigids/internal/sim"
)

func TestWorldToScreen(t *testing.T) {
	m := Mapper{Width: 1080, Height: 640}
	cases := []struct {
		world physics.Vec2
		want  PixelCoord
	}{
		{physics.Vec2{}, PixelCoord{540, 320}},
		{physics.Vec2{X: -0.5, Y: 0.5}, PixelCoord{220, 0}},
		{physics.Vec2{X: 0.5, Y: -0.5}, PixelCoord{860, 640}},
	}
	for _, tc := range cases {
		if got := m.WorldToScreen(tc.world); got != tc.want {
			t.Errorf("WorldToScreen(%v): expected %v, got %v", tc.world, tc.want, got)
		}
	}
}

func TestScreenToWorldRoundTrip(t *testing.T) {
	m := Mapper{Width: 800, Height: 600}
	for _, p := range []PixelCoord{{0, 0}, {400, 300}, {799, 599}, {123, 456}} {
		back := m.WorldToScreen(m.ScreenToWorld(p))
		if abs32(back.X-p.X) > 1 || abs32(back.Y-p.Y) > 1 {
			t.Errorf("Round trip of %v gave %v", p, back)
		}
	}
	w := m.ScreenToWorld(PixelCoord{700, 0})
	if math.Abs(w.X-0.5) > 1e-12 || math.Abs(w.Y-0.5) > 1e-12 {
		t.Errorf("Expected (0.5,0.5), got %v", w)
	}
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func TestColorRGB(t *testing.T) {
	r, g, b := ColorRectangle.RGB()
	if r != 0xDB || g != 0xA6 || b != 0x7B {
		t.Errorf("Unexpected RGB %x %x %x", r, g, b)
	}
}

type call struct {
	kind   string
	points []PixelCoord
	radius float32
	color  Color
}

type fakeSurface struct {
	calls []call
}

func (f *fakeSurface) DrawPolygon(points []PixelCoord, c Color) {
	f.calls = append(f.calls, call{kind: "polygon", points: points, color: c})
}

func (f *fakeSurface) DrawCircle(center PixelCoord, radius float32, c Color) {
	f.calls = append(f.calls, call{kind: "circle", points: []PixelCoord{center}, radius: radius, color: c})
}

func (f *fakeSurface) DrawRect(topLeft PixelCoord, width, height float32, c Color) {
	f.calls = append(f.calls, call{kind: "rect", points: []PixelCoord{topLeft}, radius: width, color: c})
}

func TestDrawSnapshot(t *testing.T) {
	l, err := sim.New(sim.DefaultConfig())
	if err != nil {
		t.Fatalf("sim.New failed: %v", err)
	}
	if err := l.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	l.SetAttraction(true)

	surf := &fakeSurface{}
	m := Mapper{Width: 1080, Height: 640}
	Draw(surf, m, l.Snapshot())

	want := []struct {
		kind   string
		color  Color
		points int
	}{
		{"rect", ColorBoundary, 1},
		{"polygon", ColorRectangle, 4},
		{"circle", ColorCircle, 1},
		{"polygon", ColorTriangle, 3},
		{"circle", ColorTarget, 1},
	}
	if len(surf.calls) != len(want) {
		t.Fatalf("Expected %d draw calls, got %d", len(want), len(surf.calls))
	}
	for i, w := range want {
		c := surf.calls[i]
		if c.kind != w.kind || c.color != w.color || len(c.points) != w.points {
			t.Errorf("Call %d: expected %s/%x/%d points, got %s/%x/%d", i, w.kind, w.color, w.points, c.kind, c.color, len(c.points))
		}
	}
	if frame := surf.calls[0]; frame.points[0] != (PixelCoord{220, 0}) || frame.radius != 640 {
		t.Errorf("Unexpected boundary frame %+v", frame)
	}
	if circle := surf.calls[2]; circle.radius != 64 {
		t.Errorf("Expected circle radius 64px, got %v", circle.radius)
	}
}

func TestRectangleOutlineIsConvex(t *testing.T) {
	m := Mapper{Width: 100, Height: 100}
	b, err := physics.NewRigidBody(physics.NewRectangle(0.4, 0.2), 1)
	if err != nil {
		t.Fatal(err)
	}
	pts := outline(m, b.CornerWorldPositions(), rectangleOutline)
	want := []PixelCoord{{30, 60}, {70, 60}, {70, 40}, {30, 40}}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("Point %d: expected %v, got %v", i, want[i], pts[i])
		}
	}
}

func TestFillOrder(t *testing.T) {
	// clockwise on screen: top, bottom-right, bottom-left
	cw := []PixelCoord{{50, 10}, {90, 90}, {10, 90}}
	got := FillOrder(cw)
	want := []PixelCoord{{10, 90}, {90, 90}, {50, 10}}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, got)
		}
	}
	if cw[0] != (PixelCoord{50, 10}) {
		t.Error("FillOrder modified its input")
	}

	ccw := []PixelCoord{{50, 10}, {10, 90}, {90, 90}}
	got = FillOrder(ccw)
	for i := range ccw {
		if got[i] != ccw[i] {
			t.Fatalf("Expected already counter-clockwise points unchanged, got %v", got)
		}
	}
}
