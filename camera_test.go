package softbody

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestCameraStartsCentered(t *testing.T) {
	c := NewCamera(800, 600)
	if c.X != 400 || c.Y != 300 {
		t.Errorf("camera at (%v, %v), want viewport center (400, 300)", c.X, c.Y)
	}
	if c.Zoom != 1 {
		t.Errorf("zoom = %v, want 1", c.Zoom)
	}
}

func TestCameraPan(t *testing.T) {
	c := NewCamera(800, 600)
	c.Pan(10, -20)
	if c.X != 410 || c.Y != 280 {
		t.Errorf("camera at (%v, %v) after pan, want (410, 280)", c.X, c.Y)
	}
}

func TestCameraScrollToReachesTarget(t *testing.T) {
	c := NewCamera(800, 600)
	c.ScrollTo(100, 50, 1.0, ease.Linear)

	if !c.Scrolling() {
		t.Fatal("camera should be scrolling after ScrollTo")
	}

	// Midway through the scroll the camera should be between start and
	// target.
	c.Update(0.5)
	if !approxEqual(c.X, 250, 1.0) {
		t.Errorf("mid-scroll X = %v, want ≈250", c.X)
	}

	c.Update(0.6) // overshoot the duration; tween clamps at the target
	if !approxEqual(c.X, 100, 0.01) || !approxEqual(c.Y, 50, 0.01) {
		t.Errorf("camera at (%v, %v), want (100, 50)", c.X, c.Y)
	}
	if c.Scrolling() {
		t.Error("scroll animation should be finished")
	}
}

func TestCameraPanCancelsScroll(t *testing.T) {
	c := NewCamera(800, 600)
	c.ScrollTo(0, 0, 1.0, ease.Linear)
	c.Pan(5, 5)
	if c.Scrolling() {
		t.Error("pan should cancel an active scroll")
	}
}

func TestCameraScreenWorldRoundTrip(t *testing.T) {
	c := NewCamera(800, 600)
	c.Pan(123, -45)
	c.Zoom = 2

	world := Vec2{X: 321, Y: 99}
	got := c.ScreenToWorld(c.WorldToScreen(world))
	if !approxEqual(got.X, world.X, 1e-9) || !approxEqual(got.Y, world.Y, 1e-9) {
		t.Errorf("round trip = %v, want %v", got, world)
	}
}

func TestCameraGeoMMatchesWorldToScreen(t *testing.T) {
	c := NewCamera(800, 600)
	c.Pan(-30, 70)
	c.Zoom = 1.5

	p := Vec2{X: 50, Y: 60}
	want := c.WorldToScreen(p)
	g := c.GeoM()
	gx, gy := g.Apply(p.X, p.Y)
	if !approxEqual(gx, want.X, 1e-9) || !approxEqual(gy, want.Y, 1e-9) {
		t.Errorf("GeoM maps to (%v, %v), want (%v, %v)", gx, gy, want.X, want.Y)
	}
}
