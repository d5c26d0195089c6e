package softbody

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera is a pannable, zoomable view of world space for the simulation
// screen. X and Y are the world position at the center of the viewport.
type Camera struct {
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in).
	Zoom float64
	// ViewWidth and ViewHeight are the screen viewport size in pixels.
	ViewWidth, ViewHeight float64

	scrollTween *scrollAnim
}

// NewCamera creates a camera centered on the middle of a viewport of the
// given size.
func NewCamera(viewWidth, viewHeight float64) *Camera {
	return &Camera{
		X:          viewWidth / 2,
		Y:          viewHeight / 2,
		Zoom:       1,
		ViewWidth:  viewWidth,
		ViewHeight: viewHeight,
	}
}

// Pan moves the camera by (dx, dy) in world units, cancelling any active
// scroll animation.
func (c *Camera) Pan(dx, dy float64) {
	c.scrollTween = nil
	c.X += dx
	c.Y += dy
}

// ScrollTo animates the camera to the given world position over duration
// seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a scroll animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// Update advances the scroll animation by dt seconds.
func (c *Camera) Update(dt float32) {
	t := c.scrollTween
	if t == nil {
		return
	}
	if !t.doneX {
		val, done := t.tweenX.Update(dt)
		c.X = float64(val)
		t.doneX = done
	}
	if !t.doneY {
		val, done := t.tweenY.Update(dt)
		c.Y = float64(val)
		t.doneY = done
	}
	if t.doneX && t.doneY {
		c.scrollTween = nil
	}
}

// GeoM returns the world-to-screen transform for drawing.
func (c *Camera) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-c.X, -c.Y)
	g.Scale(c.Zoom, c.Zoom)
	g.Translate(c.ViewWidth/2, c.ViewHeight/2)
	return g
}

// WorldToScreen converts a world position to screen coordinates.
func (c *Camera) WorldToScreen(p Vec2) Vec2 {
	return Vec2{
		X: (p.X-c.X)*c.Zoom + c.ViewWidth/2,
		Y: (p.Y-c.Y)*c.Zoom + c.ViewHeight/2,
	}
}

// ScreenToWorld converts a screen position to world coordinates.
func (c *Camera) ScreenToWorld(p Vec2) Vec2 {
	return Vec2{
		X: (p.X-c.ViewWidth/2)/c.Zoom + c.X,
		Y: (p.Y-c.ViewHeight/2)/c.Zoom + c.Y,
	}
}
