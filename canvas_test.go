package softbody

import (
	"bytes"
	"image/color"
	"testing"
)

var red = color.RGBA{R: 255, A: 255}

// --- Clear ---

func TestClearLeavesEveryPixelTransparent(t *testing.T) {
	c := NewCanvas(32, 32)
	c.Stroke(Vec2{X: 5, Y: 5}, Vec2{X: 25, Y: 25}, 8, DrawColor)
	c.Clear()
	for _, b := range c.Pix() {
		if b != 0 {
			t.Fatal("expected fully transparent canvas after Clear")
		}
	}
}

// --- Stroke ---

func TestStrokeCoversEndpointsAndSpan(t *testing.T) {
	c := NewCanvas(64, 32)
	c.Stroke(Vec2{X: 10, Y: 10}, Vec2{X: 40, Y: 10}, 6, DrawColor)

	tests := []struct {
		name   string
		x, y   int
		expect bool
	}{
		{"from cap center", 10, 10, true},
		{"from cap left", 8, 10, true},
		{"to cap center", 40, 10, true},
		{"to cap right", 42, 10, true},
		{"span midpoint", 25, 10, true},
		{"span upper edge", 25, 8, true},
		{"span lower edge", 25, 12, true},
		{"above stroke", 25, 4, false},
		{"below stroke", 25, 16, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.At(tt.x, tt.y) == DrawColor
			if got != tt.expect {
				t.Errorf("painted(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

func TestStrokeDegenerateDrawsCapsOnly(t *testing.T) {
	c := NewCanvas(32, 32)
	// Endpoints under one pixel apart: caps but no connecting quad.
	c.Stroke(Vec2{X: 15, Y: 15}, Vec2{X: 15.4, Y: 15}, 8, DrawColor)

	if c.At(15, 15) != DrawColor {
		t.Error("cap center not painted")
	}
	if c.At(15, 12) != DrawColor {
		t.Error("cap interior not painted")
	}
	if c.At(15, 25) == DrawColor {
		t.Error("pixel outside cap radius painted")
	}
}

func TestStrokeClipsAtCanvasEdge(t *testing.T) {
	c := NewCanvas(32, 32)
	c.Stroke(Vec2{X: -10, Y: 16}, Vec2{X: 10, Y: 16}, 6, DrawColor)
	if c.At(5, 16) != DrawColor {
		t.Error("in-bounds part of stroke not painted")
	}
}

func TestStrokeVertical(t *testing.T) {
	c := NewCanvas(32, 64)
	c.Stroke(Vec2{X: 16, Y: 10}, Vec2{X: 16, Y: 40}, 6, DrawColor)
	if c.At(16, 25) != DrawColor {
		t.Error("vertical span midpoint not painted")
	}
	if c.At(14, 25) != DrawColor {
		t.Error("vertical span width not painted")
	}
	if c.At(8, 25) == DrawColor {
		t.Error("pixel beside vertical stroke painted")
	}
}

func TestStrokeEraseWithTransparent(t *testing.T) {
	c := NewCanvas(32, 32)
	c.Stroke(Vec2{X: 0, Y: 16}, Vec2{X: 31, Y: 16}, 10, DrawColor)
	c.Stroke(Vec2{X: 10, Y: 16}, Vec2{X: 20, Y: 16}, 4, Transparent)
	if c.At(15, 16) != Transparent {
		t.Error("erase stroke did not clear pixel")
	}
	if c.At(2, 16) != DrawColor {
		t.Error("erase stroke cleared pixel outside its area")
	}
}

// --- FloodFill ---

func TestFloodFillFillsEnclosedRegion(t *testing.T) {
	c := NewCanvas(20, 20)
	// Hollow rectangle boundary from (5,5) to (14,14).
	for i := 5; i <= 14; i++ {
		c.Set(i, 5, DrawColor)
		c.Set(i, 14, DrawColor)
		c.Set(5, i, DrawColor)
		c.Set(14, i, DrawColor)
	}

	c.FloodFill(10, 10, red)

	for y := 6; y <= 13; y++ {
		for x := 6; x <= 13; x++ {
			if c.At(x, y) != red {
				t.Fatalf("interior pixel (%d, %d) = %v, want fill color", x, y, c.At(x, y))
			}
		}
	}
	if c.At(5, 5) != DrawColor {
		t.Error("boundary pixel recolored")
	}
	if c.At(0, 0) != Transparent {
		t.Error("pixel outside region recolored")
	}
}

func TestFloodFillSameColorIsNoOp(t *testing.T) {
	c := NewCanvas(16, 16)
	c.Set(3, 3, DrawColor)
	before := make([]byte, len(c.Pix()))
	copy(before, c.Pix())

	// Start pixel is transparent; filling with transparent must not touch
	// a single byte (and must not loop forever).
	c.FloodFill(8, 8, Transparent)

	if !bytes.Equal(before, c.Pix()) {
		t.Error("flood fill with fill == start color modified the canvas")
	}
}

func TestFloodFillRespectsDiagonalWall(t *testing.T) {
	c := NewCanvas(8, 8)
	// A diagonal wall separates the two triangles under 4-connectivity.
	for i := 0; i < 8; i++ {
		c.Set(i, i, DrawColor)
	}

	c.FloodFill(0, 7, red)

	if c.At(2, 5) != red {
		t.Error("below-diagonal pixel not filled")
	}
	if c.At(7, 0) == red {
		t.Error("fill leaked through diagonal wall")
	}
	if c.At(3, 3) != DrawColor {
		t.Error("wall pixel recolored")
	}
}

func TestFloodFillWholeCanvas(t *testing.T) {
	c := NewCanvas(12, 12)
	c.FloodFill(6, 6, DrawColor)
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			if c.At(x, y) != DrawColor {
				t.Fatalf("pixel (%d, %d) not filled", x, y)
			}
		}
	}
}

func TestFloodFillOutOfBoundsStartIsNoOp(t *testing.T) {
	c := NewCanvas(8, 8)
	c.FloodFill(-1, 3, red)
	c.FloodFill(3, 99, red)
	for _, b := range c.Pix() {
		if b != 0 {
			t.Fatal("out-of-bounds start modified the canvas")
		}
	}
}
