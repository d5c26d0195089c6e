package softbody

import (
	"image/color"
	"math"
)

// DrawColor is the reserved paint color. A canvas pixel equal to this exact
// value marks the cell as solid; any other value (including fully
// transparent) is empty space.
var DrawColor = color.RGBA{R: 88, G: 96, B: 117, A: 255}

// Transparent is the erased/empty pixel value used by Canvas.Clear and the
// erase brush.
var Transparent = color.RGBA{}

// Vec2 is a 2D vector used for positions, velocities, and forces throughout
// the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns v scaled to unit length. The zero vector has no
// direction; normalizing it yields NaN components, matching the divergence
// the force laws already exhibit at zero separation.
func (v Vec2) Normalize() Vec2 {
	return v.Scale(1 / v.Len())
}

// Perp returns the left-perpendicular of v (rotated 90° counterclockwise in
// screen coordinates, where Y grows downward).
func (v Vec2) Perp() Vec2 {
	return Vec2{-v.Y, v.X}
}

// Distance returns the Euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return o.Sub(v).Len()
}

// clamp limits v to [min, max].
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
