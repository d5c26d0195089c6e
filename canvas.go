package softbody

import (
	"image"
	"image/color"
	"math"
)

// Canvas is a fixed-size RGBA paint buffer. Regions painted with [DrawColor]
// are the input to [BuildLattice]; everything else on the canvas is empty
// space. The canvas never resizes after creation.
//
// Coordinate accesses clip to the canvas bounds, so strokes near the edge
// simply crop rather than failing.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas creates a fully transparent canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// At returns the pixel at (x, y), or the zero color outside the bounds.
func (c *Canvas) At(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

// Set writes the pixel at (x, y). Out-of-bounds writes are dropped.
func (c *Canvas) Set(x, y int, col color.RGBA) {
	c.img.SetRGBA(x, y, col)
}

// Pix exposes the raw RGBA buffer in row-major order, 4 bytes per pixel.
// Suitable for direct upload via (*ebiten.Image).WritePixels.
func (c *Canvas) Pix() []byte {
	return c.img.Pix
}

// Image returns the backing image for read-only use.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the entire canvas with fully transparent pixels.
func (c *Canvas) Clear() {
	clear(c.img.Pix)
}

// Stroke draws a thick line from one point to another: a filled-circle end
// cap of radius width/2 at each endpoint, joined by a filled quad. Callers
// drawing a continuous stroke should call this once per pointer sample with
// the previous sample as from; the caps hide the seams between segments.
//
// Endpoints closer than one pixel draw only the caps — the connecting quad
// would be degenerate.
func (c *Canvas) Stroke(from, to Vec2, width float64, col color.RGBA) {
	half := width / 2
	c.fillCircle(int(from.X), int(from.Y), int(half), col)
	c.fillCircle(int(to.X), int(to.Y), int(half), col)

	if int(from.Distance(to)) < 1 {
		return
	}

	offset := to.Sub(from).Normalize().Perp().Scale(half)
	c.fillConvexQuad([4]Vec2{
		from.Add(offset),
		from.Sub(offset),
		to.Sub(offset),
		to.Add(offset),
	}, col)
}

// FloodFill recolors the 4-connected region of same-colored pixels
// containing (x, y) to fill. Pixels whose color differs from the start
// pixel act as boundaries. Filling a region that already has the fill
// color is a no-op.
//
// The fill is iterative with an explicit frontier stack, so region size is
// bounded by the canvas, not by the call stack.
func (c *Canvas) FloodFill(x, y int, fill color.RGBA) {
	if !(image.Point{X: x, Y: y}.In(c.img.Rect)) {
		return
	}
	start := c.img.RGBAAt(x, y)
	if start == fill {
		return
	}

	w := c.Width()
	h := c.Height()
	frontier := make([][2]int, 1, 256)
	frontier[0] = [2]int{x, y}

	for len(frontier) > 0 {
		px := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		// Boundary pixel: don't recolor, don't branch out.
		if c.img.RGBAAt(px[0], px[1]) != start {
			continue
		}
		c.img.SetRGBA(px[0], px[1], fill)

		if px[0]+1 < w {
			frontier = append(frontier, [2]int{px[0] + 1, px[1]})
		}
		if px[0] > 0 {
			frontier = append(frontier, [2]int{px[0] - 1, px[1]})
		}
		if px[1]+1 < h {
			frontier = append(frontier, [2]int{px[0], px[1] + 1})
		}
		if px[1] > 0 {
			frontier = append(frontier, [2]int{px[0], px[1] - 1})
		}
	}
}

// fillCircle rasterizes a filled circle by horizontal spans.
func (c *Canvas) fillCircle(cx, cy, r int, col color.RGBA) {
	for dy := -r; dy <= r; dy++ {
		span := int(math.Sqrt(float64(r*r - dy*dy)))
		for dx := -span; dx <= span; dx++ {
			c.img.SetRGBA(cx+dx, cy+dy, col)
		}
	}
}

// fillConvexQuad scanline-fills a convex quad given its corners in
// perimeter order.
func (c *Canvas) fillConvexQuad(quad [4]Vec2, col color.RGBA) {
	minY := quad[0].Y
	maxY := quad[0].Y
	for _, p := range quad[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	y0 := int(math.Max(math.Floor(minY), 0))
	y1 := int(math.Min(math.Ceil(maxY), float64(c.Height()-1)))

	for y := y0; y <= y1; y++ {
		fy := float64(y) + 0.5
		lo := math.Inf(1)
		hi := math.Inf(-1)
		for i, a := range quad {
			b := quad[(i+1)%4]
			// Edge crosses this scanline?
			if (a.Y <= fy) == (b.Y <= fy) {
				continue
			}
			x := a.X + (fy-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			lo = math.Min(lo, x)
			hi = math.Max(hi, x)
		}
		for x := int(math.Floor(lo)); x <= int(math.Ceil(hi)); x++ {
			c.img.SetRGBA(x, y, col)
		}
	}
}
