package softbody

import "image/color"

// Tool radius tuning shared by the brushes and the point-force tool.
const (
	MinToolRadius    = 1.0
	MaxToolRadius    = 175.0
	ToolSizingFactor = 0.05
)

// BrushMode selects what the brush paints.
type BrushMode uint8

const (
	// BrushAdd paints solid region pixels with DrawColor.
	BrushAdd BrushMode = iota
	// BrushErase paints transparent pixels, carving the region away.
	BrushErase
)

// Brush is the stateful paint tool: an add/erase mode pair with independent
// radii, plus the previous-sample tracking that turns per-frame pointer
// positions into one continuous stroke.
type Brush struct {
	Mode BrushMode
	// AddRadius and EraseRadius are kept separately so toggling modes
	// restores each tool's own size.
	AddRadius   float64
	EraseRadius float64

	drawing bool
	last    Vec2
}

// NewBrush returns a brush in add mode with the default tool sizes.
func NewBrush() *Brush {
	return &Brush{
		AddRadius:   5,
		EraseRadius: 20,
	}
}

// Radius returns the active tool radius for the current mode.
func (b *Brush) Radius() float64 {
	if b.Mode == BrushErase {
		return b.EraseRadius
	}
	return b.AddRadius
}

// Resize grows or shrinks the active tool radius by the given scroll
// amount, scaled by ToolSizingFactor and clamped to
// [MinToolRadius, MaxToolRadius].
func (b *Brush) Resize(scroll float64) {
	if b.Mode == BrushErase {
		b.EraseRadius = clamp(b.EraseRadius+ToolSizingFactor*scroll, MinToolRadius, MaxToolRadius)
		return
	}
	b.AddRadius = clamp(b.AddRadius+ToolSizingFactor*scroll, MinToolRadius, MaxToolRadius)
}

// Toggle switches between add and erase mode.
func (b *Brush) Toggle() {
	if b.Mode == BrushAdd {
		b.Mode = BrushErase
	} else {
		b.Mode = BrushAdd
	}
}

// StrokeTo extends the current stroke to pos. The first call after a Lift
// (or on a fresh brush) only records the position; subsequent calls draw a
// stroke segment from the previous sample, so pointer jumps between frames
// stay filled in.
func (b *Brush) StrokeTo(c *Canvas, pos Vec2) {
	if b.drawing {
		c.Stroke(b.last, pos, 2*b.Radius(), b.paint())
	}
	b.drawing = true
	b.last = pos
}

// Lift ends the current stroke, so the next StrokeTo starts a new one.
func (b *Brush) Lift() {
	b.drawing = false
}

// Drawing reports whether a stroke is in progress.
func (b *Brush) Drawing() bool {
	return b.drawing
}

// paint returns the pixel value the current mode deposits.
func (b *Brush) paint() color.RGBA {
	if b.Mode == BrushErase {
		return Transparent
	}
	return DrawColor
}
