package softbody

import "math"

// LatticeConfig controls how a painted region is converted into a mesh.
type LatticeConfig struct {
	// HexRadius is the center-to-vertex distance of each hexagon cell.
	// Defaults to 10 when zero or negative.
	HexRadius float64
	// Stiffness is the spring constant of every tether.
	Stiffness float64
	// Damping is the velocity damping coefficient of every tether.
	Damping float64
}

// Vertex slots of a flat-top hexagon in perimeter order.
const (
	slotTopLeft = iota
	slotTopRight
	slotMidRight
	slotBottomRight
	slotBottomLeft
	slotMidLeft
)

const cos60 = 0.5

var sin60 = math.Sqrt(3) / 2

// BuildLattice converts the painted region of a canvas into a soft-body
// world: one flat-top hexagon per candidate grid slot whose center pixel
// equals [DrawColor] exactly, with a particle at each hexagon vertex and a
// tether along each hexagon edge.
//
// Vertices and edges shared between adjacent hexagons are created exactly
// once and referenced by both — a shared corner is the literal same
// particle, never a coincident duplicate — so neighboring cells are welded
// into one body. A canvas with no placeable hexagons (including one
// smaller than a single hex pitch) yields an empty world.
func BuildLattice(c *Canvas, cfg LatticeConfig) *World {
	r := cfg.HexRadius
	if r <= 0 {
		r = 10
	}

	w := NewWorld()
	grid := placeHexagons(c, r)
	if grid.cols == 0 || grid.rows == 0 {
		return w
	}

	// Particle pass: a single forward row-major scan, so the up-left, up,
	// and up-right neighbors of every hexagon were already visited and
	// their vertices can be reused instead of re-created.
	corners := make([][6]int, len(grid.placed))
	for i, placed := range grid.placed {
		if !placed {
			continue
		}
		corners[i] = grid.placeVertices(w, i, r, corners)
	}

	// Edge pass: walk each hexagon's perimeter and tether the consecutive
	// vertex pairs that no earlier hexagon already tethered.
	window := newEdgeWindow(2 * grid.cols * 5)
	for i, placed := range grid.placed {
		if !placed {
			continue
		}
		for s := 0; s < 5; s++ {
			p1 := corners[i][s]
			p2 := corners[i][s+1]
			if window.contains(p1, p2) {
				continue
			}
			window.add(p1, p2)
			w.Attach(p1, p2, cfg.Stiffness, cfg.Damping)
		}
	}

	return w
}

// hexGrid is the candidate-center grid laid over the canvas: cols*rows
// slots with horizontal pitch 3r and vertical pitch r*sqrt(3)/2, odd rows
// offset right by 1.5r. Slots whose center pixel carries the paint color
// hold a hexagon; the rest are empty.
type hexGrid struct {
	cols, rows int
	centers    []Vec2
	placed     []bool
}

// placeHexagons samples the canvas at every candidate center.
func placeHexagons(c *Canvas, r float64) *hexGrid {
	dx := 3 * r
	dy := r * math.Sqrt(3) / 2

	g := &hexGrid{
		cols: int((float64(c.Width()) - 1) / dx),
		rows: int((float64(c.Height()) - 1) / dy),
	}
	if g.cols <= 0 || g.rows <= 0 {
		g.cols, g.rows = 0, 0
		return g
	}

	g.centers = make([]Vec2, g.cols*g.rows)
	g.placed = make([]bool, g.cols*g.rows)

	for row := 0; row < g.rows; row++ {
		pad := 1.5 * r * float64(row%2)
		for col := 0; col < g.cols; col++ {
			x := pad + dx*float64(col)
			y := dy * float64(row)
			i := row*g.cols + col
			g.centers[i] = Vec2{X: x, Y: y}
			g.placed[i] = c.At(int(x), int(y)) == DrawColor
		}
	}
	return g
}

// upLeft returns the slot diagonally up and to the left of slot i.
// Even rows sit flush left, so their up-left neighbor is one column over
// in the (offset) row above; odd rows share the column of the row above.
func (g *hexGrid) upLeft(i int) (int, bool) {
	row := i / g.cols
	col := i % g.cols
	if row == 0 {
		return 0, false
	}
	if row%2 == 0 {
		if col == 0 {
			return 0, false
		}
		return i - g.cols - 1, true
	}
	return i - g.cols, true
}

// upRight returns the slot diagonally up and to the right of slot i.
func (g *hexGrid) upRight(i int) (int, bool) {
	row := i / g.cols
	col := i % g.cols
	if row == 0 {
		return 0, false
	}
	if row%2 == 0 {
		return i - g.cols, true
	}
	if col == g.cols-1 {
		return 0, false
	}
	return i - g.cols + 1, true
}

// up returns the slot directly above slot i, two grid rows up.
func (g *hexGrid) up(i int) (int, bool) {
	if i/g.cols < 2 {
		return 0, false
	}
	return i - 2*g.cols, true
}

// placedAt reports whether the neighbor lookup hit a placed hexagon.
func (g *hexGrid) placedAt(i int, ok bool) bool {
	return ok && g.placed[i]
}

// placeVertices creates (or reuses) the six vertex particles of hexagon i
// and returns their world indices in slot order.
//
// Reuse mapping between a hexagon and its already-visited neighbors:
//
//	up-left neighbor:  its MR, BR  are  our TL, ML
//	up neighbor:       its BL, BR  are  our TL, TR
//	up-right neighbor: its ML, BL  are  our TR, MR
//
// The bottom two vertices always belong to hexagons not yet scanned, so
// they are always newly created.
func (g *hexGrid) placeVertices(w *World, i int, r float64, corners [][6]int) [6]int {
	center := g.centers[i]

	left, lok := g.upLeft(i)
	hasLeft := g.placedAt(left, lok)
	right, rok := g.upRight(i)
	hasRight := g.placedAt(right, rok)
	top, tok := g.up(i)
	hasTop := g.placedAt(top, tok)

	add := func(offX, offY float64) int {
		pos := Vec2{X: center.X + offX, Y: center.Y + offY}
		return w.AddParticle(NewParticle(pos, Vec2{}, 1))
	}

	var corner [6]int

	// New vertices first, where no earlier hexagon supplies them.
	if !hasLeft && !hasTop {
		corner[slotTopLeft] = add(-r*cos60, -r*sin60)
	}
	if !hasRight && !hasTop {
		corner[slotTopRight] = add(r*cos60, -r*sin60)
	}
	if !hasLeft {
		corner[slotMidLeft] = add(-r, 0)
	}
	if !hasRight {
		corner[slotMidRight] = add(r, 0)
	}

	// Then inherit whatever the neighbors already placed.
	if hasLeft {
		corner[slotMidLeft] = corners[left][slotBottomRight]
		corner[slotTopLeft] = corners[left][slotMidRight]
	}
	if hasTop {
		if !hasLeft {
			corner[slotTopLeft] = corners[top][slotBottomLeft]
		}
		corner[slotTopRight] = corners[top][slotBottomRight]
	}
	if hasRight {
		if !hasTop {
			corner[slotTopRight] = corners[right][slotMidLeft]
		}
		corner[slotMidRight] = corners[right][slotBottomLeft]
	}

	// The bottom edge is always virgin territory.
	corner[slotBottomLeft] = add(-r*cos60, r*sin60)
	corner[slotBottomRight] = add(r*cos60, r*sin60)

	return corner
}

// edgeWindow tracks recently created tethers as unordered particle-index
// pairs. Only the hexagons of the last two slot-rows can still share an
// edge with a later hexagon, so entries beyond that window are evicted
// and membership checks stay O(1) regardless of mesh size. The window is
// scoped to a single build.
type edgeWindow struct {
	seen  map[[2]int]struct{}
	fifo  [][2]int
	head  int
	limit int
}

func newEdgeWindow(limit int) *edgeWindow {
	return &edgeWindow{
		seen:  make(map[[2]int]struct{}, limit),
		limit: limit,
	}
}

// key canonicalizes an unordered pair.
func (e *edgeWindow) key(p1, p2 int) [2]int {
	if p1 > p2 {
		p1, p2 = p2, p1
	}
	return [2]int{p1, p2}
}

// contains reports whether the unordered pair is in the window.
func (e *edgeWindow) contains(p1, p2 int) bool {
	_, ok := e.seen[e.key(p1, p2)]
	return ok
}

// add inserts the pair, evicting the oldest entries beyond the window limit.
func (e *edgeWindow) add(p1, p2 int) {
	k := e.key(p1, p2)
	e.seen[k] = struct{}{}
	e.fifo = append(e.fifo, k)
	for len(e.fifo)-e.head > e.limit {
		delete(e.seen, e.fifo[e.head])
		e.head++
	}
}
