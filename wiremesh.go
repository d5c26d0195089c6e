package softbody

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Wireframe builds renderable geometry from a world snapshot: one quad
// ribbon per tether and one small quad marker per particle, all drawn from
// a shared 1x1 white pixel so color comes entirely from the vertex tint.
//
// Update rebuilds the vertex/index buffers on the CPU (reusing backing
// arrays with a high-water-mark strategy); Draw is the only method that
// touches the GPU. Call Update once per frame after World.Step.
type Wireframe struct {
	// LineWidth is the tether ribbon thickness in pixels.
	LineWidth float64
	// PointSize is the particle marker side length in pixels.
	PointSize float64
	// LineColor tints tether ribbons.
	LineColor color.RGBA
	// PointColor tints particle markers.
	PointColor color.RGBA

	lineVerts  []ebiten.Vertex
	lineInds   []uint16
	pointVerts []ebiten.Vertex
	pointInds  []uint16
}

// NewWireframe returns a wireframe with the classic debug palette: thin
// near-white tethers and slightly larger golden particles.
func NewWireframe() *Wireframe {
	return &Wireframe{
		LineWidth:  1,
		PointSize:  3,
		LineColor:  color.RGBA{R: 0xed, G: 0xed, B: 0xed, A: 0xff},
		PointColor: color.RGBA{R: 0xf2, G: 0xdf, B: 0x50, A: 0xff},
	}
}

// Update regenerates the mesh from the world's current particle positions
// and tether endpoints. For T tethers and P particles: 4T+4P vertices,
// 6T+6P indices.
func (m *Wireframe) Update(w *World) {
	m.lineVerts = growVerts(m.lineVerts, len(w.Tethers)*4)
	m.lineInds = growInds(m.lineInds, len(w.Tethers)*6)

	halfW := m.LineWidth / 2
	for i := range w.Tethers {
		t := &w.Tethers[i]
		p1 := w.Particles[t.P1].Position
		p2 := w.Particles[t.P2].Position

		perp := p2.Sub(p1)
		if l := perp.Len(); l > 1e-10 {
			perp = perp.Perp().Scale(halfW / l)
		} else {
			perp = Vec2{X: 0, Y: -halfW}
		}

		vi := i * 4
		m.lineVerts[vi+0] = tintedVertex(p1.Add(perp), m.LineColor)
		m.lineVerts[vi+1] = tintedVertex(p1.Sub(perp), m.LineColor)
		m.lineVerts[vi+2] = tintedVertex(p2.Add(perp), m.LineColor)
		m.lineVerts[vi+3] = tintedVertex(p2.Sub(perp), m.LineColor)

		ii := i * 6
		v := uint16(vi)
		m.lineInds[ii+0] = v
		m.lineInds[ii+1] = v + 1
		m.lineInds[ii+2] = v + 2
		m.lineInds[ii+3] = v + 1
		m.lineInds[ii+4] = v + 3
		m.lineInds[ii+5] = v + 2
	}

	m.pointVerts = growVerts(m.pointVerts, len(w.Particles)*4)
	m.pointInds = growInds(m.pointInds, len(w.Particles)*6)

	half := m.PointSize / 2
	for i := range w.Particles {
		pos := w.Particles[i].Position

		vi := i * 4
		m.pointVerts[vi+0] = tintedVertex(Vec2{X: pos.X - half, Y: pos.Y - half}, m.PointColor)
		m.pointVerts[vi+1] = tintedVertex(Vec2{X: pos.X + half, Y: pos.Y - half}, m.PointColor)
		m.pointVerts[vi+2] = tintedVertex(Vec2{X: pos.X - half, Y: pos.Y + half}, m.PointColor)
		m.pointVerts[vi+3] = tintedVertex(Vec2{X: pos.X + half, Y: pos.Y + half}, m.PointColor)

		ii := i * 6
		v := uint16(vi)
		m.pointInds[ii+0] = v
		m.pointInds[ii+1] = v + 1
		m.pointInds[ii+2] = v + 2
		m.pointInds[ii+3] = v + 1
		m.pointInds[ii+4] = v + 3
		m.pointInds[ii+5] = v + 2
	}
}

// Draw submits the current geometry to dst with the given transform.
// Tethers render beneath particles.
func (m *Wireframe) Draw(dst *ebiten.Image, geom ebiten.GeoM) {
	white := ensureWhitePixel()
	op := &ebiten.DrawTrianglesOptions{}

	if len(m.lineInds) > 0 {
		dst.DrawTriangles(transformVerts(m.lineVerts, geom), m.lineInds, white, op)
	}
	if len(m.pointInds) > 0 {
		dst.DrawTriangles(transformVerts(m.pointVerts, geom), m.pointInds, white, op)
	}
}

// transformVerts applies geom to vertex positions, allocating a scratch
// copy only when the transform is non-identity.
func transformVerts(verts []ebiten.Vertex, geom ebiten.GeoM) []ebiten.Vertex {
	if geom == (ebiten.GeoM{}) {
		return verts
	}
	out := make([]ebiten.Vertex, len(verts))
	for i, v := range verts {
		x, y := geom.Apply(float64(v.DstX), float64(v.DstY))
		v.DstX = float32(x)
		v.DstY = float32(y)
		out[i] = v
	}
	return out
}

// tintedVertex makes a white-pixel-sampling vertex at pos with a straight
// alpha tint.
func tintedVertex(pos Vec2, tint color.RGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(pos.X),
		DstY:   float32(pos.Y),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(tint.R) / 0xff,
		ColorG: float32(tint.G) / 0xff,
		ColorB: float32(tint.B) / 0xff,
		ColorA: float32(tint.A) / 0xff,
	}
}

// growVerts resizes a vertex buffer to n, keeping capacity at its
// high-water mark.
func growVerts(buf []ebiten.Vertex, n int) []ebiten.Vertex {
	if cap(buf) < n {
		buf = make([]ebiten.Vertex, n)
	}
	return buf[:n]
}

// growInds resizes an index buffer to n, keeping capacity at its
// high-water mark.
func growInds(buf []uint16, n int) []uint16 {
	if cap(buf) < n {
		buf = make([]uint16, n)
	}
	return buf[:n]
}

// --- White pixel singleton (softbody rendering is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}
