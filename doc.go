// Package softbody simulates 2D soft bodies built from hexagonal lattices.
//
// A body starts life as a painted region on a [Canvas]: the user (or a
// program) strokes, flood-fills, and erases an RGBA bitmap using the
// reserved [DrawColor]. [BuildLattice] then converts the painted region
// into a [World] — a mesh of point-mass particles at hexagon vertices,
// connected by elastic tethers along hexagon edges, with vertices and
// edges shared between adjacent hexagons deduplicated so neighboring
// cells are physically welded together.
//
// The world advances under gravity-free spring-damper dynamics:
//
//	canvas := softbody.NewCanvas(800, 600)
//	canvas.Stroke(softbody.Vec2{X: 100, Y: 100}, softbody.Vec2{X: 300, Y: 200}, 80, softbody.DrawColor)
//
//	world := softbody.BuildLattice(canvas, softbody.LatticeConfig{
//		HexRadius: 10,
//		Stiffness: 10000,
//	})
//
//	for i := 0; i < frames; i++ {
//		world.Attract(mouse, 200000) // optional point forces
//		world.Step(1.0 / 60)
//	}
//
// Tether forces use a Hookean term plus a stabilizing correction that keeps
// the force finite near total compression, which lets small rest lengths
// survive large time steps without blowing up.
//
// Rendering and input are deliberately out of scope for the core types.
// [Wireframe] builds an Ebitengine vertex mesh from a world's particles and
// tethers, and [Camera] provides a pannable view, but both are thin
// adapters: particle positions and tether endpoint indices are exported, so
// any renderer can consume them directly. See demos/squishies for a full
// interactive paint-and-simulate program.
package softbody
