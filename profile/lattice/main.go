// Profiling:
// go build ./profile/lattice
// go tool pprof -http=":8000" -nodefraction=0.001 ./lattice cpu.pprof

package main

import (
	"log"

	softbody "github.com/TesseractionCode/hexagonal-softbodies"
	"github.com/pkg/profile"
)

func main() {
	rebuilds := 50
	steps := 2000

	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rebuilds, steps)
	p.Stop()
}

func run(rebuilds, steps int) {
	canvas := softbody.NewCanvas(1600, 1200)
	for y := 20; y < 1180; y++ {
		for x := 20; x < 1580; x++ {
			canvas.Set(x, y, softbody.DrawColor)
		}
	}

	var world *softbody.World
	for i := 0; i < rebuilds; i++ {
		world = softbody.BuildLattice(canvas, softbody.LatticeConfig{
			HexRadius: 8,
			Stiffness: 10000,
		})
	}
	log.Printf("mesh: %d particles, %d tethers", len(world.Particles), len(world.Tethers))

	center := softbody.Vec2{X: 800, Y: 600}
	for i := 0; i < steps; i++ {
		world.Attract(center, 500000)
		world.Step(1.0 / 60)
	}
}
