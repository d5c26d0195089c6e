package softbody

// stabilization is the constant S in the tether force law. The correction
// term -S*(L*dx + L - dx)/(dx+L)^2 + S/L vanishes at dx = 0 and grows
// without bound as dx approaches -L, so a tether resists total compression
// even when the Hookean term alone would let particles pass through each
// other at small rest lengths.
const stabilization = 10.0

// Particle is a point mass. Particles are created by [BuildLattice] (or
// [World.AddParticle]) and live until the world is cleared or rebuilt;
// tethers refer to them by index, so the slice never reorders.
type Particle struct {
	Position     Vec2
	Velocity     Vec2
	Acceleration Vec2
	// Mass must be positive.
	Mass float64

	netForce Vec2
}

// NewParticle creates a particle at rest-frame position pos with the given
// initial velocity and mass.
func NewParticle(pos, vel Vec2, mass float64) Particle {
	return Particle{Position: pos, Velocity: vel, Mass: mass}
}

// ApplyForce adds f to the force accumulated for the current step.
func (p *Particle) ApplyForce(f Vec2) {
	p.netForce = p.netForce.Add(f)
}

// integrate applies the accumulated force over dt and resets it.
func (p *Particle) integrate(dt float64) {
	p.Acceleration = p.netForce.Scale(1 / p.Mass)
	p.Velocity = p.Velocity.Add(p.Acceleration.Scale(dt))
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
	p.netForce = Vec2{}
}

// Tether is an elastic, damped link between two particles. The rest length
// is captured at creation time and never changes; the endpoints are indices
// into the owning world's particle slice.
type Tether struct {
	P1, P2     int
	Stiffness  float64
	Damping    float64
	RestLength float64
}

// World owns the particle and tether collections of one soft-body mesh and
// advances them through time. The zero value is an empty, steppable world.
type World struct {
	Particles []Particle
	Tethers   []Tether
}

// NewWorld returns an empty world.
func NewWorld() *World {
	return &World{}
}

// Clear removes every particle and tether. Rebuilding from a cleared world
// is the recovery path after any geometry error.
func (w *World) Clear() {
	w.Particles = w.Particles[:0]
	w.Tethers = w.Tethers[:0]
}

// AddParticle appends a particle and returns its index.
func (w *World) AddParticle(p Particle) int {
	w.Particles = append(w.Particles, p)
	return len(w.Particles) - 1
}

// Attach creates a tether between particles p1 and p2 with the current
// distance between them as its rest length, and returns its index.
//
// Attach panics if p1 == p2: a self-tether has zero length and no defined
// direction, and can only come from a broken lattice build.
func (w *World) Attach(p1, p2 int, stiffness, damping float64) int {
	if p1 == p2 {
		panic("softbody: tether endpoints reference the same particle")
	}
	w.Tethers = append(w.Tethers, Tether{
		P1:         p1,
		P2:         p2,
		Stiffness:  stiffness,
		Damping:    damping,
		RestLength: w.Particles[p1].Position.Distance(w.Particles[p2].Position),
	})
	return len(w.Tethers) - 1
}

// Step advances the simulation by dt seconds in two phases: first every
// tether's force is accumulated onto its endpoint particles, then every
// particle integrates its accumulated force. No particle moves until all
// forces are in, so the result is independent of tether order.
//
// Stepping an empty world is a no-op.
func (w *World) Step(dt float64) {
	for i := range w.Tethers {
		t := &w.Tethers[i]
		if t.P1 == t.P2 {
			panic("softbody: tether endpoints reference the same particle")
		}
		p1 := &w.Particles[t.P1]
		p2 := &w.Particles[t.P2]

		delta := p2.Position.Sub(p1.Position)
		dist := delta.Len()
		dir := delta.Scale(1 / dist)

		l := t.RestLength
		dx := dist - l
		f := -t.Stiffness*dx - stabilization*(l*dx+l-dx)/((dx+l)*(dx+l)) + stabilization/l

		// Damping resists each endpoint's own velocity, applied along the
		// tether axis componentwise.
		c := t.Damping
		p1.ApplyForce(Vec2{
			X: -(f + c*p1.Velocity.X) * dir.X,
			Y: -(f + c*p1.Velocity.Y) * dir.Y,
		})
		p2.ApplyForce(Vec2{
			X: (f + c*p2.Velocity.X) * dir.X,
			Y: (f + c*p2.Velocity.Y) * dir.Y,
		})
	}

	for i := range w.Particles {
		w.Particles[i].integrate(dt)
	}
}

// ApplyPointForce adds an inverse-square force from point to every
// particle. Positive strength pushes particles away from the point;
// negative strength pulls them toward it. The magnitude is
// strength/distance² with no internal clamping — it diverges as a particle
// approaches the point, and callers that care must keep the point away
// from particles or bound the result themselves.
func (w *World) ApplyPointForce(point Vec2, strength float64) {
	for i := range w.Particles {
		p := &w.Particles[i]
		delta := p.Position.Sub(point)
		dir := delta.Normalize()
		p.ApplyForce(dir.Scale(strength / delta.LenSq()))
	}
}

// Attract pulls every particle toward point with the given strength.
func (w *World) Attract(point Vec2, strength float64) {
	w.ApplyPointForce(point, -strength)
}

// Repel pushes every particle away from point with the given strength.
func (w *World) Repel(point Vec2, strength float64) {
	w.ApplyPointForce(point, strength)
}
