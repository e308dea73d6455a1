package kaleido

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/kaleidoscope/internal/config"
)

// Particle is one moving luminous point. Positions are relative to the
// canvas center.
type Particle struct {
	Pos  mgl64.Vec2
	Prev mgl64.Vec2
	Vel  mgl64.Vec2
	Size float64 // diameter
	Hue  float64

	rng *rand.Rand
}

// NewParticle spawns a particle at canvas coordinates (x, y) on a canvas of
// the given size.
func NewParticle(x, y, width, height float64, rng *rand.Rand) *Particle {
	pos := mgl64.Vec2{x - width/2, y - height/2}
	return &Particle{
		Pos:  pos,
		Prev: pos,
		Vel:  randomUnit(rng).Mul(uniform(rng, config.MinSpeed, config.MaxSpeed)),
		Size: uniform(rng, config.MinSize, config.MaxSize),
		Hue:  uniform(rng, 0, 360),
		rng:  rng,
	}
}

// Update advances the particle by one step. A particle that leaves the disc
// of radius width/2 is respawned inside radius width/4 with no trail.
func (p *Particle) Update(width float64) {
	p.Prev = p.Pos
	p.Pos = p.Pos.Add(p.Vel)
	p.Hue = math.Mod(p.Hue+config.HueStep, 360)

	if p.Pos.Len() > width/2 {
		p.Pos = randomUnit(p.rng).Mul(uniform(p.rng, 0, width/4))
		p.Prev = p.Pos
	}
}

// Render draws the disc and its one-segment trail under transform m.
func (p *Particle) Render(c Canvas, m mgl64.Mat3, frame int) {
	b := brightness(frame, p.Hue)
	pos := apply(m, p.Pos)
	c.FillCircle(pos, p.Size/2, HSBA{p.Hue, config.ParticleSat, b, config.ParticleAlpha})
	c.StrokeLine(pos, apply(m, p.Prev), config.TrailWidth, HSBA{p.Hue, config.ParticleSat, b, config.TrailAlpha})
}

// brightness oscillates in [40, 100]. The hue is fed to sin as radians.
func brightness(frame int, hue float64) float64 {
	return 70 + math.Sin(float64(frame)*0.01+hue)*30
}
