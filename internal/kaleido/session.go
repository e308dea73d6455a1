// Package kaleido implements the kaleidoscope sketch independently of any
// window or audio device.
package kaleido

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/kaleidoscope/internal/config"
)

// Session owns the particle field, the rotation state and the two tone
// handles. All methods must be called from a single goroutine.
type Session struct {
	particles []*Particle
	rng       *rand.Rand

	width, height float64
	pointer       mgl64.Vec2

	angle float64
	speed float64
	frame int

	tone1, tone2 Tone
	exporter     Exporter
}

// NewSession sets up a canvas of the given size with config.ParticleCount
// particles at random canvas positions.
func NewSession(width, height float64, tone1, tone2 Tone, exporter Exporter, rng *rand.Rand) *Session {
	s := &Session{
		rng:      rng,
		width:    width,
		height:   height,
		speed:    config.BaseRotationSpeed,
		tone1:    tone1,
		tone2:    tone2,
		exporter: exporter,
	}
	s.particles = make([]*Particle, config.ParticleCount)
	for i := range s.particles {
		s.particles[i] = NewParticle(rng.Float64()*width, rng.Float64()*height, width, height, rng)
	}
	return s
}

// Particles returns the live particle slice.
func (s *Session) Particles() []*Particle { return s.particles }

// Angle is the current kaleidoscope rotation in radians.
func (s *Session) Angle() float64 { return s.angle }

// RotationSpeed is the smoothed per-tick rotation increment.
func (s *Session) RotationSpeed() float64 { return s.speed }

// Frame counts ticks; the first tick is frame 1.
func (s *Session) Frame() int { return s.frame }

// Size returns the canvas width and height.
func (s *Session) Size() (float64, float64) { return s.width, s.height }

// Resize tracks the window size. Particles and rotation are left alone.
// Empty sizes are ignored so a minimised window does not collapse the field.
func (s *Session) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width, s.height = width, height
}

// PointerMoved records the pointer position in canvas coordinates.
func (s *Session) PointerMoved(x, y float64) {
	s.pointer = mgl64.Vec2{x, y}
}

// Tick advances and draws one frame onto c.
//
// Particles are updated once per sector, so each one moves six steps per
// tick and every sector sees a slightly later state than the one before.
func (s *Session) Tick(c Canvas) {
	s.frame++
	c.Wash(HSBA{0, 0, 100, config.WashAlpha})

	origin := mgl64.Translate2D(s.width/2, s.height/2)

	target := mapRange(clamp(s.pointer.Y(), 0, s.height), 0, s.height, config.MinRotationSpeed, config.MaxRotationSpeed)
	s.speed = lerp(s.speed, target, config.SmoothingFactor)

	for i := 0; i < config.SectorCount; i++ {
		m := origin.Mul3(mgl64.HomogRotate2D(s.angle + float64(i)*2*math.Pi/config.SectorCount))
		for _, p := range s.particles {
			p.Update(s.width)
			p.Render(c, m, s.frame)
		}
	}

	drawConnections(c, origin, s.particles)

	s.angle += s.speed
}

// PointerPressed retunes both tones from the horizontal position and
// retriggers their envelopes. Moving right raises tone1 and lowers tone2.
func (s *Session) PointerPressed(x, y float64) {
	s.PointerMoved(x, y)
	x = clamp(x, 0, s.width)

	s.tone1.SetFrequency(mapRange(x, 0, s.width, config.MinFrequency, config.MaxFrequency))
	s.tone1.Trigger(config.SinePeak, config.EnvelopeAttack, config.EnvelopeDecay)

	s.tone2.SetFrequency(mapRange(x, 0, s.width, config.MaxFrequency, config.MinFrequency))
	s.tone2.Trigger(config.TrianglePeak, config.EnvelopeAttack, config.EnvelopeDecay)
}

// KeyPressed exports the current frame on 's' or 'S'. Other keys are ignored.
func (s *Session) KeyPressed(r rune) error {
	if r != 's' && r != 'S' {
		return nil
	}
	if err := s.exporter.Export(config.ExportName, config.ExportFormat); err != nil {
		return fmt.Errorf("export frame: %w", err)
	}
	return nil
}
