package synth

import (
	"time"

	"github.com/faiface/beep"
)

// Stage is the phase an Envelope is in.
type Stage int

const (
	StageIdle Stage = iota
	StageAttack
	StageDecay
)

func (s Stage) String() string {
	switch s {
	case StageAttack:
		return "attack"
	case StageDecay:
		return "decay"
	default:
		return "idle"
	}
}

// Envelope is a two-stage amplitude envelope clocked by samples: a linear
// attack from the current level to a peak, then a linear decay to silence.
type Envelope struct {
	rate  beep.SampleRate
	stage Stage
	level float64

	from   float64
	peak   float64
	pos    int
	attack int // samples
	decay  int // samples
}

// NewEnvelope returns a silent, idle envelope.
func NewEnvelope(rate beep.SampleRate) *Envelope {
	return &Envelope{rate: rate}
}

// Trigger restarts the attack from whatever level the envelope is at, so
// overlapping triggers do not click.
func (e *Envelope) Trigger(peak float64, attack, decay time.Duration) {
	e.from = e.level
	e.peak = peak
	e.attack = e.rate.N(attack)
	e.decay = e.rate.N(decay)
	e.pos = 0
	e.stage = StageAttack
}

// Next advances one sample and returns the new level.
func (e *Envelope) Next() float64 {
	switch e.stage {
	case StageAttack:
		e.pos++
		if e.pos >= e.attack {
			e.level = e.peak
			e.stage = StageDecay
			e.pos = 0
			break
		}
		e.level = e.from + (e.peak-e.from)*float64(e.pos)/float64(e.attack)

	case StageDecay:
		e.pos++
		if e.pos >= e.decay {
			e.level = 0
			e.stage = StageIdle
			break
		}
		e.level = e.peak * (1 - float64(e.pos)/float64(e.decay))

	default:
		e.level = 0
	}
	return e.level
}

func (e *Envelope) Level() float64 { return e.level }
func (e *Envelope) Stage() Stage { return e.stage }
