package synth

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
)

// Waveform selects the oscillator shape.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveTriangle
)

// Voice is an endless tone generator with a mutable frequency and an
// attack/decay envelope. It is safe to retune and trigger while the speaker
// is streaming it.
type Voice struct {
	wave  Waveform
	rate  beep.SampleRate
	freq  float64
	phase float64 // 0-1
	env   *Envelope
	mu    sync.Mutex
}

// NewVoice creates a silent voice at freq Hz.
func NewVoice(wave Waveform, freq float64, rate beep.SampleRate) *Voice {
	return &Voice{
		wave: wave,
		rate: rate,
		freq: freq,
		env:  NewEnvelope(rate),
	}
}

func (v *Voice) SetFrequency(hz float64) {
	v.mu.Lock()
	v.freq = hz
	v.mu.Unlock()
}

func (v *Voice) Frequency() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.freq
}

// Trigger ramps to peak over attack, then fades to silence over decay.
func (v *Voice) Trigger(peak float64, attack, decay time.Duration) {
	v.mu.Lock()
	v.env.Trigger(peak, attack, decay)
	v.mu.Unlock()
}

// Amplitude reports the current envelope level.
func (v *Voice) Amplitude() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.env.Level()
}

func (v *Voice) Stream(samples [][2]float64) (int, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	inc := v.freq / float64(v.rate)
	for i := range samples {
		val := wave(v.wave, v.phase) * v.env.Next()
		samples[i][0] = val
		samples[i][1] = val

		v.phase += inc
		v.phase -= math.Floor(v.phase)
	}
	return len(samples), true
}

func (v *Voice) Err() error { return nil }

// wave evaluates a unit waveform at phase p in [0, 1).
func wave(w Waveform, p float64) float64 {
	switch w {
	case WaveTriangle:
		switch {
		case p < 0.25:
			return 4 * p
		case p < 0.75:
			return 2 - 4*p
		default:
			return 4*p - 4
		}
	default:
		return math.Sin(2 * math.Pi * p)
	}
}
