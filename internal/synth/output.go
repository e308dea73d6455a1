// Package synth generates the sketch's two click tones.
package synth

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/kaleidoscope/internal/config"
)

// Output owns the sine and triangle voices and plays their mix.
type Output struct {
	rate     beep.SampleRate
	sine     *Voice
	triangle *Voice
	started  bool
}

// NewOutput creates both voices, silent, at their starting pitches.
func NewOutput(rate beep.SampleRate) *Output {
	return &Output{
		rate:     rate,
		sine:     NewVoice(WaveSine, config.SineStartFreq, rate),
		triangle: NewVoice(WaveTriangle, config.TriStartFreq, rate),
	}
}

func (o *Output) Sine() *Voice { return o.sine }
func (o *Output) Triangle() *Voice { return o.triangle }

// Streamer returns the mixed, volume-scaled signal of both voices.
func (o *Output) Streamer() beep.Streamer {
	return newVolume(beep.Mix(o.sine, o.triangle), config.MasterVolume)
}

// Start opens the speaker and begins streaming. The voices run until the
// process exits.
func (o *Output) Start() error {
	if o.started {
		return fmt.Errorf("audio output already started")
	}
	bufferSize := o.rate.N(time.Second / config.AudioBufferDiv)
	if err := speaker.Init(o.rate, bufferSize); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(o.Streamer())
	o.started = true
	return nil
}

// newVolume scales s linearly by vol. Log2(0) is -Inf so zero is mapped to
// silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
