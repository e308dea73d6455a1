package synth

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
)

const testRate = beep.SampleRate(1000)

func TestEnvelopeIdleIsSilent(t *testing.T) {
	e := NewEnvelope(testRate)
	for i := 0; i < 10; i++ {
		if v := e.Next(); v != 0 {
			t.Fatalf("idle envelope produced %v", v)
		}
	}
	if e.Stage() != StageIdle {
		t.Errorf("stage = %v, want idle", e.Stage())
	}
}

func TestEnvelopeAttackThenDecay(t *testing.T) {
	e := NewEnvelope(testRate)
	e.Trigger(0.3, 10*time.Millisecond, 20*time.Millisecond)

	prev := 0.0
	for i := 1; i <= 10; i++ {
		v := e.Next()
		if v <= prev {
			t.Fatalf("attack sample %d: %v not rising from %v", i, v, prev)
		}
		prev = v
	}
	if prev != 0.3 {
		t.Fatalf("attack ended at %v, want 0.3", prev)
	}
	if e.Stage() != StageDecay {
		t.Fatalf("stage = %v, want decay", e.Stage())
	}

	for i := 1; i <= 20; i++ {
		v := e.Next()
		if v >= prev {
			t.Fatalf("decay sample %d: %v not falling from %v", i, v, prev)
		}
		prev = v
	}
	if prev != 0 || e.Stage() != StageIdle {
		t.Fatalf("after decay: level %v stage %v, want 0 idle", prev, e.Stage())
	}
}

func TestEnvelopeMidpoint(t *testing.T) {
	e := NewEnvelope(testRate)
	e.Trigger(0.2, 10*time.Millisecond, 500*time.Millisecond)
	var v float64
	for i := 0; i < 5; i++ {
		v = e.Next()
	}
	if math.Abs(v-0.1) > 1e-12 {
		t.Errorf("halfway through attack: %v, want 0.1", v)
	}
}

func TestEnvelopeRetriggerStartsFromCurrentLevel(t *testing.T) {
	e := NewEnvelope(testRate)
	e.Trigger(0.3, 10*time.Millisecond, 20*time.Millisecond)
	for i := 0; i < 20; i++ {
		e.Next()
	}
	mid := e.Level()
	if mid <= 0 || mid >= 0.3 {
		t.Fatalf("expected to be mid-decay, level %v", mid)
	}

	e.Trigger(0.3, 10*time.Millisecond, 20*time.Millisecond)
	want := mid + (0.3-mid)/10
	if v := e.Next(); math.Abs(v-want) > 1e-12 {
		t.Errorf("first sample after retrigger = %v, want %v", v, want)
	}
}

func TestEnvelopeZeroLengthStages(t *testing.T) {
	e := NewEnvelope(testRate)
	e.Trigger(0.5, 0, 0)
	if v := e.Next(); v != 0.5 {
		t.Errorf("instant attack = %v, want 0.5", v)
	}
	if v := e.Next(); v != 0 || e.Stage() != StageIdle {
		t.Errorf("instant decay = %v (%v), want 0 idle", v, e.Stage())
	}
}

func TestWaveShapes(t *testing.T) {
	tests := []struct {
		wave  Waveform
		phase float64
		want  float64
	}{
		{WaveSine, 0, 0},
		{WaveSine, 0.25, 1},
		{WaveSine, 0.75, -1},
		{WaveTriangle, 0, 0},
		{WaveTriangle, 0.25, 1},
		{WaveTriangle, 0.5, 0},
		{WaveTriangle, 0.75, -1},
		{WaveTriangle, 0.125, 0.5},
	}
	for _, tt := range tests {
		if got := wave(tt.wave, tt.phase); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("wave(%v, %v) = %v, want %v", tt.wave, tt.phase, got, tt.want)
		}
	}
}

func TestVoiceSilentUntilTriggered(t *testing.T) {
	v := NewVoice(WaveSine, 440, testRate)
	samples := make([][2]float64, 100)
	n, ok := v.Stream(samples)
	if n != 100 || !ok {
		t.Fatalf("Stream = %d, %v", n, ok)
	}
	for i, s := range samples {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("sample %d = %v, want silence", i, s)
		}
	}
	if v.Err() != nil {
		t.Errorf("Err = %v", v.Err())
	}
}

func TestVoiceTriggeredStaysUnderPeak(t *testing.T) {
	for _, w := range []Waveform{WaveSine, WaveTriangle} {
		v := NewVoice(w, 110, testRate)
		v.Trigger(0.3, 50*time.Millisecond, 500*time.Millisecond)

		samples := make([][2]float64, 600)
		v.Stream(samples)

		var loudest float64
		for i, s := range samples {
			if s[0] != s[1] {
				t.Fatalf("wave %v sample %d: channels differ %v", w, i, s)
			}
			loudest = math.Max(loudest, math.Abs(s[0]))
		}
		if loudest == 0 || loudest > 0.3+1e-12 {
			t.Errorf("wave %v: loudest sample %v, want (0, 0.3]", w, loudest)
		}
		if v.Amplitude() != 0 {
			t.Errorf("wave %v: amplitude %v after envelope, want 0", w, v.Amplitude())
		}
	}
}

func TestVoiceSetFrequency(t *testing.T) {
	v := NewVoice(WaveTriangle, 220, testRate)
	v.SetFrequency(800)
	if got := v.Frequency(); got != 800 {
		t.Errorf("Frequency = %v, want 800", got)
	}
}

func TestOutputStartingState(t *testing.T) {
	o := NewOutput(testRate)
	if f := o.Sine().Frequency(); f != 440 {
		t.Errorf("sine starts at %v Hz, want 440", f)
	}
	if f := o.Triangle().Frequency(); f != 220 {
		t.Errorf("triangle starts at %v Hz, want 220", f)
	}

	s := o.Streamer()
	samples := make([][2]float64, 64)
	s.Stream(samples)
	for i, x := range samples {
		if x[0] != 0 {
			t.Fatalf("sample %d = %v before any trigger", i, x)
		}
	}

	o.Sine().Trigger(0.3, 5*time.Millisecond, 50*time.Millisecond)
	o.Triangle().Trigger(0.2, 5*time.Millisecond, 50*time.Millisecond)
	s.Stream(samples)
	var sum float64
	for _, x := range samples {
		sum += math.Abs(x[0])
	}
	if sum == 0 {
		t.Error("mix stayed silent after trigger")
	}
}
