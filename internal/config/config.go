package config

import "time"

const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "Kaleidoscope - click to play, S to save"

	// Particle field
	ParticleCount   = 300
	HueStep         = 0.5
	MinSpeed        = 0.2
	MaxSpeed        = 0.6
	MinSize         = 2
	MaxSize         = 6
	SectorCount     = 6
	ConnectDistance = 100

	// Rotation
	BaseRotationSpeed = 0.003
	MinRotationSpeed  = 0.001
	MaxRotationSpeed  = 0.01
	SmoothingFactor   = 0.05

	// Drawing (HSB 360/100/100/255)
	WashAlpha       = 30
	ParticleSat     = 80
	ParticleAlpha   = 200
	TrailAlpha      = 100
	TrailWidth      = 1
	ConnectionAlpha = 50
	ConnectionWidth = 0.5

	// Tones
	MinFrequency   = 200
	MaxFrequency   = 800
	SineStartFreq  = 440
	TriStartFreq   = 220
	SinePeak       = 0.3
	TrianglePeak   = 0.2
	SampleRate     = 44100
	MasterVolume   = 1.0
	ExportName     = "kaleidoscope"
	ExportFormat   = "png"
	ExportNotice   = "Saved kaleidoscope.png"
	AudioBufferDiv = 20
)

const (
	EnvelopeAttack = 50 * time.Millisecond
	EnvelopeDecay  = 500 * time.Millisecond
)
