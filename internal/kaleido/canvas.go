package kaleido

import (
	"image/color"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// HSBA is a color in the sketch's color model: hue 0-360, saturation and
// brightness 0-100, alpha 0-255.
type HSBA struct {
	H, S, B, A float64
}

// NRGBA converts c to a non-premultiplied 8-bit color.
func (c HSBA) NRGBA() color.NRGBA {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	rgb := colorful.Hsv(h, clamp(c.S, 0, 100)/100, clamp(c.B, 0, 100)/100).Clamped()
	r, g, b := rgb.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp(c.A, 0, 255)))}
}

// Canvas is a drawing surface in device coordinates. Blending is ordinary
// source-over alpha compositing.
type Canvas interface {
	// Wash paints the whole surface with c, blending over what is there.
	Wash(c HSBA)
	FillCircle(center mgl64.Vec2, radius float64, c HSBA)
	StrokeLine(from, to mgl64.Vec2, width float64, c HSBA)
}

// Tone is a continuous tone generator with an amplitude envelope.
type Tone interface {
	SetFrequency(hz float64)
	// Trigger ramps the amplitude from its current level to peak over
	// attack, then down to silence over decay.
	Trigger(peak float64, attack, decay time.Duration)
}

// Exporter writes the current frame to an image file.
type Exporter interface {
	Export(name, format string) error
}
