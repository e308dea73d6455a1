package game

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/kaleidoscope/internal/kaleido"
)

// canvas draws kaleido shapes onto an ebiten image with the default
// source-over blend.
type canvas struct {
	dst *ebiten.Image
}

func (c canvas) Wash(col kaleido.HSBA) {
	b := c.dst.Bounds()
	vector.DrawFilledRect(c.dst, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), col.NRGBA(), false)
}

func (c canvas) FillCircle(center mgl64.Vec2, radius float64, col kaleido.HSBA) {
	vector.DrawFilledCircle(c.dst, float32(center.X()), float32(center.Y()), float32(radius), col.NRGBA(), true)
}

func (c canvas) StrokeLine(from, to mgl64.Vec2, width float64, col kaleido.HSBA) {
	vector.StrokeLine(c.dst, float32(from.X()), float32(from.Y()), float32(to.X()), float32(to.Y()), float32(width), col.NRGBA(), true)
}
