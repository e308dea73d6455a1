package kaleido

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// mapRange maps v linearly from [inLo, inHi] to [outLo, outHi] without clamping.
func mapRange(v, inLo, inHi, outLo, outHi float64) float64 {
	if inHi == inLo {
		return outLo
	}
	return outLo + (v-inLo)/(inHi-inLo)*(outHi-outLo)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// randomUnit returns a unit vector with a uniformly random direction.
func randomUnit(rng *rand.Rand) mgl64.Vec2 {
	a := rng.Float64() * 2 * math.Pi
	return mgl64.Vec2{math.Cos(a), math.Sin(a)}
}

// uniform returns a float in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// apply transforms a point by a homogeneous 2D matrix.
func apply(m mgl64.Mat3, p mgl64.Vec2) mgl64.Vec2 {
	return m.Mul3x1(p.Vec3(1)).Vec2()
}
