package kaleido

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/kaleidoscope/internal/config"
)

// Pair indexes two particles in a slice, I < J.
type Pair struct {
	I, J int
}

// Connections returns every unordered pair whose distance is strictly less
// than maxDist, in (i, j) lexical order.
func Connections(ps []*Particle, maxDist float64) []Pair {
	var pairs []Pair
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			if ps[i].Pos.Sub(ps[j].Pos).Len() < maxDist {
				pairs = append(pairs, Pair{I: i, J: j})
			}
		}
	}
	return pairs
}

func drawConnections(c Canvas, m mgl64.Mat3, ps []*Particle) {
	col := HSBA{0, 0, 0, config.ConnectionAlpha}
	for _, pr := range Connections(ps, config.ConnectDistance) {
		c.StrokeLine(apply(m, ps[pr.I].Pos), apply(m, ps[pr.J].Pos), config.ConnectionWidth, col)
	}
}
