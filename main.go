package main

import (
	"errors"
	"log"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/kaleidoscope/internal/config"
	"github.com/iburimskiy/kaleidoscope/internal/game"
	"github.com/iburimskiy/kaleidoscope/internal/synth"
)

func main() {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	out := synth.NewOutput(beep.SampleRate(config.SampleRate))
	if err := out.Start(); err != nil {
		log.Fatal(err)
	}

	g := game.NewGame(config.WindowWidth, config.WindowHeight, out.Sine(), out.Triangle())
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
