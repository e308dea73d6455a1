// Package game runs a kaleido.Session inside an ebiten window.
package game

import (
	"image"
	"image/color"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/kaleidoscope/internal/kaleido"
)

// Game implements ebiten.Game. Frames are drawn onto a persistent canvas
// image so the translucent wash leaves trails; Draw only copies it to the
// screen.
type Game struct {
	session *kaleido.Session
	canvas  *ebiten.Image

	width, height int

	// export
	dir     string
	capture func() (image.Image, error)
	notify  func(msg string)

	lastErr error
}

// input is the per-tick snapshot of pointer and keyboard state.
type input struct {
	x, y    float64
	clicked bool
	save    bool
}

// NewGame sets up a session of the given size playing through the two tones.
func NewGame(width, height int, tone1, tone2 kaleido.Tone) *Game {
	g := &Game{
		width:  width,
		height: height,
		dir:    ".",
		notify: notifyDesktop,
	}
	g.capture = g.readCanvas
	seed := uint64(time.Now().UnixNano())
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))
	g.session = kaleido.NewSession(float64(width), float64(height), tone1, tone2, g, rng)
	return g
}

func (g *Game) Update() error {
	if g.width <= 0 || g.height <= 0 {
		return nil
	}
	g.ensureCanvas()
	g.handleInput(pollInput(inpututil.IsKeyJustPressed))
	g.session.Tick(canvas{dst: g.canvas})
	return nil
}

// pollInput reads ebiten's input state. justPressed reports key-down edges,
// so a held key is seen once regardless of OS key repeat.
func pollInput(justPressed func(ebiten.Key) bool) input {
	mouseX, mouseY := ebiten.CursorPosition()
	return input{
		x:       float64(mouseX),
		y:       float64(mouseY),
		clicked: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		save:    saveKeyJustPressed(justPressed),
	}
}

func saveKeyJustPressed(justPressed func(ebiten.Key) bool) bool {
	return justPressed(ebiten.KeyS)
}

func (g *Game) handleInput(in input) {
	g.session.PointerMoved(in.x, in.y)
	if in.clicked {
		g.session.PointerPressed(in.x, in.y)
	}
	if in.save {
		if err := g.session.KeyPressed('s'); err != nil {
			log.Printf("kaleidoscope: %v", err)
			g.lastErr = err
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.canvas == nil {
		return
	}
	screen.DrawImage(g.canvas, nil)

	if g.lastErr != nil {
		ebitenutil.DebugPrintAt(screen, "Error: "+g.lastErr.Error(), 12, 12)
	}
}

// Layout makes the canvas track the window size. A zero-sized window (for
// example while minimised) keeps the last size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return max(g.width, 1), max(g.height, 1)
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.session.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return g.width, g.height
}

// ensureCanvas (re)allocates the canvas when the window size changes. A new
// canvas starts white, like the wash it will receive.
func (g *Game) ensureCanvas() {
	if g.canvas != nil {
		b := g.canvas.Bounds()
		if b.Dx() == g.width && b.Dy() == g.height {
			return
		}
		g.canvas.Deallocate()
	}
	g.canvas = ebiten.NewImage(g.width, g.height)
	g.canvas.Fill(color.White)
}
