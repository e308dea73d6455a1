package game

import (
	"fmt"
	"image"
	"log"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/kaleidoscope/internal/config"
	"github.com/iburimskiy/kaleidoscope/internal/snapshot"
)

// Export saves the current canvas into the game's directory and posts a
// desktop notification.
func (g *Game) Export(name, format string) error {
	img, err := g.capture()
	if err != nil {
		return err
	}

	path, err := snapshot.Save(g.dir, name, format, img)
	if err != nil {
		return err
	}
	log.Printf("saved %s", path)
	g.lastErr = nil

	g.notify(config.ExportNotice)
	return nil
}

func (g *Game) readCanvas() (image.Image, error) {
	if g.canvas == nil {
		return nil, fmt.Errorf("no frame drawn yet")
	}
	b := g.canvas.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	g.canvas.ReadPixels(img.Pix)
	return img, nil
}

func notifyDesktop(msg string) {
	go func() {
		if err := zenity.Notify(msg, zenity.Title(config.WindowTitle)); err != nil {
			log.Printf("notify: %v", err)
		}
	}()
}
