// Package native shows figures in a desktop window through ebiten.
// Importing it registers the "window" display back-end.
package native

import (
	"context"
	"fmt"
	"image"

	"github.com/damca/ficus/internal/display"
	"github.com/hajimehoshi/ebiten/v2"
)

func init() {
	display.RegisterWindowBackend(func() display.Displayer { return NewWindowDisplayer() })
}

// WindowDisplayer shows frames in a native window. ebiten allows one game
// loop per process at a time, so Show calls must not overlap.
type WindowDisplayer struct{}

// NewWindowDisplayer returns the native window back-end.
func NewWindowDisplayer() *WindowDisplayer {
	return &WindowDisplayer{}
}

// Show opens a window sized to the frame and blocks until it is closed or
// ctx is cancelled.
func (d *WindowDisplayer) Show(ctx context.Context, f display.Frame) error {
	if f.Image == nil {
		return fmt.Errorf("window display: frame has no image")
	}
	b := f.Image.Bounds()

	ebiten.SetWindowTitle(f.Title)
	ebiten.SetWindowSize(b.Dx(), b.Dy())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := &frameGame{ctx: ctx, src: f.Image, onOpen: f.OnOpen}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window display: %w", err)
	}
	return ctx.Err()
}

type frameGame struct {
	ctx    context.Context
	src    image.Image
	img    *ebiten.Image
	onOpen func(display.Window)
	opened bool
}

func (g *frameGame) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if !g.opened {
		g.opened = true
		if g.onOpen != nil {
			g.onOpen(ebitenWindow{})
		}
	}
	return nil
}

func (g *frameGame) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImageFromImage(g.src)
	}
	screen.DrawImage(g.img, nil)
}

func (g *frameGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.src.Bounds()
	return b.Dx(), b.Dy()
}

// ebitenWindow adapts ebiten's global window state to display.Window.
type ebitenWindow struct{}

func (ebitenWindow) Geometry() (display.Geometry, error) {
	x, y := ebiten.WindowPosition()
	w, h := ebiten.WindowSize()
	return display.Geometry{X: x, Y: y, Width: w, Height: h}, nil
}

func (ebitenWindow) SetGeometry(g display.Geometry) error {
	ebiten.SetWindowPosition(g.X, g.Y)
	ebiten.SetWindowSize(g.Width, g.Height)
	return nil
}
