package display

import "fmt"

// Placement used by PlaceWindow, in screen pixels.
const (
	PlaceX   = 30
	PlaceY   = 80
	PlacePad = 30
)

// PlaceWindow moves w to (PlaceX, PlaceY) and grows both dimensions by
// PlacePad. A nil window or one without a window manager yields
// ErrNoWindowManager.
func PlaceWindow(w Window) error {
	if w == nil {
		return ErrNoWindowManager
	}
	g, err := w.Geometry()
	if err != nil {
		return fmt.Errorf("read window geometry: %w", err)
	}
	next := Geometry{
		X:      PlaceX,
		Y:      PlaceY,
		Width:  g.Width + PlacePad,
		Height: g.Height + PlacePad,
	}
	if err := w.SetGeometry(next); err != nil {
		return fmt.Errorf("set window geometry: %w", err)
	}
	return nil
}
