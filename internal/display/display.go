package display

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/damca/ficus/internal/config"
)

var (
	// ErrNoWindowManager is returned by windows whose back-end cannot report
	// or change geometry.
	ErrNoWindowManager = errors.New("display: back-end has no window manager")
	// ErrNoGUI is returned when no native window back-end is linked in.
	ErrNoGUI = errors.New("display: built without GUI support")
)

// Geometry is a window's position and size in screen pixels.
type Geometry struct {
	X, Y          int
	Width, Height int
}

// Window is the geometry handle a back-end exposes for a displayed figure.
type Window interface {
	Geometry() (Geometry, error)
	SetGeometry(Geometry) error
}

// Frame is one rendered figure handed to a Displayer.
type Frame struct {
	Title string
	Image image.Image
	// OnOpen, when set, is called once after the window exists and before
	// the viewer can interact with it.
	OnOpen func(Window)
}

// Displayer shows a frame and blocks until it is dismissed.
type Displayer interface {
	Show(ctx context.Context, f Frame) error
}

type discard struct{}

func (discard) Show(context.Context, Frame) error { return nil }

// Discard drops frames without showing them.
var Discard Displayer = discard{}

// noWindow is handed to OnOpen by back-ends that cannot move windows.
type noWindow struct{}

func (noWindow) Geometry() (Geometry, error) { return Geometry{}, ErrNoWindowManager }
func (noWindow) SetGeometry(Geometry) error  { return ErrNoWindowManager }

var (
	windowMu      sync.RWMutex
	windowBackend func() Displayer
)

// RegisterWindowBackend installs the constructor used for the "window"
// back-end. Package native calls it from init.
func RegisterWindowBackend(newDisplayer func() Displayer) {
	windowMu.Lock()
	defer windowMu.Unlock()
	windowBackend = newDisplayer
}

// ForBackend returns the Displayer for a config.Display* name. The window
// back-end fails with ErrNoGUI unless one has been registered.
func ForBackend(name, httpAddr string) (Displayer, error) {
	switch name {
	case config.DisplayWindow, "":
		windowMu.RLock()
		newDisplayer := windowBackend
		windowMu.RUnlock()
		if newDisplayer == nil {
			return nil, ErrNoGUI
		}
		return newDisplayer(), nil
	case config.DisplayHTTP:
		return &HTTPDisplayer{Addr: httpAddr}, nil
	case config.DisplayNone:
		return Discard, nil
	default:
		return nil, fmt.Errorf("unknown display back-end %q", name)
	}
}
