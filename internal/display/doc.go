// Package display shows rendered figures to a person and, where the back-end
// has a window manager, positions the window.
//
// Back-ends: HTTPDisplayer (local browser page), Discard (headless) and the
// native ebiten window registered by package display/native. Every Show
// call blocks until the viewer dismisses the figure or the context is
// cancelled.
package display
