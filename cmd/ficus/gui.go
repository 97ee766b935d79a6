//go:build !nogui

package main

// Link the native window back-end. Build with -tags nogui for headless
// hosts; -display window then fails with display.ErrNoGUI.
import _ "github.com/damca/ficus/internal/display/native"
