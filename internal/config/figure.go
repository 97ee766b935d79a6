// Package config holds the process-wide figure defaults: the values a session
// falls back to when its options leave a field unset.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Display back-end names accepted by FigureDefaults.Display.
const (
	DisplayWindow = "window"
	DisplayHTTP   = "http"
	DisplayNone   = "none"
)

// FigureDefaults represents the defaults applied to new figure sessions.
// Nil fields fall back to the built-in values returned by the Get* methods,
// so partial files are safe.
type FigureDefaults struct {
	// FigSize is [width, height] in inches.
	FigSize  []float64   `json:"figsize,omitempty"`
	DPI      *int        `json:"dpi,omitempty"`
	Show     *bool       `json:"show,omitempty"`
	Move     *bool       `json:"move,omitempty"`
	Display  *string     `json:"display,omitempty"`
	HTTPAddr *string     `json:"http_addr,omitempty"`
	GridSpec GridOptions `json:"gridspec,omitempty"`
}

// Pointer helpers for building configs in code.
func Float64(v float64) *float64 { return &v }
func Bool(v bool) *bool          { return &v }
func String(v string) *string    { return &v }
func Int(v int) *int             { return &v }

// LoadFigureDefaults loads FigureDefaults from a JSON file.
// The file must have a .json extension and be under 1MB.
func LoadFigureDefaults(path string) (*FigureDefaults, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &FigureDefaults{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configured values are usable.
func (c *FigureDefaults) Validate() error {
	if c.FigSize != nil {
		if len(c.FigSize) != 2 {
			return fmt.Errorf("figsize must have 2 values, got %d", len(c.FigSize))
		}
		if c.FigSize[0] <= 0 || c.FigSize[1] <= 0 {
			return fmt.Errorf("figsize must be positive, got %v", c.FigSize)
		}
	}
	if c.DPI != nil && *c.DPI <= 0 {
		return fmt.Errorf("dpi must be positive, got %d", *c.DPI)
	}
	if c.Display != nil {
		switch *c.Display {
		case DisplayWindow, DisplayHTTP, DisplayNone:
		default:
			return fmt.Errorf("display must be one of %q, %q, %q, got %q",
				DisplayWindow, DisplayHTTP, DisplayNone, *c.Display)
		}
	}
	if err := c.GridSpec.Validate(); err != nil {
		return fmt.Errorf("gridspec: %w", err)
	}
	return nil
}

// GetFigSize returns the default figure size in inches.
func (c *FigureDefaults) GetFigSize() (width, height float64) {
	if len(c.FigSize) != 2 {
		return 6.4, 4.8 // default
	}
	return c.FigSize[0], c.FigSize[1]
}

// GetDPI returns the save resolution or the default.
func (c *FigureDefaults) GetDPI() int {
	if c.DPI == nil {
		return 300 // default
	}
	return *c.DPI
}

// GetShow returns the show value or the default.
func (c *FigureDefaults) GetShow() bool {
	if c.Show == nil {
		return false // default
	}
	return *c.Show
}

// GetMove returns whether shown windows are repositioned.
func (c *FigureDefaults) GetMove() bool {
	if c.Move == nil {
		return true // default
	}
	return *c.Move
}

// GetDisplay returns the display back-end name or the default.
func (c *FigureDefaults) GetDisplay() string {
	if c.Display == nil || *c.Display == "" {
		return DisplayWindow
	}
	return *c.Display
}

// GetHTTPAddr returns the listen address of the HTTP viewer.
func (c *FigureDefaults) GetHTTPAddr() string {
	if c.HTTPAddr == nil || *c.HTTPAddr == "" {
		return "127.0.0.1:0"
	}
	return *c.HTTPAddr
}

var (
	defaultsMu sync.RWMutex
	defaults   = &FigureDefaults{}
)

// Defaults returns the process-wide figure defaults.
func Defaults() *FigureDefaults {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaults
}

// SetDefaults replaces the process-wide figure defaults. Passing nil restores
// the built-in values.
func SetDefaults(cfg *FigureDefaults) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	if cfg == nil {
		cfg = &FigureDefaults{}
	}
	defaults = cfg
}
