package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envOverrides mirrors FigureDefaults for environment variables. Pointer
// fields stay nil when the variable is unset.
type envOverrides struct {
	FigSize  []float64 `env:"FICUS_FIGSIZE" envSeparator:","`
	DPI      *int      `env:"FICUS_DPI"`
	Show     *bool     `env:"FICUS_SHOW"`
	Move     *bool     `env:"FICUS_MOVE"`
	Display  *string   `env:"FICUS_DISPLAY"`
	HTTPAddr *string   `env:"FICUS_HTTP_ADDR"`
}

// ApplyEnv overlays FICUS_* variables onto c and re-validates it. A nil
// environ reads the process environment.
func (c *FigureDefaults) ApplyEnv(environ map[string]string) error {
	var o envOverrides
	if err := env.ParseWithOptions(&o, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if o.FigSize != nil {
		c.FigSize = o.FigSize
	}
	if o.DPI != nil {
		c.DPI = o.DPI
	}
	if o.Show != nil {
		c.Show = o.Show
	}
	if o.Move != nil {
		c.Move = o.Move
	}
	if o.Display != nil {
		c.Display = o.Display
	}
	if o.HTTPAddr != nil {
		c.HTTPAddr = o.HTTPAddr
	}

	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid environment configuration: %w", err)
	}
	return nil
}
