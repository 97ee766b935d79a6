package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/damca/ficus/internal/config"
	"github.com/damca/ficus/internal/figure"
	"gonum.org/v1/plot/plotter"
)

// cliFlags is the parsed command line, kept separate from the flag package
// so buildOptions can be tested.
type cliFlags struct {
	Rows, Cols int
	Share      string
	Output     string
	DPI        int
	Show       bool
	ShowSet    bool
	Display    string
	HTTPAddr   string
	FigSize    string
	Tight      string
	NoMove     bool
}

// buildOptions turns command-line values into session options. Flags left
// unset fall back to defaults, which the caller has already installed.
func buildOptions(f cliFlags, defaults *config.FigureDefaults) (figure.Options, error) {
	opts := figure.Options{
		Filename: f.Output,
		Rows:     f.Rows,
		Cols:     f.Cols,
		DPI:      f.DPI,
		Show:     defaults.GetShow(),
		Defaults: defaults,
	}
	if f.ShowSet {
		opts.Show = f.Show
	}
	if f.Rows < 1 || f.Cols < 1 {
		return opts, fmt.Errorf("rows and cols must be positive, got %dx%d", f.Rows, f.Cols)
	}
	if f.DPI < 0 {
		return opts, fmt.Errorf("dpi must be positive, got %d", f.DPI)
	}

	if f.Display != "" {
		defaults.Display = config.String(f.Display)
	}
	if f.HTTPAddr != "" {
		defaults.HTTPAddr = config.String(f.HTTPAddr)
	}
	if err := defaults.Validate(); err != nil {
		return opts, err
	}

	spec, err := figure.ParseShareSpec(f.Share)
	if err != nil {
		return opts, fmt.Errorf("invalid -share: %w", err)
	}
	opts.Share = spec

	size, err := parseCSVFloatSlice(f.FigSize)
	if err != nil {
		return opts, fmt.Errorf("invalid -figsize: %w", err)
	}
	switch len(size) {
	case 0:
	case 2:
		opts.FigSize = &figure.Size{Width: size[0], Height: size[1]}
	default:
		return opts, fmt.Errorf("invalid -figsize: want 2 values, got %d", len(size))
	}

	rect, err := parseCSVFloatSlice(f.Tight)
	if err != nil {
		return opts, fmt.Errorf("invalid -tight: %w", err)
	}
	switch len(rect) {
	case 0:
	case 4:
		opts.TightLayoutRect = &figure.Rect{Left: rect[0], Bottom: rect[1], Right: rect[2], Top: rect[3]}
	default:
		return opts, fmt.Errorf("invalid -tight: want 4 values, got %d", len(rect))
	}

	if f.NoMove {
		opts.Move = config.Bool(false)
	}
	return opts, nil
}

// parseCSVFloatSlice parses a comma-separated list of floats
func parseCSVFloatSlice(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid float '%s': %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// labelSubplots titles every subplot with its index and grid position and
// draws a diagonal so shared ranges are visible.
func labelSubplots(_ *figure.Figure, axes figure.AxesSet) error {
	for _, ax := range axes {
		ax.Title.Text = fmt.Sprintf("ax %d", ax.Index())
		ax.X.Label.Text = fmt.Sprintf("col %d", ax.Col())
		ax.Y.Label.Text = fmt.Sprintf("row %d", ax.Row())

		scale := float64(ax.Index() + 1)
		line, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: scale, Y: scale}})
		if err != nil {
			return fmt.Errorf("subplot %d: %w", ax.Index(), err)
		}
		ax.Add(line)
	}
	return nil
}
