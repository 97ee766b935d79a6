package figure

import (
	"fmt"

	"github.com/damca/ficus/internal/config"
	"gonum.org/v1/plot/vg"
)

// Size is a figure size in inches.
type Size struct {
	Width, Height float64
}

func (s Size) lengths() (w, h vg.Length) {
	return vg.Length(s.Width) * vg.Inch, vg.Length(s.Height) * vg.Inch
}

func (s Size) validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: figure size must be positive, got %vx%v", ErrInvalidOptions, s.Width, s.Height)
	}
	return nil
}

// Rect is a rectangle in figure fractions, (0,0) bottom-left to (1,1)
// top-right.
type Rect struct {
	Left, Bottom, Right, Top float64
}

// FullFigure is the rectangle covering the whole figure.
var FullFigure = Rect{0, 0, 1, 1}

func (r Rect) validate() error {
	for _, v := range []float64{r.Left, r.Bottom, r.Right, r.Top} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: rect %v outside [0, 1]", ErrInvalidOptions, r)
		}
	}
	if r.Left >= r.Right || r.Bottom >= r.Top {
		return fmt.Errorf("%w: rect %v is empty", ErrInvalidOptions, r)
	}
	return nil
}

// GridSpec is the subplot grid: its shape plus the spacing options that
// place cells inside the figure.
type GridSpec struct {
	Rows, Cols int
	Options    config.GridOptions
}

// NewGridSpec validates the shape and spacing of a grid.
func NewGridSpec(rows, cols int, opts config.GridOptions) (GridSpec, error) {
	if rows < 1 || cols < 1 {
		return GridSpec{}, fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidOptions, rows, cols)
	}
	if err := opts.Validate(); err != nil {
		return GridSpec{}, fmt.Errorf("%w: gridspec: %v", ErrInvalidOptions, err)
	}
	return GridSpec{Rows: rows, Cols: cols, Options: opts}, nil
}

// Len is the number of cells.
func (g GridSpec) Len() int { return g.Rows * g.Cols }

// Cell maps a row-major index to its row and column.
func (g GridSpec) Cell(ix int) (row, col int) {
	return ix / g.Cols, ix % g.Cols
}

// CellRect returns the cell at (row, col) in figure fractions. Row 0 is the
// top row. Spacing follows the matplotlib convention: wspace/hspace are
// fractions of the average cell width/height.
func (g GridSpec) CellRect(row, col int) Rect {
	o := g.Options
	left, right := o.GetLeft(), o.GetRight()
	bottom, top := o.GetBottom(), o.GetTop()

	cellW := (right - left) / (float64(g.Cols) + o.GetWSpace()*float64(g.Cols-1))
	sepW := o.GetWSpace() * cellW
	cellH := (top - bottom) / (float64(g.Rows) + o.GetHSpace()*float64(g.Rows-1))
	sepH := o.GetHSpace() * cellH

	x0 := left + float64(col)*(cellW+sepW)
	y1 := top - float64(row)*(cellH+sepH)
	return Rect{Left: x0, Bottom: y1 - cellH, Right: x0 + cellW, Top: y1}
}
