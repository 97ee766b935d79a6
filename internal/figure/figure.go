package figure

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Figure is a sized drawing surface holding a grid of subplots.
type Figure struct {
	id    int
	size  Size
	grid  GridSpec
	axes  AxesSet
	tight *Rect
}

// NewFigure returns an empty figure. Registries call it when opening an id.
func NewFigure(id int, size Size) *Figure {
	return &Figure{id: id, size: size}
}

// ID is the figure's registry id.
func (f *Figure) ID() int { return f.id }

// Size is the figure size in inches.
func (f *Figure) Size() Size { return f.size }

// Grid is the grid the subplots were laid out on.
func (f *Figure) Grid() GridSpec { return f.grid }

// Axes returns the subplots in row-major order.
func (f *Figure) Axes() AxesSet { return f.axes }

// Title is the window title used when the figure is shown.
func (f *Figure) Title() string { return fmt.Sprintf("Figure %d", f.id) }

// TightLayoutRect returns the rectangle set by TightLayout, if any.
func (f *Figure) TightLayoutRect() (Rect, bool) {
	if f.tight == nil {
		return Rect{}, false
	}
	return *f.tight, true
}

// TightLayout fits all subplots into rect: cells are aligned across the grid
// so axis labels and tick marks never overlap neighbouring cells. Without it
// each subplot fills its raw GridSpec cell.
func (f *Figure) TightLayout(rect Rect) error {
	if err := rect.validate(); err != nil {
		return err
	}
	f.tight = &rect
	return nil
}

// layout builds the subplots of grid in row-major order, resolving share
// references against already-built subplots.
func (f *Figure) layout(grid GridSpec, share ShareSpec) error {
	n := grid.Len()
	shares := share.Resolve(n)
	for _, ix := range shares.keys() {
		if ix < 0 || ix >= n {
			return &InvalidShareReferenceError{Index: ix, Reason: fmt.Sprintf("no such subplot in a grid of %d", n)}
		}
	}

	f.grid = grid
	f.axes = make(AxesSet, 0, n)
	for ix := 0; ix < n; ix++ {
		var sharex, sharey *Axes
		for _, role := range sortedRoles(shares[ix]) {
			ref := shares[ix][role]
			if err := checkRef(ix, role, ref); err != nil {
				return err
			}
			// checkRef guarantees ref < ix, so the subplot is built.
			if role == ShareX {
				sharex = f.axes[ref]
			} else {
				sharey = f.axes[ref]
			}
		}
		row, col := grid.Cell(ix)
		f.axes = append(f.axes, newAxes(ix, row, col, sharex, sharey))
	}
	return nil
}

// linkAxes propagates shared ranges before drawing.
func (f *Figure) linkAxes() {
	seenX := make(map[*AxisLink]bool)
	seenY := make(map[*AxisLink]bool)
	for _, a := range f.axes {
		if !seenX[a.xlink] {
			seenX[a.xlink] = true
			a.xlink.sync(func(p *plot.Plot) *plot.Axis { return &p.X })
		}
		if !seenY[a.ylink] {
			seenY[a.ylink] = true
			a.ylink.sync(func(p *plot.Plot) *plot.Axis { return &p.Y })
		}
	}
}

// Draw renders every subplot onto c.
func (f *Figure) Draw(c draw.Canvas) {
	if len(f.axes) == 0 {
		return
	}
	f.linkAxes()
	for _, a := range f.axes {
		ensureRange(&a.X)
		ensureRange(&a.Y)
	}

	if f.tight != nil {
		f.drawAligned(c)
		return
	}
	for _, a := range f.axes {
		a.Plot.Draw(subCanvas(c, f.grid.CellRect(a.row, a.col)))
	}
}

func (f *Figure) drawAligned(c draw.Canvas) {
	pad := vg.Points(f.grid.Options.GetPad())
	tiles := draw.Tiles{
		Rows:      f.grid.Rows,
		Cols:      f.grid.Cols,
		PadTop:    pad,
		PadBottom: pad,
		PadLeft:   pad,
		PadRight:  pad,
		PadX:      pad,
		PadY:      pad,
	}
	plots := f.axes.Plots(f.grid.Rows, f.grid.Cols)
	canvases := plot.Align(plots, tiles, subCanvas(c, *f.tight))
	for r := range plots {
		for col, p := range plots[r] {
			p.Draw(canvases[r][col])
		}
	}
}

// subCanvas restricts c to r, given in fractions of c.
func subCanvas(c draw.Canvas, r Rect) draw.Canvas {
	w := c.Max.X - c.Min.X
	h := c.Max.Y - c.Min.Y
	return draw.Canvas{
		Canvas: c.Canvas,
		Rectangle: vg.Rectangle{
			Min: vg.Point{X: c.Min.X + vg.Length(r.Left)*w, Y: c.Min.Y + vg.Length(r.Bottom)*h},
			Max: vg.Point{X: c.Min.X + vg.Length(r.Right)*w, Y: c.Min.Y + vg.Length(r.Top)*h},
		},
	}
}

// ensureRange gives empty or degenerate axes a finite, non-zero range so
// tick and alignment computations stay bounded.
func ensureRange(ax *plot.Axis) {
	if math.IsInf(ax.Min, 0) || math.IsNaN(ax.Min) || math.IsInf(ax.Max, 0) || math.IsNaN(ax.Max) {
		ax.Min, ax.Max = 0, 0
	}
	if ax.Min > ax.Max {
		ax.Min, ax.Max = ax.Max, ax.Min
	}
	if ax.Min == ax.Max {
		ax.Min--
		ax.Max++
	}
}
