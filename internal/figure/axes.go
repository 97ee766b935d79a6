package figure

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
)

// AxisLink groups subplots that share one axis. Subplots sharing an axis
// report the identical *AxisLink from SharedX or SharedY.
type AxisLink struct {
	members []*Axes
}

func newAxisLink(a *Axes) *AxisLink {
	return &AxisLink{members: []*Axes{a}}
}

// Members returns the linked subplots in construction order.
func (l *AxisLink) Members() []*Axes {
	out := make([]*Axes, len(l.members))
	copy(out, l.members)
	return out
}

// Len is the number of linked subplots.
func (l *AxisLink) Len() int { return len(l.members) }

// sync sets every member's axis to the union of the members' finite ranges.
func (l *AxisLink) sync(pick func(*plot.Plot) *plot.Axis) {
	if len(l.members) < 2 {
		return
	}
	var mins, maxs []float64
	for _, m := range l.members {
		ax := pick(m.Plot)
		if !math.IsInf(ax.Min, 0) && !math.IsNaN(ax.Min) {
			mins = append(mins, ax.Min)
		}
		if !math.IsInf(ax.Max, 0) && !math.IsNaN(ax.Max) {
			maxs = append(maxs, ax.Max)
		}
	}
	if len(mins) == 0 || len(maxs) == 0 {
		return
	}
	lo, hi := floats.Min(mins), floats.Max(maxs)
	for _, m := range l.members {
		ax := pick(m.Plot)
		ax.Min, ax.Max = lo, hi
	}
}

// Axes is one subplot: a *plot.Plot bound to a grid cell. Callers add
// plotters and set labels through the embedded Plot.
type Axes struct {
	*plot.Plot

	index    int
	row, col int
	xlink    *AxisLink
	ylink    *AxisLink
}

func newAxes(index, row, col int, sharex, sharey *Axes) *Axes {
	a := &Axes{Plot: plot.New(), index: index, row: row, col: col}
	if sharex != nil {
		a.xlink = sharex.xlink
		a.xlink.members = append(a.xlink.members, a)
	} else {
		a.xlink = newAxisLink(a)
	}
	if sharey != nil {
		a.ylink = sharey.ylink
		a.ylink.members = append(a.ylink.members, a)
	} else {
		a.ylink = newAxisLink(a)
	}
	return a
}

// Index is the row-major position in the grid.
func (a *Axes) Index() int { return a.index }

// Row is the grid row, 0 at the top.
func (a *Axes) Row() int { return a.row }

// Col is the grid column, 0 at the left.
func (a *Axes) Col() int { return a.col }

// SharedX returns the x-axis link group.
func (a *Axes) SharedX() *AxisLink { return a.xlink }

// SharedY returns the y-axis link group.
func (a *Axes) SharedY() *AxisLink { return a.ylink }

// SharesX reports whether a and b share an x axis.
func (a *Axes) SharesX(b *Axes) bool { return a.xlink == b.xlink }

// SharesY reports whether a and b share a y axis.
func (a *Axes) SharesY(b *Axes) bool { return a.ylink == b.ylink }

// AxesSet holds a figure's subplots in row-major order.
type AxesSet []*Axes

// Single returns the only subplot of a 1×1 figure, nil otherwise.
func (s AxesSet) Single() *Axes {
	if len(s) != 1 {
		return nil
	}
	return s[0]
}

// Plots returns the subplot plots arranged as rows×cols.
func (s AxesSet) Plots(rows, cols int) [][]*plot.Plot {
	out := make([][]*plot.Plot, rows)
	for r := range out {
		out[r] = make([]*plot.Plot, cols)
	}
	for _, a := range s {
		out[a.row][a.col] = a.Plot
	}
	return out
}
