package figure

import (
	"errors"
	"testing"

	"github.com/damca/ficus/internal/config"
)

func TestNewGridSpec(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
		opts       config.GridOptions
		wantErr    bool
	}{
		{"1x1", 1, 1, config.GridOptions{}, false},
		{"3x2", 3, 2, config.GridOptions{}, false},
		{"zero rows", 0, 2, config.GridOptions{}, true},
		{"negative cols", 1, -1, config.GridOptions{}, true},
		{"bad margins", 1, 1, config.GridOptions{Left: config.Float64(0.8), Right: config.Float64(0.2)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGridSpec(tt.rows, tt.cols, tt.opts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewGridSpec error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidOptions) {
					t.Errorf("error %v is not ErrInvalidOptions", err)
				}
				return
			}
			if g.Len() != tt.rows*tt.cols {
				t.Errorf("Len() = %d, want %d", g.Len(), tt.rows*tt.cols)
			}
		})
	}
}

func TestGridSpec_CellRowMajor(t *testing.T) {
	g := GridSpec{Rows: 2, Cols: 3}
	want := [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	for ix, w := range want {
		r, c := g.Cell(ix)
		if r != w[0] || c != w[1] {
			t.Errorf("Cell(%d) = (%d, %d), want (%d, %d)", ix, r, c, w[0], w[1])
		}
	}
}

func TestGridSpec_CellRect(t *testing.T) {
	g := GridSpec{Rows: 1, Cols: 1}
	if got, want := g.CellRect(0, 0), (Rect{0.125, 0.11, 0.9, 0.88}); !rectNear(got, want) {
		t.Errorf("default 1x1 cell = %+v, want %+v", got, want)
	}

	zero := config.Float64(0)
	one := config.Float64(1)
	g = GridSpec{Rows: 2, Cols: 2, Options: config.GridOptions{
		Left: zero, Bottom: zero, Right: one, Top: one, WSpace: zero, HSpace: zero,
	}}
	cases := []struct {
		row, col int
		want     Rect
	}{
		{0, 0, Rect{0, 0.5, 0.5, 1}},
		{0, 1, Rect{0.5, 0.5, 1, 1}},
		{1, 0, Rect{0, 0, 0.5, 0.5}},
		{1, 1, Rect{0.5, 0, 1, 0.5}},
	}
	for _, c := range cases {
		if got := g.CellRect(c.row, c.col); got != c.want {
			t.Errorf("CellRect(%d, %d) = %+v, want %+v", c.row, c.col, got, c.want)
		}
	}
}

func TestGridSpec_CellRectSpacing(t *testing.T) {
	g := GridSpec{Rows: 1, Cols: 2}
	left, right := g.CellRect(0, 0), g.CellRect(0, 1)

	width := left.Right - left.Left
	gap := right.Left - left.Right
	// wspace 0.2 is a fraction of the cell width
	if diff := gap - 0.2*width; diff > 1e-12 || diff < -1e-12 {
		t.Errorf("gap = %v, want 0.2*width = %v", gap, 0.2*width)
	}
	if diff := right.Right - 0.9; diff > 1e-12 || diff < -1e-12 {
		t.Errorf("last cell ends at %v, want 0.9", right.Right)
	}
}

func TestRectValidate(t *testing.T) {
	valid := []Rect{FullFigure, {0, 0.03, 1, 0.95}}
	for _, r := range valid {
		if err := r.validate(); err != nil {
			t.Errorf("validate(%+v) = %v", r, err)
		}
	}
	invalid := []Rect{{-0.1, 0, 1, 1}, {0, 0, 1.2, 1}, {0.5, 0, 0.5, 1}, {0, 0.9, 1, 0.1}}
	for _, r := range invalid {
		if err := r.validate(); !errors.Is(err, ErrInvalidOptions) {
			t.Errorf("validate(%+v) = %v, want ErrInvalidOptions", r, err)
		}
	}
}

func rectNear(a, b Rect) bool {
	near := func(x, y float64) bool { return x-y < 1e-12 && y-x < 1e-12 }
	return near(a.Left, b.Left) && near(a.Bottom, b.Bottom) && near(a.Right, b.Right) && near(a.Top, b.Top)
}
