package main

import (
	"context"
	"testing"

	"github.com/damca/ficus/internal/config"
	"github.com/damca/ficus/internal/figure"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSVFloatSlice(t *testing.T) {
	tests := []struct {
		in      string
		want    []float64
		wantErr bool
	}{
		{"", nil, false},
		{"1.5", []float64{1.5}, false},
		{"6.4, 4.8", []float64{6.4, 4.8}, false},
		{"0,0.03,1,0.95", []float64{0, 0.03, 1, 0.95}, false},
		{"1,,2", nil, true},
		{"wide", nil, true},
	}
	for _, tt := range tests {
		got, err := parseCSVFloatSlice(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseCSVFloatSlice(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("parseCSVFloatSlice(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestBuildOptions(t *testing.T) {
	defaults := &config.FigureDefaults{Show: config.Bool(true)}
	opts, err := buildOptions(cliFlags{
		Rows:    2,
		Cols:    3,
		Share:   "all",
		Output:  "out/grid.png",
		DPI:     150,
		FigSize: "8,6",
		Tight:   "0,0.03,1,0.95",
		Display: config.DisplayHTTP,
		NoMove:  true,
	}, defaults)
	require.NoError(t, err)

	assert.Equal(t, "out/grid.png", opts.Filename)
	assert.Equal(t, 2, opts.Rows)
	assert.Equal(t, 3, opts.Cols)
	assert.Equal(t, 150, opts.DPI)
	assert.True(t, opts.Share.IsAll())
	assert.True(t, opts.Show, "show falls back to the configured default")
	assert.Equal(t, &figure.Size{Width: 8, Height: 6}, opts.FigSize)
	assert.Equal(t, &figure.Rect{Left: 0, Bottom: 0.03, Right: 1, Top: 0.95}, opts.TightLayoutRect)
	require.NotNil(t, opts.Move)
	assert.False(t, *opts.Move)
	assert.Equal(t, config.DisplayHTTP, defaults.GetDisplay())
	assert.Same(t, defaults, opts.Defaults)
}

func TestBuildOptions_ExplicitShowWins(t *testing.T) {
	opts, err := buildOptions(cliFlags{Rows: 1, Cols: 1, Show: false, ShowSet: true},
		&config.FigureDefaults{Show: config.Bool(true)})
	require.NoError(t, err)
	assert.False(t, opts.Show)
	assert.Nil(t, opts.Move)
	assert.Nil(t, opts.FigSize)
	assert.Nil(t, opts.TightLayoutRect)
}

func TestBuildOptions_ExplicitShare(t *testing.T) {
	opts, err := buildOptions(cliFlags{Rows: 2, Cols: 2, Share: "1:sharex=0;3:y=2"}, &config.FigureDefaults{})
	require.NoError(t, err)

	want := figure.ShareMap{1: {figure.ShareX: 0}, 3: {figure.ShareY: 2}}
	if diff := cmp.Diff(want, opts.Share.Resolve(4)); diff != "" {
		t.Errorf("share mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildOptions_Errors(t *testing.T) {
	tests := []struct {
		name  string
		flags cliFlags
	}{
		{"zero rows", cliFlags{Rows: 0, Cols: 1}},
		{"negative dpi", cliFlags{Rows: 1, Cols: 1, DPI: -1}},
		{"bad share", cliFlags{Rows: 1, Cols: 1, Share: "1:sharez=0"}},
		{"short figsize", cliFlags{Rows: 1, Cols: 1, FigSize: "4"}},
		{"bad figsize", cliFlags{Rows: 1, Cols: 1, FigSize: "4,tall"}},
		{"short tight", cliFlags{Rows: 1, Cols: 1, Tight: "0,0,1"}},
		{"unknown display", cliFlags{Rows: 1, Cols: 1, Display: "projector"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildOptions(tt.flags, &config.FigureDefaults{})
			assert.Error(t, err)
		})
	}
}

func TestLabelSubplots(t *testing.T) {
	reg := figure.NewRegistry()
	err := figure.With(context.Background(), figure.Options{
		Rows:     1,
		Cols:     2,
		Registry: reg,
	}, func(fig *figure.Figure, axes figure.AxesSet) error {
		require.NoError(t, labelSubplots(fig, axes))
		assert.Equal(t, "ax 0", axes[0].Title.Text)
		assert.Equal(t, "ax 1", axes[1].Title.Text)
		assert.Equal(t, "col 1", axes[1].X.Label.Text)
		assert.Equal(t, "row 0", axes[1].Y.Label.Text)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 0, reg.Len())
}

func TestLoadDefaults_Env(t *testing.T) {
	t.Setenv("FICUS_DPI", "72")
	t.Setenv("FICUS_DISPLAY", "none")

	cfg, err := loadDefaults("")
	require.NoError(t, err)
	assert.Equal(t, 72, cfg.GetDPI())
	assert.Equal(t, config.DisplayNone, cfg.GetDisplay())

	_, err = loadDefaults("missing.json")
	assert.Error(t, err)
}
