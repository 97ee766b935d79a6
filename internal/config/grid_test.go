package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridOptions_Defaults(t *testing.T) {
	var o GridOptions
	assert.Equal(t, 0.125, o.GetLeft())
	assert.Equal(t, 0.9, o.GetRight())
	assert.Equal(t, 0.11, o.GetBottom())
	assert.Equal(t, 0.88, o.GetTop())
	assert.Equal(t, 0.2, o.GetWSpace())
	assert.Equal(t, 0.2, o.GetHSpace())
	assert.Equal(t, 10.0, o.GetPad())
	assert.NoError(t, o.Validate())
}

func TestGridOptions_Merge(t *testing.T) {
	o := GridOptions{Left: Float64(0.2)}
	fallback := GridOptions{Left: Float64(0.3), Top: Float64(0.95)}

	m := o.Merge(fallback)
	assert.Equal(t, 0.2, m.GetLeft(), "receiver wins")
	assert.Equal(t, 0.95, m.GetTop(), "fallback fills gaps")
	assert.Equal(t, 0.9, m.GetRight(), "built-in default when both unset")
}

func TestGridOptions_Validate(t *testing.T) {
	tests := []struct {
		name string
		o    GridOptions
	}{
		{"left out of range", GridOptions{Left: Float64(-0.1)}},
		{"top out of range", GridOptions{Top: Float64(1.5)}},
		{"left not below right", GridOptions{Left: Float64(0.5), Right: Float64(0.5)}},
		{"bottom above top", GridOptions{Bottom: Float64(0.9), Top: Float64(0.2)}},
		{"negative wspace", GridOptions{WSpace: Float64(-1)}},
		{"negative pad", GridOptions{Pad: Float64(-2)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.o.Validate())
		})
	}
}
