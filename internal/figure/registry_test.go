package figure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextID(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, 1, NextID(r))

	r.Open(1, Size{1, 1})
	r.Open(5, Size{1, 1})
	assert.Equal(t, 6, NextID(r))

	// freed ids below the maximum are not reused
	r.Close(1)
	assert.Equal(t, 6, NextID(r))

	r.Close(5)
	assert.Equal(t, 1, NextID(r))
}

func TestFigureRegistry_OpenActiveClose(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Active())

	f1, created := r.Open(1, Size{4, 3})
	require.True(t, created)
	assert.Equal(t, 1, f1.ID())
	assert.Equal(t, Size{4, 3}, f1.Size())
	assert.Same(t, f1, r.Active())

	f2, created := r.Open(2, Size{1, 1})
	require.True(t, created)
	assert.Same(t, f2, r.Active())

	// reopening activates without creating
	again, created := r.Open(1, Size{9, 9})
	assert.False(t, created)
	assert.Same(t, f1, again)
	assert.Equal(t, Size{4, 3}, again.Size())
	assert.Same(t, f1, r.Active())

	assert.Equal(t, []int{1, 2}, r.IDs())
	assert.Equal(t, 2, r.Len())

	assert.True(t, r.Close(1))
	assert.Same(t, f2, r.Active(), "previously active figure takes over")
	assert.False(t, r.Close(1), "closing twice is a no-op")

	assert.True(t, r.Close(2))
	assert.Nil(t, r.Active())
	assert.Empty(t, r.IDs())
}

func TestFigureRegistry_Activate(t *testing.T) {
	r := NewRegistry()
	f1, _ := r.Open(1, Size{1, 1})
	r.Open(2, Size{1, 1})

	assert.True(t, r.Activate(1))
	assert.Same(t, f1, r.Active())
	assert.False(t, r.Activate(42))
}
