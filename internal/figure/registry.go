package figure

import (
	"sort"
	"sync"
)

// Registry is the table of live figures. Open mirrors "figure(n)": it
// activates an existing figure or creates a new one.
type Registry interface {
	// IDs lists live figure ids in ascending order.
	IDs() []int
	// Open activates figure id, creating it with size when absent. created
	// reports whether a new figure was made.
	Open(id int, size Size) (fig *Figure, created bool)
	// Active returns the active figure, nil when none are live.
	Active() *Figure
	// Close removes figure id. Closing an absent id is a no-op returning false.
	Close(id int) bool
}

// FigureRegistry is the in-process Registry. The most recently opened live
// figure is active.
type FigureRegistry struct {
	mu      sync.Mutex
	figures map[int]*Figure
	order   []int
}

// NewRegistry returns an empty registry.
func NewRegistry() *FigureRegistry {
	return &FigureRegistry{figures: make(map[int]*Figure)}
}

// DefaultRegistry is used by sessions that do not inject a registry.
var DefaultRegistry = NewRegistry()

// IDs implements Registry.
func (r *FigureRegistry) IDs() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]int, 0, len(r.figures))
	for id := range r.figures {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Open implements Registry.
func (r *FigureRegistry) Open(id int, size Size) (*Figure, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if fig, ok := r.figures[id]; ok {
		r.activate(id)
		return fig, false
	}
	fig := NewFigure(id, size)
	r.figures[id] = fig
	r.order = append(r.order, id)
	return fig, true
}

// Activate makes a live figure active again.
func (r *FigureRegistry) Activate(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.figures[id]; !ok {
		return false
	}
	r.activate(id)
	return true
}

func (r *FigureRegistry) activate(id int) {
	r.removeOrder(id)
	r.order = append(r.order, id)
}

func (r *FigureRegistry) removeOrder(id int) {
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			return
		}
	}
}

// Active implements Registry.
func (r *FigureRegistry) Active() *Figure {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.order) == 0 {
		return nil
	}
	return r.figures[r.order[len(r.order)-1]]
}

// Close implements Registry.
func (r *FigureRegistry) Close(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.figures[id]; !ok {
		return false
	}
	delete(r.figures, id)
	r.removeOrder(id)
	return true
}

// Len is the number of live figures.
func (r *FigureRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.figures)
}

// NextID returns 1 + the largest live id in reg, or 1 when none are live.
// Freed ids below the maximum are not reused.
func NextID(reg Registry) int {
	maxID := 0
	for _, id := range reg.IDs() {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

func activeID(reg Registry) int {
	if fig := reg.Active(); fig != nil {
		return fig.ID()
	}
	return 0
}
