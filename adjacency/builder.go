package adjacency

import (
	"github.com/katalvlaran/lavaworld/core"
	"github.com/katalvlaran/lavaworld/geometry"
	"github.com/katalvlaran/lavaworld/logger"
)

// Option configures a Builder.
type Option func(*Builder)

// WithLogger attaches a logger. A nil logger is ignored.
func WithLogger(lggr logger.Logger) Option {
	return func(b *Builder) {
		if lggr != nil {
			b.lggr = lggr
		}
	}
}

// WithCapacity preallocates room for n rectangles.
func WithCapacity(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.capacity = n
		}
	}
}

// Builder incrementally constructs the island adjacency graph.
// rects[0] is unused so that rectangle IDs index the slice directly.
type Builder struct {
	lggr        logger.Logger
	capacity    int
	rects       []geometry.Rect
	graph       *core.Graph
	comparisons int
}

// NewBuilder returns an empty Builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{lggr: logger.Nop()}
	for _, opt := range opts {
		opt(b)
	}
	b.rects = make([]geometry.Rect, 1, b.capacity+1)
	// Every pair is compared exactly once, so no duplicate edge can arise.
	b.graph = core.NewGraph(core.WithCapacity(b.capacity), core.WithMultiEdges())

	return b
}

// Add registers r under the next ID and connects it to every earlier
// rectangle it ConnectsWith. It returns the assigned ID.
func (b *Builder) Add(r geometry.Rect) int {
	id := b.graph.AddVertex()
	b.rects = append(b.rects, r)
	if !r.Normalized() {
		b.lggr.Warnw("island breaks the Y-down convention", "id", id, "rect", r.String())
	}

	for other := 1; other < id; other++ {
		b.comparisons++
		if !geometry.ConnectsWith(b.rects[other], r) {
			continue
		}
		// both endpoints exist and differ, AddEdge cannot fail here
		_ = b.graph.AddEdge(other, id)
	}

	return id
}

// Graph returns the adjacency graph built so far.
// The graph is shared with the Builder; do not mutate it.
func (b *Builder) Graph() *core.Graph {
	return b.graph
}

// Rect returns the rectangle registered under id.
func (b *Builder) Rect(id int) (geometry.Rect, bool) {
	if id < 1 || id >= len(b.rects) {
		return geometry.Rect{}, false
	}

	return b.rects[id], true
}

// Len returns the number of rectangles added.
func (b *Builder) Len() int {
	return len(b.rects) - 1
}

// Comparisons returns how many predicate evaluations have been performed.
func (b *Builder) Comparisons() int {
	return b.comparisons
}

// Build adds every rectangle in order and returns the resulting graph.
// rects[i] receives ID i+1.
func Build(rects []geometry.Rect, opts ...Option) *core.Graph {
	b := NewBuilder(append([]Option{WithCapacity(len(rects))}, opts...)...)
	for _, r := range rects {
		b.Add(r)
	}

	return b.Graph()
}
