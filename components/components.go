package components

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lavaworld/bfs"
	"github.com/katalvlaran/lavaworld/core"
	"github.com/katalvlaran/lavaworld/logger"
)

var (
	// ErrGraphNil indicates a nil graph was passed to Label.
	ErrGraphNil = errors.New("components: graph is nil")
	// ErrVertexOutOfRange indicates a vertex ID outside [1, N].
	ErrVertexOutOfRange = errors.New("components: vertex id out of range")
)

// Partition is the result of Label.
type Partition struct {
	// Components lists member IDs per component, in discovery order.
	Components [][]int
	// of[id] is the component index of id; of[0] is unused.
	of []int
}

// Option configures Label.
type Option func(*options)

type options struct {
	ctx  context.Context
	lggr logger.Logger
}

// WithContext makes Label abort on ctx cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger attaches a logger for per-component debug output.
func WithLogger(lggr logger.Logger) Option {
	return func(o *options) {
		if lggr != nil {
			o.lggr = lggr
		}
	}
}

// Label finds all connected components of g.
func Label(g *core.Graph, opts ...Option) (*Partition, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := options{ctx: context.Background(), lggr: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	n := g.VertexCount()
	p := &Partition{of: make([]int, n+1)}
	seen := make([]bool, n+1)

	for id := 1; id <= n; id++ {
		if seen[id] {
			continue
		}
		idx := len(p.Components)
		res, err := bfs.BFS(g, id, bfs.WithContext(o.ctx), bfs.WithOnVisit(func(member, _ int) error {
			seen[member] = true
			p.of[member] = idx
			return nil
		}))
		if err != nil {
			return nil, fmt.Errorf("components: traversal from %d: %w", id, err)
		}
		p.Components = append(p.Components, res.Order)
		o.lggr.Debugw("component labeled", "index", idx, "root", id, "size", len(res.Order))
	}

	return p, nil
}

// N returns the number of labeled vertices.
func (p *Partition) N() int {
	return len(p.of) - 1
}

// Count returns the number of components.
func (p *Partition) Count() int {
	return len(p.Components)
}

// Size returns the number of members of component i, or 0 if i is not a
// component index.
func (p *Partition) Size(i int) int {
	if i < 0 || i >= len(p.Components) {
		return 0
	}

	return len(p.Components[i])
}

// ComponentOf returns the component index of id.
func (p *Partition) ComponentOf(id int) (int, error) {
	if id < 1 || id > p.N() {
		return 0, fmt.Errorf("%w: %d not in [1, %d]", ErrVertexOutOfRange, id, p.N())
	}

	return p.of[id], nil
}

// Same reports whether a and b belong to the same component.
// IDs outside [1, N] are never in any component.
func (p *Partition) Same(a, b int) bool {
	ca, err := p.ComponentOf(a)
	if err != nil {
		return false
	}
	cb, err := p.ComponentOf(b)
	if err != nil {
		return false
	}

	return ca == cb
}

// Largest returns the index and size of the biggest component, or (-1, 0)
// for an empty partition. Ties resolve to the earliest component.
func (p *Partition) Largest() (int, int) {
	best, size := -1, 0
	for i, c := range p.Components {
		if len(c) > size {
			best, size = i, len(c)
		}
	}

	return best, size
}
