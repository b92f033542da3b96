package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered (pre-order).
	OnVisit func(id int) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex are
	// explored (post-order).
	OnExit func(id int) error

	// FullTraversal runs DFS from every unvisited vertex.
	FullTraversal bool
}

// DefaultOptions returns background context, no hooks, single-source mode.
func DefaultOptions() DFSOptions {
	return DFSOptions{Ctx: context.Background()}
}

// WithContext sets a cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a pre-order hook.
func WithOnVisit(fn func(id int) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit registers a post-order hook.
func WithOnExit(fn func(id int) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithFullTraversal covers every vertex, not only those reachable from start.
// The startID argument of DFS is then ignored.
func WithFullTraversal() Option {
	return func(o *DFSOptions) { o.FullTraversal = true }
}

// DFSResult collects the outcome of a traversal.
type DFSResult struct {
	// Order lists vertices in post-order (finish order).
	Order []int
	// Parent maps each discovered non-root vertex to its DFS-tree parent.
	Parent map[int]int
	// Visited holds every discovered vertex.
	Visited map[int]bool
}

// Reached reports whether id was discovered.
func (r *DFSResult) Reached(id int) bool {
	return r.Visited[id]
}
