package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Graph is an undirected graph over vertices 1..VertexCount().
//
// adjacency[id] holds the neighbor IDs of id; adjacency[0] is a permanent,
// empty placeholder so that IDs index the slice directly.
type Graph struct {
	adjacency  [][]int
	edgeCount  int
	multiEdges bool
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity preallocates room for n vertices.
// Negative values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.adjacency = make([][]int, 1, n+1)
		}
	}
}

// WithMultiEdges disables the duplicate check in AddEdge. Callers that can
// guarantee each pair is connected at most once use it to keep AddEdge O(1).
func WithMultiEdges() GraphOption {
	return func(g *Graph) {
		g.multiEdges = true
	}
}

// NewGraph creates an empty Graph with the supplied options applied.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{adjacency: make([][]int, 1)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
