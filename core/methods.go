package core

import "fmt"

// AddVertex appends a new isolated vertex and returns its ID.
// IDs are assigned sequentially starting at 1.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() int {
	g.adjacency = append(g.adjacency, nil)

	return len(g.adjacency) - 1
}

// HasVertex reports whether id names an existing vertex.
func (g *Graph) HasVertex(id int) bool {
	return id >= 1 && id < len(g.adjacency)
}

// AddEdge connects u and v in both directions.
//
// Returns ErrVertexNotFound if either endpoint is missing, ErrLoopNotAllowed
// for u == v, and ErrMultiEdgeNotAllowed if the edge already exists (unless
// the graph was built WithMultiEdges).
//
// Complexity: O(min(deg(u), deg(v))) for the duplicate check, O(1) without it.
func (g *Graph) AddEdge(u, v int) error {
	if !g.HasVertex(u) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, u)
	}
	if !g.HasVertex(v) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	if u == v {
		return fmt.Errorf("%w: %d", ErrLoopNotAllowed, u)
	}
	if !g.multiEdges && g.HasEdge(u, v) {
		return fmt.Errorf("%w: %d-%d", ErrMultiEdgeNotAllowed, u, v)
	}

	g.adjacency[u] = append(g.adjacency[u], v)
	g.adjacency[v] = append(g.adjacency[v], u)
	g.edgeCount++

	return nil
}

// HasEdge reports whether u and v are adjacent. Missing vertices yield false.
//
// Complexity: O(min(deg(u), deg(v))).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return false
	}
	// scan the shorter list
	from, to := u, v
	if len(g.adjacency[v]) < len(g.adjacency[u]) {
		from, to = v, u
	}
	for _, nbr := range g.adjacency[from] {
		if nbr == to {
			return true
		}
	}

	return false
}

// NeighborIDs returns a copy of the neighbor list of id in insertion order.
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	out := make([]int, len(g.adjacency[id]))
	copy(out, g.adjacency[id])

	return out, nil
}

// Degree returns the number of neighbors of id.
func (g *Graph) Degree(id int) (int, error) {
	if !g.HasVertex(id) {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	return len(g.adjacency[id]), nil
}

// Vertices returns all vertex IDs in ascending order.
func (g *Graph) Vertices() []int {
	ids := make([]int, 0, g.VertexCount())
	for id := 1; id < len(g.adjacency); id++ {
		ids = append(ids, id)
	}

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	return len(g.adjacency) - 1
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// Clone returns a deep copy of g.
//
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	adj := make([][]int, len(g.adjacency))
	for id, nbrs := range g.adjacency {
		if nbrs == nil {
			continue
		}
		adj[id] = append([]int(nil), nbrs...)
	}

	return &Graph{adjacency: adj, edgeCount: g.edgeCount, multiEdges: g.multiEdges}
}
