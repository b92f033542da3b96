// Package core provides a compact, index-based, undirected Graph used as the
// adjacency store for island connectivity.
//
// The Graph G = (V,E) keeps vertices in a flat arena addressed by 1-based
// integer IDs (slot 0 is reserved and never a vertex), and represents edges
// as per-vertex lists of neighbor IDs. No vertex holds a pointer to another
// vertex, so the structure is free of reference cycles and cheap to discard.
//
// Behavior:
//
//   - Undirected: AddEdge(u,v) records v in u's list and u in v's list.
//   - Self-loops are rejected (ErrLoopNotAllowed).
//   - Parallel edges are rejected (ErrMultiEdgeNotAllowed) unless the graph
//     is created WithMultiEdges, which skips the check entirely.
//   - Deterministic iteration: NeighborIDs returns neighbors in insertion order;
//     when edges are added in increasing ID order (as adjacency.Builder does)
//     the lists are sorted ascending.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex() int                      // O(1) amortized, returns the new ID
//	HasVertex(id int) bool               // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v int) error              // O(min deg) duplicate check, O(1) WithMultiEdges
//	HasEdge(u, v int) bool               // O(min(deg(u), deg(v)))
//
//	// Query
//	NeighborIDs(id int) ([]int, error)   // O(deg), returns a copy
//	Degree(id int) (int, error)          // O(1)
//	Vertices() []int                     // O(V), ascending
//	VertexCount() int                    // O(1)
//	EdgeCount() int                      // O(1)
//
//	// Cloning
//	Clone() *Graph                       // O(V+E)
//
// Errors:
//
//	ErrVertexNotFound      – ID outside [1, VertexCount()]
//	ErrLoopNotAllowed      – AddEdge(v, v)
//	ErrMultiEdgeNotAllowed – AddEdge(u, v) when the edge already exists
//
// Concurrency: Graph is not safe for concurrent mutation. It is built once by a
// single goroutine and then only read.
package core
