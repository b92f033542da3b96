// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - OnVisit hook, called once per vertex in visit order; an error aborts.
//   - Cancellation via context.Context.
//
// Why
//
//   - Discover the connected component of a vertex in O(V + E).
//   - Reconstruct the chain of islands linking two islands (PathTo).
//
// Single-visit guarantee
//
//	A vertex is marked visited when it is enqueued, never when it is dequeued,
//	so every reachable vertex enters the queue exactly once and the walk
//	terminates on any finite graph.
//
// Determinism
//
//	core.Graph.NeighborIDs returns neighbors in insertion order and BFS enqueues
//	them in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for queue, Depth map, Parent map, visited set
//
// Usage
//
//	res, err := bfs.BFS(g, 1,
//	    bfs.WithContext(ctx),
//	    bfs.WithOnVisit(func(id, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrNeighbors            if neighbor lookup fails for any vertex.
//   - ErrNoPath               from PathTo when the destination was not reached.
//   - Wrapped user-supplied hook errors from OnVisit, and ctx.Err() on cancellation.
package bfs
