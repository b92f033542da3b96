// Package dfs implements depth-first search on core.Graph.
//
// What:
//
//   - DFS(g, startID, opts...): explores as far as possible along each branch
//     before backtracking, from one root or, with WithFullTraversal, from every
//     unvisited vertex in ascending ID order (forest traversal).
//   - Pre-order (OnVisit) and post-order (OnExit) hooks; an error aborts.
//   - Cancellation via context.Context.
//
// Why:
//
//   - An independent second traversal: answers computed by the BFS-labelled
//     reachability table can be re-derived by a walk that shares no code with
//     it, which is how generated test cases are validated.
//
// The walk keeps an explicit stack instead of recursing, so long island
// chains cannot exhaust the goroutine stack.
//
// Complexity:
//
//   - Time:   O(V + E) plus hook cost.
//   - Memory: O(V) for the stack and result slices.
//
// Errors:
//
//   - ErrGraphNil              if g is nil.
//   - ErrStartVertexNotFound   if startID is missing (single-source mode).
//   - context.Canceled         if ctx is done.
//   - any error returned by OnVisit or OnExit, wrapped with the vertex ID.
package dfs
