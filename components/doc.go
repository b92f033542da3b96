// Package components partitions an island adjacency graph into connected
// components.
//
// What:
//
//   - Label walks vertex IDs 1..N in order; every ID not yet assigned starts a
//     breadth-first traversal (package bfs) whose visit order becomes one
//     component.
//   - Each vertex is visited exactly once across the whole labeling, because a
//     traversal never leaves its own component and started IDs are skipped.
//   - Isolated vertices yield singleton components.
//
// Complexity:
//
//   - Label: O(V + E) time, O(V) memory.
//
// Errors:
//
//   - ErrGraphNil: nil graph.
//   - ErrVertexOutOfRange: ComponentOf called with an ID outside [1, N].
//   - Traversal errors from bfs (e.g. context cancellation) are wrapped.
package components
