// Package adjacency builds the direct-connection graph between islands.
//
// What
//
//   - Builder assigns each added rectangle the next 1-based ID and compares it
//     against every earlier rectangle with geometry.ConnectsWith.
//   - Each positive comparison records one undirected edge in a core.Graph.
//   - Because the predicate is symmetric, comparing rectangle k against IDs
//     1..k-1 only is enough: once all N rectangles are added the graph holds
//     the full adjacency relation.
//
// Complexity
//
//   - Add(k-th rectangle): O(k) predicate evaluations.
//   - Build(N rectangles): N(N-1)/2 evaluations, O(N²) time, O(N+E) memory.
//
// Errors
//
//	The builder never rejects coordinates. Rectangles breaking the Y-down
//	convention are stored as-is and logged at warn level.
package adjacency
