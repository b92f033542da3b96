// Package solver drives the island connectivity pipeline:
//
//	rectangles → adjacency graph → components → reachability table → answers
//
// Build runs the first three stages and returns only the reachability.Table;
// the rectangles and the adjacency graph are local to Build and become garbage
// as soon as it returns. Answer and Solve consult the table alone.
//
// Out-of-range queries fail the whole run: Answer stops at the first query
// whose row or column lies outside [1, N] and returns an error wrapping
// reachability.ErrQueryOutOfRange with the 1-based query index. No partial
// answers are produced.
//
// Naive and Path are reference helpers that keep the graph around: Naive
// answers a single query with a fresh breadth-first search and Path returns the
// chain of islands linking two islands. CrossCheck validates generated cases
// by re-answering every query with a depth-first walk.
package solver
