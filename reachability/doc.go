// Package reachability stores the precomputed "same component?" relation as a
// dense boolean matrix, answering each query in O(1).
//
// Layout
//
//	Table is (N+1)×(N+1), row-major in one flat []bool. Row and column 0 are
//	reserved so that island IDs index the matrix directly.
//
//	      0  1  2  3
//	   0  ·  ·  ·  ·
//	   1  ·  T  T  F
//	   2  ·  T  T  F
//	   3  ·  F  F  T
//
// Guarantees
//
//   - Reflexive: At(i, i) is true for every i in [1, N], even for IDs that no
//     component lists.
//   - Symmetric and transitive: cells are set for every ordered pair inside a
//     component, so the relation is exactly component membership.
//   - Immutable once returned by FromPartition; the Table holds no reference to
//     the graph or the rectangles it was built from.
//
// Complexity
//
//   - FromPartition: O(N²) memory, O(N + Σ k²) time over component sizes k.
//   - Reachable: O(1).
//
// Errors
//
//   - ErrInvalidSize: negative N.
//   - ErrQueryOutOfRange: row or column outside [1, N].
package reachability
