// Package problem reads and writes the whitespace-separated text format of an
// island connectivity problem.
//
// Format
//
//	N Q
//	Ax Ay Bx By      ← repeated N times, island IDs 1..N in this order
//	row col          ← repeated Q times
//
// Any whitespace separates tokens; line breaks carry no meaning. Tokens after
// the last query are ignored.
//
// Answers are written one per line, "YES" or "NO", in query order.
//
// Errors (fail fast, first problem wins)
//
//   - ErrInvalidCount: N or Q missing, not an integer, or negative. Nothing
//     after the counts is read.
//   - ErrMalformedRectangle: a coordinate is missing or not an integer.
//   - ErrMalformedQuery: a query ID is missing or not an integer.
//   - ErrRead: the underlying reader failed.
//
// Range checks on query IDs are not done here; see reachability.ErrQueryOutOfRange.
package problem
