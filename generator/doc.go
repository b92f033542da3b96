// Package generator produces random, reproducible island connectivity
// problems for testing and benchmarking.
//
// Every generated rectangle respects the Y-down convention (Ax ≤ Bx, Ay ≥ By)
// and lies inside [0, Bounds] on both axes; every query references existing
// islands. The same options and seed always yield the same Problem.
//
// Options:
//
//   - WithSeed(s):      RNG seed; 0 selects a fixed default.
//   - WithIslands(n):   number of islands, n ≥ 0.
//   - WithQueries(q):   number of queries, q ≥ 0 (requires n ≥ 1 when q > 0).
//   - WithBounds(b):    coordinate range [0, b], b ≥ 1.
//   - WithMaxSide(s):   maximum rectangle width/height, s ≥ 0.
//
// Option constructors panic on negative or meaningless values; Generate
// returns ErrNoIslandsToQuery when queries are requested over zero islands.
package generator
