// Package geometry defines axis-aligned rectangles ("islands") and the
// closed-interval predicate that decides whether two of them are connected.
//
// What
//
//   - Rect stores a top-left corner (Ax, Ay) and a bottom-right corner (Bx, By).
//   - Coordinates follow a Y-down convention: Ay ≥ By and Ax ≤ Bx.
//   - ConnectsWith reports whether the projections of two rectangles overlap
//     on both axes, boundary contact included.
//
// Convention
//
//	   (Ax,Ay) ┌───────┐
//	           │       │
//	           └───────┘ (Bx,By)
//
//	The predicate is evaluated exactly as stated on the raw coordinates.
//	Rectangles that violate the convention are accepted; they simply produce
//	whatever overlap result the formula yields. Use Rect.Normalized to check.
//
// Complexity
//
//   - ConnectsWith, Contains, Width, Height, Center: O(1), no allocations.
package geometry
