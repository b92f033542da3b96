package geometry

import "fmt"

// Point is an integer coordinate pair.
type Point struct {
	X, Y int
}

// Rect is an immutable axis-aligned rectangle.
// (Ax, Ay) is the top-left corner and (Bx, By) the bottom-right corner.
type Rect struct {
	Ax, Ay int // top-left
	Bx, By int // bottom-right
}

// NewRect builds a Rect from its top-left and bottom-right corners.
func NewRect(ax, ay, bx, by int) Rect {
	return Rect{Ax: ax, Ay: ay, Bx: bx, By: by}
}

// ConnectsWith reports whether a and b overlap on both axes using closed
// intervals, so rectangles sharing only an edge or a corner are connected.
//
//	a.left <= b.right && a.right >= b.left && a.top >= b.bottom && a.bottom <= b.top
//
// The relation is symmetric: ConnectsWith(a, b) == ConnectsWith(b, a).
func ConnectsWith(a, b Rect) bool {
	return a.Ax <= b.Bx && a.Bx >= b.Ax && a.Ay >= b.By && a.By <= b.Ay
}

// ConnectsWith is the method form of the package-level predicate.
func (r Rect) ConnectsWith(other Rect) bool {
	return ConnectsWith(r, other)
}

// Contains reports whether other lies entirely within r (boundaries included).
func (r Rect) Contains(other Rect) bool {
	return other.Ax >= r.Ax && other.Bx <= r.Bx && other.Ay <= r.Ay && other.By >= r.By
}

// Width returns Bx - Ax.
func (r Rect) Width() int { return r.Bx - r.Ax }

// Height returns Ay - By (positive for rectangles following the Y-down convention).
func (r Rect) Height() int { return r.Ay - r.By }

// Center returns the integer midpoint of r; halves are truncated.
func (r Rect) Center() Point {
	return Point{X: r.Ax + r.Width()/2, Y: r.By + r.Height()/2}
}

// Normalized reports whether r follows the coordinate convention
// (Ax <= Bx and Ay >= By).
func (r Rect) Normalized() bool {
	return r.Ax <= r.Bx && r.Ay >= r.By
}

// String renders r in the same token order used by the input format.
func (r Rect) String() string {
	return fmt.Sprintf("%d %d %d %d", r.Ax, r.Ay, r.Bx, r.By)
}
