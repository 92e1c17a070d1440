package grid

import "math"

// Point is a grid coordinate
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p+o
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p-o
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// DistanceTo is the Euclidean distance between two points
func (p Point) DistanceTo(o Point) float64 {
	dx := float64(p.X - o.X)
	dy := float64(p.Y - o.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect is an axis-aligned rectangle. Its footprint is [X1,X2) x [Y1,Y2),
// while Intersects treats the far edges as inclusive so that rooms sharing
// an edge collide.
type Rect struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// WithSize builds a rect from its top-left corner and size
func WithSize(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Width is |X2-X1|
func (r Rect) Width() int {
	return abs(r.X2 - r.X1)
}

// Height is |Y2-Y1|
func (r Rect) Height() int {
	return abs(r.Y2 - r.Y1)
}

// Center rounds toward the top-left
func (r Rect) Center() Point {
	return Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Contains reports whether p is inside the footprint
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X1 && p.X < r.X2 && p.Y >= r.Y1 && p.Y < r.Y2
}

// Intersects reports overlap, counting touching edges
func (r Rect) Intersects(o Rect) bool {
	return r.X1 <= o.X2 && r.X2 >= o.X1 && r.Y1 <= o.Y2 && r.Y2 >= o.Y1
}

// Grow inflates every side by n
func (r Rect) Grow(n int) Rect {
	return Rect{X1: r.X1 - n, Y1: r.Y1 - n, X2: r.X2 + n, Y2: r.Y2 + n}
}

// Each calls fn for every point in the footprint, row by row
func (r Rect) Each(fn func(Point)) {
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			fn(Point{X: x, Y: y})
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
