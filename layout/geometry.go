// Package layout implements VSRTL's place-and-route engine: a grid
// model, topological and min-cut placers, a connectivity-graph
// builder, an A* router, and lane assignment, grounded on the
// original_source/eda package.
package layout

// Edge names one side of a rectangle, matching
// original_source/eda/geometry.h's Edge enum. The zero Edge is
// edgeUnassigned: a GridPort holds it until SetPortPosition places the
// port on a side.
type Edge int

const (
	edgeUnassigned Edge = iota
	Top
	Bottom
	Left
	Right
)

// Direction is the orientation of a Line.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

// Corner names one corner of a rectangle.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft
)

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned integer rectangle, left/top inclusive,
// right/bottom exclusive — matching Qt's QRect semantics that the
// original builds on.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Bottom() int { return r.Y + r.H }

// TopLeft returns the rectangle's top-left corner point.
func (r Rect) TopLeft() Point { return Point{r.X, r.Y} }

// TopRight returns the rectangle's top-right corner point.
func (r Rect) TopRight() Point { return Point{r.Right(), r.Y} }

// BottomLeft returns the rectangle's bottom-left corner point.
func (r Rect) BottomLeft() Point { return Point{r.X, r.Bottom()} }

// BottomRight returns the rectangle's bottom-right corner point.
func (r Rect) BottomRight() Point { return Point{r.Right(), r.Bottom()} }

// Contains reports whether p falls within the rectangle (right/bottom
// exclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X < r.Right() && p.Y >= r.Top() && p.Y < r.Bottom()
}

// Intersects reports whether r and o overlap by a positive area.
func (r Rect) Intersects(o Rect) bool {
	return r.Left() < o.Right() && o.Left() < r.Right() && r.Top() < o.Bottom() && o.Top() < r.Bottom()
}

// BoundingRect returns the smallest rectangle containing both r and o.
func BoundingRect(r, o Rect) Rect {
	left := min(r.Left(), o.Left())
	top := min(r.Top(), o.Top())
	right := max(r.Right(), o.Right())
	bottom := max(r.Bottom(), o.Bottom())
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}
}

// BoundingRectOfRects returns the smallest rectangle containing every
// rect in rs. Grounded on
// original_source/eda/utilities.h::boundingRectOfRects.
func BoundingRectOfRects(rs []Rect) Rect {
	var br Rect
	for i, r := range rs {
		if i == 0 {
			br = r
			continue
		}
		br = BoundingRect(br, r)
	}
	return br
}

// Line is an orthogonal line segment — either purely horizontal or
// purely vertical — grounded on original_source/eda/geometry.h::Line.
type Line struct {
	P1, P2 Point
}

// NewLine constructs a Line, panicking if p1 and p2 are not axis-
// aligned, matching the C++ source's Q_ASSERT.
func NewLine(p1, p2 Point) Line {
	if p1.X != p2.X && p1.Y != p2.Y {
		panic("layout: Line endpoints are not axis-aligned")
	}
	return Line{P1: p1, P2: p2}
}

// Orientation reports whether the line runs horizontally or
// vertically.
func (l Line) Orientation() Direction {
	if l.P1.X == l.P2.X {
		return Vertical
	}
	return Horizontal
}

// IntersectKind selects whether Intersect requires lines to properly
// cross or allows one to terminate on top of the other.
type IntersectKind int

const (
	// Cross requires the lines to strictly cross.
	Cross IntersectKind = iota
	// OnEdge allows a line to terminate exactly on the other.
	OnEdge
)

// Intersect finds the point at which l and o cross, per kind.
// Grounded on original_source/eda/geometry.h::Line::intersect.
func (l Line) Intersect(o Line, kind IntersectKind) (Point, bool) {
	var hz, vt Line
	if l.Orientation() == Horizontal {
		hz, vt = l, o
	} else {
		hz, vt = o, l
	}

	var hzHit, vtHit bool
	if kind == Cross {
		hzHit = hz.P1.X < vt.P1.X && vt.P1.X < hz.P2.X
		vtHit = vt.P1.Y < hz.P1.Y && hz.P1.Y < vt.P2.Y
	} else {
		hzHit = hz.P1.X <= vt.P1.X && vt.P1.X <= hz.P2.X
		vtHit = vt.P1.Y <= hz.P1.Y && hz.P1.Y <= vt.P2.Y
	}

	if hzHit && vtHit {
		return Point{X: vt.P1.X, Y: hz.P1.Y}, true
	}
	return Point{}, false
}

// EdgeOf returns the Line making up the named edge of r, matching
// original_source/eda/geometry.h::getEdge.
func EdgeOf(r Rect, e Edge) Line {
	switch e {
	case Top:
		return Line{r.TopLeft(), r.TopRight()}
	case Bottom:
		return Line{r.BottomLeft(), r.BottomRight()}
	case Left:
		return Line{r.TopLeft(), r.BottomLeft()}
	case Right:
		return Line{r.TopRight(), r.BottomRight()}
	default:
		panic("layout: unknown edge")
	}
}

// RoundUp rounds v up to the nearest multiple of m.
func RoundUp(v, m int) int {
	r := v % m
	if r == 0 {
		return v
	}
	return v + m - r
}

// RoundNear rounds v to the nearest multiple of m, ties rounding up.
func RoundNear(v, m int) int {
	return ((v + m/2) / m) * m
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
