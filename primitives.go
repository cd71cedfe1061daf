// github.com/cutkernel/planar - a 2D planar-region Boolean-geometry kernel

package planar

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Point is a location in the plane.
type Point = vec.Vec2

// Vector is a displacement or direction in the plane. Point and Vector
// share a representation, as is common in 2D kernels: a point is where
// you are, a vector is how far and which way.
type Vector = vec.Vec2

// cross returns the Z component of the 3D cross product of a and b,
// i.e. a.X*b.Y - a.Y*b.X. Positive when b is counter-clockwise from a.
func cross(a, b Vector) float64 {
	return a.X*b.Y - a.Y*b.X
}

// leftNormal returns the curve's left-hand perpendicular of a direction
// vector: the convention used throughout this kernel under which the
// normal points outward along a positively-oriented (CCW, positive-area)
// loop. Concretely this rotates d by -90°.
func leftNormal(d Vector) Vector {
	return Vector{X: d.Y, Y: -d.X}
}

// Line2 is an infinite line given by an origin point and a unit
// direction vector.
type Line2 struct {
	Origin Point
	Dir    Vector // must be a unit vector
}

// NewLine2 returns the line through a and b. Panics if a and b coincide.
func NewLine2(a, b Point) Line2 {
	d := b.Sub(a)
	length := d.Length()
	precondition(length > DistanceEpsilon, "NewLine2: points coincide")
	return Line2{Origin: a, Dir: d.Mul(1 / length)}
}

// Normal returns the line's left-hand unit normal.
func (l Line2) Normal() Vector {
	return leftNormal(l.Dir)
}

// SignedDistance returns the signed perpendicular distance from p to the
// line: positive on the normal side.
func (l Line2) SignedDistance(p Point) float64 {
	return l.Normal().Dot(p.Sub(l.Origin))
}

// IsCollinearWith reports whether other lies along the same infinite
// line as l (same or opposite direction, origin on l).
func (l Line2) IsCollinearWith(other Line2) bool {
	if math.Abs(cross(l.Dir, other.Dir)) > NumericZero {
		return false
	}
	return math.Abs(l.SignedDistance(other.Origin)) < DistanceEpsilon
}

// OffsetBy returns a new line shifted by d along its normal.
func (l Line2) OffsetBy(d float64) Line2 {
	return Line2{Origin: l.Origin.Add(l.Normal().Mul(d)), Dir: l.Dir}
}

// IntersectParams returns the parameters (t on l, s on other) at which
// the two infinite lines meet, i.e. l.Origin + t*l.Dir ==
// other.Origin + s*other.Dir. ok is false when the lines are parallel
// (determinant below NumericZero).
func (l Line2) IntersectParams(other Line2) (t, s float64, ok bool) {
	det := cross(l.Dir, other.Dir)
	if math.Abs(det) < NumericZero {
		return 0, 0, false
	}
	diff := other.Origin.Sub(l.Origin)
	t = cross(diff, other.Dir) / det
	s = cross(diff, l.Dir) / det
	return t, s, true
}

// PointAt evaluates the line at parameter t.
func (l Line2) PointAt(t float64) Point {
	return l.Origin.Add(l.Dir.Mul(t))
}

// Ray2 is a line restricted to nonnegative parameters.
type Ray2 struct {
	Line2
}

// NewRay2 returns the ray starting at origin in direction dir (need not
// be a unit vector; it is normalized).
func NewRay2(origin Point, dir Vector) Ray2 {
	length := dir.Length()
	precondition(length > DistanceEpsilon, "NewRay2: zero-length direction")
	return Ray2{Line2{Origin: origin, Dir: dir.Mul(1 / length)}}
}

// Contains reports whether parameter t lies on the ray (t >= -epsilon).
func (r Ray2) Contains(t float64) bool {
	return t >= -DistanceEpsilon
}

// Circle2 is a circle given by center and radius.
type Circle2 struct {
	Center Point
	Radius float64
}

// NewCircleFrom3Points constructs the circle through three points.
// Returns ErrDegenerateGeometry if the points are (near-)collinear. A
// caller that hits this error is expected to substitute a nearby
// non-collinear point (e.g. a different sample point) or abandon the
// construction; this constructor does not retry on its own.
func NewCircleFrom3Points(a, b, c Point) (Circle2, error) {
	ax, ay := a.X, a.Y
	bx, by := b.X, b.Y
	cx, cy := c.X, c.Y

	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if math.Abs(d) < NumericZero {
		return Circle2{}, ErrDegenerateGeometry
	}

	a2 := ax*ax + ay*ay
	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy

	ux := (a2*(by-cy) + b2*(cy-ay) + c2*(ay-by)) / d
	uy := (a2*(cx-bx) + b2*(ax-cx) + c2*(bx-ax)) / d

	center := Point{X: ux, Y: uy}
	radius := center.Sub(a).Length()
	if radius < DistanceEpsilon {
		return Circle2{}, ErrDegenerateGeometry
	}
	return Circle2{Center: center, Radius: radius}, nil
}

// Aabb2 is an axis-aligned bounding box, using the same LLx/LLy/URx/URy
// field names as seehuhn.de/go/geom/rect.Rect (lower-left, upper-right).
type Aabb2 rect.Rect

// EmptyAabb2 returns the empty-box sentinel: unioning it with any box
// returns that box unchanged, so it serves as the identity element for
// Union.
func EmptyAabb2() Aabb2 {
	return Aabb2{LLx: math.Inf(1), LLy: math.Inf(1), URx: math.Inf(-1), URy: math.Inf(-1)}
}

// IsEmpty reports whether the box is the empty sentinel (or otherwise
// inverted).
func (b Aabb2) IsEmpty() bool {
	return b.LLx > b.URx || b.LLy > b.URy
}

// BoxOf returns the tight bounding box of the given points.
func BoxOf(pts ...Point) Aabb2 {
	b := EmptyAabb2()
	for _, p := range pts {
		b = b.UnionPoint(p)
	}
	return b
}

// UnionPoint returns the smallest box containing b and p.
func (b Aabb2) UnionPoint(p Point) Aabb2 {
	if b.IsEmpty() {
		return Aabb2{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
	}
	return Aabb2{
		LLx: min(b.LLx, p.X), LLy: min(b.LLy, p.Y),
		URx: max(b.URx, p.X), URy: max(b.URy, p.Y),
	}
}

// Union returns the smallest box containing both b and other. The empty
// sentinel is the identity: Union(empty) == b.
func (b Aabb2) Union(other Aabb2) Aabb2 {
	if b.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return b
	}
	return Aabb2{
		LLx: min(b.LLx, other.LLx), LLy: min(b.LLy, other.LLy),
		URx: max(b.URx, other.URx), URy: max(b.URy, other.URy),
	}
}

// Inflate returns the box expanded by d on every side.
func (b Aabb2) Inflate(d float64) Aabb2 {
	if b.IsEmpty() {
		return b
	}
	return Aabb2{LLx: b.LLx - d, LLy: b.LLy - d, URx: b.URx + d, URy: b.URy + d}
}

// Intersects reports whether b and other overlap (touching counts as
// overlap).
func (b Aabb2) Intersects(other Aabb2) bool {
	if b.IsEmpty() || other.IsEmpty() {
		return false
	}
	return b.LLx <= other.URx && other.LLx <= b.URx && b.LLy <= other.URy && other.LLy <= b.URy
}

// Corners returns the box's four corners in counter-clockwise order
// starting at the lower-left.
func (b Aabb2) Corners() [4]Point {
	return [4]Point{
		{X: b.LLx, Y: b.LLy},
		{X: b.URx, Y: b.LLy},
		{X: b.URx, Y: b.URy},
		{X: b.LLx, Y: b.URy},
	}
}

// ClosestDistance returns the distance from p to the closest point of b
// (zero if p is inside b).
func (b Aabb2) ClosestDistance(p Point) float64 {
	dx := 0.0
	if p.X < b.LLx {
		dx = b.LLx - p.X
	} else if p.X > b.URx {
		dx = p.X - b.URx
	}
	dy := 0.0
	if p.Y < b.LLy {
		dy = b.LLy - p.Y
	} else if p.Y > b.URy {
		dy = p.Y - b.URy
	}
	return math.Hypot(dx, dy)
}

// FarthestDistance returns the distance from p to the farthest corner of b.
func (b Aabb2) FarthestDistance(p Point) float64 {
	dx := max(math.Abs(p.X-b.LLx), math.Abs(p.X-b.URx))
	dy := max(math.Abs(p.Y-b.LLy), math.Abs(p.Y-b.URy))
	return math.Hypot(dx, dy)
}

// ClosestBoxDistance returns the distance between the closest points of
// b and other (zero if they overlap).
func (b Aabb2) ClosestBoxDistance(other Aabb2) float64 {
	dx := 0.0
	if other.URx < b.LLx {
		dx = b.LLx - other.URx
	} else if other.LLx > b.URx {
		dx = other.LLx - b.URx
	}
	dy := 0.0
	if other.URy < b.LLy {
		dy = b.LLy - other.URy
	} else if other.LLy > b.URy {
		dy = other.LLy - b.URy
	}
	return math.Hypot(dx, dy)
}
