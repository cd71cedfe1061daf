// github.com/cutkernel/planar - a 2D planar-region Boolean-geometry kernel

package planar

import "math"

// ElementKind distinguishes the two curve variants. Element is a sealed
// sum over {Segment, Arc} with dispatch by this tag, not a runtime class
// hierarchy.
type ElementKind int

const (
	KindSegment ElementKind = iota
	KindArc
)

func (k ElementKind) String() string {
	if k == KindArc {
		return "arc"
	}
	return "segment"
}

// Element is a piece of a piecewise-smooth oriented 1-manifold: either a
// straight segment or a circular arc, sharing one parametric contract
//. Index is the id of the owning loop node and is mutable;
// callers must not retain an Element across a mutation of its owning
// loop.
type Element struct {
	Kind  ElementKind
	Start Point
	End   Point
	Index int

	// Arc-only fields; zero for Kind == KindSegment.
	Center Point
	Radius float64
	Theta0 float64 // start angle
	Sweep  float64 // signed sweep, CCW positive; |Sweep| <= 2*pi
}

// NewSegment returns a straight element from a to b. Panics if a and b
// coincide.
func NewSegment(a, b Point, index int) Element {
	precondition(a.Sub(b).Length() > DistanceEpsilon, "NewSegment: zero-length segment")
	return Element{Kind: KindSegment, Start: a, End: b, Index: index}
}

// NewArc returns a circular arc centered at center with the given radius,
// start angle theta0 (radians) and signed sweep (CCW positive, |sweep| <=
// 2*pi). Panics if radius <= 0.
func NewArc(center Point, radius, theta0, sweep float64, index int) Element {
	precondition(radius > 0, "NewArc: non-positive radius")
	start := center.Add(Vector{X: math.Cos(theta0), Y: math.Sin(theta0)}.Mul(radius))
	endAngle := theta0 + sweep
	end := center.Add(Vector{X: math.Cos(endAngle), Y: math.Sin(endAngle)}.Mul(radius))
	return Element{
		Kind: KindArc, Start: start, End: end, Index: index,
		Center: center, Radius: radius, Theta0: theta0, Sweep: sweep,
	}
}

// IsCcw reports whether an arc sweeps counter-clockwise. Always false for
// segments.
func (e Element) IsCcw() bool {
	return e.Kind == KindArc && e.Sweep > 0
}

// Length returns the element's arc length.
func (e Element) Length() float64 {
	if e.Kind == KindSegment {
		return e.Start.Sub(e.End).Length()
	}
	return e.Radius * math.Abs(e.Sweep)
}

// Bounds returns the element's axis-aligned bounding box, inflated by
// DistanceEpsilon.
func (e Element) Bounds() Aabb2 {
	if e.Kind == KindSegment {
		return BoxOf(e.Start, e.End).Inflate(DistanceEpsilon)
	}

	box := BoxOf(e.Start, e.End)
	lo, hi := e.angleRange()
	// extrema of cos/sin occur at multiples of pi/2
	for _, k := range []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2, 2 * math.Pi, -math.Pi / 2, -math.Pi} {
		if angleInRange(k, lo, hi) {
			box = box.UnionPoint(e.Center.Add(Vector{X: math.Cos(k), Y: math.Sin(k)}.Mul(e.Radius)))
		}
	}
	return box.Inflate(DistanceEpsilon)
}

// angleRange returns [lo, hi] with lo <= hi spanning the arc's sweep,
// regardless of sweep sign.
func (e Element) angleRange() (lo, hi float64) {
	a, b := e.Theta0, e.Theta0+e.Sweep
	if a > b {
		a, b = b, a
	}
	return a, b
}

// angleInRange reports whether angle k (or an equivalent angle shifted by
// a multiple of 2*pi) lies in [lo, hi].
func angleInRange(k, lo, hi float64) bool {
	for _, shift := range []float64{-2 * math.Pi, 0, 2 * math.Pi} {
		a := k + shift
		if a >= lo-NumericZero && a <= hi+NumericZero {
			return true
		}
	}
	return false
}

// IsThetaOnArc reports whether angle theta (radians, any representative)
// lies within the arc's sweep [theta0, theta0+sweep].
func (e Element) IsThetaOnArc(theta float64) bool {
	lo, hi := e.angleRange()
	tol := angleTolerance(e.Radius)
	for _, shift := range []float64{-2 * math.Pi, 0, 2 * math.Pi} {
		a := theta + shift
		if a >= lo-tol && a <= hi+tol {
			return true
		}
	}
	return false
}

// angleAtLength returns the angle at arc length l along an arc.
func (e Element) angleAtLength(l float64) float64 {
	dir := 1.0
	if e.Sweep < 0 {
		dir = -1.0
	}
	return e.Theta0 + dir*(l/e.Radius)
}

// SurfacePoint is a point on an element's surface, with its tangent and
// outward normal.
type SurfacePoint struct {
	Point   Point
	Tangent Vector
	Normal  Vector
}

// AtLength evaluates the element at arc length l, l in [0, Length()].
func (e Element) AtLength(l float64) SurfacePoint {
	if e.Kind == KindSegment {
		length := e.Length()
		t := e.End.Sub(e.Start).Mul(1 / length)
		var pt Point
		if length < DistanceEpsilon {
			pt = e.Start
		} else {
			pt = e.Start.Add(t.Mul(l))
		}
		return SurfacePoint{Point: pt, Tangent: t, Normal: leftNormal(t)}
	}

	angle := e.angleAtLength(l)
	radial := Vector{X: math.Cos(angle), Y: math.Sin(angle)}
	pt := e.Center.Add(radial.Mul(e.Radius))
	dir := 1.0
	if e.Sweep < 0 {
		dir = -1.0
	}
	tangent := Vector{X: -radial.Y, Y: radial.X}.Mul(dir)
	return SurfacePoint{Point: pt, Tangent: tangent, Normal: leftNormal(tangent)}
}

// Position is a parametric location on an element: arc length L along
// Elem. The zero value with Elem == nil is the "empty" position.
type Position struct {
	L    float64
	Elem *Element
}

// IsEmpty reports whether the position has no backing element.
func (p Position) IsEmpty() bool {
	return p.Elem == nil
}

// Surface evaluates the position's element at L.
func (p Position) Surface() SurfacePoint {
	return p.Elem.AtLength(p.L)
}

// CrossProductWedge returns Start×End, used in the shoelace
// area computation: the chord wedge for a segment, or the chord wedge
// plus a circular-cap correction for an arc so that full circles
// evaluate to the signed disc area.
func (e Element) CrossProductWedge() float64 {
	chord := cross(e.Start, e.End)
	if e.Kind == KindSegment {
		return chord
	}
	// The shoelace sum over chord wedges computes the area of the
	// polygon inscribed by chords; the circular segment between each
	// chord and its arc contributes an extra signed area of
	// r^2*(theta - sin(theta))/2; since shoelace already divides by
	// 2 at the end, correct by adding r^2*(sweep - sin(sweep)) here so
	// that Area() = sum(wedge)/2 includes the cap contribution exactly.
	return chord + e.Radius*e.Radius*(e.Sweep-math.Sin(e.Sweep))
}

// Closest returns the position on e closest to p. e must be a pointer
// into the backing storage the caller intends Position.Elem to identify
// (a loop's materialized element slice), since positions are compared by
// element identity elsewhere in the kernel.
func (e *Element) Closest(p Point) Position {
	if e.Kind == KindSegment {
		length := e.Length()
		if length < DistanceEpsilon {
			return Position{L: 0, Elem: e}
		}
		t := e.End.Sub(e.Start).Mul(1 / length)
		l := t.Dot(p.Sub(e.Start))
		l = max(0, min(length, l))
		return Position{L: l, Elem: e}
	}

	diff := p.Sub(e.Center)
	theta := math.Atan2(diff.Y, diff.X)
	lo, hi := e.angleRange()
	clamped := theta
	for _, shift := range []float64{-2 * math.Pi, 0, 2 * math.Pi} {
		a := theta + shift
		if a >= lo && a <= hi {
			clamped = a
			break
		}
	}
	if clamped < lo {
		// pick whichever endpoint is nearer
		if math.Abs(normalizeAngleDiff(theta, lo)) < math.Abs(normalizeAngleDiff(theta, hi)) {
			clamped = lo
		} else {
			clamped = hi
		}
	} else if clamped > hi {
		clamped = hi
	}

	dir := 1.0
	if e.Sweep < 0 {
		dir = -1.0
	}
	l := dir * (clamped - e.Theta0)
	l = max(0, min(e.Length(), l))
	return Position{L: l, Elem: e}
}

// normalizeAngleDiff returns a-b wrapped into (-pi, pi].
func normalizeAngleDiff(a, b float64) float64 {
	d := a - b
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

// SplitBefore returns the element covering [0, l] of e, i.e. the part
// before length l. Returns ok=false if that prefix would be a
// zero-length piece (within DistanceEpsilon).
func (e Element) SplitBefore(l float64) (Element, bool) {
	if l < DistanceEpsilon {
		return Element{}, false
	}
	return e.subrange(0, l), true
}

// SplitAfter returns the element covering [l, Length()] of e, i.e. the
// part after length l. Returns ok=false if that suffix would be a
// zero-length piece (within DistanceEpsilon).
func (e Element) SplitAfter(l float64) (Element, bool) {
	length := e.Length()
	if length-l < DistanceEpsilon {
		return Element{}, false
	}
	return e.subrange(l, length), true
}

// subrange returns the portion of e between arc lengths lo and hi.
func (e Element) subrange(lo, hi float64) Element {
	start := e.AtLength(lo)
	end := e.AtLength(hi)
	if e.Kind == KindSegment {
		return Element{Kind: KindSegment, Start: start.Point, End: end.Point, Index: e.Index}
	}
	dir := 1.0
	if e.Sweep < 0 {
		dir = -1.0
	}
	theta0 := e.Theta0 + dir*lo/e.Radius
	sweep := dir * (hi - lo) / e.Radius
	return Element{
		Kind: KindArc, Start: start.Point, End: end.Point, Index: e.Index,
		Center: e.Center, Radius: e.Radius, Theta0: theta0, Sweep: sweep,
	}
}

// Reversed returns an element traversing from End to Start.
func (e Element) Reversed() Element {
	if e.Kind == KindSegment {
		return Element{Kind: KindSegment, Start: e.End, End: e.Start, Index: e.Index}
	}
	return Element{
		Kind: KindArc, Start: e.End, End: e.Start, Index: e.Index,
		Center: e.Center, Radius: e.Radius, Theta0: e.Theta0 + e.Sweep, Sweep: -e.Sweep,
	}
}

// OffsetBy returns a new element whose surface is offset by d along its
// normal direction. For an arc, the radius shrinks or grows depending on
// which way the normal points relative to the center; if d would push
// the radius to non-positive (the arc would flip orientation through its
// center), this is treated as caller error and panics.
func (e Element) OffsetBy(d float64) Element {
	if e.Kind == KindSegment {
		n := e.AtLength(0).Normal
		return Element{Kind: KindSegment, Start: e.Start.Add(n.Mul(d)), End: e.End.Add(n.Mul(d)), Index: e.Index}
	}

	// The normal at any point of a CCW arc points away from the center
	// (see leftNormal); for a CW arc it points toward the center. So the
	// radius change is +d for CCW and -d for CW.
	var newRadius float64
	if e.IsCcw() {
		newRadius = e.Radius + d
	} else {
		newRadius = e.Radius - d
	}
	precondition(newRadius > DistanceEpsilon, "OffsetBy: offset flips arc through its center")
	return Element{
		Kind: KindArc, Index: e.Index,
		Center: e.Center, Radius: newRadius, Theta0: e.Theta0, Sweep: e.Sweep,
		Start: e.Center.Add(Vector{X: math.Cos(e.Theta0), Y: math.Sin(e.Theta0)}.Mul(newRadius)),
		End:   e.Center.Add(Vector{X: math.Cos(e.Theta0 + e.Sweep), Y: math.Sin(e.Theta0 + e.Sweep)}.Mul(newRadius)),
	}
}

// IntersectionPair is a matched pair of positions on two elements that
// meet at the same world point.
type IntersectionPair struct {
	First  Position
	Second Position
}

// Point returns the shared world point of the pair.
func (p IntersectionPair) Point() Point {
	return p.First.Surface().Point
}

// Swapped returns the pair with First and Second exchanged.
func (p IntersectionPair) Swapped() IntersectionPair {
	return IntersectionPair{First: p.Second, Second: p.First}
}

// dotSign returns first.Tangent . second.Normal at the intersection.
func (p IntersectionPair) dotSign() float64 {
	fs := p.First.Surface()
	ss := p.Second.Surface()
	return fs.Tangent.Dot(ss.Normal)
}

// FirstExitsSecond reports whether, walking along First through this
// intersection, the curve exits the region bounded by Second.
func (p IntersectionPair) FirstExitsSecond() bool {
	return p.dotSign() > 0 && p.First.L < p.First.Elem.Length()-DistanceEpsilon
}

// FirstEntersSecond reports the mirror condition: First enters Second's region.
func (p IntersectionPair) FirstEntersSecond() bool {
	return p.dotSign() < 0 && p.First.L < p.First.Elem.Length()-DistanceEpsilon
}

// secondDotSign returns second.Tangent . first.Normal.
func (p IntersectionPair) secondDotSign() float64 {
	fs := p.First.Surface()
	ss := p.Second.Surface()
	return ss.Tangent.Dot(fs.Normal)
}

// SecondExitsFirst is the mirror of FirstExitsSecond.
func (p IntersectionPair) SecondExitsFirst() bool {
	return p.secondDotSign() > 0 && p.Second.L < p.Second.Elem.Length()-DistanceEpsilon
}

// SecondEntersFirst is the mirror of FirstEntersSecond.
func (p IntersectionPair) SecondEntersFirst() bool {
	return p.secondDotSign() < 0 && p.Second.L < p.Second.Elem.Length()-DistanceEpsilon
}

// IsEquivalentTo reports whether p and other reference the same
// (unordered) pair of elements at coincident points, within
// DistanceEpsilon.
func (p IntersectionPair) IsEquivalentTo(other IntersectionPair) bool {
	samePoint := func(a, b IntersectionPair) bool {
		return a.Point().Sub(b.Point()).Length() < DistanceEpsilon
	}
	direct := p.First.Elem == other.First.Elem && p.Second.Elem == other.Second.Elem
	crossed := p.First.Elem == other.Second.Elem && p.Second.Elem == other.First.Elem
	return (direct || crossed) && samePoint(p, other)
}
