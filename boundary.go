// github.com/cutkernel/planar - a 2D planar-region Boolean-geometry kernel

package planar

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
)

// BoundaryLoop is a single closed, piecewise-smooth oriented curve: a
// circular ring of Elements. Its orientation carries meaning throughout
// the kernel: positive area means the loop's interior
// lies to the left of travel (outward normals point away from the
// interior), negative area means the opposite.
//
// Area, bounding box and bounding-volume hierarchy are computed lazily
// and cached; any mutation of the ring invalidates all three together.
type BoundaryLoop struct {
	ring *loopContainer

	elems      []Element
	elemPtrs   []*Element
	elemsValid bool

	bvh      *BVH
	bvhValid bool

	area      float64
	areaValid bool

	bounds      Aabb2
	boundsValid bool
}

func newEmptyBoundaryLoop() *BoundaryLoop {
	lp := &BoundaryLoop{ring: newLoopContainer()}
	lp.ring.onItemChanged = lp.invalidate
	return lp
}

// NewBoundaryLoop returns an empty loop with no elements.
func NewBoundaryLoop() *BoundaryLoop {
	return newEmptyBoundaryLoop()
}

// NewLoopFromElements builds a loop from an ordered sequence of elements.
// Consecutive elements (including the wraparound pair) must share
// endpoints within DistanceEpsilon; violating this is a precondition
// failure.
func NewLoopFromElements(elems []Element) *BoundaryLoop {
	precondition(len(elems) > 0, "NewLoopFromElements: no elements")
	for i, e := range elems {
		next := elems[(i+1)%len(elems)]
		precondition(e.End.Sub(next.Start).Length() < DistanceEpsilon,
			"NewLoopFromElements: element %d does not connect to element %d", i, (i+1)%len(elems))
	}
	lp := newEmptyBoundaryLoop()
	for _, e := range elems {
		lp.ring.PushBack(e)
	}
	return lp
}

// NewLoopFromPoints builds a polygonal loop connecting pts in order, with
// a final segment closing pts[len-1] back to pts[0].
func NewLoopFromPoints(pts []Point) *BoundaryLoop {
	precondition(len(pts) >= 3, "NewLoopFromPoints: need at least 3 points")
	elems := make([]Element, len(pts))
	for i, p := range pts {
		next := pts[(i+1)%len(pts)]
		elems[i] = NewSegment(p, next, 0)
	}
	return NewLoopFromElements(elems)
}

// NewPolygonLoop is an alias of NewLoopFromPoints for callers building an
// explicit polygon boundary.
func NewPolygonLoop(pts []Point) *BoundaryLoop {
	return NewLoopFromPoints(pts)
}

// NewRectangleLoop returns the CCW (positive-area) rectangle with the
// given corners.
func NewRectangleLoop(llx, lly, urx, ury float64) *BoundaryLoop {
	precondition(urx > llx && ury > lly, "NewRectangleLoop: degenerate rectangle")
	return NewLoopFromPoints([]Point{
		{X: llx, Y: lly}, {X: urx, Y: lly}, {X: urx, Y: ury}, {X: llx, Y: ury},
	})
}

// NewCenteredRectangleLoop returns the CCW rectangle of the given width
// and height, centered at center.
func NewCenteredRectangleLoop(center Point, width, height float64) *BoundaryLoop {
	hw, hh := width/2, height/2
	return NewRectangleLoop(center.X-hw, center.Y-hh, center.X+hw, center.Y+hh)
}

// NewCircleLoop returns a loop consisting of a single full-circle arc,
// CCW (positive area), centered at center.
func NewCircleLoop(center Point, radius float64) *BoundaryLoop {
	precondition(radius > DistanceEpsilon, "NewCircleLoop: non-positive radius")
	lp := newEmptyBoundaryLoop()
	lp.ring.PushBack(NewArc(center, radius, 0, 2*math.Pi, 0))
	return lp
}

func (lp *BoundaryLoop) invalidate() {
	lp.elemsValid = false
	lp.bvhValid = false
	lp.areaValid = false
	lp.boundsValid = false
}

// Len returns the number of elements in the loop.
func (lp *BoundaryLoop) Len() int {
	return lp.ring.Len()
}

// Count is an alias of Len, matching the external property-accessor
// naming.
func (lp *BoundaryLoop) Count() int {
	return lp.Len()
}

// IsNullSet reports whether the loop is structurally empty: no nodes, or
// a single segment node.
func (lp *BoundaryLoop) IsNullSet() bool {
	if lp.Len() == 0 {
		return true
	}
	elems := lp.Elements()
	return len(elems) == 1 && elems[0].Kind == KindSegment
}

// Head returns the loop's first element, or nil if the loop is empty.
func (lp *BoundaryLoop) Head() *Element {
	elems := lp.Elements()
	if len(elems) == 0 {
		return nil
	}
	return elems[0]
}

// Tail returns the loop's last element, or nil if the loop is empty.
func (lp *BoundaryLoop) Tail() *Element {
	elems := lp.Elements()
	if len(elems) == 0 {
		return nil
	}
	return elems[len(elems)-1]
}

// Elements returns the loop's elements as pointers into a stable,
// cached backing array; the pointers remain valid until the next
// mutation of the loop.
func (lp *BoundaryLoop) Elements() []*Element {
	if !lp.elemsValid {
		ids := lp.ring.IDs()
		lp.elems = make([]Element, len(ids))
		for i, id := range ids {
			e := lp.ring.Element(id)
			e.Index = id
			lp.elems[i] = e
		}
		lp.elemPtrs = make([]*Element, len(lp.elems))
		for i := range lp.elems {
			lp.elemPtrs[i] = &lp.elems[i]
		}
		lp.elemsValid = true
	}
	return lp.elemPtrs
}

// BVH returns the loop's bounding-volume hierarchy, built lazily over
// Elements() and cached until the next mutation.
func (lp *BoundaryLoop) BVH() *BVH {
	if !lp.bvhValid {
		lp.bvh = BuildBVH(lp.Elements())
		lp.bvhValid = true
	}
	return lp.bvh
}

// Area returns the loop's signed area via the shoelace sum of each
// element's CrossProductWedge: positive for a counter-clockwise loop.
func (lp *BoundaryLoop) Area() float64 {
	if !lp.areaValid {
		sum := 0.0
		for _, e := range lp.Elements() {
			sum += e.CrossProductWedge()
		}
		lp.area = sum / 2
		lp.areaValid = true
	}
	return lp.area
}

// Bounds returns the loop's axis-aligned bounding box.
func (lp *BoundaryLoop) Bounds() Aabb2 {
	if !lp.boundsValid {
		lp.bounds = lp.BVH().Bounds()
		lp.boundsValid = true
	}
	return lp.bounds
}

// closestElement returns the position on the loop closest to p.
func (lp *BoundaryLoop) closestElement(p Point) Position {
	pos, ok := lp.BVH().ClosestElement(p)
	internalInvariant(ok, "BoundaryLoop.closestElement: empty loop")
	return pos
}

// OnBoundary reports whether p lies within DistanceEpsilon of the loop's
// curve.
func (lp *BoundaryLoop) OnBoundary(p Point) bool {
	if lp.Len() == 0 {
		return false
	}
	pos := lp.closestElement(p)
	return pos.Surface().Point.Sub(p).Length() < DistanceEpsilon
}

// IsPositive reports whether the loop's signed area is positive.
func (lp *BoundaryLoop) IsPositive() bool {
	return lp.Area() > 0
}

// rayHit is a candidate crossing of the enclosure ray with the loop,
// kept for the point-enclosure oracle below.
type rayHit struct {
	t    float64 // distance along the ray from its origin
	exit bool    // true: exit (dot > eps); false: entrance (dot < -eps)
}

// Encloses implements the point-enclosure oracle: cast an
// axis-aligned ray from p, classify each crossing by the sign of
// ray.direction . position.normal (exit if > epsilon, entrance if <
// -epsilon, discarded otherwise), collapse crossings that coincide
// within epsilon into one representative per side, and report p
// enclosed iff the entrance and exit counts differ. This correctly
// handles a ray grazing a vertex, cusp, or arc tangent, since such a
// graze either cancels (equal entrance/exit) or is discarded outright.
func (lp *BoundaryLoop) Encloses(p Point) bool {
	rayDir := Vector{X: 1, Y: 0}
	ray := NewLine2(p, p.Add(rayDir))

	var hits []rayHit
	for _, e := range lp.Elements() {
		for _, pos := range e.IntersectionsWithLine(ray) {
			if !withinRange(pos.L, e.Length()) {
				continue
			}
			sp := pos.Surface()
			t := sp.Point.Sub(p).Dot(rayDir)
			if t < -DistanceEpsilon {
				continue
			}
			dot := rayDir.Dot(sp.Normal)
			switch {
			case dot > DistanceEpsilon:
				hits = append(hits, rayHit{t: t, exit: true})
			case dot < -DistanceEpsilon:
				hits = append(hits, rayHit{t: t, exit: false})
			}
		}
	}

	entrances := countRayClusters(hits, false)
	exits := countRayClusters(hits, true)
	return entrances != exits
}

// countRayClusters counts the distinct clusters (within DistanceEpsilon
// along the ray) of hits on the given side.
func countRayClusters(hits []rayHit, exit bool) int {
	var ts []float64
	for _, h := range hits {
		if h.exit == exit {
			ts = append(ts, h.t)
		}
	}
	slices.Sort(ts)
	count := 0
	last := math.Inf(-1)
	for _, t := range ts {
		if t-last > DistanceEpsilon {
			count++
			last = t
		}
	}
	return count
}

// Includes reports whether p is included in the region described by the
// loop: for a positive (filled) loop this is the same as Encloses; for a
// negative (hole) loop it is the complement.
func (lp *BoundaryLoop) Includes(p Point) bool {
	return lp.Encloses(p) == lp.IsPositive()
}

// rebuild replaces the loop's contents with elems, in order, discarding
// the previous ring. Used by operations (Transform, Offset, cleanup
// passes) that compute a whole new element sequence at once.
func (lp *BoundaryLoop) rebuild(elems []Element) {
	lp.ring = newLoopContainer()
	lp.ring.onItemChanged = lp.invalidate
	for _, e := range elems {
		lp.ring.PushBack(e)
	}
	lp.invalidate()
}

// Copy returns an independent copy of the loop.
func (lp *BoundaryLoop) Copy() *BoundaryLoop {
	out := newEmptyBoundaryLoop()
	for _, e := range lp.Elements() {
		out.ring.PushBack(*e)
	}
	return out
}

// transformPoint applies an affine transform to elements by recomputing
// each element from its transformed control points. mirror indicates the
// transform reverses handedness (a mirror), which flips arc sweep sign
// and loop orientation; the mirrored loop is then reversed, so positive
// area still means CCW and the result keeps the sign of lp's area.
func (lp *BoundaryLoop) transformPoint(f func(Point) Point, mirror bool) *BoundaryLoop {
	elems := lp.Elements()
	out := make([]Element, len(elems))
	for i, e := range elems {
		if e.Kind == KindSegment {
			out[i] = NewSegment(f(e.Start), f(e.End), 0)
			continue
		}
		center := f(e.Center)
		radiusPoint := f(e.Center.Add(Vector{X: e.Radius, Y: 0}))
		radius := radiusPoint.Sub(center).Length()
		startOnCircle := f(e.Center.Add(Vector{X: math.Cos(e.Theta0), Y: math.Sin(e.Theta0)}.Mul(e.Radius))).Sub(center)
		theta0 := math.Atan2(startOnCircle.Y, startOnCircle.X)
		sweep := e.Sweep
		if mirror {
			sweep = -sweep
		}
		out[i] = NewArc(center, radius, theta0, sweep, 0)
	}
	result := newEmptyBoundaryLoop()
	for _, e := range out {
		result.ring.PushBack(e)
	}
	if mirror {
		return result.Reverse()
	}
	return result
}

// Translate returns a copy of the loop shifted by d.
func (lp *BoundaryLoop) Translate(d Vector) *BoundaryLoop {
	return lp.transformPoint(func(p Point) Point { return p.Add(d) }, false)
}

// Rotate returns a copy of the loop rotated by angle radians about
// center.
func (lp *BoundaryLoop) Rotate(center Point, angle float64) *BoundaryLoop {
	c, s := math.Cos(angle), math.Sin(angle)
	return lp.transformPoint(func(p Point) Point {
		v := p.Sub(center)
		return center.Add(Vector{X: c*v.X - s*v.Y, Y: s*v.X + c*v.Y})
	}, false)
}

// Transform returns a copy of the loop under the affine map m, applied
// the same way raster.go's CTM maps a user-space point to device space:
// x' = m[0]*x + m[2]*y + m[4], y' = m[1]*x + m[3]*y + m[5]. A
// handedness-reversing m (negative determinant, e.g. a mirror folded
// into the matrix) is detected from m[0]*m[3]-m[1]*m[2] and corrected
// for exactly as MirrorX/MirrorY do, so Area's sign convention survives
// any transform.
func (lp *BoundaryLoop) Transform(m matrix.Matrix) *BoundaryLoop {
	det := m[0]*m[3] - m[1]*m[2]
	precondition(math.Abs(det) > NumericZero, "Transform: singular matrix")
	apply := func(p Point) Point {
		return Point{X: m[0]*p.X + m[2]*p.Y + m[4], Y: m[1]*p.X + m[3]*p.Y + m[5]}
	}
	return lp.transformPoint(apply, det < 0)
}

// Mirror returns a copy of the loop reflected across the given line,
// with orientation corrected so positive area still means CCW.
func (lp *BoundaryLoop) Mirror(line Line2) *BoundaryLoop {
	n := line.Normal()
	return lp.transformPoint(func(p Point) Point {
		d := n.Dot(p.Sub(line.Origin))
		return p.Sub(n.Mul(2 * d))
	}, true)
}

// MirrorX returns a copy of the loop mirrored across the vertical line
// x == axis, with orientation corrected so positive area still means CCW.
func (lp *BoundaryLoop) MirrorX(axis float64) *BoundaryLoop {
	return lp.transformPoint(func(p Point) Point { return Point{X: 2*axis - p.X, Y: p.Y} }, true)
}

// MirrorY returns a copy of the loop mirrored across the horizontal line
// y == axis, with orientation corrected so positive area still means CCW.
func (lp *BoundaryLoop) MirrorY(axis float64) *BoundaryLoop {
	return lp.transformPoint(func(p Point) Point { return Point{X: p.X, Y: 2*axis - p.Y} }, true)
}

// Reverse returns a copy of the loop traversed in the opposite direction
// (flips the sign of Area).
func (lp *BoundaryLoop) Reverse() *BoundaryLoop {
	elems := lp.Elements()
	out := make([]Element, len(elems))
	for i, e := range elems {
		out[len(elems)-1-i] = e.Reversed()
	}
	return NewLoopFromElements(out)
}

// Offset returns a copy of the loop with every element independently
// offset by d along its own normal (positive d grows a CCW loop). The
// result may have gaps or overlaps at corners; use OffsetAndRepaired to
// close gaps and clean up the result.
func (lp *BoundaryLoop) Offset(d float64) *BoundaryLoop {
	elems := lp.Elements()
	out := make([]Element, len(elems))
	for i, e := range elems {
		out[i] = e.OffsetBy(d)
	}
	result := newEmptyBoundaryLoop()
	for _, e := range out {
		result.ring.PushBack(e)
	}
	return result
}

// OffsetAndRepaired offsets every element by d, bridges the resulting
// corner gaps with a round join (an arc of radius |d| centered on the
// original shared vertex, the same construction stroke.go's addArc uses
// for round line joins), then removes thin sections, zero-length
// elements and adjacent redundancies. Returns ErrDegenerateGeometry if
// the result collapses entirely.
func (lp *BoundaryLoop) OffsetAndRepaired(d float64) (*BoundaryLoop, error) {
	elems := lp.Elements()
	n := len(elems)
	precondition(n > 0, "OffsetAndRepaired: empty loop")

	offset := make([]Element, n)
	for i, e := range elems {
		offset[i] = e.OffsetBy(d)
	}

	var out []Element
	for i := 0; i < n; i++ {
		cur := offset[i]
		next := offset[(i+1)%n]
		out = append(out, cur)
		gap := cur.End.Sub(next.Start).Length()
		if gap < DistanceEpsilon {
			continue
		}
		corner := elems[(i+1)%n].Start
		theta0 := math.Atan2(cur.End.Sub(corner).Y, cur.End.Sub(corner).X)
		theta1 := math.Atan2(next.Start.Sub(corner).Y, next.Start.Sub(corner).X)
		sweep := normalizeAngleDiff(theta1, theta0)
		if math.Abs(sweep) > DistanceEpsilon {
			out = append(out, NewArc(corner, math.Abs(d), theta0, sweep, 0))
		}
	}

	result := newEmptyBoundaryLoop()
	for _, e := range out {
		result.ring.PushBack(e)
	}
	result.RemoveZeroLengthElements()
	result.RemoveThinSections()
	result.RemoveAdjacentRedundancies()
	if result.Len() == 0 {
		return nil, ErrDegenerateGeometry
	}
	return result, nil
}

// RemoveZeroLengthElements deletes every element shorter than
// DistanceEpsilon.
func (lp *BoundaryLoop) RemoveZeroLengthElements() {
	for _, id := range lp.ring.IDs() {
		if lp.ring.Element(id).Length() < DistanceEpsilon {
			lp.ring.Remove(id)
		}
	}
}

// RemoveThinSections removes adjacent element pairs that double back on
// themselves: an element immediately followed by (approximately) its own
// reversal, which contributes zero area and zero boundary.
func (lp *BoundaryLoop) RemoveThinSections() {
	for {
		removed := false
		for _, id := range lp.ring.IDs() {
			if lp.ring.Len() < 2 {
				return
			}
			nextID := lp.ring.Next(id)
			if nextID == id {
				continue
			}
			a := lp.ring.Element(id)
			b := lp.ring.Element(nextID)
			sameCurve := a.Kind == b.Kind && (a.Kind == KindSegment ||
				(a.Center.Sub(b.Center).Length() < DistanceEpsilon && (a.Sweep >= 0) != (b.Sweep >= 0)))
			if sameCurve && a.Start.Sub(b.End).Length() < DistanceEpsilon && a.End.Sub(b.Start).Length() < DistanceEpsilon {
				lp.ring.Remove(nextID)
				lp.ring.Remove(id)
				removed = true
				break
			}
		}
		if !removed {
			return
		}
	}
}

// RemoveAdjacentRedundancies merges consecutive collinear segments (or
// consecutive arcs sharing a center, radius and direction) into a single
// element.
func (lp *BoundaryLoop) RemoveAdjacentRedundancies() {
	for {
		merged := false
		for _, id := range lp.ring.IDs() {
			if lp.ring.Len() < 2 {
				return
			}
			nextID := lp.ring.Next(id)
			if nextID == id {
				continue
			}
			a := lp.ring.Element(id)
			b := lp.ring.Element(nextID)
			if combined, ok := tryMergeAdjacent(a, b); ok {
				lp.ring.SetElement(id, combined)
				lp.ring.Remove(nextID)
				merged = true
				break
			}
		}
		if !merged {
			return
		}
	}
}

// tryMergeAdjacent merges two adjacent elements into one if they are
// collinear segments, or co-circular same-direction arcs, within
// tolerance.
func tryMergeAdjacent(a, b Element) (Element, bool) {
	if a.Kind == KindSegment && b.Kind == KindSegment {
		dirA := a.End.Sub(a.Start)
		dirB := b.End.Sub(b.Start)
		la, lb := dirA.Length(), dirB.Length()
		if la < DistanceEpsilon || lb < DistanceEpsilon {
			return Element{}, false
		}
		if math.Abs(cross(dirA.Mul(1/la), dirB.Mul(1/lb))) > NumericZero {
			return Element{}, false
		}
		if dirA.Dot(dirB) <= 0 {
			return Element{}, false
		}
		return NewSegment(a.Start, b.End, 0), true
	}
	if a.Kind == KindArc && b.Kind == KindArc {
		if a.Center.Sub(b.Center).Length() > DistanceEpsilon || math.Abs(a.Radius-b.Radius) > DistanceEpsilon {
			return Element{}, false
		}
		if (a.Sweep >= 0) != (b.Sweep >= 0) {
			return Element{}, false
		}
		combinedSweep := a.Sweep + b.Sweep
		if math.Abs(combinedSweep) > 2*math.Pi+angleTolerance(a.Radius) {
			return Element{}, false
		}
		return NewArc(a.Center, a.Radius, a.Theta0, combinedSweep, 0), true
	}
	return Element{}, false
}

// SelfIntersections returns every intersection pair among the loop's own
// elements, excluding the trivial touch each pair of ring-adjacent
// elements has at their shared node. A true self-intersection is a pair
// where the curve crosses itself away from a
// declared connection.
func (lp *BoundaryLoop) SelfIntersections() []IntersectionPair {
	elems := lp.Elements()
	n := len(elems)
	var out []IntersectionPair
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			adjacent := j == i+1 || (i == 0 && j == n-1)
			for _, pr := range elementIntersections(elems[i], elems[j]) {
				if adjacent && bothAtEndpoints(pr, elems[i], elems[j]) {
					continue
				}
				out = append(out, pr)
			}
		}
	}
	return out
}

// bothAtEndpoints reports whether both sides of pr sit at an endpoint
// (0 or Length()) of their respective elements, the signature of an
// expected shared-vertex touch rather than a genuine crossing.
func bothAtEndpoints(pr IntersectionPair, a, b *Element) bool {
	atEnd := func(l, length float64) bool {
		return l < DistanceEpsilon || length-l < DistanceEpsilon
	}
	return atEnd(pr.First.L, a.Length()) && atEnd(pr.Second.L, b.Length())
}

// SplitAtSelfIntersection splits the loop into two loops at a
// self-intersection pair: one following First's element forward to
// Second's crossing point, the other following Second's element forward
// to First's crossing point, each closing on the other's split point.
func (lp *BoundaryLoop) SplitAtSelfIntersection(pair IntersectionPair) []*BoundaryLoop {
	elems := lp.Elements()
	n := len(elems)
	idxFirst := elementIndex(elems, pair.First.Elem)
	idxSecond := elementIndex(elems, pair.Second.Elem)
	internalInvariant(idxFirst >= 0 && idxSecond >= 0, "SplitAtSelfIntersection: positions not on this loop")

	loopA := splitLoopArc(elems, n, idxFirst, pair.First.L, idxSecond, pair.Second.L)
	loopB := splitLoopArc(elems, n, idxSecond, pair.Second.L, idxFirst, pair.First.L)

	var out []*BoundaryLoop
	if len(loopA) >= 1 {
		out = append(out, NewLoopFromElements(loopA))
	}
	if len(loopB) >= 1 {
		out = append(out, NewLoopFromElements(loopB))
	}
	return out
}

// elementIndex returns the index of e within elems by pointer identity,
// or -1.
func elementIndex(elems []*Element, e *Element) int {
	for i, x := range elems {
		if x == e {
			return i
		}
	}
	return -1
}

// splitLoopArc builds the element sequence running from length fromL on
// elems[fromIdx], forward through the ring (wrapping), up to length toL
// on elems[toIdx].
func splitLoopArc(elems []*Element, n, fromIdx int, fromL float64, toIdx int, toL float64) []Element {
	var out []Element
	if piece, ok := elems[fromIdx].SplitAfter(fromL); ok {
		out = append(out, piece)
	}
	for i := (fromIdx + 1) % n; i != toIdx; i = (i + 1) % n {
		out = append(out, *elems[i])
	}
	if piece, ok := elems[toIdx].SplitBefore(toL); ok {
		out = append(out, piece)
	}
	return out
}

// NonSelfIntersectingLoops splits the loop at every self-intersection
// until none remain, returning the resulting simple loops. A loop with
// no self-intersections is returned unchanged as the sole result.
func (lp *BoundaryLoop) NonSelfIntersectingLoops() []*BoundaryLoop {
	pending := []*BoundaryLoop{lp}
	var done []*BoundaryLoop
	const safetyCap = 10000
	for iterations := 0; len(pending) > 0; iterations++ {
		internalInvariant(iterations < safetyCap, "NonSelfIntersectingLoops: exceeded safety cap")
		cur := pending[0]
		pending = pending[1:]
		hits := cur.SelfIntersections()
		if len(hits) == 0 {
			done = append(done, cur)
			continue
		}
		pending = append(pending, cur.SplitAtSelfIntersection(hits[0])...)
	}
	return done
}
