// github.com/cutkernel/planar - a 2D planar-region Boolean-geometry kernel

package planar

import "math"

// rawLineLine returns the single intersection point of two infinite
// lines. ok is false when the lines are parallel.
func rawLineLine(l1, l2 Line2) (Point, bool) {
	t, _, ok := l1.IntersectParams(l2)
	if !ok {
		return Point{}, false
	}
	return l1.PointAt(t), true
}

// rawLineCircle returns the 0, 1 (tangent), or 2 points where infinite
// line l meets circle c.
func rawLineCircle(l Line2, c Circle2) []Point {
	f := l.Origin.Sub(c.Center)
	b := 2 * f.Dot(l.Dir)
	cc := f.Dot(f) - c.Radius*c.Radius
	disc := b*b - 4*cc

	tol := NumericZero * c.Radius * c.Radius
	if disc < -tol {
		return nil
	}
	if disc < tol {
		return []Point{l.PointAt(-b / 2)}
	}
	sq := math.Sqrt(disc)
	t1 := (-b - sq) / 2
	t2 := (-b + sq) / 2
	return []Point{l.PointAt(t1), l.PointAt(t2)}
}

// rawCircleCircle returns the 0, 1 (tangent), or 2 points where two
// circles meet. Coincident circles (infinitely many intersection points)
// return nil: there is no finite point list to enumerate.
func rawCircleCircle(c1, c2 Circle2) []Point {
	d := c2.Center.Sub(c1.Center).Length()
	if d < NumericZero && math.Abs(c1.Radius-c2.Radius) < DistanceEpsilon {
		return nil // coincident
	}
	if d > c1.Radius+c2.Radius+DistanceEpsilon || d < math.Abs(c1.Radius-c2.Radius)-DistanceEpsilon {
		return nil
	}
	if d < NumericZero {
		return nil // concentric, non-coincident radii: no intersection
	}

	a := (d*d + c1.Radius*c1.Radius - c2.Radius*c2.Radius) / (2 * d)
	h2 := c1.Radius*c1.Radius - a*a
	if h2 < 0 {
		h2 = 0
	}
	dir := c2.Center.Sub(c1.Center).Mul(1 / d)
	mid := c1.Center.Add(dir.Mul(a))

	if h2 < DistanceEpsilon*DistanceEpsilon {
		return []Point{mid}
	}
	h := math.Sqrt(h2)
	perp := Vector{X: -dir.Y, Y: dir.X}
	return []Point{mid.Add(perp.Mul(h)), mid.Sub(perp.Mul(h))}
}

// line returns the infinite carrier line of a segment element.
func (e *Element) line() Line2 {
	return NewLine2(e.Start, e.End)
}

// circle returns the full carrier circle of an arc element.
func (e *Element) circle() Circle2 {
	return Circle2{Center: e.Center, Radius: e.Radius}
}

// unclampedPositionAt returns e's own parametric position for a point
// already known to lie on e's carrier (its line, for a segment, or its
// circle, for an arc). For a segment, L may fall outside [0, Length()];
// the caller is responsible for range-checking. For an arc, ok is false
// if the point's angle does not fall on e's declared sweep (within
// angleTolerance); there is no "L outside range" case for arcs since the
// angle check already establishes membership.
func (e *Element) unclampedPositionAt(pt Point) (Position, bool) {
	if e.Kind == KindSegment {
		length := e.Length()
		if length < DistanceEpsilon {
			return Position{L: 0, Elem: e}, true
		}
		t := e.End.Sub(e.Start).Mul(1 / length)
		l := t.Dot(pt.Sub(e.Start))
		return Position{L: l, Elem: e}, true
	}

	diff := pt.Sub(e.Center)
	theta := math.Atan2(diff.Y, diff.X)
	if !e.IsThetaOnArc(theta) {
		return Position{}, false
	}
	lo, hi := e.angleRange()
	tol := angleTolerance(e.Radius)
	var rep float64
	found := false
	for _, shift := range []float64{-2 * math.Pi, 0, 2 * math.Pi} {
		a := theta + shift
		if a >= lo-tol && a <= hi+tol {
			rep = a
			found = true
			break
		}
	}
	if !found {
		return Position{}, false
	}
	dir := 1.0
	if e.Sweep < 0 {
		dir = -1.0
	}
	l := dir * (rep - e.Theta0)
	return Position{L: l, Elem: e}, true
}

// IntersectionsWithLine returns the positions on e (by e's own
// parametrization, unclamped to [0, Length()]) where e's carrier crosses
// the infinite line l.
func (e *Element) IntersectionsWithLine(l Line2) []Position {
	var pts []Point
	if e.Kind == KindSegment {
		if pt, ok := rawLineLine(e.line(), l); ok {
			pts = []Point{pt}
		}
	} else {
		pts = rawLineCircle(l, e.circle())
	}
	var out []Position
	for _, pt := range pts {
		if pos, ok := e.unclampedPositionAt(pt); ok {
			out = append(out, pos)
		}
	}
	return out
}

// IntersectionsWithCircle returns the positions on e (unclamped) where
// e's carrier crosses circle c.
func (e *Element) IntersectionsWithCircle(c Circle2) []Position {
	var pts []Point
	if e.Kind == KindSegment {
		pts = rawLineCircle(e.line(), c)
	} else {
		pts = rawCircleCircle(e.circle(), c)
	}
	var out []Position
	for _, pt := range pts {
		if pos, ok := e.unclampedPositionAt(pt); ok {
			out = append(out, pos)
		}
	}
	return out
}

// withinRange reports whether l lies in [0, length] allowing
// DistanceEpsilon slack at either endpoint.
func withinRange(l, length float64) bool {
	return l >= -DistanceEpsilon && l <= length+DistanceEpsilon
}

// MatchIntersections filters candidate positions (on some other element)
// to those whose world point also lands within [0, Length()] of e, and
// pairs each survivor with e's own position at that point. Returned pairs
// have First = e's side, Second = the candidate's side.
func (e *Element) MatchIntersections(candidates []Position) []IntersectionPair {
	var out []IntersectionPair
	for _, cand := range candidates {
		pt := cand.Surface().Point
		pos, ok := e.unclampedPositionAt(pt)
		if !ok || !withinRange(pos.L, e.Length()) {
			continue
		}
		pos.L = max(0, min(e.Length(), pos.L))
		out = append(out, IntersectionPair{First: pos, Second: cand})
	}
	return out
}

// elementIntersections computes the intersection pairs between two
// elements a and b, keeping only points within both elements' parametric
// intervals. Returned pairs have First on a, Second on b.
func elementIntersections(a, b *Element) []IntersectionPair {
	var candidatesOnA []Position
	switch {
	case a.Kind == KindSegment && b.Kind == KindSegment:
		if pt, ok := rawLineLine(a.line(), b.line()); ok {
			if pos, ok := a.unclampedPositionAt(pt); ok {
				candidatesOnA = []Position{pos}
			}
		}
	case a.Kind == KindSegment && b.Kind == KindArc:
		for _, pt := range rawLineCircle(a.line(), b.circle()) {
			if pos, ok := a.unclampedPositionAt(pt); ok {
				candidatesOnA = append(candidatesOnA, pos)
			}
		}
	case a.Kind == KindArc && b.Kind == KindSegment:
		for _, pt := range rawLineCircle(b.line(), a.circle()) {
			if pos, ok := a.unclampedPositionAt(pt); ok {
				candidatesOnA = append(candidatesOnA, pos)
			}
		}
	default: // arc, arc
		for _, pt := range rawCircleCircle(a.circle(), b.circle()) {
			if pos, ok := a.unclampedPositionAt(pt); ok {
				candidatesOnA = append(candidatesOnA, pos)
			}
		}
	}

	var out []IntersectionPair
	for _, posA := range candidatesOnA {
		if !withinRange(posA.L, a.Length()) {
			continue
		}
		pt := posA.Surface().Point
		posB, ok := b.unclampedPositionAt(pt)
		if !ok || !withinRange(posB.L, b.Length()) {
			continue
		}
		posA.L = max(0, min(a.Length(), posA.L))
		posB.L = max(0, min(b.Length(), posB.L))
		out = append(out, IntersectionPair{First: posA, Second: posB})
	}
	return out
}
