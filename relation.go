// github.com/cutkernel/planar - a 2D planar-region Boolean-geometry kernel

package planar

// BoundaryRelation is the raw topological relation between two loops'
// boundary curves, before projecting through their polarities.
type BoundaryRelation int

const (
	BoundaryDisjoint BoundaryRelation = iota
	BoundaryEncloses
	BoundaryEnclosedBy
	BoundaryIntersects
)

// ShapeRelation is the set-theoretic relation between the filled regions
// bounded by two loops.
type ShapeRelation int

const (
	Disjoint ShapeRelation = iota
	IsSubsetOf
	IsSupersetOf
	Intersects
)

func (r ShapeRelation) String() string {
	switch r {
	case Disjoint:
		return "Disjoint"
	case IsSubsetOf:
		return "IsSubsetOf"
	case IsSupersetOf:
		return "IsSupersetOf"
	default:
		return "Intersects"
	}
}

// LoopRelationTo computes the boundary relation between lp and other:
// the raw topological relationship of the two curves, independent of
// polarity. ShapeRelationTo builds on this to report the filled-region
// relation.
func (lp *BoundaryLoop) LoopRelationTo(other *BoundaryLoop) (BoundaryRelation, []IntersectionPair) {
	raw := lp.BVH().Intersections(other.BVH())
	filtered := filterSharedBoundaryPairs(lp, other, raw)

	if len(filtered) > 0 {
		return classifyByExitsEnters(filtered, lp, other), filtered
	}

	// No filtered crossings: the loops are either disjoint or one wholly
	// contains the other. A representative point decides which.
	if other.Len() == 0 {
		return BoundaryDisjoint, filtered
	}
	rep := other.Head().AtLength(0).Point
	if lp.Encloses(rep) {
		return BoundaryEncloses, filtered
	}
	if lp.Len() > 0 {
		repSelf := lp.Head().AtLength(0).Point
		if other.Encloses(repSelf) {
			return BoundaryEnclosedBy, filtered
		}
	}
	return BoundaryDisjoint, filtered
}

// filterSharedBoundaryPairs discards intersection pairs that lie on a
// portion of boundary the two loops share outright: both positions at
// element endpoints, where the elements immediately before and after the
// shared vertex on each loop also match (same variant, same direction),
// in either forward or reversed alignment.
func filterSharedBoundaryPairs(lp, other *BoundaryLoop, pairs []IntersectionPair) []IntersectionPair {
	var out []IntersectionPair
	for _, pr := range pairs {
		if isSharedBoundaryPair(lp, other, pr) {
			continue
		}
		out = append(out, pr)
	}
	return out
}

func isSharedBoundaryPair(lp, other *BoundaryLoop, pr IntersectionPair) bool {
	if !bothAtEndpoints(pr, pr.First.Elem, pr.Second.Elem) {
		return false
	}
	aElems := lp.Elements()
	bElems := other.Elements()
	aIdx := elementIndex(aElems, pr.First.Elem)
	bIdx := elementIndex(bElems, pr.Second.Elem)
	if aIdx < 0 || bIdx < 0 {
		return false
	}

	aPrev, aNext := adjacentElements(aElems, aIdx)
	bPrev, bNext := adjacentElements(bElems, bIdx)

	sameDirection := func(x, y *Element) bool {
		if x.Kind != y.Kind {
			return false
		}
		if x.Kind == KindSegment {
			dx := x.End.Sub(x.Start)
			dy := y.End.Sub(y.Start)
			lx, ly := dx.Length(), dy.Length()
			if lx < DistanceEpsilon || ly < DistanceEpsilon {
				return false
			}
			return dx.Mul(1/lx).Sub(dy.Mul(1/ly)).Length() < DistanceEpsilon
		}
		return x.Center.Sub(y.Center).Length() < DistanceEpsilon &&
			(x.Sweep >= 0) == (y.Sweep >= 0)
	}

	forward := sameDirection(aPrev, bPrev) && sameDirection(aNext, bNext)
	reversed := sameDirection(aPrev, bNext) && sameDirection(aNext, bPrev)
	return forward || reversed
}

// adjacentElements returns the elements immediately before and after
// index i in the (circular) slice elems.
func adjacentElements(elems []*Element, i int) (prev, next *Element) {
	n := len(elems)
	return elems[(i-1+n)%n], elems[(i+1)%n]
}

// classifyByExitsEnters decides Encloses/EnclosedBy/Intersects from the
// filtered pair list. The EnclosedBy test keys off other's polarity, the
// Encloses test off self's polarity, exactly mirroring each other.
func classifyByExitsEnters(pairs []IntersectionPair, self, other *BoundaryLoop) BoundaryRelation {
	firstExits, firstEnters, secondExits, secondEnters := false, false, false, false
	for _, p := range pairs {
		if p.FirstExitsSecond() {
			firstExits = true
		}
		if p.FirstEntersSecond() {
			firstEnters = true
		}
		if p.SecondExitsFirst() {
			secondExits = true
		}
		if p.SecondEntersFirst() {
			secondEnters = true
		}
	}

	firstNeverExits := !firstExits
	firstNeverEnters := !firstEnters
	secondNeverExits := !secondExits
	secondNeverEnters := !secondEnters

	if (other.IsPositive() && firstNeverExits) || (!other.IsPositive() && firstNeverEnters) {
		return BoundaryEnclosedBy
	}
	if (self.IsPositive() && secondNeverExits) || (!self.IsPositive() && secondNeverEnters) {
		return BoundaryEncloses
	}
	return BoundaryIntersects
}

// polarity returns +1 for a positive loop, -1 for a negative (hole) loop.
func polarity(lp *BoundaryLoop) int {
	if lp.IsPositive() {
		return 1
	}
	return -1
}

// ShapeRelationTo returns the set relation between the filled regions
// bounded by lp and other, by projecting the boundary relation through
// both loops' polarities, together with the
// filtered intersection pairs used to derive it.
func (lp *BoundaryLoop) ShapeRelationTo(other *BoundaryLoop) (ShapeRelation, []IntersectionPair) {
	boundary, pairs := lp.LoopRelationTo(other)
	pa, pb := polarity(lp), polarity(other)

	switch boundary {
	case BoundaryDisjoint:
		switch {
		case pa > 0 && pb > 0:
			return Disjoint, pairs
		case pa > 0 && pb < 0:
			return IsSubsetOf, pairs
		case pa < 0 && pb > 0:
			return IsSupersetOf, pairs
		default:
			return Intersects, pairs
		}
	case BoundaryEncloses:
		switch {
		case pa > 0 && pb > 0:
			return IsSupersetOf, pairs
		case pa > 0 && pb < 0:
			return Intersects, pairs
		case pa < 0 && pb > 0:
			return disjointOrIntersects(pairs), pairs
		default:
			return IsSubsetOf, pairs
		}
	case BoundaryEnclosedBy:
		switch {
		case pa > 0 && pb > 0:
			return IsSubsetOf, pairs
		case pa > 0 && pb < 0:
			return disjointOrIntersects(pairs), pairs
		case pa < 0 && pb > 0:
			return Intersects, pairs
		default:
			return IsSupersetOf, pairs
		}
	default:
		return Intersects, pairs
	}
}

// disjointOrIntersects resolves the truth table's ambiguous cells: the
// two opposite-polarity enclosure cases return Intersects iff the
// filtered pair list is nonempty, Disjoint otherwise.
func disjointOrIntersects(pairs []IntersectionPair) ShapeRelation {
	if len(pairs) > 0 {
		return Intersects
	}
	return Disjoint
}
