// github.com/cutkernel/planar - a 2D planar-region Boolean-geometry kernel

package planar

import "github.com/rs/zerolog"

// MergeLogger receives Debug events per extracted loop and a Warn event
// when a merge's iteration cap is hit before ErrMergeDidNotTerminate is
// returned. The zero value is zerolog.Nop(), so the hot path costs
// nothing when no caller sets it.
var MergeLogger zerolog.Logger = zerolog.Nop()

// CoarseResult classifies the outcome of a Union or Intersection call at
// the level a caller cares about, without requiring it to diff loop
// slices itself.
type CoarseResult int

const (
	// Destroyed means the operation left nothing: an Intersection of
	// disjoint loops, or a merge whose extracted loops were all null
	// sets after cleanup.
	Destroyed CoarseResult = iota
	// Unchanged means self is returned as the sole, unmodified result.
	Unchanged
	// Replaced means other is returned as the sole result, displacing
	// self entirely.
	Replaced
	// Merged means the result is one or more loops produced by actually
	// walking the two boundaries.
	Merged
	// UnchangedMerged means self is returned unmodified but the tool
	// loop was topologically absorbed by it (self strictly contains
	// other, with no extraction needed).
	UnchangedMerged
)

func (r CoarseResult) String() string {
	switch r {
	case Destroyed:
		return "Destroyed"
	case Unchanged:
		return "Unchanged"
	case Replaced:
		return "Replaced"
	case Merged:
		return "Merged"
	default:
		return "UnchangedMerged"
	}
}

// Union returns the loop(s) describing the union of the regions bounded
// by self and other, together with a CoarseResult classifying how the
// result relates to the two inputs.
func Union(self, other *BoundaryLoop) (CoarseResult, []*BoundaryLoop, error) {
	rel, pairs := self.ShapeRelationTo(other)
	switch {
	case rel == Disjoint:
		return Merged, []*BoundaryLoop{self, other}, nil
	case rel == IsSubsetOf:
		return Replaced, []*BoundaryLoop{other}, nil
	case rel == IsSupersetOf:
		return UnchangedMerged, []*BoundaryLoop{self}, nil
	case len(pairs) == 0:
		// Intersects with no boundary crossing: one loop nests inside
		// the other with opposite polarity (e.g. a hole strictly
		// inside its outer), or both are holes whose boundaries are
		// disjoint. Nothing to extract; both loops stand as they are.
		return Merged, []*BoundaryLoop{self, other}, nil
	default:
		loops, err := runMerger(self, other, pairs, opUnion)
		if err != nil {
			return Destroyed, nil, err
		}
		if len(loops) == 0 {
			return Destroyed, nil, nil
		}
		return Merged, loops, nil
	}
}

// Intersection returns the loop(s) describing the intersection of the
// regions bounded by self and other, together with a CoarseResult.
func Intersection(self, other *BoundaryLoop) (CoarseResult, []*BoundaryLoop, error) {
	rel, pairs := self.ShapeRelationTo(other)
	switch {
	case rel == Disjoint:
		return Destroyed, nil, nil
	case rel == IsSubsetOf:
		return Unchanged, []*BoundaryLoop{self}, nil
	case rel == IsSupersetOf:
		return Replaced, []*BoundaryLoop{other}, nil
	case len(pairs) == 0:
		// Intersects with no boundary crossing: self and other nest
		// with opposite polarity and never touch (or are two holes
		// whose boundaries are disjoint). The intersection of
		// a filled region with a non-overlapping hole (or vice versa)
		// is both loops taken together, e.g. a tool loop that carves
		// a fresh hole strictly inside the outer it's intersected
		// with.
		return Merged, []*BoundaryLoop{self, other}, nil
	default:
		loops, err := runMerger(self, other, pairs, opIntersection)
		if err != nil {
			return Destroyed, nil, err
		}
		if len(loops) == 0 {
			return Destroyed, nil, nil
		}
		return Merged, loops, nil
	}
}

type mergeOp int

const (
	opUnion mergeOp = iota
	opIntersection
)

// validForOp reports whether pr is a crossing the merger should treat as
// a handoff point for op: an exit crossing for Union (the output follows
// whichever side is leaving the other's interior), an entrance crossing
// for Intersection.
func validForOp(pr IntersectionPair, op mergeOp) (firstSide, secondSide bool) {
	if op == opUnion {
		return pr.FirstExitsSecond(), pr.SecondExitsFirst()
	}
	return pr.FirstEntersSecond(), pr.SecondEntersFirst()
}

// runMerger implements the extract-one-loop algorithm: repeatedly pick an
// unconsumed valid crossing, walk forward along whichever loop the
// operation says to follow, switching sides at each subsequent valid
// crossing, until the walk returns to its starting point. Produces one
// output loop per walk, cleaned up and discarded if it collapses to a
// null set.
func runMerger(l0, l1 *BoundaryLoop, pairs []IntersectionPair, op mergeOp) ([]*BoundaryLoop, error) {
	working := make([]IntersectionPair, 0, len(pairs))
	for _, pr := range pairs {
		first, second := validForOp(pr, op)
		if first || second {
			working = append(working, pr)
		}
	}
	internalInvariant(len(working) > 0, "merge: no crossing is valid for this operation")

	capRemaining := l0.Len() + l1.Len() + len(working)
	var results []*BoundaryLoop

	for len(working) > 0 {
		loop, consumed, err := extractOneLoop(l0, l1, working, op, capRemaining)
		if err != nil {
			return nil, err
		}
		working = removeIndices(working, consumed)

		loop.RemoveThinSections()
		loop.RemoveAdjacentRedundancies()
		if loop.IsNullSet() {
			MergeLogger.Debug().Msg("merge: extracted loop discarded as null set")
			continue
		}
		MergeLogger.Debug().Int("nodes", loop.Len()).Msg("merge: extracted loop")
		results = append(results, loop)
	}
	return results, nil
}

// removeIndices returns pairs with the given indices deleted, preserving
// order of the survivors.
func removeIndices(pairs []IntersectionPair, idx []int) []IntersectionPair {
	if len(idx) == 0 {
		return pairs
	}
	drop := make(map[int]bool, len(idx))
	for _, i := range idx {
		drop[i] = true
	}
	out := make([]IntersectionPair, 0, len(pairs)-len(idx))
	for i, p := range pairs {
		if !drop[i] {
			out = append(out, p)
		}
	}
	return out
}

// side identifies which of l0/l1 an extraction step is currently reading
// from.
type side int

const (
	sideFirst side = iota
	sideSecond
)

// extractOneLoop walks the boundary starting at working[0] until it
// returns to that same crossing, producing one closed output loop. It
// reports the indices into working consumed along the way (the starting
// pair and every pair used as a handoff), so the caller can remove them
// before the next extraction.
func extractOneLoop(l0, l1 *BoundaryLoop, working []IntersectionPair, op mergeOp, iterCap int) (*BoundaryLoop, []int, error) {
	start := working[0]
	// start's own index is deliberately left out of consumed: it must
	// stay a live candidate so the walk can match back onto it and close
	// via IsEquivalentTo below. nextCandidate's lastParam+mergeParamPad
	// guard is what stops it from being re-matched immediately.
	var consumed []int

	firstValid, secondValid := validForOp(start, op)
	var cur side
	var curLoop *BoundaryLoop
	var curPos Position
	if firstValid {
		cur, curLoop, curPos = sideFirst, l0, start.First
	} else {
		cur, curLoop, curPos = sideSecond, l1, start.Second
	}

	elems := curLoop.Elements()
	idx := elementIndex(elems, curPos.Elem)
	internalInvariant(idx >= 0, "merge: crossing position not found on its own loop")
	lastParam := curPos.L

	out := newEmptyBoundaryLoop()

	for i := 0; i < iterCap; i++ {
		next, nextIdx, found := nextCandidate(working, consumed, cur, elems[idx], lastParam, op)
		if !found {
			// No further crossing on the remainder of the current
			// element: it is safe to emit in full now, and only now —
			// emitting it eagerly on entry (before this check ran) is
			// what let a crossing partway through a freshly-entered
			// element get skipped past, leaving it to be re-discovered
			// and pushed a second time as an overlapping subrange on
			// the next iteration. The element we're advancing onto is
			// deliberately left unpushed here; it gets the same
			// found/not-found check on the next iteration, before
			// anything of it is written out.
			if piece, ok := elems[idx].SplitAfter(lastParam); ok {
				out.ring.PushBack(piece)
			}
			idx = (idx + 1) % len(elems)
			lastParam = 0
			continue
		}

		nextPos := positionFor(next, cur)
		if elems[idx] != nextPos.Elem {
			// shouldn't happen: nextCandidate only returns matches on
			// the current element.
			internalInvariant(false, "merge: candidate crossing off current element")
		}
		if nextPos.L-lastParam > DistanceEpsilon {
			out.ring.PushBack(elems[idx].subrange(lastParam, nextPos.L))
		}
		consumed = append(consumed, nextIdx)

		if next.IsEquivalentTo(start) {
			return out, consumed, nil
		}

		firstValid, secondValid = validForOp(next, op)
		newCur := cur
		switch {
		case firstValid && secondValid:
			// Ambiguous: both sides read as valid at this crossing.
			// Switch away from whichever side we were already reading,
			// since the point of a crossing is to hand off.
			if cur == sideFirst {
				newCur = sideSecond
			} else {
				newCur = sideFirst
			}
		case firstValid:
			newCur = sideFirst
		case secondValid:
			newCur = sideSecond
		default:
			internalInvariant(false, "merge: crossing popped from the working list is valid on neither side")
		}
		cur = newCur
		if cur == sideFirst {
			curLoop, curPos = l0, next.First
		} else {
			curLoop, curPos = l1, next.Second
		}
		elems = curLoop.Elements()
		idx = elementIndex(elems, curPos.Elem)
		internalInvariant(idx >= 0, "merge: crossing position not found on its own loop")
		lastParam = curPos.L
		// No push here: the next iteration's nextCandidate check looks
		// for a further crossing on this element from lastParam before
		// anything of it is written out (see the not-found branch above).
	}

	MergeLogger.Warn().Msg("merge: iteration cap reached before the walk closed")
	return nil, nil, ErrMergeDidNotTerminate
}

// nextCandidate finds the unconsumed pair in working, restricted to
// positions on elem on side cur, with parameter strictly greater than
// lastParam+mergeParamPad, that has the smallest such parameter.
func nextCandidate(working []IntersectionPair, consumed []int, cur side, elem *Element, lastParam float64, op mergeOp) (IntersectionPair, int, bool) {
	already := make(map[int]bool, len(consumed))
	for _, i := range consumed {
		already[i] = true
	}

	bestIdx := -1
	bestParam := 0.0
	var best IntersectionPair
	for i, pr := range working {
		if already[i] {
			continue
		}
		pos := positionFor(pr, cur)
		if pos.Elem != elem {
			continue
		}
		if pos.L <= lastParam+mergeParamPad {
			continue
		}
		if bestIdx < 0 || pos.L < bestParam {
			bestIdx, bestParam, best = i, pos.L, pr
		}
	}
	return best, bestIdx, bestIdx >= 0
}

func positionFor(pr IntersectionPair, s side) Position {
	if s == sideFirst {
		return pr.First
	}
	return pr.Second
}
