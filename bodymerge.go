// github.com/cutkernel/planar - a 2D planar-region Boolean-geometry kernel

package planar

import (
	"errors"
	"slices"
)

// BodySet is an unordered collection of bodies being folded together by
// MergeBodies.
type BodySet struct {
	Bodies []*Body
}

// NewBodySet returns a BodySet over the given bodies.
func NewBodySet(bodies []*Body) *BodySet {
	return &BodySet{Bodies: slices.Clone(bodies)}
}

// MergeBodies folds every body in the set into as few bodies as possible,
// by absorbing each into the largest-by-area "working" body whenever
// their outers are nested or overlapping, and keeping it aside when they
// are disjoint. A body that fails with a non-terminating merge is set
// aside and retried in the next pass; if an entire pass makes no progress, the
// remaining bodies are returned unchanged rather than raised as an error
// (the source code this was distilled from defers such bodies forever).
func (s *BodySet) MergeBodies() ([]*Body, error) {
	pending := slices.Clone(s.Bodies)
	slices.SortFunc(pending, func(a, b *Body) int {
		return -orderByArea(a.Area(), b.Area())
	})

	var settled []*Body
	for len(pending) > 0 {
		working := pending[0]
		rest := pending[1:]

		var kept []*Body
		var deferred []*Body
		progressed := false

		for _, candidate := range rest {
			newWorking, mergedIn, err := foldOne(working, candidate)
			if err != nil {
				if errors.Is(err, ErrMergeDidNotTerminate) {
					deferred = append(deferred, candidate)
					continue
				}
				return nil, err
			}
			if mergedIn {
				working = newWorking
				progressed = true
			} else {
				kept = append(kept, candidate)
			}
		}

		settled = append(settled, working)
		if !progressed && len(deferred) == len(rest) {
			// No candidate in this pass could be folded in: give up on
			// the remainder, emitting them unchanged.
			settled = append(settled, deferred...)
			break
		}
		pending = append(kept, deferred...)
	}

	return settled, nil
}

// orderByArea is a small helper so the sort comparator reads as "by
// area" rather than a bare float subtraction.
func orderByArea(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// foldOne tries to absorb candidate into working. mergedIn is false when
// the two are disjoint (candidate is kept aside, working unchanged).
func foldOne(working, candidate *Body) (newWorking *Body, mergedIn bool, err error) {
	rel, _ := working.Outer.ShapeRelationTo(candidate.Outer)
	switch rel {
	case Disjoint:
		return working, false, nil
	case IsSubsetOf:
		// candidate's outer contains working's: candidate becomes the
		// new working body, with working folded into it as the tool.
		return absorb(candidate, working)
	default: // IsSupersetOf or Intersects
		return absorb(working, candidate)
	}
}

// absorb operates base against tool's outer (as a positive union tool)
// and then each of tool's own holes (as negative tools), producing the
// combined body.
func absorb(base, tool *Body) (*Body, bool, error) {
	results, err := base.Operate(tool.Outer)
	if err != nil {
		return nil, false, err
	}
	internalInvariant(len(results) == 1, "merge_bodies: union of two outers produced other than one body")
	merged := results[0]

	for _, hole := range tool.Inners {
		results, err = merged.Operate(hole)
		if err != nil {
			return nil, false, err
		}
		internalInvariant(len(results) == 1, "merge_bodies: cutting an absorbed hole produced other than one body")
		merged = results[0]
	}
	return merged, true, nil
}
