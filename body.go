// github.com/cutkernel/planar - a 2D planar-region Boolean-geometry kernel

package planar

// Body is a filled planar region: one positive outer loop with zero or
// more negative inner loops (holes). Inner loops must lie within the
// outer and be mutually disjoint; the region's signed total area is
// Outer.Area() plus the sum of the (already negative) inner areas.
type Body struct {
	Outer  *BoundaryLoop
	Inners []*BoundaryLoop
}

// NewBody returns a body with no holes.
func NewBody(outer *BoundaryLoop) *Body {
	precondition(outer.IsPositive(), "NewBody: outer loop must be positive")
	return &Body{Outer: outer}
}

// NewBodyWithHoles returns a body with the given outer and inner loops.
func NewBodyWithHoles(outer *BoundaryLoop, inners []*BoundaryLoop) *Body {
	precondition(outer.IsPositive(), "NewBodyWithHoles: outer loop must be positive")
	for i, inner := range inners {
		precondition(!inner.IsPositive(), "NewBodyWithHoles: inner %d must be negative", i)
	}
	return &Body{Outer: outer, Inners: inners}
}

// Area returns the body's net filled area: the outer's area plus the
// (negative) area of each hole.
func (b *Body) Area() float64 {
	sum := b.Outer.Area()
	for _, inner := range b.Inners {
		sum += inner.Area()
	}
	return sum
}

// Encloses reports whether p lies in the body's filled region: inside
// the outer and outside every hole.
func (b *Body) Encloses(p Point) bool {
	if !b.Outer.Encloses(p) {
		return false
	}
	for _, inner := range b.Inners {
		if inner.Encloses(p) {
			return false
		}
	}
	return true
}

// Copy returns a deep copy of the body.
func (b *Body) Copy() *Body {
	out := &Body{Outer: b.Outer.Copy()}
	for _, inner := range b.Inners {
		out.Inners = append(out.Inners, inner.Copy())
	}
	return out
}

// Translate returns a copy of the body translated by d.
func (b *Body) Translate(d Vector) *Body {
	out := &Body{Outer: b.Outer.Translate(d)}
	for _, inner := range b.Inners {
		out.Inners = append(out.Inners, inner.Translate(d))
	}
	return out
}

// Rotate returns a copy of the body rotated by theta radians about
// center.
func (b *Body) Rotate(center Point, theta float64) *Body {
	out := &Body{Outer: b.Outer.Rotate(center, theta)}
	for _, inner := range b.Inners {
		out.Inners = append(out.Inners, inner.Rotate(center, theta))
	}
	return out
}

// MirrorY returns a copy of the body mirrored across the horizontal line
// y == axis, the reflection downstream tool-path generation needs when
// flipping a part for its back side.
func (b *Body) MirrorY(axis float64) *Body {
	out := &Body{Outer: b.Outer.MirrorY(axis)}
	for _, inner := range b.Inners {
		out.Inners = append(out.Inners, inner.MirrorY(axis))
	}
	return out
}

// ToSingleLoop flattens the body to one self-touching loop by bridging
// each hole to the outer through the closest pair of outer and hole
// nodes, for
// collaborators (rendering, tool-path) that only understand a single
// boundary.
func (b *Body) ToSingleLoop() *BoundaryLoop {
	result := b.Outer.Copy()
	for _, inner := range b.Inners {
		result = bridgeHole(result, inner)
	}
	return result
}

// bridgeHole splices inner into outer as a self-touching detour: travel
// out from the outer node to the closest node on inner, walk all the way
// around inner, and return along the same bridge.
func bridgeHole(outer, inner *BoundaryLoop) *BoundaryLoop {
	if outer.Len() == 0 || inner.Len() == 0 {
		return outer
	}
	outerElems := outer.Elements()
	innerElems := inner.Elements()
	bridgeIdx, innerIdx := 0, 0
	bridgeDist := outerElems[0].Start.Sub(innerElems[0].Start).Length()
	for i, e := range outerElems {
		for j, f := range innerElems {
			d := e.Start.Sub(f.Start).Length()
			if d < bridgeDist {
				bridgeIdx, innerIdx, bridgeDist = i, j, d
			}
		}
	}
	bridgePoint := outerElems[bridgeIdx].Start
	innerPoint := innerElems[innerIdx].Start

	out := make([]Element, 0, len(outerElems)+len(innerElems)+2)
	out = dereferenceAll(out, outerElems[:bridgeIdx])
	out = append(out, NewSegment(bridgePoint, innerPoint, 0))
	out = dereferenceAll(out, innerElems[innerIdx:])
	out = dereferenceAll(out, innerElems[:innerIdx])
	out = append(out, NewSegment(innerPoint, bridgePoint, 0))
	out = dereferenceAll(out, outerElems[bridgeIdx:])
	return NewLoopFromElements(out)
}

func dereferenceAll(out []Element, ptrs []*Element) []Element {
	for _, p := range ptrs {
		out = append(out, *p)
	}
	return out
}

// Operate applies tool as a Boolean operand against the body: union if
// tool is positive, cut if tool is negative. Returns the resulting
// bodies (zero, one, or more — a negative tool that splits the outer
// produces one body per resulting positive piece).
func (b *Body) Operate(tool *BoundaryLoop) ([]*Body, error) {
	if tool.IsPositive() {
		return b.operatePositive(tool)
	}
	return b.operateNegative(tool)
}

func (b *Body) operatePositive(tool *BoundaryLoop) ([]*Body, error) {
	coarse, loops, err := Union(b.Outer, tool)
	if err != nil {
		return nil, err
	}
	precondition(coarse != Destroyed, "operate: positive tool union with outer produced Destroyed")

	var newOuter *BoundaryLoop
	var extraInners []*BoundaryLoop
	switch coarse {
	case Replaced:
		newOuter = loops[0]
	case UnchangedMerged, Unchanged:
		newOuter = b.Outer
	default: // Merged
		for _, l := range loops {
			if l.IsPositive() {
				internalInvariant(newOuter == nil, "operate: positive-tool union produced more than one positive loop")
				newOuter = l
			} else {
				extraInners = append(extraInners, l)
			}
		}
		internalInvariant(newOuter != nil, "operate: positive-tool union produced no positive loop")
	}

	newInners := extraInners
	for _, inner := range b.Inners {
		_, innerLoops, err := Union(inner, tool)
		if err != nil {
			return nil, err
		}
		for _, l := range innerLoops {
			if !l.IsPositive() {
				newInners = append(newInners, l)
			}
		}
	}

	return []*Body{{Outer: newOuter, Inners: newInners}}, nil
}

func (b *Body) operateNegative(tool *BoundaryLoop) ([]*Body, error) {
	rel, _ := b.Outer.ShapeRelationTo(tool)
	if rel == Disjoint {
		return []*Body{b.Copy()}, nil
	}

	coarse, loops, err := Intersection(b.Outer, tool)
	if err != nil {
		return nil, err
	}

	var seedOuters []*BoundaryLoop
	var newInnerCandidates []*BoundaryLoop
	switch coarse {
	case Destroyed:
		return nil, nil
	case Unchanged:
		seedOuters = []*BoundaryLoop{b.Outer}
	case Replaced:
		seedOuters = []*BoundaryLoop{loops[0]}
	default: // Merged
		for _, l := range loops {
			if l.IsPositive() {
				seedOuters = append(seedOuters, l)
			} else {
				newInnerCandidates = append(newInnerCandidates, l)
			}
		}
		internalInvariant(len(seedOuters) > 0, "operate: negative-tool intersection produced no positive loop")
	}

	var bodies []*Body
	for _, seed := range seedOuters {
		outer, inners, err := resolveInners(seed, append(append([]*BoundaryLoop{}, b.Inners...), newInnerCandidates...))
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, &Body{Outer: outer, Inners: mergeHolesPairwise(inners)})
	}
	return bodies, nil
}

// resolveInners cuts each candidate hole against the seed outer, one at
// a time, re-queuing previously verified holes whenever the outer
// itself changes shape.
func resolveInners(outer *BoundaryLoop, queue []*BoundaryLoop) (*BoundaryLoop, []*BoundaryLoop, error) {
	var verified []*BoundaryLoop
	for len(queue) > 0 {
		hole := queue[0]
		queue = queue[1:]

		coarse, loops, err := Intersection(hole, outer)
		if err != nil {
			return nil, nil, err
		}
		switch coarse {
		case Destroyed:
			// hole and outer cancel entirely: shouldn't occur for a
			// positive outer against a negative hole, but guard
			// against a degenerate merge result.
			continue
		case Replaced:
			// outer absorbed the hole outright (hole was outside it,
			// or exactly coincident); nothing new to keep.
			outer = loops[0]
		case Unchanged, UnchangedMerged:
			verified = append(verified, hole)
		default: // Merged: outer changed shape, requeue prior holes
			var newOuter *BoundaryLoop
			var fresh []*BoundaryLoop
			for _, l := range loops {
				if l.IsPositive() {
					internalInvariant(newOuter == nil, "operate: hole/outer union produced more than one positive loop")
					newOuter = l
				} else {
					fresh = append(fresh, l)
				}
			}
			if newOuter != nil && !sameLoop(newOuter, outer) {
				outer = newOuter
				queue = append(queue, verified...)
				verified = nil
			}
			verified = append(verified, fresh...)
		}
	}
	return outer, verified, nil
}

// sameLoop is a cheap identity check used to decide whether an
// outer actually changed across a resolveInners step.
func sameLoop(a, b *BoundaryLoop) bool {
	return a == b
}

// mergeHolesPairwise folds overlapping or nested holes together:
// overlapping holes union into one larger hole, a hole enclosed by
// another is dropped, disjoint holes are both kept.
func mergeHolesPairwise(holes []*BoundaryLoop) []*BoundaryLoop {
	for {
		merged := false
		for i := 0; i < len(holes); i++ {
			for j := i + 1; j < len(holes); j++ {
				rel, pairs := holes[i].ShapeRelationTo(holes[j])
				switch rel {
				case Disjoint:
					continue
				case IsSubsetOf:
					// holes[i]'s curve encloses holes[j]'s
					holes = dropIndex(holes, j)
				case IsSupersetOf:
					holes = dropIndex(holes, i)
				default: // Intersects
					if len(pairs) == 0 {
						// boundaries never meet: two separate holes
						continue
					}
					// Intersection of the filled regions joins the two
					// cut-away areas into one hole.
					coarse, loops, err := Intersection(holes[i], holes[j])
					if err != nil || coarse == Destroyed {
						continue
					}
					var newHole *BoundaryLoop
					for _, l := range loops {
						if !l.IsPositive() {
							newHole = l
							break
						}
					}
					if newHole == nil {
						continue
					}
					holes = dropIndex(holes, j)
					holes = dropIndex(holes, i)
					holes = append(holes, newHole)
				}
				merged = true
				break
			}
			if merged {
				break
			}
		}
		if !merged {
			break
		}
	}
	return holes
}

func dropIndex(s []*BoundaryLoop, i int) []*BoundaryLoop {
	out := make([]*BoundaryLoop, 0, len(s)-1)
	out = append(out, s[:i]...)
	out = append(out, s[i+1:]...)
	return out
}
