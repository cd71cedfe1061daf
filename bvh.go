// github.com/cutkernel/planar - a 2D planar-region Boolean-geometry kernel

package planar

import (
	"cmp"
	"math"
	"slices"
)

// bvhLeafCap is the maximum number of elements held directly by a leaf
// node before the builder splits again.
const bvhLeafCap = 3

// bvhNode is a node of the static bounding-volume hierarchy. A leaf has
// Left == nil and Right == nil and holds its elements in Elems (none only
// when the hierarchy was built over no elements); an interior node has
// both children set and an empty Elems.
type bvhNode struct {
	box   Aabb2
	elems []*Element
	left  *bvhNode
	right *bvhNode
}

// BVH is a single-shot static bounding-volume hierarchy over a fixed set
// of elements. It does not support incremental updates:
// a mutation of the owning loop requires rebuilding the BVH via
// BuildBVH.
type BVH struct {
	root *bvhNode
}

// axisStartX and axisStartY select which coordinate of an element's
// start point the builder splits on.
const (
	axisStartX = 0
	axisStartY = 1
)

// BuildBVH constructs a static BVH over elems. elems must point into
// storage the caller intends to keep stable (a loop's materialized
// element slice): the BVH stores the pointers directly rather than
// copies, so that positions produced from BVH queries carry the same
// element identity as the rest of the kernel (see Element.Closest).
func BuildBVH(elems []*Element) *BVH {
	return &BVH{root: buildBvhNode(elems, axisStartX)}
}

func buildBvhNode(elems []*Element, axis int) *bvhNode {
	if len(elems) <= bvhLeafCap {
		box := EmptyAabb2()
		for _, e := range elems {
			box = box.Union(e.Bounds())
		}
		return &bvhNode{box: box, elems: elems}
	}

	key := func(e *Element) float64 {
		if axis == axisStartX {
			return e.Start.X
		}
		return e.Start.Y
	}
	sorted := slices.Clone(elems)
	slices.SortFunc(sorted, func(a, b *Element) int {
		return cmp.Compare(key(a), key(b))
	})

	mid := len(sorted) / 2
	left := buildBvhNode(sorted[:mid], 1-axis)
	right := buildBvhNode(sorted[mid:], 1-axis)
	return &bvhNode{box: left.box.Union(right.box), left: left, right: right}
}

// Bounds returns the bounding box of the whole hierarchy, or the empty
// box if it has no elements.
func (t *BVH) Bounds() Aabb2 {
	if t == nil || t.root == nil {
		return EmptyAabb2()
	}
	return t.root.box
}

// QueryBox returns every element whose bounds intersect box.
func (t *BVH) QueryBox(box Aabb2) []*Element {
	var out []*Element
	var walk func(n *bvhNode)
	walk = func(n *bvhNode) {
		if n == nil || !n.box.Intersects(box) {
			return
		}
		if n.left == nil {
			for _, e := range n.elems {
				if e.Bounds().Intersects(box) {
					out = append(out, e)
				}
			}
			return
		}
		walk(n.left)
		walk(n.right)
	}
	if t != nil {
		walk(t.root)
	}
	return out
}

// Elements returns every element stored in the hierarchy, in no
// particular order. Used by brute-force reference implementations in
// tests.
func (t *BVH) Elements() []*Element {
	var out []*Element
	var walk func(n *bvhNode)
	walk = func(n *bvhNode) {
		if n == nil {
			return
		}
		if n.left == nil {
			out = append(out, n.elems...)
			return
		}
		walk(n.left)
		walk(n.right)
	}
	if t != nil {
		walk(t.root)
	}
	return out
}

// Intersections returns every intersection pair between an element of t
// and an element of other, found by a four-case recursive descent over
// both hierarchies: leaf/leaf computes analytical intersections
// directly, leaf/interior and interior/interior recurse into whichever
// side still has children. Pairs have First on t's side,
// Second on other's side.
func (t *BVH) Intersections(other *BVH) []IntersectionPair {
	if t == nil || other == nil {
		return nil
	}
	var out []IntersectionPair
	intersectBvhNodes(t.root, other.root, &out)
	return out
}

func intersectBvhNodes(a, b *bvhNode, out *[]IntersectionPair) {
	if a == nil || b == nil || !a.box.Intersects(b.box) {
		return
	}
	aLeaf := a.left == nil
	bLeaf := b.left == nil
	switch {
	case aLeaf && bLeaf:
		for _, ea := range a.elems {
			for _, eb := range b.elems {
				*out = append(*out, elementIntersections(ea, eb)...)
			}
		}
	case aLeaf && !bLeaf:
		intersectBvhNodes(a, b.left, out)
		intersectBvhNodes(a, b.right, out)
	case !aLeaf && bLeaf:
		intersectBvhNodes(a.left, b, out)
		intersectBvhNodes(a.right, b, out)
	default:
		intersectBvhNodes(a.left, b.left, out)
		intersectBvhNodes(a.left, b.right, out)
		intersectBvhNodes(a.right, b.left, out)
		intersectBvhNodes(a.right, b.right, out)
	}
}

// ClosestElement returns the element of t closest to p, and the position
// on it, by descending into whichever child box is nearer p first and
// pruning a subtree once its closest possible distance exceeds the best
// distance found so far.
func (t *BVH) ClosestElement(p Point) (Position, bool) {
	if t == nil || t.root == nil {
		return Position{}, false
	}
	best := Position{}
	bestDist := math.Inf(1)
	var walk func(n *bvhNode)
	walk = func(n *bvhNode) {
		if n == nil || n.box.ClosestDistance(p) >= bestDist {
			return
		}
		if n.left == nil {
			for _, e := range n.elems {
				pos := e.Closest(p)
				d := pos.Surface().Point.Sub(p).Length()
				if d < bestDist {
					bestDist = d
					best = pos
				}
			}
			return
		}
		dl := n.left.box.ClosestDistance(p)
		dr := n.right.box.ClosestDistance(p)
		if dl <= dr {
			walk(n.left)
			walk(n.right)
		} else {
			walk(n.right)
			walk(n.left)
		}
	}
	walk(t.root)
	return best, best.Elem != nil
}
