// github.com/cutkernel/planar - a 2D planar-region Boolean-geometry kernel

package planar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBVHBoundsMatchesLoop(t *testing.T) {
	lp := NewRectangleLoop(0, 0, 10, 5)
	bvh := BuildBVH(lp.Elements())
	bounds := bvh.Bounds()
	assert.InDelta(t, 0, bounds.ClosestDistance(Point{X: 0, Y: 0}), 1e-6)
	assert.Len(t, bvh.Elements(), lp.Len())
}

func TestQueryBoxFindsOverlappingElementsOnly(t *testing.T) {
	lp := NewRectangleLoop(0, 0, 10, 10)
	bvh := BuildBVH(lp.Elements())

	hits := bvh.QueryBox(BoxOf(Point{X: -1, Y: -1}, Point{X: 1, Y: 1}))
	require.NotEmpty(t, hits)
	for _, e := range hits {
		assert.True(t, e.Bounds().Intersects(BoxOf(Point{X: -1, Y: -1}, Point{X: 1, Y: 1})))
	}

	none := bvh.QueryBox(BoxOf(Point{X: 100, Y: 100}, Point{X: 101, Y: 101}))
	assert.Empty(t, none)
}

func TestBVHIntersectionsMatchesBruteForce(t *testing.T) {
	a := NewRectangleLoop(0, 0, 10, 10)
	b := NewRectangleLoop(5, 5, 15, 15)

	bvhA := BuildBVH(a.Elements())
	bvhB := BuildBVH(b.Elements())
	pairs := bvhA.Intersections(bvhB)

	var brute []IntersectionPair
	for _, ea := range bvhA.Elements() {
		for _, eb := range bvhB.Elements() {
			brute = append(brute, elementIntersections(ea, eb)...)
		}
	}
	assert.Len(t, pairs, len(brute))
}

func TestClosestElementOnRectangle(t *testing.T) {
	lp := NewRectangleLoop(0, 0, 10, 10)
	bvh := BuildBVH(lp.Elements())

	pos, ok := bvh.ClosestElement(Point{X: 5, Y: -3})
	require.True(t, ok)
	assert.InDelta(t, 0, pos.Surface().Point.Y, 1e-9)
}

func TestClosestElementOnEmptyBVHIsNotOK(t *testing.T) {
	var bvh *BVH
	_, ok := bvh.ClosestElement(Point{})
	assert.False(t, ok)
}
