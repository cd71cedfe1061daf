// github.com/cutkernel/planar - a 2D planar-region Boolean-geometry kernel

package planar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawLineLineCrossing(t *testing.T) {
	l1 := NewLine2(Point{X: -1, Y: 0}, Point{X: 1, Y: 0})
	l2 := NewLine2(Point{X: 0, Y: -1}, Point{X: 0, Y: 1})
	pt, ok := rawLineLine(l1, l2)
	require.True(t, ok)
	assert.InDelta(t, 0, pt.X, 1e-9)
	assert.InDelta(t, 0, pt.Y, 1e-9)
}

func TestRawLineLineParallelIsNotOK(t *testing.T) {
	l1 := NewLine2(Point{X: 0, Y: 0}, Point{X: 1, Y: 0})
	l2 := NewLine2(Point{X: 0, Y: 1}, Point{X: 1, Y: 1})
	_, ok := rawLineLine(l1, l2)
	assert.False(t, ok)
}

func TestRawLineCircleTwoPoints(t *testing.T) {
	l := NewLine2(Point{X: -5, Y: 0}, Point{X: 5, Y: 0})
	c := Circle2{Center: Point{X: 0, Y: 0}, Radius: 2}
	pts := rawLineCircle(l, c)
	require.Len(t, pts, 2)
}

func TestRawLineCircleTangent(t *testing.T) {
	l := NewLine2(Point{X: -5, Y: 2}, Point{X: 5, Y: 2})
	c := Circle2{Center: Point{X: 0, Y: 0}, Radius: 2}
	pts := rawLineCircle(l, c)
	require.Len(t, pts, 1)
	assert.InDelta(t, 0, pts[0].X, 1e-6)
}

func TestRawLineCircleMiss(t *testing.T) {
	l := NewLine2(Point{X: -5, Y: 10}, Point{X: 5, Y: 10})
	c := Circle2{Center: Point{X: 0, Y: 0}, Radius: 2}
	assert.Empty(t, rawLineCircle(l, c))
}

func TestRawCircleCircleOverlapping(t *testing.T) {
	c1 := Circle2{Center: Point{X: 0, Y: 0}, Radius: 5}
	c2 := Circle2{Center: Point{X: 6, Y: 0}, Radius: 5}
	pts := rawCircleCircle(c1, c2)
	require.Len(t, pts, 2)
	for _, p := range pts {
		assert.InDelta(t, 3, p.X, 1e-6)
	}
}

func TestRawCircleCircleSeparate(t *testing.T) {
	c1 := Circle2{Center: Point{X: 0, Y: 0}, Radius: 1}
	c2 := Circle2{Center: Point{X: 100, Y: 0}, Radius: 1}
	assert.Empty(t, rawCircleCircle(c1, c2))
}

func TestElementIntersectionsSegmentSegment(t *testing.T) {
	a := NewSegment(Point{X: -1, Y: 0}, Point{X: 1, Y: 0}, 0)
	b := NewSegment(Point{X: 0, Y: -1}, Point{X: 0, Y: 1}, 0)
	pairs := elementIntersections(&a, &b)
	require.Len(t, pairs, 1)
	assert.InDelta(t, 1, pairs[0].First.L, 1e-9)
	assert.InDelta(t, 1, pairs[0].Second.L, 1e-9)
}

func TestElementIntersectionsSegmentMissesArc(t *testing.T) {
	a := NewSegment(Point{X: -10, Y: 5}, Point{X: 10, Y: 5}, 0)
	b := NewArc(Point{X: 0, Y: 0}, 1, 0, 2*math.Pi, 0)
	assert.Empty(t, elementIntersections(&a, &b))
}

func TestElementIntersectionsArcArc(t *testing.T) {
	a := NewArc(Point{X: 0, Y: 0}, 5, 0, 2*math.Pi, 0)
	b := NewArc(Point{X: 6, Y: 0}, 5, 0, 2*math.Pi, 0)
	pairs := elementIntersections(&a, &b)
	assert.Len(t, pairs, 2)
}

func TestMatchIntersectionsRangeChecksOwnElement(t *testing.T) {
	e := NewSegment(Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, 0)
	farAway := Position{L: 50, Elem: &Element{Kind: KindSegment, Start: Point{X: 5, Y: 0}, End: Point{X: 10, Y: 0}}}
	assert.Empty(t, e.MatchIntersections([]Position{farAway}))
}
