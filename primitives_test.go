// github.com/cutkernel/planar - a 2D planar-region Boolean-geometry kernel

package planar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCircleFrom3PointsRightTriangle(t *testing.T) {
	c, err := NewCircleFrom3Points(Point{X: 0, Y: 0}, Point{X: 2, Y: 0}, Point{X: 0, Y: 2})
	require.NoError(t, err)
	assert.InDelta(t, 1, c.Center.X, 1e-9)
	assert.InDelta(t, 1, c.Center.Y, 1e-9)
	assert.InDelta(t, 1.4142135623730951, c.Radius, 1e-9)
}

func TestNewCircleFrom3PointsCollinearIsDegenerate(t *testing.T) {
	_, err := NewCircleFrom3Points(Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, Point{X: 2, Y: 0})
	assert.True(t, errors.Is(err, ErrDegenerateGeometry))
}

func TestAabb2UnionAndIntersects(t *testing.T) {
	a := BoxOf(Point{X: 0, Y: 0}, Point{X: 1, Y: 1})
	b := BoxOf(Point{X: 5, Y: 5}, Point{X: 6, Y: 6})
	assert.False(t, a.Intersects(b))

	u := a.Union(b)
	assert.InDelta(t, 0, u.LLx, 1e-9)
	assert.InDelta(t, 6, u.URx, 1e-9)
}

func TestAabb2EmptyIsUnionIdentity(t *testing.T) {
	empty := EmptyAabb2()
	a := BoxOf(Point{X: 1, Y: 1}, Point{X: 2, Y: 2})
	assert.Equal(t, a, empty.Union(a))
	assert.Equal(t, a, a.Union(empty))
}

func TestAabb2ClosestDistance(t *testing.T) {
	b := BoxOf(Point{X: 0, Y: 0}, Point{X: 10, Y: 10})
	assert.InDelta(t, 0, b.ClosestDistance(Point{X: 5, Y: 5}), 1e-9)
	assert.InDelta(t, 5, b.ClosestDistance(Point{X: 15, Y: 5}), 1e-9)
}

func TestLine2IntersectParams(t *testing.T) {
	l1 := NewLine2(Point{X: 0, Y: 0}, Point{X: 1, Y: 0})
	l2 := NewLine2(Point{X: 2, Y: -1}, Point{X: 2, Y: 1})
	tParam, _, ok := l1.IntersectParams(l2)
	require.True(t, ok)
	pt := l1.PointAt(tParam)
	assert.InDelta(t, 2, pt.X, 1e-9)
	assert.InDelta(t, 0, pt.Y, 1e-9)
}

func TestLine2IsCollinearWith(t *testing.T) {
	l1 := NewLine2(Point{X: 0, Y: 0}, Point{X: 1, Y: 0})
	l2 := NewLine2(Point{X: 5, Y: 0}, Point{X: 6, Y: 0})
	l3 := NewLine2(Point{X: 5, Y: 1}, Point{X: 6, Y: 1})
	assert.True(t, l1.IsCollinearWith(l2))
	assert.False(t, l1.IsCollinearWith(l3))
}
