// github.com/cutkernel/planar - a 2D planar-region Boolean-geometry kernel

package planar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBodyRejectsNegativeOuter(t *testing.T) {
	neg := NewRectangleLoop(0, 0, 10, 10).Reverse()
	assert.Panics(t, func() {
		NewBody(neg)
	})
}

func TestNewBodyWithHolesRejectsPositiveHole(t *testing.T) {
	outer := NewRectangleLoop(0, 0, 10, 10)
	hole := NewRectangleLoop(2, 2, 4, 4) // positive, should be negative
	assert.Panics(t, func() {
		NewBodyWithHoles(outer, []*BoundaryLoop{hole})
	})
}

func TestBodyAreaSubtractsHoles(t *testing.T) {
	outer := NewRectangleLoop(0, 0, 10, 10)
	hole := NewRectangleLoop(2, 2, 4, 4).Reverse()
	b := NewBodyWithHoles(outer, []*BoundaryLoop{hole})
	assert.InDelta(t, 100-4, b.Area(), 1e-9)
}

func TestBodyEnclosesRespectsHoles(t *testing.T) {
	outer := NewRectangleLoop(0, 0, 10, 10)
	hole := NewRectangleLoop(2, 2, 4, 4).Reverse()
	b := NewBodyWithHoles(outer, []*BoundaryLoop{hole})
	assert.True(t, b.Encloses(Point{X: 1, Y: 1}))
	assert.False(t, b.Encloses(Point{X: 3, Y: 3}))
}

func TestOperatePositiveToolGrowsOuter(t *testing.T) {
	b := NewBody(NewRectangleLoop(0, 0, 10, 10))
	tool := NewRectangleLoop(5, 5, 15, 15)

	results, err := b.Operate(tool)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Greater(t, results[0].Area(), b.Area())
}

func TestOperateNegativeToolCarvesNewHole(t *testing.T) {
	b := NewBody(NewRectangleLoop(0, 0, 10, 10))
	tool := NewRectangleLoop(2, 2, 4, 4).Reverse()

	results, err := b.Operate(tool)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Len(t, results[0].Inners, 1)
	assert.False(t, results[0].Encloses(Point{X: 3, Y: 3}))
	assert.True(t, results[0].Encloses(Point{X: 1, Y: 1}))
}

func TestOperateNegativeToolOverlappingOuterCutsItBack(t *testing.T) {
	b := NewBody(NewRectangleLoop(0, 0, 10, 10))
	tool := NewRectangleLoop(8, -5, 20, 15).Reverse() // overlaps right edge

	results, err := b.Operate(tool)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Encloses(Point{X: 9, Y: 5}))
	assert.True(t, results[0].Encloses(Point{X: 1, Y: 5}))
}

func TestOperateNegativeToolDisjointFromOuterIsNoop(t *testing.T) {
	b := NewBody(NewRectangleLoop(0, 0, 10, 10))
	tool := NewRectangleLoop(100, 100, 110, 110).Reverse()

	results, err := b.Operate(tool)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.InDelta(t, b.Area(), results[0].Area(), 1e-9)
	assert.Empty(t, results[0].Inners)
}

func TestOperateNegativeToolJoiningTwoHolesMergesThem(t *testing.T) {
	outer := NewRectangleLoop(0, 0, 20, 10)
	holeA := NewRectangleLoop(2, 2, 5, 8).Reverse()
	holeB := NewRectangleLoop(12, 2, 15, 8).Reverse()
	b := NewBodyWithHoles(outer, []*BoundaryLoop{holeA, holeB})

	bridge := NewRectangleLoop(4, 4, 13, 6).Reverse()
	results, err := b.Operate(bridge)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Len(t, results[0].Inners, 1)
	assert.False(t, results[0].Encloses(Point{X: 8, Y: 5}))
}

func TestToSingleLoopPreservesArea(t *testing.T) {
	outer := NewRectangleLoop(0, 0, 10, 10)
	hole := NewRectangleLoop(2, 2, 4, 4).Reverse()
	b := NewBodyWithHoles(outer, []*BoundaryLoop{hole})
	single := b.ToSingleLoop()
	assert.InDelta(t, b.Area(), single.Area(), 1e-6)
}
