// github.com/cutkernel/planar - a 2D planar-region Boolean-geometry kernel

package planar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/matrix"
)

func TestNewRectangleLoopIsPositive(t *testing.T) {
	lp := NewRectangleLoop(0, 0, 10, 5)
	assert.InDelta(t, 50, lp.Area(), 1e-9)
	assert.True(t, lp.IsPositive())
	assert.Equal(t, 4, lp.Len())
}

func TestNewCircleLoopArea(t *testing.T) {
	lp := NewCircleLoop(Point{X: 1, Y: 1}, 2)
	assert.InDelta(t, math.Pi*4, lp.Area(), 1e-6)
	assert.Equal(t, 1, lp.Len())
}

func TestNewLoopFromElementsRejectsGap(t *testing.T) {
	a := NewSegment(Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, 0)
	b := NewSegment(Point{X: 5, Y: 0}, Point{X: 0, Y: 1}, 1) // doesn't connect back
	assert.Panics(t, func() {
		NewLoopFromElements([]Element{a, b})
	})
}

func TestEnclosesRectangle(t *testing.T) {
	lp := NewRectangleLoop(0, 0, 10, 10)
	assert.True(t, lp.Encloses(Point{X: 5, Y: 5}))
	assert.False(t, lp.Encloses(Point{X: 15, Y: 5}))
}

func TestEnclosesCircle(t *testing.T) {
	lp := NewCircleLoop(Point{X: 0, Y: 0}, 5)
	assert.True(t, lp.Encloses(Point{X: 0, Y: 0}))
	assert.True(t, lp.Encloses(Point{X: 4, Y: 0}))
	assert.False(t, lp.Encloses(Point{X: 6, Y: 0}))
}

func TestTranslateRotateMirror(t *testing.T) {
	lp := NewRectangleLoop(0, 0, 2, 1)

	translated := lp.Translate(Vector{X: 3, Y: 4})
	assert.InDelta(t, lp.Area(), translated.Area(), 1e-9)
	assert.True(t, translated.Encloses(Point{X: 4, Y: 4.5}))

	rotated := lp.Rotate(Point{X: 1, Y: 0.5}, math.Pi)
	assert.InDelta(t, lp.Area(), rotated.Area(), 1e-9)

	mirrored := lp.MirrorY(0.5)
	assert.InDelta(t, lp.Area(), mirrored.Area(), 1e-9)
}

func TestTransformMatchesTranslate(t *testing.T) {
	lp := NewRectangleLoop(0, 0, 2, 1)

	m := matrix.Matrix{1, 0, 0, 1, 3, 4}
	transformed := lp.Transform(m)
	translated := lp.Translate(Vector{X: 3, Y: 4})
	assert.InDelta(t, translated.Area(), transformed.Area(), 1e-9)
	assert.True(t, transformed.Encloses(Point{X: 4, Y: 4.5}))
}

func TestTransformDetectsMirror(t *testing.T) {
	lp := NewRectangleLoop(0, 0, 2, 1)
	m := matrix.Matrix{-1, 0, 0, 1, 0, 0}
	mirrored := lp.Transform(m)
	assert.InDelta(t, lp.Area(), mirrored.Area(), 1e-9)
}

func TestTransformRejectsSingularMatrix(t *testing.T) {
	lp := NewRectangleLoop(0, 0, 2, 1)
	assert.Panics(t, func() {
		lp.Transform(matrix.Matrix{1, 0, 1, 0, 0, 0})
	})
}

func TestMirrorAcrossArbitraryLine(t *testing.T) {
	lp := NewRectangleLoop(0, 0, 2, 1)
	line := NewLine2(Point{X: 0, Y: 0}, Point{X: 1, Y: 1})
	mirrored := lp.Mirror(line)
	assert.InDelta(t, lp.Area(), mirrored.Area(), 1e-9)
}

func TestReverseFlipsArea(t *testing.T) {
	lp := NewRectangleLoop(0, 0, 10, 10)
	rev := lp.Reverse()
	assert.InDelta(t, -lp.Area(), rev.Area(), 1e-9)
}

func TestCopyIsIndependent(t *testing.T) {
	lp := NewRectangleLoop(0, 0, 10, 10)
	cp := lp.Copy()
	require.Equal(t, lp.Len(), cp.Len())
	assert.InDelta(t, lp.Area(), cp.Area(), 1e-9)

	cp.ring.Remove(cp.ring.headID)
	assert.Equal(t, 4, lp.Len())
}

func TestIsNullSetForEmptyLoop(t *testing.T) {
	lp := NewBoundaryLoop()
	assert.True(t, lp.IsNullSet())
}

func TestOffsetGrowsRectangle(t *testing.T) {
	lp := NewRectangleLoop(0, 0, 10, 10)
	grown := lp.Offset(1)
	assert.Greater(t, grown.Area(), lp.Area())
}

func TestOnBoundary(t *testing.T) {
	lp := NewRectangleLoop(0, 0, 10, 10)
	assert.True(t, lp.OnBoundary(Point{X: 5, Y: 0}))
	assert.False(t, lp.OnBoundary(Point{X: 5, Y: 5}))
}
