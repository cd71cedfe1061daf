// github.com/cutkernel/planar - a 2D planar-region Boolean-geometry kernel

package planar

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnionDisjointKeepsBoth(t *testing.T) {
	a := NewRectangleLoop(0, 0, 1, 1)
	b := NewRectangleLoop(10, 10, 11, 11)
	coarse, loops, err := Union(a, b)
	require.NoError(t, err)
	assert.Equal(t, Merged, coarse)
	assert.Len(t, loops, 2)
}

func TestUnionOverlappingRectanglesGrowsOuter(t *testing.T) {
	a := NewRectangleLoop(0, 0, 10, 10)
	b := NewRectangleLoop(5, 5, 15, 15)
	coarse, loops, err := Union(a, b)
	require.NoError(t, err)
	assert.Equal(t, Merged, coarse)
	require.Len(t, loops, 1)

	union := loops[0]
	assert.True(t, union.IsPositive())
	assert.Greater(t, union.Area(), a.Area())
	assert.Greater(t, union.Area(), b.Area())
	assert.True(t, union.Encloses(Point{X: 1, Y: 1}))
	assert.True(t, union.Encloses(Point{X: 14, Y: 14}))
	assert.False(t, union.Encloses(Point{X: 20, Y: 20}))
}

func TestIntersectionOverlappingRectangles(t *testing.T) {
	a := NewRectangleLoop(0, 0, 10, 10)
	b := NewRectangleLoop(5, 5, 15, 15)
	coarse, loops, err := Intersection(a, b)
	require.NoError(t, err)
	assert.Equal(t, Merged, coarse)
	require.Len(t, loops, 1)

	overlap := loops[0]
	assert.InDelta(t, 25, overlap.Area(), 1e-6)
	assert.True(t, overlap.Encloses(Point{X: 7, Y: 7}))
	assert.False(t, overlap.Encloses(Point{X: 1, Y: 1}))
}

func TestUnionHoleStrictlyInsideOuterIsMergedWithBoth(t *testing.T) {
	outer := NewRectangleLoop(0, 0, 10, 10)
	hole := NewRectangleLoop(2, 2, 4, 4).Reverse() // negative, strictly inside
	coarse, loops, err := Union(outer, hole)
	require.NoError(t, err)
	assert.Equal(t, Merged, coarse)
	assert.Len(t, loops, 2)
}

func TestIntersectionOfDisjointLoopsIsDestroyed(t *testing.T) {
	a := NewRectangleLoop(0, 0, 1, 1)
	b := NewRectangleLoop(10, 10, 11, 11)
	coarse, loops, err := Intersection(a, b)
	require.NoError(t, err)
	assert.Equal(t, Destroyed, coarse)
	assert.Nil(t, loops)
}

func TestMergeLogsWarnAndReturnsErrOnNonTermination(t *testing.T) {
	a := NewRectangleLoop(0, 0, 10, 10)
	b := NewRectangleLoop(5, 5, 15, 15)
	_, pairs := a.ShapeRelationTo(b)
	require.NotEmpty(t, pairs)

	var onlyUnionValid []IntersectionPair
	for _, pr := range pairs {
		if first, second := validForOp(pr, opUnion); first || second {
			onlyUnionValid = append(onlyUnionValid, pr)
		}
	}
	require.NotEmpty(t, onlyUnionValid)

	var buf bytes.Buffer
	prior := MergeLogger
	MergeLogger = zerolog.New(&buf)
	defer func() { MergeLogger = prior }()

	// Walk from the first valid crossing with a budget of one iteration:
	// the walk can start but runs out long before it gets back round to
	// that crossing, forcing the iteration cap.
	_, _, err := extractOneLoop(a, b, onlyUnionValid[:1], opUnion, 1)
	assert.True(t, errors.Is(err, ErrMergeDidNotTerminate))
	assert.Contains(t, buf.String(), "iteration cap")
}
