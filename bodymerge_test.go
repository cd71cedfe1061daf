// github.com/cutkernel/planar - a 2D planar-region Boolean-geometry kernel

package planar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeBodiesKeepsDisjointBodiesApart(t *testing.T) {
	a := NewBody(NewRectangleLoop(0, 0, 1, 1))
	b := NewBody(NewRectangleLoop(10, 10, 11, 11))

	set := NewBodySet([]*Body{a, b})
	merged, err := set.MergeBodies()
	require.NoError(t, err)
	assert.Len(t, merged, 2)
}

func TestMergeBodiesFoldsOverlappingIntoOne(t *testing.T) {
	a := NewBody(NewRectangleLoop(0, 0, 10, 10))
	b := NewBody(NewRectangleLoop(5, 5, 15, 15))
	c := NewBody(NewRectangleLoop(12, 12, 20, 20))

	set := NewBodySet([]*Body{a, b, c})
	merged, err := set.MergeBodies()
	require.NoError(t, err)
	require.Len(t, merged, 1)
	assert.True(t, merged[0].Encloses(Point{X: 1, Y: 1}))
	assert.True(t, merged[0].Encloses(Point{X: 19, Y: 19}))
}

func TestMergeBodiesLargestOuterAbsorbsNestedSmaller(t *testing.T) {
	big := NewBody(NewRectangleLoop(0, 0, 100, 100))
	small := NewBody(NewRectangleLoop(10, 10, 20, 20))

	set := NewBodySet([]*Body{small, big})
	merged, err := set.MergeBodies()
	require.NoError(t, err)
	require.Len(t, merged, 1)
	assert.InDelta(t, big.Area(), merged[0].Area(), 1e-6)
}

func TestOrderByArea(t *testing.T) {
	assert.Equal(t, -1, orderByArea(1, 2))
	assert.Equal(t, 1, orderByArea(2, 1))
	assert.Equal(t, 0, orderByArea(2, 2))
}
