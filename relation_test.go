// github.com/cutkernel/planar - a 2D planar-region Boolean-geometry kernel

package planar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShapeRelationDisjoint(t *testing.T) {
	a := NewRectangleLoop(0, 0, 1, 1)
	b := NewRectangleLoop(10, 10, 11, 11)
	rel, pairs := a.ShapeRelationTo(b)
	assert.Equal(t, Disjoint, rel)
	assert.Empty(t, pairs)
}

func TestShapeRelationIsSubsetOf(t *testing.T) {
	outer := NewRectangleLoop(0, 0, 10, 10)
	inner := NewRectangleLoop(2, 2, 5, 5)
	rel, _ := outer.ShapeRelationTo(inner)
	assert.Equal(t, IsSupersetOf, rel)

	rel2, _ := inner.ShapeRelationTo(outer)
	assert.Equal(t, IsSubsetOf, rel2)
}

func TestShapeRelationIntersectsOverlappingRectangles(t *testing.T) {
	a := NewRectangleLoop(0, 0, 10, 10)
	b := NewRectangleLoop(5, 5, 15, 15)
	rel, pairs := a.ShapeRelationTo(b)
	assert.Equal(t, Intersects, rel)
	assert.NotEmpty(t, pairs)
}

func TestShapeRelationHoleStrictlyInsideOuterHasNoCrossings(t *testing.T) {
	outer := NewRectangleLoop(0, 0, 10, 10)
	tool := NewRectangleLoop(2, 2, 4, 4).Reverse()
	rel, pairs := outer.ShapeRelationTo(tool)
	assert.Equal(t, Intersects, rel)
	assert.Empty(t, pairs)
}

func TestLoopRelationToEnclosesAndEnclosedBy(t *testing.T) {
	outer := NewRectangleLoop(0, 0, 10, 10)
	inner := NewRectangleLoop(2, 2, 5, 5)
	rel, _ := outer.LoopRelationTo(inner)
	assert.Equal(t, BoundaryEncloses, rel)

	rel2, _ := inner.LoopRelationTo(outer)
	assert.Equal(t, BoundaryEnclosedBy, rel2)
}
