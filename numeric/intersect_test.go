package numeric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidlabs/trimesh3d/numeric"
	"github.com/corvidlabs/trimesh3d/vec3"
)

func TestSegmentsIntersect2D(t *testing.T) {
	p1 := numeric.Point2{U: 0, V: 0}
	q1 := numeric.Point2{U: 1, V: 1}
	p2 := numeric.Point2{U: 0, V: 1}
	q2 := numeric.Point2{U: 1, V: 0}
	assert.True(t, numeric.SegmentsIntersect2D(p1, q1, p2, q2))

	p3 := numeric.Point2{U: 0, V: 0}
	q3 := numeric.Point2{U: 1, V: 0}
	p4 := numeric.Point2{U: 0, V: 1}
	q4 := numeric.Point2{U: 1, V: 1}
	assert.False(t, numeric.SegmentsIntersect2D(p3, q3, p4, q4))
}

func TestLineLine2D(t *testing.T) {
	a1 := numeric.Point2{U: 0, V: 0}
	a2 := numeric.Point2{U: 2, V: 2}
	b1 := numeric.Point2{U: 0, V: 2}
	b2 := numeric.Point2{U: 2, V: 0}

	p, ok := numeric.LineLine2D(a1, a2, b1, b2)
	assert.True(t, ok)
	assert.InDelta(t, 1, p.U, 1e-9)
	assert.InDelta(t, 1, p.V, 1e-9)

	_, ok = numeric.LineLine2D(a1, a2, numeric.Point2{U: 0, V: 1}, numeric.Point2{U: 2, V: 3})
	assert.False(t, ok)
}

func TestSegmentTriangleIntersect(t *testing.T) {
	a := vec3.New(0, 0, 0)
	b := vec3.New(2, 0, 0)
	c := vec3.New(0, 2, 0)

	hits := numeric.SegmentTriangleIntersect(vec3.New(0.3, 0.3, -1), vec3.New(0.3, 0.3, 1), a, b, c)
	assert.True(t, hits)

	misses := numeric.SegmentTriangleIntersect(vec3.New(5, 5, -1), vec3.New(5, 5, 1), a, b, c)
	assert.False(t, misses)

	coplanar := numeric.SegmentTriangleIntersect(vec3.New(0.3, 0.3, 0), vec3.New(0.5, 0.5, 0), a, b, c)
	assert.False(t, coplanar)
}
