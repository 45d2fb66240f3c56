package numeric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidlabs/trimesh3d/numeric"
	"github.com/corvidlabs/trimesh3d/vec3"
)

func TestSignedDistanceToLine(t *testing.T) {
	a := vec3.New(0, 0, 0)
	b := vec3.New(1, 0, 0)
	up := vec3.New(0, 0, 1)

	above := numeric.SignedDistanceToLine(vec3.New(0.5, 1, 0), a, b, up)
	below := numeric.SignedDistanceToLine(vec3.New(0.5, -1, 0), a, b, up)
	assert.Greater(t, above, 0.0)
	assert.Less(t, below, 0.0)
	assert.InDelta(t, above, -below, 1e-9)
}

func TestFootParam(t *testing.T) {
	a := vec3.New(0, 0, 0)
	b := vec3.New(10, 0, 0)
	assert.InDelta(t, 0.5, numeric.FootParam(vec3.New(5, 3, 0), a, b), 1e-9)
	assert.InDelta(t, -0.2, numeric.FootParam(vec3.New(-2, 0, 0), a, b), 1e-9)
	assert.InDelta(t, 1.1, numeric.FootParam(vec3.New(11, 0, 0), a, b), 1e-9)
}

func TestDistToLine(t *testing.T) {
	a := vec3.New(0, 0, 0)
	b := vec3.New(0, 0, 10)

	dist, outside := numeric.DistToLine(a, b, vec3.New(3, 0, 5))
	assert.False(t, outside)
	assert.InDelta(t, 3, vec3.Length(dist), 1e-9)

	_, outside = numeric.DistToLine(a, b, vec3.New(3, 0, 20))
	assert.True(t, outside)

	dist, outside = numeric.DistToLine(a, a, vec3.New(1, 1, 1))
	assert.True(t, outside)
	assert.Equal(t, vec3.Zero, dist)
}

func TestPointInTriangle(t *testing.T) {
	a := vec3.New(0, 0, 0)
	b := vec3.New(4, 0, 0)
	c := vec3.New(0, 4, 0)

	assert.True(t, numeric.PointInTriangle(vec3.New(1, 1, 0), a, b, c))
	assert.False(t, numeric.PointInTriangle(vec3.New(3, 3, 0), a, b, c))
	assert.True(t, numeric.PointInTriangle(a, a, b, c))
}
