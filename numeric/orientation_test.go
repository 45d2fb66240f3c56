package numeric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidlabs/trimesh3d/numeric"
	"github.com/corvidlabs/trimesh3d/vec3"
)

func TestTriangleNormal(t *testing.T) {
	a := vec3.New(0, 0, 0)
	b := vec3.New(1, 0, 0)
	c := vec3.New(0, 1, 0)
	n := numeric.TriangleNormal(a, b, c)
	assert.Equal(t, vec3.New(0, 0, 1), n)
}

func TestPolygonNormalPlanarSquare(t *testing.T) {
	ring := []vec3.Vec3{
		vec3.New(0, 0, 0),
		vec3.New(1, 0, 0),
		vec3.New(1, 1, 0),
		vec3.New(0, 1, 0),
	}
	n := vec3.Normalize(numeric.PolygonNormal(ring))
	assert.InDelta(t, 0, n.X, 1e-9)
	assert.InDelta(t, 0, n.Y, 1e-9)
	assert.InDelta(t, 1, n.Z, 1e-9)
}
