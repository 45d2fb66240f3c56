package triangulate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidlabs/trimesh3d/meshstore"
	"github.com/corvidlabs/trimesh3d/triangulate"
	"github.com/corvidlabs/trimesh3d/vec3"
)

func square() []meshstore.Vertex {
	up := vec3.New(0, 0, 1)
	return []meshstore.Vertex{
		{P: vec3.New(0, 0, 0), N: up},
		{P: vec3.New(1, 0, 0), N: up},
		{P: vec3.New(1, 1, 0), N: up},
		{P: vec3.New(0, 1, 0), N: up},
	}
}

func TestNewRejectsTooFewVertices(t *testing.T) {
	_, err := triangulate.New([]meshstore.Vertex{
		{P: vec3.New(0, 0, 0)},
		{P: vec3.New(1, 0, 0)},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, triangulate.ErrInvalidInput)
}

func TestNewRejectsNonFiniteVertex(t *testing.T) {
	bad := square()
	bad[2].P = vec3.New(math.NaN(), 1, 0)

	_, err := triangulate.New(bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, triangulate.ErrInvalidInput)
}

func TestNewRejectsNonFiniteNormal(t *testing.T) {
	bad := square()
	bad[1].N = vec3.New(math.Inf(1), 0, 0)

	_, err := triangulate.New(bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, triangulate.ErrInvalidInput)
}

func TestNewAcceptsValidBoundary(t *testing.T) {
	tr, err := triangulate.New(square())
	require.NoError(t, err)
	require.NotNil(t, tr)
	assert.Equal(t, 4, tr.BoundaryCount())
	assert.Nil(t, tr.Warnings())
}

func TestWithOptionsOverrideDefaults(t *testing.T) {
	tr, err := triangulate.New(square(),
		triangulate.WithSplitThreshold(5),
		triangulate.WithThinThreshold(0.1),
		triangulate.WithOppositeNormalIntruders(false),
	)
	require.NoError(t, err)
	require.NotNil(t, tr)
}
