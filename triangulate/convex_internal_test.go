package triangulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidlabs/trimesh3d/meshstore"
	"github.com/corvidlabs/trimesh3d/vec3"
)

func newTestTriangulator(t *testing.T, boundary []meshstore.Vertex, opts ...Option) *Triangulator {
	t.Helper()
	tr, err := New(boundary, opts...)
	require.NoError(t, err)
	return tr
}

func TestIsConvexAgreesWithNormal(t *testing.T) {
	up := vec3.New(0, 0, 1)
	tr := newTestTriangulator(t, []meshstore.Vertex{
		{P: vec3.New(0, 0, 0), N: up},
		{P: vec3.New(1, 0, 0), N: up},
		{P: vec3.New(1, 1, 0), N: up},
		{P: vec3.New(0, 1, 0), N: up},
	})

	// (0,0) -> (1,0) -> (1,1): a convex right-angle corner under +Z normal.
	assert.True(t, tr.isConvex(vec3.New(0, 0, 0), vec3.New(1, 0, 0), vec3.New(1, 1, 0), up))

	// The same three points read as a corner of the opposite winding test
	// reflex under the same normal.
	assert.False(t, tr.isConvex(vec3.New(1, 1, 0), vec3.New(1, 0, 0), vec3.New(0, 0, 0), up))
}

func TestFindConvexEdgeFindsEarOnSquare(t *testing.T) {
	tr := newTestTriangulator(t, fixtureSquareBoundary())
	e := tr.findConvexEdge(0)
	assert.NotEqual(t, meshstore.NoEdge, e)
}

func TestMakeDelaunayIsIdempotent(t *testing.T) {
	tr := newTestTriangulator(t, fixtureSquareBoundary(), WithSplitThreshold(1000))
	_, err := tr.Triangulate()
	require.NoError(t, err)

	// Triangulate's own final pass already leaves the mesh locally Delaunay;
	// a further sweep must rotate nothing.
	count, err := tr.delaunayPass(false)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func fixtureSquareBoundary() []meshstore.Vertex {
	up := vec3.New(0, 0, 1)
	return []meshstore.Vertex{
		{P: vec3.New(0, 0, 0), N: up},
		{P: vec3.New(1, 0, 0), N: up},
		{P: vec3.New(1, 1, 0), N: up},
		{P: vec3.New(0, 1, 0), N: up},
	}
}
