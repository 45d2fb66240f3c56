package meshstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidlabs/trimesh3d/meshstore"
	"github.com/corvidlabs/trimesh3d/vec3"
)

// buildTriangle seeds a Store with a single closed triangular face a-b-c and
// returns the three half-edge ids in winding order.
func buildTriangle(s *meshstore.Store) (e0, e1, e2 meshstore.EdgeID) {
	a := s.AddVertex(meshstore.Vertex{P: vec3.New(0, 0, 0), N: vec3.New(0, 0, 1)})
	b := s.AddVertex(meshstore.Vertex{P: vec3.New(1, 0, 0), N: vec3.New(0, 0, 1)})
	c := s.AddVertex(meshstore.Vertex{P: vec3.New(0, 1, 0), N: vec3.New(0, 0, 1)})

	e0 = s.NewEdge(a, b)
	e1 = s.NewEdge(b, c)
	e2 = s.NewEdge(c, a)
	s.SetNext(e0, e1)
	s.SetNext(e1, e2)
	s.SetNext(e2, e0)
	return e0, e1, e2
}

func TestNewEdgeAndAccessors(t *testing.T) {
	s := meshstore.New()
	e0, e1, e2 := buildTriangle(s)

	assert.Equal(t, meshstore.VertexID(0), s.Org(e0))
	assert.Equal(t, meshstore.VertexID(1), s.Dst(e0))
	assert.Equal(t, e1, s.Next(e0))
	assert.Equal(t, meshstore.NoEdge, s.Twin(e0))
	assert.True(t, s.IsTriangleFace(e0))
	assert.True(t, s.IsTriangleFace(e1))
	assert.True(t, s.IsTriangleFace(e2))
}

func TestCreateTwin(t *testing.T) {
	s := meshstore.New()
	e0, _, _ := buildTriangle(s)

	t0 := s.CreateTwin(e0)
	assert.Equal(t, s.Dst(e0), s.Org(t0))
	assert.Equal(t, s.Org(e0), s.Dst(t0))
	assert.Equal(t, t0, s.Twin(e0))
	assert.Equal(t, e0, s.Twin(t0))

	// Calling CreateTwin again returns the same twin rather than minting
	// a second one.
	again := s.CreateTwin(e0)
	assert.Equal(t, t0, again)
}

func TestPrevWalksTriangle(t *testing.T) {
	s := meshstore.New()
	e0, e1, e2 := buildTriangle(s)

	prev, err := s.Prev(e0)
	require.NoError(t, err)
	assert.Equal(t, e2, prev)

	prev, err = s.Prev(e1)
	require.NoError(t, err)
	assert.Equal(t, e0, prev)

	prev, err = s.Prev(e2)
	require.NoError(t, err)
	assert.Equal(t, e1, prev)
}

func TestPrevUnterminatedFace(t *testing.T) {
	s := meshstore.New()
	a := s.AddVertex(meshstore.Vertex{P: vec3.New(0, 0, 0)})
	b := s.AddVertex(meshstore.Vertex{P: vec3.New(1, 0, 0)})
	e := s.NewEdge(a, b)
	// Next left as NoEdge: the face never closes.

	_, err := s.Prev(e)
	require.Error(t, err)
	assert.ErrorIs(t, err, meshstore.ErrBadTopology)
}

func TestPostBuildEmitsOneTriangle(t *testing.T) {
	s := meshstore.New()
	buildTriangle(s)

	tris := s.PostBuild()
	require.Len(t, tris, 1)
	assert.Equal(t, meshstore.Triangle{A: 0, B: 2, C: 1}, tris[0])
}
