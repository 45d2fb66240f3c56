package triangulate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidlabs/trimesh3d/fixtures"
	"github.com/corvidlabs/trimesh3d/meshstore"
	"github.com/corvidlabs/trimesh3d/numeric"
	"github.com/corvidlabs/trimesh3d/triangulate"
	"github.com/corvidlabs/trimesh3d/vec3"
)

// assertValidTriangulation checks the structural invariants every
// triangulation must satisfy regardless of boundary shape: every triangle's
// three vertex indices are distinct and address a real vertex, and every
// triangle's face normal agrees with the vertices it spans.
func assertValidTriangulation(t *testing.T, tr *triangulate.Triangulator, tris []meshstore.Triangle) {
	t.Helper()
	verts := tr.Vertices()
	require.NotEmpty(t, tris)
	for _, tri := range tris {
		assert.NotEqual(t, tri.A, tri.B)
		assert.NotEqual(t, tri.B, tri.C)
		assert.NotEqual(t, tri.A, tri.C)
		assert.Less(t, int(tri.A), len(verts))
		assert.Less(t, int(tri.B), len(verts))
		assert.Less(t, int(tri.C), len(verts))

		a, b, c := verts[tri.A], verts[tri.B], verts[tri.C]
		faceNormal := numeric.TriangleNormal(a.P, b.P, c.P)
		meanNormal := vec3.Add(vec3.Add(a.N, b.N), c.N)
		assert.Greater(t, vec3.Dot(faceNormal, meanNormal), 0.0)
	}
}

func edgeKey(a, b meshstore.VertexID) [2]meshstore.VertexID {
	if a > b {
		a, b = b, a
	}
	return [2]meshstore.VertexID{a, b}
}

// assertBoundaryReproduced checks, for a triangulation with no refinement
// (so every original boundary edge survives undivided), that each edge
// (i, (i+1) mod n) of the original ring appears as a side of exactly one
// emitted triangle, and that no other edge does: the set of edges appearing
// in exactly one triangle equals the boundary ring exactly.
func assertBoundaryReproduced(t *testing.T, boundaryCount int, tris []meshstore.Triangle) {
	t.Helper()
	counts := map[[2]meshstore.VertexID]int{}
	for _, tri := range tris {
		counts[edgeKey(tri.A, tri.B)]++
		counts[edgeKey(tri.B, tri.C)]++
		counts[edgeKey(tri.C, tri.A)]++
	}
	for i := 0; i < boundaryCount; i++ {
		k := edgeKey(meshstore.VertexID(i), meshstore.VertexID((i+1)%boundaryCount))
		assert.Equal(t, 1, counts[k], "boundary edge %d-%d should border exactly one triangle", i, (i+1)%boundaryCount)
	}
	singletons := 0
	for _, c := range counts {
		if c == 1 {
			singletons++
		}
	}
	assert.Equal(t, boundaryCount, singletons, "only the original boundary edges should border exactly one triangle")
}

// triangulatedArea sums the areas of every emitted triangle.
func triangulatedArea(verts []meshstore.Vertex, tris []meshstore.Triangle) float64 {
	area := 0.0
	for _, tri := range tris {
		a, b, c := verts[tri.A].P, verts[tri.B].P, verts[tri.C].P
		area += 0.5 * vec3.Length(numeric.TriangleNormal(a, b, c))
	}
	return area
}

func TestTriangulateUnitSquare(t *testing.T) {
	tr, err := triangulate.New(fixtures.UnitSquare())
	require.NoError(t, err)

	tris, err := tr.Triangulate()
	require.NoError(t, err)
	assertValidTriangulation(t, tr, tris)

	// A convex quadrilateral with no refinement-triggering edges and no
	// interior points always resolves to exactly two triangles.
	assert.Len(t, tris, 2)
	assert.Equal(t, 4, len(tr.Vertices()))

	assertBoundaryReproduced(t, tr.BoundaryCount(), tris)
	assert.InDelta(t, 1.0, triangulatedArea(tr.Vertices(), tris), 1e-9)
}

func TestTriangulateLShape(t *testing.T) {
	tr, err := triangulate.New(fixtures.LShape())
	require.NoError(t, err)

	tris, err := tr.Triangulate()
	require.NoError(t, err)
	assertValidTriangulation(t, tr, tris)

	// A simple hexagon with no interior points always resolves to n-2 = 4
	// triangles, convex or concave.
	assert.Len(t, tris, 4)

	assertBoundaryReproduced(t, tr.BoundaryCount(), tris)
	// Shoelace area of (0,0),(2,0),(2,1),(1,1),(1,2),(0,2) is 3.
	assert.InDelta(t, 3.0, triangulatedArea(tr.Vertices(), tris), 1e-9)
}

func TestTriangulateRegularPolygon(t *testing.T) {
	n := 12
	tr, err := triangulate.New(fixtures.RegularPolygon(n, 5), triangulate.WithSplitThreshold(1000))
	require.NoError(t, err)

	tris, err := tr.Triangulate()
	require.NoError(t, err)
	assertValidTriangulation(t, tr, tris)
	assert.Len(t, tris, n-2)
	assert.Equal(t, n, len(tr.Vertices()))

	assertBoundaryReproduced(t, tr.BoundaryCount(), tris)
	// Area of a regular n-gon inscribed in radius r is 0.5*n*r^2*sin(2*pi/n).
	assert.InDelta(t, 75.0, triangulatedArea(tr.Vertices(), tris), 1e-6)
}

func TestTriangulateHemicircleNonPlanar(t *testing.T) {
	n := 6
	tr, err := triangulate.New(fixtures.Hemicircle(n, 1.0), triangulate.WithSplitThreshold(1000))
	require.NoError(t, err)

	tris, err := tr.Triangulate()
	require.NoError(t, err)
	assertValidTriangulation(t, tr, tris)
	assert.Len(t, tris, n-2)

	// assertValidTriangulation already checks each face normal against the
	// dot product of its own three vertex normals; confirm it also agrees
	// with the mean normal over the whole boundary, since every vertex here
	// points outward from a common hemicircle.
	verts := tr.Vertices()
	var meanNormal vec3.Vec3
	for _, v := range verts[:tr.BoundaryCount()] {
		meanNormal = vec3.Add(meanNormal, v.N)
	}
	for _, tri := range tris {
		a, b, c := verts[tri.A].P, verts[tri.B].P, verts[tri.C].P
		faceNormal := numeric.TriangleNormal(a, b, c)
		assert.Greater(t, vec3.Dot(faceNormal, meanNormal), 0.0)
	}
}

func TestTriangulateNearlyCollinearTrigger(t *testing.T) {
	tr, err := triangulate.New(fixtures.NearlyCollinearTrigger(), triangulate.WithSplitThreshold(1000))
	require.NoError(t, err)

	tris, err := tr.Triangulate()
	require.NoError(t, err)
	assertValidTriangulation(t, tr, tris)
	assert.Len(t, tris, len(fixtures.NearlyCollinearTrigger())-2)
}

func TestTriangulateWithRefinementAddsVertices(t *testing.T) {
	// A large unit-edge-relative boundary with an aggressive split threshold
	// forces refinement to introduce new vertices along the long edges.
	big := fixtures.RegularPolygon(6, 20)
	tr, err := triangulate.New(big, triangulate.WithSplitThreshold(0.5))
	require.NoError(t, err)

	tris, err := tr.Triangulate()
	require.NoError(t, err)
	assertValidTriangulation(t, tr, tris)

	assert.Greater(t, len(tr.Vertices()), tr.BoundaryCount())
}

func TestSmoothAfterTriangulateDoesNotError(t *testing.T) {
	tr, err := triangulate.New(fixtures.RegularPolygon(10, 3), triangulate.WithSplitThreshold(1000))
	require.NoError(t, err)

	_, err = tr.Triangulate()
	require.NoError(t, err)

	require.NoError(t, tr.Smooth(1))
}
