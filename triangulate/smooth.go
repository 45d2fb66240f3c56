package triangulate

import (
	"github.com/corvidlabs/trimesh3d/meshstore"
	"github.com/corvidlabs/trimesh3d/numeric"
	"github.com/corvidlabs/trimesh3d/vec3"
)

// Smooth runs iters Laplacian-like passes over the already-triangulated
// mesh, kept as a separate opt-in step rather than folded into Triangulate
// so an embedder can inspect the unsmoothed mesh first. It does not alter
// topology, only vertex positions and normals, and must be called after
// Triangulate has returned successfully.
func (t *Triangulator) Smooth(iters int) error {
	for n := 0; n < iters; n++ {
		count := t.store.NumEdges()
		for id := 0; id < count; id++ {
			if err := t.smoothAt(meshstore.EdgeID(id)); err != nil {
				return err
			}
		}
	}
	return nil
}

// smoothAt recomputes the position of Org(edge) as a convex combination of
// itself and the centroid of every vertex reachable by walking
// Next().Next() then Twin() around Org(edge) (one step per incident
// triangle), with the interpolation coefficient derived from how much the
// surrounding triangle normals disagree with each other: a flat
// neighborhood (all normals nearly parallel) barely moves the vertex, a
// sharply creased one moves it close to the centroid.
func (t *Triangulator) smoothAt(edge meshstore.EdgeID) error {
	if !t.store.IsTriangleFace(edge) {
		return nil
	}

	org := t.store.Org(edge)
	v0 := t.store.Vertex(org)
	v1 := t.store.Vertex(t.store.Dst(edge))

	pnt := vec3.Add(v0.P, v1.P)
	nor := vec3.Add(v0.N, v1.N)
	counter := 2

	var normals []vec3.Vec3
	bound := t.store.NumEdges() + 1

	curr := edge
	for i := 0; i < bound; i++ {
		if !t.store.IsTriangleFace(curr) {
			return nil
		}
		n1 := t.store.Next(curr)
		n2 := t.store.Next(n1)
		normals = append(normals, numeric.TriangleNormal(
			t.store.Vertex(t.store.Org(curr)).P,
			t.store.Vertex(t.store.Org(n1)).P,
			t.store.Vertex(t.store.Org(n2)).P,
		))

		curr = n2
		v := t.store.Vertex(t.store.Org(curr))
		pnt = vec3.Add(pnt, v.P)
		nor = vec3.Add(nor, v.N)
		counter++

		curr = t.store.Twin(curr)
		if curr == meshstore.NoEdge {
			return nil
		}
		if curr == edge {
			break
		}
	}

	cosaMin := 1.0
	for i := 0; i < len(normals); i++ {
		ni := vec3.Normalize(normals[i])
		for j := i + 1; j < len(normals); j++ {
			nj := vec3.Normalize(normals[j])
			if cosa := vec3.Dot(ni, nj); cosa < cosaMin {
				cosaMin = cosa
			}
		}
	}

	coef := (1 - cosaMin) * 0.5
	if coef < 0 {
		coef = 0
	}
	if coef > 1 {
		coef = 1
	}

	pnt = vec3.Scale(pnt, 1/float64(counter))
	nor = vec3.Normalize(nor)
	dp := vec3.Scale(vec3.Sub(pnt, v0.P), coef)

	t.store.SetVertex(org, meshstore.Vertex{P: vec3.Add(v0.P, dp), N: nor})
	return nil
}
