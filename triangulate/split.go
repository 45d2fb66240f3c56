package triangulate

import (
	"errors"
	"fmt"

	"github.com/corvidlabs/trimesh3d/meshstore"
	"github.com/corvidlabs/trimesh3d/numeric"
	"github.com/corvidlabs/trimesh3d/vec3"
)

// refine bounds triangle size by repeatedly splitting edges longer than
// SplitThreshold*edgeLengthMean. Each successful split is interleaved with
// a localized Delaunay repair of its immediate neighborhood, which may
// itself schedule newly long edges for a later split. Once the outer loop
// exhausts, a full non-self-intersection-checked Delaunay pass brings the
// refined mesh to a fixed point.
func (t *Triangulator) refine() error {
	excluded := make(map[meshstore.EdgeID]bool)
	queue := t.collectLongEdges()

	bound := (t.store.NumEdges()*4 + 64) * 8
	steps := 0
	for len(queue) > 0 {
		steps++
		if steps > bound {
			return fmt.Errorf("triangulate: refine did not converge after %d steps: %w", bound, ErrBadTopology)
		}

		e := queue[0]
		queue = queue[1:]
		if excluded[e] {
			continue
		}
		if t.store.Twin(e) == meshstore.NoEdge {
			continue
		}
		if t.edgeLength(e) <= t.cfg.SplitThreshold*t.edgeLengthMean {
			continue
		}

		v, ok := t.getSplitPoint(e)
		if !ok {
			excluded[e] = true
			t.warn(fmt.Errorf("triangulate: edge %d not split, candidate point is too thin: %w", e, meshstore.ErrSplitFailed))
			continue
		}

		// The four edges immediately adjacent to e's two triangles, before
		// the split changes them, so they can be re-examined afterward
		// before refine() moves on.
		twin := t.store.Twin(e)
		rNext := t.store.Next(e)
		rPrev, err := t.store.Prev(e)
		if err != nil {
			return err
		}
		lNext := t.store.Next(twin)
		lPrev, err := t.store.Prev(twin)
		if err != nil {
			return err
		}
		adjacent := []meshstore.EdgeID{rNext, rPrev, lNext, lPrev}

		t.tree.Remove(e)
		t.tree.Remove(twin)

		newID := t.store.AddVertex(v)
		created, ok, err := t.store.SplitEdge(e, newID)
		if err != nil && !errors.Is(err, meshstore.ErrSplitFailed) {
			return err
		}
		if !ok {
			// Surrounding faces stopped being triangles since e was queued;
			// treat like any other SplitFailed and move on.
			t.tree.Add(e)
			t.tree.Add(twin)
			excluded[e] = true
			t.warn(fmt.Errorf("triangulate: edge %d not split, surrounding faces are not triangles: %w", e, meshstore.ErrSplitFailed))
			continue
		}

		t.tree.Add(e)
		t.tree.Add(twin)
		for _, c := range created {
			t.tree.Add(c)
		}

		// Eight half-edges immediately around the split vertex: e and
		// twin (re-homed) plus the six freshly created half-edges.
		seed := append([]meshstore.EdgeID{e, twin}, created...)
		if err := t.makeDelaunayLocal(seed, excluded, &queue); err != nil {
			return err
		}

		for _, a := range adjacent {
			if excluded[a] {
				continue
			}
			if t.edgeLength(a) > t.cfg.SplitThreshold*t.edgeLengthMean {
				queue = append(queue, a)
			}
		}
	}

	return t.makeDelaunay(false)
}

// collectLongEdges returns one representative half-edge per interior twin
// pair whose current length exceeds SplitThreshold*edgeLengthMean, the seed
// work list for refine.
func (t *Triangulator) collectLongEdges() []meshstore.EdgeID {
	var out []meshstore.EdgeID
	threshold := t.cfg.SplitThreshold * t.edgeLengthMean
	for _, e := range t.representativeEdges() {
		if t.store.Twin(e) == meshstore.NoEdge {
			continue
		}
		if t.edgeLength(e) > threshold {
			out = append(out, e)
		}
	}
	return out
}

// getSplitPoint computes the candidate midpoint vertex for splitting e and
// reports whether it is admissible: the midpoint of e's
// endpoints, normal the (re-normalized) sum of their normals, rejected as
// a too-thin sliver if, for any of the four lines joining one of e's
// endpoints to one of the two triangles' opposite apexes, the midpoint lies
// at a perpendicular distance under ThinThreshold*edgeLengthMean with its
// foot outside that line's segment.
func (t *Triangulator) getSplitPoint(e meshstore.EdgeID) (meshstore.Vertex, bool) {
	twin := t.store.Twin(e)
	org := t.store.Vertex(t.store.Org(e))
	dst := t.store.Vertex(t.store.Dst(e))

	p := vec3.Midpoint(org.P, dst.P)
	n := vec3.Normalize(vec3.Add(org.N, dst.N))

	q0 := t.store.Vertex(t.store.Dst(t.store.Next(e))).P
	q1 := t.store.Vertex(t.store.Dst(t.store.Next(twin))).P

	thin := t.cfg.ThinThreshold * t.edgeLengthMean
	lines := [][2]vec3.Vec3{{org.P, q0}, {dst.P, q0}, {org.P, q1}, {dst.P, q1}}
	for _, ln := range lines {
		dist, outside := numeric.DistToLine(ln[0], ln[1], p)
		if vec3.Length(dist) < thin && outside {
			return meshstore.Vertex{}, false
		}
	}

	return meshstore.Vertex{P: p, N: n}, true
}
