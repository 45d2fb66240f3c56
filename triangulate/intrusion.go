package triangulate

import (
	"github.com/corvidlabs/trimesh3d/meshstore"
	"github.com/corvidlabs/trimesh3d/numeric"
	"github.com/corvidlabs/trimesh3d/vec3"
)

// findIntrudeEdge walks the current frontier ring from just past the
// candidate ear at e — the triangle (pre, cur, nxt) = (Org(e), Dst(e),
// Dst(Next(e))) — looking for the deepest admissible intruder: a ring
// vertex q that (1) projects inside the ear's own plane
// triangle, (2) falls on the same side of chord (pre, nxt) as cur, (3) is
// strictly closer to that chord than cur itself (otherwise it is not really
// inside the would-be ear), and (4) is within twice that chord distance of
// cur (a locality bound ruling out far-flung, coincidentally-colinear
// vertices). Among admissible candidates the one with the largest
// perpendicular distance to the chord wins, since that is the one whose
// ear-clip would otherwise most violate planarity. With
// RejectOppositeNormalIntruders set, a candidate whose vertex normal
// disagrees with the ear apex's normal is rejected too, since such a vertex
// belongs to a different fold of a non-planar boundary.
func (t *Triangulator) findIntrudeEdge(e meshstore.EdgeID) meshstore.EdgeID {
	next := t.store.Next(e)
	preV := t.store.Vertex(t.store.Org(e))
	curV := t.store.Vertex(t.store.Dst(e))
	nxtV := t.store.Vertex(t.store.Dst(next))

	chordDist, _ := numeric.DistToLine(preV.P, nxtV.P, curV.P)
	distChord := vec3.Length(chordDist)

	best := meshstore.NoEdge
	bestDepth := 0.0
	bound := t.store.NumEdges() + 1

	curr := t.store.Next(next)
	for i := 0; i < bound && curr != e && t.store.Next(curr) != e; i++ {
		q := t.store.Dst(curr)
		qv := t.store.Vertex(q)

		if !numeric.PointInTriangle(qv.P, preV.P, curV.P, nxtV.P) {
			curr = t.store.Next(curr)
			continue
		}

		vd, _ := numeric.DistToLine(preV.P, nxtV.P, qv.P)
		if vec3.Dot(vd, chordDist) <= 0 {
			curr = t.store.Next(curr)
			continue
		}

		d := vec3.Length(vd)
		distToApex := vec3.Length(vec3.Sub(qv.P, curV.P))
		if d <= bestDepth || d >= distChord || distToApex > 2*distChord {
			curr = t.store.Next(curr)
			continue
		}

		if t.cfg.RejectOppositeNormalIntruders && vec3.Dot(qv.N, curV.N) < 0 {
			curr = t.store.Next(curr)
			continue
		}

		best = curr
		bestDepth = d
		curr = t.store.Next(curr)
	}

	return best
}

// clipEar cuts the convex, non-intruded ear at e — closing the triangle
// (Org(e), Dst(e), Dst(Next(e))) — and returns the half-edge that continues
// the shrunk frontier in its place. It assumes the ring containing e has
// more than three edges; prebuild never calls it otherwise, since a
// three-edge ring is already a closed triangle and is filtered out by the
// IsTriangleFace check at the top of its loop.
func (t *Triangulator) clipEar(e meshstore.EdgeID) (meshstore.EdgeID, error) {
	next := t.store.Next(e)
	a, c := t.store.Org(e), t.store.Dst(next)

	prevE, err := t.store.Prev(e)
	if err != nil {
		return meshstore.NoEdge, err
	}
	nn := t.store.Next(next)

	d1 := t.store.NewEdge(c, a)
	d1t := t.store.CreateTwin(d1)

	// close the ear as a triangle (a, Dst(e), c)
	t.store.SetNext(e, next)
	t.store.SetNext(next, d1)
	t.store.SetNext(d1, e)

	// frontier continues past the clipped apex
	t.store.SetNext(prevE, d1t)
	t.store.SetNext(d1t, nn)

	t.tree.Add(d1)
	t.tree.Add(d1t)

	return d1t, nil
}

// bridgeIntruder connects the intruding vertex Dst(ir) to the ear apex
// Dst(e) with a new diagonal, splitting the single ring through e and ir
// into two independent rings: diagonal d1 = (Dst(ir),
// Dst(e)) splices in as ir -> d1 -> Next(e), and its twin d2 splices in as
// e -> d2 -> Next(ir). It returns d1 and d2, one representative frontier
// edge from each resulting ring, for prebuild to continue processing
// independently.
func (t *Triangulator) bridgeIntruder(e, ir meshstore.EdgeID) (meshstore.EdgeID, meshstore.EdgeID, error) {
	cvNext := t.store.Next(e)
	irNext := t.store.Next(ir)
	apex := t.store.Dst(e)
	intruder := t.store.Dst(ir)

	d1 := t.store.NewEdge(intruder, apex)
	d2 := t.store.CreateTwin(d1)

	// ring A: ... -> ir -> d1(intruder,apex) -> cvNext -> ...
	t.store.SetNext(ir, d1)
	t.store.SetNext(d1, cvNext)

	// ring B: ... -> e -> d2(apex,intruder) -> irNext -> ...
	t.store.SetNext(e, d2)
	t.store.SetNext(d2, irNext)

	t.tree.Add(d1)
	t.tree.Add(d2)

	return d1, d2, nil
}
