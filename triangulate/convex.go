package triangulate

import (
	"math"

	"github.com/corvidlabs/trimesh3d/meshstore"
	"github.com/corvidlabs/trimesh3d/numeric"
	"github.com/corvidlabs/trimesh3d/vec3"
)

// isConvex reports whether the ear (prev, apex, next) is convex at apex,
// with respect to apex's own surface normal: the cross
// product of the incoming and outgoing edge vectors, normalized, must agree
// with normal beyond convexThreshold. Testing against the apex's own normal,
// rather than one fixed global plane normal, is what lets prebuild run on a
// boundary that is not exactly planar.
func (t *Triangulator) isConvex(prev, apex, next, normal vec3.Vec3) bool {
	in := vec3.Sub(apex, prev)
	out := vec3.Sub(next, apex)
	cr := vec3.Cross(in, out)
	if vec3.Length(cr) == 0 {
		return false
	}
	return vec3.Dot(vec3.Normalize(cr), normal) > t.cfg.ConvexThreshold
}

// findConvexEdge scans once around the ring starting at from, testing
// every ear (Org(cur), Dst(cur), Dst(Next(cur))) in turn, and returns the
// convex one with the smallest chord length |p_pre - p_nxt| — the
// "sharpest ear" — or meshstore.NoEdge if the ring has no
// convex ear under ConvexThreshold.
func (t *Triangulator) findConvexEdge(from meshstore.EdgeID) meshstore.EdgeID {
	best := meshstore.NoEdge
	bestChord := math.MaxFloat64
	bound := t.store.NumEdges() + 1

	cur := from
	for i := 0; i < bound; i++ {
		next := t.store.Next(cur)
		prevP := t.store.Vertex(t.store.Org(cur)).P
		apexV := t.store.Vertex(t.store.Dst(cur))
		afterP := t.store.Vertex(t.store.Dst(next)).P

		if t.isConvex(prevP, apexV.P, afterP, apexV.N) {
			chord := vec3.Length(vec3.Sub(afterP, prevP))
			if chord < bestChord {
				bestChord = chord
				best = cur
			}
		}

		cur = next
		if cur == from {
			break
		}
	}
	return best
}

// findConvexEdgeAlt is prebuild's fallback when no ear on the ring tests
// convex under the strict threshold: a "cross-section-free" search that is
// kept as a distinct pass rather than folded into findConvexEdge, since it
// answers a different question (is the chord clean) rather than the same
// one more loosely. It scans the whole ring once,
// preferring a candidate ear whose chord (Org(cur), Dst(Next(cur))) does
// not cross any other octree-indexed frontier edge when both are projected
// onto the apex's own tangent plane; if no such clean chord exists, it
// falls back further to the globally shortest chord on the ring, convex or
// not, so prebuild can still make progress on a boundary that tests reflex
// everywhere under the current tolerance.
func (t *Triangulator) findConvexEdgeAlt(from meshstore.EdgeID) meshstore.EdgeID {
	bound := t.store.NumEdges() + 1

	clean := meshstore.NoEdge
	shortest := meshstore.NoEdge
	shortestLen := math.MaxFloat64

	cur := from
	for i := 0; i < bound; i++ {
		next := t.store.Next(cur)
		preID := t.store.Org(cur)
		apexID := t.store.Dst(cur)
		afterID := t.store.Dst(next)
		preP := t.store.Vertex(preID).P
		apexV := t.store.Vertex(apexID)
		afterP := t.store.Vertex(afterID).P

		chordLen := vec3.Length(vec3.Sub(afterP, preP))
		if chordLen < shortestLen {
			shortestLen = chordLen
			shortest = cur
		}

		if clean == meshstore.NoEdge &&
			!t.chordCrossesFrontier(preP, afterP, apexV.N, preID, apexID, afterID, cur, next) {
			clean = cur
		}

		cur = next
		if cur == from {
			break
		}
	}

	if clean != meshstore.NoEdge {
		return clean
	}
	return shortest
}

// chordCrossesFrontier projects the candidate chord (pre, after) and every
// octree-indexed frontier edge whose bounding box meets it onto the plane
// through pre with normal normal, and reports whether any 2D projected pair
// crosses. Edges sharing a vertex with the chord's own endpoints, or
// explicitly excluded (the chord's own two constituent half-edges), are not
// candidates for crossing.
func (t *Triangulator) chordCrossesFrontier(pre, after, normal vec3.Vec3, preID, apexID, afterID meshstore.VertexID, exclude ...meshstore.EdgeID) bool {
	box := vec3.BoxFromPoints([]vec3.Vec3{pre, after})
	pl := numeric.PlaneFromNormal(pre, normal)
	pu, pv := pl.Project(pre)
	au, av := pl.Project(after)
	chordP1 := numeric.Point2{U: pu, V: pv}
	chordP2 := numeric.Point2{U: au, V: av}

	excluded := make(map[meshstore.EdgeID]bool, len(exclude))
	for _, id := range exclude {
		excluded[id] = true
	}

	for _, c := range t.tree.Collect(box) {
		if excluded[c] {
			continue
		}
		a, b := t.store.Org(c), t.store.Dst(c)
		if a == preID || a == apexID || a == afterID || b == preID || b == apexID || b == afterID {
			continue
		}
		au2, av2 := pl.Project(t.store.Vertex(a).P)
		bu2, bv2 := pl.Project(t.store.Vertex(b).P)
		if numeric.SegmentsIntersect2D(chordP1, chordP2, numeric.Point2{U: au2, V: av2}, numeric.Point2{U: bu2, V: bv2}) {
			return true
		}
	}
	return false
}
