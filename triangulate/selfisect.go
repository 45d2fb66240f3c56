package triangulate

import (
	"github.com/corvidlabs/trimesh3d/meshstore"
	"github.com/corvidlabs/trimesh3d/numeric"
	"github.com/corvidlabs/trimesh3d/vec3"
)

// rotateCausesSelfIntersection reports whether rotating e would introduce a
// diagonal (between its two triangles' opposite apexes) that crosses some
// unrelated, already-closed triangle. It is the gate
// makeDelaunay's first (pre-split) pass applies when
// CheckSelfIntersectionOnRotate is set.
func (t *Triangulator) rotateCausesSelfIntersection(e meshstore.EdgeID) bool {
	twin := t.store.Twin(e)
	if twin == meshstore.NoEdge {
		return false
	}
	apexA := t.store.Dst(t.store.Next(e))
	apexB := t.store.Dst(t.store.Next(twin))
	p0 := t.store.Vertex(apexA).P
	p1 := t.store.Vertex(apexB).P
	return t.segmentSelfIntersects(p0, p1, apexA, apexB)
}

// segmentSelfIntersects collects every half-edge whose bounding box meets
// the candidate segment's box, groups the closed triangles among them
// (edge.Next.Next.Next == edge), skips any triangle sharing a vertex with
// the candidate (adjacency is not a crossing), and reports whether the exact
// segment-triangle test fires against any survivor.
func (t *Triangulator) segmentSelfIntersects(p0, p1 vec3.Vec3, endA, endB meshstore.VertexID) bool {
	box := vec3.BoxFromPoints([]vec3.Vec3{p0, p1})
	visited := make(map[meshstore.EdgeID]bool)
	for _, c := range t.tree.Collect(box) {
		if visited[c] || !t.store.IsTriangleFace(c) {
			continue
		}
		n1 := t.store.Next(c)
		n2 := t.store.Next(n1)
		visited[c], visited[n1], visited[n2] = true, true, true

		a, b, cc := t.store.Org(c), t.store.Org(n1), t.store.Org(n2)
		if a == endA || a == endB || b == endA || b == endB || cc == endA || cc == endB {
			continue
		}
		pa, pb, pc := t.store.Vertex(a).P, t.store.Vertex(b).P, t.store.Vertex(cc).P
		if numeric.SegmentTriangleIntersect(p0, p1, pa, pb, pc) {
			return true
		}
	}
	return false
}

// triangleSelfIntersects reports whether a candidate triangle (not
// necessarily yet present in the store) would overlap any already-closed
// triangle reachable from its bounding box, by running the exact
// segment-triangle test for each of the candidate's three sides against
// every survivor. Exposed for callers that want to vet a prospective
// diagonal pair before committing it; the intrusion stage itself does not
// call this (see DESIGN.md) since a newly cut ear has not yet accumulated
// enough surrounding triangles for the check to be worth its cost.
func (t *Triangulator) triangleSelfIntersects(a, b, c vec3.Vec3, va, vb, vc meshstore.VertexID) bool {
	box := vec3.BoxFromPoints([]vec3.Vec3{a, b, c})
	visited := make(map[meshstore.EdgeID]bool)
	sides := [][2]vec3.Vec3{{a, b}, {b, c}, {c, a}}
	for _, cand := range t.tree.Collect(box) {
		if visited[cand] || !t.store.IsTriangleFace(cand) {
			continue
		}
		n1 := t.store.Next(cand)
		n2 := t.store.Next(n1)
		visited[cand], visited[n1], visited[n2] = true, true, true

		ea, eb, ec := t.store.Org(cand), t.store.Org(n1), t.store.Org(n2)
		if ea == va || ea == vb || ea == vc || eb == va || eb == vb || eb == vc || ec == va || ec == vb || ec == vc {
			continue
		}
		pa, pb, pc := t.store.Vertex(ea).P, t.store.Vertex(eb).P, t.store.Vertex(ec).P
		for _, s := range sides {
			if numeric.SegmentTriangleIntersect(s[0], s[1], pa, pb, pc) {
				return true
			}
		}
	}
	return false
}
