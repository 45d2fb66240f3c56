package numeric

import "github.com/corvidlabs/trimesh3d/vec3"

// Point2 is a point in a Plane's (u, v) tangent frame.
type Point2 struct {
	U, V float64
}

func orientation2(p, q, r Point2) int {
	val := (q.V-p.V)*(r.U-q.U) - (q.U-p.U)*(r.V-q.V)
	switch {
	case val > Err:
		return 1
	case val < -Err:
		return 2
	default:
		return 0
	}
}

func onSegment2(p, q, r Point2) bool {
	return q.U <= max2(p.U, r.U) && q.U >= min2(p.U, r.U) &&
		q.V <= max2(p.V, r.V) && q.V >= min2(p.V, r.V)
}

func min2(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max2(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// SegmentsIntersect2D reports whether closed segments (p1,q1) and (p2,q2)
// intersect, including collinear overlap and endpoint touches. Callers that
// must not treat a shared vertex as a crossing (e.g. adjacent ring edges)
// are expected to filter those pairs out before calling this, mirroring
// the self-intersection guard, which skips triangles sharing a vertex with
// the candidate edge rather than teaching the intersection test about
// topology.
func SegmentsIntersect2D(p1, q1, p2, q2 Point2) bool {
	o1 := orientation2(p1, q1, p2)
	o2 := orientation2(p1, q1, q2)
	o3 := orientation2(p2, q2, p1)
	o4 := orientation2(p2, q2, q1)

	if o1 != o2 && o3 != o4 {
		return true
	}
	if o1 == 0 && onSegment2(p1, p2, q1) {
		return true
	}
	if o2 == 0 && onSegment2(p1, q2, q1) {
		return true
	}
	if o3 == 0 && onSegment2(p2, p1, q2) {
		return true
	}
	if o4 == 0 && onSegment2(p2, q1, q2) {
		return true
	}
	return false
}

// SegmentHalflineIntersect2D reports whether the half-line starting at
// origin and heading along dir (t >= 0) crosses the closed segment (a, b).
func SegmentHalflineIntersect2D(origin, dir, a, b Point2) bool {
	// Solve origin + t*dir = a + s*(b-a) for (t, s).
	t, s, err := SolveLinear2(dir.U, -(b.U - a.U), dir.V, -(b.V - a.V),
		a.U-origin.U, a.V-origin.V)
	if err != nil {
		return false
	}
	return t >= -Err && s >= -Err && s <= 1+Err
}

// LineLine2D returns the intersection point of the infinite lines through
// (a1,a2) and (b1,b2), and false if the lines are parallel.
func LineLine2D(a1, a2, b1, b2 Point2) (Point2, bool) {
	d1 := Point2{a2.U - a1.U, a2.V - a1.V}
	d2 := Point2{b2.U - b1.U, b2.V - b1.V}
	t, _, err := SolveLinear2(d1.U, -d2.U, d1.V, -d2.V, b1.U-a1.U, b1.V-a1.V)
	if err != nil {
		return Point2{}, false
	}
	return Point2{a1.U + t*d1.U, a1.V + t*d1.V}, true
}

// SegmentTriangleIntersect reports whether segment (p0, p1) meets triangle
// (a, b, c) in 3D: the segment must reach the triangle's plane (an endpoint
// lying on the plane counts), and the crossing point must lie inside the
// triangle or on its edges. A segment lying in the plane is not reported.
func SegmentTriangleIntersect(p0, p1, a, b, c vec3.Vec3) bool {
	n := TriangleNormal(a, b, c)
	if vec3.Length(n) == 0 {
		return false
	}
	d0 := vec3.Dot(vec3.Sub(p0, a), n)
	d1 := vec3.Dot(vec3.Sub(p1, a), n)
	if (d0 > 0 && d1 > 0) || (d0 < 0 && d1 < 0) {
		return false
	}
	if d0 == d1 {
		return false // segment parallel to (or within) the plane
	}
	t := d0 / (d0 - d1)
	hit := vec3.Add(p0, vec3.Scale(vec3.Sub(p1, p0), t))
	return PointInTriangle(hit, a, b, c)
}
