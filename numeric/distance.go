package numeric

import "github.com/corvidlabs/trimesh3d/vec3"

// SignedDistanceToLine returns the perpendicular distance from p to the
// infinite line through a and b, signed by which side of the line p falls
// on relative to refNormal (the "vector form" of point-to-line distance:
// no angle or trig, just cross and dot). A positive value means p is on the
// side refNormal points away from when standing on the line looking along
// b-a; the sign convention only matters relative to other calls with the
// same refNormal.
func SignedDistanceToLine(p, a, b, refNormal vec3.Vec3) float64 {
	dir := vec3.Sub(b, a)
	length := vec3.Length(dir)
	if length == 0 {
		return 0
	}
	perp := vec3.Cross(dir, vec3.Sub(p, a))
	return vec3.Dot(perp, refNormal) / length
}

// FootParam returns t such that a+t*(b-a) is the foot of the perpendicular
// from p onto line a-b. t in [0,1] means the foot lies within the segment.
func FootParam(p, a, b vec3.Vec3) float64 {
	dir := vec3.Sub(b, a)
	denom := vec3.Dot(dir, dir)
	if denom == 0 {
		return 0
	}
	return vec3.Dot(vec3.Sub(p, a), dir) / denom
}

// DistToLine returns the "vector form" perpendicular offset of q from the
// line through a and b: Cross(Normalize(b-a), q-a), whose length is the
// perpendicular distance and whose direction lets two calls sharing the
// same line be compared by Dot to test which side of the line each falls
// on: the rotate, intrusion and thin-V tests all reduce to this one
// primitive. outside reports whether q's foot of perpendicular falls
// beyond the segment [a,b] rather than between its endpoints.
func DistToLine(a, b, q vec3.Vec3) (dist vec3.Vec3, outside bool) {
	full := vec3.Sub(b, a)
	length := vec3.Length(full)
	if length == 0 {
		return vec3.Zero, true
	}
	dir := vec3.Scale(full, 1/length)
	toQ := vec3.Sub(q, a)
	t := vec3.Dot(dir, toQ)
	return vec3.Cross(dir, toQ), t < 0 || t > length
}

// PointInTriangle reports whether q, assumed to lie on (or near) the plane
// of triangle (a, b, c), projects inside that triangle. The projection uses
// the triangle's own normal (via TriangleNormal), matching findIntrudeEdge,
// which tests intrusion candidates against the ear's own plane rather than
// any globally fixed plane.
func PointInTriangle(q, a, b, c vec3.Vec3) bool {
	n := TriangleNormal(a, b, c)
	areaABC := vec3.Dot(vec3.Cross(vec3.Sub(b, a), vec3.Sub(c, a)), n)
	if areaABC == 0 {
		return false
	}
	areaPBC := vec3.Dot(vec3.Cross(vec3.Sub(b, q), vec3.Sub(c, q)), n)
	areaPCA := vec3.Dot(vec3.Cross(vec3.Sub(c, q), vec3.Sub(a, q)), n)
	areaPAB := vec3.Dot(vec3.Cross(vec3.Sub(a, q), vec3.Sub(b, q)), n)

	alpha := areaPBC / areaABC
	beta := areaPCA / areaABC
	gamma := areaPAB / areaABC

	const eps = -1e-10
	return alpha >= eps && beta >= eps && gamma >= eps
}
