package numeric

import "github.com/corvidlabs/trimesh3d/vec3"

// Plane is a local 2D coordinate frame embedded in 3D, used to project
// near-planar geometry (a candidate ear chord and nearby edges) down to 2D
// for the chord-crossing test of the convex-ear fallback, which operates on
// a per-vertex normal rather than one fixed global plane.
type Plane struct {
	Origin vec3.Vec3
	Normal vec3.Vec3
	U, V   vec3.Vec3
}

// PlaneFromNormal builds a Plane with the given origin and unit normal,
// deriving an arbitrary orthonormal (U, V) basis for the tangent plane.
func PlaneFromNormal(origin, normal vec3.Vec3) Plane {
	n := vec3.Normalize(normal)
	// Any vector not parallel to n works as a seed; use the X axis unless
	// n's X component dominates, then the Y axis, to avoid a near-zero
	// cross product.
	seed := vec3.New(1, 0, 0)
	if abs(n.X) > abs(n.Y) && abs(n.X) > abs(n.Z) {
		seed = vec3.New(0, 1, 0)
	}
	u := vec3.Normalize(vec3.Cross(n, seed))
	v := vec3.Cross(n, u)
	return Plane{Origin: origin, Normal: n, U: u, V: v}
}

// Project returns the (u, v) coordinates of p in the plane's tangent frame.
func (pl Plane) Project(p vec3.Vec3) (u, v float64) {
	d := vec3.Sub(p, pl.Origin)
	return vec3.Dot(d, pl.U), vec3.Dot(d, pl.V)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
