package numeric

import "github.com/corvidlabs/trimesh3d/vec3"

// TriangleNormal returns the unnormalized face normal of triangle (a, b, c)
// via the cross product of its two edge vectors. Its direction follows the
// right-hand rule for the a->b->c winding.
func TriangleNormal(a, b, c vec3.Vec3) vec3.Vec3 {
	return vec3.Cross(vec3.Sub(b, a), vec3.Sub(c, a))
}

// PolygonNormal returns the (unnormalized) signed normal of a closed
// polygonal ring via Newell's method, robust to the ring not lying exactly
// in one plane.
func PolygonNormal(ring []vec3.Vec3) vec3.Vec3 {
	var n vec3.Vec3
	count := len(ring)
	for i := 0; i < count; i++ {
		cur := ring[i]
		nxt := ring[(i+1)%count]
		n.X += (cur.Y - nxt.Y) * (cur.Z + nxt.Z)
		n.Y += (cur.Z - nxt.Z) * (cur.X + nxt.X)
		n.Z += (cur.X - nxt.X) * (cur.Y + nxt.Y)
	}
	return n
}
