package fixtures

import (
	"math"

	"github.com/corvidlabs/trimesh3d/meshstore"
	"github.com/corvidlabs/trimesh3d/vec3"
)

// UnitSquare returns the four corners of the unit square in the z=0 plane,
// ccw from the origin, each carrying the +Z normal.
func UnitSquare() []meshstore.Vertex {
	up := vec3.New(0, 0, 1)
	corners := []vec3.Vec3{
		vec3.New(0, 0, 0),
		vec3.New(1, 0, 0),
		vec3.New(1, 1, 0),
		vec3.New(0, 1, 0),
	}
	return ring(corners, up)
}

// LShape returns the six-vertex concave L-shaped boundary
// (0,0),(2,0),(2,1),(1,1),(1,2),(0,2) at z=0, +Z normals throughout.
func LShape() []meshstore.Vertex {
	up := vec3.New(0, 0, 1)
	corners := []vec3.Vec3{
		vec3.New(0, 0, 0),
		vec3.New(2, 0, 0),
		vec3.New(2, 1, 0),
		vec3.New(1, 1, 0),
		vec3.New(1, 2, 0),
		vec3.New(0, 2, 0),
	}
	return ring(corners, up)
}

// RegularPolygon returns n vertices evenly spaced on a circle of the given
// radius in the z=0 plane, each carrying the +Z normal.
func RegularPolygon(n int, radius float64) []meshstore.Vertex {
	up := vec3.New(0, 0, 1)
	out := make([]meshstore.Vertex, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		out[i] = meshstore.Vertex{
			P: vec3.New(radius*math.Cos(theta), radius*math.Sin(theta), 0),
			N: up,
		}
	}
	return out
}

// Hemicircle returns n vertices arranged on a hemicircular arc of the given
// radius in the xz-plane, each carrying its own outward radial normal: the
// boundary is not flat, so no single global normal applies and prebuild
// must fall back to per-vertex normals throughout.
func Hemicircle(n int, radius float64) []meshstore.Vertex {
	out := make([]meshstore.Vertex, n)
	for i := 0; i < n; i++ {
		theta := math.Pi * float64(i) / float64(n-1)
		x := radius * math.Cos(theta)
		z := radius * math.Sin(theta)
		p := vec3.New(x, 0, z)
		out[i] = meshstore.Vertex{P: p, N: vec3.Normalize(p)}
	}
	return out
}

// NearlyCollinearTrigger returns a small polygon with three consecutive
// boundary vertices nearly collinear — the middle one slightly reflex,
// bulging 0.0005 into the interior: prebuild must not choose the middle
// vertex as a convex ear, and must still complete using the convex ears
// the other vertices offer.
func NearlyCollinearTrigger() []meshstore.Vertex {
	up := vec3.New(0, 0, 1)
	corners := []vec3.Vec3{
		vec3.New(0, 0, 0),
		vec3.New(1, 0, 0),
		vec3.New(2, 0.0005, 0),
		vec3.New(3, 0, 0),
		vec3.New(3, 2, 0),
		vec3.New(0, 2, 0),
	}
	return ring(corners, up)
}

func ring(pts []vec3.Vec3, normal vec3.Vec3) []meshstore.Vertex {
	out := make([]meshstore.Vertex, len(pts))
	for i, p := range pts {
		out[i] = meshstore.Vertex{P: p, N: normal}
	}
	return out
}
