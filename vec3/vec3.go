package vec3

import (
	"math"

	"github.com/golang/geo/r3"
)

// Vec3 is a point or direction in 3D space.
type Vec3 = r3.Vector

// New builds a Vec3 from its three components.
func New(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Zero is the additive identity.
var Zero = Vec3{}

// Add returns a+b.
func Add(a, b Vec3) Vec3 { return a.Add(b) }

// Sub returns a-b.
func Sub(a, b Vec3) Vec3 { return a.Sub(b) }

// Scale returns v scaled by s.
func Scale(v Vec3, s float64) Vec3 { return v.Mul(s) }

// Dot returns the dot product of a and b.
func Dot(a, b Vec3) float64 { return a.Dot(b) }

// Cross returns the cross product a x b.
func Cross(a, b Vec3) Vec3 { return a.Cross(b) }

// Length returns the Euclidean norm of v.
func Length(v Vec3) float64 { return v.Norm() }

// Normalize returns v scaled to unit length. The zero vector normalizes to
// itself, matching r3.Vector.Normalize.
func Normalize(v Vec3) Vec3 { return v.Normalize() }

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Vec3) Vec3 {
	return Scale(Add(a, b), 0.5)
}

// IsFinite reports whether every component of v is neither NaN nor Inf.
func IsFinite(v Vec3) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsNaN(v.Z) &&
		!math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0) && !math.IsInf(v.Z, 0)
}

// Sincos returns (sin, cos) of the angle between two unit vectors a and b,
// computed from the cross and dot products rather than math.Acos/Sincos, so
// callers needing only the sine and cosine avoid the extra trip through an
// angle representation.
func Sincos(a, b Vec3) (sin, cos float64) {
	cos = Dot(a, b)
	sin = Length(Cross(a, b))
	return sin, cos
}
