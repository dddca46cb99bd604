package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
)

// VectorEpsilon is the length below which a vector is treated as having no direction.
const VectorEpsilon = 1e-8

// NormalizeVector returns v scaled to unit length. Vectors shorter than VectorEpsilon have no
// meaningful direction; for those the zero vector is returned instead of dividing, and callers
// should treat a zero result as "direction undefined".
func NormalizeVector(v r3.Vector) r3.Vector {
	norm := v.Norm()
	if norm < VectorEpsilon {
		return r3.Vector{}
	}
	return r3.Vector{X: v.X / norm, Y: v.Y / norm, Z: v.Z / norm}
}

// IsZeroVector reports whether v is exactly the zero vector, the sentinel returned by NormalizeVector.
func IsZeroVector(v r3.Vector) bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Negate returns -v.
func Negate(v r3.Vector) r3.Vector {
	return r3.Vector{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// R3VectorAlmostEqual compares two r3.Vector objects and returns if the all elementwise differences are less than epsilon.
func R3VectorAlmostEqual(a, b r3.Vector, epsilon float64) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon && math.Abs(a.Z-b.Z) < epsilon
}
