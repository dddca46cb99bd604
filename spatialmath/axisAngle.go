package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// See here for a thorough explanation: https://en.wikipedia.org/wiki/Axis%E2%80%93angle_representation
// Basic explanation: Imagine a 3d cartesian grid centered at 0,0,0, and a sphere of radius 1 centered at
// that same point. An orientation can be expressed by first specifying an axis, i.e. a line from the origin
// to a point on that sphere, represented by (rx, ry, rz), and a rotation around that axis, theta.

// R4AA represents an R4 axis angle.
type R4AA struct {
	Theta float64 `json:"th"`
	RX    float64 `json:"x"`
	RY    float64 `json:"y"`
	RZ    float64 `json:"z"`
}

// NewR4AA creates an R4AA with no rotation about the Z axis.
func NewR4AA() *R4AA {
	return &R4AA{Theta: 0, RX: 0, RY: 0, RZ: 1}
}

// NewR4AAFromAxis creates an R4AA from an axis vector and an angle in radians.
func NewR4AAFromAxis(axis r3.Vector, theta float64) *R4AA {
	return &R4AA{Theta: theta, RX: axis.X, RY: axis.Y, RZ: axis.Z}
}

// Axis returns the (not necessarily unit) rotation axis.
func (r4 *R4AA) Axis() r3.Vector {
	return r3.Vector{X: r4.RX, Y: r4.RY, Z: r4.RZ}
}

// AxisAngles returns the orientation in axis angle representation.
func (r4 *R4AA) AxisAngles() *R4AA {
	return r4
}

// Quaternion returns orientation in quaternion representation.
func (r4 *R4AA) Quaternion() quat.Number {
	return r4.ToQuat()
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (r4 *R4AA) RotationMatrix() *RotationMatrix {
	rm := MakeRotateAxisAngle(r4.Axis(), r4.Theta)
	return &rm
}

// ToQuat converts an R4 axis angle to a unit quaternion.
// See: https://www.euclideanspace.com/maths/geometry/rotations/conversions/angleToQuaternion/index.htm
func (r4 *R4AA) ToQuat() quat.Number {
	return QuatFromAxisAngle(r4.Axis(), r4.Theta)
}

// Normalize scales the x, y, and z components of a R4 axis angle to be on the unit sphere.
// An axis with no length is left as the zero vector.
func (r4 *R4AA) Normalize() {
	axis := NormalizeVector(r4.Axis())
	r4.RX, r4.RY, r4.RZ = axis.X, axis.Y, axis.Z
}

// ToR3 converts an R4 angle axis to R3, a vector whose direction is the axis and whose length is theta.
func (r4 *R4AA) ToR3() r3.Vector {
	return NormalizeVector(r4.Axis()).Mul(r4.Theta)
}

// R3ToR4 converts an R3 angle axis to R4.
func R3ToR4(aa r3.Vector) *R4AA {
	theta := aa.Norm()
	if theta < VectorEpsilon {
		return NewR4AA()
	}
	return &R4AA{theta, aa.X / theta, aa.Y / theta, aa.Z / theta}
}

// MakeRotateAxisAngle builds the homogeneous rotation of angle radians about axis using Rodrigues' formula,
// R = I*cos + (a*a^T)*(1-cos) + [a]x*sin. The axis is normalized first; a zero axis yields the identity.
func MakeRotateAxisAngle(axis r3.Vector, angle float64) RotationMatrix {
	a := NormalizeVector(axis)
	if IsZeroVector(a) {
		return NewIdentityRotationMatrix()
	}
	x, y, z := a.X, a.Y, a.Z
	s, c := math.Sincos(angle)
	t := 1 - c

	return newRotationMatrixFromRows([3][3]float64{
		{c + t*x*x, t*x*y - s*z, t*x*z + s*y},
		{t*y*x + s*z, c + t*y*y, t*y*z - s*x},
		{t*z*x - s*y, t*z*y + s*x, c + t*z*z},
	})
}

// QuatFromAxisAngle returns the unit quaternion (axis*sin(angle/2), cos(angle/2)). The axis is normalized
// first; a zero axis yields the identity quaternion.
func QuatFromAxisAngle(axis r3.Vector, angle float64) quat.Number {
	a := NormalizeVector(axis)
	if IsZeroVector(a) {
		return IdentityQuaternion()
	}
	sinA, cosA := math.Sincos(angle / 2)
	return quat.Number{Real: cosA, Imag: a.X * sinA, Jmag: a.Y * sinA, Kmag: a.Z * sinA}
}
