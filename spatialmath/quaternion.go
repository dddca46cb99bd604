package spatialmath

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Quaternions are gonum quat.Number values: Real is the scalar part w, and Imag, Jmag, Kmag hold
// the vector part (x, y, z).

type quaternion quat.Number

// IdentityQuaternion returns the quaternion (0, 0, 0, 1), which signifies no rotation.
func IdentityQuaternion() quat.Number {
	return quat.Number{Real: 1}
}

// Quaternion returns orientation in quaternion representation.
func (q *quaternion) Quaternion() quat.Number {
	return quat.Number(*q)
}

// AxisAngles returns the orientation in axis angle representation.
func (q *quaternion) AxisAngles() *R4AA {
	aa := QuatToR4AA(q.Quaternion())
	return &aa
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (q *quaternion) RotationMatrix() *RotationMatrix {
	rm := QuatToRotationMatrix(q.Quaternion())
	return &rm
}

// Multiply returns the Hamilton product a*b. The product is not commutative.
func Multiply(a, b quat.Number) quat.Number {
	return quat.Mul(a, b)
}

// Conjugate negates the vector part of q and keeps its scalar part.
func Conjugate(q quat.Number) quat.Number {
	return quat.Conj(q)
}

// QuatNorm returns the euclidean norm of all four components of q.
func QuatNorm(q quat.Number) float64 {
	return quat.Abs(q)
}

// QuatDot returns the four component dot product of two quaternions.
func QuatDot(a, b quat.Number) float64 {
	return a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag
}

// NormalizeQuat scales q to unit length. A zero quaternion has no rotation to recover, so the identity
// quaternion is returned for it rather than dividing by zero.
func NormalizeQuat(q quat.Number) quat.Number {
	norm := quat.Abs(q)
	if norm == 0 {
		return IdentityQuaternion()
	}
	return quat.Scale(1/norm, q)
}

// Inverse returns the multiplicative inverse of q, conj(q)/|q|^2, or the identity quaternion if q is zero.
func Inverse(q quat.Number) quat.Number {
	norm2 := QuatDot(q, q)
	if norm2 == 0 {
		return IdentityQuaternion()
	}
	return quat.Scale(1/norm2, quat.Conj(q))
}

// QuaternionAlmostEqual is an equality test for all the float components of a quaternion. Quaternions have double coverage, q and -q
// are the same rotation, so this also checks the negation of one of the inputs.
func QuaternionAlmostEqual(a, b quat.Number, tol float64) bool {
	return quatComponentsAlmostEqual(a, b, tol) || quatComponentsAlmostEqual(a, quat.Scale(-1, b), tol)
}

func quatComponentsAlmostEqual(a, b quat.Number, tol float64) bool {
	return math.Abs(a.Real-b.Real) < tol &&
		math.Abs(a.Imag-b.Imag) < tol &&
		math.Abs(a.Jmag-b.Jmag) < tol &&
		math.Abs(a.Kmag-b.Kmag) < tol
}

// QuatToR4AA converts a quat to an R4 axis angle in the same way the C++ Eigen library does.
// https://eigen.tuxfamily.org/dox/AngleAxis_8h_source.html
func QuatToR4AA(q quat.Number) R4AA {
	q = NormalizeQuat(q)
	denom := math.Sqrt(q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)

	angle := 2 * math.Atan2(denom, math.Abs(q.Real))
	if q.Real < 0 {
		angle *= -1
	}

	if denom < 1e-6 {
		return R4AA{Theta: angle, RX: 1, RY: 0, RZ: 0}
	}
	return R4AA{Theta: angle, RX: q.Imag / denom, RY: q.Jmag / denom, RZ: q.Kmag / denom}
}
