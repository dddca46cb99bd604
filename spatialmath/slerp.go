package spatialmath

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// slerpSinThreshold is the sine of the angle between two quaternions below which Slerp falls back to a linear
// blend, since dividing by it would amplify floating point error.
const slerpSinThreshold = 1e-3

// Slerp spherically interpolates between two unit quaternions by t. t = 0 gives q0 and t = 1 gives q1 (or -q1,
// the same rotation); values outside [0, 1] extrapolate. The shorter of the two arcs between the rotations is
// always taken. The result is a blend that is not renormalized, so callers that need a strict unit quaternion
// should normalize it, see SlerpNormalized.
func Slerp(q0, q1 quat.Number, t float64) quat.Number {
	dot := QuatDot(q0, q1)
	if dot < 0 {
		// q1 and -q1 are the same rotation; pick the one on q0's side of the sphere
		q1 = quat.Scale(-1, q1)
		dot = -dot
	}

	theta := math.Acos(math.Min(1, dot))
	sinTheta := math.Sin(theta)

	scale0, scale1 := 1-t, t
	if sinTheta >= slerpSinThreshold {
		scale0 = math.Sin((1-t)*theta) / sinTheta
		scale1 = math.Sin(t*theta) / sinTheta
	}
	return quat.Add(quat.Scale(scale0, q0), quat.Scale(scale1, q1))
}

// SlerpNormalized is Slerp followed by NormalizeQuat.
func SlerpNormalized(q0, q1 quat.Number, t float64) quat.Number {
	return NormalizeQuat(Slerp(q0, q1, t))
}
