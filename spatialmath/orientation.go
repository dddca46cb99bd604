// Package spatialmath defines the rotation representations used to orient things in 3D space: vectors,
// quaternions, axis angles and rotation matrices, along with conversions between them and interpolation.
package spatialmath

import (
	"gonum.org/v1/gonum/num/quat"
)

// Orientation is an interface used to express the different parameterizations of the orientation
// of a rigid object or a frame of reference in 3D Euclidean space.
type Orientation interface {
	AxisAngles() *R4AA
	Quaternion() quat.Number
	RotationMatrix() *RotationMatrix
}

// NewZeroOrientation returns an orientatation which signifies no rotation.
func NewZeroOrientation() Orientation {
	return &quaternion{Real: 1}
}

// NewOrientationFromQuat wraps a quaternion as an Orientation. The quaternion is normalized.
func NewOrientationFromQuat(q quat.Number) Orientation {
	o := quaternion(NormalizeQuat(q))
	return &o
}

// OrientationAlmostEqual will return a bool describing whether 2 poses have approximately the same orientation.
func OrientationAlmostEqual(o1, o2 Orientation) bool {
	return QuaternionAlmostEqual(o1.Quaternion(), o2.Quaternion(), 1e-5)
}

// OrientationBetween returns the orientation representing the difference between the two given Orientations.
func OrientationBetween(o1, o2 Orientation) Orientation {
	q := quaternion(quat.Mul(o2.Quaternion(), quat.Conj(o1.Quaternion())))
	return &q
}

// Interpolate returns the orientation a fraction t of the way along the shorter arc from o1 to o2.
func Interpolate(o1, o2 Orientation, t float64) Orientation {
	q := quaternion(SlerpNormalized(o1.Quaternion(), o2.Quaternion(), t))
	return &q
}
