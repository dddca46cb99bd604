package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// AngularVelocity contains angular velocity in rad/s across x/y/z axes.
type AngularVelocity r3.Vector

// R3ToAngVel converts an r3 vector to an angular velocity.
func R3ToAngVel(vec r3.Vector) AngularVelocity {
	return AngularVelocity(vec)
}

// Vector returns the angular velocity as an r3 vector whose direction is the spin axis and whose length is the rate.
func (av AngularVelocity) Vector() r3.Vector {
	return r3.Vector(av)
}

// OrientationToAngularVel calculates the constant angular velocity which turns through o in dt seconds,
// taking the shorter way around. A non-positive dt gives zero.
func OrientationToAngularVel(o Orientation, dt float64) AngularVelocity {
	if dt <= 0 {
		return AngularVelocity{}
	}
	aa := QuatToR4AA(o.Quaternion())
	return AngularVelocity(aa.Axis().Mul(aa.Theta / dt))
}

// QuatToAngVel calculates an angular velocity based on an orientation change expressed as a quaternion over a time difference.
func QuatToAngVel(diffQ quat.Number, dt float64) AngularVelocity {
	return OrientationToAngularVel(NewOrientationFromQuat(diffQ), dt)
}

// RotMatToAngVel calculates an angular velocity based on an orientation change expressed as a rotation matrix over a time difference.
func RotMatToAngVel(diffRm RotationMatrix, dt float64) AngularVelocity {
	return OrientationToAngularVel(diffRm, dt)
}

// AngularVelocityBetween returns the angular velocity which carries from onto to in dt seconds, with the
// change measured in the world frame: to = delta*from.
func AngularVelocityBetween(from, to quat.Number, dt float64) AngularVelocity {
	return QuatToAngVel(Multiply(to, Inverse(from)), dt)
}
