package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// DirectionEpsilon is how close the cosine between two directions must be to +1 or -1 for them to be
// considered aligned or antiparallel.
const DirectionEpsilon = 1e-6

// DirectionRelation classifies a pair of directions by which construction maps one onto the other.
type DirectionRelation int

const (
	// DirectionsDegenerate means at least one of the inputs has no direction.
	DirectionsDegenerate DirectionRelation = iota
	// DirectionsAligned means the directions already coincide.
	DirectionsAligned
	// DirectionsAntiparallel means the directions are opposite, so their cross product gives no axis.
	DirectionsAntiparallel
	// DirectionsGeneral covers everything else.
	DirectionsGeneral
)

func (dr DirectionRelation) String() string {
	switch dr {
	case DirectionsDegenerate:
		return "degenerate"
	case DirectionsAligned:
		return "aligned"
	case DirectionsAntiparallel:
		return "antiparallel"
	case DirectionsGeneral:
		return "general"
	default:
		return "unknown"
	}
}

// directionPair is a pair of normalized directions and the clamped cosine between them.
type directionPair struct {
	from, to r3.Vector
	cos      float64
	relation DirectionRelation
}

func newDirectionPair(fromRaw, toRaw r3.Vector) directionPair {
	from := NormalizeVector(fromRaw)
	to := NormalizeVector(toRaw)
	if IsZeroVector(from) || IsZeroVector(to) {
		return directionPair{from: from, to: to, relation: DirectionsDegenerate}
	}

	c := math.Max(-1, math.Min(1, from.Dot(to)))
	pair := directionPair{from: from, to: to, cos: c, relation: DirectionsGeneral}
	switch {
	case math.Abs(c-1) < DirectionEpsilon:
		pair.relation = DirectionsAligned
	case math.Abs(c+1) < DirectionEpsilon:
		pair.relation = DirectionsAntiparallel
	}
	return pair
}

// perpendicular returns a unit axis perpendicular to from, built by crossing from with the world axis
// least aligned with it.
func (dp directionPair) perpendicular() r3.Vector {
	helper := r3.Vector{X: 1}
	if math.Abs(dp.from.X) >= math.Abs(dp.from.Y) && math.Abs(dp.from.X) >= math.Abs(dp.from.Z) {
		helper = r3.Vector{Z: 1}
	}
	return NormalizeVector(dp.from.Cross(helper))
}

// ClassifyDirections reports which case DirectionToDirection takes for the given pair.
func ClassifyDirections(from, to r3.Vector) DirectionRelation {
	return newDirectionPair(from, to).relation
}

// DirectionToDirection returns the rotation matrix which maps the direction of from onto the direction of to.
// Neither input needs to be unit length. A zero input or already aligned inputs give the identity. Opposite
// inputs have no cross product to rotate about, so a half turn about an axis perpendicular to from is used.
// Otherwise the rotation is acos(from.to) about from x to.
func DirectionToDirection(from, to r3.Vector) RotationMatrix {
	pair := newDirectionPair(from, to)
	switch pair.relation {
	case DirectionsDegenerate, DirectionsAligned:
		return NewIdentityRotationMatrix()
	case DirectionsAntiparallel:
		return MakeRotateAxisAngle(pair.perpendicular(), math.Pi)
	default:
		return MakeRotateAxisAngle(pair.from.Cross(pair.to), math.Acos(pair.cos))
	}
}

// DirectionToDirectionSkew is DirectionToDirection with the general case expanded in closed form,
// R = I + [v]x + [v]x^2*(1-c)/|v|^2 where v = from x to and c = from.to, without any inverse trig.
// Both functions produce the same matrix up to floating point error.
func DirectionToDirectionSkew(from, to r3.Vector) RotationMatrix {
	pair := newDirectionPair(from, to)
	switch pair.relation {
	case DirectionsDegenerate, DirectionsAligned:
		return NewIdentityRotationMatrix()
	case DirectionsAntiparallel:
		return MakeRotateAxisAngle(pair.perpendicular(), math.Pi)
	default:
	}

	v := pair.from.Cross(pair.to)
	k := (1 - pair.cos) / v.Norm2()
	// [v]x^2 = v*v^T - |v|^2*I
	diag := 1 - v.Norm2()*k
	return newRotationMatrixFromRows([3][3]float64{
		{diag + k*v.X*v.X, k*v.X*v.Y - v.Z, k*v.X*v.Z + v.Y},
		{k*v.Y*v.X + v.Z, diag + k*v.Y*v.Y, k*v.Y*v.Z - v.X},
		{k*v.Z*v.X - v.Y, k*v.Z*v.Y + v.X, diag + k*v.Z*v.Z},
	})
}

// QuatFromDirections returns the unit quaternion which maps the direction of from onto the direction of to,
// following the same degenerate, aligned and antiparallel policy as DirectionToDirection.
func QuatFromDirections(from, to r3.Vector) quat.Number {
	pair := newDirectionPair(from, to)
	switch pair.relation {
	case DirectionsDegenerate, DirectionsAligned:
		return IdentityQuaternion()
	case DirectionsAntiparallel:
		return QuatFromAxisAngle(pair.perpendicular(), math.Pi)
	default:
	}
	// (from x to, 1 + from.to) normalizes to (axis*sin(angle/2), cos(angle/2))
	v := pair.from.Cross(pair.to)
	return NormalizeQuat(quat.Number{Real: 1 + pair.cos, Imag: v.X, Jmag: v.Y, Kmag: v.Z})
}
