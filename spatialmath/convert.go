package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// QuatToRotationMatrix converts a quaternion to the equivalent homogeneous rotation matrix. The quaternion is
// normalized first, so any non-unit input still produces an orthonormal matrix.
func QuatToRotationMatrix(q quat.Number) RotationMatrix {
	q = NormalizeQuat(q)
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return newRotationMatrixFromRows([3][3]float64{
		{1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy)},
		{2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx)},
		{2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy)},
	})
}

// RotateVectorByQuat rotates v by q, computing the vector part of q*(v,0)*conj(q). The quaternion is
// normalized first.
func RotateVectorByQuat(q quat.Number, v r3.Vector) r3.Vector {
	q = NormalizeQuat(q)
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	rotated := quat.Mul(quat.Mul(q, p), quat.Conj(q))
	return r3.Vector{X: rotated.Imag, Y: rotated.Jmag, Z: rotated.Kmag}
}
