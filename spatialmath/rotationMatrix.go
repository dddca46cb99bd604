package spatialmath

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// RotationMatrix is a 4x4 homogeneous matrix holding a pure rotation. Matrices built by this package keep
// the upper-left 3x3 block orthonormal with determinant +1, and the last row and column equal to (0, 0, 0, 1).
// Vectors are treated as columns, so a matrix is applied as M*v.
type RotationMatrix struct {
	mat mgl64.Mat4
}

// NewIdentityRotationMatrix returns the rotation matrix which signifies no rotation.
func NewIdentityRotationMatrix() RotationMatrix {
	return RotationMatrix{mgl64.Ident4()}
}

// NewRotationMatrix wraps the given homogeneous matrix. The caller is responsible for it being a rotation.
func NewRotationMatrix(m mgl64.Mat4) RotationMatrix {
	return RotationMatrix{m}
}

// newRotationMatrixFromRows builds a homogeneous matrix from a row-major 3x3 rotation block.
func newRotationMatrixFromRows(rows [3][3]float64) RotationMatrix {
	m := mgl64.Ident4()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, rows[i][j])
		}
	}
	return RotationMatrix{m}
}

// At returns the value at the given row and column.
func (rm RotationMatrix) At(row, col int) float64 {
	return rm.mat.At(row, col)
}

// Row returns the given row of the matrix.
func (rm RotationMatrix) Row(row int) [4]float64 {
	r := rm.mat.Row(row)
	return [4]float64{r[0], r[1], r[2], r[3]}
}

// Mat4 returns a copy of the underlying mgl64 matrix.
func (rm RotationMatrix) Mat4() mgl64.Mat4 {
	return rm.mat
}

// Transpose returns the transpose of the matrix, which for a rotation is also its inverse.
func (rm RotationMatrix) Transpose() RotationMatrix {
	return RotationMatrix{rm.mat.Transpose()}
}

// Mul returns rm*other, the rotation that applies other first and then rm.
func (rm RotationMatrix) Mul(other RotationMatrix) RotationMatrix {
	return RotationMatrix{rm.mat.Mul4(other.mat)}
}

// Det returns the determinant of the upper-left 3x3 block.
func (rm RotationMatrix) Det() float64 {
	return mat.Det(rm.dense3())
}

// IsOrthonormal reports whether the 3x3 block R satisfies R^T*R = I and det(R) = +1 within tol, and the
// homogeneous row and column are (0, 0, 0, 1).
func (rm RotationMatrix) IsOrthonormal(tol float64) bool {
	r := rm.dense3()
	var rtr mat.Dense
	rtr.Mul(r.T(), r)
	ident := mat.NewDiagDense(3, []float64{1, 1, 1})
	if !mat.EqualApprox(&rtr, ident, tol) {
		return false
	}
	if math.Abs(mat.Det(r)-1) > tol {
		return false
	}
	for i := 0; i < 3; i++ {
		if math.Abs(rm.mat.At(3, i)) > tol || math.Abs(rm.mat.At(i, 3)) > tol {
			return false
		}
	}
	return math.Abs(rm.mat.At(3, 3)-1) <= tol
}

// AlmostEqual reports whether every entry of the two matrices differs by at most tol.
func (rm RotationMatrix) AlmostEqual(other RotationMatrix, tol float64) bool {
	for i := range rm.mat {
		if math.Abs(rm.mat[i]-other.mat[i]) > tol {
			return false
		}
	}
	return true
}

// IsIdentity reports whether the matrix is exactly the identity.
func (rm RotationMatrix) IsIdentity() bool {
	return rm.mat == mgl64.Ident4()
}

// Quaternion returns orientation in quaternion representation.
func (rm RotationMatrix) Quaternion() quat.Number {
	q := mgl64.Mat4ToQuat(rm.mat).Normalize()
	return quat.Number{Real: q.W, Imag: q.V.X(), Jmag: q.V.Y(), Kmag: q.V.Z()}
}

// AxisAngles returns the orientation in axis angle representation.
func (rm RotationMatrix) AxisAngles() *R4AA {
	aa := QuatToR4AA(rm.Quaternion())
	return &aa
}

// RotationMatrix returns the orientation in rotation matrix representation.
func (rm RotationMatrix) RotationMatrix() *RotationMatrix {
	return &rm
}

// String prints the matrix one row per line, four columns each.
func (rm RotationMatrix) String() string {
	var sb strings.Builder
	for i := 0; i < 4; i++ {
		r := rm.mat.Row(i)
		fmt.Fprintf(&sb, "%7.3f %7.3f %7.3f %7.3f\n", r[0], r[1], r[2], r[3])
	}
	return sb.String()
}

func (rm RotationMatrix) dense3() *mat.Dense {
	data := make([]float64, 0, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			data = append(data, rm.mat.At(i, j))
		}
	}
	return mat.NewDense(3, 3, data)
}

// TransformVector applies the affine transform m to v: out_i = sum_j m[i][j]*v[j] + m[i][3].
func TransformVector(m RotationMatrix, v r3.Vector) r3.Vector {
	in := [3]float64{v.X, v.Y, v.Z}
	var out [3]float64
	for i := 0; i < 3; i++ {
		out[i] = m.mat.At(i, 3)
		for j := 0; j < 3; j++ {
			out[i] += m.mat.At(i, j) * in[j]
		}
	}
	return r3.Vector{X: out[0], Y: out[1], Z: out[2]}
}
