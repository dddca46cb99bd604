package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"
)

func TestMultiply(t *testing.T) {
	i := quat.Number{Imag: 1}
	j := quat.Number{Jmag: 1}
	k := quat.Number{Kmag: 1}

	test.That(t, Multiply(i, j), test.ShouldResemble, k)
	test.That(t, Multiply(j, i), test.ShouldResemble, quat.Number{Kmag: -1})
	test.That(t, Multiply(i, i), test.ShouldResemble, quat.Number{Real: -1})

	// scalar aw*bw - av.bv, vector aw*bv + bw*av + av x bv
	a := quat.Number{Real: 0.5, Imag: 1, Jmag: -2, Kmag: 3}
	b := quat.Number{Real: -1.5, Imag: 0.25, Jmag: 4, Kmag: -1}
	av := r3.Vector{X: a.Imag, Y: a.Jmag, Z: a.Kmag}
	bv := r3.Vector{X: b.Imag, Y: b.Jmag, Z: b.Kmag}
	vec := bv.Mul(a.Real).Add(av.Mul(b.Real)).Add(av.Cross(bv))
	ab := Multiply(a, b)
	test.That(t, ab.Real, test.ShouldAlmostEqual, a.Real*b.Real-av.Dot(bv))
	test.That(t, ab.Imag, test.ShouldAlmostEqual, vec.X)
	test.That(t, ab.Jmag, test.ShouldAlmostEqual, vec.Y)
	test.That(t, ab.Kmag, test.ShouldAlmostEqual, vec.Z)
}

func TestConjugateAndNorm(t *testing.T) {
	q := quat.Number{Real: 1, Imag: 2, Jmag: -2, Kmag: 4}
	test.That(t, Conjugate(q), test.ShouldResemble, quat.Number{Real: 1, Imag: -2, Jmag: 2, Kmag: -4})
	test.That(t, QuatNorm(q), test.ShouldAlmostEqual, 5.)
	test.That(t, QuatDot(q, q), test.ShouldAlmostEqual, 25.)
	test.That(t, IdentityQuaternion(), test.ShouldResemble, quat.Number{Real: 1})
}

func TestNormalizeQuat(t *testing.T) {
	for _, q := range []quat.Number{
		{Real: 1, Imag: 2, Jmag: -2, Kmag: 4},
		{Real: -0.001},
		{Imag: 1e-8, Kmag: 3e-8},
		q45x,
	} {
		test.That(t, QuatNorm(NormalizeQuat(q)), test.ShouldAlmostEqual, 1.)
	}
	test.That(t, NormalizeQuat(quat.Number{}), test.ShouldResemble, IdentityQuaternion())
}

func TestInverse(t *testing.T) {
	for _, q := range []quat.Number{
		{Real: 1, Imag: 2, Jmag: -2, Kmag: 4},
		{Real: 0.3, Imag: -0.1, Jmag: 0.7, Kmag: 0.01},
		q45x,
		QuatFromAxisAngle(r3.Vector{X: 1, Y: 1, Z: 1}, 2.5),
	} {
		left := Multiply(Inverse(q), q)
		right := Multiply(q, Inverse(q))
		test.That(t, QuaternionAlmostEqual(left, IdentityQuaternion(), 1e-9), test.ShouldBeTrue)
		test.That(t, QuaternionAlmostEqual(right, IdentityQuaternion(), 1e-9), test.ShouldBeTrue)
	}
	test.That(t, Inverse(quat.Number{}), test.ShouldResemble, IdentityQuaternion())

	unit := QuatFromAxisAngle(r3.Vector{X: 0, Y: 1, Z: 0}, 1)
	test.That(t, QuaternionAlmostEqual(Inverse(unit), Conjugate(unit), 1e-12), test.ShouldBeTrue)
}

func TestQuaternionAlmostEqual(t *testing.T) {
	test.That(t, QuaternionAlmostEqual(q45x, quat.Scale(-1, q45x), 1e-9), test.ShouldBeTrue)
	test.That(t, QuaternionAlmostEqual(q45x, quat.Conj(q45x), 1e-9), test.ShouldBeFalse)
}

func TestQuatToR4AA(t *testing.T) {
	for _, aa := range []R4AA{
		{Theta: 0.3, RX: 0, RY: 0, RZ: 1},
		{Theta: 2.9, RX: 1, RY: 1, RZ: 0},
		{Theta: -1.2, RX: 0.2, RY: -0.5, RZ: 0.8},
	} {
		q := aa.ToQuat()
		back := QuatToR4AA(q)
		test.That(t, QuaternionAlmostEqual(back.ToQuat(), q, 1e-9), test.ShouldBeTrue)
		test.That(t, back.Axis().Norm(), test.ShouldAlmostEqual, 1.)
	}

	// beyond a half turn the stored quaternion has a negative real part
	q := QuatFromAxisAngle(r3.Vector{X: 0, Y: 0, Z: 1}, 1.5*math.Pi)
	test.That(t, q.Real, test.ShouldBeLessThan, 0.)
	wide := QuatToR4AA(q)
	test.That(t, wide.Theta, test.ShouldAlmostEqual, -math.Pi/2)
	test.That(t, QuaternionAlmostEqual(wide.ToQuat(), q, 1e-9), test.ShouldBeTrue)

	test.That(t, QuatToR4AA(IdentityQuaternion()), test.ShouldResemble, R4AA{Theta: 0, RX: 1})
}
