package utils

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestAngleConversions(t *testing.T) {
	test.That(t, DegToRad(180), test.ShouldAlmostEqual, math.Pi)
	test.That(t, DegToRad(-90), test.ShouldAlmostEqual, -math.Pi/2)
	test.That(t, RadToDeg(math.Pi/4), test.ShouldAlmostEqual, 45.)
	test.That(t, RadToDeg(DegToRad(123.4)), test.ShouldAlmostEqual, 123.4)
}

func TestModAngDeg(t *testing.T) {
	test.That(t, ModAngDeg(370), test.ShouldAlmostEqual, 10.)
	test.That(t, ModAngDeg(-90), test.ShouldAlmostEqual, 270.)
	test.That(t, ModAngDeg(0), test.ShouldAlmostEqual, 0.)
	test.That(t, ModAngDeg(-0.), test.ShouldAlmostEqual, 0.)
	test.That(t, ModAngDeg(-180), test.ShouldAlmostEqual, 180.)
}
