package config

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.uber.org/multierr"
	"go.viam.com/test"

	"go.viam.com/rotkernel/logging"
	"go.viam.com/rotkernel/spatialmath"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	test.That(t, cfg.Validate(), test.ShouldBeNil)
	test.That(t, len(cfg.Directions), test.ShouldEqual, 3)

	relations := []spatialmath.DirectionRelation{
		spatialmath.DirectionsAntiparallel,
		spatialmath.DirectionsAntiparallel,
		spatialmath.DirectionsGeneral,
	}
	for i, dp := range cfg.Directions {
		test.That(t, spatialmath.ClassifyDirections(dp.From.R3(), dp.To.R3()), test.ShouldEqual, relations[i])
		test.That(t, dp.From.R3().Norm(), test.ShouldAlmostEqual, 1.)
	}
	test.That(t, cfg.Level(), test.ShouldEqual, logging.INFO)
	test.That(t, cfg.Slerp.Ts(), test.ShouldResemble, []float64{0, 0.25, 0.5, 0.75, 1})
}

func TestVector(t *testing.T) {
	v := r3.Vector{X: 1, Y: -2, Z: 3.5}
	test.That(t, VectorFromR3(v), test.ShouldResemble, Vector{1, -2, 3.5})
	test.That(t, VectorFromR3(v).R3(), test.ShouldResemble, v)
}

func TestAxisAngle(t *testing.T) {
	aa := AxisAngle{Axis: Vector{0, 0, 2}, Degrees: 90}
	test.That(t, aa.Radians(), test.ShouldAlmostEqual, math.Pi/2)
	expected := spatialmath.QuatFromAxisAngle(r3.Vector{Z: 1}, math.Pi/2)
	test.That(t, spatialmath.QuaternionAlmostEqual(aa.Orientation().Quaternion(), expected, 1e-9), test.ShouldBeTrue)
}

func TestSlerpSweepTs(t *testing.T) {
	sweep := SlerpSweep{Steps: 2}
	test.That(t, sweep.Ts(), test.ShouldResemble, []float64{0, 0.5, 1})

	sweep.Steps = 0
	test.That(t, len(sweep.Ts()), test.ShouldEqual, DefaultSlerpSteps+1)
}

func TestValidate(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		cfg := Config{Directions: []DirectionPair{{From: Vector{1, 0, 0}, To: Vector{0, 1, 0}}}}
		err := cfg.Validate()
		test.That(t, err, test.ShouldBeError, `error validating "directions.0": "name" is required`)
	})

	t.Run("duplicate name", func(t *testing.T) {
		cfg := Config{Directions: []DirectionPair{
			{Name: "a", From: Vector{1, 0, 0}, To: Vector{0, 1, 0}},
			{Name: "a", From: Vector{0, 1, 0}, To: Vector{0, 0, 1}},
		}}
		err := cfg.Validate()
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, `duplicate name "a"`)
	})

	t.Run("collects every problem", func(t *testing.T) {
		cfg := Config{
			Directions: []DirectionPair{{Name: "nan", From: Vector{math.NaN(), 0, 0}, To: Vector{0, math.Inf(1), 0}}},
			AxisAngles: []AxisAngle{{Axis: Vector{1, 0, 0}, Degrees: math.Inf(-1)}},
			Slerp:      &SlerpSweep{From: AxisAngle{Axis: Vector{0, 0, 1}}, To: AxisAngle{Axis: Vector{0, 0, 1}}, Steps: -1},
			LogLevel:   "loud",
		}
		err := cfg.Validate()
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, len(multierr.Errors(err)), test.ShouldEqual, 5)
		test.That(t, err.Error(), test.ShouldContainSubstring, `"from" must be finite`)
		test.That(t, err.Error(), test.ShouldContainSubstring, `"to" must be finite`)
		test.That(t, err.Error(), test.ShouldContainSubstring, "degrees must be finite")
		test.That(t, err.Error(), test.ShouldContainSubstring, "steps must not be negative, got -1")
		test.That(t, err.Error(), test.ShouldContainSubstring, `unknown log level: "loud"`)
	})

	t.Run("zero vectors are allowed", func(t *testing.T) {
		cfg := Config{Directions: []DirectionPair{{Name: "zero"}}, LogLevel: "debug"}
		test.That(t, cfg.Validate(), test.ShouldBeNil)
		test.That(t, cfg.Level(), test.ShouldEqual, logging.DEBUG)
	})
}
