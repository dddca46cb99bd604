package cli

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"go.viam.com/rotkernel/logging"
	"go.viam.com/rotkernel/spatialmath"
)

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	err := NewApp(out, errOut).Run(append([]string{"rotations"}, args...))
	return out.String(), errOut.String(), err
}

func TestDirectionCommand(t *testing.T) {
	t.Run("general", func(t *testing.T) {
		out, _, err := runApp(t, "direction", "--from=1 0 0", "--to=0 2 0")
		test.That(t, err, test.ShouldBeNil)
		test.That(t, out, test.ShouldContainSubstring, "general rotation from (1.000, 0.000, 0.000) to (0.000, 2.000, 0.000)")
		test.That(t, out, test.ShouldContainSubstring, "-1.000")
		test.That(t, out, test.ShouldContainSubstring, "maps from onto (0.000, 1.000, 0.000)")
	})

	t.Run("skew", func(t *testing.T) {
		out, _, err := runApp(t, "direction", "--from=1 0 0", "--to=0 2 0", "--skew")
		test.That(t, err, test.ShouldBeNil)
		test.That(t, out, test.ShouldContainSubstring, "maps from onto (0.000, 1.000, 0.000)")
	})

	t.Run("antiparallel", func(t *testing.T) {
		out, _, err := runApp(t, "direction", "--from=1 0 0", "--to=-3 0 0")
		test.That(t, err, test.ShouldBeNil)
		test.That(t, out, test.ShouldContainSubstring, "antiparallel rotation")
		test.That(t, out, test.ShouldContainSubstring, "maps from onto (-1.000, 0.000, 0.000)")
	})

	t.Run("degenerate", func(t *testing.T) {
		out, errOut, err := runApp(t, "direction", "--from=0 0 0", "--to=1 0 0")
		test.That(t, err, test.ShouldBeNil)
		test.That(t, out, test.ShouldContainSubstring, "degenerate rotation")
		test.That(t, errOut, test.ShouldContainSubstring, "WARN\trotations.direction")
		test.That(t, errOut, test.ShouldContainSubstring, "direction undefined, using the identity")
	})

	t.Run("bad vector", func(t *testing.T) {
		_, _, err := runApp(t, "direction", "--from=1 0", "--to=0 1 0")
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "bad --from")
	})

	t.Run("missing flag", func(t *testing.T) {
		_, _, err := runApp(t, "direction", "--from=1 0 0")
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "to")
	})
}

func TestDebugLogging(t *testing.T) {
	_, errOut, err := runApp(t, "--debug", "direction", "--from=1 0 0", "--to=0 1 0")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, errOut, test.ShouldContainSubstring, "DEBUG")
	test.That(t, errOut, test.ShouldContainSubstring, `"relation":"general"`)
	test.That(t, errOut, test.ShouldContainSubstring, "rotations.direction")
	test.That(t, errOut, test.ShouldContainSubstring, `{"from":"(1.000, 0.000, 0.000)","to":"(0.000, 1.000, 0.000)","skew":false,`)

	_, errOut, err = runApp(t, "--debug", "slerp", "--to-degrees=90", "--steps=2")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, strings.Count(errOut, "slerp step"), test.ShouldEqual, 3)

	_, errOut, err = runApp(t, "direction", "--from=1 0 0", "--to=0 1 0")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, errOut, test.ShouldEqual, "")
}

func TestAxisAngleCommand(t *testing.T) {
	out, _, err := runApp(t, "axis-angle", "--axis=0 0 5", "--degrees=90")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "90.00 degrees about (0.000, 0.000, 5.000)")
	test.That(t, out, test.ShouldContainSubstring, "0.7071")
	test.That(t, out, test.ShouldContainSubstring, "(0.000, 0.000, 1.000)")
}

func TestSlerpCommand(t *testing.T) {
	out, _, err := runApp(t, "slerp", "--to-degrees=90", "--steps=2")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "0.500")
	test.That(t, out, test.ShouldContainSubstring, "0.3827")
	test.That(t, out, test.ShouldContainSubstring, "45.00")
	test.That(t, out, test.ShouldContainSubstring, "turns 90.00 degrees about (0.000, 0.000, 1.000)")

	_, _, err = runApp(t, "slerp", "--steps=-1")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "steps must not be negative")

	_, _, err = runApp(t, "slerp", "--steps=0")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "must be positive")
}

func TestVerifyCommand(t *testing.T) {
	out, _, err := runApp(t, "verify", "--samples=200", "--seed=7")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "direction variants agree")
	test.That(t, out, test.ShouldContainSubstring, "all 8 checks passed")

	_, _, err = runApp(t, "verify", "--samples=0")
	test.That(t, err, test.ShouldNotBeNil)
}

func TestRunResidualChecks(t *testing.T) {
	logger, logs := logging.NewObservedTestLogger(t)
	summaries, err := runResidualChecks(context.Background(), logger.With("seed", 42), residualChecks, 100, 42)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(summaries), test.ShouldEqual, len(residualChecks))
	for _, s := range summaries {
		test.That(t, s.samples, test.ShouldEqual, 100)
		test.That(t, s.max, test.ShouldBeLessThan, MaxResidual)
		test.That(t, s.mean, test.ShouldBeLessThanOrEqualTo, s.max)
	}

	summarized := logs.FilterMessage("summarized").All()
	test.That(t, len(summarized), test.ShouldEqual, len(residualChecks))
	for i, entry := range summarized {
		test.That(t, entry.ContextMap()["check"], test.ShouldEqual, residualChecks[i].name)
		test.That(t, entry.ContextMap()["seed"], test.ShouldEqual, int64(42))
		test.That(t, entry.ContextMap()["max"], test.ShouldEqual, summaries[i].max)
	}

	// The same seed gives the same samples.
	again, err := runResidualChecks(context.Background(), logger, residualChecks, 100, 42)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, again, test.ShouldResemble, summaries)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = runResidualChecks(ctx, logger, residualChecks, 100, 42)
	test.That(t, err, test.ShouldBeError, context.Canceled)
}

func TestDemoCommand(t *testing.T) {
	out, _, err := runApp(t, "demo")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "x to -x:")
	test.That(t, out, test.ShouldContainSubstring, "oblique to opposite:")
	test.That(t, out, test.ShouldContainSubstring, "general:")
	test.That(t, out, test.ShouldContainSubstring, "quarter turn about z:")
	test.That(t, out, test.ShouldContainSubstring, "slerp:")

	path := filepath.Join(t.TempDir(), "demo.json")
	contents := `{"directions": [{"name": "y to z", "from": [0, 1, 0], "to": [0, 0, 1]}], "log_level": "debug"}`
	test.That(t, os.WriteFile(path, []byte(contents), 0o600), test.ShouldBeNil)

	out, errOut, err := runApp(t, "--config", path, "demo")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "y to z:")
	test.That(t, out, test.ShouldNotContainSubstring, "x to -x:")
	test.That(t, out, test.ShouldNotContainSubstring, "slerp:")
	test.That(t, errOut, test.ShouldContainSubstring, "loaded config")

	_, _, err = runApp(t, "--config", filepath.Join(t.TempDir(), "missing.json"), "demo")
	test.That(t, err, test.ShouldNotBeNil)

	out, _, err = runApp(t, "demo", "--help")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldContainSubstring, "transpose")
}

func TestQuaternionRowDegrees(t *testing.T) {
	// Three quarter turns about +z come back from QuatToR4AA as -90 degrees; the column wraps that
	// into [0, 360) without flipping the axis.
	row := quaternionRow(spatialmath.QuatFromAxisAngle(r3.Vector{Z: 1}, 1.5*math.Pi))
	test.That(t, row[4], test.ShouldEqual, "270.00")
	test.That(t, row[5], test.ShouldEqual, "(0.000, 0.000, 1.000)")

	row = quaternionRow(spatialmath.IdentityQuaternion())
	test.That(t, row[4], test.ShouldEqual, "0.00")
}
