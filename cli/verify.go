package cli

import (
	"context"
	"math"
	"math/rand"

	"github.com/golang/geo/r3"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/rotkernel/logging"
	"go.viam.com/rotkernel/spatialmath"
)

// MaxResidual is the largest error any verification check tolerates.
const MaxResidual = 1e-4

type residualCheck struct {
	name string
	run  func(rng *rand.Rand) float64
}

var residualChecks = []residualCheck{
	{
		name: "quaternion and matrix rotate alike",
		run: func(rng *rand.Rand) float64 {
			axis, angle, v := randomVector(rng), randomAngle(rng), randomVector(rng)
			byQuat := spatialmath.RotateVectorByQuat(spatialmath.QuatFromAxisAngle(axis, angle), v)
			byMatrix := spatialmath.TransformVector(spatialmath.MakeRotateAxisAngle(axis, angle), v)
			return byQuat.Sub(byMatrix).Norm()
		},
	},
	{
		name: "quaternion to matrix",
		run: func(rng *rand.Rand) float64 {
			axis, angle := randomVector(rng), randomAngle(rng)
			fromQuat := spatialmath.QuatToRotationMatrix(spatialmath.QuatFromAxisAngle(axis, angle))
			direct := spatialmath.MakeRotateAxisAngle(axis, angle)
			return maxEntryDiff(fromQuat, direct)
		},
	},
	{
		name: "matrix to quaternion",
		run: func(rng *rand.Rand) float64 {
			axis, angle := randomVector(rng), randomAngle(rng)
			q := spatialmath.QuatFromAxisAngle(axis, angle)
			recovered := spatialmath.MakeRotateAxisAngle(axis, angle).Quaternion()
			return quatDistance(q, recovered)
		},
	},
	{
		name: "direction mapping",
		run: func(rng *rand.Rand) float64 {
			from, to := randomVector(rng), randomVector(rng)
			mapped := spatialmath.TransformVector(spatialmath.DirectionToDirection(from, to), spatialmath.NormalizeVector(from))
			return mapped.Sub(spatialmath.NormalizeVector(to)).Norm()
		},
	},
	{
		name: "direction variants agree",
		run: func(rng *rand.Rand) float64 {
			from, to := randomVector(rng), randomVector(rng)
			return maxEntryDiff(spatialmath.DirectionToDirection(from, to), spatialmath.DirectionToDirectionSkew(from, to))
		},
	},
	{
		name: "direction quaternion",
		run: func(rng *rand.Rand) float64 {
			from, to := randomVector(rng), randomVector(rng)
			mapped := spatialmath.RotateVectorByQuat(spatialmath.QuatFromDirections(from, to), spatialmath.NormalizeVector(from))
			return mapped.Sub(spatialmath.NormalizeVector(to)).Norm()
		},
	},
	{
		name: "orthonormality",
		run: func(rng *rand.Rand) float64 {
			rm := spatialmath.DirectionToDirection(randomVector(rng), randomVector(rng))
			return maxEntryDiff(rm.Transpose().Mul(rm), spatialmath.NewIdentityRotationMatrix())
		},
	},
	{
		name: "slerp stays unit length",
		run: func(rng *rand.Rand) float64 {
			q1 := spatialmath.QuatFromAxisAngle(randomVector(rng), randomAngle(rng))
			q2 := spatialmath.QuatFromAxisAngle(randomVector(rng), randomAngle(rng))
			return math.Abs(spatialmath.QuatNorm(spatialmath.Slerp(q1, q2, rng.Float64())) - 1)
		},
	},
}

// VerifyAction runs every residual check on random inputs and fails if any error exceeds MaxResidual.
func VerifyAction(c *cli.Context) error {
	rc, err := fromContext(c)
	if err != nil {
		return err
	}
	samples := c.Int(flagSamples)
	if samples <= 0 {
		return errors.Errorf("--%s must be positive", flagSamples)
	}
	seed := c.Int64(flagSeed)
	logger := rc.logger.Sublogger("verify").With("seed", seed)
	logger.Debugw("verifying", "samples", samples)

	summaries, err := runResidualChecks(c.Context, logger, residualChecks, samples, seed)
	if err != nil {
		return err
	}
	printf(c.App.Writer, "%s", residualTable(summaries))

	var failures error
	for _, s := range summaries {
		if s.max > MaxResidual {
			logger.With("check", s.check).Errorw("residual too large", "max", s.max, "limit", MaxResidual)
			failures = multierr.Append(failures, errors.Errorf("%s: max residual %g exceeds %g", s.check, s.max, MaxResidual))
		}
	}
	if failures != nil {
		return errors.Wrap(failures, "verification failed")
	}
	printf(c.App.Writer, "all %d checks passed", len(summaries))
	return nil
}

// runResidualChecks runs every check concurrently. Each check draws from its own generator, seeded from
// seed and the check's position, so results do not depend on scheduling.
func runResidualChecks(
	ctx context.Context, logger logging.Logger, checks []residualCheck, samples int, seed int64,
) ([]residualSummary, error) {
	summaries := make([]residualSummary, len(checks))
	group, ctx := errgroup.WithContext(ctx)
	for idx, check := range checks {
		idx, check := idx, check
		group.Go(func() error {
			rng := rand.New(rand.NewSource(seed + int64(idx))) //nolint:gosec
			residuals := make([]float64, 0, samples)
			for i := 0; i < samples; i++ {
				if i%1000 == 0 && ctx.Err() != nil {
					return ctx.Err()
				}
				residuals = append(residuals, check.run(rng))
			}
			summary, err := summarizeResiduals(check.name, residuals)
			if err != nil {
				return err
			}
			summaries[idx] = summary
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	for _, s := range summaries {
		logger.With("check", s.check).Debugw("summarized", "mean", s.mean, "max", s.max)
	}
	return summaries, nil
}

func summarizeResiduals(name string, residuals []float64) (residualSummary, error) {
	mean, err := stats.Mean(residuals)
	if err != nil {
		return residualSummary{}, errors.Wrapf(err, "summarizing %q", name)
	}
	stddev, err := stats.StandardDeviation(residuals)
	if err != nil {
		return residualSummary{}, errors.Wrapf(err, "summarizing %q", name)
	}
	maxResidual, err := stats.Max(residuals)
	if err != nil {
		return residualSummary{}, errors.Wrapf(err, "summarizing %q", name)
	}
	return residualSummary{
		check:   name,
		samples: len(residuals),
		mean:    mean,
		stddev:  stddev,
		max:     maxResidual,
	}, nil
}

func randomVector(rng *rand.Rand) r3.Vector {
	return r3.Vector{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()}
}

func randomAngle(rng *rand.Rand) float64 {
	return (rng.Float64()*2 - 1) * math.Pi
}

func maxEntryDiff(a, b spatialmath.RotationMatrix) float64 {
	var diff float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			diff = math.Max(diff, math.Abs(a.At(i, j)-b.At(i, j)))
		}
	}
	return diff
}

// quatDistance is the componentwise distance between two rotations, taking the closer of q2 and -q2.
func quatDistance(q1, q2 quat.Number) float64 {
	return math.Min(quat.Abs(quat.Sub(q1, q2)), quat.Abs(quat.Add(q1, q2)))
}
