package cli

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/rotkernel/config"
	"go.viam.com/rotkernel/logging"
	"go.viam.com/rotkernel/spatialmath"
	"go.viam.com/rotkernel/utils"
)

// DemoAction evaluates everything in the loaded configuration.
func DemoAction(c *cli.Context) error {
	rc, err := fromContext(c)
	if err != nil {
		return err
	}
	logger := rc.logger.Sublogger("demo")
	for _, dp := range rc.cfg.Directions {
		printf(c.App.Writer, "%s:", dp.Name)
		printDirection(c, logger.With("name", dp.Name), dp.From.R3(), dp.To.R3(), false)
	}
	for _, aa := range rc.cfg.AxisAngles {
		printf(c.App.Writer, "%s:", aa.Name)
		printAxisAngle(c, logger.With("name", aa.Name), aa)
	}
	if rc.cfg.Slerp != nil {
		printf(c.App.Writer, "slerp:")
		printSlerp(c, logger, *rc.cfg.Slerp)
	}
	return nil
}

// DirectionAction prints the rotation mapping --from onto --to.
func DirectionAction(c *cli.Context) error {
	rc, err := fromContext(c)
	if err != nil {
		return err
	}
	from, err := vectorFlag(c, flagFrom)
	if err != nil {
		return err
	}
	to, err := vectorFlag(c, flagTo)
	if err != nil {
		return err
	}
	printDirection(c, rc.logger.Sublogger("direction"), from, to, c.Bool(flagSkew))
	return nil
}

// AxisAngleAction prints the rotation of --degrees about --axis.
func AxisAngleAction(c *cli.Context) error {
	rc, err := fromContext(c)
	if err != nil {
		return err
	}
	axis, err := vectorFlag(c, flagAxis)
	if err != nil {
		return err
	}
	printAxisAngle(c, rc.logger.Sublogger("axis-angle"), config.AxisAngle{
		Axis:    config.VectorFromR3(axis),
		Degrees: c.Float64(flagDegrees),
	})
	return nil
}

// SlerpAction prints the interpolation between the two given rotations.
func SlerpAction(c *cli.Context) error {
	rc, err := fromContext(c)
	if err != nil {
		return err
	}
	fromAxis, err := vectorFlag(c, flagFromAxis)
	if err != nil {
		return err
	}
	toAxis, err := vectorFlag(c, flagToAxis)
	if err != nil {
		return err
	}
	sweep := config.SlerpSweep{
		From:  config.AxisAngle{Axis: config.VectorFromR3(fromAxis), Degrees: c.Float64(flagFromDegrees)},
		To:    config.AxisAngle{Axis: config.VectorFromR3(toAxis), Degrees: c.Float64(flagToDegrees)},
		Steps: c.Int(flagSteps),
	}
	if err := sweep.Validate("slerp"); err != nil {
		return errors.Wrap(err, "invalid sweep")
	}
	if sweep.Steps == 0 {
		return errors.Errorf("--%s must be positive", flagSteps)
	}
	printSlerp(c, rc.logger.Sublogger("slerp"), sweep)
	return nil
}

func printDirection(c *cli.Context, logger logging.Logger, from, to r3.Vector, skew bool) {
	relation := spatialmath.ClassifyDirections(from, to)
	var rm spatialmath.RotationMatrix
	if skew {
		rm = spatialmath.DirectionToDirectionSkew(from, to)
	} else {
		rm = spatialmath.DirectionToDirection(from, to)
	}
	mapped := spatialmath.TransformVector(rm, spatialmath.NormalizeVector(from))

	logger = logger.With("from", formatVector(from), "to", formatVector(to), "skew", skew)
	if relation == spatialmath.DirectionsDegenerate {
		logger.Warnw("direction undefined, using the identity")
	}
	logger.Debugw("direction",
		"relation", relation.String(),
		"residual", mapped.Sub(spatialmath.NormalizeVector(to)).Norm(),
	)

	printf(c.App.Writer, "%s rotation from %s to %s", relation, formatVector(from), formatVector(to))
	printf(c.App.Writer, "%s", matrixTable(rm))
	printf(c.App.Writer, "maps from onto %s", formatVector(mapped))
}

func printAxisAngle(c *cli.Context, logger logging.Logger, aa config.AxisAngle) {
	rm := spatialmath.MakeRotateAxisAngle(aa.Axis.R3(), aa.Radians())
	q := aa.Orientation().Quaternion()
	logger.Debugw("axis angle", "axis", formatVector(aa.Axis.R3()), "degrees", aa.Degrees, "det", rm.Det())

	printf(c.App.Writer, "%.2f degrees about %s", aa.Degrees, formatVector(aa.Axis.R3()))
	printf(c.App.Writer, "%s", matrixTable(rm))
	printf(c.App.Writer, "%s", quaternionTable(q))
}

func printSlerp(c *cli.Context, logger logging.Logger, sweep config.SlerpSweep) {
	from := sweep.From.Orientation().Quaternion()
	to := sweep.To.Orientation().Quaternion()
	ts := sweep.Ts()
	qs := make([]quat.Number, 0, len(ts))
	for _, t := range ts {
		qs = append(qs, spatialmath.SlerpNormalized(from, to, t))
	}
	logger = logger.With("from", from, "to", to)
	logger.Debugw("slerp", "dot", spatialmath.QuatDot(from, to), "steps", len(ts)-1)
	for i, q := range qs {
		logger.Debugw("slerp step", "t", ts[i], "norm", spatialmath.QuatNorm(q))
	}

	printf(c.App.Writer, "%s", slerpTable(ts, qs))
	rate := spatialmath.AngularVelocityBetween(from, to, 1).Vector()
	printf(c.App.Writer, "turns %.2f degrees about %s", utils.RadToDeg(rate.Norm()), formatVector(spatialmath.NormalizeVector(rate)))
}
