// Package cli contains the rotations command line tool: it evaluates the rotation kernel on
// configured or ad hoc inputs and prints the results as text tables.
package cli

import (
	"io"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/rotkernel/config"
	"go.viam.com/rotkernel/logging"
)

const (
	// Flags.
	flagConfig      = "config"
	flagDebug       = "debug"
	flagFrom        = "from"
	flagTo          = "to"
	flagSkew        = "skew"
	flagAxis        = "axis"
	flagDegrees     = "degrees"
	flagFromAxis    = "from-axis"
	flagFromDegrees = "from-degrees"
	flagToAxis      = "to-axis"
	flagToDegrees   = "to-degrees"
	flagSteps       = "steps"
	flagSamples     = "samples"
	flagSeed        = "seed"

	metadataKey = "rotations"
)

var app = &cli.App{
	Name:            "rotations",
	Usage:           "build and inspect 3D rotations",
	HideHelpCommand: true,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    flagConfig,
			Aliases: []string{"c"},
			Usage:   "load demo configuration from `FILE`",
		},
		&cli.BoolFlag{
			Name:    flagDebug,
			Aliases: []string{"vvv"},
			Usage:   "enable debug logging",
		},
	},
	Before: setup,
	Commands: []*cli.Command{
		{
			Name:        "demo",
			Usage:       "evaluate every configured direction pair, axis angle and slerp sweep",
			Description: "matrices apply to column vectors (v' = M*v), the transpose of a row-vector layout",
			Action:      DemoAction,
		},
		{
			Name:  "direction",
			Usage: "print the rotation which maps one direction onto another",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagFrom,
					Usage:    "source direction as \"x y z\"",
					Required: true,
				},
				&cli.StringFlag{
					Name:     flagTo,
					Usage:    "target direction as \"x y z\"",
					Required: true,
				},
				&cli.BoolFlag{
					Name:  flagSkew,
					Usage: "derive the matrix in closed form instead of through an axis and angle",
				},
			},
			Action: DirectionAction,
		},
		{
			Name:  "axis-angle",
			Usage: "print the matrix and quaternion of a rotation about an axis",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagAxis,
					Usage:    "rotation axis as \"x y z\"",
					Required: true,
				},
				&cli.Float64Flag{
					Name:  flagDegrees,
					Usage: "rotation angle in degrees",
				},
			},
			Action: AxisAngleAction,
		},
		{
			Name:  "slerp",
			Usage: "interpolate between two rotations",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  flagFromAxis,
					Usage: "axis of the start rotation as \"x y z\"",
					Value: "0 0 1",
				},
				&cli.Float64Flag{
					Name:  flagFromDegrees,
					Usage: "angle of the start rotation in degrees",
				},
				&cli.StringFlag{
					Name:  flagToAxis,
					Usage: "axis of the end rotation as \"x y z\"",
					Value: "0 0 1",
				},
				&cli.Float64Flag{
					Name:  flagToDegrees,
					Usage: "angle of the end rotation in degrees",
				},
				&cli.IntFlag{
					Name:  flagSteps,
					Usage: "number of intervals to split the sweep into",
					Value: config.DefaultSlerpSteps,
				},
			},
			Action: SlerpAction,
		},
		{
			Name:  "verify",
			Usage: "check on random inputs that every representation agrees",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  flagSamples,
					Usage: "number of random samples per check",
					Value: 1000,
				},
				&cli.Int64Flag{
					Name:  flagSeed,
					Usage: "seed for the random samples",
					Value: 1,
				},
			},
			Action: VerifyAction,
		},
	},
}

// NewApp returns a new app with the CLI API, Writer set to out, and ErrWriter
// set to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	app.Writer = out
	app.ErrWriter = errOut
	return app
}

type rotationsContext struct {
	cfg    *config.Config
	logger logging.Logger
}

// setup loads the configuration and picks the logger before any command runs.
func setup(c *cli.Context) error {
	cfg := config.Default()
	if path := c.String(flagConfig); path != "" {
		var err error
		cfg, err = config.Read(path)
		if err != nil {
			return err
		}
	}

	level := cfg.Level()
	if c.Bool(flagDebug) {
		level = logging.DEBUG
	}
	logger := logging.NewWriterLogger("rotations", level, c.App.ErrWriter)

	if c.App.Metadata == nil {
		c.App.Metadata = map[string]interface{}{}
	}
	c.App.Metadata[metadataKey] = &rotationsContext{cfg: cfg, logger: logger}
	logger.Debugw("loaded config", "path", cfg.ConfigFilePath, "directions", len(cfg.Directions))
	return nil
}

func fromContext(c *cli.Context) (*rotationsContext, error) {
	rc, ok := c.App.Metadata[metadataKey].(*rotationsContext)
	if !ok {
		return nil, errors.New("command context was not set up")
	}
	return rc, nil
}
