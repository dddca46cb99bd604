// Package config defines the JSON configuration of the rotation demo: which direction pairs,
// axis-angle samples and slerp sweep to evaluate.
package config

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/rotkernel/logging"
	"go.viam.com/rotkernel/spatialmath"
	rutils "go.viam.com/rotkernel/utils"
)

// DefaultSlerpSteps is the number of intervals a slerp sweep is split into when none is configured.
const DefaultSlerpSteps = 4

// Vector is a JSON three element array.
type Vector [3]float64

// R3 returns the vector as an r3.Vector.
func (v Vector) R3() r3.Vector {
	return r3.Vector{X: v[0], Y: v[1], Z: v[2]}
}

// VectorFromR3 converts an r3.Vector to its JSON form.
func VectorFromR3(v r3.Vector) Vector {
	return Vector{v.X, v.Y, v.Z}
}

// A DirectionPair names a rotation taking the direction From onto the direction To.
type DirectionPair struct {
	Name string `json:"name"`
	From Vector `json:"from"`
	To   Vector `json:"to"`
}

// Validate ensures all parts of the config are valid.
func (dp *DirectionPair) Validate(path string) error {
	if dp.Name == "" {
		return rutils.NewConfigValidationFieldRequiredError(path, "name")
	}
	return multierr.Combine(
		validateVector(path, "from", dp.From),
		validateVector(path, "to", dp.To),
	)
}

// An AxisAngle is a rotation of Degrees about Axis.
type AxisAngle struct {
	Name    string  `json:"name,omitempty"`
	Axis    Vector  `json:"axis"`
	Degrees float64 `json:"degrees"`
}

// Validate ensures all parts of the config are valid.
func (aa *AxisAngle) Validate(path string) error {
	if err := validateVector(path, "axis", aa.Axis); err != nil {
		return err
	}
	if math.IsNaN(aa.Degrees) || math.IsInf(aa.Degrees, 0) {
		return rutils.NewConfigValidationError(path, errors.New("degrees must be finite"))
	}
	return nil
}

// Radians returns the angle of the rotation in radians.
func (aa *AxisAngle) Radians() float64 {
	return rutils.DegToRad(aa.Degrees)
}

// Orientation returns the rotation as an axis angle orientation.
func (aa *AxisAngle) Orientation() spatialmath.Orientation {
	return spatialmath.NewR4AAFromAxis(aa.Axis.R3(), aa.Radians())
}

// A SlerpSweep interpolates between two rotations in Steps equal intervals.
type SlerpSweep struct {
	From  AxisAngle `json:"from"`
	To    AxisAngle `json:"to"`
	Steps int       `json:"steps"`
}

// Validate ensures all parts of the config are valid.
func (ss *SlerpSweep) Validate(path string) error {
	var errs error
	errs = multierr.Append(errs, ss.From.Validate(path+".from"))
	errs = multierr.Append(errs, ss.To.Validate(path+".to"))
	if ss.Steps < 0 {
		errs = multierr.Append(errs, rutils.NewConfigValidationError(path, errors.Errorf("steps must not be negative, got %d", ss.Steps)))
	}
	return errs
}

// Ts returns the interpolation parameters of the sweep, 0 and 1 included.
func (ss *SlerpSweep) Ts() []float64 {
	steps := ss.Steps
	if steps == 0 {
		steps = DefaultSlerpSteps
	}
	ts := make([]float64, 0, steps+1)
	for i := 0; i <= steps; i++ {
		ts = append(ts, float64(i)/float64(steps))
	}
	return ts
}

// Config describes everything the demo evaluates.
type Config struct {
	Directions []DirectionPair `json:"directions"`
	AxisAngles []AxisAngle     `json:"axis_angles,omitempty"`
	Slerp      *SlerpSweep     `json:"slerp,omitempty"`
	LogLevel   string          `json:"log_level,omitempty"`

	ConfigFilePath string `json:"-"`
}

// Validate ensures all parts of the config are valid. Every problem found is reported, not just the first.
func (c *Config) Validate() error {
	var errs error
	names := make(map[string]struct{}, len(c.Directions))
	for idx := range c.Directions {
		path := fmt.Sprintf("directions.%d", idx)
		dp := &c.Directions[idx]
		if err := dp.Validate(path); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if _, ok := names[dp.Name]; ok {
			errs = multierr.Append(errs, rutils.NewConfigValidationError(path, errors.Errorf("duplicate name %q", dp.Name)))
		}
		names[dp.Name] = struct{}{}
	}
	for idx := range c.AxisAngles {
		errs = multierr.Append(errs, c.AxisAngles[idx].Validate(fmt.Sprintf("axis_angles.%d", idx)))
	}
	if c.Slerp != nil {
		errs = multierr.Append(errs, c.Slerp.Validate("slerp"))
	}
	if c.LogLevel != "" {
		if _, err := logging.LevelFromString(c.LogLevel); err != nil {
			errs = multierr.Append(errs, rutils.NewConfigValidationError("log_level", err))
		}
	}
	return errs
}

// Level returns the configured log level, INFO when none is set.
func (c *Config) Level() logging.Level {
	if c.LogLevel == "" {
		return logging.INFO
	}
	level, err := logging.LevelFromString(c.LogLevel)
	if err != nil {
		return logging.INFO
	}
	return level
}

// Default returns the demo configuration: a direct opposite pair along x, an opposite pair along an
// oblique axis, and one general pair.
func Default() *Config {
	oblique := spatialmath.NormalizeVector(r3.Vector{X: 1, Y: 0.7, Z: 0.5})
	return &Config{
		Directions: []DirectionPair{
			{Name: "x to -x", From: Vector{1, 0, 0}, To: Vector{-1, 0, 0}},
			{Name: "oblique to opposite", From: VectorFromR3(oblique), To: VectorFromR3(spatialmath.Negate(oblique))},
			{
				Name: "general",
				From: VectorFromR3(spatialmath.NormalizeVector(r3.Vector{X: -0.6, Y: 0.9, Z: 0.2})),
				To:   VectorFromR3(spatialmath.NormalizeVector(r3.Vector{X: 0.4, Y: 0.7, Z: -0.5})),
			},
		},
		AxisAngles: []AxisAngle{
			{Name: "quarter turn about z", Axis: Vector{0, 0, 1}, Degrees: 90},
			{Name: "half turn about x", Axis: Vector{1, 0, 0}, Degrees: 180},
		},
		Slerp: &SlerpSweep{
			From:  AxisAngle{Axis: Vector{0, 0, 1}, Degrees: 0},
			To:    AxisAngle{Axis: Vector{0, 0, 1}, Degrees: 90},
			Steps: DefaultSlerpSteps,
		},
	}
}

func validateVector(path, field string, v Vector) error {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return rutils.NewConfigValidationError(path, errors.Errorf("%q must be finite", field))
		}
	}
	return nil
}
