package cli

import (
	"fmt"
	"io"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/rotkernel/spatialmath"
)

// printf prints a message with a newline.
func printf(w io.Writer, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(w, format+"\n", a...)
}

// vectorFlag parses the named flag as a space delimited vector.
func vectorFlag(c *cli.Context, name string) (r3.Vector, error) {
	v, err := spatialmath.ParseVector(c.String(name))
	if err != nil {
		return r3.Vector{}, errors.Wrapf(err, "bad --%s", name)
	}
	return v, nil
}

func formatVector(v r3.Vector) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
