package spatialmath

import (
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// spaceDelimitedStringToSlice is a helper method to split up space-delimited fields such as "1 0.7 0.5".
func spaceDelimitedStringToSlice(s string) ([]float64, error) {
	var converted []float64
	for _, field := range strings.Fields(s) {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid component %q", field)
		}
		converted = append(converted, value)
	}
	return converted, nil
}

// ParseVector parses a vector written as three space-delimited numbers, e.g. "1 0.7 0.5".
func ParseVector(s string) (r3.Vector, error) {
	components, err := spaceDelimitedStringToSlice(s)
	if err != nil {
		return r3.Vector{}, errors.Wrapf(err, "cannot parse vector %q", s)
	}
	if len(components) != 3 {
		return r3.Vector{}, errors.Errorf("vector %q must have 3 components, got %d", s, len(components))
	}
	return r3.Vector{X: components[0], Y: components[1], Z: components[2]}, nil
}
