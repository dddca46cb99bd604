// Package utils contains small helpers shared by the rotation tools.
package utils

import (
	"math"
)

func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// ModAngDeg wraps an angle in degrees into [0, 360).
func ModAngDeg(ang float64) float64 {
	return math.Mod(math.Mod((ang), 360)+360, 360)
}
