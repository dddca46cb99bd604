package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/rotkernel/spatialmath"
	"go.viam.com/rotkernel/utils"
)

// matrixTable prints the four rows of a homogeneous matrix.
func matrixTable(rm spatialmath.RotationMatrix) string {
	t := table.NewWriter()
	for i := 0; i < 4; i++ {
		row := rm.Row(i)
		t.AppendRow(table.Row{
			fmt.Sprintf("%7.3f", row[0]),
			fmt.Sprintf("%7.3f", row[1]),
			fmt.Sprintf("%7.3f", row[2]),
			fmt.Sprintf("%7.3f", row[3]),
		})
	}
	return t.Render()
}

// quaternionRow lists the components of q and its rotation angle in [0, 360) about its axis.
func quaternionRow(q quat.Number) table.Row {
	aa := spatialmath.QuatToR4AA(q)
	return table.Row{
		fmt.Sprintf("%.4f", q.Imag),
		fmt.Sprintf("%.4f", q.Jmag),
		fmt.Sprintf("%.4f", q.Kmag),
		fmt.Sprintf("%.4f", q.Real),
		fmt.Sprintf("%.2f", utils.ModAngDeg(utils.RadToDeg(aa.Theta))),
		formatVector(aa.Axis()),
	}
}

// quaternionTable prints a quaternion with its axis angle equivalent.
func quaternionTable(q quat.Number) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"X", "Y", "Z", "W", "Degrees", "Axis"})
	t.AppendRow(quaternionRow(q))
	return t.Render()
}

// slerpTable prints one row per interpolation step.
func slerpTable(ts []float64, qs []quat.Number) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"T", "X", "Y", "Z", "W", "Degrees", "Axis"})
	for i, q := range qs {
		t.AppendRow(append(table.Row{fmt.Sprintf("%.3f", ts[i])}, quaternionRow(q)...))
	}
	return t.Render()
}

type residualSummary struct {
	check   string
	samples int
	mean    float64
	stddev  float64
	max     float64
}

// residualTable prints the error statistics of each verification check.
func residualTable(summaries []residualSummary) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Check", "Samples", "Mean", "Std Dev", "Max"})
	for _, s := range summaries {
		t.AppendRow(table.Row{
			s.check,
			s.samples,
			fmt.Sprintf("%.3g", s.mean),
			fmt.Sprintf("%.3g", s.stddev),
			fmt.Sprintf("%.3g", s.max),
		})
	}
	return t.Render()
}
