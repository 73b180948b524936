// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Envelope reduces x to points values, each the largest absolute sample of
// its block, for drawing a waveform overview.
func Envelope(x []float64, points int) []float64 {
	if points <= 0 || len(x) == 0 {
		return nil
	}
	points = min(points, len(x))

	out := make([]float64, points)
	abs := make([]float64, 0, len(x)/points+1)
	for p := range out {
		start := p * len(x) / points
		end := (p + 1) * len(x) / points

		abs = abs[:0]
		for _, v := range x[start:end] {
			abs = append(abs, math.Abs(v))
		}
		out[p] = floats.Max(abs)
	}

	return out
}

// RMS is the root mean square of x.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return math.Sqrt(floats.Dot(x, x) / float64(len(x)))
}

// PeakAbs is the largest absolute sample of x.
func PeakAbs(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return math.Max(math.Abs(floats.Max(x)), math.Abs(floats.Min(x)))
}

// DB converts an amplitude ratio to decibels. A zero ratio gives -Inf.
func DB(ratio float64) float64 {
	return 20 * math.Log10(ratio)
}
