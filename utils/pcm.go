// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// FullScale is the magnitude of the most negative sample at bitDepth,
// the divisor that maps integer PCM onto [-1, 1).
func FullScale(bitDepth int) float64 {
	return float64(int64(1) << (bitDepth - 1))
}

// FloatToPCM clamps x to [-1, 1] and scales it to a signed integer sample
// of the given bit depth, rounding to nearest.
func FloatToPCM(x float64, bitDepth int) int {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	} else if math.IsNaN(x) {
		x = 0
	}

	// Use max positive (2^(n-1) - 1) to avoid overflow
	return int(math.Round(x * (FullScale(bitDepth) - 1)))
}

// PCMToFloat maps a signed integer sample of the given bit depth onto [-1, 1).
func PCMToFloat(v int, bitDepth int) float64 {
	return float64(v) / FullScale(bitDepth)
}
