// SPDX-License-Identifier: EPL-2.0

package analysis

import "errors"

var (
	// ErrEmptySignal indicates there is nothing to analyze.
	ErrEmptySignal = errors.New("empty signal")

	// ErrInvalidBand indicates a band whose edges are reversed or outside [0, Nyquist].
	ErrInvalidBand = errors.New("invalid frequency band")
)
