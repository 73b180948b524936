// SPDX-License-Identifier: EPL-2.0

package filter

import "errors"

var (
	// ErrInvalidCutoff indicates a cutoff that does not lie strictly between
	// 0 Hz and the Nyquist frequency.
	ErrInvalidCutoff = errors.New("cutoff must be between 0 and the Nyquist frequency")

	// ErrInvalidOrder indicates a filter order below 1.
	ErrInvalidOrder = errors.New("filter order must be at least 1")

	// ErrInvalidKind indicates an unknown filter kind.
	ErrInvalidKind = errors.New("unknown filter kind")
)
