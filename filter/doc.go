// SPDX-License-Identifier: EPL-2.0

// Package filter designs and applies digital Butterworth filters.
//
// [Butter] produces the same B/A coefficients as the classic analog
// prototype plus bilinear transform design. [LFilter] applies them causally
// from a zero initial state, one pass, so output is phase shifted the way a
// single-pass IIR filter always is.
//
// The cleaning filters have fixed orders: [LowPass] is fifth order and
// [HighPass] is third order. Cutoffs are given in Hz and normalized against
// the sample rate; a cutoff at or beyond Nyquist fails with
// [ErrInvalidCutoff].
//
//	hp, err := filter.HighPass(w, 100)
//	if err != nil {
//	    return err
//	}
//	clean, err := filter.LowPass(hp, 3000)
//
// Inputs are never modified.
package filter
