// SPDX-License-Identifier: EPL-2.0

// Package analysis measures waveforms so an original and a cleaned
// recording can be compared: averaged power spectra, the share of power in
// a frequency band, level statistics and a peak envelope for drawing.
//
// Spectra use github.com/mjibson/go-dsp (FFT and Hann window); level
// statistics use gonum.
package analysis
