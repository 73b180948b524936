// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"fmt"

	"github.com/ik5/audclean/audio"
)

// Fixed orders of the cleaning filters.
const (
	LowPassOrder  = 5
	HighPassOrder = 3
)

// Design returns the coefficients for a cutoff in Hz.
func Design(order int, cutoffHz float64, sampleRate int, kind Kind) (Coefficients, error) {
	wn, err := NormalizeCutoff(cutoffHz, sampleRate)
	if err != nil {
		return Coefficients{}, err
	}
	return Butter(order, wn, kind)
}

// LowPassSamples attenuates content above cutoffHz in one channel.
func LowPassSamples(x []float64, cutoffHz float64, sampleRate int) ([]float64, error) {
	c, err := Design(LowPassOrder, cutoffHz, sampleRate, Lowpass)
	if err != nil {
		return nil, fmt.Errorf("low-pass: %w", err)
	}
	return LFilter(c, x), nil
}

// HighPassSamples attenuates content below cutoffHz in one channel.
func HighPassSamples(x []float64, cutoffHz float64, sampleRate int) ([]float64, error) {
	c, err := Design(HighPassOrder, cutoffHz, sampleRate, Highpass)
	if err != nil {
		return nil, fmt.Errorf("high-pass: %w", err)
	}
	return LFilter(c, x), nil
}

// LowPass filters every channel of w independently with a fifth order
// Butterworth low-pass and returns a new waveform.
func LowPass(w *audio.Waveform, cutoffHz float64) (*audio.Waveform, error) {
	return apply(w, LowPassOrder, cutoffHz, Lowpass, "low-pass")
}

// HighPass filters every channel of w independently with a third order
// Butterworth high-pass and returns a new waveform.
func HighPass(w *audio.Waveform, cutoffHz float64) (*audio.Waveform, error) {
	return apply(w, HighPassOrder, cutoffHz, Highpass, "high-pass")
}

func apply(w *audio.Waveform, order int, cutoffHz float64, kind Kind, label string) (*audio.Waveform, error) {
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}

	c, err := Design(order, cutoffHz, w.SampleRate, kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}

	out := &audio.Waveform{SampleRate: w.SampleRate, Data: make([][]float64, w.Channels())}
	for ch, x := range w.Data {
		out.Data[ch] = LFilter(c, x)
	}

	return out, nil
}
