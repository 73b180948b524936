// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"fmt"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
)

// DefaultFrameSize is the FFT length used by Spectrum callers that have no
// preference.
const DefaultFrameSize = 4096

// Spectrum is an averaged power spectrum. Power[i] is the mean power at
// bin i, which is centred on i*BinWidth Hz.
type Spectrum struct {
	BinWidth float64
	Power    []float64
}

// PowerSpectrum averages Hann-windowed power spectra of frames of
// frameSize samples with half-frame hop. Signals shorter than a frame are
// zero padded into a single frame.
func PowerSpectrum(x []float64, sampleRate, frameSize int) (Spectrum, error) {
	if len(x) == 0 {
		return Spectrum{}, ErrEmptySignal
	}
	if frameSize < 2 {
		frameSize = DefaultFrameSize
	}

	win := window.Hann(frameSize)
	bins := frameSize/2 + 1
	power := make([]float64, bins)
	frame := make([]float64, frameSize)

	hop := frameSize / 2
	frames := 0
	for start := 0; start == 0 || start+frameSize <= len(x); start += hop {
		clear(frame)
		n := copy(frame, x[start:min(start+frameSize, len(x))])
		for i := range n {
			frame[i] *= win[i]
		}

		spec := fft.FFTReal(frame)
		for i := range power {
			a := cmplx.Abs(spec[i])
			power[i] += a * a
		}
		frames++
	}

	for i := range power {
		power[i] /= float64(frames)
	}

	return Spectrum{
		BinWidth: float64(sampleRate) / float64(frameSize),
		Power:    power,
	}, nil
}

// BandShare returns the fraction of total power between lowHz and highHz
// inclusive.
func (s Spectrum) BandShare(lowHz, highHz float64) (float64, error) {
	nyquist := s.BinWidth * float64(len(s.Power)-1)
	if lowHz < 0 || highHz < lowHz || lowHz > nyquist {
		return 0, fmt.Errorf("%w: %v-%v Hz", ErrInvalidBand, lowHz, highHz)
	}

	var in, total float64
	for i, p := range s.Power {
		f := float64(i) * s.BinWidth
		total += p
		if f >= lowHz && f <= highHz {
			in += p
		}
	}

	if total == 0 {
		return 0, nil
	}
	return in / total, nil
}

// Peak returns the frequency of the strongest bin.
func (s Spectrum) Peak() float64 {
	best := 0
	for i, p := range s.Power {
		if p > s.Power[best] {
			best = i
		}
	}
	return float64(best) * s.BinWidth
}
