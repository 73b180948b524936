// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/ik5/audclean/audio"
)

// Levels summarises one waveform.
type Levels struct {
	RMS       float64
	Peak      float64
	BandShare float64 // fraction of power inside the kept band
	PeakHz    float64 // strongest frequency
}

// Report compares an original recording with its cleaned version.
type Report struct {
	SampleRate int
	Channels   int
	Duration   time.Duration
	Original   Levels
	Cleaned    Levels
	// GainDB is the cleaned RMS relative to the original, in dB.
	GainDB float64
}

// Compare measures both waveforms over the band [lowHz, highHz]. Channels
// are averaged before measuring.
func Compare(original, cleaned *audio.Waveform, lowHz, highHz float64) (Report, error) {
	if err := original.Validate(); err != nil {
		return Report{}, fmt.Errorf("original: %w", err)
	}
	if err := cleaned.Validate(); err != nil {
		return Report{}, fmt.Errorf("cleaned: %w", err)
	}

	o, err := measure(original, lowHz, highHz)
	if err != nil {
		return Report{}, fmt.Errorf("original: %w", err)
	}
	c, err := measure(cleaned, lowHz, highHz)
	if err != nil {
		return Report{}, fmt.Errorf("cleaned: %w", err)
	}

	return Report{
		SampleRate: original.SampleRate,
		Channels:   original.Channels(),
		Duration:   original.Duration(),
		Original:   o,
		Cleaned:    c,
		GainDB:     DB(c.RMS / o.RMS),
	}, nil
}

func measure(w *audio.Waveform, lowHz, highHz float64) (Levels, error) {
	mono := Downmix(w)

	spec, err := PowerSpectrum(mono, w.SampleRate, DefaultFrameSize)
	if err != nil {
		return Levels{}, err
	}
	share, err := spec.BandShare(lowHz, highHz)
	if err != nil {
		return Levels{}, err
	}

	return Levels{
		RMS:       RMS(mono),
		Peak:      PeakAbs(mono),
		BandShare: share,
		PeakHz:    spec.Peak(),
	}, nil
}

// Downmix averages the channels of w into one.
func Downmix(w *audio.Waveform) []float64 {
	out := make([]float64, w.Len())
	frame := make([]float64, w.Channels())
	for i := range out {
		for ch := range w.Data {
			frame[ch] = w.Data[ch][i]
		}
		out[i] = stat.Mean(frame, nil)
	}
	return out
}
