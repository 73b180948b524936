// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"
)

// Waveform is a whole decoded signal held in memory, channel-major:
// Data[c][i] is sample i of channel c. Amplitudes are nominally in [-1,1]
// but intermediate results may exceed that range.
//
// Processing stages never modify a Waveform they receive; they return a
// new one.
type Waveform struct {
	SampleRate int
	Data       [][]float64
}

// NewWaveform allocates a silent waveform of the given shape.
func NewWaveform(sampleRate, channels, samples int) *Waveform {
	data := make([][]float64, channels)
	for c := range data {
		data[c] = make([]float64, samples)
	}

	return &Waveform{SampleRate: sampleRate, Data: data}
}

// FromInterleaved builds a waveform from sample-major (interleaved) data.
func FromInterleaved(sampleRate, channels int, samples []float64) (*Waveform, error) {
	if channels < 1 {
		return nil, ErrNoChannels
	}
	if len(samples)%channels != 0 {
		return nil, ErrPartialFrame
	}

	frames := len(samples) / channels
	w := NewWaveform(sampleRate, channels, frames)
	for f := range frames {
		base := f * channels
		for c := range channels {
			w.Data[c][f] = samples[base+c]
		}
	}

	return w, nil
}

func (w *Waveform) Channels() int { return len(w.Data) }

// Len is the number of samples per channel.
func (w *Waveform) Len() int {
	if len(w.Data) == 0 {
		return 0
	}
	return len(w.Data[0])
}

// Duration of the signal at its sample rate.
func (w *Waveform) Duration() time.Duration {
	if w.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(w.Len()) / float64(w.SampleRate) * float64(time.Second))
}

// Validate checks the invariants every stage relies on: at least one
// channel, a positive sample rate, non-empty and equally long channels.
func (w *Waveform) Validate() error {
	if w == nil || len(w.Data) == 0 {
		return ErrNoChannels
	}
	if w.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, w.SampleRate)
	}

	n := len(w.Data[0])
	if n == 0 {
		return ErrEmptyWaveform
	}
	for c, ch := range w.Data {
		if len(ch) != n {
			return fmt.Errorf("%w: channel %d has %d samples, channel 0 has %d", ErrRaggedChannels, c, len(ch), n)
		}
	}

	return nil
}

// SameShape reports whether o has the same channel count and length as w.
func (w *Waveform) SameShape(o *Waveform) bool {
	if w.Channels() != o.Channels() {
		return false
	}
	for c := range w.Data {
		if len(w.Data[c]) != len(o.Data[c]) {
			return false
		}
	}
	return true
}

func (w *Waveform) Clone() *Waveform {
	data := make([][]float64, len(w.Data))
	for c, ch := range w.Data {
		data[c] = append([]float64(nil), ch...)
	}

	return &Waveform{SampleRate: w.SampleRate, Data: data}
}

// Sub returns w - o, sample by sample.
func (w *Waveform) Sub(o *Waveform) (*Waveform, error) {
	return w.combine(o, func(a, b float64) float64 { return a - b })
}

// Add returns w + o, sample by sample.
func (w *Waveform) Add(o *Waveform) (*Waveform, error) {
	return w.combine(o, func(a, b float64) float64 { return a + b })
}

func (w *Waveform) combine(o *Waveform, op func(a, b float64) float64) (*Waveform, error) {
	if w.SampleRate != o.SampleRate {
		return nil, fmt.Errorf("%w: %d != %d", ErrSampleRateMismatch, w.SampleRate, o.SampleRate)
	}
	if !w.SameShape(o) {
		return nil, fmt.Errorf("%w: (%d, %d) vs (%d, %d)", ErrShapeMismatch, w.Channels(), w.Len(), o.Channels(), o.Len())
	}

	out := NewWaveform(w.SampleRate, w.Channels(), w.Len())
	for c := range w.Data {
		a, b, dst := w.Data[c], o.Data[c], out.Data[c]
		for i := range dst {
			dst[i] = op(a[i], b[i])
		}
	}

	return out, nil
}

// Interleave returns the samples in sample-major order
// (frame 0 channel 0, frame 0 channel 1, ...), the layout audio files use.
func (w *Waveform) Interleave() []float64 {
	channels := w.Channels()
	frames := w.Len()
	out := make([]float64, channels*frames)

	for c, ch := range w.Data {
		for f, v := range ch {
			out[f*channels+c] = v
		}
	}

	return out
}
