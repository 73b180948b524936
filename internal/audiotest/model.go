// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"context"
	"sync/atomic"

	"github.com/ik5/audclean/audio"
	"github.com/ik5/audclean/separator"
)

// GainModel is a separator.Model that returns the segment scaled by each
// gain, one source per gain. Gains summing to 1 make the sources add back
// to the mixture.
type GainModel struct {
	Gains []float64
	// Err is returned by every Run when set.
	Err error

	calls  atomic.Int64
	closed atomic.Bool
}

var _ separator.Model = (*GainModel)(nil)

func (m *GainModel) Run(ctx context.Context, segment *audio.Waveform) ([]*audio.Waveform, error) {
	m.calls.Add(1)
	if m.Err != nil {
		return nil, m.Err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]*audio.Waveform, len(m.Gains))
	for i, g := range m.Gains {
		w := segment.Clone()
		for ch := range w.Data {
			for j := range w.Data[ch] {
				w.Data[ch][j] *= g
			}
		}
		out[i] = w
	}
	return out, nil
}

// Calls reports how many segments the model has processed.
func (m *GainModel) Calls() int { return int(m.calls.Load()) }

// Closed reports whether Close was called.
func (m *GainModel) Closed() bool { return m.closed.Load() }

func (m *GainModel) Close() error {
	m.closed.Store(true)
	return nil
}

// NewGainSeparator wraps a GainModel in a single-pass separator.Chunked.
func NewGainSeparator(gains ...float64) (*separator.Chunked, *GainModel) {
	m := &GainModel{Gains: gains}
	c, err := separator.NewChunked(m, separator.ChunkConfig{})
	if err != nil {
		panic(err)
	}
	return c, m
}

// FixedSeparator returns the same precomputed sources for any mixture of
// matching shape.
func FixedSeparator(names []string, waves ...*audio.Waveform) separator.Func {
	return func(ctx context.Context, mix *audio.Waveform) (*separator.Sources, error) {
		if err := separator.CheckStereo(mix); err != nil {
			return nil, err
		}
		return separator.NewSources(mix, names, waves)
	}
}
