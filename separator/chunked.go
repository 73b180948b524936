// SPDX-License-Identifier: EPL-2.0

package separator

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/ik5/audclean/audio"
)

// DefaultOverlap is the fraction of a segment shared with its neighbour.
const DefaultOverlap = 0.25

// Model runs separation on one stereo segment. It returns one waveform per
// source, each shaped like the segment.
type Model interface {
	Run(ctx context.Context, segment *audio.Waveform) ([]*audio.Waveform, error)
}

// ChunkConfig controls how long inputs are split.
type ChunkConfig struct {
	// SegmentSeconds is the length of one model pass. Zero runs the whole
	// input in a single pass.
	SegmentSeconds float64
	// Overlap is the shared fraction between neighbouring segments, in [0, 1).
	Overlap float64
	// Names are the source names in model output order. Nil selects DefaultNames.
	Names []string
}

// Chunked turns a segment-level Model into a Separator. Segments are
// cross-faded with triangular weights and normalized by the summed weights,
// so an identity model reproduces its input exactly.
type Chunked struct {
	model Model
	cfg   ChunkConfig
}

var _ Separator = (*Chunked)(nil)

// NewChunked validates cfg and wraps m.
func NewChunked(m Model, cfg ChunkConfig) (*Chunked, error) {
	if cfg.SegmentSeconds < 0 || math.IsNaN(cfg.SegmentSeconds) || math.IsInf(cfg.SegmentSeconds, 0) {
		return nil, fmt.Errorf("%w: segment %v seconds", ErrInvalidSegment, cfg.SegmentSeconds)
	}
	if cfg.Overlap < 0 || cfg.Overlap >= 1 || math.IsNaN(cfg.Overlap) {
		return nil, fmt.Errorf("%w: overlap %v", ErrInvalidSegment, cfg.Overlap)
	}

	return &Chunked{model: m, cfg: cfg}, nil
}

// Close closes the model when it implements io.Closer.
func (c *Chunked) Close() error {
	if closer, ok := c.model.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Separate implements Separator.
func (c *Chunked) Separate(ctx context.Context, mix *audio.Waveform) (*Sources, error) {
	if err := CheckStereo(mix); err != nil {
		return nil, err
	}

	length := mix.Len()
	segment := int(math.Round(c.cfg.SegmentSeconds * float64(mix.SampleRate)))
	if segment <= 0 || segment >= length {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out, err := c.run(ctx, mix)
		if err != nil {
			return nil, err
		}
		return NewSources(mix, c.cfg.Names, out)
	}

	stride := max(1, int((1-c.cfg.Overlap)*float64(segment)))
	weight := triangleWeights(segment)
	weightSum := make([]float64, length)

	var sums []*audio.Waveform
	for offset := 0; offset < length; offset += stride {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n := min(segment, length-offset)
		chunk := audio.NewWaveform(mix.SampleRate, mix.Channels(), segment)
		for ch := range chunk.Data {
			copy(chunk.Data[ch], mix.Data[ch][offset:offset+n])
		}

		out, err := c.run(ctx, chunk)
		if err != nil {
			return nil, err
		}

		if sums == nil {
			sums = make([]*audio.Waveform, len(out))
			for i := range sums {
				sums[i] = audio.NewWaveform(mix.SampleRate, mix.Channels(), length)
			}
		} else if len(out) != len(sums) {
			return nil, fmt.Errorf("%w: model returned %d sources, earlier segments had %d", ErrSourceShape, len(out), len(sums))
		}

		for i, src := range out {
			for ch := range src.Data {
				dst := sums[i].Data[ch][offset : offset+n]
				for j := range dst {
					dst[j] += weight[j] * src.Data[ch][j]
				}
			}
		}
		for j := range n {
			weightSum[offset+j] += weight[j]
		}
	}

	for _, w := range sums {
		for ch := range w.Data {
			for j := range w.Data[ch] {
				w.Data[ch][j] /= weightSum[j]
			}
		}
	}

	return NewSources(mix, c.cfg.Names, sums)
}

func (c *Chunked) run(ctx context.Context, chunk *audio.Waveform) ([]*audio.Waveform, error) {
	out, err := c.model.Run(ctx, chunk)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNoSources
	}
	if c.cfg.Names != nil && len(out) != len(c.cfg.Names) {
		return nil, fmt.Errorf("%w: model returned %d sources for %d names", ErrSourceShape, len(out), len(c.cfg.Names))
	}
	for i, w := range out {
		if w == nil || !w.SameShape(chunk) {
			return nil, fmt.Errorf("%w: segment output %d", ErrSourceShape, i)
		}
	}
	return out, nil
}

// triangleWeights rises linearly from 1 to the middle of the segment and
// falls back, scaled so the peak is 1.
func triangleWeights(segment int) []float64 {
	w := make([]float64, segment)
	half := segment / 2
	for i := range half {
		w[i] = float64(i + 1)
	}
	for i := half; i < segment; i++ {
		w[i] = float64(segment - i)
	}

	peak := 0.0
	for _, v := range w {
		peak = max(peak, v)
	}
	for i := range w {
		w[i] /= peak
	}
	return w
}
