// SPDX-License-Identifier: EPL-2.0

package onnx

import (
	"context"
	"fmt"
	"sync"

	"github.com/shirou/gopsutil/mem"
	"go.uber.org/zap"

	"github.com/ik5/audclean/audio"
	"github.com/ik5/audclean/separator"
)

// runner executes one forward pass. input is laid out [2][frames]
// channel-major; the result must be [sources][2][frames].
type runner interface {
	run(input []float32, frames int) ([]float32, error)
	destroy() error
}

// availableMemory reports free system memory in bytes.
type availableMemory func() (uint64, error)

func systemMemory() (uint64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return vm.Available, nil
}

// model adapts a runner to separator.Model.
type model struct {
	mu      sync.Mutex
	r       runner
	sources int
	memory  availableMemory
	log     *zap.Logger
}

var _ separator.Model = (*model)(nil)

// working memory estimate relative to the tensors themselves
const activationFactor = 8

func (m *model) Run(ctx context.Context, segment *audio.Waveform) ([]*audio.Waveform, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	frames := segment.Len()
	channels := segment.Channels()

	if err := m.checkMemory(frames, channels); err != nil {
		return nil, err
	}

	input := make([]float32, channels*frames)
	for ch, data := range segment.Data {
		for i, v := range data {
			input[ch*frames+i] = float32(v)
		}
	}

	m.mu.Lock()
	if m.r == nil {
		m.mu.Unlock()
		return nil, ErrClosed
	}
	output, err := m.r.run(input, frames)
	m.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("running model: %w", err)
	}

	if len(output) != m.sources*channels*frames {
		return nil, fmt.Errorf("%w: %d values, want %d×%d×%d", ErrOutputShape, len(output), m.sources, channels, frames)
	}

	out := make([]*audio.Waveform, m.sources)
	for s := range out {
		w := audio.NewWaveform(segment.SampleRate, channels, frames)
		for ch := range w.Data {
			base := (s*channels + ch) * frames
			for i := range w.Data[ch] {
				w.Data[ch][i] = float64(output[base+i])
			}
		}
		out[s] = w
	}

	return out, nil
}

func (m *model) checkMemory(frames, channels int) error {
	if m.memory == nil {
		return nil
	}

	// float32 input plus output, scaled for the network's activations
	need := uint64(frames) * uint64(channels) * 4 * uint64(1+m.sources) * activationFactor
	avail, err := m.memory()
	if err != nil {
		m.log.Warn("cannot read available memory", zap.Error(err))
		return nil
	}

	if need > avail {
		return fmt.Errorf("%w: segment needs about %d MiB, %d MiB available",
			separator.ErrInsufficientMemory, need>>20, avail>>20)
	}
	return nil
}

func (m *model) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.r == nil {
		return nil
	}
	err := m.r.destroy()
	m.r = nil
	return err
}
