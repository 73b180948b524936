// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
)

// mockSource generates audio from a function of (sample, channel).
type mockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // per channel
	generated    int // per channel
	bufSize      int
	waveform     func(sample int, channel int) float32
}

func newMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *mockSource {
	return &mockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		bufSize:      4096,
		waveform:     waveform,
	}
}

func newSilentSource(sampleRate, channels, totalSamples int) *mockSource {
	return newConstantSource(sampleRate, channels, totalSamples, 0)
}

func newSineSource(sampleRate, channels, totalSamples int, frequency float64) *mockSource {
	return newMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

func newConstantSource(sampleRate, channels, totalSamples int, value float32) *mockSource {
	return newMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return value
	})
}

// newRampSource encodes the position in the value so ordering bugs show up.
func newRampSource(sampleRate, channels, totalSamples int) *mockSource {
	return newMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return float32(sample)/float32(totalSamples) + float32(channel)*0.001
	})
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) BufSize() int    { return m.bufSize }
func (m *mockSource) Close() error    { return nil }

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	framesToWrite := min(len(dst)/m.channels, m.totalSamples-m.generated)
	for frame := range framesToWrite {
		sampleIndex := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(sampleIndex, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * m.channels

	if m.generated >= m.totalSamples {
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}

// scriptedSource replays fixed chunks, one per ReadSamples call, ignoring
// frame boundaries. It lets tests split frames across reads.
type scriptedSource struct {
	sampleRate int
	channels   int
	chunks     [][]float32
	final      error
	closed     bool
}

func (s *scriptedSource) SampleRate() int { return s.sampleRate }
func (s *scriptedSource) Channels() int   { return s.channels }
func (s *scriptedSource) BufSize() int    { return 16 }
func (s *scriptedSource) Close() error {
	s.closed = true
	return nil
}

func (s *scriptedSource) ReadSamples(dst []float32) (int, error) {
	if len(s.chunks) == 0 {
		if s.final != nil {
			return 0, s.final
		}
		return 0, io.EOF
	}

	n := copy(dst, s.chunks[0])
	s.chunks = s.chunks[1:]

	return n, nil
}

var errBrokenStream = errors.New("broken stream")
