// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// maxEmptyReads bounds how many consecutive (0, nil) reads ReadAll tolerates
// before giving up on a source.
const maxEmptyReads = 100

// ReadAll drains src into a Waveform at the source's native sample rate and
// channel layout. Any error other than io.EOF aborts the read; a partial
// waveform is never returned.
func ReadAll(src Source) (*Waveform, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, ErrNoChannels
	}
	if src.SampleRate() <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, src.SampleRate())
	}

	size := src.BufSize()
	if size < channels {
		size = 4096
	}
	size -= size % channels

	buf := make([]float32, size)
	pending := make([]float32, 0, size+channels)
	data := make([][]float64, channels)
	empty := 0

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			empty = 0
			pending = append(pending, buf[:n]...)

			frames := len(pending) / channels
			for f := range frames {
				base := f * channels
				for c := range channels {
					data[c] = append(data[c], float64(pending[base+c]))
				}
			}
			pending = append(pending[:0], pending[frames*channels:]...)
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
		if n == 0 {
			empty++
			if empty >= maxEmptyReads {
				return nil, ErrNoProgress
			}
		}
	}

	if len(pending) != 0 {
		return nil, fmt.Errorf("%w: %d trailing samples", ErrPartialFrame, len(pending))
	}
	if len(data[0]) == 0 {
		return nil, ErrEmptyWaveform
	}

	return &Waveform{SampleRate: src.SampleRate(), Data: data}, nil
}
