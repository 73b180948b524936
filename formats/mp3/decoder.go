// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audclean/audio"
	"github.com/ik5/audclean/utils"
)

// go-mp3 always decodes to 16-bit little-endian stereo
const (
	outputChannels = 2
	outputBitDepth = 16
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	channels   int
	buf        []byte
	// odd byte left over when a Read ended mid-sample
	carry    byte
	hasCarry bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 } // sample capacity, not bytes

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	bytesNeeded := len(dst) * 2
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	offset := 0
	if s.hasCarry {
		s.buf[0] = s.carry
		s.hasCarry = false
		offset = 1
	}

	n, err := s.dec.Read(s.buf[offset:])
	n += offset
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	samples := n / 2
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i:]))
		dst[i] = float32(utils.PCMToFloat(int(v), outputBitDepth))
	}

	if n%2 == 1 {
		s.carry = s.buf[n-1]
		s.hasCarry = true
		if err == io.EOF {
			// a dangling half sample at the end of the stream is dropped
			s.hasCarry = false
		}
	}

	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   outputChannels,
		buf:        make([]byte, 8192),
	}, nil
}
