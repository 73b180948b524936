// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// StereoExpander presents a mono source as stereo by duplicating every
// sample into both channels. Stereo sources pass through unchanged.
type StereoExpander struct {
	src Source
	tmp []float32
}

func NewStereoExpander(src Source) *StereoExpander {
	return &StereoExpander{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (s *StereoExpander) SampleRate() int { return s.src.SampleRate() }
func (s *StereoExpander) Channels() int   { return 2 }
func (s *StereoExpander) BufSize() int    { return s.src.BufSize() * 2 }
func (s *StereoExpander) Close() error {
	err := s.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (s *StereoExpander) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	switch s.src.Channels() {
	case 2:
		return s.src.ReadSamples(dst)
	case 1:
	default:
		return 0, fmt.Errorf("%w: source has %d channels", ErrUnsupportedLayout, s.src.Channels())
	}

	if len(dst)%2 != 0 {
		return 0, ErrInvalidDstSize
	}

	frames := len(dst) / 2
	if cap(s.tmp) < frames {
		s.tmp = make([]float32, frames)
	}
	s.tmp = s.tmp[:frames]

	n, err := s.src.ReadSamples(s.tmp)
	for i := range n {
		dst[2*i] = s.tmp[i]
		dst[2*i+1] = s.tmp[i]
	}

	return n * 2, err
}
