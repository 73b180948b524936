// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize     = errors.New("dst size must be multiple of channels")
	ErrNoChannels         = errors.New("waveform has no channels")
	ErrEmptyWaveform      = errors.New("waveform has no samples")
	ErrRaggedChannels     = errors.New("waveform channels differ in length")
	ErrInvalidSampleRate  = errors.New("sample rate must be positive")
	ErrShapeMismatch      = errors.New("waveform shapes differ")
	ErrSampleRateMismatch = errors.New("waveform sample rates differ")
	ErrPartialFrame       = errors.New("stream ended inside a frame")
	ErrNoProgress         = errors.New("source returned no samples repeatedly")
	ErrUnsupportedLayout  = errors.New("only mono and stereo sources can be expanded to stereo")
)
