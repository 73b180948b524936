// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var (
	// ErrNotVorbisFile indicates the stream is not Ogg Vorbis.
	ErrNotVorbisFile = errors.New("not an Ogg Vorbis file")

	// ErrShortBuffer indicates a destination smaller than one frame.
	ErrShortBuffer = errors.New("destination shorter than one frame")
)
