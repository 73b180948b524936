// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams into an [audio.Source].
//
// It wraps github.com/jfreymuth/oggvorbis, which already produces
// interleaved float32 samples, so the source only manages buffering. Reads
// always return whole frames: a destination that is not a multiple of the
// channel count is used up to the last complete frame.
//
//	f, _ := os.Open("take.ogg")
//	src, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    // errors.Is(err, vorbis.ErrNotVorbisFile)
//	}
//	w, err := audio.ReadAll(src)
//
// Encoding is not supported.
package vorbis
