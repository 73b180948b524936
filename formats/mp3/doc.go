// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio into an [audio.Source].
//
// Decoding is delegated to github.com/hajimehoshi/go-mp3, which always
// produces 16-bit little-endian stereo. The source converts that stream to
// interleaved float32 samples in [-1, 1). Mono files therefore come out with
// both channels equal.
//
// # Usage
//
//	f, _ := os.Open("take.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    // errors.Is(err, mp3.ErrNotMP3File) for garbage input
//	}
//	w, err := audio.ReadAll(src)
//
// # Notes
//
// go-mp3 may return a byte count that ends half way through a sample. The
// source keeps the dangling byte and completes the sample on the next read,
// so no sample is ever split or dropped except a final half sample at EOF.
//
// Encoding MP3 is not supported.
package mp3
