// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files into an [audio.Source].
//
// Decoding is done by github.com/go-audio/aiff. AIFF stores big-endian
// integer PCM; go-audio handles the byte order and this package normalizes
// the integers to float32 by the full scale of the file's bit depth.
//
// # Supported Formats
//
//   - 16, 24 and 32-bit integer PCM
//   - any channel count and sample rate go-audio can parse
//
// AIFF-C compressed variants and 8-bit files are rejected with
// [ErrUnsupportedBitDepth] or [ErrNotAiffFile].
//
// # Usage
//
//	f, _ := os.Open("take.aiff")
//	src, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	w, err := audio.ReadAll(src)
//
// go-audio needs an io.ReadSeeker. Plain readers are buffered in memory
// first.
package aiff
