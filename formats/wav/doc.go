// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Both directions use github.com/go-audio/wav for RIFF chunk handling.
//
// # Supported Formats
//
// Decoding:
//   - Integer PCM, 16, 24 and 32 bit
//   - WAVE_FORMAT_EXTENSIBLE files carrying integer PCM
//   - Any channel count and sample rate
//
// Encoding:
//   - Integer PCM, 16 (default), 24 or 32 bit
//   - Channel count and sample rate taken from the audio.Waveform
//
// IEEE float and compressed WAV files are rejected with ErrUnsupportedEncoding.
//
// # Decoding WAV Files
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	w, err := audio.ReadAll(source)
//
// The decoder returns an audio.Source that provides samples as float32
// values in the range [-1.0, 1.0]. Readers that cannot seek are buffered
// in memory first.
//
// # Writing WAV Files
//
//	file, _ := os.Create("cleaned.wav")
//	err := wav.Encode(file, w, wav.DefaultBitDepth)
//
// Samples are interleaved (sample-major) and clipped to [-1, 1] before
// quantisation. The header sizes are patched when encoding finishes, so the
// destination must be an io.WriteSeeker such as *os.File.
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrUnsupportedEncoding: not integer PCM
//   - ErrUnsupportedBitDepth: bit depth other than 16, 24 or 32
//   - ErrUnsupportedWavLayout: zero channels or sample rate
//   - ErrTruncatedData: the data chunk stops in the middle of a sample
package wav
