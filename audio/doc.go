// SPDX-License-Identifier: EPL-2.0

// Package audio provides the audio primitives the cleaning pipeline is built on.
//
// This package contains:
//   - Source interface for streaming decoded audio
//   - Decoder interface and a Registry keyed by format / file extension
//   - Waveform, a whole signal held in memory, channel-major
//   - ReadAll for draining a Source into a Waveform
//   - StereoExpander for presenting mono audio as stereo
//
// # Source Interface
//
// Decoders produce a Source which yields interleaved float32 samples:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// # Waveform
//
// Separation and filtering work on the whole signal at once, so a Source is
// drained into a Waveform:
//
//	w, err := audio.ReadAll(source)
//	// w.Data[channel][sample], w.SampleRate
//
// Waveform operations (Sub, Add, Clone) return new values; the inputs are
// never modified. Interleave converts back to the sample-major layout used
// by audio files.
//
// # Stereo Expansion
//
// Separation models expect two channels. StereoExpander duplicates a mono
// stream into two identical channels and passes stereo through:
//
//	stereo := audio.NewStereoExpander(source)
//	w, err := audio.ReadAll(stereo)
//
// # Format Registry
//
// The registry maps format keys to decoders. Keys are case-insensitive and
// a leading dot is dropped, so file extensions can be used as-is:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.Get(filepath.Ext(path))
//
// # Sample Format
//
// Sources deliver float32 samples in [-1.0, 1.0]; Waveform stores float64 so
// filtering and recombination do not lose precision.
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available. ReadAll treats
// any other error as fatal and never returns a partially decoded waveform.
package audio
