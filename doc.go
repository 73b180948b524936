// SPDX-License-Identifier: EPL-2.0

// Package audclean removes background noise from speech recordings.
//
// A recording is decoded, split into voice and background by a
// source-separation model, recombined, band-limited with Butterworth
// filters and written back out as WAV. The original and cleaned waveforms
// are returned so callers can compare them.
//
// # Supported Formats
//
// Input is decoded through the formats subpackages:
//   - WAV (PCM 16, 24 and 32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16, 24 and 32-bit) via formats/aiff
//
// The decoder is picked by file extension, falling back to the file header
// when the extension is unknown. Output is always PCM WAV at the input's
// sample rate with two channels.
//
// # Quick Start
//
//	p, err := audclean.NewProcessor("cuda:0",
//	    audclean.WithModel(onnx.Config{ModelPath: "separator.onnx"}),
//	    audclean.WithLogger(logger),
//	)
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//
//	res, err := p.Clean(ctx, "interview.mp3", "interview.clean.wav", 100, 3000)
//
// The processor loads the model once; reuse it for every file.
//
// # Pipeline
//
// Clean runs these steps in order:
//
//  1. Decode the input at its native sample rate. Mono is duplicated into
//     two identical channels; more than two channels is rejected.
//  2. Separate the stereo mixture into sources.
//  3. Recombine. [StrategySubtract], the default, subtracts the background
//     estimate from the original. [StrategyVocals] keeps the vocal estimate.
//  4. High-pass at the low cutoff (third order), then low-pass at the high
//     cutoff (fifth order). Filtering is causal and single pass.
//  5. Write the result atomically.
//
// Which sources count as vocals and background is set with [WithRoles].
// Several sources may be summed into one role, which suits four-stem
// models:
//
//	audclean.WithRoles(separator.Roles{
//	    separator.RoleVocals:     {"vocals"},
//	    separator.RoleBackground: {"drums", "bass", "other"},
//	})
//
// # Errors
//
// Every failure is an [*Error] carrying a [Kind]. Match kinds with
// errors.Is against [ErrDecode], [ErrModelLoad], [ErrConfig],
// [ErrInference], [ErrFilterParameter] and [ErrEncode]; the wrapped cause
// stays matchable too:
//
//	res, err := p.Clean(ctx, in, out, 100, 3000)
//	switch {
//	case errors.Is(err, audclean.ErrEncode):
//	    // res is valid; retry with audclean.WriteWAV(out2, res.Cleaned, 16)
//	case errors.Is(err, filter.ErrInvalidCutoff):
//	    // cutoff at or above Nyquist
//	}
//
// Nothing is retried and no partial output file is left behind.
package audclean
