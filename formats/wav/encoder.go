// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/audclean/audio"
	"github.com/ik5/audclean/utils"
)

// DefaultBitDepth is what Encode callers use unless told otherwise.
const DefaultBitDepth = 16

// frames converted and handed to the encoder per Write call
const chunkFrames = 8192

// Encode writes w to ws as an integer PCM WAV file at w's sample rate and
// channel count. Samples are written sample-major (interleaved) and clipped
// to [-1, 1]. bitDepth must be 16, 24 or 32.
//
// The RIFF header is finalised by seeking back once all data is written,
// which is why a WriteSeeker is required.
func Encode(ws io.WriteSeeker, w *audio.Waveform, bitDepth int) error {
	switch bitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	if err := w.Validate(); err != nil {
		return fmt.Errorf("%w", err)
	}

	channels := w.Channels()
	enc := wav.NewEncoder(ws, w.SampleRate, bitDepth, channels, formatPCM)

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: w.SampleRate},
		SourceBitDepth: bitDepth,
		Data:           make([]int, 0, chunkFrames*channels),
	}

	frames := w.Len()
	for start := 0; start < frames; start += chunkFrames {
		end := min(start+chunkFrames, frames)

		buf.Data = buf.Data[:0]
		for f := start; f < end; f++ {
			for c := range channels {
				buf.Data = append(buf.Data, utils.FloatToPCM(w.Data[c][f], bitDepth))
			}
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("writing PCM data: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalising wav header: %w", err)
	}

	return nil
}
