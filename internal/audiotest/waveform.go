// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"

	"github.com/ik5/audclean/audio"
)

// Tone is one sine component of a generated signal.
type Tone struct {
	Freq float64
	Amp  float64
}

// Tones returns a waveform whose every channel is the sum of the given sine
// components.
func Tones(sampleRate, channels, frames int, tones ...Tone) *audio.Waveform {
	w := audio.NewWaveform(sampleRate, channels, frames)
	for i := range frames {
		t := float64(i) / float64(sampleRate)
		v := 0.0
		for _, tone := range tones {
			v += tone.Amp * math.Sin(2*math.Pi*tone.Freq*t)
		}
		for ch := range w.Data {
			w.Data[ch][i] = v
		}
	}
	return w
}

// Ramp returns a waveform where channel c holds (c+1)*i/frames at sample i,
// so every channel and position is distinct.
func Ramp(sampleRate, channels, frames int) *audio.Waveform {
	w := audio.NewWaveform(sampleRate, channels, frames)
	for ch := range w.Data {
		for i := range w.Data[ch] {
			w.Data[ch][i] = float64(ch+1) * float64(i) / float64(frames)
		}
	}
	return w
}
