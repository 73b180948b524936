// SPDX-License-Identifier: EPL-2.0

package audclean_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/audclean"
	"github.com/ik5/audclean/internal/audiotest"
)

// Example_clean runs the pipeline with a stand-in separator that assigns a
// quarter of the signal to the background.
func Example_clean() {
	dir, err := os.MkdirTemp("", "audclean-example")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "speech.wav")
	out := filepath.Join(dir, "speech.clean.wav")

	tone := audiotest.Tones(44100, 2, 2*44100, audiotest.Tone{Freq: 440, Amp: 0.5})
	if err := audclean.WriteWAV(in, tone, 16); err != nil {
		fmt.Println(err)
		return
	}

	sep, _ := audiotest.NewGainSeparator(0.75, 0.25)
	p, err := audclean.NewProcessor("cpu", audclean.WithSeparator(sep))
	if err != nil {
		fmt.Println(err)
		return
	}
	defer p.Close()

	res, err := p.Clean(context.Background(), in, out, 100, 3000)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("rate=%d original=%dx%d cleaned=%dx%d\n",
		res.SampleRate,
		res.Original.Channels(), res.Original.Len(),
		res.Cleaned.Channels(), res.Cleaned.Len())
	// Output: rate=44100 original=2x88200 cleaned=2x88200
}

// ExampleError shows how to tell failure kinds apart.
func ExampleError() {
	_, err := audclean.LoadFile("/nonexistent/recording.wav")

	var e *audclean.Error
	if errors.As(err, &e) {
		fmt.Println(e.Kind.String(), errors.Is(err, audclean.ErrDecode), errors.Is(err, os.ErrNotExist))
	}
	// Output: decode true true
}
