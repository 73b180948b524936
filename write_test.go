// SPDX-License-Identifier: EPL-2.0

package audclean

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ik5/audclean/audio"
	"github.com/ik5/audclean/formats/wav"
	"github.com/ik5/audclean/internal/audiotest"
)

func TestWriteWAV_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bits int
		tol  float64
	}{
		{0, 2.0 / (1 << 15)},
		{16, 2.0 / (1 << 15)},
		{24, 2.0 / (1 << 23)},
		// decoded samples pass through float32, which holds 24 bits of mantissa
		{32, 1.0 / (1 << 23)},
	}

	for _, tt := range tests {
		w := audiotest.Tones(48000, 2, 4800, audiotest.Tone{Freq: 1000, Amp: 0.9})
		path := filepath.Join(t.TempDir(), "out.wav")

		require.NoError(t, WriteWAV(path, w, tt.bits))

		got, err := LoadFile(path)
		require.NoError(t, err)
		require.Equal(t, 48000, got.SampleRate)
		require.True(t, got.SameShape(w))
		for ch := range w.Data {
			require.InDeltaSlice(t, w.Data[ch], got.Data[ch], tt.tol, "bits %d", tt.bits)
		}
	}
}

func TestWriteWAV_LeavesNothingOnFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.wav")

	err := WriteWAV(path, &audio.Waveform{SampleRate: 8000}, 16)
	require.ErrorIs(t, err, ErrEncode)
	require.ErrorIs(t, err, audio.ErrNoChannels)

	err = WriteWAV(path, audiotest.Ramp(8000, 2, 10), 12)
	require.ErrorIs(t, err, ErrEncode)
	require.ErrorIs(t, err, wav.ErrUnsupportedBitDepth)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestWriteWAV_KeepsOldFileOnFailure(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.wav")
	require.NoError(t, WriteWAV(path, audiotest.Ramp(8000, 2, 10), 16))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	require.Error(t, WriteWAV(path, audiotest.Ramp(0, 2, 10), 16))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestWriteWAV_Replaces(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.wav")
	require.NoError(t, WriteWAV(path, audiotest.Ramp(8000, 2, 10), 16))
	require.NoError(t, WriteWAV(path, audiotest.Ramp(16000, 2, 20), 16))

	got, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 16000, got.SampleRate)
	require.Equal(t, 20, got.Len())
}
