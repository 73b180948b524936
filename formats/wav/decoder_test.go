// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// createWAVFile builds a canonical 44-byte-header WAV file in memory.
// Samples are written little-endian using bitsPerSample/8 bytes each.
func createWAVFile(sampleRate, channels, bitsPerSample, format int, samples []int) []byte {
	buf := new(bytes.Buffer)

	width := bitsPerSample / 8
	numChannels := uint16(channels)
	byteRate := uint32(sampleRate) * uint32(channels) * uint32(width)
	blockAlign := uint16(channels * width)
	dataSize := uint32(len(samples) * width)
	riffSize := 36 + dataSize

	// RIFF header
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, riffSize)
	buf.WriteString("WAVE")

	// fmt chunk
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16)) // chunk size
	binary.Write(buf, binary.LittleEndian, uint16(format))
	binary.Write(buf, binary.LittleEndian, numChannels)
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))

	// data chunk
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)

	for _, s := range samples {
		v := uint32(int32(s))
		for b := range width {
			buf.WriteByte(byte(v >> (8 * b)))
		}
	}

	return buf.Bytes()
}

func TestDecoder_ValidWAVFile(t *testing.T) {
	t.Parallel()

	samples := []int{0, 100, 200, -100, -200, 0}
	wavData := createWAVFile(8000, 1, 16, formatPCM, samples)

	decoder := Decoder{}
	src, err := decoder.Decode(bytes.NewReader(wavData))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}
	if src.BufSize() <= 0 {
		t.Errorf("BufSize() = %d, want positive value", src.BufSize())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

func TestDecoder_NonSeekableReader(t *testing.T) {
	t.Parallel()

	wavData := createWAVFile(44100, 2, 16, formatPCM, []int{100, 200, 300, 400})

	// bytes.Buffer is not an io.ReadSeeker
	src, err := Decoder{}.Decode(bytes.NewBuffer(wavData))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if src.SampleRate() != 44100 || src.Channels() != 2 {
		t.Errorf("format = (%d Hz, %d ch), want (44100 Hz, 2 ch)", src.SampleRate(), src.Channels())
	}
}

func TestDecoder_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"not wav", []byte("NOT A WAV FILE DATA"), ErrNotWavFile},
		{"truncated header", []byte("RIFF\x00"), ErrNotWavFile},
		{"empty", nil, ErrNotWavFile},
		{"ieee float", createWAVFile(8000, 1, 32, 3, []int{0, 1, 2, 3}), ErrUnsupportedEncoding},
		{"8-bit", createWAVFile(8000, 1, 8, formatPCM, []int{1, 2, 3, 4}), ErrUnsupportedBitDepth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	samples := []int{0, 16384, 32767, -16384, -32768}
	wavData := createWAVFile(8000, 1, 16, formatPCM, samples)

	src, err := Decoder{}.Decode(bytes.NewReader(wavData))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	dst := make([]float32, 5)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 5 {
		t.Fatalf("ReadSamples() n = %d, want 5", n)
	}

	expected := []float32{0.0, 0.5, 1.0, -0.5, -1.0}
	for i := range expected {
		if math.Abs(float64(dst[i]-expected[i])) > 0.001 {
			t.Errorf("dst[%d] = %v, want ≈%v", i, dst[i], expected[i])
		}
	}
}

func TestSource_ReadSamples_24Bit(t *testing.T) {
	t.Parallel()

	samples := []int{1 << 22, -(1 << 22), 0, -(1 << 23)}
	wavData := createWAVFile(48000, 2, 24, formatPCM, samples)

	src, err := Decoder{}.Decode(bytes.NewReader(wavData))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF on short read", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4", n)
	}

	expected := []float32{0.5, -0.5, 0, -1}
	for i := range expected {
		if math.Abs(float64(dst[i]-expected[i])) > 1e-6 {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], expected[i])
		}
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	wavData := createWAVFile(8000, 1, 16, formatPCM, []int{1, 2, 3})
	src, err := Decoder{}.Decode(bytes.NewReader(wavData))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_ReadSamples_UntilEOF(t *testing.T) {
	t.Parallel()

	wavData := createWAVFile(8000, 1, 16, formatPCM, []int{100, 200, 300, 400, 500})
	src, err := Decoder{}.Decode(bytes.NewReader(wavData))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	dst := make([]float32, 2)
	total := 0
	for range 10 {
		n, err := src.ReadSamples(dst)
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if total != 5 {
		t.Errorf("total samples = %d, want 5", total)
	}
}

type stubPCMReader struct {
	err error
}

func (s stubPCMReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	return 0, s.err
}

func TestSource_ReadSamples_Truncated(t *testing.T) {
	t.Parallel()

	src := &source{dec: stubPCMReader{err: io.ErrUnexpectedEOF}, sampleRate: 8000, channels: 1, bitDepth: 16}

	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, ErrTruncatedData) {
		t.Errorf("ReadSamples() error = %v, want ErrTruncatedData", err)
	}
}

func TestDecoder_VariousSampleRates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sampleRate int
		channels   int
	}{
		{"8kHz mono", 8000, 1},
		{"16kHz mono", 16000, 1},
		{"44.1kHz stereo", 44100, 2},
		{"48kHz stereo", 48000, 2},
		{"96kHz stereo", 96000, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			samples := make([]int, 100*tt.channels)
			wavData := createWAVFile(tt.sampleRate, tt.channels, 16, formatPCM, samples)

			src, err := Decoder{}.Decode(bytes.NewReader(wavData))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}

			if src.SampleRate() != tt.sampleRate {
				t.Errorf("SampleRate() = %d, want %d", src.SampleRate(), tt.sampleRate)
			}
			if src.Channels() != tt.channels {
				t.Errorf("Channels() = %d, want %d", src.Channels(), tt.channels)
			}
		})
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int, 44100)
	for i := range samples {
		samples[i] = int(10000 * math.Sin(2*math.Pi*440*float64(i)/44100))
	}
	wavData := createWAVFile(44100, 1, 16, formatPCM, samples)
	buf := make([]float32, 4096)

	b.ReportAllocs()

	for b.Loop() {
		src, _ := Decoder{}.Decode(bytes.NewReader(wavData))
		for {
			_, err := src.ReadSamples(buf)
			if err != nil {
				break
			}
		}
	}
}
