// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"
)

// mockMP3Reader simulates gomp3.Decoder. chunk limits the bytes returned
// per Read so tests can split samples across calls.
type mockMP3Reader struct {
	sampleRate int
	data       []byte
	offset     int
	chunk      int
	err        error
}

func newMockMP3Reader(sampleRate int, samples []int16) *mockMP3Reader {
	data := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(s))
	}
	return &mockMP3Reader{sampleRate: sampleRate, data: data}
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.data) {
		return 0, io.EOF
	}

	n := len(buf)
	if m.chunk > 0 && n > m.chunk {
		n = m.chunk
	}
	n = copy(buf[:n], m.data[m.offset:])
	m.offset += n

	if m.offset >= len(m.data) {
		return n, io.EOF
	}
	return n, nil
}

func newTestSource(dec mp3Reader) *source {
	return &source{dec: dec, sampleRate: dec.SampleRate(), channels: outputChannels, buf: make([]byte, 64)}
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"text", []byte("This is not MP3 data")},
		{"empty", []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrNotMP3File) {
				t.Errorf("Decode() error = %v, want ErrNotMP3File", err)
			}
		})
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newTestSource(newMockMP3Reader(44100, make([]int16, 100)))

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.BufSize() != 32 {
		t.Errorf("BufSize() = %d, want 32", src.BufSize())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	testSamples := []int16{0, 16384, 32767, -16384, -32768, 8192, -8192, 0}
	src := newTestSource(newMockMP3Reader(8000, testSamples))

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 8 {
		t.Fatalf("ReadSamples() n = %d, want 8", n)
	}

	for i, s := range testSamples {
		want := float32(s) / 32768
		if math.Abs(float64(dst[i]-want)) > 1e-6 {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want)
		}
	}
}

func TestSource_ReadSamples_OddByteReads(t *testing.T) {
	t.Parallel()

	testSamples := []int16{1000, -1000, 2000, -2000, 3000, -3000}
	reader := newMockMP3Reader(8000, testSamples)
	reader.chunk = 3 // every read ends half way through a sample
	src := newTestSource(reader)

	var got []float32
	dst := make([]float32, 4)
	for range 20 {
		n, err := src.ReadSamples(dst)
		got = append(got, dst[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if len(got) != len(testSamples) {
		t.Fatalf("read %d samples, want %d", len(got), len(testSamples))
	}
	for i, s := range testSamples {
		if want := float32(s) / 32768; got[i] != want {
			t.Errorf("sample %d = %v, want %v", i, got[i], want)
		}
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := newTestSource(newMockMP3Reader(8000, []int16{1, 2}))

	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_ReadSamples_EOF(t *testing.T) {
	t.Parallel()

	src := newTestSource(newMockMP3Reader(8000, []int16{100, 200}))
	dst := make([]float32, 10)

	n, err := src.ReadSamples(dst)
	if n != 2 || err != io.EOF {
		t.Errorf("ReadSamples() = (%d, %v), want (2, EOF)", n, err)
	}

	n, err = src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after end = (%d, %v), want (0, EOF)", n, err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	reader := newMockMP3Reader(8000, nil)
	reader.err = io.ErrUnexpectedEOF
	src := newTestSource(reader)

	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSource_BufferResize(t *testing.T) {
	t.Parallel()

	src := newTestSource(newMockMP3Reader(8000, make([]int16, 1000)))

	dst := make([]float32, 500)
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 500 {
		t.Errorf("ReadSamples() n = %d, want 500", n)
	}
	if cap(src.buf) < 1000 {
		t.Errorf("buffer capacity = %d, want >= 1000", cap(src.buf))
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int16, 44100*2)
	for i := range samples {
		samples[i] = int16(10000 * math.Sin(2*math.Pi*440*float64(i/2)/44100))
	}
	buf := make([]float32, 4096)

	b.ReportAllocs()

	for b.Loop() {
		src := newTestSource(newMockMP3Reader(44100, samples))
		for {
			if _, err := src.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
