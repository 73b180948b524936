// SPDX-License-Identifier: EPL-2.0

package audclean

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"

	"github.com/ik5/audclean/audio"
	"github.com/ik5/audclean/formats/aiff"
	"github.com/ik5/audclean/formats/mp3"
	"github.com/ik5/audclean/formats/vorbis"
	"github.com/ik5/audclean/formats/wav"
)

// ErrUnknownFormat indicates neither the file extension nor its header
// identify a supported container.
var ErrUnknownFormat = errors.New("unknown audio format")

// ErrTooManyChannels indicates an input with more than two channels.
var ErrTooManyChannels = errors.New("more than two channels")

// Decoders returns a registry with every supported format, keyed by file
// extension.
func Decoders() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	return r
}

var defaultDecoders = Decoders()

// sniff names the container from the first bytes of a file.
func sniff(head []byte) (string, bool) {
	switch {
	case len(head) >= 12 && bytes.Equal(head[:4], []byte("RIFF")) && bytes.Equal(head[8:12], []byte("WAVE")):
		return "wav", true
	case len(head) >= 12 && bytes.Equal(head[:4], []byte("FORM")) &&
		(bytes.Equal(head[8:12], []byte("AIFF")) || bytes.Equal(head[8:12], []byte("AIFC"))):
		return "aiff", true
	case len(head) >= 4 && bytes.Equal(head[:4], []byte("OggS")):
		return "ogg", true
	case len(head) >= 3 && bytes.Equal(head[:3], []byte("ID3")):
		return "mp3", true
	case len(head) >= 2 && head[0] == 0xFF && head[1]&0xE0 == 0xE0:
		return "mp3", true
	}
	return "", false
}

// fileSource closes the underlying file along with the decoder.
type fileSource struct {
	audio.Source
	f *os.File
}

func (s *fileSource) Close() error {
	var merr *multierror.Error
	merr = multierror.Append(merr, s.Source.Close(), s.f.Close())
	return merr.ErrorOrNil()
}

// OpenFile opens path and returns a streaming source. The decoder is
// chosen by extension; unknown extensions fall back to the file header.
// Failures are *Error of KindDecode.
func OpenFile(path string) (audio.Source, error) {
	return openFile(defaultDecoders, path)
}

func openFile(reg *audio.Registry, path string) (audio.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newError(KindDecode, path, err)
	}

	src, err := decodeFile(reg, f)
	if err != nil {
		f.Close()
		return nil, newError(KindDecode, path, err)
	}

	return &fileSource{Source: src, f: f}, nil
}

func decodeFile(reg *audio.Registry, f *os.File) (audio.Source, error) {
	dec, ok := reg.Get(filepath.Ext(f.Name()))
	if !ok {
		head := make([]byte, 12)
		n, err := io.ReadFull(f, head)
		if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("reading header: %w", err)
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("rewinding: %w", err)
		}

		format, known := sniff(head[:n])
		if !known {
			return nil, ErrUnknownFormat
		}
		if dec, ok = reg.Get(format); !ok {
			return nil, fmt.Errorf("%w: no decoder for %s", ErrUnknownFormat, format)
		}
	}

	return dec.Decode(f)
}

// LoadFile decodes the whole file at its native sample rate and channel
// layout.
func LoadFile(path string) (*audio.Waveform, error) {
	src, err := OpenFile(path)
	if err != nil {
		return nil, err
	}

	return readSource(path, src)
}

// readSource drains and closes src.
func readSource(path string, src audio.Source) (w *audio.Waveform, err error) {
	defer func() {
		if cerr := src.Close(); cerr != nil && err == nil {
			err = newError(KindDecode, path, fmt.Errorf("closing: %w", cerr))
		}
	}()

	w, err = audio.ReadAll(src)
	if err != nil {
		return nil, newError(KindDecode, path, err)
	}
	return w, nil
}
