// SPDX-License-Identifier: EPL-2.0

package audclean

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"

	"github.com/ik5/audclean/audio"
	"github.com/ik5/audclean/formats/wav"
)

// WriteWAV encodes w as integer PCM WAV at path. The file is written to a
// temporary name in the same directory and renamed into place, so path
// either holds the complete result or is left untouched. A bitDepth of 0
// selects wav.DefaultBitDepth. Failures are *Error of KindEncode.
func WriteWAV(path string, w *audio.Waveform, bitDepth int) error {
	if bitDepth == 0 {
		bitDepth = wav.DefaultBitDepth
	}
	if err := writeAtomic(path, w, bitDepth); err != nil {
		return newError(KindEncode, path, err)
	}
	return nil
}

func writeAtomic(path string, w *audio.Waveform, bitDepth int) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}

	defer func() {
		if err == nil {
			return
		}
		var merr *multierror.Error
		merr = multierror.Append(merr, err)
		if cerr := tmp.Close(); cerr != nil && !isClosed(cerr) {
			merr = multierror.Append(merr, cerr)
		}
		if rerr := os.Remove(tmp.Name()); rerr != nil && !os.IsNotExist(rerr) {
			merr = multierror.Append(merr, rerr)
		}
		err = merr.ErrorOrNil()
	}()

	if err := wav.Encode(tmp, w, bitDepth); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming into place: %w", err)
	}

	return nil
}

func isClosed(err error) bool {
	return errors.Is(err, os.ErrClosed)
}
