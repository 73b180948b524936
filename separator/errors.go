// SPDX-License-Identifier: EPL-2.0

package separator

import "errors"

var (
	// ErrNotStereo indicates the mixture handed to a separator is not two channels.
	ErrNotStereo = errors.New("separator input must be stereo")

	// ErrModelLoad indicates the separation model could not be loaded.
	ErrModelLoad = errors.New("failed to load separation model")

	// ErrInsufficientMemory indicates inference would not fit in available memory.
	ErrInsufficientMemory = errors.New("insufficient memory for separation")

	// ErrNoSources indicates a separator produced no sources.
	ErrNoSources = errors.New("separator produced no sources")

	// ErrSourceShape indicates a source whose shape differs from the mixture.
	ErrSourceShape = errors.New("source shape does not match mixture")

	// ErrUnknownSource indicates a role refers to a source name the model does not produce.
	ErrUnknownSource = errors.New("unknown source name")

	// ErrDuplicateSource indicates two sources share a name.
	ErrDuplicateSource = errors.New("duplicate source name")

	// ErrUnknownRole indicates a role with no mapping.
	ErrUnknownRole = errors.New("role has no sources")

	// ErrInvalidDevice indicates a device string that cannot be parsed.
	ErrInvalidDevice = errors.New("invalid device")

	// ErrInvalidSegment indicates a negative segment length or an overlap outside [0, 1).
	ErrInvalidSegment = errors.New("invalid segment configuration")
)
