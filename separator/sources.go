// SPDX-License-Identifier: EPL-2.0

package separator

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/ik5/audclean/audio"
)

// Default names for the first two sources of a model that declares none.
const (
	NameVocals     = "vocals"
	NameBackground = "background"
)

// Sources is the ordered, named output of a separation.
type Sources struct {
	names []string
	waves []*audio.Waveform
}

// DefaultNames returns the positional names used when a model declares
// none: vocals, background, source2, source3, ...
func DefaultNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		switch i {
		case 0:
			names[i] = NameVocals
		case 1:
			names[i] = NameBackground
		default:
			names[i] = "source" + strconv.Itoa(i)
		}
	}
	return names
}

// NewSources pairs names with waveforms and checks every waveform has the
// mixture's sample rate and shape. A nil names slice selects DefaultNames.
func NewSources(mix *audio.Waveform, names []string, waves []*audio.Waveform) (*Sources, error) {
	if len(waves) == 0 {
		return nil, ErrNoSources
	}
	if names == nil {
		names = DefaultNames(len(waves))
	}
	if len(names) != len(waves) {
		return nil, fmt.Errorf("%w: %d names for %d sources", ErrSourceShape, len(names), len(waves))
	}

	seen := make(map[string]struct{}, len(names))
	for i, w := range waves {
		if _, dup := seen[names[i]]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSource, names[i])
		}
		seen[names[i]] = struct{}{}

		if w == nil || w.SampleRate != mix.SampleRate || !w.SameShape(mix) {
			return nil, fmt.Errorf("%w: source %q", ErrSourceShape, names[i])
		}
	}

	return &Sources{names: slices.Clone(names), waves: slices.Clone(waves)}, nil
}

// Len returns the number of sources.
func (s *Sources) Len() int { return len(s.waves) }

// Names returns the source names in model order.
func (s *Sources) Names() []string { return slices.Clone(s.names) }

// At returns the i-th source in model order.
func (s *Sources) At(i int) *audio.Waveform { return s.waves[i] }

// Get returns the source with the given name.
func (s *Sources) Get(name string) (*audio.Waveform, bool) {
	i := slices.Index(s.names, name)
	if i < 0 {
		return nil, false
	}
	return s.waves[i], true
}
