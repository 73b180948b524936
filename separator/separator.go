// SPDX-License-Identifier: EPL-2.0

package separator

import (
	"context"
	"fmt"

	"github.com/ik5/audclean/audio"
)

// Separator splits a stereo mixture into named sources.
//
// Implementations must be deterministic and must return sources shaped
// exactly like the mixture. A Separator holds model resources until Close.
type Separator interface {
	Separate(ctx context.Context, mix *audio.Waveform) (*Sources, error)
	Close() error
}

// Func adapts a plain function to the Separator interface. Close is a no-op.
type Func func(ctx context.Context, mix *audio.Waveform) (*Sources, error)

func (f Func) Separate(ctx context.Context, mix *audio.Waveform) (*Sources, error) {
	return f(ctx, mix)
}

func (Func) Close() error { return nil }

// CheckStereo validates a mixture before separation.
func CheckStereo(mix *audio.Waveform) error {
	if err := mix.Validate(); err != nil {
		return fmt.Errorf("invalid mixture: %w", err)
	}
	if mix.Channels() != 2 {
		return fmt.Errorf("%w: got %d channels", ErrNotStereo, mix.Channels())
	}
	return nil
}
