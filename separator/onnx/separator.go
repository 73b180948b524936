// SPDX-License-Identifier: EPL-2.0

package onnx

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ik5/audclean/separator"
)

// Separator runs an ONNX separation model over long inputs in overlapping
// segments. The session is created once by New and reused until Close.
type Separator struct {
	*separator.Chunked
	cfg Config
}

var _ separator.Separator = (*Separator)(nil)

// New loads the model at cfg.ModelPath on cfg.Device. Every failure wraps
// separator.ErrModelLoad.
func New(cfg Config, log *zap.Logger) (*Separator, error) {
	if log == nil {
		log = zap.NewNop()
	}
	cfg = cfg.withDefaults()

	if cfg.ModelPath == "" {
		return nil, fmt.Errorf("%w: %w", separator.ErrModelLoad, ErrNoModelPath)
	}
	if _, err := os.Stat(cfg.ModelPath); err != nil {
		return nil, fmt.Errorf("%w: %w", separator.ErrModelLoad, err)
	}

	if err := initEnvironment(cfg.LibraryPath); err != nil {
		return nil, fmt.Errorf("%w: %w", separator.ErrModelLoad, err)
	}

	r, err := newORTRunner(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", separator.ErrModelLoad, err)
	}

	s, err := newSeparator(cfg, r, systemMemory, log)
	if err != nil {
		r.destroy()
		return nil, err
	}

	log.Info("separation model loaded",
		zap.String("model", cfg.ModelPath),
		zap.Stringer("device", cfg.Device),
		zap.Strings("sources", cfg.Names),
		zap.Float64("segment_seconds", cfg.SegmentSeconds),
	)

	return s, nil
}

func newSeparator(cfg Config, r runner, memory availableMemory, log *zap.Logger) (*Separator, error) {
	if len(cfg.Names) != cfg.Sources {
		return nil, fmt.Errorf("%w: %d names for %d sources", separator.ErrModelLoad, len(cfg.Names), cfg.Sources)
	}

	m := &model{r: r, sources: cfg.Sources, memory: memory, log: log}
	chunked, err := separator.NewChunked(m, separator.ChunkConfig{
		SegmentSeconds: cfg.SegmentSeconds,
		Overlap:        cfg.Overlap,
		Names:          cfg.Names,
	})
	if err != nil {
		return nil, err
	}

	return &Separator{Chunked: chunked, cfg: cfg}, nil
}

// Names returns the source names in model output order.
func (s *Separator) Names() []string {
	return append([]string(nil), s.cfg.Names...)
}

// Device returns the device the session runs on.
func (s *Separator) Device() separator.Device {
	return s.cfg.Device
}
