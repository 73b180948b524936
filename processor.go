// SPDX-License-Identifier: EPL-2.0

package audclean

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ik5/audclean/audio"
	"github.com/ik5/audclean/filter"
	"github.com/ik5/audclean/formats/wav"
	"github.com/ik5/audclean/separator"
	"github.com/ik5/audclean/separator/onnx"
)

// Strategy selects how the separated sources become the cleaned signal.
type Strategy string

const (
	// StrategySubtract removes the background estimate from the original.
	StrategySubtract Strategy = "subtract"
	// StrategyVocals keeps the vocal estimate as is.
	StrategyVocals Strategy = "vocals"
)

// ErrUnknownStrategy indicates a strategy name that is not recognised.
var ErrUnknownStrategy = errors.New("unknown recombination strategy")

// ParseStrategy accepts "subtract" and "vocals". The empty string selects
// StrategySubtract.
func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(strings.ToLower(strings.TrimSpace(s))); st {
	case "", StrategySubtract:
		return StrategySubtract, nil
	case StrategyVocals:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Result is the outcome of one cleaning run.
type Result struct {
	// Original is the decoded input, widened to stereo when it was mono.
	Original *audio.Waveform
	Cleaned  *audio.Waveform
	// SampleRate of both waveforms and of the written file.
	SampleRate int
}

// Processor owns a loaded separation model and runs cleaning jobs with it.
// Create it once; loading the model is the expensive part.
type Processor struct {
	device   separator.Device
	sep      separator.Separator
	log      *zap.Logger
	strategy Strategy
	roles    separator.Roles
	bitDepth int
	model    onnx.Config
}

// Option configures a Processor.
type Option func(*Processor)

// WithSeparator uses s instead of loading an ONNX model. The processor
// takes ownership and closes s on Close.
func WithSeparator(s separator.Separator) Option {
	return func(p *Processor) { p.sep = s }
}

// WithLogger sets the progress logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.log = l
		}
	}
}

// WithStrategy sets the recombination strategy.
func WithStrategy(s Strategy) Option {
	return func(p *Processor) { p.strategy = s }
}

// WithRoles maps the vocal and background roles to source names. Without
// it the first source is vocals and the second is background.
func WithRoles(r separator.Roles) Option {
	return func(p *Processor) { p.roles = r }
}

// WithBitDepth sets the PCM bit depth of the written file (16, 24 or 32).
func WithBitDepth(bits int) Option {
	return func(p *Processor) { p.bitDepth = bits }
}

// WithModel configures the ONNX model loaded when no separator is given.
// The device argument of NewProcessor overrides cfg.Device.
func WithModel(cfg onnx.Config) Option {
	return func(p *Processor) { p.model = cfg }
}

// NewProcessor parses device and loads the separation model on it.
// Failures are *Error: KindModelLoad for the device or model, KindConfig
// for invalid options. A separator given with WithSeparator is closed when
// NewProcessor fails.
func NewProcessor(device string, opts ...Option) (*Processor, error) {
	p := &Processor{
		log:      zap.NewNop(),
		strategy: StrategySubtract,
		bitDepth: wav.DefaultBitDepth,
	}
	for _, opt := range opts {
		opt(p)
	}

	if err := p.setup(device); err != nil {
		if p.sep != nil {
			if cerr := p.sep.Close(); cerr != nil {
				p.log.Warn("closing separator", zap.Error(cerr))
			}
		}
		return nil, err
	}

	return p, nil
}

func (p *Processor) setup(device string) error {
	d, err := separator.ParseDevice(device)
	if err != nil {
		return newError(KindModelLoad, "", err)
	}
	p.device = d

	if _, err := ParseStrategy(string(p.strategy)); err != nil {
		return newError(KindConfig, "", err)
	}
	switch p.bitDepth {
	case 16, 24, 32:
	default:
		return newError(KindConfig, "", fmt.Errorf("%w: %d", wav.ErrUnsupportedBitDepth, p.bitDepth))
	}

	p.log.Info("using device", zap.Stringer("device", d))

	if p.sep == nil {
		cfg := p.model
		cfg.Device = d
		sep, err := onnx.New(cfg, p.log)
		if err != nil {
			return newError(KindModelLoad, cfg.ModelPath, err)
		}
		p.sep = sep
	}

	if named, ok := p.sep.(interface{ Names() []string }); ok && p.roles != nil {
		if err := p.roles.Validate(named.Names()); err != nil {
			return newError(KindConfig, "", err)
		}
	}

	return nil
}

// Device reports where inference runs.
func (p *Processor) Device() separator.Device { return p.device }

// Close releases the model.
func (p *Processor) Close() error {
	return p.sep.Close()
}

// Clean runs the whole pipeline on inputPath and writes the cleaned audio
// to outputPath as WAV:
//
//  1. decode, widening mono to stereo
//  2. separate into sources
//  3. recombine by the configured strategy
//  4. high-pass at lowCutoffHz, then low-pass at highCutoffHz
//  5. encode at the input's sample rate
//
// Cutoffs are checked against the sample rate before separation. When only
// the final write fails, the computed Result is returned together with a
// KindEncode error so the caller can retry with WriteWAV.
func (p *Processor) Clean(ctx context.Context, inputPath, outputPath string, lowCutoffHz, highCutoffHz float64) (*Result, error) {
	start := time.Now()
	log := p.log.With(zap.String("input", inputPath))

	log.Info("loading")
	src, err := OpenFile(inputPath)
	if err != nil {
		return nil, err
	}

	rate := src.SampleRate()
	if err := checkCutoffs(rate, lowCutoffHz, highCutoffHz); err != nil {
		src.Close()
		return nil, err
	}

	switch src.Channels() {
	case 1:
		log.Debug("duplicating mono input to stereo")
		src = audio.NewStereoExpander(src)
	case 2:
	default:
		n := src.Channels()
		src.Close()
		return nil, newError(KindDecode, inputPath, fmt.Errorf("%w: %d", ErrTooManyChannels, n))
	}

	original, err := readSource(inputPath, src)
	if err != nil {
		return nil, err
	}
	log.Info("loaded",
		zap.Int("sample_rate", rate),
		zap.Duration("duration", original.Duration()),
	)

	cleaned, err := p.cleanWaveform(ctx, log, original, lowCutoffHz, highCutoffHz)
	if err != nil {
		return nil, err
	}

	res := &Result{Original: original, Cleaned: cleaned, SampleRate: rate}

	if err := WriteWAV(outputPath, cleaned, p.bitDepth); err != nil {
		return res, err
	}

	log.Info("saved",
		zap.String("output", outputPath),
		zap.Int("bit_depth", p.bitDepth),
		zap.Duration("elapsed", time.Since(start)),
	)

	return res, nil
}

// CleanWaveform runs separation, recombination and filtering on an
// in-memory stereo waveform. The input is not modified.
func (p *Processor) CleanWaveform(ctx context.Context, w *audio.Waveform, lowCutoffHz, highCutoffHz float64) (*audio.Waveform, error) {
	if err := w.Validate(); err != nil {
		return nil, newError(KindInference, "", err)
	}
	if err := checkCutoffs(w.SampleRate, lowCutoffHz, highCutoffHz); err != nil {
		return nil, err
	}
	return p.cleanWaveform(ctx, p.log, w, lowCutoffHz, highCutoffHz)
}

func (p *Processor) cleanWaveform(ctx context.Context, log *zap.Logger, original *audio.Waveform, lowCutoffHz, highCutoffHz float64) (*audio.Waveform, error) {
	log.Info("separating", zap.Stringer("device", p.device))
	sources, err := p.sep.Separate(ctx, original)
	if err != nil {
		return nil, newError(KindInference, "", err)
	}

	roles := p.roles
	if roles == nil {
		roles = separator.DefaultRoles(sources.Names())
	}

	cleaned, err := recombine(p.strategy, roles, original, sources)
	if err != nil {
		return nil, newError(KindInference, "", err)
	}

	log.Info("filtering",
		zap.Float64("low_cutoff_hz", lowCutoffHz),
		zap.Float64("high_cutoff_hz", highCutoffHz),
	)
	cleaned, err = filter.HighPass(cleaned, lowCutoffHz)
	if err != nil {
		return nil, newError(KindFilterParameter, "", err)
	}
	cleaned, err = filter.LowPass(cleaned, highCutoffHz)
	if err != nil {
		return nil, newError(KindFilterParameter, "", err)
	}

	return cleaned, nil
}

func recombine(strategy Strategy, roles separator.Roles, original *audio.Waveform, sources *separator.Sources) (*audio.Waveform, error) {
	switch strategy {
	case StrategyVocals:
		return roles.Resolve(sources, separator.RoleVocals)
	default:
		background, err := roles.Resolve(sources, separator.RoleBackground)
		if err != nil {
			return nil, err
		}
		return original.Sub(background)
	}
}

func checkCutoffs(rate int, lowCutoffHz, highCutoffHz float64) error {
	if _, err := filter.NormalizeCutoff(lowCutoffHz, rate); err != nil {
		return newError(KindFilterParameter, "", fmt.Errorf("low cutoff: %w", err))
	}
	if _, err := filter.NormalizeCutoff(highCutoffHz, rate); err != nil {
		return newError(KindFilterParameter, "", fmt.Errorf("high cutoff: %w", err))
	}
	return nil
}
