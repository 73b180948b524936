// SPDX-License-Identifier: EPL-2.0

// Package config resolves the command line tool's settings from built-in
// defaults, an optional YAML file, the environment and flags, each layer
// overriding the one before.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/ik5/audclean"
	"github.com/ik5/audclean/separator"
	"github.com/ik5/audclean/separator/onnx"
)

// Config holds every tunable of a cleaning run.
type Config struct {
	Device     string  `yaml:"device"`
	LowCutoff  float64 `yaml:"low_cutoff"`
	HighCutoff float64 `yaml:"high_cutoff"`

	ModelPath         string   `yaml:"model_path"`
	ORTLibrary        string   `yaml:"ort_library"`
	Sources           []string `yaml:"sources"`
	VocalsSources     []string `yaml:"vocals_sources"`
	BackgroundSources []string `yaml:"background_sources"`
	SegmentSeconds    float64  `yaml:"segment_seconds"`
	Overlap           float64  `yaml:"overlap"`
	IntraOpThreads    int      `yaml:"intra_op_threads"`

	Strategy string `yaml:"strategy"`
	BitDepth int    `yaml:"bit_depth"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Device:     "cpu",
		LowCutoff:  100,
		HighCutoff: 3000,
		Overlap:    separator.DefaultOverlap,
		Strategy:   string(audclean.StrategySubtract),
		BitDepth:   16,
		LogLevel:   "info",
	}
}

// LookupFunc reads one environment variable.
type LookupFunc func(key string) (string, bool)

// Load resolves the configuration for args (without the program name) and
// returns it with the remaining positional arguments. pflag.ErrHelp is
// returned unchanged when help was requested.
func Load(args []string, lookup LookupFunc) (Config, []string, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	// first pass only finds --config
	var path string
	scratch := Default()
	if err := scratch.FlagSet(&path).Parse(args); err != nil {
		return Config{}, nil, err
	}

	cfg := Default()
	if path != "" {
		if err := cfg.LoadYAML(path); err != nil {
			return Config{}, nil, err
		}
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return Config{}, nil, err
	}

	fs := cfg.FlagSet(&path)
	if err := fs.Parse(args); err != nil {
		return Config{}, nil, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, nil, err
	}

	return cfg, fs.Args(), nil
}

// FlagSet binds flags to c's fields, using their current values as
// defaults. configPath receives --config.
func (c *Config) FlagSet(configPath *string) *pflag.FlagSet {
	fs := pflag.NewFlagSet("audclean", pflag.ContinueOnError)
	fs.SortFlags = false

	fs.StringVar(configPath, "config", *configPath, "YAML configuration file")
	fs.StringVar(&c.Device, "device", c.Device, "inference device: cpu, cuda[:N], coreml, directml[:N]")
	fs.Float64Var(&c.LowCutoff, "low-cutoff", c.LowCutoff, "high-pass cutoff in Hz")
	fs.Float64Var(&c.HighCutoff, "high-cutoff", c.HighCutoff, "low-pass cutoff in Hz")
	fs.StringVar(&c.ModelPath, "model", c.ModelPath, "separation model (.onnx)")
	fs.StringVar(&c.ORTLibrary, "ort-lib", c.ORTLibrary, "onnxruntime shared library")
	fs.StringSliceVar(&c.Sources, "sources", c.Sources, "source names in model output order")
	fs.StringSliceVar(&c.VocalsSources, "vocals", c.VocalsSources, "sources summed into the vocal estimate")
	fs.StringSliceVar(&c.BackgroundSources, "background", c.BackgroundSources, "sources summed into the background estimate")
	fs.StringVar(&c.Strategy, "strategy", c.Strategy, "recombination: subtract or vocals")
	fs.IntVar(&c.BitDepth, "bit-depth", c.BitDepth, "output PCM bit depth: 16, 24 or 32")
	fs.Float64Var(&c.SegmentSeconds, "segment", c.SegmentSeconds, "seconds per model pass, 0 for whole file")
	fs.Float64Var(&c.Overlap, "overlap", c.Overlap, "overlap between segments, in [0, 1)")
	fs.IntVar(&c.IntraOpThreads, "threads", c.IntraOpThreads, "onnxruntime intra-op threads, 0 for default")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")

	return fs
}

// LoadYAML overlays the settings found in the file at path. Unknown keys
// are an error.
func (c *Config) LoadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var merr *multierror.Error

	if _, err := separator.ParseDevice(c.Device); err != nil {
		merr = multierror.Append(merr, err)
	}
	if !(c.LowCutoff > 0) || math.IsInf(c.LowCutoff, 0) {
		merr = multierror.Append(merr, fmt.Errorf("%w: low cutoff %v", ErrInvalidValue, c.LowCutoff))
	}
	if !(c.HighCutoff > c.LowCutoff) || math.IsInf(c.HighCutoff, 0) {
		merr = multierror.Append(merr, fmt.Errorf("%w: high cutoff %v must exceed low cutoff %v", ErrInvalidValue, c.HighCutoff, c.LowCutoff))
	}
	if _, err := audclean.ParseStrategy(c.Strategy); err != nil {
		merr = multierror.Append(merr, err)
	}
	switch c.BitDepth {
	case 16, 24, 32:
	default:
		merr = multierror.Append(merr, fmt.Errorf("%w: bit depth %d", ErrInvalidValue, c.BitDepth))
	}
	if c.SegmentSeconds < 0 {
		merr = multierror.Append(merr, fmt.Errorf("%w: segment %v", ErrInvalidValue, c.SegmentSeconds))
	}
	if c.Overlap < 0 || c.Overlap >= 1 {
		merr = multierror.Append(merr, fmt.Errorf("%w: overlap %v", ErrInvalidValue, c.Overlap))
	}
	if c.IntraOpThreads < 0 {
		merr = multierror.Append(merr, fmt.Errorf("%w: threads %d", ErrInvalidValue, c.IntraOpThreads))
	}
	if err := c.Roles().Validate(c.sourceNames()); err != nil {
		merr = multierror.Append(merr, err)
	}

	return merr.ErrorOrNil()
}

func (c Config) sourceNames() []string {
	if len(c.Sources) > 0 {
		return c.Sources
	}
	return separator.DefaultNames(2)
}

// Roles returns the role mapping, or nil when neither role is configured.
// A role left unset keeps its positional default.
func (c Config) Roles() separator.Roles {
	if len(c.VocalsSources) == 0 && len(c.BackgroundSources) == 0 {
		return nil
	}

	r := separator.DefaultRoles(c.sourceNames())
	if len(c.VocalsSources) > 0 {
		r[separator.RoleVocals] = c.VocalsSources
	}
	if len(c.BackgroundSources) > 0 {
		r[separator.RoleBackground] = c.BackgroundSources
	}
	return r
}

// Model returns the ONNX settings. The device is set by the processor.
func (c Config) Model() onnx.Config {
	return onnx.Config{
		ModelPath:      c.ModelPath,
		LibraryPath:    c.ORTLibrary,
		Names:          c.Sources,
		SegmentSeconds: c.SegmentSeconds,
		Overlap:        c.Overlap,
		IntraOpThreads: c.IntraOpThreads,
	}
}
