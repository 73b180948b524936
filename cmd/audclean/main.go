// SPDX-License-Identifier: EPL-2.0

// Command audclean removes background sound from a recording and keeps the
// speech band.
//
//	audclean [flags] <input.{wav|mp3|ogg|aiff}> <output.wav>
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ik5/audclean"
	"github.com/ik5/audclean/analysis"
	"github.com/ik5/audclean/internal/config"
	"github.com/ik5/audclean/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, rest, err := config.Load(args, os.LookupEnv)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "audclean:", err)
		return 2
	}
	if len(rest) != 2 {
		fmt.Fprintln(os.Stderr, "usage: audclean [flags] <input.{wav|mp3|ogg|aiff}> <output.wav>")
		return 2
	}

	log, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "audclean:", err)
		return 2
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := clean(ctx, log, cfg, rest[0], rest[1]); err != nil {
		log.Error("cleaning failed", zap.Error(err))
		return 1
	}
	return 0
}

func clean(ctx context.Context, log *zap.Logger, cfg config.Config, in, out string) error {
	strategy, err := audclean.ParseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}

	proc, err := audclean.NewProcessor(cfg.Device,
		audclean.WithLogger(log),
		audclean.WithModel(cfg.Model()),
		audclean.WithRoles(cfg.Roles()),
		audclean.WithStrategy(strategy),
		audclean.WithBitDepth(cfg.BitDepth),
	)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := proc.Close(); cerr != nil {
			log.Warn("closing processor", zap.Error(cerr))
		}
	}()

	res, err := proc.Clean(ctx, in, out, cfg.LowCutoff, cfg.HighCutoff)
	if err != nil {
		return err
	}

	rep, err := analysis.Compare(res.Original, res.Cleaned, cfg.LowCutoff, cfg.HighCutoff)
	if err != nil {
		log.Warn("measuring result", zap.Error(err))
		return nil
	}

	log.Info("report",
		zap.Int("sample_rate", rep.SampleRate),
		zap.Int("channels", rep.Channels),
		zap.Duration("duration", rep.Duration),
		zap.Float64("original_rms", rep.Original.RMS),
		zap.Float64("cleaned_rms", rep.Cleaned.RMS),
		zap.Float64("original_band_share", rep.Original.BandShare),
		zap.Float64("cleaned_band_share", rep.Cleaned.BandShare),
		zap.Float64("original_peak_hz", rep.Original.PeakHz),
		zap.Float64("cleaned_peak_hz", rep.Cleaned.PeakHz),
		zap.Float64("gain_db", rep.GainDB),
	)
	return nil
}
