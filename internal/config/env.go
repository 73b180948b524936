// SPDX-License-Identifier: EPL-2.0

package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ApplyEnv overlays the recognised environment variables. Malformed
// numbers are collected and reported together.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	var merr *multierror.Error

	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	list := func(key string, dst *[]string) {
		if v, ok := lookup(key); ok {
			*dst = splitList(v)
		}
	}
	float := func(key string, dst *float64) {
		v, ok := lookup(key)
		if !ok {
			return
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, v))
			return
		}
		*dst = f
	}
	integer := func(key string, dst *int) {
		v, ok := lookup(key)
		if !ok {
			return
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, v))
			return
		}
		*dst = n
	}

	str("DEVICE", &c.Device)
	float("LOW_CUTOFF", &c.LowCutoff)
	float("HIGH_CUTOFF", &c.HighCutoff)
	str("MODEL_PATH", &c.ModelPath)
	str("ORT_LIBRARY", &c.ORTLibrary)
	list("SOURCES", &c.Sources)
	list("VOCALS_SOURCES", &c.VocalsSources)
	list("BACKGROUND_SOURCES", &c.BackgroundSources)
	str("STRATEGY", &c.Strategy)
	integer("BIT_DEPTH", &c.BitDepth)
	float("SEGMENT_SECONDS", &c.SegmentSeconds)
	float("OVERLAP", &c.Overlap)
	integer("INTRA_OP_THREADS", &c.IntraOpThreads)
	str("LOG_LEVEL", &c.LogLevel)

	return merr.ErrorOrNil()
}

// splitList splits a comma separated value, dropping empty items.
func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
