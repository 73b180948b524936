// SPDX-License-Identifier: EPL-2.0

package onnx

import "github.com/ik5/audclean/separator"

// Tensor names used by the common waveform-domain separation exports.
const (
	DefaultInputName  = "mix"
	DefaultOutputName = "sources"
)

// Config describes the model file and how to run it.
type Config struct {
	// ModelPath is the .onnx file to load.
	ModelPath string
	// LibraryPath is the onnxruntime shared library. Empty uses the
	// platform default lookup.
	LibraryPath string
	Device      separator.Device

	// Sources is the number of sources the model emits. Zero means
	// len(Names), or 2 when Names is empty as well.
	Sources int
	// Names are the source names in model output order.
	Names []string

	InputName  string
	OutputName string

	SegmentSeconds float64
	Overlap        float64
	IntraOpThreads int
}

func (c Config) withDefaults() Config {
	if c.InputName == "" {
		c.InputName = DefaultInputName
	}
	if c.OutputName == "" {
		c.OutputName = DefaultOutputName
	}
	if c.Sources == 0 {
		c.Sources = len(c.Names)
	}
	if c.Sources == 0 {
		c.Sources = 2
	}
	if c.Names == nil {
		c.Names = separator.DefaultNames(c.Sources)
	}
	if c.Device.Kind == "" {
		c.Device = separator.CPU
	}
	return c
}
