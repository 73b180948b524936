// SPDX-License-Identifier: EPL-2.0

package onnx

import (
	"fmt"
	"slices"
	"strconv"
	"sync"

	"github.com/hashicorp/go-multierror"
	ort "github.com/yalue/onnxruntime_go"

	"github.com/ik5/audclean/separator"
)

// the onnxruntime environment is process-wide
var envMu sync.Mutex

func initEnvironment(libraryPath string) error {
	envMu.Lock()
	defer envMu.Unlock()

	if ort.IsInitialized() {
		return nil
	}
	if libraryPath != "" {
		ort.SetSharedLibraryPath(libraryPath)
	}
	if err := ort.InitializeEnvironment(); err != nil {
		return fmt.Errorf("initializing onnxruntime: %w", err)
	}
	return nil
}

func sessionOptions(cfg Config) (opts *ort.SessionOptions, err error) {
	opts, err = ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("creating session options: %w", err)
	}
	defer func() {
		if err != nil {
			opts.Destroy()
			opts = nil
		}
	}()

	if cfg.IntraOpThreads > 0 {
		if err := opts.SetIntraOpNumThreads(cfg.IntraOpThreads); err != nil {
			return nil, fmt.Errorf("setting intra-op threads: %w", err)
		}
	}

	switch cfg.Device.Kind {
	case separator.DeviceCPU:
	case separator.DeviceCUDA:
		cuda, err := ort.NewCUDAProviderOptions()
		if err != nil {
			return nil, fmt.Errorf("creating CUDA options: %w", err)
		}
		defer cuda.Destroy()

		if err := cuda.Update(map[string]string{"device_id": strconv.Itoa(cfg.Device.ID)}); err != nil {
			return nil, fmt.Errorf("configuring CUDA device %d: %w", cfg.Device.ID, err)
		}
		if err := opts.AppendExecutionProviderCUDA(cuda); err != nil {
			return nil, fmt.Errorf("enabling CUDA: %w", err)
		}
	case separator.DeviceCoreML:
		if err := opts.AppendExecutionProviderCoreML(0); err != nil {
			return nil, fmt.Errorf("enabling CoreML: %w", err)
		}
	case separator.DeviceDirectML:
		if err := opts.AppendExecutionProviderDirectML(cfg.Device.ID); err != nil {
			return nil, fmt.Errorf("enabling DirectML device %d: %w", cfg.Device.ID, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", separator.ErrInvalidDevice, cfg.Device)
	}

	return opts, nil
}

// ortRunner feeds [1, channels, frames] and reads [1, sources, channels, frames].
type ortRunner struct {
	session *ort.DynamicAdvancedSession
	sources int
}

func newORTRunner(cfg Config) (*ortRunner, error) {
	opts, err := sessionOptions(cfg)
	if err != nil {
		return nil, err
	}
	defer opts.Destroy()

	session, err := ort.NewDynamicAdvancedSession(cfg.ModelPath,
		[]string{cfg.InputName}, []string{cfg.OutputName}, opts)
	if err != nil {
		return nil, fmt.Errorf("creating session for %s: %w", cfg.ModelPath, err)
	}

	return &ortRunner{session: session, sources: cfg.Sources}, nil
}

func (r *ortRunner) run(input []float32, frames int) (_ []float32, err error) {
	channels := int64(len(input) / frames)

	in, err := ort.NewTensor(ort.NewShape(1, channels, int64(frames)), input)
	if err != nil {
		return nil, fmt.Errorf("creating input tensor: %w", err)
	}
	out, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(r.sources), channels, int64(frames)))
	if err != nil {
		in.Destroy()
		return nil, fmt.Errorf("creating output tensor: %w", err)
	}
	defer func() {
		var merr *multierror.Error
		merr = multierror.Append(merr, err, in.Destroy(), out.Destroy())
		err = merr.ErrorOrNil()
	}()

	if err := r.session.Run([]ort.Value{in}, []ort.Value{out}); err != nil {
		return nil, err
	}

	return slices.Clone(out.GetData()), nil
}

func (r *ortRunner) destroy() error {
	return r.session.Destroy()
}
