// SPDX-License-Identifier: EPL-2.0

// Package onnx runs a pretrained waveform-domain source separation network
// through ONNX Runtime (github.com/yalue/onnxruntime_go).
//
// The model must take one float32 tensor shaped [1, 2, T] (a stereo
// segment, channel-major) and return one float32 tensor shaped
// [1, S, 2, T], one stereo waveform per source. Tensor names default to
// "mix" and "sources" and are configurable, as are the source names.
//
// The onnxruntime shared library is loaded once per process. The session
// is created by [New] on the requested device (CPU, CUDA, CoreML or
// DirectML) and reused until Close. Calls into the session are serialized.
//
// Long inputs are split with [separator.Chunked]. Before each segment the
// separator compares a rough estimate of the memory the pass needs with the
// memory the system reports available and fails with
// separator.ErrInsufficientMemory instead of risking an out-of-memory kill.
package onnx
