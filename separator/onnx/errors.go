// SPDX-License-Identifier: EPL-2.0

package onnx

import "errors"

var (
	// ErrNoModelPath indicates the configuration names no model file.
	ErrNoModelPath = errors.New("no model path configured")

	// ErrOutputShape indicates the model produced a tensor of unexpected size.
	ErrOutputShape = errors.New("unexpected model output shape")

	// ErrClosed indicates use of a separator after Close.
	ErrClosed = errors.New("separator is closed")
)
