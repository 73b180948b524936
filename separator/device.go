// SPDX-License-Identifier: EPL-2.0

package separator

import (
	"fmt"
	"strconv"
	"strings"
)

// DeviceKind names an inference backend.
type DeviceKind string

const (
	DeviceCPU      DeviceKind = "cpu"
	DeviceCUDA     DeviceKind = "cuda"
	DeviceCoreML   DeviceKind = "coreml"
	DeviceDirectML DeviceKind = "directml"
)

// Device selects where inference runs. ID is the accelerator index for
// CUDA and DirectML.
type Device struct {
	Kind DeviceKind
	ID   int
}

// CPU is the default device.
var CPU = Device{Kind: DeviceCPU}

func (d Device) String() string {
	switch d.Kind {
	case DeviceCUDA, DeviceDirectML:
		return string(d.Kind) + ":" + strconv.Itoa(d.ID)
	default:
		return string(d.Kind)
	}
}

// ParseDevice accepts "cpu", "cuda", "cuda:N", "coreml", "directml" and
// "directml:N". Matching is case-insensitive.
func ParseDevice(s string) (Device, error) {
	kind, idx, hasIdx := strings.Cut(strings.ToLower(strings.TrimSpace(s)), ":")

	d := Device{Kind: DeviceKind(kind)}
	switch d.Kind {
	case DeviceCPU, DeviceCoreML:
		if hasIdx {
			return Device{}, fmt.Errorf("%w: %q takes no index", ErrInvalidDevice, s)
		}
	case DeviceCUDA, DeviceDirectML:
		if hasIdx {
			id, err := strconv.Atoi(idx)
			if err != nil || id < 0 {
				return Device{}, fmt.Errorf("%w: bad index in %q", ErrInvalidDevice, s)
			}
			d.ID = id
		}
	default:
		return Device{}, fmt.Errorf("%w: %q", ErrInvalidDevice, s)
	}

	return d, nil
}
