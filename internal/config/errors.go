// SPDX-License-Identifier: EPL-2.0

package config

import "errors"

// ErrInvalidValue indicates a setting outside its allowed range or format.
var ErrInvalidValue = errors.New("invalid configuration value")
