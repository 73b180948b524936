// SPDX-License-Identifier: EPL-2.0

package audclean

import "fmt"

// Kind classifies a failure of the cleaning pipeline.
type Kind int

const (
	KindDecode Kind = iota + 1
	KindModelLoad
	KindInference
	KindFilterParameter
	KindEncode
	// KindConfig is an invalid processor option.
	KindConfig
)

func (k Kind) String() string {
	switch k {
	case KindDecode:
		return "decode"
	case KindModelLoad:
		return "model load"
	case KindInference:
		return "inference"
	case KindFilterParameter:
		return "filter parameter"
	case KindEncode:
		return "encode"
	case KindConfig:
		return "config"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error implements error so a Kind can be used as an errors.Is target.
func (k Kind) Error() string { return k.String() + " error" }

// Sentinels for errors.Is. Any *Error of the same kind matches.
var (
	ErrDecode          error = KindDecode
	ErrModelLoad       error = KindModelLoad
	ErrInference       error = KindInference
	ErrFilterParameter error = KindFilterParameter
	ErrEncode          error = KindEncode
	ErrConfig          error = KindConfig
)

// Error is the typed failure returned by every exported operation.
type Error struct {
	Kind Kind
	// Path is the file involved, when there is one.
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Kind.String(), e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind.String(), e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches a Kind sentinel of the same kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

func newError(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}
