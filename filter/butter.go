// SPDX-License-Identifier: EPL-2.0

package filter

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Kind selects the pass band.
type Kind int

const (
	Lowpass Kind = iota
	Highpass
)

func (k Kind) String() string {
	switch k {
	case Lowpass:
		return "lowpass"
	case Highpass:
		return "highpass"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Coefficients of a rational transfer function B(z)/A(z).
type Coefficients struct {
	B []float64 // feedforward
	A []float64 // feedback
}

// NormalizeCutoff converts a cutoff in Hz to a fraction of the Nyquist
// frequency. The result must lie strictly inside (0, 1).
func NormalizeCutoff(cutoffHz float64, sampleRate int) (float64, error) {
	if sampleRate <= 0 {
		return 0, fmt.Errorf("%w: sample rate %d", ErrInvalidCutoff, sampleRate)
	}

	wn := cutoffHz / (0.5 * float64(sampleRate))
	if math.IsNaN(wn) || wn <= 0 || wn >= 1 {
		return 0, fmt.Errorf("%w: %v Hz at %d Hz sample rate", ErrInvalidCutoff, cutoffHz, sampleRate)
	}

	return wn, nil
}

// Butter designs a digital Butterworth filter of the given order. wn is the
// cutoff as a fraction of Nyquist, strictly between 0 and 1.
//
// The design follows the classic route: analog prototype poles on the unit
// circle, cutoff pre-warped to the analog domain, frequency transform to
// low-pass or high-pass, then the bilinear transform.
func Butter(order int, wn float64, kind Kind) (Coefficients, error) {
	if order < 1 {
		return Coefficients{}, fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}
	if math.IsNaN(wn) || wn <= 0 || wn >= 1 {
		return Coefficients{}, fmt.Errorf("%w: normalized %v", ErrInvalidCutoff, wn)
	}

	// analog prototype, unit cutoff, gain 1
	poles := make([]complex128, order)
	for i := range poles {
		m := float64(2*i - order + 1)
		poles[i] = -cmplx.Exp(complex(0, math.Pi*m/float64(2*order)))
	}

	// the bilinear transform below uses fs = 2
	const fs = 2.0
	warped := 2 * fs * math.Tan(math.Pi*wn/fs)

	var (
		zeros []complex128
		gain  float64
	)
	switch kind {
	case Lowpass:
		for i := range poles {
			poles[i] *= complex(warped, 0)
		}
		gain = math.Pow(warped, float64(order))
	case Highpass:
		prod := complex(1, 0)
		for _, p := range poles {
			prod *= -p
		}
		gain = real(1 / prod)

		zeros = make([]complex128, order)
		for i := range poles {
			poles[i] = complex(warped, 0) / poles[i]
		}
	default:
		return Coefficients{}, fmt.Errorf("%w: %v", ErrInvalidKind, kind)
	}

	zd, pd, kd := bilinear(zeros, poles, gain, fs)

	b := poly(zd)
	for i := range b {
		b[i] *= kd
	}

	return Coefficients{B: b, A: poly(pd)}, nil
}

// bilinear maps analog zeros, poles and gain to the z-plane. Zeros missing
// relative to the pole count are placed at z = -1.
func bilinear(zeros, poles []complex128, gain, fs float64) ([]complex128, []complex128, float64) {
	fs2 := complex(2*fs, 0)

	zd := make([]complex128, 0, len(poles))
	num := complex(1, 0)
	for _, z := range zeros {
		zd = append(zd, (fs2+z)/(fs2-z))
		num *= fs2 - z
	}
	for len(zd) < len(poles) {
		zd = append(zd, -1)
	}

	pd := make([]complex128, len(poles))
	den := complex(1, 0)
	for i, p := range poles {
		pd[i] = (fs2 + p) / (fs2 - p)
		den *= fs2 - p
	}

	return zd, pd, gain * real(num/den)
}

// poly expands the product of (x - r) over roots into real coefficients,
// highest power first. Roots come in conjugate pairs so the imaginary parts
// cancel.
func poly(roots []complex128) []float64 {
	c := make([]complex128, 1, len(roots)+1)
	c[0] = 1
	for _, r := range roots {
		c = append(c, 0)
		for i := len(c) - 1; i > 0; i-- {
			c[i] -= r * c[i-1]
		}
	}

	out := make([]float64, len(c))
	for i, v := range c {
		out[i] = real(v)
	}
	return out
}
