// SPDX-License-Identifier: EPL-2.0

package filter

// LFilter runs x through the filter c, causally, starting from rest, and
// returns a new slice. It uses the transposed direct form II and divides
// every coefficient by A[0]. A zero A[0] yields a copy of x unfiltered;
// Butter never produces one.
func LFilter(c Coefficients, x []float64) []float64 {
	y := make([]float64, len(x))
	if len(c.A) == 0 || c.A[0] == 0 || len(c.B) == 0 {
		copy(y, x)
		return y
	}

	n := max(len(c.A), len(c.B))
	a := make([]float64, n)
	b := make([]float64, n)
	for i, v := range c.A {
		a[i] = v / c.A[0]
	}
	for i, v := range c.B {
		b[i] = v / c.A[0]
	}

	// z[i] is the delay state feeding output i+1 steps ahead
	z := make([]float64, n)
	for k, xk := range x {
		yk := b[0]*xk + z[0]
		for i := 1; i < n; i++ {
			z[i-1] = b[i]*xk - a[i]*yk + z[i]
		}
		y[k] = yk
	}

	return y
}
