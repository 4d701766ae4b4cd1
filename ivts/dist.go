// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ivts

// A Dist is a continuous distribution with an analytic inverse CDF
// over a bounded domain.
type Dist interface {
	// PDF returns the value of the probability density function
	// of this distribution at x. It is 0 outside the domain.
	PDF(x float64) float64

	// PDFEach returns PDF(xs[i]) for each i.
	PDFEach(xs []float64) []float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x. This is the integral
	// of the PDF from the lower limit of the domain to x.
	CDF(x float64) float64

	// CDFEach returns CDF(xs[i]) for each i.
	CDFEach(xs []float64) []float64

	// InvCDF returns the inverse of the CDF for u. That is,
	// CDF(InvCDF(u)) = u. If u is outside [0, 1], InvCDF
	// returns NaN.
	InvCDF(u float64) float64

	// InvCDFEach returns InvCDF(us[i]) for each i.
	InvCDFEach(us []float64) []float64

	// Domain returns the support of this distribution.
	Domain() Domain

	// Bounds returns the lower and upper limits of the domain.
	Bounds() (float64, float64)
}

// each is a generic implementation of the Dist *Each methods.
func each(f func(float64) float64, xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = f(x)
	}
	return res
}
