// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ivts

import (
	"math"
	"sort"
)

// PDFPoints returns n+1 [x, PDF(x)] pairs at equidistant x across the
// domain of d, including both limits.
func PDFPoints(d Dist, n int) [][2]float64 {
	return points(d, d.PDF, n)
}

// CDFPoints returns n+1 [x, CDF(x)] pairs at equidistant x across the
// domain of d, including both limits.
func CDFPoints(d Dist, n int) [][2]float64 {
	return points(d, d.CDF, n)
}

func points(d Dist, f func(float64) float64, n int) [][2]float64 {
	if n < 1 {
		n = 1
	}
	lo, hi := d.Bounds()
	fn := make([][2]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		x := lo + (hi-lo)*float64(i)/float64(n)
		if i == n {
			x = hi
		}
		fn = append(fn, [2]float64{x, f(x)})
	}
	return fn
}

// ECDFPoints returns the steps of the empirical CDF of xs as
// [x, fraction of xs <= x] pairs in increasing x. Repeated values
// produce a single step.
func ECDFPoints(xs []float64) [][2]float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	n := float64(len(sorted))
	var fn [][2]float64
	for i, x := range sorted {
		if i+1 < len(sorted) && sorted[i+1] == x {
			continue
		}
		fn = append(fn, [2]float64{x, float64(i+1) / n})
	}
	return fn
}

// KSDistance returns the one-sample Kolmogorov-Smirnov statistic of
// xs against d: the largest absolute difference between the empirical
// CDF of xs and d.CDF. It returns NaN if xs is empty.
func KSDistance(d Dist, xs []float64) float64 {
	if len(xs) == 0 {
		return nan
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	n := float64(len(sorted))
	dist := 0.0
	for i, x := range sorted {
		cdf := d.CDF(x)
		dist = math.Max(dist, math.Max(float64(i+1)/n-cdf, cdf-float64(i)/n))
	}
	return dist
}
