// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ivts

import (
	"math"
	"sort"
	"testing"

	"gonum.org/v1/gonum/integrate/quad"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// testFunc checks f against a table of expected values.
func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)
	for _, x := range xs {
		want, got := vals[x], f(x)
		if math.IsNaN(want) && math.IsNaN(got) {
			continue
		}
		if !aeq(want, got) {
			t.Errorf("%s(%v) = %v, want %v", name, x, got, want)
		}
	}
}

// testDist checks the properties every Dist must have: limits of the
// CDF, a non-negative PDF that integrates to 1, a monotone CDF, and an
// InvCDF that inverts the CDF.
func testDist(t *testing.T, name string, d Dist) {
	t.Helper()
	lo, hi := d.Bounds()

	if got := d.CDF(lo); !aeq(0, got) {
		t.Errorf("%s.CDF(%v) = %v, want 0", name, lo, got)
	}
	if got := d.CDF(hi); !aeq(1, got) {
		t.Errorf("%s.CDF(%v) = %v, want 1", name, hi, got)
	}
	if got := d.InvCDF(0); !aeq(lo, got) {
		t.Errorf("%s.InvCDF(0) = %v, want %v", name, got, lo)
	}
	if got := d.InvCDF(1); math.Abs(got-hi) > 1e-6*math.Max(1, math.Abs(hi)) {
		t.Errorf("%s.InvCDF(1) = %v, want %v", name, got, hi)
	}

	prev := 0.0
	for _, pt := range CDFPoints(d, 200) {
		x, cdf := pt[0], pt[1]
		if pdf := d.PDF(x); pdf < 0 || math.IsNaN(pdf) {
			t.Errorf("%s.PDF(%v) = %v, want >= 0", name, x, pdf)
		}
		if cdf < prev {
			t.Errorf("%s.CDF(%v) = %v, decreased from %v", name, x, cdf, prev)
		}
		prev = cdf
	}

	for i := 0; i <= 100; i++ {
		u := float64(i) / 100
		x := d.InvCDF(u)
		if x < lo || x > hi {
			t.Errorf("%s.InvCDF(%v) = %v, outside [%v, %v]", name, u, x, lo, hi)
		}
		if got := d.CDF(x); !aeq(u, got) {
			t.Errorf("%s.CDF(InvCDF(%v)) = %v", name, u, got)
		}
	}

	// Integrate the PDF piecewise so quadrature never straddles a
	// breakpoint.
	dom := d.Domain()
	total := 0.0
	for i := 0; i < dom.Segments(); i++ {
		total += quad.Fixed(d.PDF, dom[i], dom[i+1], 64, nil, 0)
	}
	if !aeq(1, total) {
		t.Errorf("%s PDF integrates to %v, want 1", name, total)
	}

	xs := []float64{lo, (lo + hi) / 2, hi}
	for i, y := range d.PDFEach(xs) {
		if y != d.PDF(xs[i]) {
			t.Errorf("%s.PDFEach(%v)[%d] = %v, want %v", name, xs, i, y, d.PDF(xs[i]))
		}
	}
	for i, y := range d.CDFEach(xs) {
		if y != d.CDF(xs[i]) {
			t.Errorf("%s.CDFEach(%v)[%d] = %v, want %v", name, xs, i, y, d.CDF(xs[i]))
		}
	}
	us := []float64{0, 0.5, 1}
	for i, x := range d.InvCDFEach(us) {
		if x != d.InvCDF(us[i]) {
			t.Errorf("%s.InvCDFEach(%v)[%d] = %v, want %v", name, us, i, x, d.InvCDF(us[i]))
		}
	}
}
