// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ivts

import "math/rand/v2"

// A Distribution is a Dist built from three functions over a domain.
//
// The functions only need to be correct on the domain (and on [0, 1]
// for the inverse CDF). Distribution takes care of values outside it.
//
// A Distribution is immutable and safe for concurrent use.
type Distribution struct {
	pdf, cdf, invcdf func(float64) float64
	domain           Domain
}

// NewDistribution returns a Distribution with the given density,
// cumulative and inverse cumulative functions over a two-value domain.
// It does no computation of its own, so callers are responsible for
// normalizing the functions.
func NewDistribution(pdf, cdf, invcdf func(float64) float64, domain Domain) (*Distribution, error) {
	if len(domain) != 2 {
		return nil, domainErrorf("domain must be length-2, got %d values", len(domain))
	}
	if err := domain.Validate(); err != nil {
		return nil, err
	}
	return &Distribution{pdf, cdf, invcdf, domain.clone()}, nil
}

func (d *Distribution) PDF(x float64) float64 {
	if x < d.domain.Lower() || x > d.domain.Upper() {
		return 0
	}
	return d.pdf(x)
}

func (d *Distribution) PDFEach(xs []float64) []float64 {
	return each(d.PDF, xs)
}

func (d *Distribution) CDF(x float64) float64 {
	if x <= d.domain.Lower() {
		return 0
	} else if x >= d.domain.Upper() {
		return 1
	}
	return d.cdf(x)
}

func (d *Distribution) CDFEach(xs []float64) []float64 {
	return each(d.CDF, xs)
}

func (d *Distribution) InvCDF(u float64) float64 {
	if u < 0 || u > 1 {
		return nan
	}
	return d.invcdf(u)
}

func (d *Distribution) InvCDFEach(us []float64) []float64 {
	return each(d.InvCDF, us)
}

// Domain returns a copy of the support of d.
func (d *Distribution) Domain() Domain {
	return d.domain.clone()
}

func (d *Distribution) Bounds() (float64, float64) {
	return d.domain.Lower(), d.domain.Upper()
}

// Rand returns one value drawn from d using src. If src is nil, the
// global random source is used.
func (d *Distribution) Rand(src rand.Source) float64 {
	return Sampler{Dist: d, Src: src}.Rand()
}

// Sample draws values from d with the given shape using src. An empty
// shape draws a single value. If src is nil, the global random source
// is used.
func (d *Distribution) Sample(src rand.Source, shape ...int) Samples {
	return Sampler{Dist: d, Src: src}.SampleShape(shape...)
}
