// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ivts

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
)

// BrokenBoundedPowerlaw is a series of contiguous power laws. Segment
// i has density proportional to x^Slopes[i] over [domain[i],
// domain[i+1]). The segments are rescaled so that the density is
// continuous (though not, in general, differentiable) at every
// breakpoint.
type BrokenBoundedPowerlaw struct {
	Distribution

	slopes  []float64
	relnorm []float64
	segs    []powerSegment

	// cum[i] is the unnormalized mass below domain[i].
	cum  []float64
	norm float64
}

// NewBrokenBoundedPowerlaw returns the broken power law with one slope
// per interval of domain. The first and last values of domain are the
// limits, which must satisfy 0 < min < max < inf, and the interior
// values are the breakpoints.
func NewBrokenBoundedPowerlaw(plslopes []float64, domain Domain) (*BrokenBoundedPowerlaw, error) {
	if len(plslopes) != len(domain)-1 {
		return nil, domainErrorf("need one fewer power law slope than domain marker, got %d slopes for %d domain values", len(plslopes), len(domain))
	}
	if len(plslopes) < 2 {
		return nil, errors.WithHint(
			domainErrorf("broken power law needs at least 2 segments, got %d", len(plslopes)),
			"use NewBoundedPowerlaw for a single segment")
	}
	if err := domain.validatePositiveFinite(); err != nil {
		return nil, err
	}
	for i, s := range plslopes {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, domainErrorf("power-law slope %d must be finite, got %v", i, s)
		}
	}

	n := len(plslopes)
	d := &BrokenBoundedPowerlaw{
		slopes: append([]float64(nil), plslopes...),
		segs:   make([]powerSegment, n),
	}
	for i, s := range plslopes {
		d.segs[i] = powerSegment{lo: domain[i], hi: domain[i+1], slope: s}
	}

	// Match each segment to its left neighbor at their shared
	// breakpoint, taking the first segment as the reference scale.
	ratios := make([]float64, n)
	ratios[0] = 1
	for i := 1; i < n; i++ {
		bp := domain[i]
		ratios[i] = math.Pow(bp, plslopes[i-1]) / math.Pow(bp, plslopes[i])
	}
	d.relnorm = floats.CumProd(make([]float64, n), ratios)

	for i, r := range d.relnorm {
		if !(r > 0) || math.IsInf(r, 0) {
			return nil, nonConvergentErrorf("segment %d of broken power law with slopes %v has scale %v", i, plslopes, r)
		}
	}

	d.cum = make([]float64, n+1)
	for i, seg := range d.segs {
		d.cum[i+1] = d.cum[i] + d.relnorm[i]*seg.integral(seg.hi)
	}
	mass := d.cum[n]
	if !(mass > 0) || math.IsInf(mass, 0) {
		return nil, nonConvergentErrorf("broken power law with slopes %v has total mass %v over %v", plslopes, mass, []float64(domain))
	}
	d.norm = 1 / mass

	d.Distribution = Distribution{d.pdf, d.cdf, d.invCDF, domain.clone()}
	return d, nil
}

// Slopes returns the power-law slope of each segment.
func (d *BrokenBoundedPowerlaw) Slopes() []float64 {
	return append([]float64(nil), d.slopes...)
}

// RelNorm returns the scale of each segment relative to the first
// that makes the density continuous at the breakpoints.
func (d *BrokenBoundedPowerlaw) RelNorm() []float64 {
	return append([]float64(nil), d.relnorm...)
}

// Norm returns the normalization constant that makes the density
// integrate to 1 over the domain.
func (d *BrokenBoundedPowerlaw) Norm() float64 { return d.norm }

func (d *BrokenBoundedPowerlaw) String() string {
	return fmt.Sprintf("BrokenBoundedPowerlaw(slopes=%v, domain=%v)", d.slopes, []float64(d.domain))
}

func (d *BrokenBoundedPowerlaw) pdf(x float64) float64 {
	i := d.domain.segment(x)
	return d.norm * d.relnorm[i] * d.segs[i].at(x)
}

func (d *BrokenBoundedPowerlaw) cdf(x float64) float64 {
	i := d.domain.segment(x)
	return d.norm * (d.cum[i] + d.relnorm[i]*d.segs[i].integral(x))
}

func (d *BrokenBoundedPowerlaw) invCDF(u float64) float64 {
	w := u * d.cum[len(d.segs)]
	i := clampedWithin(d.cum, w)
	return d.segs[i].invIntegral((w - d.cum[i]) / d.relnorm[i])
}
