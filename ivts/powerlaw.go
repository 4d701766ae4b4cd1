// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ivts

import (
	"fmt"
	"math"
)

// BoundedPowerlaw is the distribution with density proportional to
// x^Slope over a domain [a, b] with 0 < a < b < inf.
//
// Any slope is allowed, including -1, whose integral is logarithmic.
type BoundedPowerlaw struct {
	Distribution

	seg  powerSegment
	mass float64
	norm float64
}

// NewBoundedPowerlaw returns the power-law distribution with the given
// slope over domain, which must have exactly two values, a strictly
// positive lower limit and a finite upper limit.
func NewBoundedPowerlaw(plslope float64, domain Domain) (*BoundedPowerlaw, error) {
	if len(domain) != 2 {
		return nil, domainErrorf("domain must be length-2, got %d values", len(domain))
	}
	if err := domain.validatePositiveFinite(); err != nil {
		return nil, err
	}
	if math.IsNaN(plslope) || math.IsInf(plslope, 0) {
		return nil, domainErrorf("power-law slope must be finite, got %v", plslope)
	}

	seg := powerSegment{lo: domain[0], hi: domain[1], slope: plslope}
	mass := seg.integral(seg.hi)
	if !(mass > 0) || math.IsInf(mass, 0) {
		return nil, nonConvergentErrorf("power law x^%v has total mass %v over %v", plslope, mass, []float64(domain))
	}

	d := &BoundedPowerlaw{seg: seg, mass: mass, norm: 1 / mass}
	base, err := NewDistribution(d.pdf, d.cdf, d.invCDF, domain)
	if err != nil {
		return nil, err
	}
	d.Distribution = *base
	return d, nil
}

// Slope returns the power-law slope.
func (d *BoundedPowerlaw) Slope() float64 { return d.seg.slope }

// Slope1 returns Slope()+1, the exponent of the integrated density.
func (d *BoundedPowerlaw) Slope1() float64 { return d.seg.slope1() }

// Norm returns the normalization constant that makes the density
// integrate to 1 over the domain.
func (d *BoundedPowerlaw) Norm() float64 { return d.norm }

func (d *BoundedPowerlaw) String() string {
	return fmt.Sprintf("BoundedPowerlaw(slope=%v, domain=%v)", d.seg.slope, []float64(d.domain))
}

func (d *BoundedPowerlaw) pdf(x float64) float64 {
	return d.norm * d.seg.at(x)
}

func (d *BoundedPowerlaw) cdf(x float64) float64 {
	return d.norm * d.seg.integral(x)
}

func (d *BoundedPowerlaw) invCDF(u float64) float64 {
	return d.seg.invIntegral(u * d.mass)
}

// powerSegment is the function x^slope restricted to [lo, hi], with
// 0 < lo <= hi < inf.
type powerSegment struct {
	lo, hi, slope float64
}

func (s powerSegment) slope1() float64 {
	return s.slope + 1
}

func (s powerSegment) at(x float64) float64 {
	return math.Pow(x, s.slope)
}

// nearLog reports whether the segment is close enough to slope -1 that
// x^p1 and lo^p1 nearly cancel, so the integral and its inverse go
// through Expm1 and Log1p.
func (s powerSegment) nearLog() bool {
	return math.Abs(s.slope1()*math.Log(s.hi/s.lo)) < 1
}

// integral returns the integral of x^slope from s.lo to x.
func (s powerSegment) integral(x float64) float64 {
	p1 := s.slope1()
	switch {
	case p1 == 0:
		return math.Log(x / s.lo)
	case s.nearLog():
		return math.Pow(s.lo, p1) * math.Expm1(p1*math.Log(x/s.lo)) / p1
	}
	return (math.Pow(x, p1) - math.Pow(s.lo, p1)) / p1
}

// invIntegral returns the x in [s.lo, s.hi] such that integral(x) = w.
func (s powerSegment) invIntegral(w float64) float64 {
	if w <= 0 {
		return s.lo
	}
	var x float64
	switch p1 := s.slope1(); {
	case p1 == 0:
		x = s.lo * math.Exp(w)
	case s.nearLog():
		x = s.lo * math.Exp(math.Log1p(p1*w/math.Pow(s.lo, p1))/p1)
	default:
		x = math.Pow(math.Pow(s.lo, p1)+p1*w, 1/p1)
	}
	// Rounding near the upper limit can overshoot, or for p1 < 0
	// take the base below zero.
	if math.IsNaN(x) || x > s.hi {
		return s.hi
	}
	return math.Max(x, s.lo)
}
