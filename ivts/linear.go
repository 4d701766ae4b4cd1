// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ivts

import (
	"fmt"
	"math"
)

// Linear is the distribution with density proportional to
// Intercept + Slope*x over a finite domain [a, b].
type Linear struct {
	Distribution

	slope, intercept float64
	norm             float64
}

// NewLinear returns the linear distribution with the given slope and
// intercept over domain, which must have exactly two finite values.
// The density must not be negative anywhere in the domain.
func NewLinear(slope, intercept float64, domain Domain) (*Linear, error) {
	if len(domain) != 2 {
		return nil, domainErrorf("domain must be length-2, got %d values", len(domain))
	}
	if err := domain.Validate(); err != nil {
		return nil, err
	}
	a, b := domain[0], domain[1]
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return nil, domainErrorf("domain limits must be finite")
	}

	d := &Linear{slope: slope, intercept: intercept}
	// The density is linear, so checking the endpoints covers the
	// whole domain.
	if d.density(a) < 0 || d.density(b) < 0 {
		return nil, domainErrorf("probability densities must be positive across domain [%v, %v]", a, b)
	}

	mass := d.integral(a, b)
	if !(mass > 0) || math.IsInf(mass, 0) {
		return nil, nonConvergentErrorf("linear density has total mass %v over [%v, %v]", mass, a, b)
	}
	d.norm = 1 / mass

	base, err := NewDistribution(d.pdf, d.cdf, d.invCDF, domain)
	if err != nil {
		return nil, err
	}
	d.Distribution = *base
	return d, nil
}

// Slope returns the slope of the unnormalized density.
func (d *Linear) Slope() float64 { return d.slope }

// Intercept returns the intercept of the unnormalized density.
func (d *Linear) Intercept() float64 { return d.intercept }

// Norm returns the normalization constant that makes the density
// integrate to 1 over the domain.
func (d *Linear) Norm() float64 { return d.norm }

func (d *Linear) String() string {
	return fmt.Sprintf("Linear(slope=%v, intercept=%v, domain=%v)", d.slope, d.intercept, []float64(d.domain))
}

// density is the unnormalized density.
func (d *Linear) density(x float64) float64 {
	return d.intercept + d.slope*x
}

// integral returns the unnormalized mass between a and x.
func (d *Linear) integral(a, x float64) float64 {
	// (c*x + m*x²/2) - (c*a + m*a²/2), factored to avoid
	// cancellation when a and x are close.
	return (x - a) * (d.intercept + 0.5*d.slope*(x+a))
}

func (d *Linear) pdf(x float64) float64 {
	return d.norm * d.density(x)
}

func (d *Linear) cdf(x float64) float64 {
	return d.norm * d.integral(d.domain.Lower(), x)
}

func (d *Linear) invCDF(u float64) float64 {
	a, b := d.Bounds()
	// Solve Slope/2*t² + density(a)*t = w for t = x - a, where w is
	// the unnormalized mass below x. This is the non-negative root
	// of the quadratic formula, rationalized so that it stays finite
	// when Slope is 0 (where it reduces to the uniform inverse).
	w := u / d.norm
	pa := d.density(a)
	denom := pa + math.Sqrt(math.Max(0, pa*pa+2*d.slope*w))
	if denom == 0 {
		return a
	}
	return math.Min(a+2*w/denom, b)
}
