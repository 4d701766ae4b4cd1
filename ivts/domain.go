// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ivts

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// A Domain is the support of a distribution, given as an ordered
// sequence of breakpoints. The first and last values are the lower
// and upper limits. Any values in between separate the segments of a
// piecewise distribution.
type Domain []float64

// Lower returns the lower limit of d.
func (d Domain) Lower() float64 {
	return d[0]
}

// Upper returns the upper limit of d.
func (d Domain) Upper() float64 {
	return d[len(d)-1]
}

// Segments returns the number of intervals in d.
func (d Domain) Segments() int {
	if len(d) < 2 {
		return 0
	}
	return len(d) - 1
}

// Contains reports whether x is within [d.Lower(), d.Upper()].
func (d Domain) Contains(x float64) bool {
	return x >= d.Lower() && x <= d.Upper()
}

// Validate checks that d has at least two values, none of them NaN,
// that the values are non-decreasing, and that the lower limit is
// strictly below the upper limit.
func (d Domain) Validate() error {
	if len(d) < 2 {
		return domainErrorf("domain needs at least 2 values, got %d", len(d))
	}
	for i, x := range d {
		if math.IsNaN(x) {
			return domainErrorf("domain value %d is NaN", i)
		}
		if i > 0 && x < d[i-1] {
			return domainErrorf("domain values must be non-decreasing, got %v after %v", x, d[i-1])
		}
	}
	if !(d.Lower() < d.Upper()) {
		return domainErrorf("domain [%v, %v] is empty", d.Lower(), d.Upper())
	}
	return nil
}

// validatePositiveFinite checks the extra conditions that power-law
// families place on their domains.
func (d Domain) validatePositiveFinite() error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.Lower() <= 0 {
		return domainErrorf("domain lower limit must be positive")
	}
	if math.IsInf(d.Upper(), 0) {
		return domainErrorf("domain upper limit must be finite")
	}
	return nil
}

// segment returns the index i of the interval [d[i], d[i+1]) that
// contains x. Values at or above the upper limit map to the last
// interval and values below the lower limit map to the first.
func (d Domain) segment(x float64) int {
	return clampedWithin(d, x)
}

// clampedWithin is floats.Within over the non-decreasing s, mapping
// values below s[0] to 0 and values at or above s[len(s)-1] to the
// last interval.
func clampedWithin(s []float64, v float64) int {
	i := floats.Within(s, v)
	if i < 0 {
		if v < s[0] {
			return 0
		}
		return len(s) - 2
	}
	return i
}

func (d Domain) clone() Domain {
	return append(Domain(nil), d...)
}
