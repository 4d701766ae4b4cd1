// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ivts

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testContinuous checks that the PDF of d is continuous at each
// interior breakpoint.
func testContinuous(t *testing.T, name string, d Dist) {
	t.Helper()
	dom := d.Domain()
	for _, bp := range dom[1 : len(dom)-1] {
		left, right := d.PDF(bp*(1-1e-12)), d.PDF(bp)
		if math.Abs(left-right) > 1e-9*math.Max(left, right) {
			t.Errorf("%s.PDF discontinuous at %v: %v just below, %v at", name, bp, left, right)
		}
	}
}

func TestBrokenBoundedPowerlaw(t *testing.T) {
	d, err := NewBrokenBoundedPowerlaw([]float64{-1.5, -2.5}, Domain{1, 5, 20})
	require.NoError(t, err)
	testDist(t, d.String(), d)
	testContinuous(t, d.String(), d)
	assert.InDeltaSlice(t, []float64{1, 5}, d.RelNorm(), 1e-12)
	assert.Equal(t, []float64{-1.5, -2.5}, d.Slopes())

	m0 := 2 * (1 - 1/math.Sqrt(5))
	m1 := 5 / 1.5 * (math.Pow(5, -1.5) - math.Pow(20, -1.5))
	assert.InDelta(t, 1/(m0+m1), d.Norm(), 1e-12)
	testFunc(t, "CDF", d.CDF, map[float64]float64{
		1:  0,
		5:  m0 / (m0 + m1),
		20: 1,
	})
	testFunc(t, "PDF", d.PDF, map[float64]float64{
		0.5: 0,
		2:   math.Pow(2, -1.5) / (m0 + m1),
		10:  5 * math.Pow(10, -2.5) / (m0 + m1),
		20:  5 * math.Pow(20, -2.5) / (m0 + m1),
		21:  0,
	})
	testFunc(t, "InvCDF", d.InvCDF, map[float64]float64{
		m0 / (m0 + m1): 5,
	})
}

func TestBrokenBoundedPowerlawShapes(t *testing.T) {
	tests := []struct {
		slopes []float64
		domain Domain
	}{
		{[]float64{-0.5, -1, -3}, Domain{1, 2, 4, 8}},
		{[]float64{1, -2}, Domain{0.1, 1, 10}},
		{[]float64{-1, -1}, Domain{1, 3, 9}},
		{[]float64{0, 2, -4, -1.5}, Domain{0.2, 0.6, 1.1, 3, 50}},
	}
	for _, tt := range tests {
		d, err := NewBrokenBoundedPowerlaw(tt.slopes, tt.domain)
		require.NoError(t, err)
		testDist(t, d.String(), d)
		testContinuous(t, d.String(), d)
	}
}

func TestBrokenBoundedPowerlawMatchesBoundedPowerlaw(t *testing.T) {
	// Equal slopes everywhere is a single power law.
	broken, err := NewBrokenBoundedPowerlaw([]float64{-2, -2, -2}, Domain{1, 2, 5, 10})
	require.NoError(t, err)
	single, err := NewBoundedPowerlaw(-2, Domain{1, 10})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 1, 1}, broken.RelNorm(), 1e-12)
	for _, x := range []float64{1, 1.5, 2, 4, 5, 9, 10} {
		assert.InDelta(t, single.PDF(x), broken.PDF(x), 1e-12, "PDF(%v)", x)
		assert.InDelta(t, single.CDF(x), broken.CDF(x), 1e-12, "CDF(%v)", x)
	}
	for _, u := range []float64{0, 0.2, 0.5, 0.8, 1} {
		assert.InDelta(t, single.InvCDF(u), broken.InvCDF(u), 1e-9, "InvCDF(%v)", u)
	}
}

func TestBrokenBoundedPowerlawNearLogarithmic(t *testing.T) {
	logarithmic, err := NewBoundedPowerlaw(-1, Domain{1, 10})
	require.NoError(t, err)
	for _, eps := range []float64{1e-16, 1e-13, 1e-8} {
		d, err := NewBrokenBoundedPowerlaw([]float64{-1 + eps, -1 - eps}, Domain{1, 3, 10})
		require.NoError(t, err)
		testDist(t, d.String(), d)
		testContinuous(t, d.String(), d)
		for _, x := range []float64{1, 2, 3, 5, 10} {
			assert.InDelta(t, logarithmic.CDF(x), d.CDF(x), 1e-6, "%v.CDF(%v)", d, x)
		}
		for _, u := range []float64{0.1, 0.5, 0.9} {
			assert.InDelta(t, logarithmic.InvCDF(u), d.InvCDF(u), 1e-5, "%v.InvCDF(%v)", d, u)
		}
	}
}

func TestBrokenBoundedPowerlawErrors(t *testing.T) {
	_, err := NewBrokenBoundedPowerlaw([]float64{-1.5}, Domain{1, 5, 20})
	require.ErrorIs(t, err, ErrDomain)
	_, err = NewBrokenBoundedPowerlaw([]float64{-1.5, -2, -2.5}, Domain{1, 5, 20})
	require.ErrorIs(t, err, ErrDomain)

	_, err = NewBrokenBoundedPowerlaw([]float64{-1.5}, Domain{1, 20})
	require.ErrorIs(t, err, ErrDomain)
	assert.Contains(t, errors.FlattenHints(err), "NewBoundedPowerlaw")

	for _, dom := range []Domain{{0, 5, 20}, {1, 5, inf}, {1, 20, 5}} {
		_, err = NewBrokenBoundedPowerlaw([]float64{-1.5, -2.5}, dom)
		require.ErrorIs(t, err, ErrDomain, "domain %v", dom)
	}

	_, err = NewBrokenBoundedPowerlaw([]float64{-1.5, inf}, Domain{1, 5, 20})
	require.ErrorIs(t, err, ErrDomain)

	_, err = NewBrokenBoundedPowerlaw([]float64{-1.5, 500}, Domain{1, 5, 20})
	require.ErrorIs(t, err, ErrNonConvergent)
}

func TestBrokenBoundedPowerlawSample(t *testing.T) {
	d, err := NewBrokenBoundedPowerlaw([]float64{-1.5, -2.5}, Domain{1, 5, 20})
	require.NoError(t, err)
	xs := d.Sample(NewSource(7), 10000).Xs
	for _, x := range xs {
		require.True(t, x >= 1 && x <= 20, "sample %v outside domain", x)
	}
	assert.Less(t, KSDistance(d, xs), 0.02)
}
