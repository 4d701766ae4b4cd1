// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ivts

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// NewSource returns a PCG source for seed. The command line tool seeds
// from --seed through NewSource, so its output can be reproduced from
// Go.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// A Sampler draws values from Dist by inverse-transform sampling: it
// draws u uniformly on [0, 1) from Src and returns Dist.InvCDF(u).
//
// If Src is nil, the global random source is used. A Sampler is as
// safe for concurrent use as its Src.
type Sampler struct {
	Dist Dist
	Src  rand.Source
}

func (s Sampler) uniform() distuv.Uniform {
	return distuv.Uniform{Min: 0, Max: 1, Src: s.Src}
}

// batch returns a generator of values uniform on [0, 1) for filling
// many values at once. distuv.Uniform.Rand wraps a non-nil Src in a new
// rand.Rand on every call, so with a Src the values come from one
// rand.Rand instead; they are the same values distuv.Uniform draws.
func (s Sampler) batch() func() float64 {
	if s.Src == nil {
		return s.uniform().Rand
	}
	return rand.New(s.Src).Float64
}

// Rand returns one value drawn from s.Dist.
func (s Sampler) Rand() float64 {
	return s.Dist.InvCDF(s.uniform().Rand())
}

// Sample fills dst with values drawn from s.Dist and returns dst.
func (s Sampler) Sample(dst []float64) []float64 {
	next := s.batch()
	for i := range dst {
		dst[i] = s.Dist.InvCDF(next())
	}
	return dst
}

// SampleShape draws prod(shape) values from s.Dist and returns them
// with the given shape. An empty shape draws a single scalar value.
// SampleShape panics if any dimension is negative.
func (s Sampler) SampleShape(shape ...int) Samples {
	n := 1
	for _, dim := range shape {
		if dim < 0 {
			panic(fmt.Sprintf("negative dimension %d in shape %v", dim, shape))
		}
		n *= dim
	}
	return Samples{
		Shape: append([]int(nil), shape...),
		Xs:    s.Sample(make([]float64, n)),
	}
}

// Samples is a block of values drawn from a distribution.
type Samples struct {
	// Shape is the size of each dimension. It is empty for a
	// scalar draw.
	Shape []int

	// Xs holds the values in row-major order.
	Xs []float64
}

// At returns the value at the given index, which must have one
// coordinate per dimension of s.Shape.
func (s Samples) At(idx ...int) float64 {
	if len(idx) != len(s.Shape) {
		panic(fmt.Sprintf("index %v does not match shape %v", idx, s.Shape))
	}
	off := 0
	for i, j := range idx {
		if j < 0 || j >= s.Shape[i] {
			panic(fmt.Sprintf("index %v out of range for shape %v", idx, s.Shape))
		}
		off = off*s.Shape[i] + j
	}
	return s.Xs[off]
}

// Scalar returns the single value of a scalar draw.
func (s Samples) Scalar() float64 {
	if len(s.Xs) != 1 {
		panic(fmt.Sprintf("not a scalar sample: shape %v", s.Shape))
	}
	return s.Xs[0]
}
