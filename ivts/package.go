// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ivts implements inverse-transform sampling for a small
// family of analytically defined distributions: linear, bounded power
// law, and broken (piecewise continuous) bounded power law.
//
// Each distribution derives its normalization constant and a
// closed-form inverse CDF when it is constructed. Sampling draws
// uniform values on [0, 1) and maps them through the inverse CDF.
package ivts // import "github.com/aclements/go-ivts/ivts"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
