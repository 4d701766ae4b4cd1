// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ivts

import "github.com/cockroachdb/errors"

// ErrDomain is returned, wrapped, by every constructor whose domain or
// parameters do not describe a valid distribution.
var ErrDomain = errors.New("bad domain")

// ErrNonConvergent is returned, wrapped, when the total probability
// mass over a domain is zero or not representable. It wraps ErrDomain.
var ErrNonConvergent = errors.Wrap(ErrDomain, "domain does not allow CDF convergence")

func domainErrorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrDomain, format, args...)
}

func nonConvergentErrorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrNonConvergent, format, args...)
}
