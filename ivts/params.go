// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ivts

import (
	"io"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Family names accepted in Params.Family.
const (
	FamilyLinear         = "linear"
	FamilyPowerlaw       = "powerlaw"
	FamilyBrokenPowerlaw = "broken-powerlaw"
)

// Params describes a distribution by family name and parameters, for
// example when read from a configuration file:
//
//	family: broken-powerlaw
//	slopes: [-1.5, -2.5]
//	domain: [1, 5, 20]
//
// Slope is used by the linear and powerlaw families, Intercept only by
// linear, and Slopes only by broken-powerlaw.
type Params struct {
	Family    string    `yaml:"family"`
	Slope     float64   `yaml:"slope,omitempty"`
	Intercept float64   `yaml:"intercept,omitempty"`
	Slopes    []float64 `yaml:"slopes,omitempty"`
	Domain    Domain    `yaml:"domain"`
}

// LoadParams decodes YAML-encoded Params from r. Unknown fields are
// an error.
func LoadParams(r io.Reader) (Params, error) {
	var p Params
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return Params{}, errors.Wrap(err, "decoding distribution parameters")
	}
	return p, nil
}

// New constructs the distribution described by p.
func (p Params) New() (Dist, error) {
	var (
		d   Dist
		err error
	)
	switch p.Family {
	case FamilyLinear:
		var l *Linear
		if l, err = NewLinear(p.Slope, p.Intercept, p.Domain); err == nil {
			d = l
		}
	case FamilyPowerlaw:
		var pl *BoundedPowerlaw
		if pl, err = NewBoundedPowerlaw(p.Slope, p.Domain); err == nil {
			d = pl
		}
	case FamilyBrokenPowerlaw:
		var bpl *BrokenBoundedPowerlaw
		if bpl, err = NewBrokenBoundedPowerlaw(p.Slopes, p.Domain); err == nil {
			d = bpl
		}
	default:
		return nil, errors.WithHintf(
			errors.Newf("unknown distribution family %q", p.Family),
			"valid families are %q, %q and %q", FamilyLinear, FamilyPowerlaw, FamilyBrokenPowerlaw)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s distribution", p.Family)
	}
	return d, nil
}
