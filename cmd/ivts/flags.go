// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/aclements/go-ivts/ivts"
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"
)

var (
	logLevelFlag = cli.StringFlag{
		Name:  "log-level",
		Usage: "logging level (debug, info, warn, error)",
		Value: "info",
	}
	configFlag = cli.PathFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "YAML file describing the distribution; replaces the distribution flags",
	}
	familyFlag = cli.StringFlag{
		Name:  "family",
		Usage: "distribution family: " + ivts.FamilyLinear + ", " + ivts.FamilyPowerlaw + " or " + ivts.FamilyBrokenPowerlaw,
	}
	slopeFlag = cli.Float64Flag{
		Name:  "slope",
		Usage: "slope of a linear or power-law distribution",
	}
	interceptFlag = cli.Float64Flag{
		Name:  "intercept",
		Usage: "intercept of a linear distribution",
	}
	slopesFlag = cli.Float64SliceFlag{
		Name:  "slopes",
		Usage: "comma-separated power-law slopes of a broken power law",
	}
	domainFlag = cli.Float64SliceFlag{
		Name:  "domain",
		Usage: "comma-separated domain limits and breakpoints",
	}
	seedFlag = cli.Uint64Flag{
		Name:  "seed",
		Usage: "random seed; 0 picks a random one",
	}
	countFlag = cli.IntFlag{
		Name:    "n",
		Aliases: []string{"count"},
		Usage:   "number of samples to draw",
		Value:   10,
	}
)

// distFlags are the flags shared by every command that builds a
// distribution.
var distFlags = []cli.Flag{
	&configFlag,
	&familyFlag,
	&slopeFlag,
	&interceptFlag,
	&slopesFlag,
	&domainFlag,
}

// paramsFromContext returns the distribution parameters from the
// --config file if one is given, and from the distribution flags
// otherwise.
func paramsFromContext(ctx *cli.Context) (ivts.Params, error) {
	if path := ctx.Path(configFlag.Name); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return ivts.Params{}, errors.Wrap(err, "opening distribution config")
		}
		defer f.Close()
		p, err := ivts.LoadParams(f)
		if err != nil {
			return ivts.Params{}, errors.Wrapf(err, "reading %s", path)
		}
		return p, nil
	}
	if !ctx.IsSet(familyFlag.Name) {
		return ivts.Params{}, errors.WithHint(
			errors.New("no distribution given"),
			"pass --config or --family with its parameters")
	}
	return ivts.Params{
		Family:    ctx.String(familyFlag.Name),
		Slope:     ctx.Float64(slopeFlag.Name),
		Intercept: ctx.Float64(interceptFlag.Name),
		Slopes:    ctx.Float64Slice(slopesFlag.Name),
		Domain:    ivts.Domain(ctx.Float64Slice(domainFlag.Name)),
	}, nil
}

// distFromContext builds the distribution described by ctx.
func distFromContext(ctx *cli.Context) (ivts.Dist, error) {
	p, err := paramsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	d, err := p.New()
	if err != nil {
		return nil, err
	}
	slog.Debug("constructed distribution", "dist", d)
	return d, nil
}

// sourceFromContext returns the ivts.NewSource source for --seed.
func sourceFromContext(ctx *cli.Context) rand.Source {
	seed := ctx.Uint64(seedFlag.Name)
	if seed == 0 {
		seed = rand.Uint64()
	}
	slog.Debug("seeding random source", "seed", seed)
	return ivts.NewSource(seed)
}

// countFromContext returns --n, which must not be negative.
func countFromContext(ctx *cli.Context) (int, error) {
	n := ctx.Int(countFlag.Name)
	if n < 0 {
		return 0, errors.Newf("--%s must not be negative, got %d", countFlag.Name, n)
	}
	return n, nil
}

// summaryCountFlag is countFlag with a default large enough for
// summary statistics.
var summaryCountFlag = func() cli.IntFlag {
	f := countFlag
	f.Value = 10000
	return f
}()
