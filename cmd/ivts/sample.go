// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"strconv"

	"github.com/aclements/go-ivts/ivts"
	"github.com/urfave/cli/v2"
)

var sampleCommand = cli.Command{
	Action: sampleAction,
	Name:   "sample",
	Usage:  "print samples drawn from a distribution, one per line",
	Flags: append([]cli.Flag{
		&countFlag,
		&seedFlag,
	}, distFlags...),
}

func sampleAction(ctx *cli.Context) error {
	d, err := distFromContext(ctx)
	if err != nil {
		return err
	}
	n, err := countFromContext(ctx)
	if err != nil {
		return err
	}
	xs := ivts.Sampler{Dist: d, Src: sourceFromContext(ctx)}.Sample(make([]float64, n))

	w := bufio.NewWriter(ctx.App.Writer)
	for _, x := range xs {
		w.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
		w.WriteByte('\n')
	}
	return w.Flush()
}
