// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"sort"
	"strconv"

	"github.com/aclements/go-ivts/ivts"
	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/gonum/stat"
)

var inputFlag = cli.PathFlag{
	Name:  "input",
	Usage: "file of newline-separated values to compare with the distribution (- for stdin) instead of drawing a sample",
}

var describeCommand = cli.Command{
	Action: describeAction,
	Name:   "describe",
	Usage:  "print a distribution's constants and compare it with a sample",
	Flags: append([]cli.Flag{
		&summaryCountFlag,
		&seedFlag,
		&inputFlag,
	}, distFlags...),
}

func describeAction(ctx *cli.Context) error {
	d, err := distFromContext(ctx)
	if err != nil {
		return err
	}
	xs, err := sampleFromContext(ctx, d)
	if err != nil {
		return err
	}
	if len(xs) == 0 {
		return errors.New("no values to describe")
	}
	sort.Float64s(xs)

	w := ctx.App.Writer
	fmt.Fprintln(w, d)
	if n, ok := d.(interface{ Norm() float64 }); ok {
		fmt.Fprintf(w, "norm %.6g", n.Norm())
	}
	if r, ok := d.(interface{ RelNorm() []float64 }); ok {
		fmt.Fprintf(w, "  relnorm %.6g", r.RelNorm())
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)

	mean, stdDev := stat.MeanStdDev(xs, nil)
	fmt.Fprintf(w, "N %d  mean %.6g", len(xs), mean)
	if xs[0] > 0 {
		fmt.Fprintf(w, "  gmean %.6g", stat.GeometricMean(xs, nil))
	}
	fmt.Fprintf(w, "  std dev %.6g  variance %.6g\n", stdDev, stdDev*stdDev)
	fmt.Fprintln(w)

	// Quartiles and tails.
	labels := map[int]string{0: "min", 50: "median", 100: "max"}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"quantile", "sample", "analytic"})
	for _, p := range []int{0, 1, 5, 25, 50, 75, 95, 99, 100} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%d%%ile", p)
		}
		q := float64(p) / 100
		t.AppendRow(table.Row{
			label,
			fmt.Sprintf("%.6g", stat.Quantile(q, stat.Empirical, xs, nil)),
			fmt.Sprintf("%.6g", d.InvCDF(q)),
		})
	}
	t.Render()
	fmt.Fprintln(w)

	ks := ivts.KSDistance(d, xs)
	// Asymptotic 5% critical value of the one-sample KS statistic.
	crit := 1.358 / math.Sqrt(float64(len(xs)))
	fmt.Fprintf(w, "KS distance %.6g  (5%% critical value %.6g)\n", ks, crit)
	if ks > crit {
		slog.Warn("sample does not look drawn from the distribution", "ks", ks, "critical", crit)
	}
	return nil
}

// sampleFromContext reads values from --input if set, and otherwise
// draws --n values from d.
func sampleFromContext(ctx *cli.Context, d ivts.Dist) ([]float64, error) {
	path := ctx.Path(inputFlag.Name)
	if path == "" {
		n, err := countFromContext(ctx)
		if err != nil {
			return nil, err
		}
		return ivts.Sampler{Dist: d, Src: sourceFromContext(ctx)}.Sample(make([]float64, n)), nil
	}
	if path == "-" {
		return readInput(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening input")
	}
	defer f.Close()
	return readInput(f)
}

// readInput reads newline-separated numbers from r.
func readInput(r io.Reader) ([]float64, error) {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		l := scanner.Text()
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		xs = append(xs, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return xs, nil
}
