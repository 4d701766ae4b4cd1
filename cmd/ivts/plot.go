// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aclements/go-ivts/ivts"
	"github.com/cockroachdb/errors"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/urfave/cli/v2"
)

var (
	outputFlag = cli.PathFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "HTML file to write",
		Value:   "ivts.html",
	}
	pointsFlag = cli.IntFlag{
		Name:  "points",
		Usage: "number of intervals at which to evaluate the PDF and CDF",
		Value: 200,
	}
)

var plotCommand = cli.Command{
	Action: plotAction,
	Name:   "plot",
	Usage:  "write an HTML page charting a distribution's PDF and CDF against a sample",
	Flags: append([]cli.Flag{
		&outputFlag,
		&pointsFlag,
		&summaryCountFlag,
		&seedFlag,
	}, distFlags...),
}

func plotAction(ctx *cli.Context) error {
	d, err := distFromContext(ctx)
	if err != nil {
		return err
	}
	n, err := countFromContext(ctx)
	if err != nil {
		return err
	}
	xs := ivts.Sampler{Dist: d, Src: sourceFromContext(ctx)}.Sample(make([]float64, n))
	points := ctx.Int(pointsFlag.Name)

	title := fmt.Sprint(d)
	page := components.NewPage()
	page.PageTitle = title
	page.AddCharts(
		newLineChart(title, "PDF").
			AddSeries("PDF", lineData(ivts.PDFPoints(d, points))),
		newLineChart(title, "CDF").
			AddSeries("CDF", lineData(ivts.CDFPoints(d, points))).
			AddSeries(fmt.Sprintf("ECDF (N=%d)", n), lineData(ivts.ECDFPoints(xs))),
	)

	path := ctx.Path(outputFlag.Name)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating plot")
	}
	if err := page.Render(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "rendering %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	slog.Info("wrote plot", "path", path)
	return nil
}

// lineData converts [x, y] points to chart points.
func lineData(data [][2]float64) []opts.LineData {
	items := make([]opts.LineData, 0, len(data))
	for _, pair := range data {
		items = append(items, opts.LineData{Value: pair})
	}
	return items
}

// newLineChart creates a line chart with a numeric x axis.
func newLineChart(title, subtitle string) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme: types.ThemeWesteros,
	}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value"}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}))
	return chart
}
