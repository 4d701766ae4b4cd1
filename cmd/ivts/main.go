// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// ivts draws samples from an analytic distribution by inverse-transform
// sampling, and describes or plots the distribution.
//
// The distribution is given either as flags:
//
//	ivts sample --family broken-powerlaw --slopes=-1.5,-2.5 --domain 1,5,20 --n 10
//
// or as a YAML file:
//
//	ivts describe --config dist.yaml
package main

import (
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/lmittmann/tint"
	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "ivts",
		Usage: "inverse-transform sampling of analytic distributions",
		Flags: []cli.Flag{
			&logLevelFlag,
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			&sampleCommand,
			&describeCommand,
			&plotCommand,
		},
	}
}

// setupLogging installs a tint handler on ctx.App.ErrWriter as the
// default slog logger.
func setupLogging(ctx *cli.Context) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(ctx.String(logLevelFlag.Name))); err != nil {
		return errors.Wrapf(err, "parsing --%s", logLevelFlag.Name)
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(ctx.App.ErrWriter, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		}),
	))
	return nil
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		slog.Error("ivts failed", "err", err)
		os.Exit(1)
	}
}
