// Package main implements a decoder for DisplayPort Configuration Data (DPCD)
// register dumps, e.g. /sys/kernel/debug/dri/0/DP-1/i915_dpcd.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
	"github.com/tompreston/parse-dpcd/internal/cli"
	"github.com/tompreston/parse-dpcd/internal/config"
	"github.com/tompreston/parse-dpcd/internal/dpcd"
	"github.com/tompreston/parse-dpcd/internal/fileprocessor"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fileprocessor.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	catalog, err := dpcd.NewCatalog(dpcd.ReceiverCapability, dpcd.LinkConfiguration, dpcd.LinkSinkStatus)
	if err != nil {
		logger.Fatal("Building register catalog", log.Err(err))
	}
	if opts.Debug {
		logger.Debug("Register catalog", log.String("dump", spew.Sdump(catalog)))
	}

	if err := fileprocessor.Process(ctx, logger, opts, catalog); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Decoding failed", log.Err(err))
		os.Exit(1)
	}
}
