// Package main implements the main entry point for the EDMAC configuration decoder
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/edmacinfo/internal/cli"
	"github.com/retroenv/edmacinfo/internal/config"
	"github.com/retroenv/edmacinfo/internal/fileprocessor"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
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
		logger := config.CreateLogger(opts)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fileprocessor.PrintBanner(logger, opts, version, commit, date)
			if !usageErr.Help() {
				logger.Error(usageErr.Error())
			}
			usageErr.ShowUsage()
			if usageErr.Help() {
				return
			}
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts)
	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	if err := fileprocessor.ProcessFile(ctx, logger, opts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Decoding failed", log.Err(err))
		os.Exit(1)
	}
}
