// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/edmacinfo/internal/config"
	"github.com/retroenv/edmacinfo/internal/options"
	"github.com/retroenv/edmacinfo/internal/pipeline"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile decodes the input file of the options and writes the report
// to the output file or stdout.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) error {
	l, err := config.CreateLayout(opts.Layout)
	if err != nil {
		return fmt.Errorf("creating layout: %w", err)
	}

	pipe := pipeline.New(logger, l)
	if opts.Output == "" {
		_, err = pipe.Execute(ctx, opts.Input, os.Stdout)
		return err
	}

	out := &outputFile{path: opts.Output}
	_, err = pipe.Execute(ctx, opts.Input, out)
	if closeErr := out.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

// outputFile creates the report file on the first write, so that a run that
// fails before writing leaves an existing file untouched.
type outputFile struct {
	path string
	file *os.File
}

func (o *outputFile) Write(p []byte) (int, error) {
	if o.file == nil {
		file, err := os.Create(o.path)
		if err != nil {
			return 0, fmt.Errorf("creating output file %s: %w", o.path, err)
		}
		o.file = file
	}
	n, err := o.file.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing output file %s: %w", o.path, err)
	}
	return n, nil
}

// Close closes the report file if it was created.
func (o *outputFile) Close() error {
	if o.file == nil {
		return nil
	}
	if err := o.file.Close(); err != nil {
		return fmt.Errorf("closing output file %s: %w", o.path, err)
	}
	o.file = nil
	return nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("edmacinfo", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
