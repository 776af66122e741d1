// Package pipeline orchestrates the decoding workflow stages.
package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/edmacinfo/internal/layout"
	"github.com/retroenv/edmacinfo/internal/loader"
	"github.com/retroenv/edmacinfo/internal/resolve"
	"github.com/retroenv/edmacinfo/internal/symbols"
	"github.com/retroenv/edmacinfo/internal/tables"
	"github.com/retroenv/edmacinfo/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete decoding workflow.
type Pipeline struct {
	logger  *log.Logger
	loader  *loader.Loader
	layout  layout.Layout
	symbols symbols.Catalog
}

// Result contains the data produced by a pipeline run.
type Result struct {
	Tables     *tables.Tables
	Channels   []resolve.Channel
	Unresolved *symbols.Tracker
}

// New creates a new decoding pipeline for the given firmware layout.
func New(logger *log.Logger, l layout.Layout) *Pipeline {
	return &Pipeline{
		logger:  logger,
		loader:  loader.New(),
		layout:  l,
		symbols: symbols.Default(),
	}
}

// Execute loads the image file and runs the complete pipeline on it.
func (p *Pipeline) Execute(ctx context.Context, input string, out io.Writer) (*Result, error) {
	img, err := p.loader.Load(input)
	if err != nil {
		return nil, fmt.Errorf("loading image: %w", err)
	}
	defer func() { _ = img.Close() }()

	p.logger.Info("Processing ROM dump",
		log.String("file", input),
		log.Int("size", int(img.Size())))

	return p.ExecuteImage(ctx, img, out)
}

// ExecuteImage runs the pipeline on an already opened image.
// This is useful for testing and programmatic usage where the image is already in memory.
func (p *Pipeline) ExecuteImage(ctx context.Context, image io.ReadSeeker, out io.Writer) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader := tables.NewReader(p.logger, image, p.layout)
	tbl, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading tables: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	channels, err := resolve.Resolve(tbl)
	if err != nil {
		return nil, fmt.Errorf("resolving channels: %w", err)
	}

	buffered := bufio.NewWriter(out)
	w := writer.New(buffered, p.symbols)
	if err := w.WriteAll(channels); err != nil {
		return nil, fmt.Errorf("writing report: %w", err)
	}
	if err := buffered.Flush(); err != nil {
		return nil, fmt.Errorf("writing report: %w", err)
	}

	result := &Result{
		Tables:     tbl,
		Channels:   channels,
		Unresolved: w.Unresolved(),
	}
	p.logSummary(result)
	return result, nil
}

func (p *Pipeline) logSummary(result *Result) {
	var packUnpack, boomers, selectors int
	for _, channel := range result.Channels {
		if channel.PackUnpack != nil {
			packUnpack++
		}
		if channel.Boomer != nil {
			boomers++
			if channel.Boomer.Selector != nil {
				selectors++
			}
		}
	}

	p.logger.Info("Decoding finished",
		log.Int("channels", len(result.Channels)),
		log.Int("pack_unpack_records", len(result.Tables.PackUnpack)),
		log.Int("pack_unpack_channels", packUnpack),
		log.Int("boomer_channels", boomers),
		log.Int("selector_channels", selectors))

	for _, table := range result.Unresolved.Tables() {
		codes := result.Unresolved.Unresolved(table)
		p.logger.Debug("Unresolved symbols",
			log.String("table", table),
			log.Int("count", len(codes)),
			log.String("codes", formatCodes(codes)))
	}

	for _, table := range symbols.References() {
		p.logger.Debug("Reference symbols",
			log.String("table", table.Name()),
			log.Int("count", table.Len()),
			log.String("codes", formatCodes(table.Codes())))
	}
}

func formatCodes(codes []uint32) string {
	parts := make([]string, len(codes))
	for i, code := range codes {
		parts[i] = fmt.Sprintf("0x%X", code)
	}
	return strings.Join(parts, ",")
}
