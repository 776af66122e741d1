// Package config creates the logger and the firmware layout of a run.
package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/retroenv/edmacinfo/internal/layout"
	"github.com/retroenv/edmacinfo/internal/options"
	"github.com/retroenv/retrogolib/log"
)

var layouts = map[string]func() layout.Layout{
	"r180": layout.R180,
}

// CreateLogger creates a logger for the verbosity options. Debug takes
// precedence over quiet.
func CreateLogger(opts options.Program) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case opts.Debug:
		cfg.Level = log.DebugLevel
	case opts.Quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateLayout returns the firmware layout with the given name.
func CreateLayout(name string) (layout.Layout, error) {
	create, ok := layouts[strings.ToLower(name)]
	if !ok {
		return layout.Layout{}, fmt.Errorf("unsupported layout '%s', valid options: %s",
			name, strings.Join(LayoutNames(), ", "))
	}
	return create(), nil
}

// LayoutNames returns the names of all supported layouts.
func LayoutNames() []string {
	return slices.Sorted(maps.Keys(layouts))
}
