// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/edmacinfo/internal/options"
)

// ParseFlags parses the command line flags and returns the program options.
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	var opts options.Program
	readOptionFlags(flags, &opts)

	if err := flags.Parse(os.Args[1:]); err != nil {
		return opts, &UsageError{
			flags: flags,
			msg:   err.Error(),
			help:  errors.Is(err, flag.ErrHelp),
		}
	}

	args := flags.Args()
	if err := validateArgs(flags, args); err != nil {
		return opts, err
	}

	opts.Input = options.DefaultInput
	if len(args) == 1 {
		opts.Input = args[0]
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
	help  bool
}

func (e *UsageError) Error() string {
	return e.msg
}

// Help returns whether the usage was explicitly requested.
func (e *UsageError) Help() bool {
	return e.help
}

// ShowUsage prints the usage and all flag defaults to stdout.
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: edmacinfo [options] [file]\n\n")
	fmt.Printf("Decodes the EDMAC channel configuration of a ROM dump, file defaults to %s.\n\n", options.DefaultInput)
	e.flags.SetOutput(os.Stdout)
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks that at most one file is given and that no flag
// follows it.
func validateArgs(flags *flag.FlagSet, args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("Potential argument %s found after file to decode, please pass the file to decode as last argument", arg),
			}
		}
	}
	if len(args) > 1 {
		return &UsageError{
			flags: flags,
			msg:   fmt.Sprintf("only one file can be decoded, got %d", len(args)),
		}
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Output, "o", "", "name of the output file, printed on console if no name given")
	flags.StringVar(&opts.Layout, "layout", options.DefaultLayout, "firmware layout of the ROM dump")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
