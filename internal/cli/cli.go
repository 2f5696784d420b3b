// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/tompreston/parse-dpcd/internal/options"
)

// ParseFlags parses command line flags and returns the program options.
// All positional arguments are taken as dump files to decode; without
// any, input is read from stdin.
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	if err := flags.Parse(os.Args[1:]); err != nil {
		return opts, &UsageError{flags: flags}
	}

	args := flags.Args()
	if err := validateArgs(args); err != nil {
		return opts, err
	}
	opts.Inputs = args

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: parse-dpcd [options] [dump file ...]\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after a dump file, please pass all options before the files to decode", arg),
			}
		}
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Output, "o", "", "name of the output file, printed on console if no name given")
	flags.BoolVar(&opts.ExpandFields, "f", false, "expand register values into their named bitfields")
	flags.BoolVar(&opts.Strict, "strict", false, "abort on the first malformed dump line instead of reporting and continuing")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
