package commands

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/erraggy/oasfilter/filter"
	"github.com/erraggy/oasfilter/internal/fileutil"
	"github.com/erraggy/oasfilter/parser"
)

// filterFlags contains the flags for the filter invocation.
type filterFlags struct {
	paths    stringList
	methods  stringList
	tags     stringList
	security stringList
	output   string
	verbose  bool
}

func setupFilterFlags() (*flag.FlagSet, *filterFlags) {
	fs := flag.NewFlagSet("oasfilter", flag.ContinueOnError)
	flags := &filterFlags{}

	fs.Var(&flags.paths, "path", "path name pattern to keep; * matches any run of characters (repeatable)")
	fs.Var(&flags.methods, "method", "HTTP method to keep, case-insensitive (repeatable)")
	fs.Var(&flags.tags, "tag", "tag name to keep, exact match (repeatable)")
	fs.Var(&flags.security, "security", "security scheme name to keep, exact match (repeatable)")
	fs.StringVar(&flags.output, "o", "", "write the filtered document to this file instead of stdout")
	fs.StringVar(&flags.output, "output", "", "write the filtered document to this file instead of stdout")
	fs.BoolVar(&flags.verbose, "verbose", false, "enable debug logging to stderr")

	fs.Usage = func() {
		PrintUsage(fs.Output())
	}

	return fs, flags
}

// HandleFilter parses the filter flags and runs the filter, writing the
// document to stdout or the requested output file.
func HandleFilter(args []string) error {
	return handleFilter(args, os.Stdout)
}

func handleFilter(args []string, stdout io.Writer) error {
	fs, flags := setupFilterFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("expected at most one input file, got %d", fs.NArg())
	}
	input := StdinFilePath
	if fs.NArg() == 1 {
		input = fs.Arg(0)
	}

	criteria := filter.Criteria{
		Paths:    flags.paths,
		Methods:  flags.methods,
		Tags:     flags.tags,
		Security: flags.security,
	}
	if err := criteria.Validate(); err != nil {
		return err
	}

	var logger parser.Logger
	if flags.verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		logger = parser.NewSlogAdapter(slog.New(handler))
	}

	result, err := filter.FilterWithOptions(
		filter.WithFilePath(input),
		filter.WithCriteria(criteria),
		filter.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	data, err := result.Marshal(parser.SourceFormatUnknown)
	if err != nil {
		return err
	}

	if flags.output != "" {
		if err := os.WriteFile(flags.output, data, fileutil.OwnerReadWrite); err != nil {
			return fmt.Errorf("writing %s: %w", flags.output, err)
		}
		return nil
	}
	_, err = stdout.Write(data)
	return err
}
