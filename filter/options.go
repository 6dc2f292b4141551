package filter

import (
	"io"

	"github.com/erraggy/oasfilter/oaserrors"
	"github.com/erraggy/oasfilter/parser"
)

// Option configures a FilterWithOptions call.
type Option func(*filterConfig) error

// filterConfig holds the resolved configuration for FilterWithOptions.
type filterConfig struct {
	filePath string
	hasFile  bool
	reader   io.Reader
	parsed   *parser.ParseResult
	criteria Criteria
	logger   parser.Logger
}

// WithFilePath sets the document source to a file path.
// The path "-" reads from standard input.
func WithFilePath(path string) Option {
	return func(cfg *filterConfig) error {
		cfg.filePath = path
		cfg.hasFile = true
		return nil
	}
}

// WithReader sets the document source to a reader. The format is
// detected from the content.
func WithReader(r io.Reader) Option {
	return func(cfg *filterConfig) error {
		cfg.reader = r
		return nil
	}
}

// WithParseResult sets the document source to an already parsed
// document, skipping the parse step.
func WithParseResult(parsed *parser.ParseResult) Option {
	return func(cfg *filterConfig) error {
		cfg.parsed = parsed
		return nil
	}
}

// WithCriteria sets the filtering criteria.
func WithCriteria(criteria Criteria) Option {
	return func(cfg *filterConfig) error {
		cfg.criteria = criteria
		return nil
	}
}

// WithLogger sets the structured logger used during parsing and
// filtering.
func WithLogger(logger parser.Logger) Option {
	return func(cfg *filterConfig) error {
		cfg.logger = logger
		return nil
	}
}

// FilterWithOptions parses and filters a document in one call.
// Exactly one document source option is required: WithFilePath,
// WithReader, or WithParseResult.
func FilterWithOptions(opts ...Option) (*FilterResult, error) {
	var cfg filterConfig
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	sources := 0
	if cfg.hasFile {
		sources++
	}
	if cfg.reader != nil {
		sources++
	}
	if cfg.parsed != nil {
		sources++
	}
	if sources != 1 {
		return nil, &oaserrors.ConfigError{
			Option:  "source",
			Message: "exactly one of WithFilePath, WithReader, or WithParseResult is required",
		}
	}

	parsed := cfg.parsed
	if parsed == nil {
		p := parser.New()
		p.Logger = cfg.logger
		var err error
		if cfg.hasFile {
			parsed, err = p.Parse(cfg.filePath)
		} else {
			parsed, err = p.ParseReader(cfg.reader)
		}
		if err != nil {
			return nil, err
		}
	}

	f := &Filter{Criteria: cfg.criteria, Logger: cfg.logger}
	return f.Apply(parsed)
}
