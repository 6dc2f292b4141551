package filter

import (
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasfilter/oaserrors"
	"github.com/erraggy/oasfilter/parser"
)

// Filter prunes parsed OpenAPI v3 documents down to the paths,
// operations, and components matching its criteria.
type Filter struct {
	// Criteria are the filtering axes to apply. Empty criteria retain
	// every path and operation.
	Criteria Criteria
	// Logger receives structured diagnostics during filtering.
	// Defaults to a no-op logger when nil.
	Logger parser.Logger
}

// New creates a Filter with default settings.
func New() *Filter {
	return &Filter{}
}

// log returns the configured logger or a no-op logger.
func (f *Filter) log() parser.Logger {
	if f.Logger != nil {
		return f.Logger
	}
	return parser.NopLogger{}
}

// FilterResult contains the filtered document and retention statistics.
type FilterResult struct {
	// Document is the filtered document tree. It shares unmodified
	// subtrees with the source tree and must not be mutated.
	Document *yaml.Node
	// SourcePath is the path of the source document, carried over from
	// the parse result.
	SourcePath string
	// SourceFormat is the surface format of the source document.
	SourceFormat parser.SourceFormat
	// Version is the declared OpenAPI version of the source document.
	Version string
	// Criteria are the axes that produced this result.
	Criteria Criteria
	// RetainedPaths counts the path entries in the output.
	RetainedPaths int
	// RetainedOperations counts the operations in the output.
	RetainedOperations int
	// RetainedComponents counts the components in the output, across
	// all kinds.
	RetainedComponents int
	// FilterTime is how long filtering took.
	FilterTime time.Duration
}

// run carries the per-invocation state shared by the filtering stages.
type run struct {
	criteria     allowSets
	log          parser.Logger
	usedTags     map[string]struct{}
	usedSecurity map[string]struct{}

	retainedPaths int
	retainedOps   int
}

// Apply filters a parsed document against the configured criteria.
// The parse result's tree is left untouched; the returned result holds
// a new tree sharing unmodified subtrees with it.
func (f *Filter) Apply(parsed *parser.ParseResult) (*FilterResult, error) {
	if parsed == nil || parsed.Root == nil {
		return nil, &oaserrors.ConfigError{
			Option:  "document",
			Message: "no parsed document to filter",
		}
	}
	root := parser.Resolve(parser.Root(parsed.Root))
	if !parser.IsMapping(root) {
		return nil, &oaserrors.ConfigError{
			Option:  "document",
			Message: "document root is not an object",
		}
	}

	start := time.Now()
	log := f.log().With("source", parsed.SourcePath)
	r := &run{
		criteria:     newAllowSets(f.Criteria),
		log:          log,
		usedTags:     make(map[string]struct{}),
		usedSecurity: make(map[string]struct{}),
	}

	newPaths := r.selectPaths(parser.MapGet(root, parser.FieldPaths))

	refs := make(map[string]struct{})
	collectRefs(newPaths, refs)
	graph := buildComponentGraph(parser.MapGet(root, parser.FieldComponents))
	retained := closeOverRefs(graph, refs)
	log.Debug("closed over component references",
		"seeds", len(refs), "retained", len(retained))

	newComponents := r.buildComponents(parser.MapGet(root, parser.FieldComponents), retained)
	newTags := r.buildTags(parser.MapGet(root, parser.FieldTags))
	doc := assembleDocument(root, newPaths, newComponents, newTags)

	componentCount := 0
	for _, kind := range parser.MapKeys(newComponents) {
		componentCount += parser.MapLen(parser.MapGet(newComponents, kind))
	}

	result := &FilterResult{
		Document:           doc,
		SourcePath:         parsed.SourcePath,
		SourceFormat:       parsed.SourceFormat,
		Version:            parsed.Version,
		Criteria:           f.Criteria,
		RetainedPaths:      r.retainedPaths,
		RetainedOperations: r.retainedOps,
		RetainedComponents: componentCount,
		FilterTime:         time.Since(start),
	}
	log.Debug("filtered document",
		"paths", result.RetainedPaths,
		"operations", result.RetainedOperations,
		"components", result.RetainedComponents,
		"duration", result.FilterTime)
	return result, nil
}

// Marshal serializes the filtered document in the given format. Passing
// parser.SourceFormatUnknown uses the result's source format, so output
// mirrors input by default.
func (res *FilterResult) Marshal(format parser.SourceFormat) ([]byte, error) {
	if format == parser.SourceFormatUnknown {
		format = res.SourceFormat
	}
	return parser.MarshalNode(res.Document, format)
}
