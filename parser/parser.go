package parser

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasfilter/oaserrors"
)

// StdinPath is the special source path that means "read from standard input".
const StdinPath = "-"

// Parser handles OpenAPI document loading.
type Parser struct {
	// ValidateStructure determines whether the parsed value is checked for
	// OAS v3 document shape (top-level mapping with an openapi 3.x version).
	// Enabled by default.
	ValidateStructure bool
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default).
	Logger Logger
}

// New creates a new Parser instance with default settings.
func New() *Parser {
	return &Parser{
		ValidateStructure: true,
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// SourceFormat represents the surface format of the source document.
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// DocumentStats contains statistical information about a parsed document.
type DocumentStats struct {
	// PathCount is the number of entries in the paths object
	PathCount int
	// OperationCount is the number of operations across all inline path items
	OperationCount int
	// ComponentCount is the number of named components across all kinds
	ComponentCount int
}

// ParseResult contains the parsed OpenAPI document and metadata.
//
// The document is held as the original *yaml.Node tree, which preserves
// the source key order. Callers should treat the tree as read-only; the
// filter package builds new trees that share unmodified subtrees.
type ParseResult struct {
	// SourcePath is the document's input source path ("-" for stdin)
	SourcePath string
	// SourceFormat is the detected surface format (JSON or YAML)
	SourceFormat SourceFormat
	// Version is the declared OAS version string (e.g., "3.0.3")
	Version string
	// Root is the top-level mapping node of the document
	Root *yaml.Node
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// LoadTime is the time taken to load and parse the source data
	LoadTime time.Duration
	// Stats contains statistical information about the document
	Stats DocumentStats
}

// Parse parses the OpenAPI document at the given file path.
// The path "-" reads from standard input.
func (p *Parser) Parse(path string) (*ParseResult, error) {
	if path == StdinPath {
		return p.ParseReader(os.Stdin)
	}
	data, err := os.ReadFile(path) //nolint:gosec // G304 - path is user-provided input (CLI tool)
	if err != nil {
		return nil, &oaserrors.InputError{Path: path, Cause: err}
	}
	return p.ParseBytes(path, data)
}

// ParseReader parses an OpenAPI document from a reader.
// The format is detected from the content: JSON is attempted first, then YAML.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &oaserrors.InputError{Path: StdinPath, Cause: err}
	}
	return p.ParseBytes(StdinPath, data)
}

// ParseBytes parses an OpenAPI document from raw bytes. The name is used
// for format detection (by extension) and error reporting; when the
// extension is not conclusive the format is detected from the content.
func (p *Parser) ParseBytes(name string, data []byte) (*ParseResult, error) {
	start := time.Now()

	format := detectFormatFromPath(name)
	if format == SourceFormatUnknown {
		format = detectFormatFromContent(data)
	}
	p.log().Debug("detected source format", "path", name, "format", string(format))

	// The YAML content model is a superset of JSON for these documents,
	// so a single decode covers both surface formats.
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &oaserrors.ParseError{Path: name, Message: "invalid YAML/JSON", Cause: err}
	}

	root := Root(&doc)
	if root == nil || root.Kind == 0 {
		return nil, &oaserrors.ParseError{Path: name, Message: "empty document"}
	}

	version, err := p.documentVersion(name, root)
	if err != nil {
		return nil, err
	}

	result := &ParseResult{
		SourcePath:   name,
		SourceFormat: format,
		Version:      version,
		Root:         root,
		SourceSize:   int64(len(data)),
		Stats:        computeStats(root),
	}
	result.LoadTime = time.Since(start)

	p.log().Debug("parsed document",
		"path", name,
		"version", version,
		"paths", result.Stats.PathCount,
		"operations", result.Stats.OperationCount,
		"components", result.Stats.ComponentCount)

	return result, nil
}

// documentVersion extracts the declared OAS version and, when
// ValidateStructure is enabled, checks the document shape.
func (p *Parser) documentVersion(name string, root *yaml.Node) (string, error) {
	if !IsMapping(root) {
		return "", &oaserrors.ParseError{Path: name, Message: "document is not an object"}
	}

	versionNode := MapGet(root, FieldOpenAPI)
	version := ScalarValue(versionNode)

	if !p.ValidateStructure {
		return version, nil
	}

	if versionNode == nil {
		return "", &oaserrors.ParseError{Path: name, Message: "missing openapi version field"}
	}
	if version == "" || !strings.HasPrefix(version, "3") {
		return "", &oaserrors.ParseError{
			Path:    name,
			Line:    versionNode.Line,
			Column:  versionNode.Column,
			Message: fmt.Sprintf("unsupported OAS version %q: only 3.x documents are supported", version),
		}
	}
	if paths := MapGet(root, FieldPaths); paths != nil && !IsMapping(paths) {
		return "", &oaserrors.ParseError{Path: name, Message: "paths is not an object"}
	}
	if components := MapGet(root, FieldComponents); components != nil && !IsMapping(components) {
		return "", &oaserrors.ParseError{Path: name, Message: "components is not an object"}
	}
	return version, nil
}
