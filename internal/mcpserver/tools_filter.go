package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasfilter/filter"
	"github.com/erraggy/oasfilter/internal/fileutil"
	"github.com/erraggy/oasfilter/parser"
)

type filterInput struct {
	Spec     specInput `json:"spec"               jsonschema:"The OAS document to filter"`
	Paths    []string  `json:"paths,omitempty"    jsonschema:"Path patterns to keep. * matches any run of characters."`
	Methods  []string  `json:"methods,omitempty"  jsonschema:"HTTP methods to keep (case-insensitive)"`
	Tags     []string  `json:"tags,omitempty"     jsonschema:"Tag names to keep (exact match)"`
	Security []string  `json:"security,omitempty" jsonschema:"Security scheme names to keep (exact match)"`
	Format   string    `json:"format,omitempty"   jsonschema:"Output format: yaml or json. Defaults to the input format."`
	Output   string    `json:"output,omitempty"   jsonschema:"File path to write the filtered document. If omitted the document is returned inline."`
}

type filterOutput struct {
	SourceVersion      string `json:"source_version"`
	SourceFormat       string `json:"source_format"`
	RetainedPaths      int    `json:"retained_paths"`
	RetainedOperations int    `json:"retained_operations"`
	RetainedComponents int    `json:"retained_components"`
	WrittenTo          string `json:"written_to,omitempty"`
	Document           string `json:"document,omitempty"`
}

func handleFilter(_ context.Context, _ *mcp.CallToolRequest, input filterInput) (*mcp.CallToolResult, filterOutput, error) {
	criteria := filter.Criteria{
		Paths:    input.Paths,
		Methods:  input.Methods,
		Tags:     input.Tags,
		Security: input.Security,
	}
	if err := criteria.Validate(); err != nil {
		return errResult(err), filterOutput{}, nil
	}

	format, err := outputFormat(input.Format)
	if err != nil {
		return errResult(err), filterOutput{}, nil
	}

	parsed, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), filterOutput{}, nil
	}

	result, err := filter.FilterWithOptions(
		filter.WithParseResult(parsed),
		filter.WithCriteria(criteria),
	)
	if err != nil {
		return errResult(err), filterOutput{}, nil
	}

	data, err := result.Marshal(format)
	if err != nil {
		return errResult(err), filterOutput{}, nil
	}

	output := filterOutput{
		SourceVersion:      result.Version,
		SourceFormat:       string(result.SourceFormat),
		RetainedPaths:      result.RetainedPaths,
		RetainedOperations: result.RetainedOperations,
		RetainedComponents: result.RetainedComponents,
	}
	if input.Output != "" {
		if err := os.WriteFile(input.Output, data, fileutil.OwnerReadWrite); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), filterOutput{}, nil
		}
		output.WrittenTo = input.Output
	} else {
		output.Document = string(data)
	}
	return nil, output, nil
}

// outputFormat maps the tool's format string to a parser format.
// An empty value defers to the source format.
func outputFormat(format string) (parser.SourceFormat, error) {
	switch format {
	case "":
		return parser.SourceFormatUnknown, nil
	case "yaml":
		return parser.SourceFormatYAML, nil
	case "json":
		return parser.SourceFormatJSON, nil
	default:
		return parser.SourceFormatUnknown, fmt.Errorf("invalid format %q: must be yaml or json", format)
	}
}
