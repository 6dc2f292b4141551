package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasfilter/parser"
)

type inspectInput struct {
	Spec specInput `json:"spec" jsonschema:"The OAS document to inspect"`
}

type inspectOutput struct {
	Version         string   `json:"version"`
	SourceFormat    string   `json:"source_format"`
	PathCount       int      `json:"path_count"`
	OperationCount  int      `json:"operation_count"`
	ComponentCount  int      `json:"component_count"`
	Tags            []string `json:"tags,omitempty"`
	SecuritySchemes []string `json:"security_schemes,omitempty"`
}

func handleInspect(_ context.Context, _ *mcp.CallToolRequest, input inspectInput) (*mcp.CallToolResult, inspectOutput, error) {
	parsed, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), inspectOutput{}, nil
	}

	output := inspectOutput{
		Version:        parsed.Version,
		SourceFormat:   string(parsed.SourceFormat),
		PathCount:      parsed.Stats.PathCount,
		OperationCount: parsed.Stats.OperationCount,
		ComponentCount: parsed.Stats.ComponentCount,
	}

	tags := parser.Resolve(parser.MapGet(parsed.Root, parser.FieldTags))
	if parser.IsSequence(tags) {
		output.Tags = makeSlice[string](len(tags.Content))
		for _, entry := range tags.Content {
			if name := parser.ScalarValue(parser.MapGet(entry, "name")); name != "" {
				output.Tags = append(output.Tags, name)
			}
		}
	}

	components := parser.MapGet(parsed.Root, parser.FieldComponents)
	if schemes := parser.MapGet(components, parser.FieldSecuritySchemes); schemes != nil {
		output.SecuritySchemes = parser.MapKeys(schemes)
	}

	return nil, output, nil
}
