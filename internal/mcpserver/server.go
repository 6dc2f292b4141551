// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oasfilter capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasfilter"
)

const serverInstructions = `oasfilter MCP server — filters OpenAPI v3 documents down to matching paths, operations, and their referenced components.

Configuration: All defaults are configurable via OASFILTER_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- OASFILTER_MAX_INLINE_SIZE (default: 10485760) — maximum inline content size in bytes
- OASFILTER_CACHE_ENABLED (default: true) — disable document caching entirely
- OASFILTER_CACHE_TTL (default: 15m) — cache TTL for parsed documents
- OASFILTER_CACHE_MAX_SIZE (default: 10) — maximum cached documents per session

Caching: Parsed documents are cached per session. File entries use path+mtime as key (auto-invalidated on change); inline content is keyed by hash.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasfilter", Version: oasfilter.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "filter",
		Description: "Filter an OpenAPI v3 document down to the paths and operations matching the given criteria, keeping only the components they reference. Criteria axes (paths, methods, tags, security) combine with AND; values within one axis combine with OR. Path patterns support * as a wildcard matching any run of characters. Output mirrors the input format (YAML or JSON) and preserves key order. Use output to write to a file instead of returning the document inline.",
	}, handleFilter)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect",
		Description: "Parse an OpenAPI v3 document and return a structural summary: declared version, surface format, path/operation/component counts, and the declared tag and security scheme names. Useful for choosing filter criteria before calling the filter tool.",
	}, handleInspect)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON
// semantics), otherwise returns make([]T, 0, n) for pre-allocated
// appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
