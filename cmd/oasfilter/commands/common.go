// Package commands provides CLI command handlers for oasfilter.
package commands

import (
	"io"
	"os"
	"strings"

	"github.com/erraggy/oasfilter/internal/cliutil"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// stringList is a repeatable string flag value.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(value string) error {
	*s = append(*s, value)
	return nil
}

// StdinIsPiped reports whether standard input is connected to a pipe or
// a redirected file rather than a terminal.
func StdinIsPiped() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}

const usageText = `Usage: oasfilter [flags] [file]

Filter an OpenAPI v3 document down to the paths and operations matching
the given criteria, keeping only the components they reference. Reads
from the file argument ("-" or omitted means stdin) and writes the
filtered document to stdout in the input's format.

Criteria on different axes combine with AND; repeated values on one
axis combine with OR.

Flags:
  --path <pattern>    path name pattern to keep; * matches any run of characters (repeatable)
  --method <name>     HTTP method to keep, case-insensitive (repeatable)
  --tag <name>        tag name to keep, exact match (repeatable)
  --security <name>   security scheme name to keep, exact match (repeatable)
  -o, --output <file> write the filtered document to a file instead of stdout
  --verbose           enable debug logging to stderr

Commands:
  oasfilter version   print the version
  oasfilter help      print this help
  oasfilter mcp       run as an MCP server over stdio

Examples:
  oasfilter --tag pets openapi.yaml
  oasfilter --path '/pets*' --method get openapi.yaml
  cat openapi.json | oasfilter --security api_key
  oasfilter --tag pets -o filtered.yaml openapi.yaml
`

// PrintUsage writes the top-level usage text to w.
func PrintUsage(w io.Writer) {
	cliutil.Writef(w, "%s", usageText)
}
