package parser

import (
	"encoding/json"
	"path/filepath"
)

// detectFormatFromPath detects the source format from a file path.
func detectFormatFromPath(path string) SourceFormat {
	switch filepath.Ext(path) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// detectFormatFromContent detects the format from the content bytes.
// JSON is attempted first; anything that is not well-formed JSON is
// treated as YAML. The order matters because every JSON document is
// also a YAML document for this content model.
func detectFormatFromContent(data []byte) SourceFormat {
	if json.Valid(data) {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}
