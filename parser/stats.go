package parser

import (
	"strings"

	"go.yaml.in/yaml/v4"
)

// computeStats counts paths, operations, and named components in the
// document rooted at the given mapping node.
func computeStats(root *yaml.Node) DocumentStats {
	var stats DocumentStats

	if paths := Resolve(MapGet(root, FieldPaths)); IsMapping(paths) {
		for i := 0; i+1 < len(paths.Content); i += 2 {
			key := paths.Content[i]
			if key.Kind != yaml.ScalarNode || !strings.HasPrefix(key.Value, "/") {
				continue
			}
			stats.PathCount++
			item := Resolve(paths.Content[i+1])
			if !IsMapping(item) {
				continue
			}
			for j := 0; j+1 < len(item.Content); j += 2 {
				if IsHTTPMethod(item.Content[j].Value) {
					stats.OperationCount++
				}
			}
		}
	}

	if components := Resolve(MapGet(root, FieldComponents)); IsMapping(components) {
		for i := 0; i+1 < len(components.Content); i += 2 {
			stats.ComponentCount += MapLen(components.Content[i+1])
		}
	}

	return stats
}
