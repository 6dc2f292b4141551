package filter

import (
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasfilter/parser"
)

// collectRefs walks the subtree rooted at node and adds every string
// value keyed by $ref to refs, at any depth.
func collectRefs(node *yaml.Node, refs map[string]struct{}) {
	node = parser.Resolve(node)
	if node == nil {
		return
	}
	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			value := node.Content[i+1]
			if key.Kind == yaml.ScalarNode && key.Value == parser.FieldRef && parser.IsScalar(value) {
				refs[parser.ScalarValue(value)] = struct{}{}
				continue
			}
			collectRefs(value, refs)
		}
	case yaml.SequenceNode, yaml.DocumentNode:
		for _, child := range node.Content {
			collectRefs(child, refs)
		}
	}
}

// allowedKeyRecursionLevels is how many mapping levels below the
// components object extend a reference's owner key. Two levels reach
// "kind/name", so every $ref found deeper inside a component body is
// attributed to the component that owns it.
const allowedKeyRecursionLevels = 2

// buildComponentGraph returns the reference graph of the components
// object: each key is a component address of the form
// "#/components/<kind>/<name>", and its value lists every $ref target
// that appears anywhere inside that component's body.
func buildComponentGraph(components *yaml.Node) map[string][]string {
	graph := make(map[string][]string)
	components = parser.Resolve(components)
	if !parser.IsMapping(components) {
		return graph
	}
	walkComponentRefs(components, "#/components", 0, graph)
	return graph
}

// walkComponentRefs accumulates owner keys while descending. Mapping
// keys extend the owner only within the first allowedKeyRecursionLevels
// levels; sequences descend without extending, so refs inside composite
// keyword arrays (allOf and friends) still land on the owning component.
func walkComponentRefs(node *yaml.Node, owner string, depth int, graph map[string][]string) {
	node = parser.Resolve(node)
	if node == nil {
		return
	}
	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			value := node.Content[i+1]
			if key.Kind != yaml.ScalarNode {
				continue
			}
			if key.Value == parser.FieldRef && parser.IsScalar(value) {
				graph[owner] = append(graph[owner], parser.ScalarValue(value))
				continue
			}
			childOwner := owner
			if depth < allowedKeyRecursionLevels {
				childOwner = owner + "/" + key.Value
			}
			walkComponentRefs(value, childOwner, depth+1, graph)
		}
	case yaml.SequenceNode:
		for _, child := range node.Content {
			walkComponentRefs(child, owner, depth+1, graph)
		}
	}
}

// isLocalComponentRef reports whether ref addresses this document's
// components section. External and non-component refs are preserved in
// place but never drive component retention.
func isLocalComponentRef(ref string) bool {
	return strings.HasPrefix(ref, parser.LocalComponentRefPrefix)
}
