package filter

import (
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasfilter/parser"
)

// projectNode returns a copy of node containing only the subtrees
// addressed by paths, where each path is a sequence of mapping keys.
// A path that is exhausted at a node keeps that node whole. Mappings
// keep an entry when some path names it, recursing with the path's
// tail; sequences pass the remaining paths through to every element,
// dropping elements that end up empty. Returns nil when nothing under
// node is addressed.
func projectNode(node *yaml.Node, paths [][]string) *yaml.Node {
	if len(paths) == 0 {
		return nil
	}
	for _, p := range paths {
		if len(p) == 0 {
			return node
		}
	}
	resolved := parser.Resolve(node)
	if resolved == nil {
		return nil
	}
	switch resolved.Kind {
	case yaml.MappingNode:
		out := parser.NewMapping()
		for i := 0; i+1 < len(resolved.Content); i += 2 {
			key := resolved.Content[i]
			if key.Kind != yaml.ScalarNode {
				continue
			}
			var tails [][]string
			for _, p := range paths {
				if p[0] == key.Value {
					tails = append(tails, p[1:])
				}
			}
			if len(tails) == 0 {
				continue
			}
			if child := projectNode(resolved.Content[i+1], tails); child != nil {
				parser.MapAppend(out, key.Value, child)
			}
		}
		if len(out.Content) == 0 {
			return nil
		}
		return out
	case yaml.SequenceNode:
		out := parser.NewSequence()
		for _, element := range resolved.Content {
			if child := projectNode(element, paths); child != nil {
				out.Content = append(out.Content, child)
			}
		}
		if len(out.Content) == 0 {
			return nil
		}
		return out
	default:
		// A path segment remains but scalars have no children.
		return nil
	}
}
