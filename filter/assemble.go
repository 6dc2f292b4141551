package filter

import (
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasfilter/parser"
)

// buildComponents returns the replacement components object: the
// retained component addresses projected out of the original, with the
// securitySchemes kind rebuilt from the schemes the surviving
// operations actually use. Kinds keep their source order; the result is
// an empty mapping when nothing survives.
func (r *run) buildComponents(components *yaml.Node, retained map[string]struct{}) *yaml.Node {
	out := parser.NewMapping()
	components = parser.Resolve(components)
	if !parser.IsMapping(components) {
		return out
	}

	var paths [][]string
	for ref := range retained {
		segments := componentPath(ref)
		if len(segments) == 0 || segments[0] == parser.FieldSecuritySchemes {
			continue
		}
		paths = append(paths, segments)
	}
	projected := projectNode(components, paths)

	for i := 0; i+1 < len(components.Content); i += 2 {
		key := components.Content[i]
		if key.Kind != yaml.ScalarNode {
			continue
		}
		if key.Value == parser.FieldSecuritySchemes {
			if schemes := r.buildSecuritySchemes(components.Content[i+1]); schemes != nil {
				parser.MapAppend(out, key.Value, schemes)
			}
			continue
		}
		if kind := parser.MapGet(projected, key.Value); kind != nil {
			parser.MapAppend(out, key.Value, kind)
		}
	}
	return out
}

// buildSecuritySchemes keeps exactly the schemes named by surviving
// operations, in source order. Returns nil when none are used, which
// omits the kind.
func (r *run) buildSecuritySchemes(schemes *yaml.Node) *yaml.Node {
	schemes = parser.Resolve(schemes)
	if !parser.IsMapping(schemes) {
		return nil
	}
	out := parser.NewMapping()
	for i := 0; i+1 < len(schemes.Content); i += 2 {
		key := schemes.Content[i]
		if key.Kind != yaml.ScalarNode {
			continue
		}
		if _, ok := r.usedSecurity[key.Value]; ok {
			parser.MapAppend(out, key.Value, schemes.Content[i+1])
		}
	}
	if len(out.Content) == 0 {
		return nil
	}
	return out
}

// buildTags prunes the document-level tags array to the tag names the
// surviving operations carry, preserving order. Returns nil when the
// document has no tags array or no declared tag remains in use, which
// omits the field.
func (r *run) buildTags(tags *yaml.Node) *yaml.Node {
	tags = parser.Resolve(tags)
	if !parser.IsSequence(tags) {
		return nil
	}
	out := parser.NewSequence()
	for _, entry := range tags.Content {
		name := parser.ScalarValue(parser.MapGet(entry, "name"))
		if _, ok := r.usedTags[name]; ok {
			out.Content = append(out.Content, entry)
		}
	}
	if len(out.Content) == 0 {
		return nil
	}
	return out
}

// assembleDocument rebuilds the top-level mapping, substituting the
// filtered paths, components, and tags while copying every other field
// through in source order. Documents without a paths or components
// field gain one at the end so the output always carries both.
func assembleDocument(root *yaml.Node, newPaths, newComponents, newTags *yaml.Node) *yaml.Node {
	out := parser.NewMapping()
	var sawPaths, sawComponents bool
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i]
		if key.Kind != yaml.ScalarNode {
			continue
		}
		switch key.Value {
		case parser.FieldPaths:
			parser.MapAppend(out, key.Value, newPaths)
			sawPaths = true
		case parser.FieldComponents:
			parser.MapAppend(out, key.Value, newComponents)
			sawComponents = true
		case parser.FieldTags:
			if newTags != nil {
				parser.MapAppend(out, key.Value, newTags)
			}
		default:
			parser.MapAppend(out, key.Value, root.Content[i+1])
		}
	}
	if !sawPaths {
		parser.MapAppend(out, parser.FieldPaths, newPaths)
	}
	if !sawComponents {
		parser.MapAppend(out, parser.FieldComponents, newComponents)
	}
	return out
}
