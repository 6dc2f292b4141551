package filter

import (
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasfilter/parser"
)

// rewriteOperation returns the operation with its tags and security
// arrays pruned to the allow-lists, recording the names that survive so
// the assembly stage can prune the document-level tags and
// securitySchemes. Axes without a restriction leave the arrays
// untouched but still record their names as used.
func (r *run) rewriteOperation(op *yaml.Node) *yaml.Node {
	if !r.criteria.filterTags() && !r.criteria.filterSecurity() {
		r.recordTags(parser.Resolve(parser.MapGet(op, "tags")))
		r.recordSecurity(parser.Resolve(parser.MapGet(op, parser.FieldSecurity)))
		return op
	}

	out := parser.NewMapping()
	for i := 0; i+1 < len(op.Content); i += 2 {
		keyNode := op.Content[i]
		value := op.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			continue
		}
		switch keyNode.Value {
		case "tags":
			if tags := r.rewriteTags(value); tags != nil {
				parser.MapAppend(out, keyNode.Value, tags)
			}
		case parser.FieldSecurity:
			if security := r.rewriteSecurity(value); security != nil {
				parser.MapAppend(out, keyNode.Value, security)
			}
		default:
			parser.MapAppend(out, keyNode.Value, value)
		}
	}
	return out
}

// rewriteTags prunes a tags array to the allow-list, preserving order.
// Returns nil when no tag survives, which omits the field. With no tag
// restriction the original node is returned and all names recorded.
func (r *run) rewriteTags(value *yaml.Node) *yaml.Node {
	tags := parser.Resolve(value)
	if !parser.IsSequence(tags) {
		return value
	}
	if !r.criteria.filterTags() {
		r.recordTags(tags)
		return value
	}
	out := parser.NewSequence()
	for _, tag := range tags.Content {
		if !parser.IsScalar(tag) || !r.criteria.tagAllowed(parser.ScalarValue(tag)) {
			continue
		}
		out.Content = append(out.Content, tag)
		r.usedTags[parser.ScalarValue(tag)] = struct{}{}
	}
	if len(out.Content) == 0 {
		return nil
	}
	return out
}

// rewriteSecurity prunes a security array to the allow-list. Each
// requirement mapping keeps only allowed scheme keys; requirements left
// empty are dropped. An array that loses every requirement collapses to
// nil, omitting the field, but a requirement list that was already
// empty in the source (the "no auth required" marker) is kept as is.
func (r *run) rewriteSecurity(value *yaml.Node) *yaml.Node {
	security := parser.Resolve(value)
	if !parser.IsSequence(security) {
		return value
	}
	if !r.criteria.filterSecurity() {
		r.recordSecurity(security)
		return value
	}
	if len(security.Content) == 0 {
		return value
	}
	out := parser.NewSequence()
	for _, requirement := range security.Content {
		req := parser.Resolve(requirement)
		if !parser.IsMapping(req) {
			continue
		}
		kept := parser.NewMapping()
		for i := 0; i+1 < len(req.Content); i += 2 {
			key := req.Content[i]
			if key.Kind != yaml.ScalarNode || !r.criteria.securityAllowed(key.Value) {
				continue
			}
			kept.Content = append(kept.Content, key, req.Content[i+1])
			r.usedSecurity[key.Value] = struct{}{}
		}
		if len(kept.Content) > 0 {
			out.Content = append(out.Content, kept)
		}
	}
	if len(out.Content) == 0 {
		return nil
	}
	return out
}

// recordTags adds every scalar tag name in the sequence to the used set.
func (r *run) recordTags(tags *yaml.Node) {
	if !parser.IsSequence(tags) {
		return
	}
	for _, tag := range tags.Content {
		if parser.IsScalar(tag) {
			r.usedTags[parser.ScalarValue(tag)] = struct{}{}
		}
	}
}

// recordSecurity adds every scheme name keyed in the requirement
// mappings to the used set.
func (r *run) recordSecurity(security *yaml.Node) {
	if !parser.IsSequence(security) {
		return
	}
	for _, requirement := range security.Content {
		req := parser.Resolve(requirement)
		if !parser.IsMapping(req) {
			continue
		}
		for i := 0; i+1 < len(req.Content); i += 2 {
			if key := req.Content[i]; key.Kind == yaml.ScalarNode {
				r.usedSecurity[key.Value] = struct{}{}
			}
		}
	}
}
