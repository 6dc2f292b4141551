package filter

import (
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasfilter/parser"
)

// selectPaths applies the path and operation predicates to the paths
// object and returns the pruned replacement mapping. Paths-level
// extension fields (x-*) pass through untouched. Path entries that are
// themselves $refs are subject to the name predicate only; inline path
// items additionally require at least one surviving operation.
func (r *run) selectPaths(paths *yaml.Node) *yaml.Node {
	out := parser.NewMapping()
	paths = parser.Resolve(paths)
	if !parser.IsMapping(paths) {
		return out
	}

	for i := 0; i+1 < len(paths.Content); i += 2 {
		keyNode := paths.Content[i]
		if keyNode.Kind != yaml.ScalarNode {
			continue
		}
		pathKey := keyNode.Value
		item := paths.Content[i+1]

		if strings.HasPrefix(pathKey, "x-") {
			parser.MapAppend(out, pathKey, item)
			continue
		}
		if !r.criteria.pathNameAllowed(pathKey) {
			continue
		}

		resolved := parser.Resolve(item)
		if isRefNode(resolved) {
			// Reference path entries carry no operations to test; the
			// referenced item is pulled in by the closure stage.
			parser.MapAppend(out, pathKey, item)
			r.retainedPaths++
			continue
		}
		if !parser.IsMapping(resolved) {
			continue
		}
		if !r.pathItemHasAllowedTag(resolved) || !r.pathItemHasAllowedSecurity(resolved) {
			continue
		}

		newItem, ops := r.reducePathItem(resolved)
		if ops == 0 {
			continue
		}
		parser.MapAppend(out, pathKey, newItem)
		r.retainedPaths++
		r.retainedOps += ops
	}
	return out
}

// reducePathItem rebuilds a path item with only the operations that pass
// the operation predicate, rewriting each survivor. Path-level fields
// (parameters, summary, servers, extensions) are preserved in place.
// Returns the new item and the number of surviving operations.
func (r *run) reducePathItem(item *yaml.Node) (*yaml.Node, int) {
	out := parser.NewMapping()
	ops := 0
	for i := 0; i+1 < len(item.Content); i += 2 {
		keyNode := item.Content[i]
		value := item.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			continue
		}
		key := keyNode.Value

		op := parser.Resolve(value)
		if !parser.IsHTTPMethod(key) || !parser.IsMapping(op) {
			parser.MapAppend(out, key, value)
			continue
		}
		if !r.operationAllowed(key, op) {
			continue
		}
		parser.MapAppend(out, key, r.rewriteOperation(op))
		ops++
	}
	return out, ops
}

// operationAllowed evaluates the per-operation conjunction: method,
// tag, and security axes must all pass (absent axes pass vacuously).
func (r *run) operationAllowed(method string, op *yaml.Node) bool {
	if !r.criteria.methodAllowed(method) {
		return false
	}
	if r.criteria.filterTags() && !r.operationHasAllowedTag(op) {
		return false
	}
	if r.criteria.filterSecurity() && !r.operationHasAllowedSecurity(op) {
		return false
	}
	return true
}

// pathItemHasAllowedTag reports whether any operation in the item
// carries a tag from the allow-list. Vacuously true when the tag axis
// is unrestricted.
func (r *run) pathItemHasAllowedTag(item *yaml.Node) bool {
	if !r.criteria.filterTags() {
		return true
	}
	return r.anyOperation(item, r.operationHasAllowedTag)
}

// pathItemHasAllowedSecurity reports whether any operation in the item
// uses a security scheme from the allow-list. Vacuously true when the
// security axis is unrestricted.
func (r *run) pathItemHasAllowedSecurity(item *yaml.Node) bool {
	if !r.criteria.filterSecurity() {
		return true
	}
	return r.anyOperation(item, r.operationHasAllowedSecurity)
}

// anyOperation reports whether pred holds for any operation in the item.
func (r *run) anyOperation(item *yaml.Node, pred func(*yaml.Node) bool) bool {
	for i := 0; i+1 < len(item.Content); i += 2 {
		keyNode := item.Content[i]
		if keyNode.Kind != yaml.ScalarNode || !parser.IsHTTPMethod(keyNode.Value) {
			continue
		}
		op := parser.Resolve(item.Content[i+1])
		if parser.IsMapping(op) && pred(op) {
			return true
		}
	}
	return false
}

// operationHasAllowedTag reports whether the operation carries at least
// one tag from the allow-list.
func (r *run) operationHasAllowedTag(op *yaml.Node) bool {
	tags := parser.Resolve(parser.MapGet(op, "tags"))
	if !parser.IsSequence(tags) {
		return false
	}
	for _, tag := range tags.Content {
		if parser.IsScalar(tag) && r.criteria.tagAllowed(parser.ScalarValue(tag)) {
			return true
		}
	}
	return false
}

// operationHasAllowedSecurity reports whether any of the operation's
// security requirement mappings contains a key from the allow-list.
func (r *run) operationHasAllowedSecurity(op *yaml.Node) bool {
	security := parser.Resolve(parser.MapGet(op, parser.FieldSecurity))
	if !parser.IsSequence(security) {
		return false
	}
	for _, requirement := range security.Content {
		req := parser.Resolve(requirement)
		if !parser.IsMapping(req) {
			continue
		}
		for i := 0; i+1 < len(req.Content); i += 2 {
			key := req.Content[i]
			if key.Kind == yaml.ScalarNode && r.criteria.securityAllowed(key.Value) {
				return true
			}
		}
	}
	return false
}

// isRefNode reports whether the node is a mapping containing a $ref key.
func isRefNode(n *yaml.Node) bool {
	return parser.IsMapping(n) && parser.MapGet(n, parser.FieldRef) != nil
}
