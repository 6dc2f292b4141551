package parser

import "go.yaml.in/yaml/v4"

// Root unwraps a document node to the top-level content node.
// Returns nil for nil or empty documents.
func Root(n *yaml.Node) *yaml.Node {
	if n == nil {
		return nil
	}
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return nil
		}
		return n.Content[0]
	}
	return n
}

// Resolve follows alias nodes to their anchor target.
// Returns the node itself when it is not an alias.
func Resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// IsMapping reports whether n is a mapping node (after alias resolution).
func IsMapping(n *yaml.Node) bool {
	n = Resolve(n)
	return n != nil && n.Kind == yaml.MappingNode
}

// IsSequence reports whether n is a sequence node (after alias resolution).
func IsSequence(n *yaml.Node) bool {
	n = Resolve(n)
	return n != nil && n.Kind == yaml.SequenceNode
}

// IsScalar reports whether n is a scalar node (after alias resolution).
func IsScalar(n *yaml.Node) bool {
	n = Resolve(n)
	return n != nil && n.Kind == yaml.ScalarNode
}

// MapGet returns the value node for key within mapping node m, or nil when
// m is not a mapping or the key is absent.
func MapGet(m *yaml.Node, key string) *yaml.Node {
	m = Resolve(m)
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		k := m.Content[i]
		if k.Kind == yaml.ScalarNode && k.Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// MapKeys returns the scalar keys of mapping node m in source order.
func MapKeys(m *yaml.Node) []string {
	m = Resolve(m)
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	keys := make([]string, 0, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Kind == yaml.ScalarNode {
			keys = append(keys, m.Content[i].Value)
		}
	}
	return keys
}

// MapLen returns the number of key/value entries in mapping node m.
func MapLen(m *yaml.Node) int {
	m = Resolve(m)
	if m == nil || m.Kind != yaml.MappingNode {
		return 0
	}
	return len(m.Content) / 2
}

// ScalarValue returns the string value of a scalar node, or "" when the
// node is not a scalar.
func ScalarValue(n *yaml.Node) string {
	n = Resolve(n)
	if n == nil || n.Kind != yaml.ScalarNode {
		return ""
	}
	return n.Value
}

// NewMapping returns an empty mapping node.
func NewMapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

// NewSequence returns an empty sequence node.
func NewSequence() *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
}

// StringNode returns a scalar node holding a string value.
func StringNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

// MapAppend appends a key/value entry to mapping node m.
// The value node is stored as given; callers share subtrees freely since
// filtered documents are never mutated in place.
func MapAppend(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, StringNode(key), value)
}
