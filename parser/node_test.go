package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func parseNode(t *testing.T, source string) *yaml.Node {
	t.Helper()
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(source), &doc))
	return Root(&doc)
}

func TestRoot(t *testing.T) {
	assert.Nil(t, Root(nil))

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("a: 1\n"), &doc))
	root := Root(&doc)
	require.NotNil(t, root)
	assert.Equal(t, yaml.MappingNode, root.Kind)

	// A non-document node is returned as is.
	assert.Same(t, root, Root(root))
}

func TestResolveFollowsAliases(t *testing.T) {
	root := parseNode(t, "base: &anchor\n  a: 1\nother: *anchor\n")
	other := MapGet(root, "other")
	require.NotNil(t, other)
	assert.Equal(t, yaml.AliasNode, other.Kind)

	resolved := Resolve(other)
	assert.Equal(t, yaml.MappingNode, resolved.Kind)
	assert.Equal(t, "1", ScalarValue(MapGet(resolved, "a")))

	assert.Nil(t, Resolve(nil))
}

func TestKindPredicates(t *testing.T) {
	root := parseNode(t, "m: {}\ns: []\nv: hello\n")
	assert.True(t, IsMapping(MapGet(root, "m")))
	assert.True(t, IsSequence(MapGet(root, "s")))
	assert.True(t, IsScalar(MapGet(root, "v")))
	assert.False(t, IsMapping(MapGet(root, "v")))
	assert.False(t, IsMapping(nil))
	assert.False(t, IsSequence(nil))
	assert.False(t, IsScalar(nil))
}

func TestMapHelpers(t *testing.T) {
	root := parseNode(t, "b: 1\na: 2\nc: 3\n")

	assert.Equal(t, []string{"b", "a", "c"}, MapKeys(root))
	assert.Equal(t, 3, MapLen(root))
	assert.Equal(t, "2", ScalarValue(MapGet(root, "a")))
	assert.Nil(t, MapGet(root, "missing"))
	assert.Nil(t, MapGet(nil, "a"))
	assert.Nil(t, MapKeys(nil))
	assert.Zero(t, MapLen(nil))

	scalar := MapGet(root, "a")
	assert.Nil(t, MapGet(scalar, "a"))
}

func TestNodeConstructors(t *testing.T) {
	m := NewMapping()
	MapAppend(m, "name", StringNode("value"))
	assert.Equal(t, 1, MapLen(m))
	assert.Equal(t, "value", ScalarValue(MapGet(m, "name")))

	s := NewSequence()
	assert.True(t, IsSequence(s))
	assert.Empty(t, s.Content)

	// Constructed nodes marshal cleanly.
	out, err := yaml.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "name: value\n", string(out))
}
