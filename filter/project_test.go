package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasfilter/internal/testutil"
	"github.com/erraggy/oasfilter/parser"
)

const projectFixture = `schemas:
  Pet:
    type: object
  Toy:
    type: object
examples:
  - name: first
    pet:
      kind: dog
  - name: second
    toy:
      kind: ball
`

func parseFragment(t *testing.T, source string) *parser.ParseResult {
	t.Helper()
	p := parser.New()
	p.ValidateStructure = false
	result, err := p.ParseBytes("fragment.yaml", []byte(source))
	require.NoError(t, err)
	return result
}

func TestProjectNodeSelectsSubtrees(t *testing.T) {
	root := parseFragment(t, projectFixture).Root

	out := projectNode(root, [][]string{{"schemas", "Pet"}})
	require.NotNil(t, out)
	assert.Equal(t, []string{"schemas"}, parser.MapKeys(out))
	assert.Equal(t, []string{"Pet"}, parser.MapKeys(parser.MapGet(out, "schemas")))

	// The addressed subtree is kept whole.
	pet := parser.MapGet(parser.MapGet(out, "schemas"), "Pet")
	assert.Equal(t, "object", parser.ScalarValue(parser.MapGet(pet, "type")))
}

func TestProjectNodeMergesPaths(t *testing.T) {
	root := parseFragment(t, projectFixture).Root

	out := projectNode(root, [][]string{{"schemas", "Pet"}, {"schemas", "Toy"}})
	require.NotNil(t, out)
	assert.Equal(t, []string{"Pet", "Toy"}, parser.MapKeys(parser.MapGet(out, "schemas")))
}

func TestProjectNodeSequencesPassPathsThrough(t *testing.T) {
	root := parseFragment(t, projectFixture).Root

	// Each element is projected independently; elements with no match
	// are dropped.
	out := projectNode(root, [][]string{{"examples", "pet"}})
	require.NotNil(t, out)
	examples := parser.Resolve(parser.MapGet(out, "examples"))
	require.NotNil(t, examples)
	require.Len(t, examples.Content, 1)
	pet := parser.MapGet(examples.Content[0], "pet")
	assert.Equal(t, "dog", parser.ScalarValue(parser.MapGet(pet, "kind")))
}

func TestProjectNodeNoMatch(t *testing.T) {
	root := parseFragment(t, projectFixture).Root

	assert.Nil(t, projectNode(root, nil))
	assert.Nil(t, projectNode(root, [][]string{{"missing", "Key"}}))
	assert.Nil(t, projectNode(root, [][]string{{"schemas", "Pet", "type", "deeper"}}))
}

func TestProjectNodeExhaustedPathKeepsNodeWhole(t *testing.T) {
	root := parseFragment(t, projectFixture).Root
	out := projectNode(root, [][]string{{}})
	assert.Same(t, root, out)
}

func TestProjectNodeSharesSubtrees(t *testing.T) {
	parsed := testutil.ParsePetstore(t)
	components := parser.Resolve(parser.MapGet(parsed.Root, parser.FieldComponents))

	out := projectNode(components, [][]string{{"schemas", "Pet"}})
	require.NotNil(t, out)
	projected := parser.MapGet(parser.MapGet(out, "schemas"), "Pet")
	original := parser.MapGet(parser.MapGet(components, "schemas"), "Pet")
	assert.Same(t, original, projected)
}
