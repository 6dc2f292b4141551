package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasfilter/internal/testutil"
)

func TestHandleFilterByTag(t *testing.T) {
	specCache.reset()

	result, output, err := handleFilter(context.Background(), nil, filterInput{
		Spec: specInput{Content: testutil.PetstoreYAML},
		Tags: []string{"pets"},
	})
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "3.0.3", output.SourceVersion)
	assert.Equal(t, "yaml", output.SourceFormat)
	assert.Equal(t, 3, output.RetainedOperations)
	assert.Contains(t, output.Document, "/pets:")
	assert.NotContains(t, output.Document, "/admin/metrics")
	assert.Empty(t, output.WrittenTo)
}

func TestHandleFilterWritesOutputFile(t *testing.T) {
	specCache.reset()
	outPath := filepath.Join(t.TempDir(), "filtered.yaml")

	result, output, err := handleFilter(context.Background(), nil, filterInput{
		Spec:   specInput{Content: testutil.PetstoreYAML},
		Paths:  []string{"/pets*"},
		Output: outPath,
	})
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, outPath, output.WrittenTo)
	assert.Empty(t, output.Document)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "/pets/{petId}")

	info, err := os.Stat(outPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestHandleFilterFormatOverride(t *testing.T) {
	specCache.reset()

	result, output, err := handleFilter(context.Background(), nil, filterInput{
		Spec:   specInput{Content: testutil.PetstoreYAML},
		Format: "json",
	})
	require.NoError(t, err)
	require.Nil(t, result)
	assert.True(t, strings.HasPrefix(output.Document, "{"))
}

func TestHandleFilterInvalidMethod(t *testing.T) {
	result, _, err := handleFilter(context.Background(), nil, filterInput{
		Spec:    specInput{Content: testutil.PetstoreYAML},
		Methods: []string{"teapot"},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestHandleFilterInvalidFormat(t *testing.T) {
	result, _, err := handleFilter(context.Background(), nil, filterInput{
		Spec:   specInput{Content: testutil.PetstoreYAML},
		Format: "toml",
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestHandleFilterBadSpec(t *testing.T) {
	result, _, err := handleFilter(context.Background(), nil, filterInput{
		Spec: specInput{Content: "a: [unclosed"},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
