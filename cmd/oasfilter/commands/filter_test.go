package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasfilter/internal/testutil"
	"github.com/erraggy/oasfilter/oaserrors"
)

func TestHandleFilterByTag(t *testing.T) {
	input := testutil.WriteTempFile(t, "petstore.yaml", []byte(testutil.PetstoreYAML))

	var out bytes.Buffer
	err := handleFilter([]string{"--tag", "pets", input}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "/pets:")
	assert.Contains(t, out.String(), "/pets/{petId}:")
	assert.NotContains(t, out.String(), "/admin/metrics")
	assert.NotContains(t, out.String(), "Unused")
}

func TestHandleFilterRepeatableFlags(t *testing.T) {
	input := testutil.WriteTempFile(t, "petstore.yaml", []byte(testutil.PetstoreYAML))

	var out bytes.Buffer
	err := handleFilter([]string{"--path", "/pets", "--path", "/health", input}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "/pets:")
	assert.Contains(t, out.String(), "/health:")
	assert.NotContains(t, out.String(), "/pets/{petId}")
}

func TestHandleFilterOutputFile(t *testing.T) {
	input := testutil.WriteTempFile(t, "petstore.yaml", []byte(testutil.PetstoreYAML))
	output := filepath.Join(t.TempDir(), "filtered.yaml")

	var out bytes.Buffer
	err := handleFilter([]string{"--method", "post", "-o", output, input}, &out)
	require.NoError(t, err)
	assert.Empty(t, out.String())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "post:")
	assert.NotContains(t, string(data), "get:")

	info, err := os.Stat(output)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestHandleFilterMirrorsJSONInput(t *testing.T) {
	input := testutil.WriteTempFile(t, "api.json", []byte(testutil.MinimalJSON))

	var out bytes.Buffer
	err := handleFilter([]string{input}, &out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.String(), "{"))
	assert.Contains(t, out.String(), `"/ping"`)
}

func TestHandleFilterInvalidMethod(t *testing.T) {
	input := testutil.WriteTempFile(t, "petstore.yaml", []byte(testutil.PetstoreYAML))

	var out bytes.Buffer
	err := handleFilter([]string{"--method", "teapot", input}, &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrConfig)
}

func TestHandleFilterMissingFile(t *testing.T) {
	var out bytes.Buffer
	err := handleFilter([]string{"/does/not/exist.yaml"}, &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrInput)
}

func TestHandleFilterTooManyArgs(t *testing.T) {
	var out bytes.Buffer
	err := handleFilter([]string{"one.yaml", "two.yaml"}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at most one input")
}

func TestHandleFilterUnknownFlag(t *testing.T) {
	fs, _ := setupFilterFlags()
	fs.SetOutput(&bytes.Buffer{})
	err := fs.Parse([]string{"--bogus"})
	require.Error(t, err)
}

func TestStringList(t *testing.T) {
	var list stringList
	require.NoError(t, list.Set("a"))
	require.NoError(t, list.Set("b"))
	assert.Equal(t, stringList{"a", "b"}, list)
	assert.Equal(t, "a,b", list.String())
}
