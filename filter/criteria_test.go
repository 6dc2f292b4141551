package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasfilter/oaserrors"
)

func TestCriteriaIsEmpty(t *testing.T) {
	assert.True(t, Criteria{}.IsEmpty())
	assert.False(t, Criteria{Paths: []string{"/pets"}}.IsEmpty())
	assert.False(t, Criteria{Methods: []string{"get"}}.IsEmpty())
	assert.False(t, Criteria{Tags: []string{"pets"}}.IsEmpty())
	assert.False(t, Criteria{Security: []string{"apiKey"}}.IsEmpty())
}

func TestCriteriaValidate(t *testing.T) {
	assert.NoError(t, Criteria{}.Validate())
	assert.NoError(t, Criteria{Methods: []string{"get", "POST", "Delete"}}.Validate())

	err := Criteria{Methods: []string{"teapot"}}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrConfig)
	var cfgErr *oaserrors.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "teapot", cfgErr.Value)
}

func TestAllowSetsNormalization(t *testing.T) {
	a := newAllowSets(Criteria{Methods: []string{"GET", "Post"}})
	assert.True(t, a.methodAllowed("get"))
	assert.True(t, a.methodAllowed("post"))
	assert.False(t, a.methodAllowed("delete"))
}

func TestAllowSetsVacuousAxes(t *testing.T) {
	a := newAllowSets(Criteria{})
	assert.True(t, a.methodAllowed("get"))
	assert.True(t, a.tagAllowed("anything"))
	assert.True(t, a.securityAllowed("anything"))
	assert.True(t, a.pathNameAllowed("/anything"))
	assert.False(t, a.filterTags())
	assert.False(t, a.filterSecurity())
}

func TestPathNameAllowedAnyPattern(t *testing.T) {
	a := newAllowSets(Criteria{Paths: []string{"/pets", "/store/*"}})
	assert.True(t, a.pathNameAllowed("/pets"))
	assert.True(t, a.pathNameAllowed("/store/orders"))
	assert.False(t, a.pathNameAllowed("/users"))
}
