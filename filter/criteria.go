package filter

import (
	"strings"

	"github.com/erraggy/oasfilter/oaserrors"
	"github.com/erraggy/oasfilter/parser"
)

// Criteria holds the four filtering axes. A nil or empty slice means
// "no restriction on that axis".
type Criteria struct {
	// Paths holds path name patterns. The only metacharacter is '*',
	// which matches any possibly empty run of characters; all other
	// characters match themselves. Patterns are anchored at both ends
	// and matched case-sensitively.
	Paths []string
	// Methods holds HTTP method names, matched case-insensitively
	// against the canonical lowercase names.
	Methods []string
	// Tags holds exact tag names.
	Tags []string
	// Security holds exact security scheme names.
	Security []string
}

// IsEmpty reports whether no axis carries a restriction.
func (c Criteria) IsEmpty() bool {
	return len(c.Paths) == 0 && len(c.Methods) == 0 && len(c.Tags) == 0 && len(c.Security) == 0
}

// Validate checks that every method name is a canonical HTTP method
// (after lowercasing). The filter core tolerates unknown methods (they
// simply never match); Validate lets callers surface typos early.
func (c Criteria) Validate() error {
	for _, m := range c.Methods {
		if !parser.IsHTTPMethod(strings.ToLower(m)) {
			return &oaserrors.ConfigError{
				Option:  "method",
				Value:   m,
				Message: "not an HTTP method name",
			}
		}
	}
	return nil
}

// allowSets is the normalized, set-based form of Criteria used by the
// filtering stages.
type allowSets struct {
	paths    []string
	methods  map[string]struct{}
	tags     map[string]struct{}
	security map[string]struct{}
}

// newAllowSets normalizes criteria: method names are lowercased, and
// tag/security names are deduplicated into sets.
func newAllowSets(c Criteria) allowSets {
	a := allowSets{paths: c.Paths}
	if len(c.Methods) > 0 {
		a.methods = make(map[string]struct{}, len(c.Methods))
		for _, m := range c.Methods {
			a.methods[strings.ToLower(m)] = struct{}{}
		}
	}
	if len(c.Tags) > 0 {
		a.tags = make(map[string]struct{}, len(c.Tags))
		for _, t := range c.Tags {
			a.tags[t] = struct{}{}
		}
	}
	if len(c.Security) > 0 {
		a.security = make(map[string]struct{}, len(c.Security))
		for _, s := range c.Security {
			a.security[s] = struct{}{}
		}
	}
	return a
}

// filterTags reports whether the tag axis is restricted.
func (a allowSets) filterTags() bool { return len(a.tags) > 0 }

// filterSecurity reports whether the security axis is restricted.
func (a allowSets) filterSecurity() bool { return len(a.security) > 0 }

// tagAllowed reports whether a tag survives the tag axis.
func (a allowSets) tagAllowed(tag string) bool {
	if !a.filterTags() {
		return true
	}
	_, ok := a.tags[tag]
	return ok
}

// securityAllowed reports whether a security scheme name survives the
// security axis.
func (a allowSets) securityAllowed(name string) bool {
	if !a.filterSecurity() {
		return true
	}
	_, ok := a.security[name]
	return ok
}

// methodAllowed reports whether an HTTP method name survives the method
// axis. The name must already be lowercase.
func (a allowSets) methodAllowed(method string) bool {
	if len(a.methods) == 0 {
		return true
	}
	_, ok := a.methods[method]
	return ok
}

// pathNameAllowed reports whether a path key survives the path-pattern
// axis.
func (a allowSets) pathNameAllowed(pathKey string) bool {
	if len(a.paths) == 0 {
		return true
	}
	for _, pattern := range a.paths {
		if matchWildcard(pattern, pathKey) {
			return true
		}
	}
	return false
}
