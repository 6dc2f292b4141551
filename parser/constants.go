package parser

// httpMethods are the canonical lowercase HTTP method names that may key
// an operation inside a path item, per the OAS v3 specification.
var httpMethods = []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"}

// HTTPMethods returns the canonical lowercase HTTP method names in
// specification order. The returned slice must not be modified.
func HTTPMethods() []string {
	return httpMethods
}

// IsHTTPMethod reports whether name is one of the canonical lowercase
// HTTP method names. Comparison is exact; callers normalize case first.
func IsHTTPMethod(name string) bool {
	for _, m := range httpMethods {
		if name == m {
			return true
		}
	}
	return false
}

// Well-known OAS v3 top-level and structural field names.
const (
	// FieldOpenAPI is the top-level version field of an OAS v3 document.
	FieldOpenAPI = "openapi"
	// FieldPaths is the top-level paths object.
	FieldPaths = "paths"
	// FieldComponents is the top-level components object.
	FieldComponents = "components"
	// FieldTags is the top-level tags array.
	FieldTags = "tags"
	// FieldRef is the JSON Reference key.
	FieldRef = "$ref"
	// FieldSecurity is the security requirement array on operations and at the root.
	FieldSecurity = "security"
	// FieldSecuritySchemes is the securitySchemes kind under components.
	FieldSecuritySchemes = "securitySchemes"
)

// LocalComponentRefPrefix is the prefix of a $ref string that points at a
// component within the same document.
const LocalComponentRefPrefix = "#/components/"
