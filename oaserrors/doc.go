// Package oaserrors provides structured error types for oasfilter.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - InputError: Unreadable input sources (missing files, permissions, read failures)
//   - ParseError: YAML/JSON parsing failures and documents that are not OAS v3 shaped
//   - SerializeError: Failures while marshaling a filtered document back out
//   - ConfigError: Invalid configuration or input options
//
// # Usage with errors.Is
//
//	result, err := filter.FilterWithOptions(filter.WithFilePath("api.yaml"))
//	if err != nil {
//	    if errors.Is(err, oaserrors.ErrParse) {
//	        // The input was readable but not a parseable OAS v3 document
//	    }
//	}
package oaserrors
