// Package filter prunes OpenAPI v3 documents down to the paths and
// operations that match a set of criteria, together with the transitive
// closure of components those operations reference.
//
// Filtering is a pure single-pass function over the document tree
// produced by the parser package. The input tree is never mutated; the
// filtered document is a new tree that shares unmodified subtrees with
// the source.
//
// The stages, in order:
//
//  1. Select paths and operations against the criteria
//  2. Rewrite retained operations, pruning their tags and security arrays
//  3. Collect every $ref under the pruned paths subtree
//  4. Build the component reference graph from the components section
//  5. Close over the graph to find every component that must survive
//  6. Project the components object down to the surviving components
//  7. Assemble the output document, preserving all untargeted fields
//
// # Usage
//
//	result, err := filter.FilterWithOptions(
//		filter.WithFilePath("openapi.yaml"),
//		filter.WithCriteria(filter.Criteria{Tags: []string{"pet"}}),
//	)
//
// A criteria set that retains nothing is not an error; the result is a
// well-formed document with an empty paths object.
package filter
