// Package oasfilter provides tools for filtering OpenAPI Specification (OAS)
// v3 documents down to a selected subset of their surface.
//
// oasfilter reads an OpenAPI v3 document (YAML or JSON), keeps only the
// paths and operations that match a caller-supplied set of criteria, and
// writes the pruned document back out in the same surface format. Every
// component that is transitively referenced by a retained operation is kept;
// everything else is removed. Top-level tags and security schemes are pruned
// to the set actually used by the surviving operations.
//
// # Overview
//
// The library consists of two primary packages:
//
//   - parser: Load OAS v3 documents from files, stdin, or readers into an
//     order-preserving document tree, and marshal that tree back out
//   - filter: Select paths/operations by path pattern, HTTP method, tag,
//     and security scheme, and compute the reference closure of the result
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/oasfilter
//
// # Quick Start
//
// Filter a document down to the GET operations under /pets:
//
//	import (
//		"github.com/erraggy/oasfilter/filter"
//		"github.com/erraggy/oasfilter/parser"
//	)
//
//	result, err := filter.FilterWithOptions(
//		filter.WithFilePath("openapi.yaml"),
//		filter.WithCriteria(filter.Criteria{
//			Paths:   []string{"/pets/*"},
//			Methods: []string{"get"},
//		}),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, err := parser.MarshalNodeYAML(result.Document)
//
// # CLI
//
// The oasfilter command wraps the same core:
//
//	oasfilter --path '/pets/*' --method get api.yaml
//	cat api.json | oasfilter --tag store
//
// The output format always mirrors the input format, and the order of
// retained keys is preserved from the source document.
package oasfilter
