// Package parser loads OpenAPI v3 documents into an order-preserving
// document tree and marshals that tree back to its surface format.
//
// Documents are represented as *yaml.Node trees (go.yaml.in/yaml/v4)
// rather than typed structs. The node tree keeps the original key order
// for both YAML and JSON sources, round-trips arbitrary x-* extension
// fields, and is the representation the filter package operates on.
//
// # Usage
//
//	p := parser.New()
//	result, err := p.Parse("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("OAS version: %s, %d paths\n", result.Version, result.Stats.PathCount)
//
//	out, err := parser.MarshalNode(result.Root, result.SourceFormat)
//
// Use "-" as the path to read from stdin; the format is then detected
// from the content (JSON is attempted first, then YAML).
package parser
