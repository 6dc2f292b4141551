package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasfilter/oaserrors"
)

// MarshalNode marshals a document node tree in the given surface format.
// Unknown formats marshal as YAML.
func MarshalNode(root *yaml.Node, format SourceFormat) ([]byte, error) {
	if format == SourceFormatJSON {
		return MarshalNodeJSON(root)
	}
	return MarshalNodeYAML(root)
}

// MarshalNodeYAML marshals a document node tree to YAML, keeping fields
// in the order they appear in the tree.
func MarshalNodeYAML(root *yaml.Node) ([]byte, error) {
	data, err := yaml.Marshal(root)
	if err != nil {
		return nil, &oaserrors.SerializeError{Format: string(SourceFormatYAML), Cause: err}
	}
	return data, nil
}

// MarshalNodeJSON marshals a document node tree to indented JSON, keeping
// fields in the order they appear in the tree. encoding/json cannot be
// used directly because it sorts map keys; the writer walks the node
// tree instead.
func MarshalNodeJSON(root *yaml.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeNodeJSON(&buf, root); err != nil {
		return nil, &oaserrors.SerializeError{Format: string(SourceFormatJSON), Cause: err}
	}

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, &oaserrors.SerializeError{Format: string(SourceFormatJSON), Cause: err}
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// writeNodeJSON writes a yaml.Node to the buffer as compact JSON.
func writeNodeJSON(buf *bytes.Buffer, node *yaml.Node) error {
	node = Resolve(node)
	if node == nil {
		buf.WriteString("null")
		return nil
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return writeNodeJSON(buf, node.Content[0])

	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(node.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			key := Resolve(node.Content[i])
			if key == nil || key.Kind != yaml.ScalarNode {
				return fmt.Errorf("mapping key at line %d is not a scalar", node.Line)
			}
			keyJSON, err := json.Marshal(key.Value)
			if err != nil {
				return err
			}
			buf.Write(keyJSON)
			buf.WriteByte(':')
			if err := writeNodeJSON(buf, node.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range node.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeNodeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	case yaml.ScalarNode:
		return writeScalarJSON(buf, node)

	default:
		return fmt.Errorf("unsupported node kind %d at line %d", node.Kind, node.Line)
	}
}

// writeScalarJSON writes a scalar node as a JSON value based on its
// resolved YAML tag. Scalars that have no faithful JSON representation
// (hex integers, infinities) fall back to their string form.
func writeScalarJSON(buf *bytes.Buffer, node *yaml.Node) error {
	switch node.Tag {
	case "!!null":
		buf.WriteString("null")
		return nil

	case "!!bool":
		b, err := strconv.ParseBool(strings.ToLower(node.Value))
		if err != nil {
			return writeStringJSON(buf, node.Value)
		}
		buf.WriteString(strconv.FormatBool(b))
		return nil

	case "!!int":
		// Base 0 accepts the 0x/0o forms YAML resolves as integers;
		// the output is always decimal.
		if i, err := strconv.ParseInt(node.Value, 0, 64); err == nil {
			buf.WriteString(strconv.FormatInt(i, 10))
			return nil
		}
		if u, err := strconv.ParseUint(node.Value, 0, 64); err == nil {
			buf.WriteString(strconv.FormatUint(u, 10))
			return nil
		}
		return writeStringJSON(buf, node.Value)

	case "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return writeStringJSON(buf, node.Value)
		}
		buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
		return nil

	default:
		return writeStringJSON(buf, node.Value)
	}
}

// writeStringJSON writes a string as a quoted JSON string.
func writeStringJSON(buf *bytes.Buffer, s string) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(data)
	return nil
}
