package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Decode parses a schema document mapping field names to rule chains.
// JSON documents are accepted as YAML. A field value may be a chain string,
// a list of segments joined with "|", or null for an empty chain.
func Decode(data []byte) (map[string]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	if len(doc.Content) == 0 {
		return map[string]string{}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: expected a mapping of field names to rule chains", ErrDecode, root.Line)
	}

	out := make(map[string]string, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: field name must be a scalar", ErrDecode, key.Line)
		}
		if _, dup := out[key.Value]; dup {
			return nil, fmt.Errorf("%w: line %d: duplicate field %q", ErrDecode, key.Line, key.Value)
		}

		spec, err := chainValue(val)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrDecode, key.Value, err)
		}
		out[key.Value] = spec
	}
	return out, nil
}

func chainValue(n *yaml.Node) (string, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			return "", nil
		}
		if n.ShortTag() != "!!str" {
			return "", fmt.Errorf("line %d: rule chain must be a string, got %s", n.Line, strings.TrimPrefix(n.ShortTag(), "!!"))
		}
		return n.Value, nil
	case yaml.SequenceNode:
		segments := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			if item.Kind != yaml.ScalarNode {
				return "", fmt.Errorf("line %d: rule segment must be a scalar", item.Line)
			}
			segments = append(segments, item.Value)
		}
		return strings.Join(segments, "|"), nil
	default:
		return "", fmt.Errorf("line %d: rule chain must be a string or a list", n.Line)
	}
}

// Encode renders schema as a YAML document with fields in sorted order.
func Encode(schema map[string]string) ([]byte, error) {
	data, err := yaml.Marshal(schema)
	if err != nil {
		return nil, errors.Join(ErrEncode, err)
	}
	return data, nil
}

// DecodeRequest parses a JSON object into request data. Numbers are kept as
// json.Number so large and precise values reach the rules unchanged.
func DecodeRequest(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var req map[string]any
	if err := dec.Decode(&req); err != nil {
		return nil, errors.Join(ErrDecodeRequest, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: unexpected data after the request object", ErrDecodeRequest)
	}
	if req == nil {
		req = map[string]any{}
	}
	return req, nil
}

// DecodeRequestBytes is DecodeRequest over a byte slice.
func DecodeRequestBytes(data []byte) (map[string]any, error) {
	return DecodeRequest(bytes.NewReader(data))
}
