// Copyright Punit Mishra, 2026. All rights reserved.

// Package frontmatter extracts the leading "---"-delimited metadata block
// from a markdown document.
package frontmatter

import (
	"fmt"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"
)

const delimiter = "---"

// Fields is the decoded frontmatter mapping. Scalar values are stored as
// their source text (string) and sequences as []string; use the typed
// accessors instead of asserting directly.
type Fields map[string]any

// Parse splits src into frontmatter fields and the markdown body.
//
// The block is decoded at the YAML node level so scalars keep their
// source text: an unquoted date stays "2024-01-15" instead of resolving
// into a timestamp. Quotes around scalars and sequence elements are
// stripped by the decoder.
//
// When src does not begin with a --- line there is no frontmatter: Parse
// returns empty Fields, the full input as body, and no error. A block that
// is opened but never closed, whose contents are not valid YAML, or whose
// root is not a mapping returns a non-nil error; the caller decides
// whether to treat that as fatal or to fall back to empty metadata.
func Parse(src []byte) (Fields, []byte, error) {
	text := strings.ReplaceAll(string(src), "\r\n", "\n")
	lines := strings.Split(text, "\n")

	if len(lines) == 0 || strings.TrimSpace(lines[0]) != delimiter {
		return Fields{}, []byte(text), nil
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == delimiter {
			end = i
			break
		}
	}
	if end == -1 {
		return Fields{}, nil, fmt.Errorf("frontmatter block opened but never closed")
	}

	block := strings.Join(lines[1:end], "\n")
	body := strings.Join(lines[end+1:], "\n")
	body = strings.TrimPrefix(body, "\n")

	fields, err := decodeBlock(block)
	if err != nil {
		return Fields{}, nil, err
	}
	return fields, []byte(body), nil
}

// decodeBlock parses the inner YAML and flattens the root mapping into
// Fields, preserving scalar source text via node.Value.
func decodeBlock(block string) (Fields, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(block), &doc); err != nil {
		return nil, fmt.Errorf("decoding frontmatter: %w", err)
	}

	fields := Fields{}
	if len(doc.Content) == 0 {
		return fields, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("frontmatter is not a key/value mapping")
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value
		value := root.Content[i+1]

		switch value.Kind {
		case yaml.ScalarNode:
			fields[key] = value.Value
		case yaml.SequenceNode:
			items := make([]string, 0, len(value.Content))
			for _, item := range value.Content {
				items = append(items, strings.TrimSpace(item.Value))
			}
			fields[key] = items
		default:
			// Nested mappings have no recognized fields; skip them
			// rather than fail the whole block.
		}
	}
	return fields, nil
}

// Str returns the scalar value for key as its source text, or "" when the
// key is absent or holds a sequence.
func (f Fields) Str(key string) string {
	if s, ok := f[key].(string); ok {
		return s
	}
	return ""
}

// List returns the sequence value for key in source order, or nil when
// the key is absent or scalar.
func (f Fields) List(key string) []string {
	if items, ok := f[key].([]string); ok {
		return items
	}
	return nil
}

// Bool returns the boolean value for key, or false when absent or not a
// boolean literal.
func (f Fields) Bool(key string) bool {
	s, ok := f[key].(string)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(s)
	return err == nil && b
}
