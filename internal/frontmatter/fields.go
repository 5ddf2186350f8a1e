package frontmatter

import (
	"bufio"
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"
)

// Fields is the flat, order-preserving key/value view of a frontmatter block.
//
// Values are always strings: quotes are stripped, nothing is coerced.
type Fields struct {
	keys   []string
	values map[string]string
}

// NewFields returns an empty Fields.
func NewFields() *Fields {
	return &Fields{values: map[string]string{}}
}

// Get returns the value stored for key.
func (f *Fields) Get(key string) (string, bool) {
	if f == nil {
		return "", false
	}
	v, ok := f.values[key]
	return v, ok
}

// Value returns the trimmed value for key, or "" when absent.
func (f *Fields) Value(key string) string {
	v, _ := f.Get(key)
	return strings.TrimSpace(v)
}

// Keys returns the keys in first-seen order.
func (f *Fields) Keys() []string {
	if f == nil {
		return nil
	}
	return append([]string(nil), f.keys...)
}

// Len returns the number of distinct keys.
func (f *Fields) Len() int {
	if f == nil {
		return 0
	}
	return len(f.keys)
}

// Set stores value under key. A repeated key keeps its original position.
func (f *Fields) Set(key, value string) {
	if _, exists := f.values[key]; !exists {
		f.keys = append(f.keys, key)
	}
	f.values[key] = value
}

// ParseFields parses a raw frontmatter block (without delimiters).
//
// Top-level scalar entries are read with the YAML node API. Non-scalar values
// are ignored. If the block is not valid YAML (for example `title: A: B`), a
// line-based `key: value` scan is used instead.
func ParseFields(raw []byte) *Fields {
	if fields, ok := parseYAMLFields(raw); ok {
		return fields
	}
	return scanFields(raw)
}

func parseYAMLFields(raw []byte) (*Fields, bool) {
	fields := NewFields()
	if len(bytes.TrimSpace(raw)) == 0 {
		return fields, true
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, false
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, false
	}
	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, false
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, val := mapping.Content[i], mapping.Content[i+1]
		if key.Kind != yaml.ScalarNode || val.Kind != yaml.ScalarNode {
			continue
		}
		value := val.Value
		if val.Tag == "!!null" {
			value = ""
		}
		fields.Set(strings.TrimSpace(key.Value), value)
	}
	return fields, true
}

func scanFields(raw []byte) *Fields {
	fields := NewFields()
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		fields.Set(strings.TrimSpace(key), stripQuotes(strings.TrimSpace(value)))
	}
	return fields
}

func stripQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
