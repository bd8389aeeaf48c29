package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/keyset/keyset"
)

// loadCollection reads the member file (YAML, or JSON via the YAML parser)
// and builds a collection of records. Members without an "id" entry get a
// generated one so every result stays addressable by key.
func loadCollection(path string) (*keyset.Collection, error) {
	if path == "" {
		return nil, fmt.Errorf("input path is required (--input or KEYSET_INPUT)")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read member file: %w", err)
	}

	var raw []map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse member file: %w", err)
	}

	c := keyset.New()
	for _, m := range raw {
		if m == nil {
			continue
		}
		if _, ok := m["id"]; !ok {
			m["id"] = uuid.New().String()
		}
		c.Append(keyset.Record(m))
	}
	return c, nil
}
