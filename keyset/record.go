package keyset

import (
	"fmt"

	"github.com/arthur-debert/keyset/types"
)

// Record is a map-backed member keyed by its "id" attribute. It is the
// convenience member type for loosely structured data (CLI input files, test
// fixtures); domain types implement types.Identified directly instead.
type Record map[string]any

var (
	_ types.Identified       = Record{}
	_ types.AttributeGetter  = Record{}
	_ types.ArrayConvertible = Record{}
)

// ID returns the record's "id" attribute coerced to string.
func (r Record) ID() string {
	return fmt.Sprintf("%v", r["id"])
}

// Attribute returns the named entry, or nil when absent.
func (r Record) Attribute(name string) any {
	return r[name]
}

// ToArray returns the record as a plain map.
func (r Record) ToArray() any {
	return map[string]any(r)
}
