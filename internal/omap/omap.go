// Package omap provides an insertion-ordered map keyed by string. It is the
// storage primitive the keyset collection builds on: iteration, slicing and
// serialization all depend on its key order.
package omap

import (
	"sort"
	"strconv"
)

// Pair is one keyed entry.
type Pair struct {
	Key   string
	Value any
}

// Map is an insertion-ordered string-keyed map. The zero value is not usable;
// construct with New.
type Map struct {
	keys   []string
	values map[string]any
}

// New creates an empty map.
func New() *Map {
	return &Map{values: make(map[string]any)}
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.keys)
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set stores value under key. An existing key keeps its position; a new key
// is appended after all existing entries.
func (m *Map) Set(key string, value any) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Prepend stores value under key before all existing entries, preserving
// their relative order. An existing key is moved to the front.
func (m *Map) Prepend(key string, value any) {
	if _, ok := m.values[key]; ok {
		m.remove(key)
	}
	m.keys = append([]string{key}, m.keys...)
	m.values[key] = value
}

// Unset removes the entry stored under key. Removing an absent key is a
// no-op.
func (m *Map) Unset(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	m.remove(key)
	delete(m.values, key)
}

func (m *Map) remove(key string) {
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			return
		}
	}
}

// Keys returns the keys in insertion order. The slice is a copy.
func (m *Map) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Values returns the values in insertion order.
func (m *Map) Values() []any {
	values := make([]any, 0, len(m.keys))
	for _, k := range m.keys {
		values = append(values, m.values[k])
	}
	return values
}

// Pairs returns the entries in insertion order.
func (m *Map) Pairs() []Pair {
	pairs := make([]Pair, 0, len(m.keys))
	for _, k := range m.keys {
		pairs = append(pairs, Pair{Key: k, Value: m.values[k]})
	}
	return pairs
}

// Clone returns a shallow copy: keys and order are copied, values are shared.
func (m *Map) Clone() *Map {
	out := &Map{
		keys:   make([]string, len(m.keys)),
		values: make(map[string]any, len(m.values)),
	}
	copy(out.keys, m.keys)
	for k, v := range m.values {
		out.values[k] = v
	}
	return out
}

// Slice returns a new map holding the entries in [offset, offset+limit).
// Offsets beyond the end yield an empty map; a negative limit means "to the
// end".
func (m *Map) Slice(offset, limit int) *Map {
	out := New()
	if offset < 0 {
		offset = 0
	}
	if offset >= len(m.keys) {
		return out
	}
	end := len(m.keys)
	if limit >= 0 && offset+limit < end {
		end = offset + limit
	}
	for _, k := range m.keys[offset:end] {
		out.Set(k, m.values[k])
	}
	return out
}

// FilterBy returns a new map holding only the entries for which keep returns
// true, in the original order.
func (m *Map) FilterBy(keep func(key string, value any) bool) *Map {
	out := New()
	for _, k := range m.keys {
		if keep(k, m.values[k]) {
			out.Set(k, m.values[k])
		}
	}
	return out
}

// SortBy returns a new map with the entries reordered by less. The sort is
// stable: entries that compare equal keep their relative order.
func (m *Map) SortBy(less func(a, b Pair) bool) *Map {
	pairs := m.Pairs()
	sort.SliceStable(pairs, func(i, j int) bool {
		return less(pairs[i], pairs[j])
	})
	out := New()
	for _, p := range pairs {
		out.Set(p.Key, p.Value)
	}
	return out
}

// NextIndex returns the next free positional key: one past the highest
// integer key currently present, or "0" for a map without integer keys.
func (m *Map) NextIndex() string {
	next := 0
	for _, k := range m.keys {
		if n, err := strconv.Atoi(k); err == nil && n >= next {
			next = n + 1
		}
	}
	return strconv.Itoa(next)
}

// AppendIndexed appends value under the next free positional key and returns
// that key.
func (m *Map) AppendIndexed(value any) string {
	key := m.NextIndex()
	m.Set(key, value)
	return key
}
