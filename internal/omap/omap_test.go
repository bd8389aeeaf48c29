package omap_test

import (
	"reflect"
	"testing"

	"github.com/arthur-debert/keyset/internal/omap"
)

func TestSetPreservesInsertionOrder(t *testing.T) {
	m := omap.New()
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("c", 3)

	want := []string{"b", "a", "c"}
	if got := m.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected keys %v, got %v", want, got)
	}

	// Overwriting keeps the original position
	m.Set("a", 9)
	if got := m.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected keys %v after overwrite, got %v", want, got)
	}
	if v, _ := m.Get("a"); v != 9 {
		t.Errorf("expected overwritten value 9, got %v", v)
	}
}

func TestUnset(t *testing.T) {
	m := omap.New()
	m.Set("a", 1)
	m.Set("b", 2)

	m.Unset("a")
	if m.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", m.Len())
	}
	if _, ok := m.Get("a"); ok {
		t.Error("expected a to be gone")
	}

	// Unsetting an absent key is a no-op
	m.Unset("missing")
	if m.Len() != 1 {
		t.Errorf("expected 1 entry after no-op unset, got %d", m.Len())
	}
}

func TestPrepend(t *testing.T) {
	m := omap.New()
	m.Set("a", 1)
	m.Set("b", 2)

	m.Prepend("c", 3)
	want := []string{"c", "a", "b"}
	if got := m.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected keys %v, got %v", want, got)
	}

	// Prepending an existing key moves it to the front
	m.Prepend("b", 20)
	want = []string{"b", "c", "a"}
	if got := m.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected keys %v, got %v", want, got)
	}
	if v, _ := m.Get("b"); v != 20 {
		t.Errorf("expected moved value 20, got %v", v)
	}
}

func TestClone(t *testing.T) {
	m := omap.New()
	m.Set("a", 1)

	clone := m.Clone()
	clone.Set("b", 2)
	clone.Unset("a")

	if m.Len() != 1 {
		t.Errorf("expected the original to keep 1 entry, got %d", m.Len())
	}
	if _, ok := m.Get("a"); !ok {
		t.Error("expected the original to keep a")
	}
}

func TestSlice(t *testing.T) {
	m := omap.New()
	for _, k := range []string{"a", "b", "c", "d"} {
		m.Set(k, k)
	}

	tests := []struct {
		name          string
		offset, limit int
		want          []string
	}{
		{"middle window", 1, 2, []string{"b", "c"}},
		{"negative limit means rest", 2, -1, []string{"c", "d"}},
		{"offset past end", 10, 2, []string{}},
		{"limit past end", 3, 5, []string{"d"}},
		{"zero limit", 0, 0, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Slice(tt.offset, tt.limit).Keys()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Slice(%d, %d): expected %v, got %v", tt.offset, tt.limit, tt.want, got)
			}
		})
	}
}

func TestFilterBy(t *testing.T) {
	m := omap.New()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	out := m.FilterBy(func(_ string, v any) bool { return v.(int) != 2 })
	want := []string{"a", "c"}
	if got := out.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected keys %v, got %v", want, got)
	}
	if m.Len() != 3 {
		t.Error("expected the source to be untouched")
	}
}

func TestSortByIsStable(t *testing.T) {
	m := omap.New()
	m.Set("a", 2)
	m.Set("b", 1)
	m.Set("c", 2)
	m.Set("d", 1)

	out := m.SortBy(func(x, y omap.Pair) bool { return x.Value.(int) < y.Value.(int) })
	want := []string{"b", "d", "a", "c"}
	if got := out.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected keys %v, got %v", want, got)
	}
}

func TestNextIndex(t *testing.T) {
	m := omap.New()
	if got := m.NextIndex(); got != "0" {
		t.Errorf("expected first index 0, got %q", got)
	}

	m.AppendIndexed("x")
	m.AppendIndexed("y")
	if got := m.NextIndex(); got != "2" {
		t.Errorf("expected next index 2, got %q", got)
	}

	// The next slot is one past the highest integer key, even after removals
	m.Unset("0")
	if got := m.NextIndex(); got != "2" {
		t.Errorf("expected next index 2 after removing 0, got %q", got)
	}
	m.Set("7", "z")
	if got := m.NextIndex(); got != "8" {
		t.Errorf("expected next index 8, got %q", got)
	}

	// Non-integer keys are ignored
	m.Set("alpha", "w")
	if got := m.NextIndex(); got != "8" {
		t.Errorf("expected next index 8 with non-integer keys, got %q", got)
	}
}
