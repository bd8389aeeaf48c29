// Package keyset provides a generic, identity-aware, insertion-ordered
// collection with composable declarative queries: filter, sort, exclude,
// search, paginate, and grouping.
//
// Members are stored under string keys. A member implementing
// types.Identified is keyed by its ID; any other member is appended under a
// positional key. Add, Append, Prepend and Remove mutate the collection in
// place and are not safe for concurrent callers; Not, Filter, SortBy, Slice,
// GroupBy, Search, Paginate and Query return new collections and leave the
// receiver untouched.
package keyset

import (
	"github.com/arthur-debert/keyset/internal/omap"
	"github.com/arthur-debert/keyset/types"
)

// Collection is an ordered mapping from string key to member value.
type Collection struct {
	items  *omap.Map
	parent any
	// pagination is transient derived state set by Paginate on the sliced
	// copy it returns.
	pagination *types.Pagination
}

// New creates a collection from an ordered sequence of members. Members are
// added with Add semantics: identified members are keyed by their ID, other
// members positionally.
func New(members ...any) *Collection {
	return NewWithParent(nil, members...)
}

// NewWithParent creates a collection holding a back-reference to parent.
// The collection does not own the parent; it is only consulted for
// contextual operations such as grouping, which constructs sub-collections
// with the same parent.
func NewWithParent(parent any, members ...any) *Collection {
	c := &Collection{items: omap.New(), parent: parent}
	for _, m := range members {
		c.Add(m)
	}
	return c
}

// Parent returns the collection's parent back-reference, if any.
func (c *Collection) Parent() any {
	return c.parent
}

// Len returns the number of members.
func (c *Collection) Len() int {
	return c.items.Len()
}

// IsEmpty reports whether the collection holds no members.
func (c *Collection) IsEmpty() bool {
	return c.items.Len() == 0
}

// Keys returns the member keys in insertion order.
func (c *Collection) Keys() []string {
	return c.items.Keys()
}

// Values returns the members in insertion order.
func (c *Collection) Values() []any {
	return c.items.Values()
}

// Get returns the member stored under key, or nil if absent.
func (c *Collection) Get(key string) any {
	v, _ := c.items.Get(key)
	return v
}

// First returns the first member in insertion order, or nil when empty.
func (c *Collection) First() any {
	keys := c.items.Keys()
	if len(keys) == 0 {
		return nil
	}
	return c.Get(keys[0])
}

// Last returns the last member in insertion order, or nil when empty.
func (c *Collection) Last() any {
	keys := c.items.Keys()
	if len(keys) == 0 {
		return nil
	}
	return c.Get(keys[len(keys)-1])
}

// Clone returns a shallow copy sharing member values but not key order or
// pagination state.
func (c *Collection) Clone() *Collection {
	return &Collection{items: c.items.Clone(), parent: c.parent}
}

// resolveKey derives the collection key for a value: an Identified member
// yields its ID, a string is already a key. Collections have no single key;
// callers that accept them (Add, Not) handle them before calling this.
func resolveKey(v any) (string, error) {
	switch m := v.(type) {
	case types.Identified:
		return m.ID(), nil
	case string:
		return m, nil
	}
	return "", &types.InvalidKeyError{Value: v}
}

// Add inserts a value and returns the receiver. Three cases, checked in
// order: another Collection merges its keyed contents (later entries win on
// key collision, keys are not re-derived); an identified member is inserted
// under its ID; anything else is appended positionally.
func (c *Collection) Add(v any) *Collection {
	switch m := v.(type) {
	case *Collection:
		for _, p := range m.items.Pairs() {
			c.items.Set(p.Key, p.Value)
		}
	case types.Identified:
		c.items.Set(m.ID(), v)
	default:
		c.items.AppendIndexed(v)
	}
	return c
}

// Append inserts a member after all existing entries: under its ID when it
// is identified, under the next positional key otherwise. Use AppendKeyed to
// place an anonymous member under an explicit key.
func (c *Collection) Append(member any) *Collection {
	if m, ok := member.(types.Identified); ok {
		c.items.Set(m.ID(), member)
		return c
	}
	c.items.AppendIndexed(member)
	return c
}

// AppendKeyed inserts member under an explicit key, bypassing identity
// derivation.
func (c *Collection) AppendKeyed(key string, member any) *Collection {
	c.items.Set(key, member)
	return c
}

// Prepend inserts a member before all existing entries, preserving their
// relative order. Key derivation follows Append.
func (c *Collection) Prepend(member any) *Collection {
	if m, ok := member.(types.Identified); ok {
		c.items.Prepend(m.ID(), member)
		return c
	}
	c.items.Prepend(c.items.NextIndex(), member)
	return c
}

// PrependKeyed inserts member under an explicit key before all existing
// entries.
func (c *Collection) PrependKeyed(key string, member any) *Collection {
	c.items.Prepend(key, member)
	return c
}

// Remove unsets the entry for a key or identified member. Removing an absent
// entry is a no-op.
func (c *Collection) Remove(keyOrMember any) error {
	key, err := resolveKey(keyOrMember)
	if err != nil {
		return err
	}
	c.items.Unset(key)
	return nil
}

// Has reports whether the collection holds an entry for the key or
// identified member.
func (c *Collection) Has(keyOrMember any) (bool, error) {
	key, err := resolveKey(keyOrMember)
	if err != nil {
		return false, err
	}
	_, ok := c.items.Get(key)
	return ok, nil
}

// IndexOf returns the insertion-order position of the key or identified
// member, or -1 when absent.
func (c *Collection) IndexOf(keyOrMember any) (int, error) {
	key, err := resolveKey(keyOrMember)
	if err != nil {
		return -1, err
	}
	for i, k := range c.items.Keys() {
		if k == key {
			return i, nil
		}
	}
	return -1, nil
}

// Not returns a copy with the listed entries removed. Arguments may mix
// string keys, identified members and nested Collections; a nested
// Collection is expanded into its own keys. The receiver is untouched.
func (c *Collection) Not(keysOrMembers ...any) (*Collection, error) {
	out := c.Clone()
	for _, v := range keysOrMembers {
		if nested, ok := v.(*Collection); ok {
			keys := nested.Keys()
			expanded := make([]any, len(keys))
			for i, k := range keys {
				expanded[i] = k
			}
			narrowed, err := out.Not(expanded...)
			if err != nil {
				return nil, err
			}
			out = narrowed
			continue
		}
		key, err := resolveKey(v)
		if err != nil {
			return nil, err
		}
		out.items.Unset(key)
	}
	return out, nil
}

// Filter returns a new collection holding only the members for which keep
// returns true, in the original order.
func (c *Collection) Filter(keep func(key string, member any) bool) *Collection {
	return &Collection{items: c.items.FilterBy(keep), parent: c.parent}
}

// Slice returns a new collection holding the members in
// [offset, offset+limit). A negative limit means "to the end".
func (c *Collection) Slice(offset, limit int) *Collection {
	return &Collection{items: c.items.Slice(offset, limit), parent: c.parent}
}

// ToArray serializes the members to a plain ordered structure. mapFn is
// applied per member; when nil, members implementing types.ArrayConvertible
// serialize themselves and other members pass through unchanged. The
// collection is not mutated.
func (c *Collection) ToArray(mapFn func(key string, member any) any) []any {
	if mapFn == nil {
		mapFn = func(_ string, member any) any {
			if ac, ok := member.(types.ArrayConvertible); ok {
				return ac.ToArray()
			}
			return member
		}
	}
	out := make([]any, 0, c.items.Len())
	for _, p := range c.items.Pairs() {
		out = append(out, mapFn(p.Key, p.Value))
	}
	return out
}
