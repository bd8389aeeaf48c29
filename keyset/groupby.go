package keyset

import (
	"strings"

	"github.com/arthur-debert/keyset/types"
)

// GroupBy partitions the members into sub-collections keyed by the value of
// the named attribute. When caseInsensitive is true the group key is folded
// to lower case; member values are stored unchanged either way. Groups appear
// in first-seen order and each sub-collection shares the receiver's parent
// and preserves the original member keys.
//
// An empty field name fails with InvalidArgument (use GroupByFunc for
// computed discriminants). A member whose attribute resolves to an empty
// value fails the whole operation with InvalidGroupValue naming its key;
// grouping never silently drops members, and the receiver is never modified.
func (c *Collection) GroupBy(field string, caseInsensitive bool) (*Collection, error) {
	if field == "" {
		return nil, &types.InvalidArgumentError{
			Op:     "groupBy",
			Reason: "field name must be a non-empty string; use GroupByFunc for computed groups",
		}
	}
	return c.GroupByFunc(func(key string, member any) (string, error) {
		value := Attribute(member, field)
		if isEmptyValue(value) {
			return "", &types.InvalidGroupValueError{Key: key, Field: field}
		}
		name := valueToString(value)
		if caseInsensitive {
			name = strings.ToLower(name)
		}
		return name, nil
	})
}

// GroupByFunc partitions the members into sub-collections keyed by the value
// group returns for each member. Ordering and parent semantics match GroupBy.
func (c *Collection) GroupByFunc(group func(key string, member any) (string, error)) (*Collection, error) {
	groups := NewWithParent(c.parent)
	for _, p := range c.items.Pairs() {
		name, err := group(p.Key, p.Value)
		if err != nil {
			return nil, err
		}
		sub, ok := groups.Get(name).(*Collection)
		if !ok {
			sub = NewWithParent(c.parent)
			groups.AppendKeyed(name, sub)
		}
		sub.AppendKeyed(p.Key, p.Value)
	}
	return groups, nil
}
