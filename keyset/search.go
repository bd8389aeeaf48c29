package keyset

import (
	"strings"

	"github.com/arthur-debert/keyset/search"
	"github.com/arthur-debert/keyset/types"
)

// Search returns a new collection holding only the members matching the
// free-text query, ordered by relevance (or original order via
// opts.PreserveOrder). A blank query returns an unfiltered copy. The receiver
// is never modified.
func (c *Collection) Search(query string, opts search.Options) (*Collection, error) {
	if strings.TrimSpace(query) == "" {
		return c.Clone(), nil
	}

	items := make([]search.Item, 0, c.Len())
	for _, p := range c.items.Pairs() {
		items = append(items, search.Item{Key: p.Key, Value: p.Value})
	}

	engine := search.NewEngine(Attribute, attributeNames)
	results, err := engine.Search(items, query, opts)
	if err != nil {
		return nil, err
	}

	out := NewWithParent(c.parent)
	for _, r := range results {
		out.AppendKeyed(r.Item.Key, r.Item.Value)
	}
	return out, nil
}

// SearchBy runs the search stage of a query descriptor.
func (c *Collection) SearchBy(req types.SearchRequest) (*Collection, error) {
	return c.Search(req.Query, search.Options{
		Fields:        req.Fields,
		CaseSensitive: req.CaseSensitive,
		ExactMatch:    req.ExactMatch,
		PreserveOrder: req.PreserveOrder,
		MaxResults:    req.MaxResults,
	})
}
