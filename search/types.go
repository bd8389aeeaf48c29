// Package search ranks ordered keyed members against a free-text query by
// substring relevance. It is decoupled from the collection type: callers pass
// the entries to search plus a function that resolves member attributes.
package search

// Item is one keyed entry to search.
type Item struct {
	Key   string
	Value any
}

// AttributeFunc resolves a named attribute off a member. The keyset package
// supplies its attribute accessor here so boxed values are unwrapped before
// matching.
type AttributeFunc func(member any, field string) any

// FieldsFunc enumerates the searchable attribute names of a member when the
// caller did not restrict fields explicitly.
type FieldsFunc func(member any) []string

// Options configures search behavior
type Options struct {
	// Fields specifies which attributes to search in.
	// Empty searches every attribute the member enumerates.
	Fields []string

	// CaseSensitive controls whether search is case-sensitive
	CaseSensitive bool

	// ExactMatch requires the entire attribute value to match the query.
	// When false, performs partial/substring matching.
	ExactMatch bool

	// PreserveOrder keeps results in input order instead of score order
	PreserveOrder bool

	// MaxResults limits the number of results; nil means no limit
	MaxResults *int
}

// Result represents a match with metadata
type Result struct {
	// Item is the matched entry
	Item Item

	// Score represents match relevance (0.0 to 1.0, higher is better)
	Score float64

	// MatchedFields lists all attributes that contained matches
	MatchedFields []string
}

// Searcher defines the main search interface
type Searcher interface {
	// Search ranks the items against the query and returns the matches
	Search(items []Item, query string, options Options) ([]Result, error)
}
