package types

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// OrderClause represents a single ordering clause
type OrderClause struct {
	Column     string `json:"column" yaml:"column"`
	Descending bool   `json:"descending,omitempty" yaml:"descending,omitempty"`
}

// Query is a declarative description of the stages to apply in one call.
// Every stage is optional. Filters, Where, OrderBy, Not, Offset and Limit
// form the base evaluation; Search runs on the already-narrowed result, and
// Paginate runs last.
type Query struct {
	// Filters matches member attributes by equality.
	// Value can be a single value or a slice of values (IN-style matching).
	// Example: {"status": []string{"active", "pending"}, "priority": "high"}
	Filters map[string]any `json:"filters,omitempty" yaml:"filters,omitempty"`

	// Where is an expression evaluated per member against its attributes.
	// Members for which it yields true are kept.
	// Example: `priority == "high" && done != true`
	Where string `json:"where,omitempty" yaml:"where,omitempty"`

	// OrderBy specifies the order of results
	OrderBy []OrderClause `json:"order_by,omitempty" yaml:"order_by,omitempty"`

	// Not lists keys (or Identified members) to exclude.
	Not []any `json:"not,omitempty" yaml:"not,omitempty"`

	// Offset specifies the number of results to skip.
	// nil means no offset (start from beginning).
	Offset *int `json:"offset,omitempty" yaml:"offset,omitempty"`

	// Limit specifies the maximum number of results to return.
	// nil means no limit; 0 returns no results.
	Limit *int `json:"limit,omitempty" yaml:"limit,omitempty"`

	// Search narrows the base result by free-text relevance.
	Search *SearchRequest `json:"search,omitempty" yaml:"search,omitempty"`

	// Paginate slices the final result to one page window.
	Paginate *PageRequest `json:"paginate,omitempty" yaml:"paginate,omitempty"`
}

// SearchRequest describes the search stage of a query. In YAML it accepts
// either a plain scalar (the query text, default options) or a mapping with
// explicit options.
type SearchRequest struct {
	// Query is the search term(s) to look for
	Query string `json:"query" yaml:"query"`

	// Fields restricts which attributes are searched; empty searches all.
	Fields []string `json:"fields,omitempty" yaml:"fields,omitempty"`

	// CaseSensitive controls whether search is case-sensitive
	CaseSensitive bool `json:"case_sensitive,omitempty" yaml:"case_sensitive,omitempty"`

	// ExactMatch requires the entire attribute value to match the query
	ExactMatch bool `json:"exact_match,omitempty" yaml:"exact_match,omitempty"`

	// PreserveOrder keeps matches in collection order instead of score order
	PreserveOrder bool `json:"preserve_order,omitempty" yaml:"preserve_order,omitempty"`

	// MaxResults limits the number of matches; nil means no limit
	MaxResults *int `json:"max_results,omitempty" yaml:"max_results,omitempty"`
}

// UnmarshalYAML accepts both the scalar and the mapping shape:
//
//	search: milk
//	search: {query: milk, exact_match: true}
func (r *SearchRequest) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return value.Decode(&r.Query)
	}
	type plain SearchRequest
	return value.Decode((*plain)(r))
}

// PageRequest asks for one page of results
type PageRequest struct {
	Page    int `json:"page" yaml:"page"`
	PerPage int `json:"per_page" yaml:"per_page"`
}

// Pagination describes the window a paginated collection was sliced to. It is
// attached to the sliced collection for later inspection and is not part of
// the collection's member data.
type Pagination struct {
	Page    int // current page, 1-based
	PerPage int // requested page size
	Total   int // member count before slicing
	Pages   int // total number of pages
	Offset  int // index of the first member in the window
	Limit   int // window size
}

// NewPagination computes the window for page/perPage over total members.
// Pages beyond the last yield an empty window but keep the requested page
// number, so callers can report an out-of-range page instead of wrapping.
func NewPagination(total, page, perPage int) *Pagination {
	pages := 0
	if perPage > 0 {
		pages = (total + perPage - 1) / perPage
	}
	return &Pagination{
		Page:    page,
		PerPage: perPage,
		Total:   total,
		Pages:   pages,
		Offset:  (page - 1) * perPage,
		Limit:   perPage,
	}
}

// HasPrevPage reports whether a page precedes the current one.
func (p *Pagination) HasPrevPage() bool {
	return p.Page > 1
}

// HasNextPage reports whether a page follows the current one.
func (p *Pagination) HasNextPage() bool {
	return p.Page < p.Pages
}

// String returns a short human-readable window description.
func (p *Pagination) String() string {
	return fmt.Sprintf("page %d/%d (%d per page, %d total)", p.Page, p.Pages, p.PerPage, p.Total)
}
