// Package validation checks query descriptors before evaluation so that
// stage implementations can assume well-formed input.
package validation

import (
	"github.com/arthur-debert/keyset/types"
)

// ValidateQuery checks a query descriptor for consistency.
func ValidateQuery(q types.Query) error {
	for field := range q.Filters {
		if field == "" {
			return &types.InvalidArgumentError{Op: "query", Reason: "filter field names cannot be empty"}
		}
	}
	for _, clause := range q.OrderBy {
		if clause.Column == "" {
			return &types.InvalidArgumentError{Op: "query", Reason: "order clauses must name a column"}
		}
	}
	if q.Offset != nil && *q.Offset < 0 {
		return &types.InvalidArgumentError{Op: "query", Reason: "offset cannot be negative"}
	}
	if q.Limit != nil && *q.Limit < 0 {
		return &types.InvalidArgumentError{Op: "query", Reason: "limit cannot be negative"}
	}
	if q.Search != nil {
		if q.Search.MaxResults != nil && *q.Search.MaxResults < 0 {
			return &types.InvalidArgumentError{Op: "query", Reason: "search max results cannot be negative"}
		}
	}
	if q.Paginate != nil {
		if err := ValidatePage(*q.Paginate); err != nil {
			return err
		}
	}
	return nil
}

// ValidatePage checks a page request.
func ValidatePage(p types.PageRequest) error {
	if p.Page < 1 {
		return &types.InvalidArgumentError{Op: "paginate", Reason: "page must be 1 or greater"}
	}
	if p.PerPage < 1 {
		return &types.InvalidArgumentError{Op: "paginate", Reason: "per-page must be positive"}
	}
	return nil
}
