package keyset

import (
	"github.com/arthur-debert/keyset/internal/validation"
	"github.com/arthur-debert/keyset/types"
)

// Paginate computes the window for page/perPage over the collection's member
// count, returns a copy sliced to [offset, offset+limit) and attaches the
// window descriptor to that copy. The receiver keeps its full member set and
// carries no pagination state. Pages past the last yield an empty collection
// whose descriptor still reports the requested page.
func (c *Collection) Paginate(page, perPage int) (*Collection, error) {
	if err := validation.ValidatePage(types.PageRequest{Page: page, PerPage: perPage}); err != nil {
		return nil, err
	}
	p := types.NewPagination(c.Len(), page, perPage)
	out := c.Slice(p.Offset, p.Limit)
	out.pagination = p
	return out, nil
}

// Pagination returns the window descriptor attached by Paginate, or nil for
// a collection that was not produced by pagination.
func (c *Collection) Pagination() *types.Pagination {
	return c.pagination
}
