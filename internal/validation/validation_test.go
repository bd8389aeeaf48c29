package validation_test

import (
	"errors"
	"testing"

	"github.com/arthur-debert/keyset/internal/validation"
	"github.com/arthur-debert/keyset/types"
)

func intPtr(n int) *int { return &n }

func TestValidateQuery(t *testing.T) {
	tests := []struct {
		name    string
		q       types.Query
		wantErr bool
	}{
		{"empty query", types.Query{}, false},
		{"valid stages", types.Query{
			Filters: map[string]any{"status": "active"},
			OrderBy: []types.OrderClause{{Column: "rank"}},
			Offset:  intPtr(0),
			Limit:   intPtr(10),
		}, false},
		{"empty filter field", types.Query{Filters: map[string]any{"": "x"}}, true},
		{"empty order column", types.Query{OrderBy: []types.OrderClause{{}}}, true},
		{"negative offset", types.Query{Offset: intPtr(-1)}, true},
		{"negative limit", types.Query{Limit: intPtr(-1)}, true},
		{"negative max results", types.Query{
			Search: &types.SearchRequest{Query: "x", MaxResults: intPtr(-1)},
		}, true},
		{"bad page", types.Query{Paginate: &types.PageRequest{Page: 0, PerPage: 5}}, true},
		{"bad per-page", types.Query{Paginate: &types.PageRequest{Page: 1, PerPage: 0}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.ValidateQuery(tt.q)
			if tt.wantErr {
				var argErr *types.InvalidArgumentError
				if !errors.As(err, &argErr) {
					t.Errorf("expected InvalidArgumentError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}
