package keyset_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/arthur-debert/keyset/testutil"
	"github.com/arthur-debert/keyset/types"
)

func TestPaginate(t *testing.T) {
	c, _ := testutil.NewUniverse()

	t.Run("first page", func(t *testing.T) {
		page, err := c.Paginate(1, 2)
		if err != nil {
			t.Fatalf("Paginate failed: %v", err)
		}
		if got := page.Keys(); !reflect.DeepEqual(got, []string{"t1", "t2"}) {
			t.Errorf("expected [t1 t2], got %v", got)
		}

		p := page.Pagination()
		if p == nil {
			t.Fatal("expected pagination state")
		}
		if p.Total != 5 || p.Pages != 3 || p.Offset != 0 || p.Limit != 2 {
			t.Errorf("unexpected window: %+v", p)
		}
		if p.HasPrevPage() {
			t.Error("expected no previous page")
		}
		if !p.HasNextPage() {
			t.Error("expected a next page")
		}
	})

	t.Run("last short page", func(t *testing.T) {
		page, err := c.Paginate(3, 2)
		if err != nil {
			t.Fatalf("Paginate failed: %v", err)
		}
		if got := page.Keys(); !reflect.DeepEqual(got, []string{"t5"}) {
			t.Errorf("expected [t5], got %v", got)
		}
		if page.Pagination().HasNextPage() {
			t.Error("expected no next page")
		}
	})

	t.Run("page past the end", func(t *testing.T) {
		page, err := c.Paginate(9, 2)
		if err != nil {
			t.Fatalf("Paginate failed: %v", err)
		}
		if page.Len() != 0 {
			t.Errorf("expected an empty page, got %d members", page.Len())
		}
		if page.Pagination().Page != 9 {
			t.Errorf("expected the descriptor to keep page 9, got %d", page.Pagination().Page)
		}
	})

	t.Run("source keeps full member set and no state", func(t *testing.T) {
		if _, err := c.Paginate(1, 2); err != nil {
			t.Fatalf("Paginate failed: %v", err)
		}
		if c.Len() != 5 {
			t.Errorf("expected 5 members, got %d", c.Len())
		}
		if c.Pagination() != nil {
			t.Error("expected no pagination state on the source")
		}
	})

	t.Run("invalid requests", func(t *testing.T) {
		for _, args := range [][2]int{{0, 2}, {1, 0}, {-1, -1}} {
			_, err := c.Paginate(args[0], args[1])
			var argErr *types.InvalidArgumentError
			if !errors.As(err, &argErr) {
				t.Errorf("Paginate(%d, %d): expected InvalidArgumentError, got %v", args[0], args[1], err)
			}
		}
	})
}
