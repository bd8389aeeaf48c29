package keyset

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/arthur-debert/keyset/internal/omap"
	"github.com/arthur-debert/keyset/internal/validation"
	"github.com/arthur-debert/keyset/types"
)

// Query evaluates a declarative query descriptor and returns the resulting
// collection. Stages run in a fixed order: filters, the where expression,
// ordering, exclusions, then offset/limit; search narrows that intermediate
// result; pagination slices last. Search and pagination are layered on top of
// the base evaluation because they must operate on the already-narrowed,
// already-ordered set. The receiver is never modified.
func (c *Collection) Query(q types.Query) (*Collection, error) {
	if err := validation.ValidateQuery(q); err != nil {
		return nil, err
	}

	out, err := c.evaluate(q)
	if err != nil {
		return nil, err
	}

	if q.Search != nil {
		out, err = out.SearchBy(*q.Search)
		if err != nil {
			return nil, err
		}
	}

	if q.Paginate != nil {
		out, err = out.Paginate(q.Paginate.Page, q.Paginate.PerPage)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// evaluate runs the base stages: filters, where, order, not, offset/limit.
func (c *Collection) evaluate(q types.Query) (*Collection, error) {
	out := c.Clone()

	if len(q.Filters) > 0 {
		out = out.Filter(func(_ string, member any) bool {
			return matchesFilters(member, q.Filters)
		})
	}

	if q.Where != "" {
		narrowed, err := out.where(q.Where)
		if err != nil {
			return nil, err
		}
		out = narrowed
	}

	if len(q.OrderBy) > 0 {
		out = out.SortBy(q.OrderBy...)
	}

	if len(q.Not) > 0 {
		narrowed, err := out.Not(q.Not...)
		if err != nil {
			return nil, err
		}
		out = narrowed
	}

	if q.Offset != nil || q.Limit != nil {
		offset := 0
		if q.Offset != nil {
			offset = *q.Offset
		}
		limit := -1
		if q.Limit != nil {
			limit = *q.Limit
		}
		out = out.Slice(offset, limit)
	}

	return out, nil
}

// matchesFilters checks if a member matches all the provided filters.
// A filter value can be a single value or a slice of values ("IN" style
// matching). Values are compared through their normalized string form.
func matchesFilters(member any, filters map[string]any) bool {
	for field, filterValue := range filters {
		memberStr := valueToString(Attribute(member, field))

		switch fv := filterValue.(type) {
		case []string:
			if !containsString(fv, memberStr) {
				return false
			}
		case []any:
			found := false
			for _, v := range fv {
				if memberStr == valueToString(v) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		default:
			if memberStr != valueToString(filterValue) {
				return false
			}
		}
	}
	return true
}

func containsString(slice []string, str string) bool {
	for _, s := range slice {
		if s == str {
			return true
		}
	}
	return false
}

// SortBy returns a new collection ordered by the given clauses. Members
// comparing equal under every clause keep their relative order. Attribute
// values are compared numerically when both sides parse as numbers, by
// normalized string otherwise.
func (c *Collection) SortBy(clauses ...types.OrderClause) *Collection {
	out := &Collection{parent: c.parent}
	out.items = c.items.SortBy(func(a, b omap.Pair) bool {
		for _, clause := range clauses {
			cmp := compareValues(Attribute(a.Value, clause.Column), Attribute(b.Value, clause.Column))
			if cmp < 0 {
				return !clause.Descending
			}
			if cmp > 0 {
				return clause.Descending
			}
		}
		return false
	})
	return out
}

// where keeps the members for which the expression yields true. The
// expression is compiled once and run per member against an environment
// holding the member's attributes plus "key" and "member" bindings.
func (c *Collection) where(expression string) (*Collection, error) {
	program, err := expr.Compile(expression, expr.AllowUndefinedVariables(), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("failed to compile where expression: %w", err)
	}

	out := New()
	out.parent = c.parent
	for _, p := range c.items.Pairs() {
		keep, err := runWhere(program, p.Key, p.Value)
		if err != nil {
			return nil, err
		}
		if keep {
			out.items.Set(p.Key, p.Value)
		}
	}
	return out, nil
}

func runWhere(program *vm.Program, key string, member any) (bool, error) {
	result, err := expr.Run(program, whereEnv(key, member))
	if err != nil {
		return false, fmt.Errorf("failed to evaluate where expression for %q: %w", key, err)
	}
	keep, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("where expression did not yield a boolean for %q", key)
	}
	return keep, nil
}

// whereEnv builds the expression environment for one member: its attributes
// (unwrapped), plus "key" and "member" bindings.
func whereEnv(key string, member any) map[string]any {
	env := map[string]any{}
	for _, name := range attributeNames(member) {
		env[name] = Attribute(member, name)
	}
	env["key"] = key
	env["member"] = member
	return env
}
