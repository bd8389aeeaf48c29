package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/keyset/types"
)

var (
	descriptorPath string
	filterFlags    []string
	whereExpr      string
	sortFlags      []string
	notFlags       []string
	offsetFlag     int
	limitFlag      int
	searchText     string
	searchFields   []string
	exactMatch     bool
	caseSensitive  bool
	maxResults     int
	pageFlag       int
	perPageFlag    int
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run a declarative query against the member file",
	Long: `Run filter, sort, exclusion, search and pagination stages against the
loaded collection. Stages can be given as flags or as a full descriptor file
(--descriptor); flags are ignored when a descriptor is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCollection(inputPath)
		if err != nil {
			return fail("%v", err)
		}

		q, err := buildQuery(cmd)
		if err != nil {
			return fail("%v", err)
		}

		result, err := c.Query(q)
		if err != nil {
			return fail("query failed: %v", err)
		}

		if p := result.Pagination(); p != nil && verbose {
			fmt.Fprintf(os.Stderr, "%s\n", p)
		}
		return writeResult(result.ToArray(nil))
	},
}

func init() {
	queryCmd.Flags().StringVarP(&descriptorPath, "descriptor", "d", "", "path to a query descriptor file (YAML)")
	queryCmd.Flags().StringArrayVar(&filterFlags, "filter", nil, "attribute filter as field=value (repeatable; repeated fields become IN-style)")
	queryCmd.Flags().StringVarP(&whereExpr, "where", "w", "", "expression filter, e.g. 'priority == \"high\"'")
	queryCmd.Flags().StringArrayVar(&sortFlags, "sort", nil, "order clause as field or field:desc (repeatable)")
	queryCmd.Flags().StringArrayVar(&notFlags, "not", nil, "key to exclude (repeatable)")
	queryCmd.Flags().IntVar(&offsetFlag, "offset", -1, "number of members to skip")
	queryCmd.Flags().IntVar(&limitFlag, "limit", -1, "maximum number of members to return")
	queryCmd.Flags().StringVarP(&searchText, "search", "s", "", "free-text search over the narrowed result")
	queryCmd.Flags().StringArrayVar(&searchFields, "search-field", nil, "restrict search to an attribute (repeatable)")
	queryCmd.Flags().BoolVar(&exactMatch, "exact", false, "search requires the whole attribute value to match")
	queryCmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "make search case-sensitive")
	queryCmd.Flags().IntVar(&maxResults, "max-results", -1, "limit search matches")
	queryCmd.Flags().IntVar(&pageFlag, "page", 0, "page number to slice to (requires --per-page)")
	queryCmd.Flags().IntVar(&perPageFlag, "per-page", 0, "page size")
}

// buildQuery assembles the query descriptor from the descriptor file or from
// the stage flags.
func buildQuery(cmd *cobra.Command) (types.Query, error) {
	if descriptorPath != "" {
		return loadDescriptor(descriptorPath)
	}

	var q types.Query

	if len(filterFlags) > 0 {
		q.Filters = map[string]any{}
		for _, f := range filterFlags {
			field, value, ok := strings.Cut(f, "=")
			if !ok || field == "" {
				return q, fmt.Errorf("invalid filter %q: expected field=value", f)
			}
			switch prev := q.Filters[field].(type) {
			case nil:
				q.Filters[field] = value
			case string:
				q.Filters[field] = []string{prev, value}
			case []string:
				q.Filters[field] = append(prev, value)
			}
		}
	}

	q.Where = whereExpr

	for _, s := range sortFlags {
		column, dir, _ := strings.Cut(s, ":")
		if column == "" {
			return q, fmt.Errorf("invalid sort %q: expected field or field:desc", s)
		}
		q.OrderBy = append(q.OrderBy, types.OrderClause{
			Column:     column,
			Descending: strings.EqualFold(dir, "desc"),
		})
	}

	for _, key := range notFlags {
		q.Not = append(q.Not, key)
	}

	if cmd.Flags().Changed("offset") {
		q.Offset = &offsetFlag
	}
	if cmd.Flags().Changed("limit") {
		q.Limit = &limitFlag
	}

	if searchText != "" {
		q.Search = &types.SearchRequest{
			Query:         searchText,
			Fields:        searchFields,
			CaseSensitive: caseSensitive,
			ExactMatch:    exactMatch,
		}
		if cmd.Flags().Changed("max-results") {
			q.Search.MaxResults = &maxResults
		}
	}

	if pageFlag > 0 || perPageFlag > 0 {
		q.Paginate = &types.PageRequest{Page: pageFlag, PerPage: perPageFlag}
	}

	return q, nil
}

func loadDescriptor(path string) (types.Query, error) {
	var q types.Query
	data, err := os.ReadFile(path)
	if err != nil {
		return q, fmt.Errorf("failed to read descriptor: %w", err)
	}
	if err := yaml.Unmarshal(data, &q); err != nil {
		return q, fmt.Errorf("failed to parse descriptor: %w", err)
	}
	return q, nil
}
