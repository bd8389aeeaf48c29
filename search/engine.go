package search

import (
	"fmt"
	"sort"
	"strings"
)

// Engine implements the Searcher interface
type Engine struct {
	resolve AttributeFunc
	fields  FieldsFunc
}

// NewEngine creates a search engine that resolves member attributes through
// resolve and, when Options.Fields is empty, enumerates searchable
// attributes through fields. fields may be nil, in which case members with
// no explicit field list never match.
func NewEngine(resolve AttributeFunc, fields FieldsFunc) *Engine {
	return &Engine{resolve: resolve, fields: fields}
}

// Search ranks the items against the query. An empty query matches nothing;
// the caller owns the empty-query policy.
func (e *Engine) Search(items []Item, query string, options Options) ([]Result, error) {
	if query == "" {
		return []Result{}, nil
	}
	if e.resolve == nil {
		return nil, fmt.Errorf("search engine has no attribute resolver")
	}

	var results []Result
	for _, item := range items {
		if result := e.searchItem(item, query, options); result != nil {
			results = append(results, *result)
		}
	}

	// Sort by score (highest first), keeping input order among ties
	if !options.PreserveOrder {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Score > results[j].Score
		})
	}

	// Apply max results limit
	if options.MaxResults != nil && *options.MaxResults >= 0 && len(results) > *options.MaxResults {
		results = results[:*options.MaxResults]
	}

	return results, nil
}

// searchItem searches a single item and returns a result if it matches
func (e *Engine) searchItem(item Item, query string, options Options) *Result {
	fieldsToSearch := options.Fields
	if len(fieldsToSearch) == 0 && e.fields != nil {
		fieldsToSearch = e.fields(item.Value)
	}

	var matchedFields []string
	var maxScore float64

	for _, field := range fieldsToSearch {
		value := e.resolve(item.Value, field)
		if value == nil {
			continue
		}
		text := fmt.Sprintf("%v", value)
		score, ok := e.matchField(text, query, options)
		if !ok {
			continue
		}
		matchedFields = append(matchedFields, field)
		if score > maxScore {
			maxScore = score
		}
	}

	if len(matchedFields) == 0 {
		return nil
	}

	return &Result{
		Item:          item,
		Score:         maxScore,
		MatchedFields: matchedFields,
	}
}

// matchField checks one attribute value against the query and scores it.
func (e *Engine) matchField(text, query string, options Options) (float64, bool) {
	searchText := text
	searchQuery := query
	if !options.CaseSensitive {
		searchText = strings.ToLower(text)
		searchQuery = strings.ToLower(query)
	}

	if options.ExactMatch {
		if searchText == searchQuery {
			return 1.0, true
		}
		return 0, false
	}

	if !strings.Contains(searchText, searchQuery) {
		return 0, false
	}
	return calculateScore(searchText, searchQuery), true
}

// calculateScore computes a relevance score for a substring match
func calculateScore(fieldValue, query string) float64 {
	baseScore := 0.5

	// Boost for exact full-field match
	if fieldValue == query {
		baseScore += 0.2
	}

	// Boost if match is at the beginning
	if strings.HasPrefix(fieldValue, query) {
		baseScore += 0.2
	}

	// Boost if query takes up a large portion of the field
	if len(fieldValue) > 0 {
		coverage := float64(len(query)) / float64(len(fieldValue))
		if coverage > 0.5 {
			baseScore += 0.1
		}
	}

	// Ensure score doesn't exceed 1.0
	if baseScore > 1.0 {
		baseScore = 1.0
	}

	return baseScore
}
