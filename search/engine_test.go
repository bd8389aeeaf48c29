package search_test

import (
	"testing"

	"github.com/arthur-debert/keyset/search"
)

// resolve reads attributes from map members, matching how the collection
// core wires the engine.
func resolve(member any, field string) any {
	m, ok := member.(map[string]any)
	if !ok {
		return nil
	}
	return m[field]
}

func fields(member any) []string {
	m, ok := member.(map[string]any)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(m))
	for _, f := range []string{"title", "body", "tag"} {
		if _, ok := m[f]; ok {
			names = append(names, f)
		}
	}
	return names
}

func items() []search.Item {
	return []search.Item{
		{Key: "1", Value: map[string]any{"title": "pack for trip", "body": "bring socks"}},
		{Key: "2", Value: map[string]any{"title": "buy snacks", "body": "a pack of crisps"}},
		{Key: "3", Value: map[string]any{"title": "unrelated", "body": "nothing here"}},
	}
}

func TestSearchMatchesAndRanks(t *testing.T) {
	engine := search.NewEngine(resolve, fields)

	results, err := engine.Search(items(), "pack", search.Options{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	// Item 1 matches at the start of its title and outranks item 2
	if results[0].Item.Key != "1" {
		t.Errorf("expected item 1 first, got %s", results[0].Item.Key)
	}
	if results[0].Score <= results[1].Score {
		t.Errorf("expected descending scores, got %f then %f", results[0].Score, results[1].Score)
	}
	if got := results[0].MatchedFields; len(got) != 1 || got[0] != "title" {
		t.Errorf("expected title to be the matched field, got %v", got)
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	engine := search.NewEngine(resolve, fields)

	results, err := engine.Search(items(), "", search.Options{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results for an empty query, got %d", len(results))
	}
}

func TestSearchCaseSensitivity(t *testing.T) {
	engine := search.NewEngine(resolve, fields)
	entries := []search.Item{
		{Key: "1", Value: map[string]any{"title": "Pack for trip"}},
	}

	results, err := engine.Search(entries, "pack", search.Options{CaseSensitive: true})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 0 {
		t.Error("expected no case-sensitive match for lower-case query")
	}

	results, err = engine.Search(entries, "pack", search.Options{})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 {
		t.Error("expected a case-insensitive match")
	}
}

func TestSearchExactMatch(t *testing.T) {
	engine := search.NewEngine(resolve, fields)
	entries := []search.Item{
		{Key: "1", Value: map[string]any{"title": "pack"}},
		{Key: "2", Value: map[string]any{"title": "pack for trip"}},
	}

	results, err := engine.Search(entries, "pack", search.Options{ExactMatch: true})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 || results[0].Item.Key != "1" {
		t.Errorf("expected only the exact-title item, got %v", results)
	}
	if results[0].Score != 1.0 {
		t.Errorf("expected score 1.0 for an exact match, got %f", results[0].Score)
	}
}

func TestSearchMaxResults(t *testing.T) {
	engine := search.NewEngine(resolve, fields)
	max := 1

	results, err := engine.Search(items(), "pack", search.Options{MaxResults: &max})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("expected 1 result, got %d", len(results))
	}
}

func TestSearchPreserveOrder(t *testing.T) {
	engine := search.NewEngine(resolve, fields)
	entries := []search.Item{
		{Key: "low", Value: map[string]any{"body": "a pack somewhere in a long sentence"}},
		{Key: "high", Value: map[string]any{"title": "pack"}},
	}

	results, err := engine.Search(entries, "pack", search.Options{PreserveOrder: true})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if results[0].Item.Key != "low" {
		t.Errorf("expected input order to be kept, got %s first", results[0].Item.Key)
	}
}

func TestSearchRestrictedFields(t *testing.T) {
	engine := search.NewEngine(resolve, fields)

	results, err := engine.Search(items(), "pack", search.Options{Fields: []string{"title"}})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 || results[0].Item.Key != "1" {
		t.Errorf("expected only the title match, got %v", results)
	}
}
