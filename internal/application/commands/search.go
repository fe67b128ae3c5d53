package commands

import (
	"context"
	"sort"
	"strings"

	"obsidex/internal/domain"
	"obsidex/internal/ports"
)

// SearchCommand ranks the published index against a query.
// Triggered queries also get create-note suggestions after the matches.
type SearchCommand struct {
	index  ports.IndexReader
	vaults ports.VaultLister
	Query  domain.Query
	Limit  int // Zero means unlimited
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(index ports.IndexReader, vaults ports.VaultLister, query domain.Query) *SearchCommand {
	return &SearchCommand{
		index:  index,
		vaults: vaults,
		Query:  query,
	}
}

// Execute runs the search command and returns scored, sorted results
func (c *SearchCommand) Execute(ctx context.Context) ([]domain.RankedItem, error) {
	results := Rank(c.index.Entries(), c.Query.Trimmed())
	if c.Limit > 0 && len(results) > c.Limit {
		results = results[:c.Limit]
	}

	if c.Query.Triggered {
		suggestions, err := NewSuggestCommand(c.vaults, c.Query).Execute(ctx)
		if err != nil {
			return nil, err
		}
		results = append(results, suggestions...)
	}
	return results, nil
}

// Rank scores every entry key against query and keeps each item once, with its
// best score. Results are sorted by score, then by text. An empty query matches nothing.
func Rank(entries []domain.IndexEntry, query string) []domain.RankedItem {
	if query == "" {
		return nil
	}

	best := make(map[string]int)
	var ranked []domain.RankedItem

	for _, e := range entries {
		score := FuzzyScore(e.Key, query)
		if score == 0 {
			continue
		}
		id := e.Item.ID()
		if i, ok := best[id]; ok {
			if score > ranked[i].Score {
				ranked[i].Score = score
			}
			continue
		}
		best[id] = len(ranked)
		ranked = append(ranked, domain.RankedItem{Item: e.Item, Score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Item.Text() < ranked[j].Item.Text()
	})
	return ranked
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Check for exact substring match first (highest priority)
	if strings.Contains(target, query) {
		score := 100
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: check if chars appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] == query[queryIdx] {
			if prevMatchIdx == i-1 {
				score += 10 // consecutive chars
			}
			if i == 0 {
				score += 15 // start of string
			}
			if i > 0 && isSeparator(target[i-1]) {
				score += 10 // after separator
			}
			score += 1
			prevMatchIdx = i
			queryIdx++
		}
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

func isSeparator(b byte) bool {
	switch b {
	case ' ', '.', '-', '_', '/':
		return true
	}
	return false
}
