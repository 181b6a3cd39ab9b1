package github

import (
	"math"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// compileQuery builds the match predicate for SearchStarred. A query containing glob
// metacharacters compiles to a pattern matched against the repository name and full name;
// anything else matches as a case-insensitive substring of the name, description, or topics.
func compileQuery(query string) (func(rawRepo) bool, error) {
	if strings.ContainsAny(query, "*?[{") {
		g, err := glob.Compile(strings.ToLower(query))
		if err != nil {
			return nil, err
		}
		return func(r rawRepo) bool {
			return g.Match(strings.ToLower(r.Name)) || g.Match(strings.ToLower(r.FullName))
		}, nil
	}

	needle := strings.ToLower(query)
	return func(r rawRepo) bool {
		if strings.Contains(strings.ToLower(r.Name), needle) {
			return true
		}
		if strings.Contains(strings.ToLower(r.Description), needle) {
			return true
		}
		for _, topic := range r.Topics {
			if strings.Contains(strings.ToLower(topic), needle) {
				return true
			}
		}
		return false
	}, nil
}

// sortedCounts flattens a counter map into NameCount entries ordered by count descending,
// ties broken by name, truncated to limit when limit is positive.
func sortedCounts(counts map[string]int, limit int) []NameCount {
	entries := make([]NameCount, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, NameCount{Name: name, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Name < entries[j].Name
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
