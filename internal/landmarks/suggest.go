package landmarks

import (
	"sort"
	"strings"

	"github.com/robalobadob/landmark/internal/normalize"
)

// MaxSuggestions caps the autocomplete dropdown.
const MaxSuggestions = 8

// Suggest returns up to limit entries of list matching query.
// Matching is accent- and case-insensitive; entries starting with the query come
// first, then alphabetical. An empty query returns the first entries alphabetically.
func Suggest(query string, list []string, limit int) []string {
	if limit <= 0 {
		limit = MaxSuggestions
	}
	q := normalize.Normalize(query)

	type entry struct {
		name, folded string
		prefix       bool
	}
	var hits []entry
	for _, name := range list {
		f := normalize.Normalize(name)
		if q != "" && !strings.Contains(f, q) {
			continue
		}
		hits = append(hits, entry{name: name, folded: f, prefix: q != "" && strings.HasPrefix(f, q)})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].prefix != hits[j].prefix {
			return hits[i].prefix
		}
		if hits[i].folded != hits[j].folded {
			return hits[i].folded < hits[j].folded
		}
		return hits[i].name < hits[j].name
	})

	out := make([]string, 0, min(limit, len(hits)))
	for _, h := range hits {
		if len(out) == limit {
			break
		}
		out = append(out, h.name)
	}
	return out
}
